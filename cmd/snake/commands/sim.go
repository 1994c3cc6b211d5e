package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sort"

	"github.com/battlesnakeio/arcade/input"
	"github.com/battlesnakeio/arcade/metrics"
	"github.com/battlesnakeio/arcade/rules"
	"github.com/battlesnakeio/arcade/sim"
	"github.com/spf13/cobra"
)

var (
	simTicks      = 10000
	simTurnChance = 0.05
	simDump       bool
)

func init() {
	simCmd.Flags().IntVar(&simTicks, "ticks", simTicks, "number of ticks to simulate")
	simCmd.Flags().Float64Var(&simTurnChance, "turn-chance", simTurnChance, "chance a bot presses a key each frame")
	simCmd.Flags().BoolVar(&simDump, "dump", false, "dump the final round state")
}

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "simulates rounds with bots, without a screen",
	RunE: func(*cobra.Command, []string) error {
		return simulate()
	},
}

func simulate() error {
	layout, err := input.LookupLayout(layoutName)
	if err != nil {
		return err
	}
	cfg := sim.DefaultConfig()
	cfg.Settings = settings()
	cfg.Layout = layout
	cfg.Ticks = simTicks
	cfg.FPS = fps
	cfg.TurnChance = simTurnChance
	if seed != 0 {
		cfg.Seed = seed
	}
	if promEnable {
		cfg.Observers = append(cfg.Observers, metrics.Observer{})
	}
	if simDump {
		cfg.Dump = os.Stdout
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()
	report, err := sim.Run(ctx, cfg)
	if err != nil {
		return err
	}
	printReport(report)
	return nil
}

func printReport(r *sim.Report) {
	fmt.Printf("ticks %d, frames %d, rounds %d, simulated %s in %s\n",
		r.Ticks, r.Frames, r.Rounds, r.Simulated, r.Elapsed)
	for _, k := range []rules.FoodKind{rules.FoodCommon, rules.FoodBig, rules.FoodPoison} {
		fmt.Printf("eaten %-8s %d\n", k, r.Eaten[k])
	}
	printCauses("collisions", r.Collisions)
	printCauses("removed", r.Removed)
	slots := make([]int, 0, len(r.Wins))
	for slot := range r.Wins {
		slots = append(slots, slot)
	}
	sort.Ints(slots)
	for _, slot := range slots {
		fmt.Printf("player %d won %d\n", slot+1, r.Wins[slot])
	}
}

func printCauses(title string, causes map[rules.Cause]int) {
	keys := make([]string, 0, len(causes))
	for c := range causes {
		keys = append(keys, string(c))
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Printf("%s %-16s %d\n", title, k, causes[rules.Cause(k)])
	}
}
