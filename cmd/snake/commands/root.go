package commands

import (
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/battlesnakeio/arcade/config"
	"github.com/battlesnakeio/arcade/version"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:     "snake",
	Short:   "snake plays multiplayer snake on a shared keyboard",
	Version: version.Version,
	RunE: func(c *cobra.Command, args []string) error {
		return playCmd.RunE(c, args)
	},
}

// setup refers to rootCmd, so it is attached here to avoid an
// initialization cycle.
func init() {
	rootCmd.PersistentPreRunE = setup
}

var (
	players    = config.Players
	layoutName = config.Layout
	portal     = config.Portal
	width      = config.Width
	height     = config.Height
	fps        = config.FPS
	playSound  = config.Sound
	seed       uint64

	logLevel = config.LogLevel
	logFile  string

	promEnable bool
	promListen = ":9000"
)

// Execute runs the root command
func Execute() {
	flags := rootCmd.PersistentFlags()
	flags.IntVarP(&players, "players", "p", players, "number of players (1-4)")
	flags.StringVar(&layoutName, "layout", layoutName, "keyboard layout the controls are translated to")
	flags.BoolVar(&portal, "portal", portal, "snakes leaving the board come back on the other side")
	flags.IntVar(&width, "width", width, "board width in cells")
	flags.IntVar(&height, "height", height, "board height in cells")
	flags.IntVar(&fps, "fps", fps, "frames drawn per second")
	flags.BoolVar(&playSound, "sound", playSound, "play sound cues")
	flags.Uint64Var(&seed, "seed", 0, "food placement seed, 0 picks one")
	flags.StringVar(&logLevel, "log-level", logLevel, "log level")
	flags.StringVar(&logFile, "log-file", "", "file logs are appended to, logs are discarded when empty")
	flags.BoolVar(&promEnable, "prometheus", promEnable, "enable prometheus metrics")
	flags.StringVar(&promListen, "prometheus-listen", promListen, "prometheus http endpoint")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(simCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// setup configures logging and the prometheus exporter for every command.
// While playing in the terminal the screen belongs to the game, so logs only
// go to a file.
func setup(c *cobra.Command, args []string) error {
	level, err := log.ParseLevel(logLevel)
	if err != nil {
		return errors.Wrap(err, "invalid log level")
	}
	log.SetLevel(level)

	var out io.Writer = io.Discard
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return errors.Wrap(err, "unable to open log file")
		}
		out = f
	} else if c != rootCmd && c != playCmd {
		out = os.Stderr
	}
	log.SetOutput(out)

	prometheus()
	return nil
}

func prometheus() {
	if !promEnable {
		log.Info("prometheus exporter not enabled")
		return
	}

	log.WithField("addr", promListen).Info("starting prometheus exporter")
	go func() {
		r := http.NewServeMux()
		r.Handle("/metrics", promhttp.Handler())
		if err := http.ListenAndServe(promListen, r); err != nil {
			log.WithError(err).Warn("prometheus failed to listen")
		}
	}()
}
