package rules

import "time"

// Round is the state of one round. It is owned by a single Engine and
// replaced as a whole on reset.
type Round struct {
	ID     string
	Mode   GameMode
	Snakes []*Snake
	Food   FoodList
	Frame  int
	// Step is the simulated time between two ticks.
	Step time.Duration
	// EndFrame is the frame the next round starts at, 0 while the round is
	// still being played.
	EndFrame int
}

// Ending reports whether the end countdown is armed.
func (r *Round) Ending() bool {
	return r.EndFrame > 0
}

// Snake returns the live snake of a player slot, nil if it is gone.
func (r *Round) Snake(slot int) *Snake {
	for _, s := range r.Snakes {
		if s.Slot == slot {
			return s
		}
	}
	return nil
}

// Winner returns the last snake standing, nil when none or several are left.
func (r *Round) Winner() *Snake {
	if len(r.Snakes) != 1 {
		return nil
	}
	return r.Snakes[0]
}

// occupied returns every cell covered by a snake or food.
func (r *Round) occupied() map[Point]struct{} {
	cells := map[Point]struct{}{}
	for _, s := range r.Snakes {
		for _, p := range s.Points() {
			cells[p] = struct{}{}
		}
	}
	for _, f := range r.Food {
		cells[f.Position] = struct{}{}
	}
	return cells
}
