package rules

import (
	"time"

	log "github.com/sirupsen/logrus"
)

// Tick runs the round one step. While the end countdown runs the board is
// frozen and the round is reset once the countdown expires.
func (e *Engine) Tick() {
	r := e.round
	if r == nil {
		return
	}
	s := e.settings

	r.Frame++

	if r.Ending() {
		if r.Frame >= r.EndFrame {
			e.Reset()
		}
		return
	}

	// 1. hunger
	if every(r.Frame, s.HungerInterval) {
		for _, snake := range r.Snakes {
			snake.shrink(1, CauseStarvation)
			e.notify(Event{Type: EventStarved, Snake: snake, Cause: CauseStarvation})
		}
	}

	// 2. move
	moved := make([]bool, len(r.Snakes))
	for i, snake := range r.Snakes {
		moved[i] = snake.Tick(s.Width, s.Height, s.Portal)
	}

	// 3. collisions, then food
	for i, snake := range r.Snakes {
		if moved[i] {
			if cause := checkForCollision(snake, r.Snakes, s.Width, s.Height, s.Portal); cause != "" {
				snake.shrink(snake.ShrinkRate, cause)
				log.WithFields(log.Fields{
					"round": r.ID,
					"frame": r.Frame,
					"slot":  snake.Slot,
					"cause": cause,
					"size":  snake.Size,
				}).Debug("snake collided")
				e.notify(Event{Type: EventCollision, Snake: snake, Cause: cause})
			}
		}
		e.feed(snake)
	}

	// 4. remove dead snakes
	e.removeDead()

	// 5. poison
	if every(r.Frame, s.PoisonInterval) {
		placed := 0
		for i := 0; i < s.PoisonBatch; i++ {
			if e.placeFood(FoodPoison) {
				placed++
			}
		}
		log.WithFields(log.Fields{
			"round":  r.ID,
			"frame":  r.Frame,
			"placed": placed,
		}).Debug("poison spawned")
		e.notify(Event{Type: EventPoisonSpawned})
	}

	// 6. speed up
	if every(r.Frame, s.SpeedUpInterval) {
		r.Step = time.Duration(float64(r.Step) * s.SpeedUpFactor)
		log.WithFields(log.Fields{
			"round": r.ID,
			"frame": r.Frame,
			"step":  r.Step,
		}).Debug("speed up")
		e.notify(Event{Type: EventSpeedUp})
	}

	// 7. end of round
	if !r.Ending() && CheckForRoundOver(r.Mode, len(r.Snakes)) {
		r.EndFrame = r.Frame + s.EndGrace
		winner := r.Winner()
		fields := log.Fields{
			"round":     r.ID,
			"frame":     r.Frame,
			"survivors": len(r.Snakes),
		}
		if winner != nil {
			fields["winner"] = winner.Slot
			fields["size"] = winner.Size
		}
		log.WithFields(fields).Info("round over")
		e.notify(Event{Type: EventRoundOver, Winner: winner})
	}
}

// feed lets snake eat every item under its head.
func (e *Engine) feed(snake *Snake) {
	r := e.round
	for _, f := range r.Food.At(snake.Head) {
		r.Food.Remove(f)
		snake.Size += f.Size
		if f.Poison() {
			snake.cause = CausePoison
		}
		log.WithFields(log.Fields{
			"round": r.ID,
			"frame": r.Frame,
			"slot":  snake.Slot,
			"food":  f.Kind,
			"size":  snake.Size,
		}).Debug("snake ate")
		e.notify(Event{Type: EventFoodEaten, Snake: snake, Food: f})

		if e.replenishes(f) {
			e.placeFood(e.randomKind())
		}
	}
}

// replenishes reports whether eating f puts a new item on the board.
func (e *Engine) replenishes(f *Food) bool {
	return !f.Poison() || e.settings.ReplenishPoison
}

// removeDead drops snakes whose size reached zero and trims the tails of
// the survivors to their size.
func (e *Engine) removeDead() {
	r := e.round
	alive := r.Snakes[:0]
	for _, snake := range r.Snakes {
		if snake.Dead() {
			snake.retire()
			log.WithFields(log.Fields{
				"round": r.ID,
				"frame": r.Frame,
				"slot":  snake.Slot,
				"cause": snake.cause,
			}).Info("snake removed")
			e.notify(Event{Type: EventSnakeRemoved, Snake: snake, Cause: snake.cause})
			continue
		}
		snake.truncate()
		alive = append(alive, snake)
	}
	for i := len(alive); i < len(r.Snakes); i++ {
		r.Snakes[i] = nil
	}
	r.Snakes = alive
}
