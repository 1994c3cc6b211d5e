package rules

import log "github.com/sirupsen/logrus"

// placeFood puts a new item of kind on a free cell. It returns false when the
// board has no free cell left.
func (e *Engine) placeFood(kind FoodKind) bool {
	p, ok := e.unoccupiedPoint()
	if !ok {
		log.WithFields(log.Fields{
			"round": e.round.ID,
			"frame": e.round.Frame,
			"food":  kind,
		}).Warn("no free cell for food")
		return false
	}
	e.round.Food.Add(newFood(kind, p))
	return true
}

// randomKind draws the kind of regular food: mostly common, sometimes big.
func (e *Engine) randomKind() FoodKind {
	if e.rand.Float64() < e.settings.BigFoodChance {
		return FoodBig
	}
	return FoodCommon
}

// unoccupiedPoint returns a random cell not covered by a snake or food. It
// samples a bounded number of random cells first and falls back to picking
// among all free cells so it always terminates.
func (e *Engine) unoccupiedPoint() (Point, bool) {
	w, h := e.settings.Width, e.settings.Height
	occupied := e.round.occupied()

	for i := 0; i < e.settings.PlacementAttempts; i++ {
		p := Point{X: e.rand.Intn(w), Y: e.rand.Intn(h)}
		if _, taken := occupied[p]; !taken {
			return p, true
		}
	}

	open := unoccupiedPoints(w, h, occupied)
	if len(open) == 0 {
		return Point{}, false
	}
	return open[e.rand.Intn(len(open))], true
}

func unoccupiedPoints(width, height int, occupied map[Point]struct{}) []Point {
	size := width*height - len(occupied)
	if size < 0 {
		size = 0
	}
	candidates := make([]Point, 0, size)
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			p := Point{X: x, Y: y}
			if _, taken := occupied[p]; !taken {
				candidates = append(candidates, p)
			}
		}
	}
	return candidates
}
