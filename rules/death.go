package rules

// checkForCollision looks at the new head of a snake that moved this tick
// and reports what it ran into, or "" if the cell is free. Obstacles are the
// snake's own tail and every point of every other snake. Without portals a
// head outside the board is a wall collision.
func checkForCollision(s *Snake, snakes []*Snake, width, height int, portal bool) Cause {
	if !portal && collisionWithWall(s.Head, width, height) {
		return CauseWallCollision
	}
	if containsPoint(s.Tail, s.Head) {
		return CauseSelfCollision
	}
	for _, other := range snakes {
		if other == s {
			continue
		}
		if other.Head.Equal(s.Head) {
			return CauseHeadToHeadCollision
		}
		if containsPoint(other.Tail, s.Head) {
			return CauseSnakeCollision
		}
	}
	return ""
}

func collisionWithWall(head Point, width, height int) bool {
	return !head.In(width, height)
}
