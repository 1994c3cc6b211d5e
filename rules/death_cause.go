package rules

// Cause explains why a snake lost length.
type Cause string

const (
	// CauseSnakeCollision is when a snake runs into the body of another snake
	CauseSnakeCollision Cause = "snake-collision"
	// CauseHeadToHeadCollision is when a snake runs into the head of another snake
	CauseHeadToHeadCollision Cause = "head-collision"
	// CauseSelfCollision is when a snake runs into its own tail
	CauseSelfCollision Cause = "self-collision"
	// CauseWallCollision is when a snake runs off the board, only possible without portals
	CauseWallCollision Cause = "wall-collision"
	// CauseStarvation is the periodic hunger shrink
	CauseStarvation Cause = "starvation"
	// CausePoison is when a snake eats poison
	CausePoison Cause = "poison"
)
