package rules

// Status is the lifecycle state of the engine.
type Status string

const (
	// StatusIdle is an engine that has not started its first round
	StatusIdle Status = "idle"
	// StatusActive is a round in play
	StatusActive Status = "active"
	// StatusEnding is a round that is over and waiting out its grace period
	StatusEnding Status = "ending"
)
