package rules

// CheckForRoundOver checks if the round has ended. End condition is dependent on game mode: a solitaire
// round ends when its snake is gone, a multi-player round when one or no snake is left.
func CheckForRoundOver(mode GameMode, survivors int) bool {
	if mode == GameModeSinglePlayer {
		return survivors == 0
	}
	return survivors <= 1
}
