package rules

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCheckForRoundOver_SinglePlayer(t *testing.T) {
	require.True(t, CheckForRoundOver(GameModeSinglePlayer, 0))
	require.False(t, CheckForRoundOver(GameModeSinglePlayer, 1))
}

func TestCheckForRoundOver_MultiPlayer(t *testing.T) {
	require.True(t, CheckForRoundOver(GameModeMultiPlayer, 0))
	require.True(t, CheckForRoundOver(GameModeMultiPlayer, 1))
	require.False(t, CheckForRoundOver(GameModeMultiPlayer, 2))
	require.False(t, CheckForRoundOver(GameModeMultiPlayer, 3))
}
