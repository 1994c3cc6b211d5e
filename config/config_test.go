package config

import (
	"testing"

	"github.com/battlesnakeio/arcade/rules"
	"github.com/stretchr/testify/require"
)

func TestGetEnvInt(t *testing.T) {
	t.Setenv("SNAKE_TEST_INT", "")
	require.Equal(t, 7, getEnvInt("SNAKE_TEST_INT", 7))
	t.Setenv("SNAKE_TEST_INT", "3")
	require.Equal(t, 3, getEnvInt("SNAKE_TEST_INT", 7))
	t.Setenv("SNAKE_TEST_INT", "three")
	require.Equal(t, 7, getEnvInt("SNAKE_TEST_INT", 7))
}

func TestGetEnvBool(t *testing.T) {
	t.Setenv("SNAKE_TEST_BOOL", "false")
	require.False(t, getEnvBool("SNAKE_TEST_BOOL", true))
	t.Setenv("SNAKE_TEST_BOOL", "1")
	require.True(t, getEnvBool("SNAKE_TEST_BOOL", false))
	t.Setenv("SNAKE_TEST_BOOL", "maybe")
	require.True(t, getEnvBool("SNAKE_TEST_BOOL", true))
}

func TestGetEnvString(t *testing.T) {
	t.Setenv("SNAKE_TEST_STRING", "  ")
	require.Equal(t, "qwerty", getEnvString("SNAKE_TEST_STRING", "qwerty"))
	t.Setenv("SNAKE_TEST_STRING", "azerty")
	require.Equal(t, "azerty", getEnvString("SNAKE_TEST_STRING", "qwerty"))
}

func TestGetPlayers(t *testing.T) {
	t.Setenv("SNAKE_PLAYERS", "3")
	require.Equal(t, 3, getPlayers())
	t.Setenv("SNAKE_PLAYERS", "")
	require.Equal(t, 2, getPlayers())
	t.Setenv("SNAKE_PLAYERS", "0")
	require.Equal(t, 2, getPlayers())
	t.Setenv("SNAKE_PLAYERS", "5")
	require.Equal(t, rules.MaxPlayers, getPlayers())
}

func TestClampPlayers(t *testing.T) {
	tests := []struct {
		In       int
		Expected int
	}{
		{In: -3, Expected: 2},
		{In: 0, Expected: 2},
		{In: 1, Expected: 1},
		{In: 4, Expected: 4},
		{In: 5, Expected: 4},
		{In: 100, Expected: 4},
	}
	for _, test := range tests {
		require.Equal(t, test.Expected, clampPlayers(test.In), "players %d", test.In)
	}
}

func TestSettings(t *testing.T) {
	s := Settings()
	require.NoError(t, s.Validate())
	require.Equal(t, Players, s.Players)
	require.Equal(t, rules.DefaultSettings().EndGrace, s.EndGrace)
}
