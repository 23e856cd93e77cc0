package cmd

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kilianp07/kitchen/config"
)

func newTestCmd(t *testing.T, args ...string) *cobra.Command {
	t.Helper()
	c := &cobra.Command{Use: "test"}
	addRunFlags(c)
	require.NoError(t, c.ParseFlags(args))
	return c
}

func TestLoadConfigAppliesChangedFlags(t *testing.T) {
	cfgPath = ""
	c := newTestCmd(t, "--min", "1", "--max", "3", "--seed", "42", "--concurrent", "--format", "csv")
	cfg, err := loadConfig(c)
	require.NoError(t, err)
	assert.Equal(t, 1, cfg.Pickup.MinSeconds)
	assert.Equal(t, 3, cfg.Pickup.MaxSeconds)
	assert.Equal(t, int64(42), cfg.Run.Seed)
	assert.True(t, cfg.Pickup.Concurrent)
	assert.Equal(t, "csv", cfg.Output.Format)
}

func TestLoadConfigKeepsDefaultsForUnsetFlags(t *testing.T) {
	cfgPath = ""
	cfg, err := loadConfig(newTestCmd(t))
	require.NoError(t, err)
	assert.Equal(t, config.Default().Pickup, cfg.Pickup)
}

func TestLoadConfigRejectsInvertedBounds(t *testing.T) {
	cfgPath = ""
	_, err := loadConfig(newTestCmd(t, "--min", "9", "--max", "2"))
	assert.ErrorIs(t, err, config.ErrInvalid)
}
