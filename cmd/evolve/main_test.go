package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/signalnine/tetrisevolve/gosim/evolution"
)

func TestLoadConfigYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "evolve.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
population_size: 40
generations: 7
mutation_rate: 0.1
game_limit: 5000
board_width: 12
seed: 99
`), 0o644))

	configPath = path
	defer func() { configPath = "" }()

	config, err := loadConfig()
	require.NoError(t, err)

	assert.Equal(t, 40, config.PopulationSize)
	assert.Equal(t, 7, config.MaxGenerations)
	assert.Equal(t, 0.1, config.MutationRate)
	assert.Equal(t, uint64(5000), config.GameLimit)
	assert.Equal(t, 12, config.BoardWidth)
	assert.Equal(t, int64(99), config.RandomSeed)
	assert.Equal(t, 0.8, config.CrossoverRate, "unset keys keep defaults")
}

func TestLoadConfigInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "evolve.yaml")
	require.NoError(t, os.WriteFile(path, []byte("elitism_rate: 3\n"), 0o644))

	configPath = path
	defer func() { configPath = "" }()

	_, err := loadConfig()
	assert.ErrorIs(t, err, evolution.ErrRate)
}

func TestLoadConfigMissingFile(t *testing.T) {
	configPath = filepath.Join(t.TempDir(), "missing.yaml")
	defer func() { configPath = "" }()

	_, err := loadConfig()
	assert.Error(t, err)
}

func TestStartProfileUnknownMode(t *testing.T) {
	_, err := startProfile("heap")
	assert.Error(t, err)
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "4.5s", formatDuration(4500*time.Millisecond))
	assert.Equal(t, "2m5s", formatDuration(125*time.Second))
	assert.Equal(t, "1h30m", formatDuration(90*time.Minute))
}
