package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.hcl"))
	require.NoError(t, err)

	assert.Equal(t, 100, cfg.Game.TargetScore)
	assert.Equal(t, -13, cfg.Game.ScoreFloor)
	assert.Equal(t, 52, cfg.Game.ScoreSpan)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.NotEmpty(t, cfg.Storage.Path)
}

func TestLoadFullFile(t *testing.T) {
	t.Parallel()

	content := `
game {
  target_score = 50
  score_floor  = -10
  score_span   = 40
}

storage {
  path = "/tmp/scorepad-test.json"
}

log {
  level = "debug"
  file  = "debug.log"
}
`
	path := filepath.Join(t.TempDir(), "scorepad.hcl")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 50, cfg.Game.TargetScore)
	assert.Equal(t, -10, cfg.Game.ScoreFloor)
	assert.Equal(t, 40, cfg.Game.ScoreSpan)
	assert.Equal(t, "/tmp/scorepad-test.json", cfg.Storage.Path)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "debug.log", cfg.Log.File)
}

func TestLoadPartialFileBackfillsDefaults(t *testing.T) {
	t.Parallel()

	content := `
game {
  target_score = 150
}
`
	path := filepath.Join(t.TempDir(), "scorepad.hcl")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 150, cfg.Game.TargetScore)
	assert.Equal(t, -13, cfg.Game.ScoreFloor)
	assert.Equal(t, 52, cfg.Game.ScoreSpan)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "scorepad.log", cfg.Log.File)
}

func TestLoadInvalidFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "scorepad.hcl")
	require.NoError(t, os.WriteFile(path, []byte("game {{{"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}
