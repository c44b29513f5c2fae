// Package config loads the scorepad configuration from an HCL file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Config is the complete application configuration.
type Config struct {
	Game    *GameSettings    `hcl:"game,block"`
	Storage *StorageSettings `hcl:"storage,block"`
	Log     *LogSettings     `hcl:"log,block"`
}

// GameSettings contains the scoring rules.
type GameSettings struct {
	// TargetScore ends the game once a single player reaches it.
	TargetScore int `hcl:"target_score,optional"`
	// ScoreFloor/ScoreSpan define the display range used for score
	// coloring only; they have no effect on the rules.
	ScoreFloor int `hcl:"score_floor,optional"`
	ScoreSpan  int `hcl:"score_span,optional"`
}

// StorageSettings controls where the session blob lives.
type StorageSettings struct {
	Path string `hcl:"path,optional"`
}

// LogSettings controls the debug log file. The TUI owns the terminal,
// so logs always go to a file.
type LogSettings struct {
	Level string `hcl:"level,optional"`
	File  string `hcl:"file,optional"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() *Config {
	return &Config{
		Game: &GameSettings{
			TargetScore: 100,
			ScoreFloor:  -13,
			ScoreSpan:   52,
		},
		Storage: &StorageSettings{
			Path: defaultStoragePath(),
		},
		Log: &LogSettings{
			Level: "warn",
			File:  "scorepad.log",
		},
	}
}

// Load reads configuration from an HCL file. A missing file yields the
// defaults; a present but invalid file is an error. Fields omitted from
// the file fall back to their defaults.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var cfg Config
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	defaults := DefaultConfig()
	if cfg.Game == nil {
		cfg.Game = defaults.Game
	}
	if cfg.Storage == nil {
		cfg.Storage = defaults.Storage
	}
	if cfg.Log == nil {
		cfg.Log = defaults.Log
	}
	if cfg.Game.TargetScore == 0 {
		cfg.Game.TargetScore = defaults.Game.TargetScore
	}
	if cfg.Game.ScoreSpan == 0 {
		cfg.Game.ScoreFloor = defaults.Game.ScoreFloor
		cfg.Game.ScoreSpan = defaults.Game.ScoreSpan
	}
	if cfg.Storage.Path == "" {
		cfg.Storage.Path = defaults.Storage.Path
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = defaults.Log.Level
	}
	if cfg.Log.File == "" {
		cfg.Log.File = defaults.Log.File
	}

	return &cfg, nil
}

// defaultStoragePath puts the session blob under the user config dir,
// falling back to the working directory when none is available.
func defaultStoragePath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "scorepad.json"
	}
	return filepath.Join(dir, "scorepad", "scorepad.json")
}
