package main

import (
	"crypto/rand"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync"

	"nuros/internal/audio"
	"nuros/internal/config"
	"nuros/internal/logging"
	"nuros/internal/risk"
)

type commandContext struct {
	configFlag  *string
	verboseFlag *bool

	configOnce sync.Once
	config     *config.Config
	configErr  error
}

func newCommandContext(configFlag *string, verboseFlag *bool) *commandContext {
	return &commandContext{
		configFlag:  configFlag,
		verboseFlag: verboseFlag,
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

// buildLogger constructs the CLI logger. Log lines go to stderr so command
// output on stdout stays clean for piping.
func (c *commandContext) buildLogger(cfg *config.Config) (*slog.Logger, error) {
	level := cfg.Logging.Level
	if c.verboseFlag != nil && *c.verboseFlag {
		level = "debug"
	}
	logger, err := logging.New(logging.Options{
		Level:       level,
		Format:      cfg.Logging.Format,
		OutputPaths: []string{"stderr"},
	})
	if err != nil {
		return nil, fmt.Errorf("setup logging: %w", err)
	}
	return logger, nil
}

// noiseSource picks the evaluation randomness. Deterministic runs get range
// midpoints; a non-zero seed replays a fixed sequence.
func noiseSource(deterministic bool, seed uint64) risk.Noise {
	if deterministic {
		return risk.ZeroNoise()
	}
	if seed != 0 {
		return risk.NewNoise(seed)
	}
	return risk.NewNoise(randomSeed())
}

func randomSeed() uint64 {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		return 1
	}
	var seed uint64
	for _, v := range b {
		seed = seed<<8 | uint64(v)
	}
	if seed == 0 {
		seed = 1
	}
	return seed
}

// loadClip opens and decodes one WAV recording from disk.
func loadClip(path string) (*audio.Clip, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open recording %q: %w", path, err)
	}
	defer file.Close()

	clip, err := audio.DecodeWAV(file)
	if err != nil {
		return nil, fmt.Errorf("decode recording %q: %w", path, err)
	}
	return clip, nil
}
