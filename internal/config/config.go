// Package config provides configuration for a gochess session.
package config

import (
	"io"
	"os"
)

// Config holds all program configuration.
type Config struct {
	Game    GameConfig
	Bot     BotConfig
	Display DisplayConfig

	// Verbosity selects the log level: 0=warnings, 1=info, 2=debug.
	Verbosity int `validate:"gte=0,lte=2"`

	// Output streams
	OutputFile io.Writer `validate:"-"`
	LogFile    io.Writer `validate:"-"`
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Game:       *NewGameConfig(),
		Bot:        *NewBotConfig(),
		Display:    *NewDisplayConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// SetOutput sets the output writer.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// SetLog sets the log writer.
func (c *Config) SetLog(w io.Writer) {
	c.LogFile = w
}
