package config

import "io"

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithSeats sets who plays White and Black.
func (b *ConfigBuilder) WithSeats(white, black Seat) *ConfigBuilder {
	b.cfg.Game.White = white
	b.cfg.Game.Black = black
	return b
}

// WithMaxPlies sets the half-move limit of a game.
func (b *ConfigBuilder) WithMaxPlies(plies int) *ConfigBuilder {
	b.cfg.Game.MaxPlies = plies
	return b
}

// WithDepth sets the bot search depth.
func (b *ConfigBuilder) WithDepth(depth int) *ConfigBuilder {
	b.cfg.Bot.Depth = depth
	return b
}

// WithWorkers sets the number of bot search workers.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Bot.Workers = n
	return b
}

// WithColor sets the board colour mode.
func (b *ConfigBuilder) WithColor(mode ColorMode) *ConfigBuilder {
	b.cfg.Display.Color = mode
	return b
}

// WithHistoryFile sets the readline history file.
func (b *ConfigBuilder) WithHistoryFile(path string) *ConfigBuilder {
	b.cfg.Display.HistoryFile = path
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLog sets the log writer.
func (b *ConfigBuilder) WithLog(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}
