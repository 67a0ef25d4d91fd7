// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/gochess/internal/config"
)

var (
	// Seats
	whiteSeat = flag.String("white", string(config.Human), "Who plays White: human or bot")
	blackSeat = flag.String("black", string(config.Bot), "Who plays Black: human or bot")
	maxPlies  = flag.Int("max-plies", 0, "Stop the game after N half-moves (0 = no limit)")

	// Bot
	depth   = flag.Int("depth", 2, "Bot search depth in plies beyond each candidate move")
	workers = flag.Int("workers", 1, "Goroutines scoring the bot's candidate moves")

	// Display
	colorMode   = flag.String("color", string(config.ColorAuto), "Coloured board: auto, always or never")
	historyFile = flag.String("history", "", "Readline history file")

	// Logging
	verbosity = flag.Int("v", 0, "Log verbosity: 0=warnings, 1=info, 2=debug")
	logFile   = flag.String("log", "", "Append log records to this file (default: stderr)")

	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags copies the command-line flags into cfg.
func applyFlags(cfg *config.Config) {
	applyGameFlags(cfg)
	applyBotFlags(cfg)
	applyDisplayFlags(cfg)
	cfg.Verbosity = *verbosity
}

// applyGameFlags configures seats and the ply limit.
func applyGameFlags(cfg *config.Config) {
	cfg.Game.White = config.Seat(*whiteSeat)
	cfg.Game.Black = config.Seat(*blackSeat)
	cfg.Game.MaxPlies = *maxPlies
}

// applyBotFlags configures the search bot.
func applyBotFlags(cfg *config.Config) {
	cfg.Bot.Depth = *depth
	cfg.Bot.Workers = *workers
}

// applyDisplayFlags configures board colours and the history file.
func applyDisplayFlags(cfg *config.Config) {
	cfg.Display.Color = config.ColorMode(*colorMode)
	cfg.Display.HistoryFile = *historyFile
}
