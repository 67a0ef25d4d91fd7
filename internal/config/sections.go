package config

// Seat says who plays a side.
type Seat string

const (
	Human Seat = "human"
	Bot   Seat = "bot"
)

// ColorMode controls coloured board output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Colour when stdout is a terminal
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// GameConfig holds settings for the game being played.
type GameConfig struct {
	// White and Black say who moves for each side.
	White Seat `validate:"oneof=human bot"`
	Black Seat `validate:"oneof=human bot"`

	// MaxPlies stops a game after this many half-moves (0 = no limit).
	MaxPlies int `validate:"gte=0"`
}

// NewGameConfig creates a GameConfig with default values: a human plays
// White against the bot.
func NewGameConfig() *GameConfig {
	return &GameConfig{
		White: Human,
		Black: Bot,
	}
}

// BotConfig holds settings for the search bot.
type BotConfig struct {
	// Depth is the number of plies searched beyond each root move.
	Depth int `validate:"gte=0,lte=6"`

	// Workers is the number of goroutines scoring root moves.
	Workers int `validate:"gte=1,lte=64"`
}

// NewBotConfig creates a BotConfig with default values.
func NewBotConfig() *BotConfig {
	return &BotConfig{
		Depth:   2,
		Workers: 1,
	}
}

// DisplayConfig holds settings for the terminal front end.
type DisplayConfig struct {
	Color ColorMode `validate:"oneof=auto always never"`

	// HistoryFile stores the readline history ("" = no history).
	HistoryFile string
}

// NewDisplayConfig creates a DisplayConfig with default values.
func NewDisplayConfig() *DisplayConfig {
	return &DisplayConfig{
		Color: ColorAuto,
	}
}
