package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync/atomic"
	"time"

	"github.com/chzyer/readline"

	"github.com/lgbarn/gochess/internal/bot"
	"github.com/lgbarn/gochess/internal/chess"
	"github.com/lgbarn/gochess/internal/config"
	"github.com/lgbarn/gochess/internal/engine"
)

// session plays games between the configured seats.
type session struct {
	cfg      *config.Config
	game     *engine.GameState
	bot      *bot.Bot
	nodes    atomic.Int64
	out      io.Writer
	logger   *slog.Logger
	color    bool
	reported bool // result of the current game already shown
}

// newSession creates a session at the starting position.
func newSession(cfg *config.Config, logger *slog.Logger, color bool) *session {
	s := &session{
		cfg:    cfg,
		game:   engine.NewGame(),
		out:    cfg.OutputFile,
		logger: logger,
		color:  color,
	}
	s.bot = bot.New(
		bot.WithDepth(cfg.Bot.Depth),
		bot.WithWorkers(cfg.Bot.Workers),
		bot.WithNodeCounter(&s.nodes),
		bot.WithLogger(logger),
	)
	return s
}

// run plays until the user quits, the input is exhausted or the ply limit
// is reached. Without a human seat it returns once the game ends; otherwise
// a finished game waits for 'new' or 'quit'.
func (s *session) run(in lineReader) error {
	s.printBoard()
	for {
		result, over := s.game.Result()
		if over && !s.reported {
			s.reported = true
			fmt.Fprintf(s.out, "%s\n", result)
			s.logger.Info("game over", "result", result.String(), "plies", s.game.Ply())
			if !s.hasHuman() {
				return nil
			}
			fmt.Fprintln(s.out, "Type 'new' to play again or 'quit' to leave")
		}
		if limit := s.cfg.Game.MaxPlies; !over && limit > 0 && s.game.Ply() >= limit {
			fmt.Fprintf(s.out, "Stopped after %d plies\n", s.game.Ply())
			s.logger.Info("ply limit reached", "plies", s.game.Ply())
			return nil
		}

		if !over && s.seat(s.game.CurrentPlayer()) == config.Bot {
			if err := s.playBot(); err != nil {
				return err
			}
			continue
		}

		if p, ok := in.(prompter); ok {
			p.SetPrompt(s.prompt(over))
		}
		line, err := in.Readline()
		if errors.Is(err, io.EOF) || errors.Is(err, readline.ErrInterrupt) {
			return nil
		}
		if err != nil {
			return err
		}
		if s.execute(line) {
			return nil
		}
	}
}

func (s *session) prompt(over bool) string {
	if over {
		return "new/quit> "
	}
	return fmt.Sprintf("%s> ", s.game.CurrentPlayer())
}

func (s *session) hasHuman() bool {
	return s.cfg.Game.White == config.Human || s.cfg.Game.Black == config.Human
}

// restart abandons the current game and sets up the starting position.
func (s *session) restart() {
	s.logger.Info("new game", "abandoned_plies", s.game.Ply())
	s.game = engine.NewGame()
	s.reported = false
	fmt.Fprintln(s.out, "New game")
	s.printBoard()
}

// seat returns who plays player.
func (s *session) seat(player chess.Player) config.Seat {
	if player == chess.White {
		return s.cfg.Game.White
	}
	return s.cfg.Game.Black
}

// execute runs one command line. It returns true when the user quits.
func (s *session) execute(line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}

	switch cmd := strings.ToLower(fields[0]); cmd {
	case "quit", "exit":
		return true
	case "new":
		s.restart()
	case "help":
		printCommands(s.out)
	case "board":
		s.printBoard()
	case "fen":
		fmt.Fprintln(s.out, s.game.Fingerprint())
	case "moves":
		if len(fields) != 2 {
			fmt.Fprintln(s.out, "Usage: moves <square>")
			return false
		}
		s.listMoves(fields[1])
	case "bot":
		if err := s.playBot(); err != nil {
			fmt.Fprintf(s.out, "Error: %v\n", err)
		}
	case "move":
		if len(fields) != 2 {
			fmt.Fprintln(s.out, "Usage: move <from><to>[promotion]")
			return false
		}
		s.playHuman(fields[1])
	default:
		if len(fields) != 1 {
			fmt.Fprintf(s.out, "Unknown command %q; type 'help'\n", cmd)
			return false
		}
		s.playHuman(fields[0])
	}
	return false
}

// playHuman parses and plays a move typed by the user.
func (s *session) playHuman(text string) {
	player := s.game.CurrentPlayer()
	move, err := s.game.ParseMove(text)
	if err == nil {
		err = s.game.MakeMove(move)
	}
	if err != nil {
		s.logger.Debug("move rejected", "player", player, "input", text, "error", err)
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}

	s.logger.Info("move", "player", player, "move", move.String(), "ply", s.game.Ply())
	s.printBoard()
}

// playBot lets the bot move for the side to move.
func (s *session) playBot() error {
	player := s.game.CurrentPlayer()
	start := time.Now()
	before := s.nodes.Load()

	move, err := s.bot.SelectMove(s.game)
	if err != nil {
		return err
	}
	if err := s.game.MakeMove(move); err != nil {
		return err
	}

	fmt.Fprintf(s.out, "%s plays %s\n", player, move)
	s.logger.Info("bot move",
		"player", player,
		"move", move.String(),
		"ply", s.game.Ply(),
		"nodes", s.nodes.Load()-before,
		"elapsed", time.Since(start))
	s.printBoard()
	return nil
}

// listMoves prints the legal moves of the piece on square.
func (s *session) listMoves(square string) {
	pos, err := chess.ParseSquare(strings.ToLower(square))
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}

	var moves []string
	for m := range s.game.LegalMovesForPiece(pos) {
		moves = append(moves, m.String())
	}
	if len(moves) == 0 {
		fmt.Fprintf(s.out, "No legal moves from %s\n", pos)
		return
	}
	fmt.Fprintln(s.out, strings.Join(moves, " "))
}

func (s *session) printBoard() {
	renderBoard(s.out, s.game.Board(), s.game.CurrentPlayer(), s.color)
}

// printCommands lists the commands understood during play.
func printCommands(w io.Writer) {
	fmt.Fprintf(w, "  e2e4, e7e8q      Play a move (promotion letter n, b, r or q)\n")
	fmt.Fprintf(w, "  move <move>      Same as typing the move\n")
	fmt.Fprintf(w, "  moves <square>   List legal moves of the piece on a square\n")
	fmt.Fprintf(w, "  bot              Let the bot move for the side to move\n")
	fmt.Fprintf(w, "  new              Start a new game\n")
	fmt.Fprintf(w, "  board            Show the board\n")
	fmt.Fprintf(w, "  fen              Show the position fingerprint\n")
	fmt.Fprintf(w, "  help             Show this list\n")
	fmt.Fprintf(w, "  quit             Leave the game\n")
}
