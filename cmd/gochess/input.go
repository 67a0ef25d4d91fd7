package main

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"golang.org/x/term"

	"github.com/lgbarn/gochess/internal/config"
)

// lineReader supplies command lines. Readline returns io.EOF when input
// ends.
type lineReader interface {
	Readline() (string, error)
	Close() error
}

// prompter is implemented by readers that show a prompt.
type prompter interface {
	SetPrompt(prompt string)
}

// newLineReader returns an interactive readline prompt when stdin is a
// terminal and a plain line scanner otherwise. Games without a human seat
// never read input.
func newLineReader(cfg *config.Config, stdin *os.File) (lineReader, error) {
	if cfg.Game.White == config.Bot && cfg.Game.Black == config.Bot {
		return newScanReader(strings.NewReader("")), nil
	}
	if !term.IsTerminal(int(stdin.Fd())) { //nolint:gosec // G115: file descriptors fit in int
		return newScanReader(stdin), nil
	}
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "> ",
		HistoryFile:     cfg.Display.HistoryFile,
		InterruptPrompt: "^C",
		EOFPrompt:       "quit",
	})
	if err != nil {
		return nil, err
	}
	return rl, nil
}

// scanReader reads lines from a non-interactive source such as a pipe.
type scanReader struct {
	sc *bufio.Scanner
}

func newScanReader(r io.Reader) scanReader {
	return scanReader{bufio.NewScanner(r)}
}

// Readline returns the next line without its newline.
func (s scanReader) Readline() (string, error) {
	if s.sc.Scan() {
		return s.sc.Text(), nil
	}
	if err := s.sc.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}

// Close does nothing; the caller owns the underlying reader.
func (s scanReader) Close() error {
	return nil
}
