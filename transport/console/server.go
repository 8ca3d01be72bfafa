package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/rocketscienceinc/hangman/internal/apperror"
	"github.com/rocketscienceinc/hangman/internal/entity"
	"github.com/rocketscienceinc/hangman/internal/hangman"
)

// clearSequence moves the cursor home and clears the terminal.
const clearSequence = "\033[H\033[2J"

var errExit = errors.New("exit requested")

type uRound interface {
	LoadScore(ctx context.Context) *entity.Score
	Categories() []string

	NewRandomRound() (*entity.Round, error)
	NewCategoryRound(choice int) (*entity.Round, error)
	NewCustomRound(word, hint string) (*entity.Round, error)

	MakeGuess(ctx context.Context, round *entity.Round, score *entity.Score, input string) (hangman.Outcome, error)
}

type Server struct {
	logger *slog.Logger
	uRound uRound

	in          io.Reader
	out         io.Writer
	lines       chan string
	clearScreen bool

	// notice is feedback shown at the top of the next screen.
	notice string

	handlers map[string]func(ctx context.Context, score *entity.Score) error
}

func New(logger *slog.Logger, uRound uRound, in io.Reader, out io.Writer, clearScreen bool) *Server {
	server := &Server{
		logger: logger.With("component", "console"),
		uRound: uRound,

		in:          in,
		out:         out,
		clearScreen: clearScreen,

		handlers: make(map[string]func(context.Context, *entity.Score) error),
	}

	server.handlers["1"] = server.handleRandomWord
	server.handlers["2"] = server.handleChooseCategory
	server.handlers["3"] = server.handleCustomWord
	server.handlers["4"] = server.handleShowScore
	server.handlers["5"] = server.handleExit

	return server
}

// Start - runs the menu loop until the player exits or the input ends.
func (that *Server) Start(ctx context.Context) error {
	log := that.logger.With("method", "Start")

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	that.lines = make(chan string)
	go that.readLines(ctx)

	score := that.uRound.LoadScore(ctx)
	log.Info("score loaded", "wins", score.Wins, "losses", score.Losses, "highScore", score.HighScore)

	for {
		that.showMenu()

		choice, err := that.readLine(ctx)
		if err != nil {
			return that.stopReason(err)
		}

		handler, ok := that.handlers[choice]
		if !ok {
			log.Debug("menu choice rejected", "error", fmt.Errorf("%w: %q", apperror.ErrInvalidOption, choice))
			that.notice = msgInvalidOption
			continue
		}

		if err = handler(ctx, score); err != nil {
			return that.stopReason(err)
		}
	}
}

// stopReason maps the error that ended the loop to Start's result: exit and end of input are a normal stop.
func (that *Server) stopReason(err error) error {
	if errors.Is(err, errExit) || errors.Is(err, io.EOF) {
		that.logger.Info("console stopped", "reason", err.Error())
		return nil
	}
	return err
}

// readLines - feeds input lines to the loop so that a pending prompt does not block cancellation.
func (that *Server) readLines(ctx context.Context) {
	defer close(that.lines)

	scanner := bufio.NewScanner(that.in)
	for scanner.Scan() {
		select {
		case that.lines <- scanner.Text():
		case <-ctx.Done():
			return
		}
	}

	if err := scanner.Err(); err != nil {
		that.logger.Error("failed to read input", "error", err)
	}
}

func (that *Server) readLine(ctx context.Context) (string, error) {
	select {
	case <-ctx.Done():
		return "", fmt.Errorf("input canceled: %w", ctx.Err())
	case line, ok := <-that.lines:
		if !ok {
			return "", io.EOF
		}
		return strings.TrimSpace(line), nil
	}
}

func (that *Server) waitForEnter(ctx context.Context) error {
	that.printf(promptContinue)

	_, err := that.readLine(ctx)

	return err
}

// newScreen clears the terminal when enabled and prints any pending notice.
func (that *Server) newScreen() {
	if that.clearScreen {
		that.printf(clearSequence)
	}

	if that.notice != "" {
		that.printf("%s\n", that.notice)
		that.notice = ""
	}
}

func (that *Server) printf(format string, args ...any) {
	if _, err := fmt.Fprintf(that.out, format, args...); err != nil {
		that.logger.Error("failed to write output", "error", err)
	}
}
