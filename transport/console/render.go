package console

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rocketscienceinc/hangman/internal/apperror"
	"github.com/rocketscienceinc/hangman/internal/entity"
	"github.com/rocketscienceinc/hangman/internal/hangman"
)

// playRound reads guesses until the round is finished, then shows the result.
func (that *Server) playRound(ctx context.Context, round *entity.Round, score *entity.Score) error {
	log := that.logger.With("method", "playRound", "roundID", round.ID)

	for !round.IsFinished() {
		that.newScreen()
		that.renderRound(round)

		input, err := that.readLine(ctx)
		if err != nil {
			return err
		}

		outcome, err := that.uRound.MakeGuess(ctx, round, score, input)
		switch {
		case errors.Is(err, apperror.ErrInvalidLetter):
			that.notice = msgInvalidLetter
		case errors.Is(err, apperror.ErrAlreadyGuessed):
			that.notice = msgAlreadyGuessed
		case errors.Is(err, apperror.ErrScoreNotSaved):
			log.Warn("round finished without saving score", "error", err)
			that.notice = msgScoreNotSaved
		case err != nil:
			return fmt.Errorf("failed to play round: %w", err)
		default:
			that.notice = outcomeNotice(outcome)
		}
	}

	that.newScreen()
	that.renderResult(round)

	return that.waitForEnter(ctx)
}

func outcomeNotice(outcome hangman.Outcome) string {
	switch outcome {
	case hangman.OutcomeCorrect:
		return msgGoodGuess
	case hangman.OutcomeWrong:
		return msgWrongGuess
	default:
		return ""
	}
}

func (that *Server) renderRound(round *entity.Round) {
	that.printf(fmtRoundTitle, round.Entry.Category)
	that.printf("%s\n", hangman.Stage(round.WrongGuesses))
	that.printf("\n%s\n\n", round.MaskedWord())
	that.printf(fmtMissed, joinLetters(round.MissedLetters()))
	that.printf(fmtGuessed, joinLetters(round.Guessed))

	if round.HintShown {
		that.printf(fmtHint, round.Entry.Hint)
	}

	that.printf(promptGuess)
}

func (that *Server) renderResult(round *entity.Round) {
	that.printf("%s\n", hangman.Stage(round.WrongGuesses))

	if round.IsWon() {
		that.printf(fmtWon, round.Entry.Word)
		return
	}

	that.printf(fmtLost, round.Entry.Word)
}

func joinLetters(letters []rune) string {
	parts := make([]string, 0, len(letters))
	for _, letter := range letters {
		parts = append(parts, string(letter))
	}

	return strings.Join(parts, " ")
}
