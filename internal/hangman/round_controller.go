package hangman

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/hangman/internal/apperror"
	"github.com/rocketscienceinc/hangman/internal/entity"
)

// HintSentinel is the input that reveals the hint instead of guessing a letter.
const HintSentinel = "!"

type Outcome int

const (
	OutcomeHint Outcome = iota + 1
	OutcomeCorrect
	OutcomeWrong
)

func (that Outcome) String() string {
	switch that {
	case OutcomeHint:
		return "hint"
	case OutcomeCorrect:
		return "correct"
	case OutcomeWrong:
		return "wrong"
	default:
		return "unknown"
	}
}

// Guess applies one line of player input to the round.
// Rejected input (invalid or repeated letter) leaves the round untouched.
func Guess(round *entity.Round, input string) (Outcome, error) {
	if err := round.ConfirmOngoingState(); err != nil {
		return 0, err
	}

	input = strings.ToLower(strings.TrimSpace(input))
	if input == HintSentinel {
		round.HintShown = true
		return OutcomeHint, nil
	}

	letter, err := validateGuess(round, input)
	if err != nil {
		return 0, fmt.Errorf("invalid guess: %w", err)
	}

	round.Guessed = append(round.Guessed, letter)

	outcome := OutcomeCorrect
	if !round.InWord(letter) {
		round.WrongGuesses++
		outcome = OutcomeWrong
	}

	round.UpdateRoundState()

	return outcome, nil
}

// validateGuess - checks that input is a single letter that was not guessed before.
func validateGuess(round *entity.Round, input string) (rune, error) {
	if len(input) != 1 || !IsLetter(rune(input[0])) {
		return 0, apperror.ErrInvalidLetter
	}

	letter := rune(input[0])
	if round.HasGuessed(letter) {
		return 0, apperror.ErrAlreadyGuessed
	}

	return letter, nil
}

// IsLetter reports whether r is a lower-case ASCII letter.
func IsLetter(r rune) bool {
	return r >= 'a' && r <= 'z'
}

// ValidWord reports whether word is non-empty and made of lower-case ASCII letters only.
func ValidWord(word string) bool {
	if word == "" {
		return false
	}
	for _, r := range word {
		if !IsLetter(r) {
			return false
		}
	}
	return true
}
