package hangman

import (
	"strings"
	"testing"

	"github.com/rocketscienceinc/hangman/internal/apperror"
	"github.com/rocketscienceinc/hangman/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRound(word string) *entity.Round {
	return entity.NewRound("123", entity.WordEntry{Word: word, Hint: "a hint", Category: "Test"}, MaxWrongGuesses)
}

func TestGuess(t *testing.T) {
	t.Run("Correct letter is recorded without penalty", func(t *testing.T) {
		// Given: a new round
		round := newRound("cat")

		// When: the player guesses a letter in the word
		outcome, err := Guess(round, "c")
		require.NoError(t, err)

		// Then: the letter is recorded and the round goes on
		assert.Equal(t, OutcomeCorrect, outcome)
		assert.Equal(t, []rune{'c'}, round.Guessed)
		assert.Equal(t, 0, round.WrongGuesses)
		assert.Equal(t, entity.StatusOngoing, round.Status)
	})

	t.Run("Wrong letter increments wrong guesses", func(t *testing.T) {
		round := newRound("cat")

		outcome, err := Guess(round, "z")
		require.NoError(t, err)

		assert.Equal(t, OutcomeWrong, outcome)
		assert.Equal(t, []rune{'z'}, round.Guessed)
		assert.Equal(t, 1, round.WrongGuesses)
	})

	t.Run("Upper case and surrounding spaces are accepted", func(t *testing.T) {
		round := newRound("cat")

		outcome, err := Guess(round, "  A \n")
		require.NoError(t, err)

		assert.Equal(t, OutcomeCorrect, outcome)
		assert.Equal(t, []rune{'a'}, round.Guessed)
	})

	t.Run("Hint sentinel reveals the hint without consuming a turn", func(t *testing.T) {
		round := newRound("cat")

		outcome, err := Guess(round, HintSentinel)
		require.NoError(t, err)

		assert.Equal(t, OutcomeHint, outcome)
		assert.True(t, round.HintShown)
		assert.Empty(t, round.Guessed)
		assert.Equal(t, 0, round.WrongGuesses)
	})

	t.Run("Invalid input is rejected", func(t *testing.T) {
		for _, input := range []string{"1", "", " ", "ab", "?", "é"} {
			round := newRound("cat")

			_, err := Guess(round, input)

			require.ErrorIs(t, err, apperror.ErrInvalidLetter, "input %q", input)
			assert.Empty(t, round.Guessed)
			assert.Equal(t, 0, round.WrongGuesses)
		}
	})

	t.Run("Repeated letter is rejected without penalty", func(t *testing.T) {
		// Given: a round where 'z' was already guessed
		round := newRound("cat")
		_, err := Guess(round, "z")
		require.NoError(t, err)

		// When: the player guesses 'z' again
		_, err = Guess(round, "Z")

		// Then: ErrAlreadyGuessed is returned and nothing changes
		require.ErrorIs(t, err, apperror.ErrAlreadyGuessed)
		assert.Equal(t, []rune{'z'}, round.Guessed)
		assert.Equal(t, 1, round.WrongGuesses)
	})

	t.Run("Guessing every letter wins the round", func(t *testing.T) {
		round := newRound("cat")

		for _, letter := range []string{"c", "a", "t"} {
			_, err := Guess(round, letter)
			require.NoError(t, err)
		}

		assert.True(t, round.IsWon())
	})

	t.Run("Eight wrong letters lose the round", func(t *testing.T) {
		round := newRound("cat")

		for _, letter := range strings.Split("bdefghij", "") {
			_, err := Guess(round, letter)
			require.NoError(t, err)
		}

		assert.True(t, round.IsLost())
		assert.Equal(t, MaxWrongGuesses, round.WrongGuesses)
	})

	t.Run("Guess after the round finished is rejected", func(t *testing.T) {
		round := newRound("a")
		_, err := Guess(round, "a")
		require.NoError(t, err)

		_, err = Guess(round, "b")

		assert.ErrorIs(t, err, apperror.ErrRoundFinished)
	})
}

func TestGuess_RepeatedLettersNeverChangeState(t *testing.T) {
	words := []string{"elephant", "japan", "programming", "hockey"}

	for _, word := range words {
		round := newRound(word)

		for _, letter := range "aeioustz" {
			if round.IsFinished() {
				break
			}
			_, err := Guess(round, string(letter))
			require.NoError(t, err)

			wrong, guessed := round.WrongGuesses, len(round.Guessed)
			if round.IsFinished() {
				break
			}

			_, err = Guess(round, string(letter))
			require.ErrorIs(t, err, apperror.ErrAlreadyGuessed)
			assert.Equal(t, wrong, round.WrongGuesses)
			assert.Len(t, round.Guessed, guessed)
		}
	}
}

func TestStage(t *testing.T) {
	assert.Len(t, Stages, 9)
	assert.Equal(t, 8, MaxWrongGuesses)
	assert.Equal(t, Stages[0], Stage(-1))
	assert.Equal(t, Stages[3], Stage(3))
	assert.Equal(t, Stages[8], Stage(12))
}

func TestBudget(t *testing.T) {
	assert.Equal(t, 8, Budget(0))
	assert.Equal(t, 8, Budget(9))
	assert.Equal(t, 5, Budget(5))
}

func TestValidWord(t *testing.T) {
	assert.True(t, ValidWord("kangaroo"))
	assert.False(t, ValidWord(""))
	assert.False(t, ValidWord("ice cream"))
	assert.False(t, ValidWord("Kangaroo"))
	assert.False(t, ValidWord("r2d2"))
}
