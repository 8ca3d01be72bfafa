package entity

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rocketscienceinc/hangman/internal/apperror"
)

const (
	StatusOngoing = "ongoing"
	StatusWon     = "won"
	StatusLost    = "lost"

	CustomCategory = "Custom"

	maskedLetter = "_"
)

var ErrUnknownRoundStatus = errors.New("unknown round status")

// WordEntry is the word a round is played on.
type WordEntry struct {
	Word     string `json:"word" yaml:"word"`
	Hint     string `json:"hint" yaml:"hint"`
	Category string `json:"category,omitempty" yaml:"-"`
}

// Category groups candidate words under a name.
type Category struct {
	Name  string      `json:"name" yaml:"name"`
	Words []WordEntry `json:"words" yaml:"words"`
}

// Round holds the state of a single playthrough, from word selection to win or loss.
type Round struct {
	ID           string    `json:"id"`
	Entry        WordEntry `json:"entry"`
	Guessed      []rune    `json:"guessed"`
	WrongGuesses int       `json:"wrong_guesses"`
	MaxWrong     int       `json:"max_wrong"`
	HintShown    bool      `json:"hint_shown"`
	Status       string    `json:"status"`
}

func NewRound(id string, entry WordEntry, maxWrong int) *Round {
	return &Round{
		ID:       id,
		Entry:    entry,
		Guessed:  []rune{},
		MaxWrong: maxWrong,
		Status:   StatusOngoing,
	}
}

func (that *Round) HasGuessed(letter rune) bool {
	for _, guessed := range that.Guessed {
		if guessed == letter {
			return true
		}
	}
	return false
}

func (that *Round) InWord(letter rune) bool {
	return strings.ContainsRune(that.Entry.Word, letter)
}

// IsWordGuessed reports whether every letter of the word has been guessed.
func (that *Round) IsWordGuessed() bool {
	for _, letter := range that.Entry.Word {
		if !that.HasGuessed(letter) {
			return false
		}
	}
	return true
}

// MaskedWord renders the word with unguessed letters replaced by underscores, e.g. "c _ t".
func (that *Round) MaskedWord() string {
	parts := make([]string, 0, len(that.Entry.Word))
	for _, letter := range that.Entry.Word {
		if that.HasGuessed(letter) {
			parts = append(parts, string(letter))
		} else {
			parts = append(parts, maskedLetter)
		}
	}
	return strings.Join(parts, " ")
}

// MissedLetters returns the guessed letters that are not in the word, in guess order.
func (that *Round) MissedLetters() []rune {
	missed := make([]rune, 0, that.WrongGuesses)
	for _, letter := range that.Guessed {
		if !that.InWord(letter) {
			missed = append(missed, letter)
		}
	}
	return missed
}

func (that *Round) IsFinished() bool {
	return that.IsWon() || that.IsLost()
}

func (that *Round) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that *Round) IsWon() bool {
	return that.Status == StatusWon
}

func (that *Round) IsLost() bool {
	return that.Status == StatusLost
}

func (that *Round) ConfirmOngoingState() error {
	switch {
	case that.IsFinished():
		return apperror.ErrRoundFinished
	case that.IsOngoing():
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnknownRoundStatus, that.Status)
	}
}

// UpdateRoundState moves the round to won or lost once a terminal condition is reached.
func (that *Round) UpdateRoundState() {
	switch {
	case that.IsWordGuessed():
		that.Status = StatusWon
	case that.WrongGuesses >= that.MaxWrong:
		that.Status = StatusLost
	default:
		that.Status = StatusOngoing
	}
}
