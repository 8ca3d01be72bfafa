package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/hangman/internal/apperror"
	"github.com/rocketscienceinc/hangman/internal/entity"
	"github.com/rocketscienceinc/hangman/internal/hangman"
)

type scoreRepo interface {
	Load(ctx context.Context) (*entity.Score, error)
	Save(ctx context.Context, score *entity.Score) error
}

type wordCatalog interface {
	Categories() []string
	ByIndex(choice int) (string, error)
	RandomEntry() (entity.WordEntry, error)
	RandomEntryFrom(name string) (entity.WordEntry, error)
}

// RoundManager creates rounds, applies guesses and records finished rounds in the score.
type RoundManager struct {
	logger *slog.Logger

	scoreRepo scoreRepo
	catalog   wordCatalog

	maxWrong int
	newID    func() string
}

func NewRoundManager(logger *slog.Logger, scoreRepo scoreRepo, catalog wordCatalog, maxWrong int) *RoundManager {
	return &RoundManager{
		logger: logger.With("component", "round-manager"),

		scoreRepo: scoreRepo,
		catalog:   catalog,

		maxWrong: hangman.Budget(maxWrong),
		newID:    uuid.NewString,
	}
}

// LoadScore returns the stored score. Missing or unreadable data yields a zero score.
func (that *RoundManager) LoadScore(ctx context.Context) *entity.Score {
	log := that.logger.With("method", "LoadScore")

	score, err := that.scoreRepo.Load(ctx)
	switch {
	case errors.Is(err, apperror.ErrNotFound):
		log.Info("no stored score, starting from zero")
		return &entity.Score{}
	case err != nil:
		log.Warn("could not load score, starting from zero", "error", err)
		return &entity.Score{}
	}

	score.Normalize()

	return score
}

func (that *RoundManager) Categories() []string {
	return that.catalog.Categories()
}

func (that *RoundManager) NewRandomRound() (*entity.Round, error) {
	entry, err := that.catalog.RandomEntry()
	if err != nil {
		return nil, fmt.Errorf("failed to pick random word: %w", err)
	}

	return that.newRound(entry), nil
}

// NewCategoryRound starts a round on a random word of the category at the 1-based choice.
func (that *RoundManager) NewCategoryRound(choice int) (*entity.Round, error) {
	name, err := that.catalog.ByIndex(choice)
	if err != nil {
		return nil, fmt.Errorf("failed to pick category: %w", err)
	}

	entry, err := that.catalog.RandomEntryFrom(name)
	if err != nil {
		return nil, fmt.Errorf("failed to pick word from %s: %w", name, err)
	}

	return that.newRound(entry), nil
}

func (that *RoundManager) NewCustomRound(word, hint string) (*entity.Round, error) {
	word = strings.ToLower(strings.TrimSpace(word))
	if !hangman.ValidWord(word) {
		return nil, fmt.Errorf("%w: %q", apperror.ErrInvalidWord, word)
	}

	return that.newRound(entity.WordEntry{
		Word:     word,
		Hint:     strings.TrimSpace(hint),
		Category: entity.CustomCategory,
	}), nil
}

// MakeGuess applies input to the round. When the guess ends the round the score
// is updated and saved; a failed save is reported as apperror.ErrScoreNotSaved
// while the in-memory score stays updated.
func (that *RoundManager) MakeGuess(ctx context.Context, round *entity.Round, score *entity.Score, input string) (hangman.Outcome, error) {
	outcome, err := hangman.Guess(round, input)
	if err != nil {
		return outcome, fmt.Errorf("failed make guess: %w", err)
	}

	that.logger.Debug("guess applied", "roundID", round.ID, "outcome", outcome.String(), "wrongGuesses", round.WrongGuesses)

	if !round.IsFinished() {
		return outcome, nil
	}

	return outcome, that.finishRound(ctx, round, score)
}

func (that *RoundManager) finishRound(ctx context.Context, round *entity.Round, score *entity.Score) error {
	log := that.logger.With("method", "finishRound", "roundID", round.ID)

	if round.IsWon() {
		score.RecordWin()
	} else {
		score.RecordLoss()
	}

	log.Info("round finished",
		"category", round.Entry.Category,
		"result", round.Status,
		"wrongGuesses", round.WrongGuesses,
		"wins", score.Wins,
		"losses", score.Losses,
	)

	if err := that.scoreRepo.Save(ctx, score); err != nil {
		log.Error("failed to save score", "error", err)
		return fmt.Errorf("%w: %w", apperror.ErrScoreNotSaved, err)
	}

	return nil
}

func (that *RoundManager) newRound(entry entity.WordEntry) *entity.Round {
	round := entity.NewRound(that.newID(), entry, that.maxWrong)

	that.logger.Info("round started", "roundID", round.ID, "category", entry.Category)

	return round
}
