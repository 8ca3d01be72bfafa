package console

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/rocketscienceinc/hangman/internal/apperror"
	"github.com/rocketscienceinc/hangman/internal/entity"
)

func (that *Server) showMenu() {
	that.newScreen()
	that.printf(menuText)
	that.printf(promptOption)
}

func (that *Server) handleRandomWord(ctx context.Context, score *entity.Score) error {
	round, err := that.uRound.NewRandomRound()
	if err != nil {
		return fmt.Errorf("failed to start random round: %w", err)
	}

	return that.playRound(ctx, round, score)
}

func (that *Server) handleChooseCategory(ctx context.Context, score *entity.Score) error {
	log := that.logger.With("method", "handleChooseCategory")

	that.printf(fmtCategories)
	for i, name := range that.uRound.Categories() {
		that.printf(fmtCategory, i+1, name)
	}
	that.printf(promptCategory)

	input, err := that.readLine(ctx)
	if err != nil {
		return err
	}

	choice, err := strconv.Atoi(input)
	if err != nil {
		log.Debug("category choice is not a number", "input", input)
		that.notice = msgInvalidCategory
		return nil
	}

	round, err := that.uRound.NewCategoryRound(choice)
	if errors.Is(err, apperror.ErrInvalidCategory) {
		log.Debug("category choice out of range", "choice", choice)
		that.notice = msgInvalidCategory
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to start category round: %w", err)
	}

	return that.playRound(ctx, round, score)
}

func (that *Server) handleCustomWord(ctx context.Context, score *entity.Score) error {
	that.printf(promptCustomWord)
	word, err := that.readLine(ctx)
	if err != nil {
		return err
	}

	that.printf(promptCustomHint)
	hint, err := that.readLine(ctx)
	if err != nil {
		return err
	}

	round, err := that.uRound.NewCustomRound(word, hint)
	if errors.Is(err, apperror.ErrInvalidWord) {
		that.notice = msgInvalidWord
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to start custom round: %w", err)
	}

	return that.playRound(ctx, round, score)
}

func (that *Server) handleShowScore(ctx context.Context, score *entity.Score) error {
	that.printf(fmtScore, score.Wins, score.Losses, score.HighScore)

	return that.waitForEnter(ctx)
}

func (that *Server) handleExit(_ context.Context, _ *entity.Score) error {
	return errExit
}
