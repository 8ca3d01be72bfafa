package repository

import (
	"context"

	"github.com/rocketscienceinc/hangman/internal/entity"
)

// ScoreRepository persists the single score record.
// Load returns apperror.ErrNotFound when nothing has been saved yet.
type ScoreRepository interface {
	Load(ctx context.Context) (*entity.Score, error)
	Save(ctx context.Context, score *entity.Score) error
}
