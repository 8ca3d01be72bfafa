package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/rocketscienceinc/hangman/internal/apperror"
	"github.com/rocketscienceinc/hangman/internal/entity"
)

// scoreRowID is the id of the only row in the scores table.
const scoreRowID = 1

type sqliteScore struct {
	conn *sql.DB
}

func NewSQLiteScoreRepository(conn *sql.DB) ScoreRepository {
	return &sqliteScore{
		conn: conn,
	}
}

func (that *sqliteScore) Load(ctx context.Context) (*entity.Score, error) {
	query := `SELECT wins, losses, high_score FROM scores WHERE id = ?`

	var score entity.Score

	err := that.conn.QueryRowContext(ctx, query, scoreRowID).Scan(&score.Wins, &score.Losses, &score.HighScore)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperror.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("can't load score: %w", err)
	}

	return &score, nil
}

func (that *sqliteScore) Save(ctx context.Context, score *entity.Score) error {
	query := `INSERT INTO scores (id, wins, losses, high_score) VALUES (?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET wins = excluded.wins, losses = excluded.losses, high_score = excluded.high_score`

	if _, err := that.conn.ExecContext(ctx, query, scoreRowID, score.Wins, score.Losses, score.HighScore); err != nil {
		return fmt.Errorf("can't save score: %w", err)
	}

	return nil
}
