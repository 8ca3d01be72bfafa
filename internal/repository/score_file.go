package repository

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/hangman/internal/apperror"
	"github.com/rocketscienceinc/hangman/internal/entity"
)

var ErrMalformedScore = errors.New("malformed score")

const scoreFields = 3

type fileScore struct {
	path string
}

// NewFileScoreRepository stores the score as "wins losses highScore" in a plain-text file.
func NewFileScoreRepository(path string) ScoreRepository {
	return &fileScore{
		path: path,
	}
}

func (that *fileScore) Load(_ context.Context) (*entity.Score, error) {
	data, err := os.ReadFile(that.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, apperror.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read score file: %w", err)
	}

	fields := strings.Fields(string(data))
	if len(fields) < scoreFields {
		return nil, fmt.Errorf("%w: want %d fields, got %d", ErrMalformedScore, scoreFields, len(fields))
	}

	values := make([]int, scoreFields)
	for i := range values {
		if values[i], err = strconv.Atoi(fields[i]); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformedScore, err)
		}
	}

	return &entity.Score{Wins: values[0], Losses: values[1], HighScore: values[2]}, nil
}

// Save overwrites the file through a temp file and rename, so a crash never leaves half a score.
func (that *fileScore) Save(_ context.Context, score *entity.Score) error {
	content := fmt.Sprintf("%d %d %d\n", score.Wins, score.Losses, score.HighScore)

	tmp, err := os.CreateTemp(filepath.Dir(that.path), filepath.Base(that.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp score file: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err = tmp.WriteString(content); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to write score: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp score file: %w", err)
	}

	if err = os.Rename(tmp.Name(), that.path); err != nil {
		return fmt.Errorf("failed to replace score file: %w", err)
	}

	return nil
}
