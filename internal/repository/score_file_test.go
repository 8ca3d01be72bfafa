package repository

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rocketscienceinc/hangman/internal/apperror"
	"github.com/rocketscienceinc/hangman/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileScoreRepository_Save(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "score.txt")

	scoreRepo := NewFileScoreRepository(path)

	// Given: a score
	score := &entity.Score{Wins: 3, Losses: 2, HighScore: 4}

	// When: Save is called
	err := scoreRepo.Save(ctx, score)
	require.NoError(t, err)

	// Then: the file holds three whitespace-separated integers
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "3 2 4\n", string(content))

	// Then: no temp files are left behind
	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestFileScoreRepository_Load(t *testing.T) {
	ctx := context.Background()

	t.Run("Load_Success", func(t *testing.T) {
		scoreRepo := NewFileScoreRepository(filepath.Join(t.TempDir(), "score.txt"))

		// Given: a saved score
		score := &entity.Score{Wins: 5, Losses: 1, HighScore: 7}
		require.NoError(t, scoreRepo.Save(ctx, score))

		// When: Load is called
		loaded, err := scoreRepo.Load(ctx)

		// Then: the loaded score matches the saved one
		require.NoError(t, err)
		assert.Equal(t, score, loaded)
	})

	t.Run("Load_AnyWhitespace", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "score.txt")
		require.NoError(t, os.WriteFile(path, []byte("  2\n\t0   9 "), 0o600))

		loaded, err := NewFileScoreRepository(path).Load(ctx)

		require.NoError(t, err)
		assert.Equal(t, &entity.Score{Wins: 2, Losses: 0, HighScore: 9}, loaded)
	})

	t.Run("Load_NotFound", func(t *testing.T) {
		scoreRepo := NewFileScoreRepository(filepath.Join(t.TempDir(), "score.txt"))

		// When: Load is called with no file on disk
		loaded, err := scoreRepo.Load(ctx)

		// Then: an ErrNotFound error should be returned
		require.ErrorIs(t, err, apperror.ErrNotFound)
		assert.Nil(t, loaded)
	})

	t.Run("Load_Malformed", func(t *testing.T) {
		for _, content := range []string{"", "1 2", "a b c"} {
			path := filepath.Join(t.TempDir(), "score.txt")
			require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

			_, err := NewFileScoreRepository(path).Load(ctx)

			assert.ErrorIs(t, err, ErrMalformedScore, "content %q", content)
		}
	})
}
