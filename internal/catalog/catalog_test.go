package catalog

import (
	"math/rand"
	"testing"

	"github.com/rocketscienceinc/hangman/internal/apperror"
	"github.com/rocketscienceinc/hangman/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRand() *rand.Rand {
	return rand.New(rand.NewSource(1)) //nolint: gosec // deterministic tests
}

func TestNew(t *testing.T) {
	t.Run("Builds the default catalog", func(t *testing.T) {
		// When: the catalog is built from the defaults
		words, err := New(newRand(), Default()...)
		require.NoError(t, err)

		// Then: categories keep their order
		assert.Equal(t, []string{"Animals", "Countries", "Sports", "Technology"}, words.Categories())
	})

	t.Run("Normalizes words and sets their category", func(t *testing.T) {
		words, err := New(newRand(), entity.Category{
			Name:  " Fruit ",
			Words: []entity.WordEntry{{Word: " Apple ", Hint: " Red or green "}},
		})
		require.NoError(t, err)

		entry, err := words.RandomEntryFrom("Fruit")
		require.NoError(t, err)

		assert.Equal(t, entity.WordEntry{Word: "apple", Hint: "Red or green", Category: "Fruit"}, entry)
	})

	t.Run("Merges categories with the same name", func(t *testing.T) {
		words, err := New(newRand(),
			entity.Category{Name: "A", Words: []entity.WordEntry{{Word: "one"}}},
			entity.Category{Name: "B", Words: []entity.WordEntry{{Word: "two"}}},
			entity.Category{Name: "A", Words: []entity.WordEntry{{Word: "three"}}},
		)
		require.NoError(t, err)

		assert.Equal(t, []string{"A", "B"}, words.Categories())
		assert.Len(t, words.words["A"], 2)
	})

	t.Run("Drops empty categories", func(t *testing.T) {
		words, err := New(newRand(),
			entity.Category{Name: "Empty"},
			entity.Category{Name: "Full", Words: []entity.WordEntry{{Word: "word"}}},
		)
		require.NoError(t, err)

		assert.Equal(t, []string{"Full"}, words.Categories())
	})

	t.Run("Rejects words with non letters", func(t *testing.T) {
		_, err := New(newRand(), entity.Category{Name: "Bad", Words: []entity.WordEntry{{Word: "ice cream"}}})

		assert.ErrorIs(t, err, apperror.ErrInvalidWord)
	})

	t.Run("Rejects an empty catalog", func(t *testing.T) {
		_, err := New(newRand())

		assert.ErrorIs(t, err, apperror.ErrInvalidCategory)
	})
}

func TestCatalog_ByIndex(t *testing.T) {
	words, err := New(newRand(), Default()...)
	require.NoError(t, err)

	t.Run("Returns the category for a 1-based choice", func(t *testing.T) {
		name, err := words.ByIndex(2)

		require.NoError(t, err)
		assert.Equal(t, "Countries", name)
	})

	t.Run("Rejects out of range choices", func(t *testing.T) {
		for _, choice := range []int{0, -1, 5} {
			_, err := words.ByIndex(choice)

			assert.ErrorIs(t, err, apperror.ErrInvalidCategory)
		}
	})
}

func TestCatalog_RandomEntry(t *testing.T) {
	words, err := New(newRand(), Default()...)
	require.NoError(t, err)

	for i := 0; i < 20; i++ {
		entry, err := words.RandomEntry()
		require.NoError(t, err)

		assert.Contains(t, words.Categories(), entry.Category)
		assert.NotEmpty(t, entry.Word)
		assert.NotEmpty(t, entry.Hint)
	}
}

func TestCatalog_RandomEntryFrom(t *testing.T) {
	words, err := New(newRand(), Default()...)
	require.NoError(t, err)

	t.Run("Returns a word of the requested category", func(t *testing.T) {
		entry, err := words.RandomEntryFrom("Sports")

		require.NoError(t, err)
		assert.Equal(t, "Sports", entry.Category)
	})

	t.Run("Unknown category", func(t *testing.T) {
		_, err := words.RandomEntryFrom("Planets")

		assert.ErrorIs(t, err, apperror.ErrInvalidCategory)
	})
}
