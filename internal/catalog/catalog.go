package catalog

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/rocketscienceinc/hangman/internal/apperror"
	"github.com/rocketscienceinc/hangman/internal/entity"
	"github.com/rocketscienceinc/hangman/internal/hangman"
)

// Catalog maps category names to their words. It is built once and read-only afterwards.
type Catalog struct {
	rng   *rand.Rand
	names []string
	words map[string][]entity.WordEntry
}

// New builds a catalog from categories, keeping their order.
// Entries of categories sharing a name are merged and empty categories are dropped.
func New(rng *rand.Rand, categories ...entity.Category) (*Catalog, error) {
	that := &Catalog{
		rng:   rng,
		words: make(map[string][]entity.WordEntry, len(categories)),
	}

	for _, category := range categories {
		name := strings.TrimSpace(category.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: empty name", apperror.ErrInvalidCategory)
		}

		for _, entry := range category.Words {
			word := strings.ToLower(strings.TrimSpace(entry.Word))
			if !hangman.ValidWord(word) {
				return nil, fmt.Errorf("%w: %q in category %s", apperror.ErrInvalidWord, entry.Word, name)
			}

			if _, ok := that.words[name]; !ok {
				that.names = append(that.names, name)
			}
			that.words[name] = append(that.words[name], entity.WordEntry{
				Word:     word,
				Hint:     strings.TrimSpace(entry.Hint),
				Category: name,
			})
		}
	}

	if len(that.names) == 0 {
		return nil, fmt.Errorf("%w: catalog has no words", apperror.ErrInvalidCategory)
	}

	return that, nil
}

// Categories returns the category names in display order.
func (that *Catalog) Categories() []string {
	return append([]string(nil), that.names...)
}

// ByIndex returns the category name for a 1-based menu choice.
func (that *Catalog) ByIndex(choice int) (string, error) {
	if choice < 1 || choice > len(that.names) {
		return "", fmt.Errorf("%w: %d", apperror.ErrInvalidCategory, choice)
	}
	return that.names[choice-1], nil
}

// RandomEntry picks a random category, then a random word from it.
func (that *Catalog) RandomEntry() (entity.WordEntry, error) {
	name := that.names[that.rng.Intn(len(that.names))] //nolint: gosec // it's ok
	return that.RandomEntryFrom(name)
}

func (that *Catalog) RandomEntryFrom(name string) (entity.WordEntry, error) {
	entries, ok := that.words[name]
	if !ok {
		return entity.WordEntry{}, fmt.Errorf("%w: %s", apperror.ErrInvalidCategory, name)
	}
	return entries[that.rng.Intn(len(entries))], nil //nolint: gosec // it's ok
}
