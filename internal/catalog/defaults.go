package catalog

import "github.com/rocketscienceinc/hangman/internal/entity"

// Default returns the built-in categories.
func Default() []entity.Category {
	return []entity.Category{
		{
			Name: "Animals",
			Words: []entity.WordEntry{
				{Word: "elephant", Hint: "Largest land animal"},
				{Word: "giraffe", Hint: "Tallest animal"},
				{Word: "kangaroo", Hint: "Australian marsupial"},
				{Word: "penguin", Hint: "Flightless bird in Antarctica"},
			},
		},
		{
			Name: "Countries",
			Words: []entity.WordEntry{
				{Word: "canada", Hint: "Country with maple leaf flag"},
				{Word: "brazil", Hint: "Largest country in South America"},
				{Word: "japan", Hint: "Land of the Rising Sun"},
				{Word: "egypt", Hint: "Home of the pyramids"},
			},
		},
		{
			Name: "Sports",
			Words: []entity.WordEntry{
				{Word: "football", Hint: "Known as soccer in the US"},
				{Word: "cricket", Hint: "Popular in India and England"},
				{Word: "tennis", Hint: "Played with rackets and a yellow ball"},
				{Word: "hockey", Hint: "Played on ice or field"},
			},
		},
		{
			Name: "Technology",
			Words: []entity.WordEntry{
				{Word: "computer", Hint: "Electronic device for processing data"},
				{Word: "keyboard", Hint: "Input device with keys"},
				{Word: "internet", Hint: "Global network of computers"},
				{Word: "programming", Hint: "Writing code"},
			},
		},
	}
}
