package hangman

// Stages is the gallows art, indexed by the number of wrong guesses.
var Stages = [...]string{
	"\n\n\n\n\n\n========\n",
	"\n |\n |\n |\n |\n |\n========\n",
	" +---+\n |   |\n |\n |\n |\n |\n========\n",
	" +---+\n |   |\n |   O\n |\n |\n |\n========\n",
	" +---+\n |   |\n |   O\n |   |\n |\n |\n========\n",
	" +---+\n |   |\n |   O\n |  /|\n |\n |\n========\n",
	" +---+\n |   |\n |   O\n |  /|\\\n |\n |\n========\n",
	" +---+\n |   |\n |   O\n |  /|\\\n |  / \n |\n========\n",
	" +---+\n |   |\n |   O\n |  /|\\\n |  / \\\n |\n========\n",
}

// MaxWrongGuesses is the default wrong-guess budget: one per stage after the empty one.
const MaxWrongGuesses = len(Stages) - 1

// Stage returns the art for the given wrong-guess count, clamped to the known stages.
func Stage(wrongGuesses int) string {
	switch {
	case wrongGuesses < 0:
		return Stages[0]
	case wrongGuesses > MaxWrongGuesses:
		return Stages[MaxWrongGuesses]
	default:
		return Stages[wrongGuesses]
	}
}

// Budget returns maxWrong when the art can show it, otherwise MaxWrongGuesses.
func Budget(maxWrong int) int {
	if maxWrong < 1 || maxWrong > MaxWrongGuesses {
		return MaxWrongGuesses
	}
	return maxWrong
}
