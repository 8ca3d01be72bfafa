package console

const (
	menuText = "=== Hangman Game ===\n" +
		"1. Play (Random Word)\n" +
		"2. Play (Choose Category)\n" +
		"3. Play (Custom Word)\n" +
		"4. Show Score\n" +
		"5. Exit\n"

	promptOption     = "Choose an option: "
	promptCategory   = "Select category: "
	promptCustomWord = "Enter a word for your friend to guess: "
	promptCustomHint = "Enter a hint for this word: "
	promptGuess      = "Enter your guess (or '!' for hint): "
	promptContinue   = "Press Enter to continue..."

	msgInvalidOption   = "Invalid option!"
	msgInvalidCategory = "Invalid category!"
	msgInvalidWord     = "Invalid word!"
	msgInvalidLetter   = "Please enter a valid letter!"
	msgAlreadyGuessed  = "You already guessed that letter!"
	msgGoodGuess       = "Good guess!"
	msgWrongGuess      = "Wrong guess!"
	msgScoreNotSaved   = "Could not save score! See the log for details."

	fmtCategories = "Available categories:\n"
	fmtCategory   = "%d. %s\n"
	fmtScore      = "Wins: %d, Losses: %d, High Score: %d\n"
	fmtRoundTitle = "Category: %s\n"
	fmtMissed     = "Missed letters: %s\n"
	fmtGuessed    = "Guessed letters: %s\n"
	fmtHint       = "Hint: %s\n"
	fmtWon        = "\nCongratulations! You guessed the word: %s\n"
	fmtLost       = "\nGame Over! The word was: %s\n"
)
