package apperror

import "errors"

var (
	ErrRoundFinished   = errors.New("round is already finished")
	ErrInvalidLetter   = errors.New("please enter a valid letter")
	ErrAlreadyGuessed  = errors.New("letter is already guessed")
	ErrInvalidOption   = errors.New("invalid option")
	ErrInvalidCategory = errors.New("invalid category")
	ErrInvalidWord     = errors.New("invalid word")
	ErrNotFound        = errors.New("not found")
	ErrScoreNotSaved   = errors.New("could not save score")
)
