package entity

// Score is the persisted win/loss record. HighScore never drops below Wins.
type Score struct {
	Wins      int `json:"wins"`
	Losses    int `json:"losses"`
	HighScore int `json:"high_score"`
}

func (that *Score) RecordWin() {
	that.Wins++
	if that.Wins > that.HighScore {
		that.HighScore = that.Wins
	}
}

func (that *Score) RecordLoss() {
	that.Losses++
}

// Normalize clamps negative counters and restores HighScore >= Wins on data read from storage.
func (that *Score) Normalize() {
	that.Wins = max(that.Wins, 0)
	that.Losses = max(that.Losses, 0)
	that.HighScore = max(that.HighScore, that.Wins)
}
