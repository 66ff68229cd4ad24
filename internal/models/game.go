package models

// Game is one recorded wager. Money is in cents.
type Game struct {
	Result int64 `yaml:"result"`
	Stake  int64 `yaml:"stake"`
	Number int   `yaml:"number"`
}

// Win reports a strictly positive result, break-even is not a win
func (g Game) Win() bool {
	return g.Result > 0
}

// RoundResult is the outcome of one round for one seated player
type RoundResult struct {
	PlayerID      string
	Round         int
	WinningNumber int
	Stake         int64
	Profit        int64
	Bankroll      int64
	Skipped       bool
}
