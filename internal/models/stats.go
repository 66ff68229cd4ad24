package models

const (
	KeyTotalGames  = "total_games"
	KeyTotalProfit = "total_profit"
	KeyMaxProfit   = "max_profit"
	KeyMaxLoss     = "max_loss"
	KeyWins        = "wins"
	KeyWinRate     = "win_rate"
)

// Stats is an aggregate over a ledger history.
// WinRate is meaningful only when HasWinRate is set.
type Stats struct {
	TotalGames  int
	TotalProfit int64
	MaxProfit   int64
	MaxLoss     int64
	Wins        int
	WinRate     float64
	HasWinRate  bool
}

func (s Stats) WinRateValue() (float64, bool) {
	return s.WinRate, s.HasWinRate
}

// Map returns the stats keyed by their wire names. win_rate is absent
// when no game was recorded.
func (s Stats) Map() map[string]interface{} {
	m := map[string]interface{}{
		KeyTotalGames:  s.TotalGames,
		KeyTotalProfit: s.TotalProfit,
		KeyMaxProfit:   s.MaxProfit,
		KeyMaxLoss:     s.MaxLoss,
		KeyWins:        s.Wins,
	}
	if s.HasWinRate {
		m[KeyWinRate] = s.WinRate
	}
	return m
}
