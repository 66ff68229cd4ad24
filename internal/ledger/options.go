package ledger

// DefaultBankroll is 1000.00 in cents
const DefaultBankroll int64 = 100000

type Option func(*Ledger)

// WithInitialBankroll accepts any value, zero and negative included
func WithInitialBankroll(cents int64) Option {
	return func(l *Ledger) {
		l.initial = cents
		l.bankroll = cents
	}
}

// WithNumberRange rejects numbers outside [min, max] on RecordGame.
// Without it numbers are opaque and never checked.
func WithNumberRange(min, max int) Option {
	return func(l *Ledger) {
		l.strict = &numberRange{min: min, max: max}
	}
}

// WithMaxGames caps the number of records the ledger may hold, 0 means unbounded
func WithMaxGames(n int) Option {
	return func(l *Ledger) {
		if n < 0 {
			n = 0
		}
		l.maxGames = n
	}
}

type numberRange struct {
	min, max int
}

func (r *numberRange) contains(n int) bool {
	return n >= r.min && n <= r.max
}
