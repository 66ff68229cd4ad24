/*
Session ledger of a single player.
Keeps the bankroll and the append-only list of recorded games, results are
supplied by the caller. A Ledger has no internal locking, callers sharing
one between goroutines must serialize access themselves.
*/
package ledger

import (
	"RouletteLedger/internal/models"
	"RouletteLedger/pkg/errors"
	"fmt"
	"runtime"
)

const minCapacity = 16

type Ledger struct {
	initial  int64
	bankroll int64
	games    []models.Game

	strict   *numberRange
	maxGames int
}

func New(opts ...Option) *Ledger {
	l := &Ledger{
		initial:  DefaultBankroll,
		bankroll: DefaultBankroll,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// RecordGame appends one game and applies result to the bankroll.
// On error nothing is changed.
func (l *Ledger) RecordGame(result, stake int64, number int) error {
	if l.strict != nil && !l.strict.contains(number) {
		return errors.WrapStack(ErrArgument,
			fmt.Sprintf("number %d outside [%d, %d]", number, l.strict.min, l.strict.max))
	}

	if len(l.games) == cap(l.games) {
		games, err := l.grow()
		if err != nil {
			return err
		}
		l.games = games
	}

	l.games = append(l.games, models.Game{Result: result, Stake: stake, Number: number})
	l.bankroll += result

	return nil
}

// grow returns a copy of games with room for at least one more record.
// The ledger is not touched, so a failure leaves it as it was.
func (l *Ledger) grow() (games []models.Game, err error) {
	size := len(l.games)
	if l.maxGames > 0 && size >= l.maxGames {
		return nil, errors.WrapStack(ErrAllocation, fmt.Sprintf("ledger is full: %d games", l.maxGames))
	}

	newCap := size * 2
	switch {
	case newCap < minCapacity:
		newCap = minCapacity
	case newCap < size:
		newCap = size + 1
	}
	if l.maxGames > 0 && newCap > l.maxGames {
		newCap = l.maxGames
	}

	defer func() {
		if r := recover(); r != nil {
			rErr, ok := r.(runtime.Error)
			if !ok {
				panic(r)
			}
			games, err = nil, errors.WrapStack(ErrAllocation, rErr.Error())
		}
	}()

	games = make([]models.Game, size, newCap)
	copy(games, l.games)

	return games, nil
}

func (l *Ledger) Bankroll() int64 {
	return l.bankroll
}

func (l *Ledger) InitialBankroll() int64 {
	return l.initial
}

func (l *Ledger) Len() int {
	return len(l.games)
}

// History returns a copy of the game results in recording order
func (l *Ledger) History() []int64 {
	rs := make([]int64, len(l.games))
	for i, g := range l.games {
		rs[i] = g.Result
	}
	return rs
}

func (l *Ledger) Stakes() []int64 {
	rs := make([]int64, len(l.games))
	for i, g := range l.games {
		rs[i] = g.Stake
	}
	return rs
}

func (l *Ledger) Numbers() []int {
	rs := make([]int, len(l.games))
	for i, g := range l.games {
		rs[i] = g.Number
	}
	return rs
}

func (l *Ledger) Games() []models.Game {
	rs := make([]models.Game, len(l.games))
	copy(rs, l.games)
	return rs
}

// Stats aggregates the history in one pass.
// Both extremes start at 0, so a session of only losses reports
// MaxProfit 0 and a session of only wins reports MaxLoss 0.
func (l *Ledger) Stats() models.Stats {
	s := models.Stats{TotalGames: len(l.games)}

	for _, g := range l.games {
		s.TotalProfit += g.Result
		if g.Result > s.MaxProfit {
			s.MaxProfit = g.Result
		}
		if g.Result < s.MaxLoss {
			s.MaxLoss = g.Result
		}
		if g.Win() {
			s.Wins++
		}
	}

	if s.TotalGames > 0 {
		s.WinRate = float64(s.Wins) / float64(s.TotalGames) * 100
		s.HasWinRate = true
	}

	return s
}
