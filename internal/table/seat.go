package table

import (
	"RouletteLedger/internal/config"
	"RouletteLedger/internal/ledger"
	"RouletteLedger/internal/models"
	"RouletteLedger/pkg/errors"
)

type SeatOptions struct {
	InitialBankroll int64
	// MaxRounds 0 means no limit
	MaxRounds int
	MinStake  int64
	Ledger    []ledger.Option
}

// SeatOptionsFromConfig maps the ledger and table sections
func SeatOptionsFromConfig(c config.Configurations) SeatOptions {
	opts := SeatOptions{
		InitialBankroll: c.Ledger.InitialBankroll,
		MaxRounds:       c.Table.MaxRounds,
		MinStake:        c.Table.MinStake,
	}
	if c.Ledger.MaxGames > 0 {
		opts.Ledger = append(opts.Ledger, ledger.WithMaxGames(c.Ledger.MaxGames))
	}
	if c.Ledger.StrictNumbers {
		opts.Ledger = append(opts.Ledger, ledger.WithNumberRange(c.Ledger.NumberMin, c.Ledger.NumberMax))
	}
	return opts
}

// Seat is a player at a table together with the player's session ledger
type Seat struct {
	PlayerID string

	ledger    *ledger.Ledger
	maxRounds int
	minStake  int64
	status    models.SeatStatus
	rounds    int
}

func NewSeat(playerID string, opts SeatOptions) (*Seat, error) {
	if playerID == "" {
		return nil, errors.WrapStack(ErrEmptyPlayerID)
	}

	lOpts := append([]ledger.Option{ledger.WithInitialBankroll(opts.InitialBankroll)}, opts.Ledger...)

	return &Seat{
		PlayerID:  playerID,
		ledger:    ledger.New(lOpts...),
		maxRounds: opts.MaxRounds,
		minStake:  opts.MinStake,
		status:    models.SeatWaiting,
	}, nil
}

func (s *Seat) Join() error {
	if s.status == models.SeatFinished {
		return errors.WrapStack(ErrSeatFinished, s.PlayerID)
	}
	s.status = models.SeatPlaying
	return nil
}

func (s *Seat) Leave() {
	s.status = models.SeatFinished
}

func (s *Seat) Status() models.SeatStatus {
	return s.status
}

func (s *Seat) Rounds() int {
	return s.rounds
}

// Ledger gives read access to the seat's ledger. Games must be recorded
// through Record so the round counter stays in step.
func (s *Seat) Ledger() *ledger.Ledger {
	return s.ledger
}

func (s *Seat) Bankroll() int64 {
	return s.ledger.Bankroll()
}

func (s *Seat) CanAfford(stake int64) bool {
	return stake <= s.ledger.Bankroll()
}

// ShouldLeave is true once the round limit is reached or the bankroll
// no longer covers the minimum stake
func (s *Seat) ShouldLeave() bool {
	if s.maxRounds > 0 && s.rounds >= s.maxRounds {
		return true
	}
	return s.ledger.Bankroll() < s.minStake
}

// Record stores the outcome of one round
func (s *Seat) Record(round, number int, profit, stake int64) (models.RoundResult, error) {
	switch s.status {
	case models.SeatFinished:
		return models.RoundResult{}, errors.WrapStack(ErrSeatFinished, s.PlayerID)
	case models.SeatWaiting:
		return models.RoundResult{}, errors.WrapStack(ErrSeatNotPlaying, s.PlayerID)
	}

	if err := s.ledger.RecordGame(profit, stake, number); err != nil {
		return models.RoundResult{}, errors.WrapMessage(err, s.PlayerID)
	}
	s.rounds++

	return models.RoundResult{
		PlayerID:      s.PlayerID,
		Round:         round,
		WinningNumber: number,
		Stake:         stake,
		Profit:        profit,
		Bankroll:      s.ledger.Bankroll(),
	}, nil
}
