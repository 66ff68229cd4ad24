package session

import (
	"RouletteLedger/internal/config"
	"RouletteLedger/internal/models"
	"RouletteLedger/internal/table"
	"RouletteLedger/pkg/errors"
	"RouletteLedger/pkg/logger"
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Outcome of a replayed script
type Outcome struct {
	Name    string
	Rounds  []RoundOutcome
	Players []PlayerSummary
}

// RoundOutcome Number is the round's winning number, a result may carry
// its own number when the bet overrides it
type RoundOutcome struct {
	Number  int
	Results []models.RoundResult
}

// PlayerSummary Status is the seat status before the session was closed,
// SeatFinished means the player left the table early
type PlayerSummary struct {
	PlayerID        string
	Status          models.SeatStatus
	Rounds          int
	InitialBankroll int64
	Bankroll        int64
	History         []int64
	Stakes          []int64
	Numbers         []int
	Stats           models.Stats
}

// Replay plays the script round by round, each player on its own ledger.
// A bet the player cannot cover is skipped and a player who has to leave
// the table ignores the remaining rounds.
func Replay(ctx context.Context, s *Script, c config.Configurations, lg logger.Logger) (*Outcome, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	log := lg.WithPrefix("script", s.Name)
	reg := table.NewRegistry(c, log)

	sessions := make(map[string]string, len(s.Players))
	for _, p := range s.Players {
		id, err := reg.OpenWith(p.ID, p.seatOptions(c))
		if err != nil {
			return nil, err
		}
		sessions[p.ID] = id
	}

	out := &Outcome{
		Name:   s.Name,
		Rounds: make([]RoundOutcome, 0, len(s.Rounds)),
	}

	for i, rd := range s.Rounds {
		if err := ctx.Err(); err != nil {
			return nil, errors.WrapStack(err, fmt.Sprintf("round %d", i+1))
		}

		results := make([]models.RoundResult, 0, len(rd.Bets))
		for _, p := range s.Players {
			bet, ok := rd.Bets[p.ID]
			if !ok {
				continue
			}

			rs, played, err := playBet(reg, sessions[p.ID], p.ID, i+1, rd.Number, bet)
			if err != nil {
				return nil, errors.WrapMessage(err, fmt.Sprintf("round %d", i+1))
			}
			if !played {
				continue
			}
			if rs.Skipped {
				log.Debugf("round %d: %s skipped, stake %d above bankroll %d", i+1, p.ID, bet.Stake, rs.Bankroll)
			}
			results = append(results, rs)
		}

		out.Rounds = append(out.Rounds, RoundOutcome{Number: rd.Number, Results: results})
	}

	for _, p := range s.Players {
		sum, err := summarize(reg, sessions[p.ID])
		if err != nil {
			return nil, err
		}
		out.Players = append(out.Players, sum)
		log.Infof("%s finished: %d games, bankroll %d", p.ID, sum.Stats.TotalGames, sum.Bankroll)
	}

	return out, nil
}

// playBet reports played=false for a seat that already left the table
func playBet(reg *table.Registry, sessionID, playerID string, round, number int, bet Bet) (models.RoundResult, bool, error) {
	if bet.Number != nil {
		number = *bet.Number
	}

	var (
		active, affordable bool
		bankroll           int64
	)
	err := reg.Do(sessionID, func(seat *table.Seat) error {
		active = seat.Status() == models.SeatPlaying
		affordable = seat.CanAfford(bet.Stake)
		bankroll = seat.Bankroll()
		return nil
	})
	if err != nil || !active {
		return models.RoundResult{}, false, err
	}

	if !affordable {
		return models.RoundResult{
			PlayerID:      playerID,
			Round:         round,
			WinningNumber: number,
			Stake:         bet.Stake,
			Bankroll:      bankroll,
			Skipped:       true,
		}, true, nil
	}

	rs, err := reg.Play(sessionID, round, number, bet.Result, bet.Stake)
	return rs, err == nil, err
}

func summarize(reg *table.Registry, sessionID string) (PlayerSummary, error) {
	var sum PlayerSummary
	err := reg.Do(sessionID, func(seat *table.Seat) error {
		l := seat.Ledger()
		sum = PlayerSummary{
			PlayerID:        seat.PlayerID,
			Status:          seat.Status(),
			Rounds:          seat.Rounds(),
			InitialBankroll: l.InitialBankroll(),
			Bankroll:        l.Bankroll(),
			History:         l.History(),
			Stakes:          l.Stakes(),
			Numbers:         l.Numbers(),
		}
		return nil
	})
	if err != nil {
		return sum, err
	}

	stats, err := reg.Close(sessionID)
	if err != nil {
		return sum, err
	}
	sum.Stats = stats

	return sum, nil
}

// ReplayFiles loads and replays every script concurrently. Scripts share
// nothing, each gets its own registry and ledgers. Outcomes keep the order
// of paths.
func ReplayFiles(ctx context.Context, paths []string, c config.Configurations, lg logger.Logger) ([]*Outcome, error) {
	outcomes := make([]*Outcome, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			s, err := LoadScript(path)
			if err != nil {
				return err
			}
			o, err := Replay(gctx, s, c, lg)
			if err != nil {
				return errors.WrapMessage(err, path)
			}
			outcomes[i] = o
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return outcomes, nil
}
