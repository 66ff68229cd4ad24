package session

import (
	"RouletteLedger/internal/config"
	"RouletteLedger/internal/table"
	"RouletteLedger/pkg/errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v2"
)

// Script is a recorded table session: the players and, per round, the
// outcome each player got. Outcomes come from outside, nothing is drawn here.
type Script struct {
	Name    string       `yaml:"name"`
	Players []PlayerSpec `yaml:"players"`
	Rounds  []Round      `yaml:"rounds"`
}

// PlayerSpec fields left empty fall back to the configuration
type PlayerSpec struct {
	ID              string `yaml:"id"`
	InitialBankroll *int64 `yaml:"initial_bankroll,omitempty"`
	MaxRounds       *int   `yaml:"max_rounds,omitempty"`
	MinStake        *int64 `yaml:"min_stake,omitempty"`
}

type Round struct {
	Number int            `yaml:"number"`
	Bets   map[string]Bet `yaml:"bets"`
}

// Bet is the net result and total stake of one player for the round.
// Number overrides the round number for this player's record.
type Bet struct {
	Result int64 `yaml:"result"`
	Stake  int64 `yaml:"stake"`
	Number *int  `yaml:"number,omitempty"`
}

func LoadScript(path string) (*Script, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.WrapStack(err, "open script")
	}
	defer f.Close()

	s, err := DecodeScript(f)
	if err != nil {
		return nil, errors.WrapMessage(err, path)
	}
	if s.Name == "" {
		s.Name = path
	}
	return s, nil
}

func DecodeScript(r io.Reader) (*Script, error) {
	s := &Script{}

	dec := yaml.NewDecoder(r)
	dec.SetStrict(true)
	if err := dec.Decode(s); err != nil {
		if err == io.EOF {
			return nil, errors.WrapStack(ErrEmptyScript)
		}
		return nil, errors.WrapStack(err, "decode script")
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Script) Validate() error {
	if len(s.Players) == 0 {
		return errors.WrapStack(ErrEmptyScript)
	}

	ids := make(map[string]struct{}, len(s.Players))
	for _, p := range s.Players {
		if p.ID == "" {
			return errors.WrapStack(table.ErrEmptyPlayerID)
		}
		if _, ok := ids[p.ID]; ok {
			return errors.WrapStack(ErrDuplicatePlayer, p.ID)
		}
		ids[p.ID] = struct{}{}
	}

	for i, rd := range s.Rounds {
		for id := range rd.Bets {
			if _, ok := ids[id]; !ok {
				return errors.WrapStack(ErrUnknownPlayer, fmt.Sprintf("%s in round %d", id, i+1))
			}
		}
	}
	return nil
}

func (p PlayerSpec) seatOptions(c config.Configurations) table.SeatOptions {
	opts := table.SeatOptionsFromConfig(c)
	if p.InitialBankroll != nil {
		opts.InitialBankroll = *p.InitialBankroll
	}
	if p.MaxRounds != nil {
		opts.MaxRounds = *p.MaxRounds
	}
	if p.MinStake != nil {
		opts.MinStake = *p.MinStake
	}
	return opts
}
