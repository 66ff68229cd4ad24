package session

import (
	"RouletteLedger/internal/ledger"
	"RouletteLedger/internal/models"
	"RouletteLedger/pkg/errors"
	"fmt"
	"strconv"
	"strings"
)

const gameArity = 3

// ParseGame reads exactly three integers: result, stake, number.
func ParseGame(args []string) (models.Game, error) {
	if len(args) != gameArity {
		return models.Game{}, errors.WrapStack(ledger.ErrArgument,
			fmt.Sprintf("expected %d values (result, stake, number), got %d", gameArity, len(args)))
	}

	var vals [gameArity]int64
	for i, name := range []string{"result", "stake", "number"} {
		v, err := strconv.ParseInt(strings.TrimSpace(args[i]), 10, 64)
		if err != nil {
			return models.Game{}, errors.WrapStack(ledger.ErrArgument,
				fmt.Sprintf("%s %q is not an integer", name, args[i]))
		}
		vals[i] = v
	}

	number := int(vals[2])
	if int64(number) != vals[2] {
		return models.Game{}, errors.WrapStack(ledger.ErrArgument, fmt.Sprintf("number %d overflows int", vals[2]))
	}

	return models.Game{Result: vals[0], Stake: vals[1], Number: number}, nil
}

// Record parses args and records the game, nothing is recorded on error
func Record(l *ledger.Ledger, args ...string) error {
	g, err := ParseGame(args)
	if err != nil {
		return err
	}
	return l.RecordGame(g.Result, g.Stake, g.Number)
}

// RecordSpec records a game given as "result,stake,number"
func RecordSpec(l *ledger.Ledger, spec string) error {
	return Record(l, strings.Split(spec, ",")...)
}
