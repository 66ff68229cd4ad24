package ledger

import "RouletteLedger/pkg/errors"

var (
	// ErrAllocation is returned when the game storage cannot grow.
	ErrAllocation = errors.New("LEDGER ALLOCATION FAILED")
	// ErrArgument is returned for malformed or rejected game arguments.
	ErrArgument = errors.New("LEDGER BAD ARGUMENT")
)
