package session

import "RouletteLedger/pkg/errors"

var (
	ErrEmptyScript     = errors.New("SCRIPT HAS NO PLAYERS")
	ErrDuplicatePlayer = errors.New("DUPLICATE PLAYER")
	ErrUnknownPlayer   = errors.New("UNKNOWN PLAYER")
)
