package table

import "RouletteLedger/pkg/errors"

var (
	ErrSeatFinished     = errors.New("SEAT FINISHED")
	ErrSeatNotPlaying   = errors.New("SEAT NOT PLAYING")
	ErrSessionNotFound  = errors.New("SESSION NOT FOUND")
	ErrEmptyPlayerID    = errors.New("PLAYER ID EMPTY")
	ErrSessionDuplicate = errors.New("SESSION ALREADY EXIST")
)
