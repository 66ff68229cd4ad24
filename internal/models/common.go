package models

import (
	"RouletteLedger/pkg/watcher"
)

const (
	EventRoundRecorded watcher.EventType = iota
	EventSeatFinished
)

type SeatStatus string

const (
	SeatWaiting  SeatStatus = "waiting"
	SeatPlaying  SeatStatus = "playing"
	SeatFinished SeatStatus = "finished"
)

// SeatEvent is the payload of EventSeatFinished
type SeatEvent struct {
	SessionID string
	PlayerID  string
	Rounds    int
	Bankroll  int64
}
