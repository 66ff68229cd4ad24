/*
In-memory registry of open seats.
Every seat owns one ledger, ledgers are not safe for concurrent use, so all
access to a seat goes through a lock keyed by its session id. Idle sessions
expire after the configured TTL.
*/
package table

import (
	"RouletteLedger/internal/config"
	"RouletteLedger/internal/models"
	"RouletteLedger/pkg/errors"
	"RouletteLedger/pkg/logger"
	"RouletteLedger/pkg/watcher"
	"reflect"
	"sort"

	"github.com/alibaba/pouch/pkg/kmutex"
	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

type Registry struct {
	sessions *cache.Cache
	lock     *kmutex.KMutex
	events   *watcher.Manager
	seatOpts SeatOptions
	lg       logger.Logger
}

func NewRegistry(c config.Configurations, lg logger.Logger) *Registry {
	ttl := c.Table.SessionTTL
	cleanup := ttl / 2
	if ttl <= 0 {
		ttl, cleanup = cache.NoExpiration, 0
	}

	log := lg.WithPrefix("module", "table registry")

	sessions := cache.New(ttl, cleanup)
	sessions.OnEvicted(func(id string, v interface{}) {
		if seat, ok := v.(*Seat); ok {
			log.Debugf("session %s of %s released after %d rounds", id, seat.PlayerID, seat.Rounds())
		}
	})

	events := watcher.NewWatcherManager()
	events.RegisterEvents(watcher.EventsMap{
		models.EventRoundRecorded: reflect.TypeOf(models.RoundResult{}),
		models.EventSeatFinished:  reflect.TypeOf(models.SeatEvent{}),
	})

	return &Registry{
		sessions: sessions,
		lock:     kmutex.New(),
		events:   events,
		seatOpts: SeatOptionsFromConfig(c),
		lg:       log,
	}
}

// Open seats a new player and returns the generated session id
func (r *Registry) Open(playerID string) (string, error) {
	return r.OpenWith(playerID, r.seatOpts)
}

func (r *Registry) OpenWith(playerID string, opts SeatOptions) (string, error) {
	seat, err := NewSeat(playerID, opts)
	if err != nil {
		return "", err
	}
	if err := seat.Join(); err != nil {
		return "", err
	}

	id := uuid.New().String()
	if err := r.sessions.Add(id, seat, cache.DefaultExpiration); err != nil {
		return "", errors.WrapStack(ErrSessionDuplicate, id)
	}

	r.lg.Debugf("session %s opened for %s, bankroll %d", id, playerID, seat.Bankroll())

	return id, nil
}

// Do runs fn with exclusive access to the seat and refreshes its TTL
func (r *Registry) Do(id string, fn func(*Seat) error) error {
	r.lock.Lock(id)
	defer r.lock.Unlock(id)

	seat, err := r.get(id)
	if err != nil {
		return err
	}

	err = fn(seat)
	r.sessions.Set(id, seat, cache.DefaultExpiration)

	return err
}

// Play records one round for the session. A seat that has to leave after
// the round is finished and EventSeatFinished is emitted.
func (r *Registry) Play(id string, round, number int, profit, stake int64) (models.RoundResult, error) {
	var rs models.RoundResult

	err := r.Do(id, func(s *Seat) error {
		var err error
		rs, err = s.Record(round, number, profit, stake)
		if err != nil {
			return err
		}
		r.emit(models.EventRoundRecorded, rs)

		if s.ShouldLeave() {
			s.Leave()
			r.emit(models.EventSeatFinished, seatEvent(id, s))
		}
		return nil
	})

	return rs, err
}

// Close finishes the seat, drops the session and returns the final stats
func (r *Registry) Close(id string) (models.Stats, error) {
	r.lock.Lock(id)
	defer r.lock.Unlock(id)

	seat, err := r.get(id)
	if err != nil {
		return models.Stats{}, err
	}

	if seat.Status() != models.SeatFinished {
		seat.Leave()
		r.emit(models.EventSeatFinished, seatEvent(id, seat))
	}
	r.sessions.Delete(id)

	return seat.Ledger().Stats(), nil
}

func (r *Registry) Len() int {
	return r.sessions.ItemCount()
}

// Sessions lists open session ids in sorted order
func (r *Registry) Sessions() []string {
	items := r.sessions.Items()
	ids := make([]string, 0, len(items))
	for id := range items {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func (r *Registry) Watch(name string, eTypes ...watcher.EventType) (*watcher.Watcher, error) {
	return r.events.New(name, eTypes...)
}

func (r *Registry) Unwatch(name string) bool {
	return r.events.Remove(name)
}

// Purge drops expired sessions now instead of waiting for the janitor
func (r *Registry) Purge() {
	r.sessions.DeleteExpired()
}

func (r *Registry) get(id string) (*Seat, error) {
	v, ok := r.sessions.Get(id)
	if !ok {
		return nil, errors.WrapStack(ErrSessionNotFound, id)
	}
	return v.(*Seat), nil
}

func (r *Registry) emit(eType watcher.EventType, payload interface{}) {
	if err := r.events.Emit(watcher.NewEvent(eType, payload)); err != nil {
		r.lg.Warn("event not delivered", err)
	}
}

func seatEvent(id string, s *Seat) models.SeatEvent {
	return models.SeatEvent{
		SessionID: id,
		PlayerID:  s.PlayerID,
		Rounds:    s.Rounds(),
		Bankroll:  s.Bankroll(),
	}
}
