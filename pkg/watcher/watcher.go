package watcher

import (
	"RouletteLedger/pkg/errors"
	"fmt"
	"reflect"
	"sync"
)

var ErrWatcherFull = errors.New("watcher pipe is full, event dropped")

const defaultPipeSize = 64

type Event struct {
	Type    EventType
	Payload interface{}
}

type EventType uint8
type EventsMap map[EventType]reflect.Type

func NewEvent(eType EventType, payload interface{}) *Event {
	return &Event{
		Type:    eType,
		Payload: payload,
	}
}

type Watcher struct {
	eventPipe      chan *Event
	subscribeTypes []EventType
}

func newWatcher(size int, eTypes ...EventType) *Watcher {
	return &Watcher{
		eventPipe:      make(chan *Event, size),
		subscribeTypes: eTypes,
	}
}

// Listen is closed when the watcher is removed from its manager
func (w *Watcher) Listen() <-chan *Event {
	return w.eventPipe
}

func (w *Watcher) isListenType(eType EventType) bool {
	if len(w.subscribeTypes) == 0 {
		return true // Pass all event
	}

	for _, t := range w.subscribeTypes {
		if t == eType {
			return true
		}
	}

	return false
}

type Manager struct {
	mu       *sync.Mutex
	watchers map[string]*Watcher
	events   EventsMap
	pipeSize int
}

func NewWatcherManager() *Manager {
	return &Manager{
		mu:       &sync.Mutex{},
		watchers: make(map[string]*Watcher),
		events:   nil,
		pipeSize: defaultPipeSize,
	}
}

// SetPipeSize applies to watchers created afterwards
func (w *Manager) SetPipeSize(size int) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if size > 0 {
		w.pipeSize = size
	}
}

func (w *Manager) RegisterEvents(eventsList EventsMap) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.events = eventsList
}

func (w *Manager) SupportEvents() EventsMap {
	return w.events
}

func (w *Manager) New(name string, eTypes ...EventType) (*Watcher, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if _, ok := w.watchers[name]; ok {
		return nil, fmt.Errorf("watcher name '%s' already exist", name)
	}

	wh := newWatcher(w.pipeSize, eTypes...)

	w.watchers[name] = wh

	return wh, nil
}

// Emit never blocks: a watcher whose pipe is full misses the event and
// ErrWatcherFull is returned after every other watcher got it.
func (w *Manager) Emit(evt *Event) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.checkType(evt); err != nil {
		return err
	}

	var dropped []string
	for name, wh := range w.watchers {
		if !wh.isListenType(evt.Type) {
			continue
		}
		select {
		case wh.eventPipe <- evt:
		default:
			dropped = append(dropped, name)
		}
	}

	if len(dropped) > 0 {
		return errors.WrapMessage(ErrWatcherFull, dropped)
	}

	return nil
}

func (w *Manager) checkType(evt *Event) error {
	if t, ok := w.events[evt.Type]; ok {
		et := reflect.TypeOf(evt.Payload)
		if t != et {
			return fmt.Errorf("event contain wrong payload data: got (%s), expected (%s)", et, t)
		}
	}
	return nil
}

func (w *Manager) Remove(name string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	wh, ok := w.watchers[name]
	if !ok {
		return false
	}

	close(wh.eventPipe)

	delete(w.watchers, name)

	return true
}
