package gui

import "github.com/appengine-ltd/plushie-shop/internal/game"

// EventSink accepts input events gathered during a frame.
type EventSink interface {
	Enqueue(game.Event)
}

// eventQueue buffers player input until the frame flushes it into the
// session, so every event of a frame is handled before the timers advance.
type eventQueue struct {
	ch chan game.Event
}

func newEventQueue(size int) *eventQueue {
	if size < 1 {
		size = 16
	}
	return &eventQueue{ch: make(chan game.Event, size)}
}

func (q *eventQueue) Enqueue(ev game.Event) {
	if q == nil || ev == nil {
		return
	}
	select {
	case q.ch <- ev:
	default:
		// Drop when saturated; a player cannot click this fast.
	}
}

func (q *eventQueue) Dequeue() (game.Event, bool) {
	if q == nil {
		return nil, false
	}
	select {
	case ev := <-q.ch:
		return ev, true
	default:
		return nil, false
	}
}

// flushInto posts every buffered event to s and reports how many there were.
func (q *eventQueue) flushInto(s *game.Session) int {
	n := 0
	for {
		ev, ok := q.Dequeue()
		if !ok {
			return n
		}
		s.Post(ev)
		n++
	}
}
