package hal

const eventQueueDepth = 64

// eventQueue buffers translated window events until the loop drains them.
//
// Key and other events are dropped when the queue is full. A close request is
// never dropped: it is held back and reported once the queue empties.
type eventQueue struct {
	ch           chan Event
	pendingClose bool
}

func newEventQueue() *eventQueue {
	return &eventQueue{ch: make(chan Event, eventQueueDepth)}
}

func (q *eventQueue) push(ev Event) {
	select {
	case q.ch <- ev:
	default:
		if ev.Kind == EventClose {
			q.pendingClose = true
		}
	}
}

func (q *eventQueue) pushClose() {
	q.push(Event{Kind: EventClose})
}

func (q *eventQueue) PollEvent() (Event, bool) {
	select {
	case ev := <-q.ch:
		return ev, true
	default:
	}
	if q.pendingClose {
		q.pendingClose = false
		return Event{Kind: EventClose}, true
	}
	return Event{}, false
}
