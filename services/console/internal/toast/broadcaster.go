// Package toast implements the ephemeral message list shown in the corner of
// the console. Toasts are kept apart from the console state: they are never
// dispatched through the store and disappear on their own.
package toast

import (
	"sync"
	"time"

	"metro-console/pkg/logger"
	"metro-console/services/console/internal/entity"
)

const DefaultDuration = 5 * time.Second

type Broadcaster struct {
	mu       sync.Mutex
	lastID   int64
	toasts   []entity.Toast
	timers   map[int64]*time.Timer
	subs     map[uint64]*Subscription
	nextSub  uint64
	duration time.Duration
	log      *logger.Logger
	closed   bool
}

type Option func(*Broadcaster)

// WithDefaultDuration sets the lifetime of toasts that carry no duration.
func WithDefaultDuration(d time.Duration) Option {
	return func(b *Broadcaster) {
		if d > 0 {
			b.duration = d
		}
	}
}

func WithLogger(log *logger.Logger) Option {
	return func(b *Broadcaster) { b.log = log }
}

func New(opts ...Option) *Broadcaster {
	b := &Broadcaster{
		timers:   make(map[int64]*time.Timer),
		subs:     make(map[uint64]*Subscription),
		duration: DefaultDuration,
		log:      logger.Nop(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Show assigns the next id to t, appends it and notifies every subscriber
// before returning. The toast is dismissed automatically once its lifetime
// elapses. After Close, Show returns t with a zero id and does nothing.
func (b *Broadcaster) Show(t entity.Toast) entity.Toast {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		t.ID = 0
		return t
	}

	b.lastID++
	t.ID = b.lastID
	b.toasts = append(b.toasts, t)

	id := t.ID
	b.timers[id] = time.AfterFunc(t.Lifetime(b.duration), func() {
		b.expire(id)
	})

	b.log.Debug("toast %d shown: %s", id, t.Title)
	b.broadcastLocked()
	return t
}

// Dismiss removes the toast with the given id. It reports whether a toast
// was removed; dismissing an unknown or already removed id is a no-op.
func (b *Broadcaster) Dismiss(id int64) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	if timer, ok := b.timers[id]; ok {
		timer.Stop()
		delete(b.timers, id)
	}
	return b.removeLocked(id)
}

func (b *Broadcaster) expire(id int64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	delete(b.timers, id)
	if b.removeLocked(id) {
		b.log.Debug("toast %d expired", id)
	}
}

func (b *Broadcaster) removeLocked(id int64) bool {
	for i, t := range b.toasts {
		if t.ID != id {
			continue
		}
		out := make([]entity.Toast, 0, len(b.toasts)-1)
		out = append(out, b.toasts[:i]...)
		b.toasts = append(out, b.toasts[i+1:]...)
		b.broadcastLocked()
		return true
	}
	return false
}

// Snapshot returns a copy of the toasts currently on screen, oldest first.
func (b *Broadcaster) Snapshot() []entity.Toast {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.snapshotLocked()
}

func (b *Broadcaster) snapshotLocked() []entity.Toast {
	out := make([]entity.Toast, len(b.toasts))
	copy(out, b.toasts)
	return out
}

// Subscribe registers a listener. The current list is delivered right away
// so a freshly mounted view starts in sync.
func (b *Broadcaster) Subscribe() *Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()

	ch := make(chan []entity.Toast, 1)
	sub := &Subscription{C: ch, ch: ch, b: b}
	if b.closed {
		sub.done = true
		close(ch)
		return sub
	}

	b.nextSub++
	sub.id = b.nextSub
	b.subs[sub.id] = sub
	sub.deliver(b.snapshotLocked())
	return sub
}

// Close cancels every pending auto-dismiss and closes all subscriptions.
func (b *Broadcaster) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}
	b.closed = true
	for id, timer := range b.timers {
		timer.Stop()
		delete(b.timers, id)
	}
	b.toasts = nil
	for id, sub := range b.subs {
		delete(b.subs, id)
		sub.closeLocked()
	}
}

// pending reports how many auto-dismiss timers are armed.
func (b *Broadcaster) pending() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.timers)
}

func (b *Broadcaster) broadcastLocked() {
	for _, sub := range b.subs {
		sub.deliver(b.snapshotLocked())
	}
}

type Subscription struct {
	// C receives the full toast list after every change. Only the most
	// recent list is buffered.
	C <-chan []entity.Toast

	ch   chan []entity.Toast
	id   uint64
	b    *Broadcaster
	done bool
}

// Unsubscribe closes C. It is safe to call more than once.
func (sub *Subscription) Unsubscribe() {
	sub.b.mu.Lock()
	defer sub.b.mu.Unlock()

	delete(sub.b.subs, sub.id)
	sub.closeLocked()
}

func (sub *Subscription) closeLocked() {
	if sub.done {
		return
	}
	sub.done = true
	close(sub.ch)
}

func (sub *Subscription) deliver(list []entity.Toast) {
	select {
	case <-sub.ch:
	default:
	}
	sub.ch <- list
}
