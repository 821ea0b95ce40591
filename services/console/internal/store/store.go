package store

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Snapshot is what subscribers receive after a dispatch.
type Snapshot struct {
	Version uint64 `json:"version"`
	Cause   string `json:"cause"`
	State   State  `json:"state"`
}

// Store holds one console state tree. All writes go through Dispatch or
// Reset; each write is applied atomically and bumps Version.
type Store struct {
	mu       sync.Mutex
	state    State
	version  uint64
	fixtures *Fixtures
	env      env
	subs     map[uint64]*Subscription
	nextSub  uint64
	closed   bool
}

type Option func(*Store)

// WithClock overrides the time source used for lastUpdated and notification
// timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.env.now = now }
}

// WithIDGenerator overrides how notification ids are minted.
func WithIDGenerator(newID func() string) Option {
	return func(s *Store) { s.env.newID = newID }
}

// New builds a store seeded from f. A nil f seeds from DefaultFixtures.
func New(f *Fixtures, opts ...Option) *Store {
	if f == nil {
		f = DefaultFixtures()
	}
	s := &Store{
		fixtures: f,
		env: env{
			now:   time.Now,
			newID: func() string { return uuid.New().String() },
		},
		subs: make(map[uint64]*Subscription),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.state = f.seed(s.env.now())
	return s
}

func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Store) Version() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.version
}

// Snapshot returns the current version and state together.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{Version: s.version, State: s.state}
}

// Dispatch applies a to the state and returns the resulting state. Actions
// that change nothing do not bump the version or wake subscribers. After
// Close, Dispatch returns the final state unchanged.
func (s *Store) Dispatch(a Action) State {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed || a == nil {
		return s.state
	}

	next, changed := reduce(s.state, a, s.env)
	if len(changed) == 0 {
		return s.state
	}
	s.state = next
	s.version++
	s.notify(a.Type(), changed)
	return s.state
}

// Reset re-seeds every slice from the fixtures, as a page reload would.
func (s *Store) Reset() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return s.state
	}
	s.state = s.fixtures.seed(s.env.now())
	s.version++
	s.notify("store/reset", AllSlices)
	return s.state
}

// Subscribe registers interest in the named slices, or in every slice when
// none are named. The returned subscription delivers the latest snapshot
// after each dispatch that changed one of them; a slow reader sees only the
// most recent snapshot.
func (s *Store) Subscribe(slices ...Slice) *Subscription {
	s.mu.Lock()
	defer s.mu.Unlock()

	ch := make(chan Snapshot, 1)
	sub := &Subscription{C: ch, ch: ch, store: s}
	if len(slices) > 0 {
		sub.slices = make(map[Slice]bool, len(slices))
		for _, sl := range slices {
			sub.slices[sl] = true
		}
	}
	if s.closed {
		sub.done = true
		close(ch)
		return sub
	}

	s.nextSub++
	sub.id = s.nextSub
	s.subs[sub.id] = sub
	return sub
}

// Close releases every subscription. The store keeps answering State.
func (s *Store) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.closed = true
	for id, sub := range s.subs {
		delete(s.subs, id)
		sub.closeLocked()
	}
}

// notify must be called with s.mu held.
func (s *Store) notify(cause string, changed []Slice) {
	snap := Snapshot{Version: s.version, Cause: cause, State: s.state}
	for _, sub := range s.subs {
		if sub.wants(changed) {
			sub.deliver(snap)
		}
	}
}

type Subscription struct {
	// C receives snapshots. It is closed by Unsubscribe or Store.Close.
	C <-chan Snapshot

	ch     chan Snapshot
	id     uint64
	slices map[Slice]bool
	store  *Store
	done   bool
}

// Unsubscribe stops delivery and closes C. It is safe to call more than once.
func (sub *Subscription) Unsubscribe() {
	s := sub.store
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.subs, sub.id)
	sub.closeLocked()
}

func (sub *Subscription) closeLocked() {
	if sub.done {
		return
	}
	sub.done = true
	close(sub.ch)
}

func (sub *Subscription) wants(changed []Slice) bool {
	if sub.slices == nil {
		return true
	}
	for _, sl := range changed {
		if sub.slices[sl] {
			return true
		}
	}
	return false
}

// deliver replaces any unread snapshot with snap. The store lock makes this
// the only sender, so the send cannot block.
func (sub *Subscription) deliver(snap Snapshot) {
	select {
	case <-sub.ch:
	default:
	}
	sub.ch <- snap
}
