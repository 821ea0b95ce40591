// Package session owns the per-browser console containers. Each session has
// its own store and toast broadcaster, seeded fresh on creation and torn down
// on End.
package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"metro-console/pkg/logger"
	"metro-console/services/console/internal/store"
	"metro-console/services/console/internal/toast"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("session not found")

type Session struct {
	ID        string
	CreatedAt time.Time
	Store     *store.Store
	Toasts    *toast.Broadcaster

	mu       sync.Mutex
	lastSeen time.Time
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	s.lastSeen = now
	s.mu.Unlock()
}

func (s *Session) LastSeen() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}

func (s *Session) close() {
	s.Toasts.Close()
	s.Store.Close()
}

type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session

	fixtures      *store.Fixtures
	storeOpts     []store.Option
	toastDuration time.Duration
	now           func() time.Time
	log           *logger.Logger
}

type Option func(*Manager)

func WithToastDuration(d time.Duration) Option {
	return func(m *Manager) { m.toastDuration = d }
}

func WithLogger(log *logger.Logger) Option {
	return func(m *Manager) { m.log = log }
}

func WithClock(now func() time.Time) Option {
	return func(m *Manager) { m.now = now }
}

// WithStoreOptions passes options to every store the manager creates.
func WithStoreOptions(opts ...store.Option) Option {
	return func(m *Manager) { m.storeOpts = append(m.storeOpts, opts...) }
}

func NewManager(fixtures *store.Fixtures, opts ...Option) *Manager {
	if fixtures == nil {
		fixtures = store.DefaultFixtures()
	}
	m := &Manager{
		sessions:      make(map[string]*Session),
		fixtures:      fixtures,
		toastDuration: toast.DefaultDuration,
		now:           time.Now,
		log:           logger.Nop(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Create starts a new session seeded from the fixtures.
func (m *Manager) Create() *Session {
	now := m.now()
	s := &Session{
		ID:        uuid.New().String(),
		CreatedAt: now,
		Store:     store.New(m.fixtures, m.storeOpts...),
		Toasts:    toast.New(toast.WithDefaultDuration(m.toastDuration), toast.WithLogger(m.log)),
		lastSeen:  now,
	}

	m.mu.Lock()
	m.sessions[s.ID] = s
	m.mu.Unlock()

	m.log.Info("Session %s started", s.ID)
	return s
}

// Get returns the session and marks it as seen.
func (m *Manager) Get(id string) (*Session, error) {
	m.mu.RLock()
	s, ok := m.sessions[id]
	m.mu.RUnlock()
	if !ok {
		return nil, ErrNotFound
	}
	s.touch(m.now())
	return s, nil
}

// End tears the session down, closing its subscriptions and timers.
func (m *Manager) End(id string) error {
	m.mu.Lock()
	s, ok := m.sessions[id]
	delete(m.sessions, id)
	m.mu.Unlock()
	if !ok {
		return ErrNotFound
	}
	s.close()
	m.log.Info("Session %s ended", id)
	return nil
}

func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// Sweep ends every session not seen within idle and returns how many were
// ended.
func (m *Manager) Sweep(idle time.Duration) int {
	cutoff := m.now().Add(-idle)

	m.mu.Lock()
	var stale []*Session
	for id, s := range m.sessions {
		if s.LastSeen().Before(cutoff) {
			stale = append(stale, s)
			delete(m.sessions, id)
		}
	}
	m.mu.Unlock()

	for _, s := range stale {
		s.close()
		m.log.Info("Session %s expired after %s idle", s.ID, idle)
	}
	return len(stale)
}

// RunSweeper calls Sweep every interval until ctx is done.
func (m *Manager) RunSweeper(ctx context.Context, interval, idle time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := m.Sweep(idle); n > 0 {
				m.log.Info("Swept %d idle sessions", n)
			}
		}
	}
}

// Close ends every session.
func (m *Manager) Close() {
	m.mu.Lock()
	sessions := m.sessions
	m.sessions = make(map[string]*Session)
	m.mu.Unlock()

	for _, s := range sessions {
		s.close()
	}
}
