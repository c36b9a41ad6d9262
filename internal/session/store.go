// Package session holds per-visitor state: the order wizard, the toast slot,
// the FAQ accordion and the in-flight tracking lookup.
package session

import (
	"context"
	"sync"
	"time"

	"photoprint-backend/internal/faq"
	"photoprint-backend/internal/notify"
	"photoprint-backend/internal/photo"
	"photoprint-backend/internal/schedule"
	"photoprint-backend/internal/wizard"
)

const defaultIdleTimeout = 30 * time.Minute

// Config controls how sessions are built and when they expire.
type Config struct {
	IdleTimeout     time.Duration
	ResetDelay      time.Duration
	NotificationTTL time.Duration
	Loader          *photo.Loader
	Scheduler       schedule.Scheduler
	FAQ             []faq.Entry
	OrderNumbers    func() string
	Now             func() time.Time
}

// Session is the state of one visitor.
type Session struct {
	ID      string
	Wizard  *wizard.Wizard
	Notices *notify.Presenter
	FAQ     *faq.Accordion

	mu         sync.Mutex
	lastActive time.Time
	lookup     context.CancelFunc
	lookupSeq  uint64
}

// BeginLookup derives a context for a tracking lookup and cancels any lookup
// still in flight for this session. The returned func releases the context.
func (s *Session) BeginLookup(parent context.Context) (context.Context, func()) {
	ctx, cancel := context.WithCancel(parent)

	s.mu.Lock()
	if s.lookup != nil {
		s.lookup()
	}
	s.lookupSeq++
	seq := s.lookupSeq
	s.lookup = cancel
	s.mu.Unlock()

	return ctx, func() {
		cancel()
		s.mu.Lock()
		if s.lookupSeq == seq {
			s.lookup = nil
		}
		s.mu.Unlock()
	}
}

// LastActive reports when the session was last fetched from the store.
func (s *Session) LastActive() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastActive
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	s.lastActive = now
	s.mu.Unlock()
}

func (s *Session) close() {
	s.Wizard.Reset()
	s.Notices.Dismiss()
	s.mu.Lock()
	if s.lookup != nil {
		s.lookup()
		s.lookup = nil
	}
	s.mu.Unlock()
}

// Store keeps sessions in memory keyed by id.
type Store struct {
	cfg Config
	now func() time.Time

	mu       sync.Mutex
	sessions map[string]*Session
}

func NewStore(cfg Config) *Store {
	if cfg.IdleTimeout <= 0 {
		cfg.IdleTimeout = defaultIdleTimeout
	}
	if cfg.Scheduler == nil {
		cfg.Scheduler = schedule.Real{}
	}
	if cfg.Loader == nil {
		cfg.Loader = photo.NewLoader(0)
	}
	nowFn := cfg.Now
	if nowFn == nil {
		nowFn = time.Now
	}
	return &Store{cfg: cfg, now: nowFn, sessions: make(map[string]*Session)}
}

// Get returns the session for id, creating it on first sight.
func (s *Store) Get(id string) *Session {
	now := s.now()

	s.mu.Lock()
	sess, ok := s.sessions[id]
	if !ok {
		sess = s.newSession(id)
		s.sessions[id] = sess
	}
	s.mu.Unlock()

	sess.touch(now)
	return sess
}

// Sweep drops sessions idle longer than the idle timeout and returns how many
// were removed.
func (s *Store) Sweep(now time.Time) int {
	cutoff := now.Add(-s.cfg.IdleTimeout)

	s.mu.Lock()
	var expired []*Session
	for id, sess := range s.sessions {
		if sess.LastActive().Before(cutoff) {
			expired = append(expired, sess)
			delete(s.sessions, id)
		}
	}
	s.mu.Unlock()

	for _, sess := range expired {
		sess.close()
	}
	return len(expired)
}

// Len reports the number of live sessions.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

func (s *Store) newSession(id string) *Session {
	notices := notify.NewPresenter(
		notify.WithTTL(s.cfg.NotificationTTL),
		notify.WithScheduler(s.cfg.Scheduler),
		notify.WithClock(s.now),
	)
	opts := []wizard.Option{
		wizard.WithNotifier(notices),
		wizard.WithLoader(s.cfg.Loader),
		wizard.WithScheduler(s.cfg.Scheduler),
		wizard.WithResetDelay(s.cfg.ResetDelay),
		wizard.WithClock(s.now),
	}
	if s.cfg.OrderNumbers != nil {
		opts = append(opts, wizard.WithOrderNumbers(s.cfg.OrderNumbers))
	}
	return &Session{
		ID:      id,
		Wizard:  wizard.New(opts...),
		Notices: notices,
		FAQ:     faq.NewAccordion(s.cfg.FAQ),
	}
}
