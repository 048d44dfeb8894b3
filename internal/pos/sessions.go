package pos

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Sessions hands out one cart engine per authenticated client, keyed by the
// client's API token. The engine itself is single-owner; Do serializes all
// access to it so callers on concurrent requests never race.
type Sessions struct {
	provider StockProvider
	recorder Recorder
	log      *logrus.Entry
	ttl      time.Duration
	now      func() time.Time

	mu       sync.Mutex
	sessions map[string]*session
}

type session struct {
	id       string
	engine   *Engine
	mu       sync.Mutex
	lastSeen time.Time
}

// NewSessions builds a registry. Sessions idle longer than ttl are evicted
// lazily; the hosting screen has no server-side unmount signal.
func NewSessions(provider StockProvider, recorder Recorder, log *logrus.Entry, ttl time.Duration) *Sessions {
	return &Sessions{
		provider: provider,
		recorder: recorder,
		log:      log,
		ttl:      ttl,
		now:      time.Now,
		sessions: map[string]*session{},
	}
}

// Do runs fn against the caller's engine, creating the session (with its
// initial snapshot fetch) on first use. fn runs with the session lock held;
// the registry lock is never held across a network call.
func (s *Sessions) Do(ctx context.Context, token string, fn func(*Engine) error) error {
	sess, created := s.acquire(token)
	sess.mu.Lock()
	defer sess.mu.Unlock()
	if created {
		if err := sess.engine.RefreshSnapshot(ctx); err != nil {
			s.Release(token)
			return err
		}
		s.log.WithField("session_id", sess.id).Debug("pos session started")
	}
	sess.lastSeen = s.now()
	return fn(sess.engine)
}

// Release drops the caller's session. Used on logout and when the POS screen
// is torn down.
func (s *Sessions) Release(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if sess, ok := s.sessions[token]; ok {
		s.log.WithField("session_id", sess.id).Debug("pos session released")
		delete(s.sessions, token)
	}
}

func (s *Sessions) acquire(token string) (*session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pruneLocked()

	if sess, ok := s.sessions[token]; ok {
		return sess, false
	}

	id := uuid.NewString()
	engine := NewEngine(s.provider, s.recorder, s.log.WithField("session_id", id),
		WithListener(s.logSignal(id)))
	sess := &session{id: id, engine: engine, lastSeen: s.now()}
	s.sessions[token] = sess
	return sess, true
}

func (s *Sessions) pruneLocked() {
	if s.ttl <= 0 {
		return
	}
	cutoff := s.now().Add(-s.ttl)
	for token, sess := range s.sessions {
		if sess.lastSeen.Before(cutoff) {
			s.log.WithField("session_id", sess.id).Debug("pos session expired")
			delete(s.sessions, token)
		}
	}
}

func (s *Sessions) logSignal(sessionID string) Listener {
	return func(sig Signal) {
		entry := s.log.WithField("session_id", sessionID)
		switch sig.Kind {
		case SignalItemAdded:
			entry.WithField("item", sig.ItemName).Debug("item added to cart")
		case SignalCheckoutSucceeded:
			entry.Info("checkout succeeded")
		case SignalCheckoutFailed:
			entry.WithField("fault", sig.Fault.Kind.String()).Warn("checkout failed")
		}
	}
}
