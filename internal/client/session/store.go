// Package session holds the process-wide authentication state: the current
// session record, whether the client is authenticated, and whether the
// initial restore from durable storage is still in flight.
//
// The store is the single writer of the persisted session; every other
// component reads through it. State changes are atomic: observers never see
// a user without a token or vice versa.
package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"sync"
	"time"

	"github.com/dsmolenski/accountcli/internal/client/models"
	"github.com/dsmolenski/accountcli/internal/client/repositories/sessionrepo"
	"github.com/dsmolenski/accountcli/internal/dbx"
	"github.com/dsmolenski/accountcli/internal/logging"
)

// timeNow is a test seam.
var timeNow = time.Now

// Snapshot is one consistent view of the store, delivered to observers on
// every transition. User is non-nil exactly when IsAuthenticated is true.
type Snapshot struct {
	User            *models.Session
	IsAuthenticated bool
	Loading         bool
}

// Store is the process-wide session holder. Safe for concurrent use.
type Store struct {
	db  *sql.DB
	log logging.Logger

	mu            sync.RWMutex
	user          *models.Session
	authenticated bool
	loading       bool
	initialized   bool
	subs          []func(Snapshot)
}

// NewStore creates a store in the loading state; call Initialize once at
// process start to restore any persisted session.
func NewStore(db *sql.DB, log logging.Logger) *Store {
	return &Store{db: db, log: log, loading: true}
}

func (s *Store) repo(db dbx.DBTX) sessionrepo.Repository {
	return sessionrepo.NewSQLiteRepository(db)
}

// Subscribe registers an observer called synchronously after every state
// transition. Multiple field updates within one logical transition are
// coalesced into a single notification.
func (s *Store) Subscribe(fn func(Snapshot)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}

// Snapshot returns the current state. The returned session is a copy.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

// IsAuthenticated reports whether a session is currently held.
func (s *Store) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.authenticated
}

// Token returns the current bearer token, or an empty string when
// unauthenticated. The API client consults this before every request.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return ""
	}
	return s.user.Token
}

// Initialize restores a previously persisted session, if any. A malformed
// or expired record is cleared from storage and the client starts
// unauthenticated. Loading ends false exactly once, on whichever path is
// taken; repeated calls are no-ops.
func (s *Store) Initialize(ctx context.Context) error {
	s.mu.Lock()
	if s.initialized {
		s.mu.Unlock()
		return nil
	}
	s.initialized = true
	s.mu.Unlock()

	restored := s.restore(ctx)

	s.mu.Lock()
	if restored != nil {
		s.user = restored
		s.authenticated = true
	}
	s.loading = false
	snap, subs := s.snapshotLocked(), s.subsLocked()
	s.mu.Unlock()

	notify(subs, snap)
	return nil
}

// restore reads and checks the persisted record. Returns nil (after
// clearing storage when needed) if there is nothing usable.
func (s *Store) restore(ctx context.Context) *models.Session {
	repo := s.repo(s.db)

	rawUser, err := repo.Get(ctx, sessionrepo.KeyUser)
	if err != nil {
		s.log.Error(ctx, "failed to read stored session", "error", err)
		return nil
	}
	rawToken, err := repo.Get(ctx, sessionrepo.KeyToken)
	if err != nil {
		s.log.Error(ctx, "failed to read stored token", "error", err)
		return nil
	}

	if rawUser == nil && rawToken == nil {
		return nil
	}

	var sess models.Session
	if rawUser == nil || rawToken == nil || json.Unmarshal(rawUser, &sess) != nil || !sess.WellFormed() {
		s.log.Warn(ctx, "stored session is malformed, clearing")
		if err := repo.Clear(ctx); err != nil {
			s.log.Error(ctx, "failed to clear malformed session", "error", err)
		}
		return nil
	}

	if exp, ok := PeekExpiry(sess.Token); ok && exp.Before(timeNow()) {
		s.log.Info(ctx, "stored session has expired, clearing", "username", sess.Username)
		if err := repo.Clear(ctx); err != nil {
			s.log.Error(ctx, "failed to clear expired session", "error", err)
		}
		return nil
	}

	s.log.Info(ctx, "session restored", "username", sess.Username)
	return &sess
}

// Login persists the full session record and then publishes it. Storage is
// written first so a crash between the two steps leaves the client able to
// restore; user and token go into storage in one transaction.
func (s *Store) Login(ctx context.Context, sess models.Session) error {
	raw, err := json.Marshal(sess)
	if err != nil {
		return err
	}

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repo(tx)
		if err := repo.Set(ctx, sessionrepo.KeyUser, raw); err != nil {
			return err
		}
		return repo.Set(ctx, sessionrepo.KeyToken, []byte(sess.Token))
	})
	if err != nil {
		return err
	}

	s.mu.Lock()
	u := sess
	s.user = &u
	s.authenticated = true
	snap, subs := s.snapshotLocked(), s.subsLocked()
	s.mu.Unlock()

	notify(subs, snap)
	return nil
}

// Logout removes the persisted record and clears the in-memory session.
// Safe to call when already logged out; storage is cleared defensively
// either way.
func (s *Store) Logout(ctx context.Context) error {
	if err := s.repo(s.db).Clear(ctx); err != nil {
		return err
	}

	s.mu.Lock()
	s.user = nil
	s.authenticated = false
	snap, subs := s.snapshotLocked(), s.subsLocked()
	s.mu.Unlock()

	notify(subs, snap)
	return nil
}

func (s *Store) snapshotLocked() Snapshot {
	snap := Snapshot{IsAuthenticated: s.authenticated, Loading: s.loading}
	if s.user != nil {
		u := *s.user
		snap.User = &u
	}
	return snap
}

func (s *Store) subsLocked() []func(Snapshot) {
	out := make([]func(Snapshot), len(s.subs))
	copy(out, s.subs)
	return out
}

// notify runs outside the store lock so observers may read the store.
func notify(subs []func(Snapshot), snap Snapshot) {
	for _, fn := range subs {
		fn(snap)
	}
}
