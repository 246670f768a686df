// Copyright (c) 2026 WSO2 LLC. (https://www.wso2.com).
//
// WSO2 LLC. licenses this file to you under the Apache License,
// Version 2.0 (the "License"); you may not use this file except
// in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing,
// software distributed under the License is distributed on an
// "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
// KIND, either express or implied.  See the License for the
// specific language governing permissions and limitations
// under the License.

// Package preview holds interactive simulation sessions: one simulation
// state, the before/after toggle and the markup being previewed.
package preview

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/wso2-open-operations/common-tools/operations/print-safety/internal/simulation"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrStoreFull       = errors.New("session limit reached")
)

// Session is a snapshot of one preview session.
type Session struct {
	ID        string
	Markup    string
	State     simulation.State
	Before    bool
	CreatedAt time.Time
	UpdatedAt time.Time
	// LastActive is refreshed by every Get and Update and drives idle expiry.
	LastActive time.Time
}

// Store keeps sessions in memory. Sessions are copied in and out so callers
// never share a Session with the store.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	limit    int
	ttl      time.Duration
	logger   *zap.Logger
	now      func() time.Time
}

// NewStore creates a store holding at most limit sessions; limit <= 0 means
// unlimited. Sessions idle for longer than ttl are ended; ttl <= 0 disables expiry.
func NewStore(logger *zap.Logger, limit int, ttl time.Duration) *Store {
	return &Store{
		sessions: make(map[string]*Session),
		limit:    limit,
		ttl:      ttl,
		logger:   logger,
		now:      time.Now,
	}
}

// Create starts a session with the default state and the given markup.
func (s *Store) Create(markup string) (Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if s.limit > 0 && len(s.sessions) >= s.limit {
		s.evictExpired(now)
	}
	if s.limit > 0 && len(s.sessions) >= s.limit {
		s.logger.Warn("Session limit reached", zap.Int("max_sessions", s.limit))
		return Session{}, ErrStoreFull
	}

	sess := &Session{
		ID:         uuid.NewString(),
		Markup:     markup,
		State:      simulation.NewState(),
		CreatedAt:  now,
		UpdatedAt:  now,
		LastActive: now,
	}
	s.sessions[sess.ID] = sess

	s.logger.Debug("Session created",
		zap.String("session_id", sess.ID),
		zap.Int("markup_length", len(markup)),
		zap.Int("sessions", len(s.sessions)),
	)
	return *sess, nil
}

// Get returns a copy of the session and marks it active.
func (s *Store) Get(id string) (Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.lookup(id, s.now())
	if err != nil {
		return Session{}, err
	}
	return *sess, nil
}

// Update runs fn on a copy of the session and commits the copy only when fn
// returns nil, so a failed mutation is never partially visible.
func (s *Store) Update(id string, fn func(*Session) error) (Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	sess, err := s.lookup(id, now)
	if err != nil {
		return Session{}, err
	}

	next := *sess
	if err := fn(&next); err != nil {
		return *sess, err
	}
	next.ID = sess.ID
	next.CreatedAt = sess.CreatedAt
	next.UpdatedAt = now
	next.LastActive = now
	s.sessions[id] = &next

	return next, nil
}

// Delete ends the session.
func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[id]; !ok {
		return ErrSessionNotFound
	}
	delete(s.sessions, id)

	s.logger.Debug("Session deleted", zap.String("session_id", id), zap.Int("sessions", len(s.sessions)))
	return nil
}

// Len returns the number of live sessions.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// Sweep ends every session idle for longer than the TTL and returns how many
// were removed.
func (s *Store) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.evictExpired(s.now())
}

// RunSweeper calls Sweep every interval until ctx is done. It returns nil on
// cancellation so it can run inside an errgroup next to the server.
func (s *Store) RunSweeper(ctx context.Context, interval time.Duration) error {
	if s.ttl <= 0 || interval <= 0 {
		<-ctx.Done()
		return nil
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			s.Sweep()
		}
	}
}

// lookup returns the live session for id, ending it first if it has expired.
// The caller must hold the write lock.
func (s *Store) lookup(id string, now time.Time) (*Session, error) {
	sess, ok := s.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	if s.expired(sess, now) {
		delete(s.sessions, id)
		s.logger.Debug("Session expired", zap.String("session_id", id))
		return nil, ErrSessionNotFound
	}
	sess.LastActive = now
	return sess, nil
}

func (s *Store) expired(sess *Session, now time.Time) bool {
	return s.ttl > 0 && now.Sub(sess.LastActive) > s.ttl
}

// evictExpired removes idle sessions. The caller must hold the write lock.
func (s *Store) evictExpired(now time.Time) int {
	removed := 0
	for id, sess := range s.sessions {
		if s.expired(sess, now) {
			delete(s.sessions, id)
			removed++
		}
	}
	if removed > 0 {
		s.logger.Info("Expired idle sessions",
			zap.Int("removed", removed),
			zap.Int("sessions", len(s.sessions)),
			zap.Duration("ttl", s.ttl),
		)
	}
	return removed
}
