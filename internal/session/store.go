// Package session owns per-user dialogue sessions. Sessions live in the
// cache service under a sliding TTL; a missing or expired entry reads as
// absent so the controller fails open to onboarding.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"health-agent/internal/cache"
	"health-agent/internal/domain"
)

const keyPrefix = "session:"

// Store reads and writes sessions keyed by user identity.
type Store struct {
	cache cache.Service
	ttl   time.Duration
	now   func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the time source used for TTL checks.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// New creates a Store over the given cache service with the standard
// sliding TTL.
func New(c cache.Service, opts ...Option) (*Store, error) {
	if c == nil {
		return nil, errors.New("session: cache service must not be nil")
	}
	s := &Store{
		cache: c,
		ttl:   domain.SessionTTL,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Get returns the session for userID, or (nil, nil) when none exists or the
// stored one has expired. An expired entry is invalidated on the way out.
func (s *Store) Get(ctx context.Context, userID string) (*domain.Session, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, errors.New("session: user id must not be empty")
	}

	raw, ok, err := s.cache.Get(ctx, keyPrefix+userID)
	if err != nil {
		return nil, fmt.Errorf("session: get %q: %w", userID, err)
	}
	if !ok {
		return nil, nil
	}

	var sess domain.Session
	if err := json.Unmarshal(raw, &sess); err != nil {
		return nil, fmt.Errorf("session: decode %q: %w", userID, err)
	}
	if sess.Expired(s.now()) {
		_ = s.cache.Invalidate(ctx, keyPrefix+userID)
		return nil, nil
	}
	return &sess, nil
}

// Put writes the session back, sliding its TTL window forward. The write is
// a full overwrite so a retried write is safe.
func (s *Store) Put(ctx context.Context, sess *domain.Session) error {
	if sess == nil || strings.TrimSpace(sess.UserID) == "" {
		return errors.New("session: session with user id required")
	}

	sess.Touch(s.now())
	raw, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("session: encode %q: %w", sess.UserID, err)
	}
	if err := s.cache.Set(ctx, keyPrefix+sess.UserID, raw, s.ttl); err != nil {
		return fmt.Errorf("session: put %q: %w", sess.UserID, err)
	}
	return nil
}

// Delete removes the session for userID.
func (s *Store) Delete(ctx context.Context, userID string) error {
	if err := s.cache.Invalidate(ctx, keyPrefix+userID); err != nil {
		return fmt.Errorf("session: delete %q: %w", userID, err)
	}
	return nil
}
