package domain

import "time"

// SessionTTL is the sliding idle window after which a session is treated as
// absent and the user is re-onboarded.
const SessionTTL = 24 * time.Hour

// Session is the per-user dialogue state record. It is owned by the session
// store; handlers never mutate it directly, only through the controller's
// transition step.
type Session struct {
	UserID    string            `json:"userId"`
	State     DialogueState     `json:"state"`
	Language  string            `json:"language,omitempty"`
	Script    ScriptPreference  `json:"script,omitempty"`
	Context   map[string]string `json:"context,omitempty"`
	UpdatedAt time.Time         `json:"updatedAt"`
	ExpiresAt time.Time         `json:"expiresAt"`
}

// NewSession returns a fresh uninitialized session for userID.
func NewSession(userID string, now time.Time) *Session {
	return &Session{
		UserID:    userID,
		State:     StateUninitialized,
		Context:   make(map[string]string),
		UpdatedAt: now,
		ExpiresAt: now.Add(SessionTTL),
	}
}

// Expired reports whether the session's sliding TTL has lapsed. An expired
// session is treated identically to no session existing.
func (s *Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && now.After(s.ExpiresAt)
}

// Touch slides the TTL window forward from now.
func (s *Session) Touch(now time.Time) {
	s.UpdatedAt = now
	s.ExpiresAt = now.Add(SessionTTL)
}

// Ctx reads a context value, tolerating a nil map.
func (s *Session) Ctx(key string) string {
	if s.Context == nil {
		return ""
	}
	return s.Context[key]
}

// SetCtx writes a context value, allocating the map on first use.
func (s *Session) SetCtx(key, value string) {
	if s.Context == nil {
		s.Context = make(map[string]string)
	}
	s.Context[key] = value
}
