// Package usecase holds the dialogue controller: it receives one inbound
// turn, classifies it, dispatches to the handler bound to the intent, and
// writes the state transition back through the session store. No upstream
// failure escapes this package — the controller always produces a reply.
package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"health-agent/internal/classifier"
	"health-agent/internal/domain"
	"health-agent/internal/templates"
)

// SessionStore is the per-user session persistence contract.
type SessionStore interface {
	Get(ctx context.Context, userID string) (*domain.Session, error)
	Put(ctx context.Context, sess *domain.Session) error
}

// TurnLog is the append-only conversation history contract.
type TurnLog interface {
	AppendTurn(ctx context.Context, turn domain.Turn) error
	GetRecentTurns(ctx context.Context, userID string, n int) ([]domain.Turn, error)
}

// SynthesisEngine produces text for handlers that need generated content.
type SynthesisEngine interface {
	Synthesize(ctx context.Context, req domain.GenerationRequest) domain.GenerationResult
}

// TurnInput is one inbound turn from the transport adapter.
type TurnInput struct {
	UserID  string
	Message domain.Message
}

// TurnOutput carries the outbound replies for one turn.
type TurnOutput struct {
	Replies []domain.Reply
	Intent  domain.Intent
	State   domain.DialogueState
}

// DialogueService orchestrates turns.
type DialogueService struct {
	sessions  SessionStore
	turns     TurnLog
	engine    SynthesisEngine
	templates templates.Source
	log       *zap.Logger

	classify func(input string, state domain.DialogueState, lang string) domain.Intent
	locks    *keyedMutex
	now      func() time.Time
	newID    func() string
}

// NewDialogueService wires the controller.
func NewDialogueService(sessions SessionStore, turns TurnLog, engine SynthesisEngine, src templates.Source, log *zap.Logger) (*DialogueService, error) {
	if sessions == nil {
		return nil, errors.New("usecase: session store must not be nil")
	}
	if turns == nil {
		return nil, errors.New("usecase: turn log must not be nil")
	}
	if engine == nil {
		return nil, errors.New("usecase: synthesis engine must not be nil")
	}
	if src == nil {
		return nil, errors.New("usecase: template source must not be nil")
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &DialogueService{
		sessions:  sessions,
		turns:     turns,
		engine:    engine,
		templates: src,
		log:       log,
		classify:  classifier.Classify,
		locks:     newKeyedMutex(),
		now:       time.Now,
		newID:     uuid.NewString,
	}, nil
}

// HandleTurn processes one inbound turn end to end. Turns for the same user
// are serialized on a per-user lock; turns for different users run in
// parallel. The only error it returns is invalid input from the transport.
func (s *DialogueService) HandleTurn(ctx context.Context, in TurnInput) (TurnOutput, error) {
	userID := strings.TrimSpace(in.UserID)
	if userID == "" {
		return TurnOutput{}, newError(ErrorInvalidInput, "empty_user_id", nil)
	}

	unlock := s.locks.lock(userID)
	defer unlock()

	sess := s.loadSession(ctx, userID)
	lang := sess.Language
	if lang == "" && domain.LanguageSupported(in.Message.Language) {
		lang = in.Message.Language
	}
	if lang == "" {
		lang = domain.DefaultLanguage
	}

	intent := s.classify(in.Message.Content, sess.State, lang)
	from := sess.State

	var (
		replies []domain.Reply
		stay    bool
	)
	if from == domain.StateUninitialized &&
		intent != domain.IntentEmergency && intent != domain.IntentAccessibilityCommand {
		// First contact always routes to onboarding, whatever the text was.
		intent = domain.IntentGreeting
		replies = s.handleOnboarding(sess, lang)
	} else {
		replies, stay = s.dispatch(ctx, sess, intent, in.Message, lang)
	}

	next := Transition(from, intent, sess.Language)
	if stay {
		next = from
	}
	sess.State = next

	if err := s.sessions.Put(ctx, sess); err != nil {
		// Best effort: the in-memory outcome is still delivered.
		s.log.Warn("session write failed",
			zap.String("user", userID),
			zap.Error(err))
	}

	turn := domain.Turn{
		ID:        s.newID(),
		UserID:    userID,
		Message:   in.Message,
		Intent:    intent,
		ReplyText: firstReplyText(replies),
		FromState: from,
		ToState:   next,
		CreatedAt: s.now(),
	}
	if err := s.turns.AppendTurn(ctx, turn); err != nil {
		s.log.Warn("turn append failed",
			zap.String("user", userID),
			zap.Error(err))
	}

	return TurnOutput{Replies: replies, Intent: intent, State: next}, nil
}

// loadSession reads the user's session, failing open to a fresh one when the
// store errors or nothing usable is found.
func (s *DialogueService) loadSession(ctx context.Context, userID string) *domain.Session {
	sess, err := s.sessions.Get(ctx, userID)
	if err != nil {
		s.log.Warn("session read failed, starting fresh",
			zap.String("user", userID),
			zap.Error(err))
		return domain.NewSession(userID, s.now())
	}
	if sess == nil {
		return domain.NewSession(userID, s.now())
	}
	return sess
}

// contextWindow fetches the recent history for prompt assembly, degrading to
// no context when the log is unavailable.
func (s *DialogueService) contextWindow(ctx context.Context, userID string) []domain.Turn {
	turns, err := s.turns.GetRecentTurns(ctx, userID, domain.ContextWindowSize)
	if err != nil {
		s.log.Warn("context window read failed",
			zap.String("user", userID),
			zap.Error(err))
		return nil
	}
	return turns
}

func firstReplyText(replies []domain.Reply) string {
	for _, r := range replies {
		if r.Text != "" {
			return r.Text
		}
	}
	return ""
}
