package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewSession(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	sess := NewSession("u1", now)

	require.Equal(t, "u1", sess.UserID)
	require.Equal(t, StateUninitialized, sess.State)
	require.Empty(t, sess.Language)
	require.Equal(t, now.Add(SessionTTL), sess.ExpiresAt)
}

func TestSession_Expired(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	sess := NewSession("u1", now)

	require.False(t, sess.Expired(now))
	require.False(t, sess.Expired(now.Add(SessionTTL)))
	require.True(t, sess.Expired(now.Add(SessionTTL+time.Second)))
}

func TestSession_TouchSlidesWindow(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	sess := NewSession("u1", now)

	later := now.Add(20 * time.Hour)
	sess.Touch(later)

	require.Equal(t, later, sess.UpdatedAt)
	require.False(t, sess.Expired(now.Add(30*time.Hour)))
	require.True(t, sess.Expired(later.Add(SessionTTL+time.Second)))
}

func TestSession_Ctx(t *testing.T) {
	sess := &Session{}
	require.Empty(t, sess.Ctx("accessibility"))

	sess.SetCtx("accessibility", "simplified")
	require.Equal(t, "simplified", sess.Ctx("accessibility"))
}

func TestDialogueState_Conversational(t *testing.T) {
	require.True(t, StateAIChat.Conversational())
	require.True(t, StateSymptomCheck.Conversational())
	require.True(t, StatePreventiveTips.Conversational())
	require.False(t, StateMainMenu.Conversational())
	require.False(t, StateUninitialized.Conversational())
	require.False(t, StateFeedback.Conversational())
}

func TestDialogueState_Valid(t *testing.T) {
	require.True(t, StateMainMenu.Valid())
	require.False(t, DialogueState("limbo").Valid())
}

func TestLanguageSupport(t *testing.T) {
	for _, lang := range SupportedLanguages {
		require.True(t, LanguageSupported(lang))
	}
	require.False(t, LanguageSupported("fr"))

	require.True(t, HasScriptChoice("hi"))
	require.True(t, HasScriptChoice("ta"))
	require.False(t, HasScriptChoice("en"))
}
