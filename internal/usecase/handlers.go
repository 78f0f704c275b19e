package usecase

import (
	"context"
	"strings"

	"health-agent/internal/domain"
	"health-agent/internal/templates"
)

const ctxKeyAccessibility = "accessibility"

// dispatch routes one classified intent to its handler. The switch covers
// every intent in the closed set. The second return value forces the turn to
// stay in its current state, used when a selection could not be resolved and
// the user is re-prompted.
func (s *DialogueService) dispatch(ctx context.Context, sess *domain.Session, intent domain.Intent, msg domain.Message, lang string) ([]domain.Reply, bool) {
	switch intent {
	case domain.IntentEmergency:
		return s.handleEmergency(ctx, sess, msg, lang), false
	case domain.IntentAccessibilityCommand:
		return s.handleAccessibility(sess, msg, lang), false

	case domain.IntentGreeting:
		return []domain.Reply{
			s.textReply(templates.KeyWelcome, lang),
			s.menuReply(templates.KeyMainMenuPrompt, templates.MenuMain, lang),
		}, false
	case domain.IntentMenuRequest, domain.IntentBack:
		return []domain.Reply{s.menuReply(templates.KeyMainMenuPrompt, templates.MenuMain, lang)}, false
	case domain.IntentChangeLanguage:
		return []domain.Reply{s.menuReply(templates.KeyLanguagePrompt, templates.MenuLanguages, lang)}, false
	case domain.IntentLanguageSelect:
		return s.handleLanguageSelect(sess, msg, lang)
	case domain.IntentScriptSelect:
		return s.handleScriptSelect(sess, msg, lang)

	case domain.IntentStartAIChat:
		return []domain.Reply{s.textReply(templates.KeyAIChatIntro, lang)}, false
	case domain.IntentStartSymptomCheck:
		return []domain.Reply{s.textReply(templates.KeySymptomIntro, lang)}, false
	case domain.IntentStartPreventiveTips:
		return []domain.Reply{s.textReply(templates.KeyTipsIntro, lang)}, false
	case domain.IntentStartFeedback:
		return []domain.Reply{s.textReply(templates.KeyFeedbackPrompt, lang)}, false
	case domain.IntentMoreOptions:
		return []domain.Reply{s.menuReply(templates.KeyMoreOptionsPrompt, templates.MenuMore, lang)}, false

	case domain.IntentAIChatMessage, domain.IntentGeneralMessage:
		return s.handleGenerated(ctx, sess, msg, lang, domain.ModeChat, false), false
	case domain.IntentSymptomInput:
		return s.handleGenerated(ctx, sess, msg, lang, domain.ModeSymptom, false), false
	case domain.IntentPreventiveTipsRequest:
		return s.handleGenerated(ctx, sess, msg, lang, domain.ModeTips, false), false

	case domain.IntentFeedbackInput:
		return []domain.Reply{
			s.textReply(templates.KeyFeedbackThanks, lang),
			s.menuReply(templates.KeyMainMenuPrompt, templates.MenuMain, lang),
		}, false

	case domain.IntentSymptomInquiry, domain.IntentVaccinationInquiry,
		domain.IntentNutritionInquiry, domain.IntentDiseaseInfo,
		domain.IntentFirstAid, domain.IntentMentalHealth,
		domain.IntentMythBusting:
		return s.handleGenerated(ctx, sess, msg, lang, domain.ModeChat, false), false

	case domain.IntentOutbreakAlerts:
		return []domain.Reply{s.textReply(templates.KeyOutbreakNone, lang)}, false
	case domain.IntentHealthReminders:
		return []domain.Reply{s.textReply(templates.KeyRemindersInfo, lang)}, false
	case domain.IntentHelp:
		return []domain.Reply{s.textReply(templates.KeyHelp, lang)}, false
	case domain.IntentAboutService:
		return []domain.Reply{s.textReply(templates.KeyAbout, lang)}, false
	case domain.IntentUnsubscribe:
		return []domain.Reply{s.textReply(templates.KeyUnsubscribed, lang)}, false
	}

	return s.handleGenerated(ctx, sess, msg, lang, domain.ModeChat, false), false
}

// handleOnboarding greets a brand-new (or expired) user. Without a recorded
// language the first stop is the language menu; with one, straight to the
// main menu.
func (s *DialogueService) handleOnboarding(sess *domain.Session, lang string) []domain.Reply {
	if sess.Language == "" {
		return []domain.Reply{
			s.textReply(templates.KeyWelcome, lang),
			s.menuReply(templates.KeyLanguagePrompt, templates.MenuLanguages, lang),
		}
	}
	return []domain.Reply{
		s.textReply(templates.KeyWelcome, lang),
		s.menuReply(templates.KeyMainMenuPrompt, templates.MenuMain, lang),
	}
}

// handleEmergency sends the canned urgent-action message and a generated
// follow-up flagged for emergency phrasing. The session state is untouched.
func (s *DialogueService) handleEmergency(ctx context.Context, sess *domain.Session, msg domain.Message, lang string) []domain.Reply {
	replies := []domain.Reply{s.textReply(templates.KeyEmergency, lang)}
	replies = append(replies, s.handleGenerated(ctx, sess, msg, lang, domain.ModeChat, true)...)
	return replies
}

// handleAccessibility parses /-prefixed commands and stores the preference on
// the session context.
func (s *DialogueService) handleAccessibility(sess *domain.Session, msg domain.Message, lang string) []domain.Reply {
	cmd := strings.ToLower(strings.TrimSpace(msg.Content))
	var mod domain.AccessibilityModifier
	switch cmd {
	case "/simple":
		mod = domain.AccessibilitySimplified
	case "/spaced":
		mod = domain.AccessibilitySpaced
	case "/voice":
		mod = domain.AccessibilitySpeech
	case "/reset":
		mod = domain.AccessibilityNone
	default:
		return []domain.Reply{s.textReply(templates.KeyAccessibilityHelp, lang)}
	}
	sess.SetCtx(ctxKeyAccessibility, string(mod))
	return []domain.Reply{s.textReply(templates.KeyAccessibilityAck, lang)}
}

func (s *DialogueService) handleLanguageSelect(sess *domain.Session, msg domain.Message, lang string) ([]domain.Reply, bool) {
	code, ok := resolveLanguage(msg.Content)
	if !ok {
		return []domain.Reply{s.menuReply(templates.KeyLanguagePrompt, templates.MenuLanguages, lang)}, true
	}
	sess.Language = code
	if domain.HasScriptChoice(code) {
		return []domain.Reply{s.menuReply(templates.KeyScriptPrompt, templates.MenuScripts, code)}, false
	}
	sess.Script = ""
	return []domain.Reply{
		s.textReply(templates.KeyWelcome, code),
		s.menuReply(templates.KeyMainMenuPrompt, templates.MenuMain, code),
	}, false
}

func (s *DialogueService) handleScriptSelect(sess *domain.Session, msg domain.Message, lang string) ([]domain.Reply, bool) {
	pref, ok := resolveScript(msg.Content)
	if !ok {
		return []domain.Reply{s.menuReply(templates.KeyScriptPrompt, templates.MenuScripts, lang)}, true
	}
	sess.Script = pref
	return []domain.Reply{
		s.textReply(templates.KeyWelcome, lang),
		s.menuReply(templates.KeyMainMenuPrompt, templates.MenuMain, lang),
	}, false
}

// handleGenerated asks the synthesis engine for text using the recent
// context window and the session's accessibility preference.
func (s *DialogueService) handleGenerated(ctx context.Context, sess *domain.Session, msg domain.Message, lang string, mode domain.GenerationMode, emergency bool) []domain.Reply {
	result := s.engine.Synthesize(ctx, domain.GenerationRequest{
		Mode:          mode,
		Input:         msg.Content,
		ContextWindow: s.contextWindow(ctx, sess.UserID),
		Accessibility: domain.AccessibilityModifier(sess.Ctx(ctxKeyAccessibility)),
		Emergency:     emergency,
		Language:      lang,
		Script:        sess.Script,
	})
	return []domain.Reply{{Text: result.Text}}
}

func (s *DialogueService) textReply(key templates.Key, lang string) domain.Reply {
	return domain.Reply{Text: s.templates.Template(key, lang)}
}

func (s *DialogueService) menuReply(key templates.Key, menu templates.MenuKey, lang string) domain.Reply {
	return domain.Reply{
		Text:    s.templates.Template(key, lang),
		Options: s.templates.Menu(menu, lang),
	}
}

// languageAliases resolve free-text language picks alongside selector IDs
// and the numbered rendering the degraded text menu produces.
var languageAliases = map[string]string{
	domain.SelLangEN: "en", "1": "en", "english": "en",
	domain.SelLangHI: "hi", "2": "hi", "hindi": "hi", "हिंदी": "hi", "हिन्दी": "hi",
	domain.SelLangTE: "te", "3": "te", "telugu": "te", "తెలుగు": "te",
	domain.SelLangTA: "ta", "4": "ta", "tamil": "ta", "தமிழ்": "ta",
}

func resolveLanguage(input string) (string, bool) {
	norm := strings.ToLower(strings.TrimSpace(input))
	code, ok := languageAliases[norm]
	return code, ok
}

func resolveScript(input string) (domain.ScriptPreference, bool) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case domain.SelScriptNative, "1", "native", "native script", "देवनागरी":
		return domain.ScriptNative, true
	case domain.SelScriptRoman, "2", "roman", "english letters", "roman (english letters)":
		return domain.ScriptTransliteration, true
	}
	return "", false
}
