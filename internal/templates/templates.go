// Package templates is the key-addressed localization catalog. The dialogue
// core references keys and option IDs only; the literal strings live in
// catalog.go as data.
package templates

import "health-agent/internal/domain"

// Key addresses one localized template.
type Key string

const (
	KeyWelcome           Key = "welcome"
	KeyLanguagePrompt    Key = "language_prompt"
	KeyScriptPrompt      Key = "script_prompt"
	KeyMainMenuPrompt    Key = "main_menu_prompt"
	KeyMoreOptionsPrompt Key = "more_options_prompt"
	KeyEmergency         Key = "emergency"
	KeyFallbackGeneric   Key = "fallback_generic"
	KeyFallbackSafety    Key = "fallback_safety"
	KeyAIChatIntro       Key = "ai_chat_intro"
	KeySymptomIntro      Key = "symptom_intro"
	KeyTipsIntro         Key = "tips_intro"
	KeyFeedbackPrompt    Key = "feedback_prompt"
	KeyFeedbackThanks    Key = "feedback_thanks"
	KeyAccessibilityAck  Key = "accessibility_ack"
	KeyAccessibilityHelp Key = "accessibility_help"
	KeyHelp              Key = "help"
	KeyAbout             Key = "about"
	KeyUnsubscribed      Key = "unsubscribed"
	KeyOutbreakNone      Key = "outbreak_none"
	KeyRemindersInfo     Key = "reminders_info"
)

// MenuKey addresses one localized option list.
type MenuKey string

const (
	MenuLanguages MenuKey = "languages"
	MenuScripts   MenuKey = "scripts"
	MenuMain      MenuKey = "main"
	MenuMore      MenuKey = "more"
)

// Source is the catalog contract consumed by the dialogue core.
type Source interface {
	Template(key Key, lang string) string
	Menu(key MenuKey, lang string) []domain.Option
}

// Static serves templates and menus from the in-code catalog, falling back to
// English for languages without a translation.
type Static struct{}

// NewStatic returns the static catalog.
func NewStatic() *Static {
	return &Static{}
}

func (s *Static) Template(key Key, lang string) string {
	byLang, ok := templateCatalog[key]
	if !ok {
		return ""
	}
	if text, ok := byLang[lang]; ok {
		return text
	}
	return byLang[domain.DefaultLanguage]
}

func (s *Static) Menu(key MenuKey, lang string) []domain.Option {
	byLang, ok := menuCatalog[key]
	if !ok {
		return nil
	}
	opts, ok := byLang[lang]
	if !ok {
		opts = byLang[domain.DefaultLanguage]
	}
	out := make([]domain.Option, len(opts))
	copy(out, opts)
	return out
}
