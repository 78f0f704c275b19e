// Package classifier maps raw user input to a canonical intent. The mapping
// is a pure function of (input, dialogue state, language): no storage, no
// network, no shared mutable state, so it can run concurrently for any number
// of users and be tested without the rest of the system.
package classifier

import (
	"strings"

	"health-agent/internal/domain"
)

type phraseRule struct {
	phrases []string
	intent  domain.Intent
}

// Classify resolves input to an intent. Tiers are evaluated in precedence
// order and the first match wins:
//
//  1. emergency keywords (any state, never suppressed)
//  2. accessibility command prefix
//  3. exit/feature-switch families inside conversational states, else the
//     state's continuation intent
//  4. structured selector IDs
//  5. free-text phrase table
//  6. greetings
//  7. state-indexed default
func Classify(input string, state domain.DialogueState, lang string) domain.Intent {
	norm := normalize(input)

	if isEmergency(norm, lang) {
		return domain.IntentEmergency
	}
	if strings.HasPrefix(norm, commandPrefix) {
		return domain.IntentAccessibilityCommand
	}

	if state.Conversational() {
		switch {
		case matchExact(norm, menuExitPhrases):
			return domain.IntentMenuRequest
		case matchExact(norm, languageExitPhrases):
			return domain.IntentChangeLanguage
		}
		if intent, ok := matchExactRules(norm, featureSwitchPhrases); ok {
			return intent
		}
		return continuationIntent(state)
	}

	if intent, ok := selectorIntents[norm]; ok {
		return intent
	}
	if intent, ok := matchSubstringRules(norm, freeTextRules); ok {
		return intent
	}
	if matchExact(trimPunct(norm), greetingWords) {
		return domain.IntentGreeting
	}

	if intent, ok := stateDefaults[state]; ok {
		return intent
	}
	return domain.IntentGeneralMessage
}

func continuationIntent(state domain.DialogueState) domain.Intent {
	switch state {
	case domain.StateAIChat:
		return domain.IntentAIChatMessage
	case domain.StateSymptomCheck:
		return domain.IntentSymptomInput
	default:
		return domain.IntentPreventiveTipsRequest
	}
}

func isEmergency(norm, lang string) bool {
	if containsAny(norm, emergencyKeywords[lang]) {
		return true
	}
	if lang != "en" && containsAny(norm, emergencyKeywords["en"]) {
		return true
	}
	return false
}

func containsAny(norm string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(norm, kw) {
			return true
		}
	}
	return false
}

func matchExact(norm string, phrases []string) bool {
	for _, p := range phrases {
		if norm == p {
			return true
		}
	}
	return false
}

func matchExactRules(norm string, rules []phraseRule) (domain.Intent, bool) {
	for _, r := range rules {
		if matchExact(norm, r.phrases) {
			return r.intent, true
		}
	}
	return "", false
}

func matchSubstringRules(norm string, rules []phraseRule) (domain.Intent, bool) {
	for _, r := range rules {
		if containsAny(norm, r.phrases) {
			return r.intent, true
		}
	}
	return "", false
}

func normalize(input string) string {
	return strings.ToLower(strings.TrimSpace(input))
}

func trimPunct(s string) string {
	return strings.Trim(s, "!.?,:;")
}
