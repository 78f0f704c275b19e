package usecase

import "health-agent/internal/domain"

// Transition computes the next dialogue state for an intent. It is pure: the
// controller applies the result atomically with the session write. language
// is the user's language after the handler ran, which decides whether
// onboarding detours through script selection.
//
// The switch is exhaustive over the closed intent set; a new intent must be
// given a row here before the controller will route it.
func Transition(state domain.DialogueState, intent domain.Intent, language string) domain.DialogueState {
	switch intent {
	// Sentinels reply without moving: the user's place in the menu tree is
	// preserved, an emergency answer does not discard where they were.
	case domain.IntentEmergency, domain.IntentAccessibilityCommand:
		return state

	// Universal escapes.
	case domain.IntentMenuRequest, domain.IntentBack:
		return domain.StateMainMenu
	case domain.IntentChangeLanguage:
		return domain.StateLanguageSelection

	// Onboarding.
	case domain.IntentGreeting:
		if state == domain.StateUninitialized {
			if language == "" {
				return domain.StateLanguageSelection
			}
			return domain.StateMainMenu
		}
		return state
	case domain.IntentLanguageSelect:
		if language == "" {
			return domain.StateLanguageSelection
		}
		if domain.HasScriptChoice(language) {
			return domain.StateScriptSelection
		}
		return domain.StateMainMenu
	case domain.IntentScriptSelect:
		return domain.StateMainMenu

	// Feature entry.
	case domain.IntentStartAIChat:
		return domain.StateAIChat
	case domain.IntentStartSymptomCheck:
		return domain.StateSymptomCheck
	case domain.IntentStartPreventiveTips:
		return domain.StatePreventiveTips
	case domain.IntentStartFeedback:
		return domain.StateFeedback
	case domain.IntentMoreOptions:
		return domain.StateMoreOptions

	// In-feature continuations keep their state.
	case domain.IntentAIChatMessage:
		return domain.StateAIChat
	case domain.IntentSymptomInput:
		return domain.StateSymptomCheck
	case domain.IntentPreventiveTipsRequest:
		return domain.StatePreventiveTips
	case domain.IntentFeedbackInput:
		return domain.StateMainMenu

	// One-shot menu inquiries answer and land back on the main menu.
	case domain.IntentSymptomInquiry, domain.IntentVaccinationInquiry,
		domain.IntentNutritionInquiry, domain.IntentDiseaseInfo,
		domain.IntentFirstAid, domain.IntentMentalHealth,
		domain.IntentMythBusting, domain.IntentOutbreakAlerts,
		domain.IntentHealthReminders:
		return domain.StateMainMenu

	// Informational replies that keep the user where they are.
	case domain.IntentHelp, domain.IntentAboutService, domain.IntentUnsubscribe:
		return state

	case domain.IntentGeneralMessage:
		return state
	}
	return state
}
