package domain

// DialogueState is the named mode that determines which intents and handlers
// are reachable for a turn. Exactly one state is active per user per turn.
type DialogueState string

const (
	StateUninitialized     DialogueState = "uninitialized"
	StateLanguageSelection DialogueState = "language_selection"
	StateScriptSelection   DialogueState = "script_selection"
	StateMainMenu          DialogueState = "main_menu"
	StateAIChat            DialogueState = "ai_chat"
	StateSymptomCheck      DialogueState = "symptom_check"
	StatePreventiveTips    DialogueState = "preventive_tips"
	StateFeedback          DialogueState = "feedback"
	StateMoreOptions       DialogueState = "more_options"
)

// Conversational reports whether free text in this state continues an ongoing
// feature exchange rather than being re-parsed as a menu selection.
func (s DialogueState) Conversational() bool {
	switch s {
	case StateAIChat, StateSymptomCheck, StatePreventiveTips:
		return true
	}
	return false
}

// Valid reports whether s is one of the closed set of dialogue states.
func (s DialogueState) Valid() bool {
	switch s {
	case StateUninitialized, StateLanguageSelection, StateScriptSelection,
		StateMainMenu, StateAIChat, StateSymptomCheck, StatePreventiveTips,
		StateFeedback, StateMoreOptions:
		return true
	}
	return false
}
