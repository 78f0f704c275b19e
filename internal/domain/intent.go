package domain

// Intent is the canonical classification of a turn's purpose. Intents are
// produced only by the classifier; nothing else constructs them ad hoc.
type Intent string

const (
	// Cross-cutting sentinels.
	IntentEmergency            Intent = "emergency"
	IntentAccessibilityCommand Intent = "accessibility_command"

	// Onboarding and navigation.
	IntentGreeting       Intent = "greeting"
	IntentMenuRequest    Intent = "menu_request"
	IntentBack           Intent = "back"
	IntentChangeLanguage Intent = "change_language"
	IntentLanguageSelect Intent = "language_select"
	IntentScriptSelect   Intent = "script_select"
	IntentHelp           Intent = "help"
	IntentAboutService   Intent = "about_service"

	// Feature entry points.
	IntentStartAIChat         Intent = "start_ai_chat"
	IntentStartSymptomCheck   Intent = "start_symptom_check"
	IntentStartPreventiveTips Intent = "start_preventive_tips"
	IntentStartFeedback       Intent = "start_feedback"
	IntentMoreOptions         Intent = "more_options"

	// In-feature continuations (free text inside a conversational state).
	IntentAIChatMessage         Intent = "ai_chat_message"
	IntentSymptomInput          Intent = "symptom_input"
	IntentPreventiveTipsRequest Intent = "preventive_tips_request"
	IntentFeedbackInput         Intent = "feedback_input"

	// Health topic inquiries reachable from the menu tree.
	IntentSymptomInquiry     Intent = "symptom_inquiry"
	IntentVaccinationInquiry Intent = "vaccination_inquiry"
	IntentNutritionInquiry   Intent = "nutrition_inquiry"
	IntentDiseaseInfo        Intent = "disease_info"
	IntentFirstAid           Intent = "first_aid"
	IntentMentalHealth       Intent = "mental_health"
	IntentOutbreakAlerts     Intent = "outbreak_alerts"
	IntentHealthReminders    Intent = "health_reminders"
	IntentMythBusting        Intent = "myth_busting"
	IntentUnsubscribe        Intent = "unsubscribe"

	// Catch-all for text that matched nothing above.
	IntentGeneralMessage Intent = "general_message"
)
