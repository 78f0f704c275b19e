package domain

// Selector IDs emitted by interactive menus and buttons. The classifier maps
// them 1:1 to intents; the template catalog emits them as option IDs.
const (
	SelAIChat         = "menu_ai_chat"
	SelSymptomCheck   = "menu_symptom_check"
	SelPreventiveTips = "menu_preventive_tips"
	SelFeedback       = "menu_feedback"
	SelMoreOptions    = "menu_more"
	SelOutbreakAlerts = "menu_outbreaks"
	SelVaccination    = "menu_vaccination"
	SelNutrition      = "menu_nutrition"
	SelDiseaseInfo    = "menu_disease_info"
	SelFirstAid       = "menu_first_aid"
	SelMentalHealth   = "menu_mental_health"
	SelReminders      = "menu_reminders"
	SelMythBusting    = "menu_myths"
	SelAbout          = "menu_about"
	SelHelp           = "menu_help"
	SelChangeLanguage = "menu_change_language"
	SelUnsubscribe    = "menu_unsubscribe"
	SelBackToMenu     = "menu_home"

	SelLangEN = "lang_en"
	SelLangHI = "lang_hi"
	SelLangTE = "lang_te"
	SelLangTA = "lang_ta"

	SelScriptNative = "script_native"
	SelScriptRoman  = "script_roman"
)
