package classifier

import "health-agent/internal/domain"

// All phrase and keyword lists live here as data. The matcher in
// classifier.go is language-agnostic; adding a language or a phrase never
// changes control flow.

// commandPrefix marks accessibility commands such as "/simple".
const commandPrefix = "/"

// emergencyKeywords are matched by substring against the normalized input.
// Per language, native script plus common Romanized spellings. The English
// set is always checked in addition to the user's language.
var emergencyKeywords = map[string][]string{
	"en": {
		"emergency", "heart attack", "chest pain", "can't breathe",
		"cannot breathe", "not breathing", "unconscious", "suicide",
		"severe bleeding", "bleeding heavily", "stroke", "poison",
		"overdose", "choking", "seizure",
	},
	"hi": {
		"आपातकाल", "दिल का दौरा", "सीने में दर्द", "सांस नहीं",
		"बेहोश", "आत्महत्या", "खुदकुशी", "ज़हर", "जहर", "दौरा पड़ा",
		"aapatkal", "dil ka daura", "seene mein dard", "saans nahi",
		"behosh", "khudkushi", "zeher",
	},
	"te": {
		"అత్యవసరం", "గుండెపోటు", "ఛాతీ నొప్పి", "ఊపిరి ఆడటం లేదు",
		"స్పృహ లేదు", "ఆత్మహత్య", "విషం",
		"atyavasaram", "gundepotu", "chaathi noppi", "atmahatya",
	},
	"ta": {
		"அவசரம்", "மாரடைப்பு", "மார்பு வலி", "மூச்சு திணறல்",
		"மயக்கம்", "தற்கொலை", "விஷம்",
		"avasaram", "maradaippu", "maarbu vali", "tharkolai",
	},
}

// menuExitPhrases and languageExitPhrases are the only escape hatches honored
// inside conversational states. Matched exactly, never by substring, so free
// text containing "menu" mid-sentence stays in the conversation.
var menuExitPhrases = []string{
	"menu", "main menu", "go to menu", "back", "home", "exit",
	"मेनू", "मुख्य मेनू", "वापस", "menu par jao", "wapas",
	"మెనూ", "వెనుకకు", "மெனு", "பின்",
}

var languageExitPhrases = []string{
	"change language", "language", "भाषा", "भाषा बदलें", "bhasha badlo",
	"భాష", "భాష మార్చు", "மொழி", "மொழி மாற்று",
}

// featureSwitchPhrases let a user jump between features without visiting the
// menu. Exact match only, same as the exit families.
var featureSwitchPhrases = []phraseRule{
	{phrases: []string{"start ai chat", "ai chat", "एआई चैट", "chat"}, intent: domain.IntentStartAIChat},
	{phrases: []string{"check symptoms", "symptom check", "लक्षण जांच"}, intent: domain.IntentStartSymptomCheck},
	{phrases: []string{"prevention tips", "preventive tips", "बचाव के उपाय"}, intent: domain.IntentStartPreventiveTips},
}

// selectorIntents maps structured selector IDs emitted by interactive menus
// 1:1 to intents.
var selectorIntents = map[string]domain.Intent{
	domain.SelAIChat:         domain.IntentStartAIChat,
	domain.SelSymptomCheck:   domain.IntentStartSymptomCheck,
	domain.SelPreventiveTips: domain.IntentStartPreventiveTips,
	domain.SelFeedback:       domain.IntentStartFeedback,
	domain.SelMoreOptions:    domain.IntentMoreOptions,
	domain.SelOutbreakAlerts: domain.IntentOutbreakAlerts,
	domain.SelVaccination:    domain.IntentVaccinationInquiry,
	domain.SelNutrition:      domain.IntentNutritionInquiry,
	domain.SelDiseaseInfo:    domain.IntentDiseaseInfo,
	domain.SelFirstAid:       domain.IntentFirstAid,
	domain.SelMentalHealth:   domain.IntentMentalHealth,
	domain.SelReminders:      domain.IntentHealthReminders,
	domain.SelMythBusting:    domain.IntentMythBusting,
	domain.SelAbout:          domain.IntentAboutService,
	domain.SelHelp:           domain.IntentHelp,
	domain.SelChangeLanguage: domain.IntentChangeLanguage,
	domain.SelUnsubscribe:    domain.IntentUnsubscribe,
	domain.SelBackToMenu:     domain.IntentMenuRequest,
	domain.SelLangEN:         domain.IntentLanguageSelect,
	domain.SelLangHI:         domain.IntentLanguageSelect,
	domain.SelLangTE:         domain.IntentLanguageSelect,
	domain.SelLangTA:         domain.IntentLanguageSelect,
	domain.SelScriptNative:   domain.IntentScriptSelect,
	domain.SelScriptRoman:    domain.IntentScriptSelect,
}

// freeTextRules cover menu item names in every supported language (native
// script and Romanized), navigation words, and health-topic keywords.
// Matched by substring, first rule wins, so multi-word phrases come before
// the single words they contain.
var freeTextRules = []phraseRule{
	{phrases: []string{"start ai chat", "ai chat", "health chat", "chat with ai", "एआई चैट", "చాట్", "அரட்டை"}, intent: domain.IntentStartAIChat},
	{phrases: []string{"check symptoms", "symptom check", "लक्षण जांच"}, intent: domain.IntentStartSymptomCheck},
	{phrases: []string{"prevention tips", "preventive tips", "prevention", "बचाव", "रोकथाम", "నివారణ", "தடுப்பு முறை"}, intent: domain.IntentStartPreventiveTips},
	{phrases: []string{"feedback", "प्रतिक्रिया", "అభిప్రాయం", "கருத்து"}, intent: domain.IntentStartFeedback},
	{phrases: []string{"more options", "more", "अधिक विकल्प", "మరిన్ని", "மேலும்"}, intent: domain.IntentMoreOptions},
	{phrases: []string{"change language", "भाषा बदलें", "భాష మార్చు", "மொழி மாற்று", "language"}, intent: domain.IntentChangeLanguage},
	{phrases: []string{"vaccination", "vaccine", "टीकाकरण", "टीका", "టీకా", "தடுப்பூசி"}, intent: domain.IntentVaccinationInquiry},
	{phrases: []string{"nutrition", "diet", "पोषण", "आहार", "పోషకాహారం", "ఆహారం", "ஊட்டச்சத்து"}, intent: domain.IntentNutritionInquiry},
	{phrases: []string{"symptom", "लक्षण", "lakshan", "లక్షణ", "அறிகுறி"}, intent: domain.IntentSymptomInquiry},
	{phrases: []string{"outbreak", "alerts", "प्रकोप", "వ్యాప్తి", "நோய் பரவல்"}, intent: domain.IntentOutbreakAlerts},
	{phrases: []string{"first aid", "प्राथमिक उपचार", "ప్రథమ చికిత్స", "முதலுதவி"}, intent: domain.IntentFirstAid},
	{phrases: []string{"mental health", "मानसिक", "तनाव", "మానసిక", "மனநல"}, intent: domain.IntentMentalHealth},
	{phrases: []string{"disease", "बीमारी", "रोग", "వ్యాధి", "நோய்"}, intent: domain.IntentDiseaseInfo},
	{phrases: []string{"reminder", "अनुस्मारक", "రిమైండర్"}, intent: domain.IntentHealthReminders},
	{phrases: []string{"myth", "मिथक", "అపోహ", "கட்டுக்கதை"}, intent: domain.IntentMythBusting},
	{phrases: []string{"unsubscribe", "stop messages"}, intent: domain.IntentUnsubscribe},
	{phrases: []string{"main menu", "menu", "home", "मेनू", "మెనూ", "மெனு"}, intent: domain.IntentMenuRequest},
	{phrases: []string{"back", "वापस", "వెనుకకు", "பின்"}, intent: domain.IntentBack},
	{phrases: []string{"help", "मदद", "सहायता", "సహాయం", "உதவி"}, intent: domain.IntentHelp},
	{phrases: []string{"about"}, intent: domain.IntentAboutService},
}

// greetingWords are matched exactly after trailing punctuation is stripped.
var greetingWords = []string{
	"hi", "hello", "hey", "hlo", "good morning", "good afternoon",
	"good evening", "namaste", "नमस्ते", "namaskar", "నమస్కారం",
	"vanakkam", "வணக்கம்", "hola",
}

// stateDefaults resolve inputs that matched nothing, keeping the classifier
// total.
var stateDefaults = map[domain.DialogueState]domain.Intent{
	domain.StateUninitialized:     domain.IntentGreeting,
	domain.StateLanguageSelection: domain.IntentLanguageSelect,
	domain.StateScriptSelection:   domain.IntentScriptSelect,
	domain.StateMainMenu:          domain.IntentGeneralMessage,
	domain.StateMoreOptions:       domain.IntentGeneralMessage,
	domain.StateFeedback:          domain.IntentFeedbackInput,
	domain.StateAIChat:            domain.IntentAIChatMessage,
	domain.StateSymptomCheck:      domain.IntentSymptomInput,
	domain.StatePreventiveTips:    domain.IntentPreventiveTipsRequest,
}
