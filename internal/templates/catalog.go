package templates

import "health-agent/internal/domain"

// Literal template text per key per language. English is the required
// baseline; other languages are filled in as translations land.
var templateCatalog = map[Key]map[string]string{
	KeyWelcome: {
		"en": "Welcome to the Health Assistant! I can answer health questions, check symptoms, and share prevention tips.",
		"hi": "हेल्थ असिस्टेंट में आपका स्वागत है! मैं स्वास्थ्य प्रश्नों के उत्तर दे सकता हूँ, लक्षण जाँच सकता हूँ और बचाव के उपाय बता सकता हूँ।",
		"te": "హెల్త్ అసిస్టెంట్‌కు స్వాగతం! నేను ఆరోగ్య ప్రశ్నలకు సమాధానమివ్వగలను, లక్షణాలను పరిశీలించగలను.",
		"ta": "ஹெல்த் அசிஸ்டண்டிற்கு வரவேற்கிறோம்! நான் உடல்நலக் கேள்விகளுக்கு பதிலளிக்க முடியும்.",
	},
	KeyLanguagePrompt: {
		"en": "Please choose your language:",
		"hi": "कृपया अपनी भाषा चुनें:",
		"te": "దయచేసి మీ భాషను ఎంచుకోండి:",
		"ta": "உங்கள் மொழியைத் தேர்ந்தெடுக்கவும்:",
	},
	KeyScriptPrompt: {
		"en": "How would you like to read replies?",
		"hi": "आप उत्तर किस लिपि में पढ़ना चाहेंगे?",
	},
	KeyMainMenuPrompt: {
		"en": "What would you like to do?",
		"hi": "आप क्या करना चाहेंगे?",
		"te": "మీరు ఏమి చేయాలనుకుంటున్నారు?",
		"ta": "நீங்கள் என்ன செய்ய விரும்புகிறீர்கள்?",
	},
	KeyMoreOptionsPrompt: {
		"en": "More options:",
		"hi": "अधिक विकल्प:",
	},
	KeyEmergency: {
		"en": "This sounds like a medical emergency. Please call your local emergency number (108 in India) or go to the nearest hospital immediately. Do not wait.",
		"hi": "यह एक चिकित्सीय आपातकाल लगता है। कृपया तुरंत 108 पर कॉल करें या नज़दीकी अस्पताल जाएँ। देर न करें।",
		"te": "ఇది వైద్య అత్యవసర పరిస్థితిలా ఉంది. దయచేసి వెంటనే 108కి కాల్ చేయండి లేదా సమీప ఆసుపత్రికి వెళ్లండి.",
		"ta": "இது மருத்துவ அவசரநிலை போல் தெரிகிறது. உடனடியாக 108-ஐ அழைக்கவும் அல்லது அருகிலுள்ள மருத்துவமனைக்குச் செல்லவும்.",
	},
	KeyFallbackGeneric: {
		"en": "Sorry, I'm having trouble answering right now. Please try again in a moment, or type 'menu' for other options.",
		"hi": "क्षमा करें, अभी उत्तर देने में समस्या हो रही है। कृपया थोड़ी देर बाद फिर कोशिश करें, या 'menu' लिखें।",
		"te": "క్షమించండి, ప్రస్తుతం సమాధానం ఇవ్వడంలో సమస్య ఉంది. దయచేసి కాసేపటి తర్వాత మళ్లీ ప్రయత్నించండి.",
		"ta": "மன்னிக்கவும், இப்போது பதிலளிப்பதில் சிக்கல் உள்ளது. சிறிது நேரம் கழித்து மீண்டும் முயற்சிக்கவும்.",
	},
	KeyFallbackSafety: {
		"en": "I can't help with that request. If you have a health question, I'm happy to help — or type 'menu' for options.",
		"hi": "मैं इस अनुरोध में मदद नहीं कर सकता। यदि आपका कोई स्वास्थ्य प्रश्न है तो मैं मदद कर सकता हूँ — या 'menu' लिखें।",
		"te": "ఆ అభ్యర్థనకు నేను సహాయం చేయలేను. ఆరోగ్య ప్రశ్న ఉంటే అడగండి.",
		"ta": "அந்தக் கோரிக்கைக்கு என்னால் உதவ முடியாது. உடல்நலக் கேள்வி இருந்தால் கேளுங்கள்.",
	},
	KeyAIChatIntro: {
		"en": "You're now chatting with the health assistant. Ask me anything about health. Type 'menu' anytime to go back.",
		"hi": "अब आप हेल्थ असिस्टेंट से बात कर रहे हैं। स्वास्थ्य से जुड़ा कोई भी सवाल पूछें। वापस जाने के लिए 'menu' लिखें।",
	},
	KeySymptomIntro: {
		"en": "Let's check your symptoms. Describe what you're feeling — for example \"fever and headache since yesterday\". Type 'menu' to go back.",
		"hi": "आइए आपके लक्षण जाँचें। बताइए आपको कैसा महसूस हो रहा है — जैसे \"कल से बुखार और सिरदर्द\"। वापस जाने के लिए 'menu' लिखें।",
	},
	KeyTipsIntro: {
		"en": "Which topic would you like prevention tips for? For example: dengue, flu, diabetes, heat stroke. Type 'menu' to go back.",
		"hi": "आप किस विषय पर बचाव के उपाय चाहते हैं? जैसे: डेंगू, फ्लू, मधुमेह, लू। वापस जाने के लिए 'menu' लिखें।",
	},
	KeyFeedbackPrompt: {
		"en": "We'd love your feedback! Please tell us what's working and what isn't.",
		"hi": "हमें आपकी प्रतिक्रिया चाहिए! कृपया बताएं क्या अच्छा है और क्या नहीं।",
	},
	KeyFeedbackThanks: {
		"en": "Thank you for your feedback!",
		"hi": "आपकी प्रतिक्रिया के लिए धन्यवाद!",
	},
	KeyAccessibilityAck: {
		"en": "Accessibility preference updated.",
		"hi": "एक्सेसिबिलिटी सेटिंग अपडेट हो गई।",
	},
	KeyAccessibilityHelp: {
		"en": "Accessibility commands: /simple (easier wording), /spaced (extra spacing), /voice (speech-friendly), /reset (turn off).",
		"hi": "एक्सेसिबिलिटी कमांड: /simple (सरल भाषा), /spaced (अधिक स्पेसिंग), /voice (बोलने योग्य), /reset (बंद करें)।",
	},
	KeyHelp: {
		"en": "Type 'menu' for the main menu, 'language' to change language, or just ask a health question. Commands starting with / adjust accessibility.",
		"hi": "मुख्य मेनू के लिए 'menu' लिखें, भाषा बदलने के लिए 'language', या सीधे कोई स्वास्थ्य प्रश्न पूछें।",
	},
	KeyAbout: {
		"en": "I'm an AI health assistant. I share general health information — I'm not a doctor, and my answers are not medical advice.",
		"hi": "मैं एक एआई हेल्थ असिस्टेंट हूँ। मैं सामान्य स्वास्थ्य जानकारी देता हूँ — मैं डॉक्टर नहीं हूँ।",
	},
	KeyUnsubscribed: {
		"en": "You've been unsubscribed from broadcasts. Message me anytime to start again.",
	},
	KeyOutbreakNone: {
		"en": "No active outbreak alerts for your area right now. Stay safe!",
		"hi": "अभी आपके क्षेत्र के लिए कोई सक्रिय प्रकोप अलर्ट नहीं है। सुरक्षित रहें!",
	},
	KeyRemindersInfo: {
		"en": "Health reminders are sent for vaccination schedules and seasonal advisories. Reply 'stop messages' to opt out.",
	},
}

// Literal menu option lists per key per language.
var menuCatalog = map[MenuKey]map[string][]domain.Option{
	MenuLanguages: {
		"en": {
			{ID: domain.SelLangEN, Label: "English"},
			{ID: domain.SelLangHI, Label: "हिंदी (Hindi)"},
			{ID: domain.SelLangTE, Label: "తెలుగు (Telugu)"},
			{ID: domain.SelLangTA, Label: "தமிழ் (Tamil)"},
		},
	},
	MenuScripts: {
		"en": {
			{ID: domain.SelScriptNative, Label: "Native script"},
			{ID: domain.SelScriptRoman, Label: "Roman (English letters)"},
		},
		"hi": {
			{ID: domain.SelScriptNative, Label: "देवनागरी"},
			{ID: domain.SelScriptRoman, Label: "Roman (English letters)"},
		},
	},
	MenuMain: {
		"en": {
			{ID: domain.SelAIChat, Label: "AI Health Chat"},
			{ID: domain.SelSymptomCheck, Label: "Check Symptoms"},
			{ID: domain.SelPreventiveTips, Label: "Prevention Tips"},
			{ID: domain.SelOutbreakAlerts, Label: "Outbreak Alerts"},
			{ID: domain.SelMoreOptions, Label: "More Options"},
		},
		"hi": {
			{ID: domain.SelAIChat, Label: "एआई हेल्थ चैट"},
			{ID: domain.SelSymptomCheck, Label: "लक्षण जांच"},
			{ID: domain.SelPreventiveTips, Label: "बचाव के उपाय"},
			{ID: domain.SelOutbreakAlerts, Label: "प्रकोप अलर्ट"},
			{ID: domain.SelMoreOptions, Label: "अधिक विकल्प"},
		},
	},
	MenuMore: {
		"en": {
			{ID: domain.SelVaccination, Label: "Vaccination Info"},
			{ID: domain.SelNutrition, Label: "Nutrition & Diet"},
			{ID: domain.SelFirstAid, Label: "First Aid"},
			{ID: domain.SelMentalHealth, Label: "Mental Health"},
			{ID: domain.SelMythBusting, Label: "Myth Busting"},
			{ID: domain.SelReminders, Label: "Health Reminders"},
			{ID: domain.SelFeedback, Label: "Give Feedback"},
			{ID: domain.SelChangeLanguage, Label: "Change Language"},
			{ID: domain.SelAbout, Label: "About"},
			{ID: domain.SelBackToMenu, Label: "Main Menu"},
		},
	},
}
