package domain

// DefaultLanguage is used before a user has picked one.
const DefaultLanguage = "en"

// SupportedLanguages lists the language codes the assistant serves. Adding a
// language means adding keyword/template data, not code.
var SupportedLanguages = []string{"en", "hi", "te", "ta"}

// LanguageSupported reports whether code is a served language.
func LanguageSupported(code string) bool {
	for _, l := range SupportedLanguages {
		if l == code {
			return true
		}
	}
	return false
}

// HasScriptChoice reports whether lang offers a native-script vs Romanized
// transliteration choice during onboarding. English has no such choice.
func HasScriptChoice(lang string) bool {
	switch lang {
	case "hi", "te", "ta":
		return true
	}
	return false
}
