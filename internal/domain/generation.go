package domain

// ScriptPreference selects between a language's native script and a
// Romanized transliteration for generated text.
type ScriptPreference string

const (
	ScriptNative          ScriptPreference = "native"
	ScriptTransliteration ScriptPreference = "transliteration"
)

// AccessibilityModifier adjusts generated phrasing for accessibility needs.
type AccessibilityModifier string

const (
	AccessibilityNone       AccessibilityModifier = ""
	AccessibilitySimplified AccessibilityModifier = "simplified"
	AccessibilitySpaced     AccessibilityModifier = "spaced"
	AccessibilitySpeech     AccessibilityModifier = "speech"
)

// GenerationMode selects the feature-specific instruction block for a
// synthesis request.
type GenerationMode string

const (
	ModeChat    GenerationMode = "chat"
	ModeSymptom GenerationMode = "symptom"
	ModeTips    GenerationMode = "tips"
)

// GenerationRequest carries everything the synthesis engine needs to build
// one prompt. Constructed and consumed within a single turn, never persisted.
type GenerationRequest struct {
	Mode          GenerationMode
	Input         string
	ContextWindow []Turn
	Accessibility AccessibilityModifier
	Emergency     bool
	Language      string
	Script        ScriptPreference
}

// Origin records whether generated text came from the oracle or from a
// local fallback constant.
type Origin string

const (
	OriginFresh    Origin = "fresh"
	OriginFallback Origin = "fallback"
)

// GenerationResult is the synthesis engine's output. Text is always
// non-empty; Origin tells the caller whether the oracle actually answered.
type GenerationResult struct {
	Text   string
	Origin Origin
}
