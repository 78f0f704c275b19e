package synthesis

import (
	"fmt"
	"strings"

	"health-agent/internal/domain"
)

// languageNames render the language code into the persona instructions.
var languageNames = map[string]string{
	"en": "English",
	"hi": "Hindi",
	"te": "Telugu",
	"ta": "Tamil",
}

// buildPrompt composes the single prompt sent to the oracle: persona, mode
// block, accessibility modifier, rendered context window, emergency
// directive, then the current input.
func buildPrompt(req domain.GenerationRequest) string {
	var sections []string

	sections = append(sections, personaInstructions(req.Language, req.Script))
	sections = append(sections, modeInstructions(req.Mode))

	if mod := accessibilityInstructions(req.Accessibility); mod != "" {
		sections = append(sections, mod)
	}
	if req.Emergency {
		sections = append(sections,
			"IMPORTANT: The user may be describing a medical emergency. "+
				"Begin your reply by urging them to call their local emergency number "+
				"or reach the nearest hospital immediately, then give brief first-response guidance.")
	}
	if window := renderContextWindow(req.ContextWindow); window != "" {
		sections = append(sections, "Recent conversation:\n"+window)
	}

	sections = append(sections, "User message: "+strings.TrimSpace(req.Input))
	return strings.Join(sections, "\n\n")
}

func personaInstructions(lang string, script domain.ScriptPreference) string {
	name, ok := languageNames[lang]
	if !ok {
		name = languageNames[domain.DefaultLanguage]
	}
	b := fmt.Sprintf(
		"You are a friendly public-health assistant on a messaging app. "+
			"Answer in %s using short, plain sentences suitable for a phone screen. "+
			"Share general health information only; remind the user you are not a doctor "+
			"when giving anything close to medical advice.", name)
	if script == domain.ScriptTransliteration {
		b += " Write using Roman (Latin) letters only, transliterating rather than using native script."
	}
	return b
}

func modeInstructions(mode domain.GenerationMode) string {
	switch mode {
	case domain.ModeSymptom:
		return "The user is describing symptoms. Ask at most one clarifying question if needed, " +
			"list likely everyday causes, say what self-care is reasonable, and state clearly " +
			"when they should see a doctor."
	case domain.ModeTips:
		return "The user wants prevention tips. Reply with a short list of practical, " +
			"locally applicable prevention steps for the topic they name."
	default:
		return "Answer the user's health question conversationally and accurately. " +
			"If the question is not about health, gently steer back to health topics."
	}
}

func accessibilityInstructions(mod domain.AccessibilityModifier) string {
	switch mod {
	case domain.AccessibilitySimplified:
		return "Accessibility: use very simple words and short sentences, as for a low-literacy reader."
	case domain.AccessibilitySpaced:
		return "Accessibility: put every sentence on its own line with a blank line between sentences."
	case domain.AccessibilitySpeech:
		return "Accessibility: phrase the reply so it reads naturally when spoken aloud by a screen reader. Avoid symbols, emoji, and abbreviations."
	default:
		return ""
	}
}

// renderContextWindow lays out recent turns as alternating labeled lines.
func renderContextWindow(turns []domain.Turn) string {
	if len(turns) == 0 {
		return ""
	}
	if len(turns) > domain.ContextWindowSize {
		turns = turns[len(turns)-domain.ContextWindowSize:]
	}
	var b strings.Builder
	for _, t := range turns {
		if content := strings.TrimSpace(t.Message.Content); content != "" {
			b.WriteString("User: ")
			b.WriteString(content)
			b.WriteString("\n")
		}
		if reply := strings.TrimSpace(t.ReplyText); reply != "" {
			b.WriteString("Assistant: ")
			b.WriteString(reply)
			b.WriteString("\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}
