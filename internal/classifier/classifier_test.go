package classifier

import (
	"testing"

	"github.com/stretchr/testify/require"

	"health-agent/internal/domain"
)

func TestClassify_Deterministic(t *testing.T) {
	inputs := []string{"Hi", "menu", "I have a fever", "/simple", "chest pain", "टीकाकरण"}
	states := []domain.DialogueState{
		domain.StateMainMenu, domain.StateAIChat, domain.StateSymptomCheck,
		domain.StateLanguageSelection, domain.StateUninitialized,
	}
	for _, in := range inputs {
		for _, st := range states {
			first := Classify(in, st, "en")
			second := Classify(in, st, "en")
			require.Equal(t, first, second, "input %q state %q", in, st)
		}
	}
}

func TestClassify_EmergencyWinsEverywhere(t *testing.T) {
	// Emergency keywords override every state, including inputs that also
	// match exit phrases or menu items.
	for _, st := range []domain.DialogueState{
		domain.StateUninitialized, domain.StateLanguageSelection,
		domain.StateMainMenu, domain.StateAIChat, domain.StateSymptomCheck,
		domain.StatePreventiveTips, domain.StateMoreOptions,
	} {
		require.Equal(t, domain.IntentEmergency,
			Classify("I have severe chest pain", st, "en"), "state %q", st)
	}

	// Also when the input contains a menu word.
	require.Equal(t, domain.IntentEmergency,
		Classify("menu says chest pain help", domain.StateMainMenu, "en"))
}

func TestClassify_EmergencyPerLanguage(t *testing.T) {
	require.Equal(t, domain.IntentEmergency,
		Classify("मुझे सीने में दर्द है", domain.StateAIChat, "hi"))
	require.Equal(t, domain.IntentEmergency,
		Classify("గుండెపోటు అనుకుంటున్నాను", domain.StateMainMenu, "te"))
	// English keywords still fire for non-English users.
	require.Equal(t, domain.IntentEmergency,
		Classify("heart attack", domain.StateMainMenu, "ta"))
}

func TestClassify_EmergencyBeatsAccessibilityPrefix(t *testing.T) {
	require.Equal(t, domain.IntentEmergency,
		Classify("/simple chest pain", domain.StateMainMenu, "en"))
}

func TestClassify_AccessibilityCommand(t *testing.T) {
	require.Equal(t, domain.IntentAccessibilityCommand,
		Classify("/simple", domain.StateMainMenu, "en"))
	require.Equal(t, domain.IntentAccessibilityCommand,
		Classify("  /voice  ", domain.StateAIChat, "hi"))
}

func TestClassify_AIChatFreeTextIsolation(t *testing.T) {
	// Free conversational text stays in the chat, even when it contains a
	// menu word as a substring of a longer sentence.
	cases := []string{
		"tell me about the menu of foods good for diabetes",
		"my back hurts when I sit",
		"what vaccination schedule should my baby follow",
		"i want to go home early today, is that stress",
	}
	for _, in := range cases {
		require.Equal(t, domain.IntentAIChatMessage,
			Classify(in, domain.StateAIChat, "en"), "input %q", in)
	}
}

func TestClassify_ConversationalExits(t *testing.T) {
	require.Equal(t, domain.IntentMenuRequest, Classify("menu", domain.StateAIChat, "en"))
	require.Equal(t, domain.IntentMenuRequest, Classify("Main Menu", domain.StateSymptomCheck, "en"))
	require.Equal(t, domain.IntentMenuRequest, Classify("मेनू", domain.StateAIChat, "hi"))
	require.Equal(t, domain.IntentChangeLanguage, Classify("change language", domain.StatePreventiveTips, "en"))
	require.Equal(t, domain.IntentChangeLanguage, Classify("भाषा", domain.StateAIChat, "hi"))
}

func TestClassify_ConversationalFeatureSwitch(t *testing.T) {
	require.Equal(t, domain.IntentStartSymptomCheck,
		Classify("check symptoms", domain.StateAIChat, "en"))
	require.Equal(t, domain.IntentStartAIChat,
		Classify("start ai chat", domain.StateSymptomCheck, "en"))
	require.Equal(t, domain.IntentStartPreventiveTips,
		Classify("prevention tips", domain.StateAIChat, "en"))
}

func TestClassify_ContinuationIntents(t *testing.T) {
	require.Equal(t, domain.IntentSymptomInput,
		Classify("fever and headache since yesterday", domain.StateSymptomCheck, "en"))
	require.Equal(t, domain.IntentPreventiveTipsRequest,
		Classify("dengue", domain.StatePreventiveTips, "en"))
}

func TestClassify_SelectorCodes(t *testing.T) {
	require.Equal(t, domain.IntentStartAIChat, Classify(domain.SelAIChat, domain.StateMainMenu, "en"))
	require.Equal(t, domain.IntentStartSymptomCheck, Classify(domain.SelSymptomCheck, domain.StateMainMenu, "en"))
	require.Equal(t, domain.IntentLanguageSelect, Classify(domain.SelLangHI, domain.StateLanguageSelection, "en"))
	require.Equal(t, domain.IntentScriptSelect, Classify(domain.SelScriptRoman, domain.StateScriptSelection, "hi"))
	require.Equal(t, domain.IntentVaccinationInquiry, Classify(domain.SelVaccination, domain.StateMoreOptions, "en"))
}

func TestClassify_FreeTextPhrases(t *testing.T) {
	require.Equal(t, domain.IntentVaccinationInquiry, Classify("vaccination schedule", domain.StateMainMenu, "en"))
	require.Equal(t, domain.IntentNutritionInquiry, Classify("what about my diet", domain.StateMainMenu, "en"))
	require.Equal(t, domain.IntentSymptomInquiry, Classify("लक्षण के बारे में बताओ", domain.StateMainMenu, "hi"))
	require.Equal(t, domain.IntentMenuRequest, Classify("menu", domain.StateMainMenu, "en"))
	require.Equal(t, domain.IntentStartPreventiveTips, Classify("बचाव कैसे करें", domain.StateMainMenu, "hi"))
}

func TestClassify_MultiWordBeforeSingleWord(t *testing.T) {
	// "first aid" must not be swallowed by a shorter rule.
	require.Equal(t, domain.IntentFirstAid, Classify("first aid for burns", domain.StateMainMenu, "en"))
	require.Equal(t, domain.IntentMentalHealth, Classify("mental health support", domain.StateMainMenu, "en"))
}

func TestClassify_Greetings(t *testing.T) {
	require.Equal(t, domain.IntentGreeting, Classify("Hi", domain.StateMainMenu, "en"))
	require.Equal(t, domain.IntentGreeting, Classify("hello!", domain.StateMainMenu, "en"))
	require.Equal(t, domain.IntentGreeting, Classify("नमस्ते", domain.StateMainMenu, "hi"))
	require.Equal(t, domain.IntentGreeting, Classify("VANAKKAM", domain.StateMainMenu, "ta"))
}

func TestClassify_StateDefaults(t *testing.T) {
	require.Equal(t, domain.IntentGeneralMessage,
		Classify("xyzzy", domain.StateMainMenu, "en"))
	require.Equal(t, domain.IntentLanguageSelect,
		Classify("hindi", domain.StateLanguageSelection, "en"))
	require.Equal(t, domain.IntentScriptSelect,
		Classify("2", domain.StateScriptSelection, "hi"))
	require.Equal(t, domain.IntentFeedbackInput,
		Classify("the bot is great", domain.StateFeedback, "en"))
}

func TestClassify_NormalizesInput(t *testing.T) {
	require.Equal(t, domain.IntentMenuRequest, Classify("  MENU  ", domain.StateAIChat, "en"))
	require.Equal(t, domain.IntentStartAIChat, Classify("AI Chat", domain.StateMainMenu, "en"))
}
