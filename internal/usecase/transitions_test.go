package usecase

import (
	"testing"

	"github.com/stretchr/testify/require"

	"health-agent/internal/domain"
)

func TestTransition(t *testing.T) {
	cases := []struct {
		name     string
		state    domain.DialogueState
		intent   domain.Intent
		language string
		want     domain.DialogueState
	}{
		{"emergency keeps state", domain.StateSymptomCheck, domain.IntentEmergency, "en", domain.StateSymptomCheck},
		{"emergency keeps menu", domain.StateMainMenu, domain.IntentEmergency, "en", domain.StateMainMenu},
		{"accessibility keeps state", domain.StateAIChat, domain.IntentAccessibilityCommand, "en", domain.StateAIChat},

		{"menu request exits chat", domain.StateAIChat, domain.IntentMenuRequest, "en", domain.StateMainMenu},
		{"back exits more options", domain.StateMoreOptions, domain.IntentBack, "en", domain.StateMainMenu},
		{"change language from anywhere", domain.StatePreventiveTips, domain.IntentChangeLanguage, "hi", domain.StateLanguageSelection},

		{"greeting new user no language", domain.StateUninitialized, domain.IntentGreeting, "", domain.StateLanguageSelection},
		{"greeting new user with language", domain.StateUninitialized, domain.IntentGreeting, "en", domain.StateMainMenu},
		{"greeting returning user keeps state", domain.StateMainMenu, domain.IntentGreeting, "en", domain.StateMainMenu},

		{"language picked english", domain.StateLanguageSelection, domain.IntentLanguageSelect, "en", domain.StateMainMenu},
		{"language picked hindi goes to script", domain.StateLanguageSelection, domain.IntentLanguageSelect, "hi", domain.StateScriptSelection},
		{"language picked tamil goes to script", domain.StateLanguageSelection, domain.IntentLanguageSelect, "ta", domain.StateScriptSelection},
		{"language unresolved stays", domain.StateLanguageSelection, domain.IntentLanguageSelect, "", domain.StateLanguageSelection},
		{"script picked", domain.StateScriptSelection, domain.IntentScriptSelect, "hi", domain.StateMainMenu},

		{"start ai chat", domain.StateMainMenu, domain.IntentStartAIChat, "en", domain.StateAIChat},
		{"start symptom check", domain.StateMainMenu, domain.IntentStartSymptomCheck, "en", domain.StateSymptomCheck},
		{"start tips", domain.StateMainMenu, domain.IntentStartPreventiveTips, "en", domain.StatePreventiveTips},
		{"start feedback", domain.StateMainMenu, domain.IntentStartFeedback, "en", domain.StateFeedback},
		{"more options", domain.StateMainMenu, domain.IntentMoreOptions, "en", domain.StateMoreOptions},

		{"chat message continues", domain.StateAIChat, domain.IntentAIChatMessage, "en", domain.StateAIChat},
		{"symptom input continues", domain.StateSymptomCheck, domain.IntentSymptomInput, "en", domain.StateSymptomCheck},
		{"tips request continues", domain.StatePreventiveTips, domain.IntentPreventiveTipsRequest, "en", domain.StatePreventiveTips},
		{"feedback input returns to menu", domain.StateFeedback, domain.IntentFeedbackInput, "en", domain.StateMainMenu},

		{"vaccination inquiry lands on menu", domain.StateMoreOptions, domain.IntentVaccinationInquiry, "en", domain.StateMainMenu},
		{"first aid lands on menu", domain.StateMainMenu, domain.IntentFirstAid, "en", domain.StateMainMenu},

		{"help keeps state", domain.StateMoreOptions, domain.IntentHelp, "en", domain.StateMoreOptions},
		{"about keeps state", domain.StateMainMenu, domain.IntentAboutService, "en", domain.StateMainMenu},
		{"general message keeps state", domain.StateMainMenu, domain.IntentGeneralMessage, "en", domain.StateMainMenu},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, Transition(tc.state, tc.intent, tc.language))
		})
	}
}
