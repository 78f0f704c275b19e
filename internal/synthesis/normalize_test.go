package synthesis

import (
	"testing"
	"unicode"

	"github.com/stretchr/testify/require"
)

func TestStripNativeScript_RemovesAllNativeCodepoints(t *testing.T) {
	cases := []struct {
		lang string
		in   string
		rt   *unicode.RangeTable
	}{
		{"hi", "Namaste नमस्ते, aap kaise hain आप कैसे हैं?", unicode.Devanagari},
		{"te", "Meeru ela unnaru మీరు ఎలా ఉన్నారు?", unicode.Telugu},
		{"ta", "Vanakkam வணக்கம், eppadi irukkirirgal?", unicode.Tamil},
	}
	for _, tc := range cases {
		out := StripNativeScript(tc.in, tc.lang)
		for _, r := range out {
			require.False(t, unicode.Is(tc.rt, r), "lang %s: %q still in %q", tc.lang, r, out)
		}
	}
}

func TestStripNativeScript_Idempotent(t *testing.T) {
	in := "Bukhaar ho (बुखार हो) to paani piyein.\n\n\nAaram करें  zaroori hai."
	once := StripNativeScript(in, "hi")
	twice := StripNativeScript(once, "hi")
	require.Equal(t, once, twice)
}

func TestStripNativeScript_CleansEmptiedBrackets(t *testing.T) {
	require.Equal(t, "Paani piyein.", StripNativeScript("Paani piyein (पानी पियें).", "hi"))
	require.Equal(t, "Rest well.", StripNativeScript("Rest [विश्राम] well.", "hi"))
}

func TestStripNativeScript_CollapsesWhitespace(t *testing.T) {
	out := StripNativeScript("a  नमस्ते  b\n\n\n\nc   d", "hi")
	require.Equal(t, "a b\n\nc d", out)
}

func TestStripNativeScript_UnknownLanguageUntouched(t *testing.T) {
	in := "no  normalization   here"
	require.Equal(t, in, StripNativeScript(in, "en"))
}

func TestStripNativeScript_OnlyTargetBlockRemoved(t *testing.T) {
	// Telugu preference must not touch Devanagari and vice versa.
	in := "mix नमस्ते and నమస్కారం"
	out := StripNativeScript(in, "te")
	require.Contains(t, out, "नमस्ते")
	require.NotContains(t, out, "నమస్కారం")
}
