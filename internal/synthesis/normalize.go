package synthesis

import (
	"regexp"
	"strings"
	"unicode"
)

// scriptRanges maps language codes to their native Unicode blocks. Languages
// not listed have no script normalization.
var scriptRanges = map[string]*unicode.RangeTable{
	"hi": unicode.Devanagari,
	"te": unicode.Telugu,
	"ta": unicode.Tamil,
}

var (
	emptyBrackets  = regexp.MustCompile(`\(\s*\)|\[\s*\]|\{\s*\}`)
	spaceRuns      = regexp.MustCompile(`[ \t]+`)
	blankLineRuns  = regexp.MustCompile(`\n{3,}`)
	trailingSpaces = regexp.MustCompile(`[ \t]+\n`)
	orphanedPunct  = regexp.MustCompile(` ([.,!?;:])`)
)

// StripNativeScript removes every codepoint of lang's native Unicode block
// from text, then tidies the leftovers: emptied bracket pairs go away and
// duplicate whitespace collapses. Applying it twice gives the same result as
// applying it once.
func StripNativeScript(text, lang string) string {
	rt, ok := scriptRanges[lang]
	if !ok {
		return text
	}

	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if unicode.Is(rt, r) {
			continue
		}
		b.WriteRune(r)
	}

	out := b.String()
	out = emptyBrackets.ReplaceAllString(out, "")
	out = spaceRuns.ReplaceAllString(out, " ")
	out = orphanedPunct.ReplaceAllString(out, "$1")
	out = trailingSpaces.ReplaceAllString(out, "\n")
	out = blankLineRuns.ReplaceAllString(out, "\n\n")
	return strings.TrimSpace(out)
}
