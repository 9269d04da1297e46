// Package strip removes annotations from Gurmukhi text: vishram pause
// marks, line-ending numbering, and nukta accents. Useful for search
// indexing and first-letter matching, where the marks only get in the
// way.
//
// All functions are safe for concurrent use by multiple goroutines.
package strip

import "strings"

// Vishram (pause) marks as written in the ShabadOS corpus.
const (
	VishramLight  = "."
	VishramMedium = ","
	VishramHeavy  = ";"
)

// Vishrams lists every pause mark.
var Vishrams = []string{VishramLight, VishramMedium, VishramHeavy}

// LineEndingChars are the danda characters that close a line.
var LineEndingChars = []string{"।", "॥"}

// LineEndingPatterns are the verse-numbering blocks that end a line,
// in both Unicode and ASCII spellings.
var LineEndingPatterns = []string{
	"।੧", "।੨", "।੩", "।੪", "।੫", "।੬", "।੭", "।੮", "।੯", "।੦",
	"॥੧", "॥੨", "॥੩", "॥੪", "॥੫", "॥੬", "॥੭", "॥੮", "॥੯", "॥੦",
	"॥ ਰਹਾਉ",
	"||1", "||2", "||3", "||4", "||5", "||6", "||7", "||8", "||9", "||0",
	"||Pause",
}

// Strip removes every occurrence of each removal from s.
func Strip(s string, removals ...string) string {
	for _, removal := range removals {
		s = strings.ReplaceAll(s, removal, "")
	}
	return s
}

// StripVishrams removes all pause marks from s.
func StripVishrams(s string) string {
	return Strip(s, Vishrams...)
}

// StripPast cuts s at the earliest occurrence of any removal and trims
// trailing spaces. A removal that does not occur is ignored.
func StripPast(s string, removals ...string) string {
	for _, removal := range removals {
		if i := strings.Index(s, removal); i >= 0 {
			s = s[:i]
		}
	}
	return strings.TrimRight(s, " ")
}

// StripLineEndings removes verse numbering and dandas: the text is cut
// before the first numbering block, remaining dandas are dropped, and
// runs of spaces collapse to one.
//
//	StripLineEndings("ਸਬਦ ॥ ਸਬਦ ॥੧॥ ਰਹਾਉ ॥") == "ਸਬਦ ਸਬਦ"
func StripLineEndings(s string) string {
	s = StripPast(s, LineEndingPatterns...)
	s = Strip(s, LineEndingChars...)

	for strings.Contains(s, "  ") {
		s = strings.ReplaceAll(s, "  ", " ")
	}
	return strings.TrimSpace(s)
}

// The precomposed nukta letters fold to their base; dropping the bare
// nukta then covers the decomposed spellings too.
var accentReplacer = strings.NewReplacer(
	"ਸ਼", "ਸ", // ਸ਼
	"ਖ਼", "ਖ", // ਖ਼
	"ਗ਼", "ਗ", // ਗ਼
	"ਜ਼", "ਜ", // ਜ਼
	"ਫ਼", "ਫ", // ਫ਼
	"ਲ਼", "ਲ", // ਲ਼
	"਼", "", // nukta
	"ੑ", "", // udaat
	"ੵ", "", // yakash
)

// StripAccents folds the nukta letters to their base letters and drops
// bare nukta, udaat, and yakash, so accented and plain spellings
// compare equal.
func StripAccents(s string) string {
	return accentReplacer.Replace(s)
}
