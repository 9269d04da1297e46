package validate

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/ShabadOS/gurmukhiutils/internal/gurmukhi"
	"github.com/ShabadOS/gurmukhiutils/script"
)

// asciiFontGlyphs are code points the AnmolLipi/GurbaniAkhar fonts map
// to Gurmukhi glyphs. They have no meaning in Unicode Gurmukhi text;
// their presence means an ASCII-keyed fragment survived a conversion.
var asciiFontGlyphs = map[rune]bool{
	'®': true, // subjoined ਰ
	'Í': true, // subjoined ਵ
	'ˆ': true, // bindi after below-base marks
	'Ø': true, // bindi-over-bihari carrier
	'´': true, // yakash
	'µ': true, // tippi variant
	'†': true, // subjoined ਟ
	'œ': true, // subjoined ਤ
	'˜': true, // subjoined ਨ
	'ü': true, // aunkar after below-base marks
	'¨': true, // dulainkar after below-base marks
	'§': true, // subjoined ਹ + dulainkar
	'ƒ': true, // ਨੂੰ ligature
	'Î': true, // half-yayya
	'î': true, // open-top half-yayya
	'ï': true, // open-top yayya
	'Å': true, // ik onkar (left half)
	'å': true, // ik onkar (right half)
	'Ç': true, // khanda
	'Ú': true, // visarga
	'‚': true, // ornament
	'¤': true, // nukta form
	'@': true, // udaat
}

// appendMixedEncodingIssues flags ASCII font glyphs inside Unicode
// Gurmukhi text. Pure ASCII-keyed text is not flagged: without any
// Gurmukhi block runes there is nothing mixed, the whole string just
// needs script.ToUnicode.
func appendMixedEncodingIssues(issues []Issue, text string) []Issue {
	if !strings.ContainsFunc(text, gurmukhi.InBlock) {
		return issues
	}

	for i, r := range text {
		if !asciiFontGlyphs[r] {
			continue
		}
		issues = append(issues, Issue{
			Text:       string(r),
			Start:      i,
			End:        i + utf8.RuneLen(r),
			Type:       MixedEncoding,
			Severity:   Error,
			Message:    fmt.Sprintf("ASCII font glyph %q in Unicode Gurmukhi text", r),
			Suggestion: script.ToUnicode(string(r)),
		})
	}
	return issues
}

// appendDiacriticOrderIssues flags runs of combining marks that are not
// in the canonical order script.SortDiacritics produces. Visually the
// spellings are identical, so the issue is a warning: searches and
// comparisons break, readers do not notice.
func appendDiacriticOrderIssues(issues []Issue, text string) []Issue {
	runStart := -1
	prev := rune(0)

	flush := func(end int) {
		if runStart < 0 {
			return
		}
		run := text[runStart:end]
		if sorted := script.SortDiacritics(run); sorted != run {
			issues = append(issues, Issue{
				Text:       run,
				Start:      runStart,
				End:        end,
				Type:       DiacriticOrder,
				Severity:   Warning,
				Message:    "combining marks out of canonical order",
				Suggestion: sorted,
			})
		}
		runStart = -1
	}

	for i, r := range text {
		// A subjoined consonant directly after the virama belongs to
		// the same run; everything else that is not a combining mark
		// ends it.
		inRun := gurmukhi.IsDiacritic(r) ||
			(prev == gurmukhi.Virama && gurmukhi.IsSubjoinable(r))
		if inRun {
			if runStart < 0 {
				runStart = i
			}
		} else {
			flush(i)
		}
		prev = r
	}
	flush(len(text))
	return issues
}

// appendDanglingViramaIssues flags a virama with no consonant after it.
// The virama exists only to subjoin the next consonant; at the end of a
// word or before a vowel it renders as a visible artifact.
func appendDanglingViramaIssues(issues []Issue, text string) []Issue {
	for i, r := range text {
		if r != gurmukhi.Virama {
			continue
		}
		next, _ := utf8.DecodeRuneInString(text[i+utf8.RuneLen(r):])
		if gurmukhi.IsConsonant(next) {
			continue
		}
		issues = append(issues, Issue{
			Text:     string(r),
			Start:    i,
			End:      i + utf8.RuneLen(r),
			Type:     DanglingVirama,
			Severity: Warning,
			Message:  "virama not followed by a consonant",
		})
	}
	return issues
}

// vishram pause marks attach directly to the preceding word.
func isVishram(r rune) bool {
	return r == '.' || r == ',' || r == ';'
}

// appendSpacingIssues flags runs of multiple spaces, a space before a
// vishram mark, and leading or trailing whitespace. The dandas ।॥ are
// set off by spaces in scripture, so a space before them is fine.
func appendSpacingIssues(issues []Issue, text string) []Issue {
	if trimmed := strings.TrimLeft(text, " \t\r\n"); len(trimmed) < len(text) {
		n := len(text) - len(trimmed)
		issues = append(issues, Issue{
			Text:     text[:n],
			Start:    0,
			End:      n,
			Type:     Spacing,
			Severity: Info,
			Message:  "leading whitespace",
		})
	}
	if trimmed := strings.TrimRight(text, " \t\r\n"); len(trimmed) < len(text) && trimmed != "" {
		issues = append(issues, Issue{
			Text:     text[len(trimmed):],
			Start:    len(trimmed),
			End:      len(text),
			Type:     Spacing,
			Severity: Info,
			Message:  "trailing whitespace",
		})
	}

	prev := rune(0)
	prevStart := 0
	spaceRun := 0
	spaceStart := 0

	flushSpaces := func(end int) {
		if spaceRun > 1 {
			issues = append(issues, Issue{
				Text:       text[spaceStart:end],
				Start:      spaceStart,
				End:        end,
				Type:       Spacing,
				Severity:   Warning,
				Message:    "multiple consecutive spaces",
				Suggestion: " ",
			})
		}
		spaceRun = 0
	}

	for i, r := range text {
		if r == ' ' {
			if spaceRun == 0 {
				spaceStart = i
			}
			spaceRun++
		} else {
			flushSpaces(i)
		}

		if isVishram(r) && unicode.IsSpace(prev) {
			issues = append(issues, Issue{
				Text:       text[prevStart : i+utf8.RuneLen(r)],
				Start:      prevStart,
				End:        i + utf8.RuneLen(r),
				Type:       Spacing,
				Severity:   Warning,
				Message:    fmt.Sprintf("space before vishram %q", r),
				Suggestion: string(r),
			})
		}

		prev = r
		prevStart = i
	}
	flushSpaces(len(text))
	return issues
}
