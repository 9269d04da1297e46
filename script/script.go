// Package script converts Gurmukhi text between ASCII font encodings and
// Unicode, and normalizes Unicode Gurmukhi to a canonical form.
//
// The ASCII encodings covered are the AnmolLipi/GurbaniAkhar and GurbaniLipi
// fonts (by Kulbir S. Thind, MD), which predate Unicode Gurmukhi and are
// still how most scripture corpora are stored. The Sant Lipi standard
// extends Unicode Consortium Gurmukhi with private-use code points for
// glyph distinctions Unicode cannot represent (half-yayya variants and
// subscript numerals).
//
// All functions are safe for concurrent use by multiple goroutines.
//
// Known limitations:
//   - ASCII glyphs with no Gurmukhi meaning (box-drawing flowers, the
//     topline extender Ø) are removed, not preserved.
//   - Bindi over bihari has two legacy ASCII spellings (IN and ˆØI);
//     ToUnicode accepts both, ToASCII always emits IN.
package script

import (
	"regexp"
	"sort"
	"strings"
)

// Standard selects the target encoding standard for Unicode output.
type Standard int

const (
	// UnicodeConsortium is standard Unicode Gurmukhi. Glyphs Unicode
	// cannot represent collapse to their nearest compliant form.
	UnicodeConsortium Standard = iota

	// SantLipi keeps the Sant Lipi private-use code points for
	// half-yayya variants and subscript numerals.
	SantLipi
)

var standardNames = [...]string{"Unicode Consortium", "Sant Lipi"}

func (st Standard) String() string {
	if st < 0 || int(st) >= len(standardNames) {
		return "Unknown"
	}
	return standardNames[st]
}

// siharePattern moves the ASCII sihari, which the fonts store before the
// letter it attaches to, after that letter so the replacement tables see
// it in logical order.
var siharePattern = regexp.MustCompile(`i([a-zA-Z\\|^&Îîï])`)

// halfYayyaPattern finds a subjoined yayya carrying its own diacritics.
// Unicode Consortium text renders that as a full yayya.
var halfYayyaPattern = regexp.MustCompile(`(੍ਯ)([਼੍ੵਿੇੈੋੌੁੂਾੀਁੱਂੰਃ]+)`)

// ToUnicode converts ASCII font-encoded Gurmukhi to Unicode Consortium
// standard Unicode Gurmukhi. Characters with no mapping pass through
// unchanged.
func ToUnicode(s string) string {
	return ToUnicodeStandard(s, UnicodeConsortium)
}

// ToUnicodeStandard converts ASCII font-encoded Gurmukhi to Unicode
// Gurmukhi in the given standard. The output is normalized; converting
// already-Unicode text is a no-op beyond normalization.
func ToUnicodeStandard(s string, std Standard) string {
	if s == "" {
		return ""
	}

	out := siharePattern.ReplaceAllString(s, "${1}i")
	out = asciiReplacer.Replace(out)
	out = santLipiReplacer.Replace(out)
	out = Normalize(out)

	if std == UnicodeConsortium {
		out = compliantReplacer.Replace(out)
		out = halfYayyaPattern.ReplaceAllString(out, "ਯ$2")
	}

	return out
}

// Normalize reorders diacritics to canonical order and composes
// constructed characters into their single code points. Idempotent.
func Normalize(s string) string {
	return SanitizeUnicode(SortDiacritics(s))
}

// diacriticRunPattern matches a run of combining marks around at most one
// subjoined consonant pair. Every position matches (all groups are
// optional); runs shorter than two runes are left alone.
var diacriticRunPattern = regexp.MustCompile(
	`([਼ੑੵਿੇੈੋੌੁੂਾੀਁੱਂੰਃ]*)(੍[ਹਰਵਟਤਨਚ])?([਼ੑੵਿੇੈੋੌੁੂਾੀਁੱਂੰਃ]*)`,
)

// diacriticOrder is the canonical mark order: base-letter modifiers, the
// subjoined pair, vowel signs, then the nasalization and tone signs. The
// virama sits immediately before the subjoinable letters so a ੍X pair
// stays adjacent under a stable sort.
const diacriticOrder = "਼ੑੵ" + "੍" + "ਹਰਵਟਤਨਚ" + "ਿੇੈੋੌੁੂਾੀ" + "ਁੱਂੰਃ"

// SortDiacritics reorders each run of combining marks into canonical
// order, so that visually identical spellings compare equal.
func SortDiacritics(s string) string {
	return diacriticRunPattern.ReplaceAllStringFunc(s, func(run string) string {
		marks := []rune(run)
		if len(marks) < 2 {
			return run
		}
		sort.SliceStable(marks, func(i, j int) bool {
			return strings.IndexRune(diacriticOrder, marks[i]) <
				strings.IndexRune(diacriticOrder, marks[j])
		})
		return string(marks)
	})
}

// SanitizeUnicode composes constructed characters (a vowel carrier plus a
// vowel sign, or a letter plus nukta) into their single code point forms.
func SanitizeUnicode(s string) string {
	return sanitizeReplacer.Replace(s)
}
