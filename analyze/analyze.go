// Package analyze extracts search and prosody features from Gurmukhi
// text: first-letter acronyms for line matching and syllable weights
// for meter.
//
// All functions are safe for concurrent use by multiple goroutines.
package analyze

import (
	"strings"
	"unicode"

	"github.com/ShabadOS/gurmukhiutils/internal/gurmukhi"
)

// FirstLetters returns the first letter of each whitespace-separated
// word, concatenated. Leading punctuation is skipped, and so is a
// prefixed sihari in both spellings: the ASCII fonts write it before
// the base letter (iBRMg), and the dependent sign ਿ never counts as a
// letter. Words with no letter at all contribute nothing.
//
//	FirstLetters("ਗੁਰੂ ਨਾਨਕ ਦੇਵ") == "ਗਨਦ"
//	FirstLetters("ijs no ik®pw krih") == "jnkk"
func FirstLetters(line string) string {
	var b strings.Builder
	for _, word := range strings.Fields(line) {
		if r := firstLetter(word); r != 0 {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func firstLetter(word string) rune {
	runes := []rune(word)
	for i, r := range runes {
		if r == 'i' && i+1 < len(runes) && unicode.IsLetter(runes[i+1]) {
			continue // ASCII sihari, written before its base
		}
		if gurmukhi.IsDiacritic(r) {
			continue
		}
		if unicode.IsLetter(r) || r == gurmukhi.IkOnkar {
			return r
		}
	}
	return 0
}

// SyllabicSymbols marks each syllable of Gurmukhi text: "." for a
// light syllable (laghu, one matra) and "S" for a heavy one (guru,
// two matras). A syllable is heavy when it carries a long vowel, a
// nasalization sign, or gemination by a following addak. Subjoined
// consonants extend the preceding syllable. Whitespace comes through
// as single spaces; everything else is ignored.
//
//	SyllabicSymbols("ਗੁਰੂ") == ".S"
func SyllabicSymbols(s string) string {
	var b strings.Builder
	lastSpace := true

	for _, syl := range syllables(s) {
		if syl.space {
			if !lastSpace {
				b.WriteByte(' ')
				lastSpace = true
			}
			continue
		}
		if syl.heavy {
			b.WriteByte('S')
		} else {
			b.WriteByte('.')
		}
		lastSpace = false
	}

	return strings.TrimRight(b.String(), " ")
}

// CountSyllables returns the total matra count of s: one per light
// syllable, two per heavy.
func CountSyllables(s string) int {
	n := 0
	for _, syl := range syllables(s) {
		switch {
		case syl.space:
		case syl.heavy:
			n += 2
		default:
			n++
		}
	}
	return n
}

type syllable struct {
	heavy bool
	space bool
}

// syllables scans normalized or raw Gurmukhi. Each base letter opens a
// syllable unless it is subjoined by a virama; marks attach to the
// open syllable.
func syllables(s string) []syllable {
	var out []syllable
	open := -1 // index into out of the syllable still collecting marks
	subjoin := false

	for _, r := range s {
		switch {
		case unicode.IsSpace(r):
			out = append(out, syllable{space: true})
			open = -1

		case r == gurmukhi.Virama:
			subjoin = true

		case gurmukhi.IsConsonant(r) || gurmukhi.IsIndependentVowel(r):
			if subjoin && open >= 0 {
				subjoin = false
				continue // conjunct, stays in the open syllable
			}
			subjoin = false
			heavy := gurmukhi.IsLongIndependentVowel(r)
			out = append(out, syllable{heavy: heavy})
			open = len(out) - 1

		case open >= 0 && gurmukhi.IsLongVowelSign(r):
			out[open].heavy = true

		case open >= 0 && (r == gurmukhi.Tippi || r == gurmukhi.Bindi || r == gurmukhi.AdakBindi):
			out[open].heavy = true

		case open >= 0 && r == gurmukhi.Addak:
			// Gemination closes the previous syllable heavy.
			out[open].heavy = true
		}
	}

	return out
}
