// Package translit converts Gurmukhi text between scripts: an
// ISO 15919-flavored romanization (both directions), Devanagari, and
// Shahmukhi.
//
// ToRoman and FromRoman are inverses over normalized Gurmukhi text,
// with one caveat: the virama is not written out, so true conjuncts
// (ਕ੍ਕ) and addak gemination (ਕੱਕ) romanize alike and FromRoman always
// reads the doubled form back as an addak. The Devanagari and Shahmukhi
// converters are one-way and lossy.
//
// All functions are safe for concurrent use by multiple goroutines.
package translit

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"github.com/ShabadOS/gurmukhiutils/internal/gurmukhi"
	"github.com/ShabadOS/gurmukhiutils/script"
)

// ToRoman romanizes Gurmukhi text. The inherent vowel a is written out
// (ਗੁਰ = gura), an addak doubles the following consonant (ਪੱਖ = pakkha),
// and a virama joins consonants with nothing in between (ਕ੍ਰ = kr).
// Characters outside the mapping pass through unchanged.
func ToRoman(s string) string {
	s = script.Normalize(s)

	var b strings.Builder
	b.Grow(len(s))

	pendingA := false // a consonant was written and still owes its inherent a
	addak := false

	flush := func() {
		if pendingA {
			b.WriteByte('a')
			pendingA = false
		}
	}

	for _, r := range s {
		switch {
		case r == gurmukhi.Virama:
			// The next consonant joins directly; FromRoman reads two
			// adjacent consonants as a conjunct.
			pendingA = false

		case r == gurmukhi.SLHalfYayya || r == gurmukhi.SLOpenTopHalfYayya:
			// Conjunct yayya variants join like virama + ਯ.
			b.WriteByte('y')
			pendingA = true

		case r == gurmukhi.SLOpenTopYayya:
			flush()
			b.WriteByte('y')
			pendingA = true

		case r == gurmukhi.Addak:
			flush()
			addak = true

		case r == gurmukhi.Yakash || r == gurmukhi.Udaat:
			// These ride the consonant directly, before its vowel.
			b.WriteString(romanSign[r])

		default:
			if c, ok := romanConsonant[r]; ok {
				flush()
				if addak {
					base := r
					if d, ok := deaspirate[r]; ok {
						base = d
					}
					b.WriteString(romanConsonant[base])
					addak = false
				}
				b.WriteString(c)
				pendingA = true
				continue
			}
			if v, ok := romanVowelSign[r]; ok {
				b.WriteString(v)
				pendingA = false
				continue
			}
			if v, ok := romanIndependentVowel[r]; ok {
				flush()
				b.WriteString(v)
				continue
			}
			if m, ok := romanSign[r]; ok {
				flush()
				b.WriteString(m)
				continue
			}
			if o, ok := romanOther[r]; ok {
				flush()
				b.WriteString(o)
				continue
			}
			flush()
			addak = false
			b.WriteRune(r)
		}
	}
	flush()

	return b.String()
}

// FromRoman converts romanized text back to Gurmukhi. The scan is
// greedy longest-match: "kh" parses as ਖ, never ਕ + ਹ. An a after a
// consonant is the inherent vowel; other vowels after a consonant
// become dependent signs. Two adjacent consonants become a conjunct,
// or an addak when the first is the double of the second (kkha = ੱਖ).
// Characters outside the mapping pass through unchanged.
func FromRoman(s string) string {
	// Compose combining marks so decomposed input still matches the
	// token table. Gurmukhi must not pass through NFC: the nukta
	// letters are composition exclusions and would come apart.
	if !strings.ContainsFunc(s, gurmukhi.InBlock) {
		s = norm.NFC.String(s)
	}

	out := make([]rune, 0, len(s))
	var prevCons rune

	for i := 0; i < len(s); {
		var tok *romanToken
		for k := range romanTokens {
			if strings.HasPrefix(s[i:], romanTokens[k].text) {
				tok = &romanTokens[k]
				break
			}
		}
		if tok == nil {
			r, size := utf8.DecodeRuneInString(s[i:])
			out = append(out, r)
			i += size
			prevCons = 0
			continue
		}
		i += len(tok.text)

		switch tok.kind {
		case tokenConsonant:
			doubled := prevCons != 0 &&
				(prevCons == tok.r || deaspirate[tok.r] == prevCons) &&
				len(out) > 0 && out[len(out)-1] == prevCons
			switch {
			case doubled:
				out = append(out[:len(out)-1], gurmukhi.Addak, tok.r)
			case prevCons != 0:
				out = append(out, gurmukhi.Virama, tok.r)
			default:
				out = append(out, tok.r)
			}
			prevCons = tok.r

		case tokenVowel:
			if prevCons != 0 {
				// sign == 0 is the inherent a: the consonant alone
				// already spells it.
				if tok.sign != 0 {
					out = append(out, tok.sign)
				}
			} else {
				out = append(out, tok.r)
			}
			prevCons = 0

		case tokenSign:
			out = append(out, tok.r)
			if tok.r != gurmukhi.Yakash && tok.r != gurmukhi.Udaat {
				prevCons = 0
			}

		default:
			out = append(out, tok.r)
			prevCons = 0
		}
	}

	return string(out)
}
