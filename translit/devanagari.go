package translit

import (
	"strings"

	"github.com/ShabadOS/gurmukhiutils/internal/gurmukhi"
	"github.com/ShabadOS/gurmukhiutils/script"
)

// The Gurmukhi and Devanagari blocks share their layout: most
// characters map by subtracting 0x100. devanagariException lists the
// positions where the blocks diverge.
const devanagariOffset = 0x100

var devanagariException = map[rune]string{
	gurmukhi.IkOnkar: "ॐ",
	gurmukhi.Tippi:   "ं", // anusvara; U+0970 is an abbreviation sign
	gurmukhi.Yakash:  "्य",
	'ੲ':              "इ",
	'ੳ':              "उ",

	gurmukhi.SLHalfYayya:        "्य",
	gurmukhi.SLOpenTopHalfYayya: "्य",
	gurmukhi.SLOpenTopYayya:     "य",
}

// ToDevanagari converts Gurmukhi text to Devanagari. An addak becomes
// explicit gemination (ਪੱਖ = पक्ख). The dandas are shared between the
// two scripts and pass through; so does anything outside the Gurmukhi
// block.
func ToDevanagari(s string) string {
	s = script.Normalize(s)

	var b strings.Builder
	b.Grow(len(s))

	addak := false
	for _, r := range s {
		if r == gurmukhi.Addak {
			addak = true
			continue
		}
		if addak {
			addak = false
			if _, ok := romanConsonant[r]; ok {
				base := r
				if d, ok := deaspirate[r]; ok {
					base = d
				}
				b.WriteString(devanagariRune(base))
				b.WriteRune(gurmukhi.Virama - devanagariOffset)
			}
		}
		b.WriteString(devanagariRune(r))
	}

	return b.String()
}

func devanagariRune(r rune) string {
	if s, ok := devanagariException[r]; ok {
		return s
	}
	if gurmukhi.InBlock(r) {
		return string(r - devanagariOffset)
	}
	return string(r)
}
