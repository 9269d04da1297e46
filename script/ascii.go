package script

import (
	"strings"

	"github.com/ShabadOS/gurmukhiutils/internal/gurmukhi"
)

// asciiBase maps a standalone Gurmukhi letter, digit, or symbol to its
// AnmolLipi/GurbaniAkhar keystroke.
var asciiBase = map[rune]string{
	'ੳ': "a", 'ਅ': "A", 'ੲ': "e",
	'ਸ': "s", 'ਹ': "h",
	'ਕ': "k", 'ਖ': "K", 'ਗ': "g", 'ਘ': "G", 'ਙ': "|",
	'ਚ': "c", 'ਛ': "C", 'ਜ': "j", 'ਝ': "J", 'ਞ': `\`,
	'ਟ': "t", 'ਠ': "T", 'ਡ': "f", 'ਢ': "F", 'ਣ': "x",
	'ਤ': "q", 'ਥ': "Q", 'ਦ': "d", 'ਧ': "D", 'ਨ': "n",
	'ਪ': "p", 'ਫ': "P", 'ਬ': "b", 'ਭ': "B", 'ਮ': "m",
	'ਯ': "X", 'ਰ': "r", 'ਲ': "l", 'ਵ': "v", 'ੜ': "V",
	'ਸ਼': "S", 'ਖ਼': "^", 'ਗ਼': "Z", 'ਜ਼': "z", 'ਫ਼': "&", 'ਲ਼': "L",
	'ਓ': "E",
	'ੴ': "<>", '☬': "Ç", '।': "[", '॥': "]", '❁': "‚",
	'੦': "0", '੧': "1", '੨': "2", '੩': "3", '੪': "4",
	'੫': "5", '੬': "6", '੭': "7", '੮': "8", '੯': "9",

	gurmukhi.SLOpenTopYayya:      "ï",
	gurmukhi.SLSubscriptZero:     "₀",
	gurmukhi.SLSubscriptZero + 1: "₁",
	gurmukhi.SLSubscriptZero + 2: "₂",
	gurmukhi.SLSubscriptZero + 3: "₃",
	gurmukhi.SLSubscriptZero + 4: "₄",
	gurmukhi.SLSubscriptZero + 5: "₅",
	gurmukhi.SLSubscriptZero + 6: "₆",
	gurmukhi.SLSubscriptZero + 7: "₇",
	gurmukhi.SLSubscriptZero + 8: "₈",
	gurmukhi.SLSubscriptZero + 9: "₉",
}

// asciiMark maps a combining mark to its context-free keystroke. The
// contextual variants (ü ¨ ˆ µ ® W §) are resolved per cluster below.
var asciiMark = map[rune]string{
	'ਿ': "i", 'ੀ': "I", 'ੁ': "u", 'ੂ': "U",
	'ੇ': "y", 'ੈ': "Y", 'ੋ': "o", 'ੌ': "O", 'ਾ': "w",
	'ੰ': "M", 'ਂ': "N", 'ੱ': "`", '਼': "æ",
	'ੑ': "@", 'ੵ': "´", 'ਃ': "Ú",

	gurmukhi.SLHalfYayya:        "Î",
	gurmukhi.SLOpenTopHalfYayya: "î",
}

// subjoinGlyph maps a subjoined consonant to its keystroke. The rakar
// variant ® after ਕ is resolved in writeCluster.
var subjoinGlyph = map[rune]string{
	'ਹ': "H", 'ਰ': "R", 'ਵ': "Í", 'ਟ': "†", 'ਤ': "œ", 'ਨ': "˜", 'ਚ': "ç",
}

// brokenTop marks the letters the fonts draw with a gap in the top line.
// Corpus spellings place a bindi following a bihari over these letters
// (ˆ) and bridge the gap with the topline extender (Ø) instead of
// writing the bindi after the bihari (IN).
var brokenTop = map[rune]bool{
	'ਖ': true, 'ਘ': true, 'ਙ': true, 'ਛ': true, 'ਝ': true,
	'ਣ': true, 'ਥ': true, 'ਧ': true, 'ਭ': true,
}

// decomposePairs splits the composed vowel letters into their carrier +
// sign keystrokes, and the adak bindi into addak + bindi. ਓ is absent:
// the fonts give it a keystroke of its own (E).
var decomposePairs = []string{
	"ਆ", "ਅਾ",
	"ਇ", "ੲਿ",
	"ਈ", "ੲੀ",
	"ਉ", "ੳੁ",
	"ਊ", "ੳੂ",
	"ਏ", "ੲੇ",
	"ਐ", "ਅੈ",
	"ਔ", "ਅੌ",
	"ਁ", "ੱਂ",
}

var decomposeReplacer = strings.NewReplacer(decomposePairs...)

// cluster units: a subjoined pair is one unit.
type asciiUnit struct {
	r       rune
	subjoin bool
}

// ToASCII converts Unicode Gurmukhi (Unicode Consortium or Sant Lipi) to
// the AnmolLipi/GurbaniAkhar ASCII font encoding. Characters with no
// mapping pass through unchanged. Inverse of ToUnicodeStandard with
// SantLipi on canonical corpus spellings.
func ToASCII(s string) string {
	if s == "" {
		return ""
	}

	out := strings.ReplaceAll(s, "੍ਯ", string(gurmukhi.SLHalfYayya))
	out = Normalize(out)
	out = strings.ReplaceAll(out, "ਨੂੰ", "ƒ")
	out = decomposeReplacer.Replace(out)

	runes := []rune(out)
	var b strings.Builder
	b.Grow(len(out))
	for i := 0; i < len(runes); {
		i = writeCluster(&b, runes, i)
	}

	// The fonts ligate a subjoined haha carrying a dulainkar.
	return strings.ReplaceAll(b.String(), "H¨", "§")
}

// isMarkRune reports whether r attaches to the preceding base.
func isMarkRune(r rune) bool {
	return gurmukhi.IsDiacritic(r) ||
		r == gurmukhi.SLHalfYayya || r == gurmukhi.SLOpenTopHalfYayya
}

// writeCluster emits the keystrokes for the cluster starting at runes[i]
// and returns the index of the next cluster.
func writeCluster(b *strings.Builder, runes []rune, i int) int {
	base := runes[i]
	i++

	var units []asciiUnit
	for i < len(runes) {
		r := runes[i]
		if r == gurmukhi.Virama && i+1 < len(runes) && gurmukhi.IsSubjoinable(runes[i+1]) {
			units = append(units, asciiUnit{r: runes[i+1], subjoin: true})
			i += 2
			continue
		}
		if !isMarkRune(r) {
			break
		}
		units = append(units, asciiUnit{r: r})
		i++
	}

	var hasSihari, hasBelow, hasYakash, hasAunkar bool
	for _, u := range units {
		switch {
		case u.subjoin:
			hasBelow = true
		case u.r == 'ਿ':
			hasSihari = true
		case u.r == gurmukhi.Udaat,
			u.r == gurmukhi.SLHalfYayya, u.r == gurmukhi.SLOpenTopHalfYayya:
			hasBelow = true
		case u.r == gurmukhi.Yakash:
			hasBelow = true
			hasYakash = true
		case u.r == 'ੁ', u.r == 'ੂ':
			hasAunkar = true
		}
	}

	// The fonts store the sihari keystroke before the cluster.
	if hasSihari {
		b.WriteString("i")
	}

	if g, ok := asciiBase[base]; ok {
		b.WriteString(g)
	} else if g, ok := asciiMark[base]; ok {
		// Orphan mark with no base letter.
		b.WriteString(g)
	} else {
		b.WriteRune(base)
	}

	for j := 0; j < len(units); j++ {
		u := units[j]

		if u.subjoin {
			if u.r == 'ਰ' && base == 'ਕ' {
				b.WriteString("®")
			} else {
				b.WriteString(subjoinGlyph[u.r])
			}
			continue
		}

		next := rune(0)
		if j+1 < len(units) && !units[j+1].subjoin {
			next = units[j+1].r
		}

		switch u.r {
		case 'ਿ':
			// Already written before the base.
		case 'ੁ':
			if hasBelow {
				b.WriteString("ü")
			} else {
				b.WriteString("u")
			}
		case 'ੂ':
			if hasBelow {
				b.WriteString("¨")
			} else {
				b.WriteString("U")
			}
		case 'ੀ':
			switch {
			case next == gurmukhi.Tippi:
				b.WriteString("µØI")
				j++
			case next == gurmukhi.Bindi && brokenTop[base]:
				b.WriteString("ˆØI")
				j++
			default:
				b.WriteString("I")
			}
		case 'ਾ':
			if next == gurmukhi.Bindi {
				b.WriteString("W")
				j++
			} else {
				b.WriteString("w")
			}
		case gurmukhi.Tippi:
			if hasYakash && hasSihari {
				b.WriteString("µ")
			} else {
				b.WriteString("M")
			}
		case gurmukhi.Bindi:
			if hasAunkar {
				b.WriteString("ˆ")
			} else {
				b.WriteString("N")
			}
		default:
			if g, ok := asciiMark[u.r]; ok {
				b.WriteString(g)
			} else {
				b.WriteRune(u.r)
			}
		}
	}

	return i
}
