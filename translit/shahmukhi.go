package translit

import (
	"strings"

	"github.com/ShabadOS/gurmukhiutils/internal/gurmukhi"
	"github.com/ShabadOS/gurmukhiutils/script"
)

// shahmukhiBase maps each Gurmukhi character to its Shahmukhi spelling.
// Aspirates use do-chashmi he; short vowels use the Arabic harakat.
var shahmukhiBase = map[rune]string{
	'ਸ': "س", 'ਹ': "ہ",
	'ਕ': "ک", 'ਖ': "کھ", 'ਗ': "گ", 'ਘ': "گھ", 'ਙ': "نگ",
	'ਚ': "چ", 'ਛ': "چھ", 'ਜ': "ج", 'ਝ': "جھ", 'ਞ': "نج",
	'ਟ': "ٹ", 'ਠ': "ٹھ", 'ਡ': "ڈ", 'ਢ': "ڈھ", 'ਣ': "ݨ",
	'ਤ': "ت", 'ਥ': "تھ", 'ਦ': "د", 'ਧ': "دھ", 'ਨ': "ن",
	'ਪ': "پ", 'ਫ': "پھ", 'ਬ': "ب", 'ਭ': "بھ", 'ਮ': "م",
	'ਯ': "ی", 'ਰ': "ر", 'ਲ': "ل", 'ਵ': "و", 'ੜ': "ڑ",
	'ਸ਼': "ش", 'ਖ਼': "خ", 'ਗ਼': "غ", 'ਜ਼': "ز", 'ਫ਼': "ف", 'ਲ਼': "ل",

	'ਅ': "ا", 'ਆ': "آ", 'ਇ': "اِ", 'ਈ': "ای", 'ਉ': "اُ",
	'ਊ': "او", 'ਏ': "اے", 'ਐ': "اَے", 'ਓ': "او", 'ਔ': "اَو",

	'ਾ': "ا", 'ਿ': "ِ", 'ੀ': "ی", 'ੁ': "ُ", 'ੂ': "و",
	'ੇ': "ے", 'ੈ': "َے", 'ੋ': "و", 'ੌ': "َو",

	gurmukhi.Tippi:     "ں",
	gurmukhi.Bindi:     "ں",
	gurmukhi.AdakBindi: "ں",
	gurmukhi.Visarga:   "ہ",
	gurmukhi.Yakash:    "ی",

	'੦': "۰", '੧': "۱", '੨': "۲", '੩': "۳", '੪': "۴",
	'੫': "۵", '੬': "۶", '੭': "۷", '੮': "۸", '੯': "۹",

	gurmukhi.DandaLight: "۔",
	gurmukhi.DandaHeavy: "۔",

	gurmukhi.SLHalfYayya:        "ی",
	gurmukhi.SLOpenTopHalfYayya: "ی",
	gurmukhi.SLOpenTopYayya:     "ی",
}

// ToShahmukhi converts Gurmukhi text to the Perso-Arabic script used
// for Punjabi. An addak becomes a shadda on the following consonant,
// the virama and udaat are dropped, and unmapped characters pass
// through. Output is logical order; shaping and direction are left to
// the rendering stack.
func ToShahmukhi(s string) string {
	s = script.Normalize(s)

	var b strings.Builder
	b.Grow(len(s))

	addak := false
	for _, r := range s {
		switch r {
		case gurmukhi.Addak:
			addak = true
		case gurmukhi.Virama, gurmukhi.Udaat, gurmukhi.Nukta:
			// Conjuncts flatten; tone and nukta have no spelling here.
		default:
			sh, ok := shahmukhiBase[r]
			if !ok {
				b.WriteRune(r)
				continue
			}
			b.WriteString(sh)
			if addak {
				addak = false
				if _, cons := romanConsonant[r]; cons {
					b.WriteString("ّ") // shadda
				}
			}
		}
	}

	return b.String()
}
