package translit

// romanConsonant maps a Gurmukhi consonant to its romanization.
var romanConsonant = map[rune]string{
	'ਸ': "s", 'ਹ': "h",
	'ਕ': "k", 'ਖ': "kh", 'ਗ': "g", 'ਘ': "gh", 'ਙ': "ṅ",
	'ਚ': "c", 'ਛ': "ch", 'ਜ': "j", 'ਝ': "jh", 'ਞ': "ñ",
	'ਟ': "ṭ", 'ਠ': "ṭh", 'ਡ': "ḍ", 'ਢ': "ḍh", 'ਣ': "ṇ",
	'ਤ': "t", 'ਥ': "th", 'ਦ': "d", 'ਧ': "dh", 'ਨ': "n",
	'ਪ': "p", 'ਫ': "ph", 'ਬ': "b", 'ਭ': "bh", 'ਮ': "m",
	'ਯ': "y", 'ਰ': "r", 'ਲ': "l", 'ਵ': "v", 'ੜ': "ṛ",
	'ਸ਼': "ś", 'ਖ਼': "ḵh", 'ਗ਼': "ġ", 'ਜ਼': "z", 'ਫ਼': "f", 'ਲ਼': "ḷ",
}

// romanIndependentVowel maps the full vowel letters.
var romanIndependentVowel = map[rune]string{
	'ਅ': "a", 'ਆ': "ā", 'ਇ': "i", 'ਈ': "ī", 'ਉ': "u", 'ਊ': "ū",
	'ਏ': "ē", 'ਐ': "ai", 'ਓ': "ō", 'ਔ': "au",
}

// romanVowelSign maps the dependent vowel marks. The inherent vowel a is
// emitted when a consonant carries no sign.
var romanVowelSign = map[rune]string{
	'ਾ': "ā", 'ਿ': "i", 'ੀ': "ī", 'ੁ': "u", 'ੂ': "ū",
	'ੇ': "ē", 'ੈ': "ai", 'ੋ': "ō", 'ੌ': "au",
}

// romanSign maps the nasalization and tone marks. Yakash rides the
// consonant directly (ਖੵ = khʸ); the others follow the syllable vowel.
var romanSign = map[rune]string{
	'ੰ': "ṁ",  // tippi
	'ਂ': "ṃ",  // bindi
	'ਁ': "m̐", // adak bindi, m with candrabindu
	'ਃ': "ḥ",  // visarga
	'ੵ': "ʸ",  // yakash
	'ੑ': "ʼ",  // udaat
}

// romanOther covers digits, scripture symbols, and pauses. Dandas map to
// pipes the way corpus tooling writes them.
var romanOther = map[rune]string{
	'੦': "0", '੧': "1", '੨': "2", '੩': "3", '੪': "4",
	'੫': "5", '੬': "6", '੭': "7", '੮': "8", '੯': "9",
	'ੴ': "ik ōaṅkār",
	'।': "|",
	'॥': "||",
}

// deaspirate gives the letter that doubles under an addak. Aspirated
// stops geminate with their unaspirated counterpart (ਪੱਖ = pakkha).
var deaspirate = map[rune]rune{
	'ਖ': 'ਕ', 'ਘ': 'ਗ', 'ਛ': 'ਚ', 'ਝ': 'ਜ', 'ਠ': 'ਟ',
	'ਢ': 'ਡ', 'ਥ': 'ਤ', 'ਧ': 'ਦ', 'ਫ': 'ਪ', 'ਭ': 'ਬ',
}

// romanToken is one parse unit for FromRoman.
type romanToken struct {
	text string
	kind tokenKind
	r    rune // target rune, or the independent vowel letter
	sign rune // dependent form for vowels, 0 for the inherent a
}

type tokenKind int

const (
	tokenConsonant tokenKind = iota
	tokenVowel
	tokenSign
	tokenOther
)

// romanTokens lists every parse unit, longest first, so a greedy scan
// always takes the longest match ("kh" before "k", "ai" before "a").
var romanTokens = buildRomanTokens()

func buildRomanTokens() []romanToken {
	var toks []romanToken

	for r, s := range romanConsonant {
		toks = append(toks, romanToken{text: s, kind: tokenConsonant, r: r})
	}

	// Vowels carry both forms: FromRoman picks the dependent sign after
	// a consonant and the independent letter elsewhere.
	vowelPairs := []struct {
		text        string
		independent rune
		sign        rune
	}{
		{"a", 'ਅ', 0}, // inherent after a consonant
		{"ā", 'ਆ', 'ਾ'},
		{"i", 'ਇ', 'ਿ'},
		{"ī", 'ਈ', 'ੀ'},
		{"u", 'ਉ', 'ੁ'},
		{"ū", 'ਊ', 'ੂ'},
		{"ē", 'ਏ', 'ੇ'},
		{"ai", 'ਐ', 'ੈ'},
		{"ō", 'ਓ', 'ੋ'},
		{"au", 'ਔ', 'ੌ'},
	}
	for _, v := range vowelPairs {
		toks = append(toks, romanToken{text: v.text, kind: tokenVowel, r: v.independent, sign: v.sign})
	}

	for r, s := range romanSign {
		toks = append(toks, romanToken{text: s, kind: tokenSign, r: r})
	}

	others := []struct {
		text string
		r    rune
	}{
		{"ik ōaṅkār", 'ੴ'},
		{"||", '॥'},
		{"|", '।'},
		{"0", '੦'}, {"1", '੧'}, {"2", '੨'}, {"3", '੩'}, {"4", '੪'},
		{"5", '੫'}, {"6", '੬'}, {"7", '੭'}, {"8", '੮'}, {"9", '੯'},
	}
	for _, o := range others {
		toks = append(toks, romanToken{text: o.text, kind: tokenOther, r: o.r})
	}

	// Longest first; ties keep insertion order.
	for i := 1; i < len(toks); i++ {
		for j := i; j > 0 && len(toks[j].text) > len(toks[j-1].text); j-- {
			toks[j], toks[j-1] = toks[j-1], toks[j]
		}
	}
	return toks
}
