// Package gurmukhi holds the character classification tables shared by the
// public packages. The tables cover the Gurmukhi Unicode block (U+0A00 to
// U+0A7F) plus the scripture punctuation marks that live outside it.
//
// All functions are safe for concurrent use.
package gurmukhi

// Code points referenced throughout the library.
const (
	Virama     = '੍' // ੍ joins a subjoined consonant
	Nukta      = '਼' // ਼ forms the persianized letters
	Udaat      = 'ੑ' // ੑ low tone mark
	Yakash     = 'ੵ' // ੵ subjoined half-yayya
	Addak      = 'ੱ' // ੱ gemination mark
	AdakBindi  = 'ਁ' // ਁ nasalization (rare)
	Bindi      = 'ਂ' // ਂ nasalization
	Tippi      = 'ੰ' // ੰ nasalization
	Visarga    = 'ਃ' // ਃ
	IkOnkar    = 'ੴ' // ੴ
	Khanda     = '☬'
	DandaLight = '।' // U+0964, line pause
	DandaHeavy = '॥' // U+0965, line ending
)

// Sant Lipi private-use code points for glyphs Unicode cannot represent.
const (
	SLHalfYayya        = '\ueeec' // half-yayya (open-left)
	SLOpenTopHalfYayya = '\ueeee'
	SLOpenTopYayya     = '\ueeef'
	SLSubscriptZero    = '\uee80' // ..SLSubscriptZero+9 for ₀..₉
)

// InBlock reports whether r lies in the Gurmukhi Unicode block.
func InBlock(r rune) bool {
	return r >= 0x0A00 && r <= 0x0A7F
}

// consonants includes the persianized (nukta) letters, which are base
// letters in their own right.
var consonants = map[rune]bool{
	'ਸ': true, 'ਹ': true, 'ਕ': true, 'ਖ': true, 'ਗ': true, 'ਘ': true,
	'ਙ': true, 'ਚ': true, 'ਛ': true, 'ਜ': true, 'ਝ': true, 'ਞ': true,
	'ਟ': true, 'ਠ': true, 'ਡ': true, 'ਢ': true, 'ਣ': true, 'ਤ': true,
	'ਥ': true, 'ਦ': true, 'ਧ': true, 'ਨ': true, 'ਪ': true, 'ਫ': true,
	'ਬ': true, 'ਭ': true, 'ਮ': true, 'ਯ': true, 'ਰ': true, 'ਲ': true,
	'ਵ': true, 'ੜ': true,
	'ਸ਼': true, 'ਖ਼': true, 'ਗ਼': true, 'ਜ਼': true, 'ਫ਼': true, 'ਲ਼': true,
}

// IsConsonant reports whether r is a Gurmukhi consonant.
func IsConsonant(r rune) bool {
	return consonants[r]
}

// independentVowels includes the bare carriers ੳ and ੲ, which appear in
// unsanitized text before composition.
var independentVowels = map[rune]bool{
	'ਅ': true, 'ਆ': true, 'ਇ': true, 'ਈ': true, 'ਉ': true, 'ਊ': true,
	'ਏ': true, 'ਐ': true, 'ਓ': true, 'ਔ': true, 'ੳ': true, 'ੲ': true,
}

// IsIndependentVowel reports whether r is an independent vowel letter.
func IsIndependentVowel(r rune) bool {
	return independentVowels[r]
}

// IsLetter reports whether r is a Gurmukhi base letter: a consonant,
// an independent vowel, or ੴ.
func IsLetter(r rune) bool {
	return consonants[r] || independentVowels[r] || r == IkOnkar
}

// vowelSigns are the dependent vowel marks, in no particular order.
var vowelSigns = map[rune]bool{
	'ਾ': true, 'ਿ': true, 'ੀ': true, 'ੁ': true, 'ੂ': true,
	'ੇ': true, 'ੈ': true, 'ੋ': true, 'ੌ': true,
}

// IsVowelSign reports whether r is a dependent vowel mark.
func IsVowelSign(r rune) bool {
	return vowelSigns[r]
}

// longVowelSigns carry two matras in prosody.
var longVowelSigns = map[rune]bool{
	'ਾ': true, 'ੀ': true, 'ੂ': true, 'ੇ': true, 'ੈ': true, 'ੋ': true, 'ੌ': true,
}

// IsLongVowelSign reports whether r is a long (heavy) vowel mark.
func IsLongVowelSign(r rune) bool {
	return longVowelSigns[r]
}

// longIndependentVowels carry two matras in prosody.
var longIndependentVowels = map[rune]bool{
	'ਆ': true, 'ਈ': true, 'ਊ': true, 'ਏ': true, 'ਐ': true, 'ਓ': true, 'ਔ': true,
}

// IsLongIndependentVowel reports whether r is a long independent vowel.
func IsLongIndependentVowel(r rune) bool {
	return longIndependentVowels[r]
}

// IsDiacritic reports whether r is any combining mark: a vowel sign, the
// nukta, the virama, or one of the tone and nasalization signs.
func IsDiacritic(r rune) bool {
	if vowelSigns[r] {
		return true
	}
	switch r {
	case Nukta, Virama, Udaat, Yakash, Addak, AdakBindi, Bindi, Tippi, Visarga:
		return true
	}
	return false
}

// IsDigit reports whether r is a Gurmukhi digit ੦..੯.
func IsDigit(r rune) bool {
	return r >= '੦' && r <= '੯'
}

// subjoinable consonants form conjuncts after the virama.
var subjoinable = map[rune]bool{
	'ਹ': true, 'ਰ': true, 'ਵ': true, 'ਟ': true, 'ਤ': true, 'ਨ': true, 'ਚ': true,
}

// IsSubjoinable reports whether r may follow the virama as a subjoined
// consonant in scripture text.
func IsSubjoinable(r rune) bool {
	return subjoinable[r]
}
