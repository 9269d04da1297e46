package script

import "strings"

// asciiToUnicodePairs maps the AnmolLipi/GurbaniAkhar and GurbaniLipi font
// encodings (by Kulbir S. Thind, MD) to Unicode Gurmukhi. Order matters:
// multi-character keys must precede their prefixes, and the Replacer picks
// the first pattern that matches at a position.
var asciiToUnicodePairs = []string{
	"a", "ੳ",
	"b", "ਬ",
	"c", "ਚ",
	"d", "ਦ",
	"e", "ੲ",
	"f", "ਡ",
	"g", "ਗ",
	"h", "ਹ",
	"i", "ਿ",
	"j", "ਜ",
	"k", "ਕ",
	"l", "ਲ",
	"m", "ਮ",
	"n", "ਨ",
	"o", "ੋ",
	"p", "ਪ",
	"q", "ਤ",
	"r", "ਰ",
	"s", "ਸ",
	"t", "ਟ",
	"u", "ੁ",
	"v", "ਵ",
	"w", "ਾ",
	"x", "ਣ",
	"y", "ੇ",
	"z", "ਜ਼",
	"A", "ਅ",
	"B", "ਭ",
	"C", "ਛ",
	"D", "ਧ",
	"E", "ਓ",
	"F", "ਢ",
	"G", "ਘ",
	"H", "੍ਹ",
	"I", "ੀ",
	"J", "ਝ",
	"K", "ਖ",
	"L", "ਲ਼",
	"M", "ੰ",
	"N", "ਂ",
	"O", "ੌ",
	"P", "ਫ",
	"Q", "ਥ",
	"R", "੍ਰ",
	"S", "ਸ਼",
	"T", "ਠ",
	"U", "ੂ",
	"V", "ੜ",
	"W", "ਾਂ",
	"X", "ਯ",
	"Y", "ੈ",
	"Z", "ਗ਼",
	"0", "੦",
	"1", "੧",
	"2", "੨",
	"3", "੩",
	"4", "੪",
	"5", "੫",
	"6", "੬",
	"7", "੭",
	"8", "੮",
	"9", "੯",
	"[", "।",
	"]", "॥",
	"\\", "ਞ",
	"|", "ਙ",
	"`", "ੱ",
	"~", "ੱ",
	"@", "ੑ",
	"^", "ਖ਼",
	"&", "ਫ਼",
	"†", "੍ਟ", // dagger symbol
	"ü", "ੁ", // u-diaeresis letter
	"®", "੍ਰ", // registered symbol
	"´", "ੵ", // acute accent (´)
	"¨", "ੂ", // diaeresis accent (¨)
	"µ", "ੰ", // mu letter
	"æ", "਼",
	"¡", "ੴ", // inverted exclamation (¡)
	"ƒ", "ਨੂੰ", // florin symbol
	"œ", "੍ਤ",
	"Í", "੍ਵ", // capital i-acute letter
	"Î", "੍ਯ", // capital i-circumflex letter
	"Ï", "ੵ", // capital i-diaeresis letter
	"Ò", "॥", // capital o-grave letter
	"Ú", "ਃ", // capital u-acute letter
	"ˆ", "ਂ", // circumflex accent (ˆ)
	"˜", "੍ਨ", // small tilde (˜)

	"<>", "ੴ", // AnmolLipi/GurbaniAkhar variant
	"<", "ੴ", // GurbaniLipi variant
	">", "☬", // GurbaniLipi variant

	"Åå", "ੴ", // AnmolLipi/GurbaniAkhar variant
	"Å", "ੴ", // GurbaniLipi variant
	"å", "ੴ", // GurbaniLipi variant

	// AnmolLipi/GurbaniAkhar mappings:
	"§", "੍ਹੂ", // section symbol
	"¤", "ੱ", // currency symbol

	// GurbaniLipi mappings:
	"ç", "੍ਚ", // c-cedilla letter

	// AnmolLipi/GurbaniAkhar overriding GurbaniLipi mapping:
	"Ç", "☬", // khanda instead of california state symbol

	// Miscellaneous:
	"‚", "❁", // single low-9 quotation (‚) mark

	// Nullify:
	// Æ is either the 2nd portion of ੴ or a symbol of USA; the ੴ
	// renders correctly from the rules above.
	"Æ", "",
	"Ø", "", // topline / shirorekha (शिरोरेखा) extender
	"ÿ", "", // author Kulbir S Thind's stamp
	"Œ", "", // box drawing left flower
	"‰", "", // box drawing right flower
	"Ó", "", // box drawing top flower
	"Ô", "", // box drawing bottom flower
}

var asciiReplacer = strings.NewReplacer(asciiToUnicodePairs...)

// santLipiPairs maps to the Sant Lipi private-use points
// (OpenGurbaniAkhar by Sarabveer Singh, GurbaniNow).
var santLipiPairs = []string{
	"Î", "\ueeec", // capital i-circumflex letter, half-yayya
	"੍ਯ", "\ueeec", // unicode half-yayya
	"î", "\ueeee", // i-circumflex letter, open-top half-yayya
	"ï", "\ueeef", // i-diaeresis letter, open-top full yayya
	"₀", "\uee80", // subscript 0 (₀)
	"₁", "\uee81", // subscript 1 (₁)
	"₂", "\uee82", // subscript 2 (₂)
	"₃", "\uee83", // subscript 3 (₃)
	"₄", "\uee84", // subscript 4 (₄)
	"₅", "\uee85", // subscript 5 (₅)
	"₆", "\uee86", // subscript 6 (₆)
	"₇", "\uee87", // subscript 7 (₇)
	"₈", "\uee88", // subscript 8 (₈)
	"₉", "\uee89", // subscript 9 (₉)
}

var santLipiReplacer = strings.NewReplacer(santLipiPairs...)

// compliantPairs maps Sant Lipi private-use points back to Unicode
// Consortium compliant Gurmukhi.
var compliantPairs = []string{
	"\ueeec", "੍ਯ",
	"\ueeee", "੍ਯ",
	"\ueeef", "ਯ",
	"\uee80", "₀",
	"\uee81", "₁",
	"\uee82", "₂",
	"\uee83", "₃",
	"\uee84", "₄",
	"\uee85", "₅",
	"\uee86", "₆",
	"\uee87", "₇",
	"\uee88", "₈",
	"\uee89", "₉",
}

var compliantReplacer = strings.NewReplacer(compliantPairs...)

// sanitizePairs replaces constructed characters with their single
// code point representations.
var sanitizePairs = []string{
	"ੳੋ", "ਓ", // ੳ + ੋ = ਓ
	"ਅਾ", "ਆ", // ਅ + ਾ = ਆ
	"ੲਿ", "ਇ", // ਇ
	"ੲੀ", "ਈ", // ਈ
	"ੳੁ", "ਉ", // ਉ
	"ੳੂ", "ਊ", // ਊ
	"ੲੇ", "ਏ", // ਏ
	"ਅੈ", "ਐ", // ਐ
	"ਅੌ", "ਔ", // ਔ
	"ਲ਼", "ਲ਼", // ਲ਼
	"ਸ਼", "ਸ਼", // ਸ਼
	"ਖ਼਼", "ਖ਼", // ਖ਼ with redundant nukta
	"ਗ਼਼", "ਗ਼", // ਗ਼ with redundant nukta
	"ਜ਼਼", "ਜ਼", // ਜ਼ with redundant nukta
	"ਫ਼਼", "ਫ਼", // ਫ਼ with redundant nukta
	"ੱਂ", "ਁ", // adak bindi (kept for Unicode block parity)
}

var sanitizeReplacer = strings.NewReplacer(sanitizePairs...)
