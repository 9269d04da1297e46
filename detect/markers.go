package detect

// markerGlyphs are code points the AnmolLipi/GurbaniAkhar fonts map to
// Gurmukhi glyphs but which never occur in ordinary Latin prose:
// contextual vowel and conjunct forms (®, Í, ü, ¨, †, œ, ˜, ´, µ),
// nasalization forms (ˆ, Ø, ƒ, W is excluded — it is a plain letter),
// the yayya variants (Î, î, ï), and the ornament and vowel-carrier
// glyphs of the ASCII mapping.
var markerGlyphs = map[rune]bool{
	'®': true, // subjoined ਰ after ਕ
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

// isMarkerGlyph reports whether r is an AnmolLipi marker glyph.
func isMarkerGlyph(r rune) bool {
	return markerGlyphs[r]
}
