// Package detect identifies the writing system of input text.
//
// Three scripts are distinguished: Unicode Gurmukhi, ASCII Gurmukhi
// (text keyed for the AnmolLipi/GurbaniAkhar font family), and plain
// Latin. ASCII Gurmukhi looks like Latin to a code-point scan, so
// detection leans on the font family's marker glyphs (®, Ø, ü, ƒ, †, …)
// and its bracket dandas ([1], ]2]).
//
// Two API layers are provided:
//
//   - Structured: Detect returns the best Result with script and
//     confidence. DetectAll returns all three scripts ranked.
//   - Convenience: IsGurmukhi reports whether letter runes are mostly
//     Gurmukhi.
//
// Input longer than 1 MiB is silently truncated (rune-safe).
//
// All functions are safe for concurrent use by multiple goroutines.
package detect

import (
	"cmp"
	"encoding/json"
	"fmt"
	"slices"
	"unicode"
	"unicode/utf8"

	"github.com/ShabadOS/gurmukhiutils/internal/gurmukhi"
)

// Script identifies a writing system.
type Script int

const (
	ScriptUnknown       Script = iota // zero value, no detection performed
	ScriptGurmukhi                    // Unicode Gurmukhi (ISO 15924 Guru)
	ScriptLatin                       // plain Latin text
	ScriptASCIIGurmukhi               // Gurmukhi keyed for the AnmolLipi fonts
)

// scriptNames maps Script values to their string names.
var scriptNames = [...]string{
	ScriptUnknown:       "Unknown",
	ScriptGurmukhi:      "Gurmukhi",
	ScriptLatin:         "Latin",
	ScriptASCIIGurmukhi: "ASCIIGurmukhi",
}

// scriptFromName maps string names back to Script values.
var scriptFromName = map[string]Script{
	"Unknown":       ScriptUnknown,
	"Gurmukhi":      ScriptGurmukhi,
	"Latin":         ScriptLatin,
	"ASCIIGurmukhi": ScriptASCIIGurmukhi,
}

// String returns the name of the script.
func (s Script) String() string {
	if int(s) >= 0 && int(s) < len(scriptNames) {
		return scriptNames[s]
	}
	return fmt.Sprintf("Script(%d)", int(s))
}

// MarshalJSON encodes the script as a JSON string (e.g. "Gurmukhi").
func (s Script) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalJSON decodes a JSON string (e.g. "Gurmukhi") into a Script.
func (s *Script) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	sc, ok := scriptFromName[str]
	if !ok {
		return fmt.Errorf("detect: unknown script: %q", str)
	}
	*s = sc
	return nil
}

// Result holds the outcome of a script detection.
//
// Confidence is a sum-normalized score in [0.0, 1.0]. The three script
// scores are divided by their total, so Confidence reflects the
// relative strength of the detection within this input, not an
// absolute probability.
type Result struct {
	Script     Script  `json:"script"`
	Confidence float64 `json:"confidence"`
}

const (
	maxInputBytes = 1 << 20 // 1 MiB — inputs longer than this are truncated
	minLetters    = 2       // minimum letter count for meaningful detection
)

// Scoring weights.
const (
	// markerBoost is the per-glyph score for AnmolLipi marker glyphs,
	// which never appear in ordinary Latin prose.
	markerBoost = 2.0

	// bracketBoost is the per-occurrence score for bracket dandas.
	// Brackets appear in ordinary text too, so they count for less.
	bracketBoost = 0.25

	// latinAsciiDampener suppresses the Latin score once marker glyphs
	// are present: the letters then spell Gurmukhi, not English.
	latinAsciiDampener = 0.05
)

// Detect identifies the most likely script of s.
// Returns the zero Result when detection is not possible (empty input
// or too few letters).
func Detect(s string) Result {
	results := DetectAll(s)
	if len(results) == 0 {
		return Result{}
	}
	return results[0]
}

// IsGurmukhi reports whether the majority of letter runes in s lie in
// the Gurmukhi Unicode block.
func IsGurmukhi(s string) bool {
	var total, gurmukhiCount int
	for _, r := range s {
		if !unicode.IsLetter(r) {
			continue
		}
		total++
		if gurmukhi.InBlock(r) {
			gurmukhiCount++
		}
	}
	return total > 0 && gurmukhiCount*2 > total
}

// DetectAll returns all three supported scripts ranked by descending
// confidence, or nil when detection is not possible.
func DetectAll(s string) []Result {
	if s == "" {
		return nil
	}

	// Truncate to maxInputBytes rune-safely.
	if len(s) > maxInputBytes {
		pos := maxInputBytes
		for pos > 0 && !utf8.RuneStart(s[pos]) {
			pos--
		}
		s = s[:pos]
	}

	// Single-pass character classification.
	var (
		totalLetters    int
		gurmukhiLetters int
		asciiLetters    int
		markerCount     int
		bracketCount    int
	)

	for _, r := range s {
		if isMarkerGlyph(r) {
			markerCount++
		}
		if r == '[' || r == ']' {
			bracketCount++
		}
		if !unicode.IsLetter(r) {
			continue
		}
		totalLetters++
		if gurmukhi.InBlock(r) {
			gurmukhiLetters++
		}
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
			asciiLetters++
		}
	}

	if totalLetters < minLetters {
		return nil
	}

	// Raw scores. Non-negative floats, normalized to sum to 1.0 before
	// building the Result slice.
	guruScore := float64(gurmukhiLetters) / float64(totalLetters)

	asciiScore := (float64(markerCount)*markerBoost +
		float64(bracketCount)*bracketBoost) / float64(totalLetters)

	latinScore := float64(asciiLetters) / float64(totalLetters)
	if markerCount > 0 {
		latinScore *= latinAsciiDampener
	}

	total := guruScore + asciiScore + latinScore
	if total == 0 {
		return nil
	}

	results := []Result{
		{Script: ScriptGurmukhi, Confidence: guruScore / total},
		{Script: ScriptASCIIGurmukhi, Confidence: asciiScore / total},
		{Script: ScriptLatin, Confidence: latinScore / total},
	}

	slices.SortStableFunc(results, func(a, b Result) int {
		return cmp.Compare(b.Confidence, a.Confidence)
	})

	return results
}
