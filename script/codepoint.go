package script

import (
	"fmt"
	"strconv"

	"golang.org/x/text/unicode/runenames"
)

// CodePoint describes a single character of a string.
type CodePoint struct {
	Char string `json:"char"`
	Hex  string `json:"hex"`  // 4-digit lowercase hex, e.g. "0a1c"
	Name string `json:"name"` // Unicode character name
}

// DecodeCodePoints lists every character of s with its code point.
// Returns nil for an empty string.
func DecodeCodePoints(s string) []CodePoint {
	if s == "" {
		return nil
	}

	points := make([]CodePoint, 0, len(s))
	for _, r := range s {
		points = append(points, CodePoint{
			Char: string(r),
			Hex:  fmt.Sprintf("%04x", r),
			Name: runenames.Name(r),
		})
	}
	return points
}

// EncodeCodePoints converts hexadecimal code points ("0a1c", "0A40") to
// their characters. Fails on the first value that is not valid hex.
func EncodeCodePoints(hexes []string) ([]string, error) {
	chars := make([]string, 0, len(hexes))
	for _, h := range hexes {
		n, err := strconv.ParseUint(h, 16, 32)
		if err != nil {
			return nil, fmt.Errorf("script: invalid code point %q: %v", h, err)
		}
		chars = append(chars, string(rune(n)))
	}
	return chars, nil
}
