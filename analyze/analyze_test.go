package analyze

import "testing"

func TestFirstLetters(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"unicode words", "ਗੁਰੂ ਨਾਨਕ ਦੇਵ", "ਗਨਦ"},
		{"mul mantar", "ਸਤਿ ਨਾਮੁ ਕਰਤਾ ਪੁਰਖੁ", "ਸਨਕਪ"},
		{"ascii sihari skipped", "ijs no ik®pw krih", "jnkk"},
		{"ascii iri base", "iek AONkwr", "eA"},
		{"punctuation-only words dropped", "॥ ਜਪੁ ॥", "ਜ"},
		{"leading punctuation skipped", "\"ਗੁਰੂ\" (ਨਾਨਕ)", "ਗਨ"},
		{"spaces only", "   ", ""},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := FirstLetters(tc.input); got != tc.want {
				t.Errorf("FirstLetters(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestSyllabicSymbols(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"short then long", "ਗੁਰੂ", ".S"},
		{"two light", "ਸਤਿ", ".."},
		{"kanna with bindi", "ਮਾਂ", "S"},
		{"tippi weighs the syllable", "ਸੰਤ", "S."},
		{"addak weighs the previous syllable", "ਪੱਖ", "S."},
		{"long independent vowel", "ਆਸਾ", "SS"},
		{"subjoined consonant shares the syllable", "ਕ੍ਰਿਪਾ", ".S"},
		{"words separated by one space", "ਗੁਰੂ  ਨਾਨਕ", ".S S.."},
		{"no gurmukhi", "hello", ""},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := SyllabicSymbols(tc.input); got != tc.want {
				t.Errorf("SyllabicSymbols(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestCountSyllables(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		input string
		want  int
	}{
		{"empty", "", 0},
		{"short then long", "ਗੁਰੂ", 3},
		{"two light", "ਸਤਿ", 2},
		{"heavy only", "ਮਾਂ", 2},
		{"tippi", "ਸੰਤ", 3},
		{"gemination", "ਪੱਖ", 3},
		{"long independent vowels", "ਆਸਾ", 4},
		{"full line", "ਗੁਰੂ ਨਾਨਕ", 7},
		{"no gurmukhi", "hello", 0},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := CountSyllables(tc.input); got != tc.want {
				t.Errorf("CountSyllables(%q) = %d, want %d", tc.input, got, tc.want)
			}
		})
	}
}
