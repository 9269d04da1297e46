package strip

import "testing"

func TestStripVishrams(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		input string
		want  string
	}{
		{
			"all vishrams removed",
			"Anhd sbd vjwey, hir jIau Gir Awey; hir gux gwvhu nwrI ]",
			"Anhd sbd vjwey hir jIau Gir Awey hir gux gwvhu nwrI ]",
		},
		{
			"no vishrams is a no-op",
			"Anhd sbd vjwey hir jIau Gir Awey hir gux gwvhu nwrI ]",
			"Anhd sbd vjwey hir jIau Gir Awey hir gux gwvhu nwrI ]",
		},
		{"empty", "", ""},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := StripVishrams(tc.input); got != tc.want {
				t.Errorf("StripVishrams(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestStrip(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		input    string
		removals []string
		want     string
	}{
		{
			"heavy only",
			"Anhd sbd vjwey, hir jIau Gir Awey; hir gux gwvhu nwrI ]",
			[]string{VishramHeavy},
			"Anhd sbd vjwey, hir jIau Gir Awey hir gux gwvhu nwrI ]",
		},
		{
			"heavy only unicode",
			"ਸਬਦਿ ਮਰੈ. ਸੋ ਮਰਿ ਰਹੈ; ]",
			[]string{VishramHeavy},
			"ਸਬਦਿ ਮਰੈ. ਸੋ ਮਰਿ ਰਹੈ ]",
		},
		{
			"medium only",
			"Anhd sbd vjwey, hir jIau Gir Awey; hir gux gwvhu nwrI ]",
			[]string{VishramMedium},
			"Anhd sbd vjwey hir jIau Gir Awey; hir gux gwvhu nwrI ]",
		},
		{
			"light only leaves others",
			"ਸਬਦਿ ਮਰੈ. ਸੋ ਮਰਿ ਰਹੈ; ]",
			[]string{VishramLight},
			"ਸਬਦਿ ਮਰੈ ਸੋ ਮਰਿ ਰਹੈ; ]",
		},
		{
			"medium and heavy",
			"ਸਬਦਿ ਮਰੈ. ਸੋ ਮਰਿ ਰਹੈ; ]",
			[]string{VishramMedium, VishramHeavy},
			"ਸਬਦਿ ਮਰੈ. ਸੋ ਮਰਿ ਰਹੈ ]",
		},
		{"no removals", "ਸਬਦ", nil, "ਸਬਦ"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := Strip(tc.input, tc.removals...); got != tc.want {
				t.Errorf("Strip(%q, %v) = %q, want %q", tc.input, tc.removals, got, tc.want)
			}
		})
	}
}

func TestStripPast(t *testing.T) {
	t.Parallel()

	// Every verse-numbering style must be cut down to the bare line.
	cases := []string{
		"ਸਬਦ ॥ ਰਹਾਉ ॥",
		"ਸਬਦ ॥੧॥ ਰਹਾਉ ॥",
		"ਸਬਦ ॥੧॥ ਰਹਾਉ ਦੂਜਾ ॥",
		"ਸਬਦ ॥੪॥੬॥ ਛਕਾ ੧ ॥",
		"ਸਬਦ ॥੨॥੧੨॥ ਛਕੇ ੨ ॥",
		"ਸਬਦ ।੪੯।੧। ਇਕੁ ।",
		"ਸਬਦ ॥੪॥੯॥ ਦੁਤੁਕੇ",
		"ਸਬਦ ॥੨੧॥੧॥ ਸੁਧੁ ਕੀਚੇ",
		"ਸਬਦ ॥੫੧੭॥ ਪੜ੍ਹੋ ਵੀਚਾਰ ਕਬਿੱਤ ੫੦੬",
		"ਸਬਦ ॥੧॥",
		"ਸਬਦ  ॥੧॥",
		"ਸਬਦ॥੨੦",
		"ਸਬਦ ॥੨॥੨॥",
		"ਸਬਦ ॥ ਰਹਾਉ ਦੂਜਾ ॥੧॥੩॥",
		"ਸਬਦ ।੧੪੮।",
	}

	for _, c := range cases {
		c := c
		t.Run(c, func(t *testing.T) {
			t.Parallel()
			if got := StripPast(c, LineEndingPatterns...); got != "ਸਬਦ" {
				t.Errorf("StripPast(%q, LineEndingPatterns...) = %q, want %q", c, got, "ਸਬਦ")
			}
		})
	}
}

func TestStripLineEndings(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"dandas dropped", "ਸਬਦ ॥ ਸਬਦ ॥", "ਸਬਦ ਸਬਦ"},
		{"leading danda", "॥ ਜਪੁ ॥", "ਜਪੁ"},
		{
			"numbering cut, vishram kept",
			"ਸੂਰਜੁ; ਏਕੋ ਰੁਤਿ ਅਨੇਕ ॥ ਨਾਨਕ ਕਰਤੇ ਕੇ ਕੇਤੇ ਵੇਸ ॥੨॥੨॥",
			"ਸੂਰਜੁ; ਏਕੋ ਰੁਤਿ ਅਨੇਕ ਨਾਨਕ ਕਰਤੇ ਕੇ ਕੇਤੇ ਵੇਸ",
		},
		{"plain heading untouched", "ਸੋ ਦਰੁ ਰਾਗੁ ਆਸਾ ਮਹਲਾ ੧", "ਸੋ ਦਰੁ ਰਾਗੁ ਆਸਾ ਮਹਲਾ ੧"},
		{"bare digit kept", "ਮਹਲਾ ੫", "ਮਹਲਾ ੫"},
		{"ascii numbering", "Forever And Ever True. ||1||", "Forever And Ever True."},
		{"ascii pause", "... lush greenery. ||1||Pause||", "... lush greenery."},
		{"pause without numbering", "Example test ||Pause||", "Example test"},
		{"empty", "", ""},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := StripLineEndings(tc.input); got != tc.want {
				t.Errorf("StripLineEndings(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestStripAccents(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"precomposed nukta letters", "ਸ਼ਹੀਦ ਖ਼ਾਲਸਾ ਗ਼ਜ਼ਲ ਫ਼ੌਜ ਲ਼", "ਸਹੀਦ ਖਾਲਸਾ ਗਜਲ ਫੌਜ ਲ"},
		{"bare nukta dropped", "ਕ਼ਿਤਾਬ", "ਕਿਤਾਬ"},
		{"udaat and yakash dropped", "ਦ੍ਰਿੜ੍ਹੵੰਤ ਮੇਰੑਾ", "ਦ੍ਰਿੜ੍ਹੰਤ ਮੇਰਾ"},
		{"plain text untouched", "ਸਬਦ ਗੁਰੂ", "ਸਬਦ ਗੁਰੂ"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := StripAccents(tc.input); got != tc.want {
				t.Errorf("StripAccents(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}
