package detect

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDetect(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		in   string
		want Script
	}{
		{
			name: "unicode gurmukhi",
			in:   "ਆਵਹੁ ਸਿਖ ਸਤਿਗੁਰੂ ਕੇ ਪਿਆਰਿਹੋ ਗਾਵਹੁ ਸਚੀ ਬਾਣੀ",
			want: ScriptGurmukhi,
		},
		{
			name: "plain latin",
			in:   "Hello, how are you doing today?",
			want: ScriptLatin,
		},
		{
			name: "ascii gurmukhi with markers",
			in:   "DR¨A ismrn qy suAwmI kI srix ]",
			want: ScriptASCIIGurmukhi,
		},
		{
			name: "ascii gurmukhi subjoined",
			in:   "ik®pw isMDu bsih kMT mwJwr ]",
			want: ScriptASCIIGurmukhi,
		},
		{
			name: "ascii gurmukhi nasalization",
			in:   "guxˆØI swjnw hW ]",
			want: ScriptASCIIGurmukhi,
		},
		{
			name: "mixed with gurmukhi majority",
			in:   "ਗੁਰੂ ਨਾਨਕ said ਧਨ ਧਨ",
			want: ScriptGurmukhi,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Detect(tt.in)
			if got.Script != tt.want {
				t.Errorf("Script: got %s, want %s", got.Script, tt.want)
			}
			if got.Confidence <= 0 {
				t.Errorf("Confidence: got %v, want > 0", got.Confidence)
			}
		})
	}
}

func TestDetectAll(t *testing.T) {
	t.Parallel()
	t.Run("returns exactly three results", func(t *testing.T) {
		t.Parallel()
		results := DetectAll("ਆਵਹੁ ਸਿਖ ਸਤਿਗੁਰੂ ਕੇ ਪਿਆਰਿਹੋ")
		if len(results) != 3 {
			t.Fatalf("got %d results, want 3", len(results))
		}
	})

	t.Run("results sorted by descending confidence", func(t *testing.T) {
		t.Parallel()
		results := DetectAll("DR¨A ismrn qy suAwmI kI srix ]")
		for i := 1; i < len(results); i++ {
			if results[i].Confidence > results[i-1].Confidence {
				t.Errorf("results[%d].Confidence=%v > results[%d].Confidence=%v — not sorted",
					i, results[i].Confidence, i-1, results[i-1].Confidence)
			}
		}
	})

	t.Run("confidences sum to approximately 1.0", func(t *testing.T) {
		t.Parallel()
		results := DetectAll("ਗੁਰੂ ਨਾਨਕ ਦੇਵ ਜੀ")
		var sum float64
		for _, r := range results {
			sum += r.Confidence
		}
		if math.Abs(sum-1.0) > 1e-9 {
			t.Errorf("sum of confidences = %v, want 1.0", sum)
		}
	})

	t.Run("scripts ranked as expected", func(t *testing.T) {
		t.Parallel()
		results := DetectAll("ਆਵਹੁ ਸਿਖ ਸਤਿਗੁਰੂ ਕੇ ਪਿਆਰਿਹੋ")
		gotOrder := []Script{results[0].Script}
		wantFirst := []Script{ScriptGurmukhi}
		if diff := cmp.Diff(wantFirst, gotOrder); diff != "" {
			t.Errorf("ranking mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("nil on empty input", func(t *testing.T) {
		t.Parallel()
		if got := DetectAll(""); got != nil {
			t.Errorf("got %v, want nil", got)
		}
	})
}

func TestIsGurmukhi(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		in   string
		want bool
	}{
		{"empty", "", false},
		{"unicode gurmukhi", "ਗੁਰੂ ਨਾਨਕ", true},
		{"latin", "guru nanak", false},
		{"ascii gurmukhi is latin to code points", "gurU nwnk", false},
		{"mixed gurmukhi majority", "ਗੁਰੂ ਨਾਨਕ ji", true},
		{"mixed latin majority", "the word ਗੁਰੂ means teacher", false},
		{"digits only", "੧੨੩", false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := IsGurmukhi(tt.in); got != tt.want {
				t.Errorf("IsGurmukhi(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestDetectEdgeCases(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		in   string
		want Script
	}{
		{"empty", "", ScriptUnknown},
		{"whitespace", "   \t\n", ScriptUnknown},
		{"digits_only", "1234567890", ScriptUnknown},
		{"punctuation_only", "!!!...???", ScriptUnknown},
		{"single_letter", "a", ScriptUnknown},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Detect(tt.in)
			if got.Script != tt.want {
				t.Errorf("got %s, want %s", got.Script, tt.want)
			}
		})
	}
}

func TestScriptJSON(t *testing.T) {
	t.Parallel()
	scripts := []Script{ScriptUnknown, ScriptGurmukhi, ScriptLatin, ScriptASCIIGurmukhi}

	for _, sc := range scripts {
		sc := sc
		t.Run(sc.String(), func(t *testing.T) {
			t.Parallel()
			data, err := json.Marshal(sc)
			if err != nil {
				t.Fatalf("MarshalJSON: %v", err)
			}

			var decoded Script
			if err := json.Unmarshal(data, &decoded); err != nil {
				t.Fatalf("UnmarshalJSON: %v", err)
			}

			if decoded != sc {
				t.Errorf("round-trip: got %v, want %v", decoded, sc)
			}
		})
	}

	t.Run("unmarshal unknown string", func(t *testing.T) {
		t.Parallel()
		var s Script
		if err := s.UnmarshalJSON([]byte(`"Glag"`)); err == nil {
			t.Error("want error for unknown script, got nil")
		}
	})

	t.Run("unmarshal non-string", func(t *testing.T) {
		t.Parallel()
		var s Script
		if err := s.UnmarshalJSON([]byte(`42`)); err == nil {
			t.Error("want error for non-string JSON, got nil")
		}
	})
}

func TestScriptString(t *testing.T) {
	t.Parallel()
	tests := []struct {
		script Script
		want   string
	}{
		{ScriptUnknown, "Unknown"},
		{ScriptGurmukhi, "Gurmukhi"},
		{ScriptLatin, "Latin"},
		{ScriptASCIIGurmukhi, "ASCIIGurmukhi"},
		{Script(99), "Script(99)"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.want, func(t *testing.T) {
			t.Parallel()
			got := tt.script.String()
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestOversizedInputTruncated(t *testing.T) {
	t.Parallel()
	sentence := "ਆਵਹੁ ਸਿਖ ਸਤਿਗੁਰੂ ਕੇ ਪਿਆਰਿਹੋ ਗਾਵਹੁ ਸਚੀ ਬਾਣੀ "
	// Repeat until we exceed 1 MiB.
	repeat := (maxInputBytes / len(sentence)) + 2
	input := strings.Repeat(sentence, repeat)

	if len(input) <= maxInputBytes {
		t.Fatalf("test setup: input length %d must exceed maxInputBytes %d", len(input), maxInputBytes)
	}

	got := Detect(input)
	if got.Script != ScriptGurmukhi {
		t.Errorf("got %s, want Gurmukhi", got.Script)
	}
}

func BenchmarkDetect(b *testing.B) {
	input := strings.Repeat("ਆਵਹੁ ਸਿਖ ਸਤਿਗੁਰੂ ਕੇ ਪਿਆਰਿਹੋ ਗਾਵਹੁ ਸਚੀ ਬਾਣੀ ", 100)
	b.SetBytes(int64(len(input)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Detect(input)
	}
}

func BenchmarkDetectASCII(b *testing.B) {
	input := strings.Repeat("DR¨A ismrn qy suAwmI kI srix ] ", 100)
	b.SetBytes(int64(len(input)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Detect(input)
	}
}

func ExampleDetect() {
	r := Detect("ਆਵਹੁ ਸਿਖ ਸਤਿਗੁਰੂ ਕੇ ਪਿਆਰਿਹੋ")
	fmt.Println(r.Script)
	// Output:
	// Gurmukhi
}

func ExampleIsGurmukhi() {
	fmt.Println(IsGurmukhi("ਗੁਰੂ ਨਾਨਕ"))
	// Output:
	// true
}
