//go:build ignore

// e2e_pipeline exercises all 6 public modules in a single run and writes
// structured results to data/e2e_pipeline.log.
// Run from the project root:
//
//	go run e2e/e2e_pipeline.go
package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"sync/atomic"
	"time"
	"unicode"

	"github.com/ShabadOS/gurmukhiutils/analyze"
	"github.com/ShabadOS/gurmukhiutils/detect"
	"github.com/ShabadOS/gurmukhiutils/script"
	"github.com/ShabadOS/gurmukhiutils/strip"
	"github.com/ShabadOS/gurmukhiutils/translit"
	"github.com/ShabadOS/gurmukhiutils/validate"
)

// ---------- constants ----------

const (
	logPath       = "data/e2e_pipeline.log"
	moduleCount   = 6
	maxDetailLen  = 200
	concWorkers   = 8
	concIter      = 100
	separator     = "=========================================================="
	suiteCount    = 9
	goldenDir     = "data/golden"
	truncMaxRunes = 80
)

// ---------- test corpus ----------

const textUnicodeLine = `ਆਵਹੁ ਸਿਖ ਸਤਿਗੁਰੂ ਕੇ ਪਿਆਰਿਹੋ ਗਾਵਹੁ ਸਚੀ ਬਾਣੀ ॥`

const textASCIILine = `DR¨A ismrn qy suAwmI kI srix ]`

// textASCIIRoundTrip holds corpus spellings whose keystrokes survive a
// full ASCII -> Sant Lipi -> ASCII conversion exactly.
const textASCIIRoundTrip = `gurU DR¨A kwn@ü ijMn@I ]`

const textMoolMantar = `ਸਤਿ ਨਾਮੁ ਕਰਤਾ ਪੁਰਖੁ`

const textVishrams = `ਹਰਿ ਹਰਿ ਨਾਮੁ ਜਪਹੁ; ਮੇਰੇ, ਭਾਈ ॥`

const textMisordered = `ਸੰਿਘ ਸਾਹਿਬ`

const textMixedGlyph = `ਹਰਿ ƒ ਜਪੁ`

const textEnglish = `The quick brown fox jumps over the lazy dog. This sentence contains every letter of the English alphabet.`

const textVerseNumbered = `ਸਬਦ ॥੪॥੬॥ ਛਕਾ ੧ ॥`

// ---------- result types ----------

type testResult struct {
	name     string
	module   string
	passed   bool
	duration time.Duration
	detail   string
}

type moduleReport struct {
	name     string
	tests    int
	passed   int
	failed   int
	duration time.Duration
}

// ---------- helpers ----------

func pass(module, name string, start time.Time) testResult {
	return testResult{name: name, module: module, passed: true, duration: time.Since(start)}
}

func fail(module, name, detail string, start time.Time) testResult {
	return testResult{name: name, module: module, passed: false, duration: time.Since(start), detail: truncate(detail, maxDetailLen)}
}

func truncate(s string, maxRunes int) string {
	n := 0
	for i := range s {
		n++
		if n > maxRunes {
			return s[:i] + "..."
		}
	}
	return s
}

func safeRun(module, name string, fn func() testResult) (r testResult) {
	defer func() {
		if p := recover(); p != nil {
			r = fail(module, name, fmt.Sprintf("PANIC: %v", p), time.Now())
		}
	}()
	return fn()
}

func hasGurmukhiRune(s string) bool {
	for _, r := range s {
		if r >= 0x0A00 && r <= 0x0A7F {
			return true
		}
	}
	return false
}

// hasGurmukhiLetter reports whether s contains a Gurmukhi base letter,
// as opposed to only digits, marks, or punctuation from the block.
func hasGurmukhiLetter(s string) bool {
	for _, r := range s {
		if r >= 0x0A00 && r <= 0x0A7F && unicode.IsLetter(r) {
			return true
		}
	}
	return false
}

func hasASCIILetter(s string) bool {
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
			return true
		}
	}
	return false
}

// ---------- test suites ----------

func testScript() []testResult {
	const mod = "script"
	var results []testResult

	results = append(results, safeRun(mod, "to_unicode_converts_ascii", func() testResult {
		start := time.Now()
		out := script.ToUnicode(textASCIILine)
		if out == "" {
			return fail(mod, "to_unicode_converts_ascii", "ToUnicode returned empty", start)
		}
		if !hasGurmukhiRune(out) {
			return fail(mod, "to_unicode_converts_ascii", fmt.Sprintf("no Gurmukhi in %q", out), start)
		}
		if hasASCIILetter(out) {
			return fail(mod, "to_unicode_converts_ascii", fmt.Sprintf("ASCII letters left in %q", out), start)
		}
		return pass(mod, "to_unicode_converts_ascii", start)
	}))

	results = append(results, safeRun(mod, "to_unicode_idempotent", func() testResult {
		start := time.Now()
		once := script.ToUnicode(textASCIILine)
		twice := script.ToUnicode(once)
		if once != twice {
			return fail(mod, "to_unicode_idempotent", fmt.Sprintf("once=%q twice=%q", once, twice), start)
		}
		return pass(mod, "to_unicode_idempotent", start)
	}))

	results = append(results, safeRun(mod, "normalize_idempotent", func() testResult {
		start := time.Now()
		once := script.Normalize(textMisordered)
		twice := script.Normalize(once)
		if once != twice {
			return fail(mod, "normalize_idempotent", fmt.Sprintf("once=%q twice=%q", once, twice), start)
		}
		if once == textMisordered {
			return fail(mod, "normalize_idempotent", "misordered input unchanged", start)
		}
		return pass(mod, "normalize_idempotent", start)
	}))

	results = append(results, safeRun(mod, "ascii_round_trip", func() testResult {
		start := time.Now()
		unicodeText := script.ToUnicodeStandard(textASCIIRoundTrip, script.SantLipi)
		back := script.ToASCII(unicodeText)
		if back != textASCIIRoundTrip {
			return fail(mod, "ascii_round_trip", fmt.Sprintf("got %q, want %q", back, textASCIIRoundTrip), start)
		}
		return pass(mod, "ascii_round_trip", start)
	}))

	return results
}

func testTranslit() []testResult {
	const mod = "translit"
	var results []testResult

	results = append(results, safeRun(mod, "to_roman_basic", func() testResult {
		start := time.Now()
		got := translit.ToRoman("ਸਤਿ ਨਾਮੁ")
		if got != "sati nāmu" {
			return fail(mod, "to_roman_basic", fmt.Sprintf("got %q, want %q", got, "sati nāmu"), start)
		}
		return pass(mod, "to_roman_basic", start)
	}))

	results = append(results, safeRun(mod, "roman_round_trip", func() testResult {
		start := time.Now()
		roman := translit.ToRoman(textMoolMantar)
		back := translit.FromRoman(roman)
		if back != textMoolMantar {
			return fail(mod, "roman_round_trip", fmt.Sprintf("got %q, want %q", back, textMoolMantar), start)
		}
		return pass(mod, "roman_round_trip", start)
	}))

	results = append(results, safeRun(mod, "to_devanagari", func() testResult {
		start := time.Now()
		got := translit.ToDevanagari("ਗੁਰੂ")
		if got != "गुरू" {
			return fail(mod, "to_devanagari", fmt.Sprintf("got %q, want %q", got, "गुरू"), start)
		}
		return pass(mod, "to_devanagari", start)
	}))

	results = append(results, safeRun(mod, "to_shahmukhi_nonempty", func() testResult {
		start := time.Now()
		got := translit.ToShahmukhi(textUnicodeLine)
		if got == "" {
			return fail(mod, "to_shahmukhi_nonempty", "ToShahmukhi returned empty", start)
		}
		if hasGurmukhiRune(got) {
			return fail(mod, "to_shahmukhi_nonempty", fmt.Sprintf("Gurmukhi left in %q", got), start)
		}
		return pass(mod, "to_shahmukhi_nonempty", start)
	}))

	return results
}

func testStrip() []testResult {
	const mod = "strip"
	var results []testResult

	results = append(results, safeRun(mod, "strip_vishrams", func() testResult {
		start := time.Now()
		got := strip.StripVishrams(textVishrams)
		if strings.ContainsAny(got, ".,;") {
			return fail(mod, "strip_vishrams", fmt.Sprintf("vishrams left in %q", got), start)
		}
		return pass(mod, "strip_vishrams", start)
	}))

	results = append(results, safeRun(mod, "strip_line_endings", func() testResult {
		start := time.Now()
		got := strip.StripLineEndings(textVerseNumbered)
		if got != "ਸਬਦ" {
			return fail(mod, "strip_line_endings", fmt.Sprintf("got %q, want %q", got, "ਸਬਦ"), start)
		}
		return pass(mod, "strip_line_endings", start)
	}))

	results = append(results, safeRun(mod, "strip_idempotent", func() testResult {
		start := time.Now()
		once := strip.StripLineEndings(textVerseNumbered)
		twice := strip.StripLineEndings(once)
		if once != twice {
			return fail(mod, "strip_idempotent", fmt.Sprintf("once=%q twice=%q", once, twice), start)
		}
		return pass(mod, "strip_idempotent", start)
	}))

	return results
}

func testAnalyze() []testResult {
	const mod = "analyze"
	var results []testResult

	results = append(results, safeRun(mod, "first_letters", func() testResult {
		start := time.Now()
		got := analyze.FirstLetters("ਗੁਰੂ ਨਾਨਕ ਦੇਵ")
		if got != "ਗਨਦ" {
			return fail(mod, "first_letters", fmt.Sprintf("got %q, want %q", got, "ਗਨਦ"), start)
		}
		return pass(mod, "first_letters", start)
	}))

	results = append(results, safeRun(mod, "syllable_count", func() testResult {
		start := time.Now()
		got := analyze.CountSyllables("ਗੁਰੂ")
		if got != 3 {
			return fail(mod, "syllable_count", fmt.Sprintf("got %d, want 3", got), start)
		}
		return pass(mod, "syllable_count", start)
	}))

	results = append(results, safeRun(mod, "syllabic_symbols_match_count", func() testResult {
		start := time.Now()
		symbols := analyze.SyllabicSymbols(textMoolMantar)
		want := analyze.CountSyllables(textMoolMantar)
		got := strings.Count(symbols, ".") + 2*strings.Count(symbols, "S")
		if got != want {
			return fail(mod, "syllabic_symbols_match_count",
				fmt.Sprintf("symbols %q weigh %d, CountSyllables=%d", symbols, got, want), start)
		}
		return pass(mod, "syllabic_symbols_match_count", start)
	}))

	return results
}

func testDetect() []testResult {
	const mod = "detect"
	var results []testResult

	results = append(results, safeRun(mod, "unicode_gurmukhi", func() testResult {
		start := time.Now()
		r := detect.Detect(textUnicodeLine)
		if r.Script != detect.ScriptGurmukhi {
			return fail(mod, "unicode_gurmukhi", fmt.Sprintf("got %s", r.Script), start)
		}
		return pass(mod, "unicode_gurmukhi", start)
	}))

	results = append(results, safeRun(mod, "ascii_gurmukhi", func() testResult {
		start := time.Now()
		r := detect.Detect(textASCIILine)
		if r.Script != detect.ScriptASCIIGurmukhi {
			return fail(mod, "ascii_gurmukhi", fmt.Sprintf("got %s", r.Script), start)
		}
		return pass(mod, "ascii_gurmukhi", start)
	}))

	results = append(results, safeRun(mod, "latin", func() testResult {
		start := time.Now()
		r := detect.Detect(textEnglish)
		if r.Script != detect.ScriptLatin {
			return fail(mod, "latin", fmt.Sprintf("got %s", r.Script), start)
		}
		return pass(mod, "latin", start)
	}))

	results = append(results, safeRun(mod, "detect_all_normalized", func() testResult {
		start := time.Now()
		all := detect.DetectAll(textUnicodeLine)
		if len(all) != 3 {
			return fail(mod, "detect_all_normalized", fmt.Sprintf("got %d results", len(all)), start)
		}
		var sum float64
		for _, r := range all {
			sum += r.Confidence
		}
		if sum < 0.999 || sum > 1.001 {
			return fail(mod, "detect_all_normalized", fmt.Sprintf("confidence sum %v", sum), start)
		}
		return pass(mod, "detect_all_normalized", start)
	}))

	return results
}

func testValidate() []testResult {
	const mod = "validate"
	var results []testResult

	results = append(results, safeRun(mod, "clean_text_scores_100", func() testResult {
		start := time.Now()
		report := validate.Validate(textUnicodeLine)
		if report.Score != 100 {
			return fail(mod, "clean_text_scores_100",
				fmt.Sprintf("Score=%d, issues=%v", report.Score, report.Issues), start)
		}
		return pass(mod, "clean_text_scores_100", start)
	}))

	results = append(results, safeRun(mod, "mixed_encoding_is_invalid", func() testResult {
		start := time.Now()
		if validate.IsValid(textMixedGlyph) {
			return fail(mod, "mixed_encoding_is_invalid", "IsValid=true for mixed-encoding text", start)
		}
		return pass(mod, "mixed_encoding_is_invalid", start)
	}))

	results = append(results, safeRun(mod, "offset_invariant", func() testResult {
		start := time.Now()
		report := validate.Validate(textMisordered)
		for _, issue := range report.Issues {
			if issue.Start < 0 || issue.End > len(textMisordered) || issue.Start > issue.End {
				return fail(mod, "offset_invariant",
					fmt.Sprintf("invalid offsets [%d:%d]", issue.Start, issue.End), start)
			}
			if textMisordered[issue.Start:issue.End] != issue.Text {
				return fail(mod, "offset_invariant",
					fmt.Sprintf("text[%d:%d]=%q != issue.Text=%q",
						issue.Start, issue.End, textMisordered[issue.Start:issue.End], issue.Text), start)
			}
		}
		return pass(mod, "offset_invariant", start)
	}))

	results = append(results, safeRun(mod, "suggestion_fixes_order", func() testResult {
		start := time.Now()
		report := validate.Validate(textMisordered)
		for _, issue := range report.Issues {
			if issue.Type != validate.DiacriticOrder {
				continue
			}
			fixed := textMisordered[:issue.Start] + issue.Suggestion + textMisordered[issue.End:]
			if len(validate.Validate(fixed).Issues) != 0 {
				return fail(mod, "suggestion_fixes_order",
					fmt.Sprintf("applying suggestion %q left issues", issue.Suggestion), start)
			}
			return pass(mod, "suggestion_fixes_order", start)
		}
		return fail(mod, "suggestion_fixes_order", "no diacritic order issue found", start)
	}))

	return results
}

func testPipeline() []testResult {
	const mod = "pipeline"
	var results []testResult

	results = append(results, safeRun(mod, "ascii_to_unicode_to_roman", func() testResult {
		start := time.Now()
		unicodeText := script.ToUnicode(textASCIILine)
		if unicodeText == "" {
			return fail(mod, "ascii_to_unicode_to_roman", "ToUnicode returned empty", start)
		}
		if detect.Detect(unicodeText).Script != detect.ScriptGurmukhi {
			return fail(mod, "ascii_to_unicode_to_roman", "converted text not detected as Gurmukhi", start)
		}
		roman := translit.ToRoman(unicodeText)
		if roman == "" || hasGurmukhiRune(roman) {
			return fail(mod, "ascii_to_unicode_to_roman", fmt.Sprintf("bad romanization %q", roman), start)
		}
		return pass(mod, "ascii_to_unicode_to_roman", start)
	}))

	results = append(results, safeRun(mod, "convert_validate_index", func() testResult {
		start := time.Now()
		unicodeText := script.ToUnicode(textASCIILine)
		if !validate.IsValid(unicodeText) {
			return fail(mod, "convert_validate_index", "converted text failed validation", start)
		}
		stripped := strip.StripLineEndings(strip.StripVishrams(unicodeText))
		key := analyze.FirstLetters(stripped)
		if key == "" {
			return fail(mod, "convert_validate_index", "empty first-letter key", start)
		}
		if !hasGurmukhiRune(key) {
			return fail(mod, "convert_validate_index", fmt.Sprintf("non-Gurmukhi key %q", key), start)
		}
		return pass(mod, "convert_validate_index", start)
	}))

	return results
}

func testConcurrent() []testResult {
	const mod = "concurrent"
	var results []testResult

	results = append(results, safeRun(mod, "all_modules_8_goroutines_x100", func() testResult {
		start := time.Now()
		var panics atomic.Int64
		var wg sync.WaitGroup

		for range concWorkers {
			wg.Go(func() {
				for range concIter {
					func() {
						defer func() {
							if p := recover(); p != nil {
								panics.Add(1)
							}
						}()
						script.ToUnicode(textASCIILine)
						script.ToASCII(textUnicodeLine)
						script.Normalize(textMisordered)
						translit.ToRoman(textUnicodeLine)
						translit.FromRoman("gurū")
						translit.ToDevanagari(textUnicodeLine)
						translit.ToShahmukhi(textUnicodeLine)
						strip.StripVishrams(textVishrams)
						strip.StripLineEndings(textVerseNumbered)
						analyze.FirstLetters(textUnicodeLine)
						analyze.SyllabicSymbols(textMoolMantar)
						analyze.CountSyllables(textMoolMantar)
						detect.Detect(textASCIILine)
						detect.DetectAll(textUnicodeLine)
						validate.Validate(textMisordered)
						validate.IsValid(textUnicodeLine)
					}()
				}
			})
		}
		wg.Wait()

		if n := panics.Load(); n > 0 {
			return fail(mod, "all_modules_8_goroutines_x100",
				fmt.Sprintf("%d panics detected across goroutines", n), start)
		}
		return pass(mod, "all_modules_8_goroutines_x100", start)
	}))

	return results
}

// ---------- corpus helpers ----------

// goldenEntry represents one entry from a golden JSON test file.
type goldenEntry struct {
	Input string `json:"input"`
	Text  string `json:"text"`
}

// loadGoldenCorpus reads all golden JSON files and returns concatenated input texts.
func loadGoldenCorpus() (string, int, error) {
	files, err := filepath.Glob(filepath.Join(goldenDir, "*.json"))
	if err != nil {
		return "", 0, err
	}
	if len(files) == 0 {
		return "", 0, fmt.Errorf("no golden files found in %s", goldenDir)
	}

	var texts []string
	for _, f := range files {
		raw, err := os.ReadFile(f)
		if err != nil {
			return "", 0, fmt.Errorf("reading %s: %w", f, err)
		}
		var entries []goldenEntry
		if err := json.Unmarshal(raw, &entries); err != nil {
			continue // skip non-array golden files
		}
		for _, e := range entries {
			inp := e.Input
			if inp == "" {
				inp = e.Text
			}
			if inp != "" {
				texts = append(texts, inp)
			}
		}
	}
	corpus := strings.Join(texts, "\n")
	return corpus, len(texts), nil
}

func testCorpus() []testResult {
	const mod = "corpus"
	var results []testResult

	corpus, inputCount, err := loadGoldenCorpus()
	if err != nil {
		results = append(results, fail(mod, "load_golden_corpus", fmt.Sprintf("error: %v", err), time.Now()))
		return results
	}

	results = append(results, safeRun(mod, "load_golden_corpus", func() testResult {
		start := time.Now()
		if inputCount == 0 {
			return fail(mod, "load_golden_corpus", "no inputs found", start)
		}
		log.Printf("  corpus: %d inputs, %d bytes", inputCount, len(corpus))
		return pass(mod, "load_golden_corpus", start)
	}))

	results = append(results, safeRun(mod, "normalize_full_corpus_idempotent", func() testResult {
		start := time.Now()
		once := script.Normalize(corpus)
		twice := script.Normalize(once)
		if once != twice {
			return fail(mod, "normalize_full_corpus_idempotent", "Normalize not idempotent on corpus", start)
		}
		return pass(mod, "normalize_full_corpus_idempotent", start)
	}))

	results = append(results, safeRun(mod, "romanize_full_corpus", func() testResult {
		start := time.Now()
		roman := translit.ToRoman(corpus)
		if roman == "" {
			return fail(mod, "romanize_full_corpus", "ToRoman returned empty", start)
		}
		if hasGurmukhiRune(roman) {
			return fail(mod, "romanize_full_corpus", "Gurmukhi left in romanized corpus", start)
		}
		return pass(mod, "romanize_full_corpus", start)
	}))

	results = append(results, safeRun(mod, "validate_full_corpus", func() testResult {
		start := time.Now()
		report := validate.Validate(corpus)
		if report.Score < 0 || report.Score > 100 {
			return fail(mod, "validate_full_corpus",
				fmt.Sprintf("Score=%d out of range [0,100]", report.Score), start)
		}
		for _, issue := range report.Issues {
			if issue.Start < 0 || issue.End > len(corpus) || issue.Start > issue.End {
				return fail(mod, "validate_full_corpus",
					fmt.Sprintf("invalid offsets [%d:%d]", issue.Start, issue.End), start)
			}
			if corpus[issue.Start:issue.End] != issue.Text {
				return fail(mod, "validate_full_corpus", "offset invariant broken", start)
			}
		}
		return pass(mod, "validate_full_corpus", start)
	}))

	results = append(results, safeRun(mod, "first_letters_full_corpus", func() testResult {
		start := time.Now()
		for line := range strings.SplitSeq(corpus, "\n") {
			if !hasGurmukhiLetter(line) {
				continue
			}
			if analyze.FirstLetters(line) == "" {
				return fail(mod, "first_letters_full_corpus",
					fmt.Sprintf("empty key for line %q", truncate(line, truncMaxRunes)), start)
			}
		}
		return pass(mod, "first_letters_full_corpus", start)
	}))

	return results
}

// ---------- orchestration ----------

func runAllSuites() []testResult {
	suites := []func() []testResult{
		testScript,
		testTranslit,
		testStrip,
		testAnalyze,
		testDetect,
		testValidate,
		testPipeline,
		testConcurrent,
		testCorpus,
	}

	var all []testResult
	for _, suite := range suites {
		all = append(all, suite()...)
	}
	return all
}

func buildReports(results []testResult) []moduleReport {
	order := make(map[string]int)
	var reports []moduleReport

	for _, r := range results {
		idx, exists := order[r.module]
		if !exists {
			idx = len(reports)
			order[r.module] = idx
			reports = append(reports, moduleReport{name: r.module})
		}
		reports[idx].tests++
		reports[idx].duration += r.duration
		if r.passed {
			reports[idx].passed++
		} else {
			reports[idx].failed++
		}
	}
	return reports
}

func writeLog(path string, results []testResult) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(f)

	now := time.Now().UTC().Format(time.RFC3339)
	goVer := runtime.Version()
	platform := runtime.GOOS + "/" + runtime.GOARCH

	fmt.Fprintln(bw, separator)
	fmt.Fprintln(bw, "  gurmukhiutils E2E Pipeline Test")
	fmt.Fprintf(bw, "  Timestamp: %s\n", now)
	fmt.Fprintf(bw, "  Go: %s  OS: %s\n", goVer, platform)
	fmt.Fprintf(bw, "  Modules: %d\n", moduleCount)
	fmt.Fprintln(bw, separator)
	fmt.Fprintln(bw)

	reports := buildReports(results)
	var totalDuration time.Duration
	for _, rep := range reports {
		totalDuration += rep.duration
	}

	// Per-module sections.
	for _, rep := range reports {
		fmt.Fprintf(bw, "[%s] %d tests | %d passed | %d failed | %s\n",
			rep.name, rep.tests, rep.passed, rep.failed, rep.duration.Round(time.Microsecond))
		for _, r := range results {
			if r.module != rep.name {
				continue
			}
			status := "PASS"
			if !r.passed {
				status = "FAIL"
			}
			fmt.Fprintf(bw, "  %-6s %-45s %s\n", status, r.name, r.duration.Round(time.Microsecond))
		}
		fmt.Fprintln(bw)
	}

	// Failures section.
	var failures []testResult
	for _, r := range results {
		if !r.passed {
			failures = append(failures, r)
		}
	}
	if len(failures) > 0 {
		fmt.Fprintln(bw, "--- FAILURES ---")
		for _, r := range failures {
			fmt.Fprintf(bw, "  FAIL  [%s] %-40s %s\n", r.module, r.name, r.duration.Round(time.Microsecond))
			if r.detail != "" {
				for line := range strings.SplitSeq(r.detail, "\n") {
					fmt.Fprintf(bw, "        %s\n", line)
				}
			}
		}
		fmt.Fprintln(bw)
	}

	// Summary.
	totalTests := len(results)
	totalPassed := 0
	totalFailed := 0
	for _, r := range results {
		if r.passed {
			totalPassed++
		} else {
			totalFailed++
		}
	}

	fmt.Fprintln(bw, separator)
	fmt.Fprintf(bw, "  SUMMARY: %d tests | %d passed | %d failed | %s\n",
		totalTests, totalPassed, totalFailed, totalDuration.Round(time.Microsecond))
	fmt.Fprintln(bw, separator)

	if err := bw.Flush(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func printSummary(results []testResult) {
	reports := buildReports(results)
	totalPassed := 0
	totalFailed := 0
	var totalDuration time.Duration

	for _, rep := range reports {
		totalPassed += rep.passed
		totalFailed += rep.failed
		totalDuration += rep.duration

		status := "OK"
		if rep.failed > 0 {
			status = "FAIL"
		}
		log.Printf("  %-12s %d/%d %s", rep.name, rep.passed, rep.tests, status)
	}

	log.Printf("")
	log.Printf("  %d tests | %d passed | %d failed | %s",
		len(results), totalPassed, totalFailed, totalDuration.Round(time.Microsecond))

	for _, r := range results {
		if !r.passed {
			log.Printf("  FAIL [%s] %s: %s", r.module, r.name, r.detail)
		}
	}
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("[e2e] ")

	log.Printf("starting E2E pipeline test (%d modules, %d suites)", moduleCount, suiteCount)
	totalStart := time.Now()

	results := runAllSuites()

	log.Printf("completed in %s", time.Since(totalStart).Round(time.Microsecond))
	log.Printf("")

	printSummary(results)

	if err := writeLog(logPath, results); err != nil {
		log.Fatalf("cannot write log: %v", err)
	}
	log.Printf("log written to %s", logPath)

	for _, r := range results {
		if !r.passed {
			os.Exit(1)
		}
	}
}
