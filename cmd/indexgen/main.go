// Command indexgen generates a first-letter search index from a corpus
// dump (JSONL format, one verse object per line).
//
// Export the corpus with a "gurmukhi" field per line, then run:
//
//	go run ./cmd/indexgen -input corpus.jsonl
//
// Output: data/index.txt (commit this file). Each line holds the
// first-letter key, a tab, and the verse. Regenerate when the corpus
// changes.
package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/ShabadOS/gurmukhiutils/analyze"
	"github.com/ShabadOS/gurmukhiutils/detect"
	"github.com/ShabadOS/gurmukhiutils/script"
	"github.com/ShabadOS/gurmukhiutils/strip"
)

const (
	defaultInput   = "data/corpus/corpus.jsonl"
	defaultOutput  = "data/index.txt"
	scannerBufSize = 1 << 20 // 1 MB
	minKeyRunes    = 2
)

// verseEntry holds only the fields needed from each JSONL line.
type verseEntry struct {
	Gurmukhi string `json:"gurmukhi"`
}

func main() {
	inputPath := flag.String("input", defaultInput, "path to corpus JSONL dump")
	outputPath := flag.String("output", defaultOutput, "output path for index.txt")
	flag.Parse()

	if *inputPath == "" {
		fmt.Fprintf(os.Stderr, "Usage: indexgen -input <file> [-output <file>]\n")
		os.Exit(1)
	}

	f, err := os.Open(*inputPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "indexgen: open input: %v\n", err)
		os.Exit(1)
	}

	scanner := bufio.NewScanner(f)
	buf := make([]byte, scannerBufSize)
	scanner.Buffer(buf, scannerBufSize)

	seen := make(map[string]struct{})
	var skipped, converted int

	for scanner.Scan() {
		line := scanner.Bytes()
		var entry verseEntry
		if err := json.Unmarshal(line, &entry); err != nil {
			// Skip malformed lines silently; they are rare in corpus dumps.
			continue
		}

		verse := strings.TrimSpace(entry.Gurmukhi)
		if verse == "" {
			skipped++
			continue
		}

		// Older exports carry ASCII font keying; index everything as
		// Unicode.
		if detect.Detect(verse).Script == detect.ScriptASCIIGurmukhi {
			verse = script.ToUnicode(verse)
			converted++
		} else {
			verse = script.Normalize(verse)
		}

		key := analyze.FirstLetters(strip.StripLineEndings(strip.StripVishrams(verse)))
		if len([]rune(key)) < minKeyRunes {
			skipped++
			continue
		}

		seen[key+"\t"+verse] = struct{}{}
	}

	scanErr := scanner.Err()

	// Close input file explicitly after scanning (no defer, avoids exitAfterDefer).
	if err := f.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "indexgen: close input: %v\n", err)
		os.Exit(1)
	}

	if scanErr != nil {
		fmt.Fprintf(os.Stderr, "indexgen: scan error: %v\n", scanErr)
		os.Exit(1)
	}

	lines := make([]string, 0, len(seen))
	for key := range seen {
		lines = append(lines, key)
	}
	sort.Strings(lines)

	out, err := os.Create(*outputPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "indexgen: create output: %v\n", err)
		os.Exit(1)
	}

	w := bufio.NewWriter(out)
	keys := make(map[string]struct{})

	for _, l := range lines {
		if _, writeErr := fmt.Fprintln(w, l); writeErr != nil {
			fmt.Fprintf(os.Stderr, "indexgen: write error: %v\n", writeErr)
			os.Exit(1)
		}
		key, _, _ := strings.Cut(l, "\t")
		keys[key] = struct{}{}
	}

	if err := w.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "indexgen: flush error: %v\n", err)
		os.Exit(1)
	}

	info, err := out.Stat()
	if err != nil {
		fmt.Fprintf(os.Stderr, "indexgen: stat output: %v\n", err)
		os.Exit(1)
	}

	if err := out.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "indexgen: close output: %v\n", err)
		os.Exit(1)
	}

	fmt.Fprintf(os.Stderr, "Total entries:      %d\n", len(lines))
	fmt.Fprintf(os.Stderr, "Unique keys:        %d\n", len(keys))
	fmt.Fprintf(os.Stderr, "ASCII converted:    %d\n", converted)
	fmt.Fprintf(os.Stderr, "Skipped lines:      %d\n", skipped)
	fmt.Fprintf(os.Stderr, "Output file: %s (%d bytes)\n", *outputPath, info.Size())
}
