// Command smoketest runs the conversion pipeline over a directory of
// corpus text files and reports counts, round-trip failures, and
// validation outliers. It exists to catch regressions against real
// scripture corpora that are too large to check into the repository.
package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/ShabadOS/gurmukhiutils/detect"
	"github.com/ShabadOS/gurmukhiutils/script"
	"github.com/ShabadOS/gurmukhiutils/translit"
	"github.com/ShabadOS/gurmukhiutils/validate"
)

const (
	chunkSize      = 4 << 20 // 4 MB per read chunk
	maxWorkers     = 4
	expectedArgs   = 2
	bytesToMBShift = 20
)

type fileRatio struct {
	path   string
	issues int
	lines  int
	ratio  float64
}

type Stats struct {
	mu            sync.Mutex
	filesScanned  int
	totalBytes    int64
	idempotentOK  int
	idempotentBad int
	asciiFiles    int
	reconOK       int
	reconFail     int
	issueOutliers int
	romanized     int64
	scriptCounts  map[detect.Script]int
	fileRatios    []fileRatio
}

type fileState struct {
	path            string
	scriptCounts    map[detect.Script]int
	totalBytes      int64
	lines           int
	issues          int
	romanized       int64
	hasASCII        bool
	idempotentBad   bool
	idempotentLog   bool
	reconFailed     bool
	reconFailLogged bool
}

func main() {
	if len(os.Args) != expectedArgs {
		fmt.Fprintf(os.Stderr, "Usage: %s <directory>\n", os.Args[0])
		os.Exit(1)
	}

	dirPath := os.Args[1]
	stats := &Stats{
		scriptCounts: make(map[detect.Script]int),
	}

	var filePaths []string
	err := filepath.WalkDir(dirPath, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".txt") {
			return nil
		}
		filePaths = append(filePaths, path)
		return nil
	})

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error walking directory: %v\n", err)
		os.Exit(1)
	}

	fmt.Fprintf(os.Stderr, "Found %d files to process\n", len(filePaths))
	start := time.Now()

	semaphore := make(chan struct{}, maxWorkers)
	var wg sync.WaitGroup

	for _, path := range filePaths {
		wg.Add(1)
		semaphore <- struct{}{}
		go func(p string) {
			defer wg.Done()
			defer func() { <-semaphore }()
			processFile(p, stats)
		}(path)
	}

	wg.Wait()

	flagIssueOutliers(stats)

	fmt.Fprintf(os.Stderr, "\nCompleted in %s\n\n", time.Since(start).Round(time.Millisecond))
	printStats(stats)
}

func processFile(path string, stats *Stats) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening %s: %v\n", path, err)
		return
	}
	defer func() { _ = f.Close() }()

	info, err := f.Stat()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error stat %s: %v\n", path, err)
		return
	}
	fileSize := info.Size()
	fmt.Fprintf(os.Stderr, "START %s (%d MB)\n", path, fileSize>>bytesToMBShift)
	fileStart := time.Now()

	state := &fileState{
		path:         path,
		scriptCounts: make(map[detect.Script]int),
	}

	buf := make([]byte, chunkSize)
	var leftover []byte

	for {
		n, err := f.Read(buf)
		if n > 0 {
			leftover = append(leftover, buf[:n]...)
			chunk := leftover

			if err == nil {
				if idx := bytes.LastIndexByte(chunk, '\n'); idx > 0 {
					leftover = make([]byte, len(chunk)-idx-1)
					copy(leftover, chunk[idx+1:])
					chunk = chunk[:idx+1]
				} else {
					leftover = chunk
					continue
				}
			} else {
				leftover = nil
			}

			state.processChunk(chunk)
		}

		if err != nil {
			break
		}
	}

	if len(leftover) > 0 {
		state.processChunk(leftover)
	}

	fmt.Fprintf(os.Stderr, "DONE  %s in %s (%d MB processed)\n",
		filepath.Base(path), time.Since(fileStart).Round(time.Millisecond), state.totalBytes>>bytesToMBShift)

	mergeFileState(state, stats)
}

func (fs *fileState) processChunk(chunk []byte) {
	text := string(chunk)
	fs.totalBytes += int64(len(chunk))

	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		fs.lines++

		result := detect.Detect(line)
		fs.scriptCounts[result.Script]++

		switch result.Script {
		case detect.ScriptASCIIGurmukhi:
			fs.hasASCII = true
			fs.checkASCIIRoundTrip(line)
		case detect.ScriptGurmukhi:
			fs.checkIdempotence(line)
			fs.romanized += int64(len(translit.ToRoman(line)))
			fs.issues += len(validate.Validate(line).Issues)
		}
	}
}

// checkIdempotence verifies that converting already-Unicode text is
// stable: a second pass through ToUnicode must be a no-op.
func (fs *fileState) checkIdempotence(line string) {
	if fs.idempotentBad {
		return
	}
	once := script.ToUnicode(line)
	twice := script.ToUnicode(once)
	if once != twice {
		fs.idempotentBad = true
		if !fs.idempotentLog {
			pos, got, want := firstDivergence(once, twice)
			fmt.Fprintf(os.Stderr, "IDEMPOTENCE_FAIL: %s: first divergence at byte %d (got 0x%02x, want 0x%02x)\n",
				fs.path, pos, got, want)
			fs.idempotentLog = true
		}
	}
}

// checkASCIIRoundTrip converts an ASCII-keyed line to Sant Lipi Unicode
// and back, expecting the original keystrokes on canonical corpus
// spellings.
func (fs *fileState) checkASCIIRoundTrip(line string) {
	if fs.reconFailed {
		return
	}
	unicodeLine := script.ToUnicodeStandard(line, script.SantLipi)
	back := script.ToASCII(unicodeLine)
	if back != line {
		fs.reconFailed = true
		if !fs.reconFailLogged {
			pos, got, want := firstDivergence(line, back)
			fmt.Fprintf(os.Stderr, "RECON_FAIL: %s: first divergence at byte %d (got 0x%02x, want 0x%02x)\n",
				fs.path, pos, got, want)
			fs.reconFailLogged = true
		}
	}
}

func mergeFileState(fs *fileState, stats *Stats) {
	stats.mu.Lock()
	defer stats.mu.Unlock()

	stats.filesScanned++
	stats.totalBytes += fs.totalBytes
	stats.romanized += fs.romanized

	if fs.idempotentBad {
		stats.idempotentBad++
	} else {
		stats.idempotentOK++
	}

	for sc, count := range fs.scriptCounts {
		stats.scriptCounts[sc] += count
	}

	if fs.lines > 0 {
		stats.fileRatios = append(stats.fileRatios, fileRatio{
			path:   fs.path,
			issues: fs.issues,
			lines:  fs.lines,
			ratio:  float64(fs.issues) / float64(fs.lines),
		})
	}

	if fs.hasASCII {
		stats.asciiFiles++
		if fs.reconFailed {
			stats.reconFail++
		} else {
			stats.reconOK++
		}
	}
}

// flagIssueOutliers computes the median validation issues-per-line ratio
// across all files and flags any file whose ratio exceeds 3x the median.
func flagIssueOutliers(stats *Stats) {
	if len(stats.fileRatios) == 0 {
		return
	}

	ratios := make([]float64, len(stats.fileRatios))
	for i, fr := range stats.fileRatios {
		ratios[i] = fr.ratio
	}
	med := computeMedian(ratios)

	for _, fr := range stats.fileRatios {
		if med > 0 && fr.ratio > 3*med {
			stats.issueOutliers++
			fmt.Fprintf(os.Stderr, "ISSUE_OUTLIER: %s: %d issues / %d lines (ratio %.2f, median %.2f)\n",
				fr.path, fr.issues, fr.lines, fr.ratio, med)
		}
	}
}

// firstDivergence finds the byte position where two strings first differ.
// Returns the position and the differing bytes from each string.
func firstDivergence(original, reconstructed string) (pos int, got, want byte) {
	n := min(len(original), len(reconstructed))
	for i := 0; i < n; i++ {
		if original[i] != reconstructed[i] {
			return i, reconstructed[i], original[i]
		}
	}
	pos = n
	if pos < len(reconstructed) {
		got = reconstructed[pos]
	}
	if pos < len(original) {
		want = original[pos]
	}
	return pos, got, want
}

func computeMedian(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2 //nolint:mnd // arithmetic mean of two middle values
	}
	return sorted[mid]
}

func printStats(stats *Stats) {
	fmt.Printf("Files scanned:           %d\n", stats.filesScanned)
	fmt.Printf("Total bytes:             %d\n", stats.totalBytes)
	fmt.Printf("Idempotence OK:          %d\n", stats.idempotentOK)
	fmt.Printf("Idempotence FAIL:        %d\n", stats.idempotentBad)
	fmt.Printf("ASCII files:             %d\n", stats.asciiFiles)
	fmt.Printf("ASCII recon OK:          %d\n", stats.reconOK)
	fmt.Printf("ASCII recon FAIL:        %d\n", stats.reconFail)
	fmt.Printf("Issue outliers:          %d\n", stats.issueOutliers)
	fmt.Printf("Romanized bytes:         %d\n", stats.romanized)
	fmt.Println()

	totalLines := 0
	for _, count := range stats.scriptCounts {
		totalLines += count
	}

	fmt.Println("Script distribution:")
	printScriptStats("Gurmukhi", detect.ScriptGurmukhi, stats.scriptCounts, totalLines)
	printScriptStats("ASCIIGurmukhi", detect.ScriptASCIIGurmukhi, stats.scriptCounts, totalLines)
	printScriptStats("Latin", detect.ScriptLatin, stats.scriptCounts, totalLines)
	printScriptStats("Unknown", detect.ScriptUnknown, stats.scriptCounts, totalLines)
}

func printScriptStats(label string, sc detect.Script, counts map[detect.Script]int, total int) {
	count := counts[sc]
	percentage := 0.0
	if total > 0 {
		percentage = float64(count) / float64(total) * 100
	}
	fmt.Printf("  %-15s %d  (%.1f%%)\n", label+":", count, percentage)
}
