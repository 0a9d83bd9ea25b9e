//go:build ignore

// Rank the words of plain-text books and wiki dumps into a gzip dictionary,
// and optionally write a reference phrase corpus for wordninja-bench.
// Usage: go run ./scripts/build-dictionary.go -in testdata/text -markup 'enwik*' -out words.txt.gz
package main

import (
	"bufio"
	"flag"
	"fmt"
	"html"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/jamesainslie/go-wordninja/dictionary"
	"github.com/jamesainslie/go-wordninja/lexicon"
)

var (
	startPatterns = []string{
		"*** START OF THE PROJECT GUTENBERG EBOOK",
		"*** START OF THIS PROJECT GUTENBERG EBOOK",
		"*END*THE SMALL PRINT",
	}
	endPatterns = []string{
		"*** END OF THE PROJECT GUTENBERG EBOOK",
		"*** END OF THIS PROJECT GUTENBERG EBOOK",
		"End of Project Gutenberg",
		"End of the Project Gutenberg",
	}
	phraseRe = regexp.MustCompile(`[^.!?;:]+`)

	tagRe       = regexp.MustCompile(`<[^>]*>`)
	urlRe       = regexp.MustCompile(`https?://\S+`)
	interwikiRe = regexp.MustCompile(`\[\[[a-z][a-z-]*:[^\]]*\]\]`)
)

// fallback entries guarantee every ASCII letter, digit and the apostrophe
// has a finite cost.
const fallback = "abcdefghijklmnopqrstuvwxyz0123456789'"

func main() {
	var (
		inDir     = flag.String("in", "testdata/text", "Directory of .txt books and dumps")
		out       = flag.String("out", "words.txt.gz", "Output dictionary path")
		markup    = flag.String("markup", "enwik*", "File name pattern of wiki XML dumps to strip of markup")
		minCount  = flag.Int("min-count", 1, "Drop words seen fewer times")
		maxLen    = flag.Int("max-len", 30, "Drop words longer than this many runes")
		corpusOut = flag.String("corpus-out", "", "Optional reference phrase file to write")
		phrases   = flag.Int("phrases", 200, "Phrases per book in the reference file")
	)
	flag.Parse()

	files, err := filepath.Glob(filepath.Join(*inDir, "*.txt"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error finding files: %v\n", err)
		os.Exit(1)
	}
	if len(files) == 0 {
		fmt.Printf("No .txt files found in %s\n", *inDir)
		os.Exit(1)
	}

	counts := make(map[string]int)
	var reference []string

	for _, path := range files {
		fmt.Printf("Processing %s...\n", filepath.Base(path))
		body, err := readBody(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error processing %s: %v\n", path, err)
			continue
		}

		if ok, _ := filepath.Match(*markup, filepath.Base(path)); ok {
			body = stripMarkup(body)
		}

		for _, word := range words(body) {
			counts[word]++
		}

		if *corpusOut != "" {
			reference = append(reference, samplePhrases(body, *phrases)...)
		}
	}

	ranked := rank(counts, *minCount, *maxLen)
	if err := writeDictionary(*out, ranked); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", *out, err)
		os.Exit(1)
	}
	fmt.Printf("  -> %s (%d words)\n", *out, len(ranked))

	if *corpusOut != "" {
		if err := writeCorpus(*corpusOut, reference); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", *corpusOut, err)
			os.Exit(1)
		}
		fmt.Printf("  -> %s (%d phrases)\n", *corpusOut, len(reference))
	}
}

// readBody returns the book text without Project Gutenberg boilerplate.
func readBody(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading file: %w", err)
	}
	text := strings.ReplaceAll(string(content), "\r\n", "\n")

	startIdx := 0
	for _, pattern := range startPatterns {
		if idx := strings.Index(text, pattern); idx != -1 {
			if endOfLine := strings.Index(text[idx:], "\n"); endOfLine != -1 {
				startIdx = idx + endOfLine + 1
			}
			break
		}
	}

	endIdx := len(text)
	for _, pattern := range endPatterns {
		if idx := strings.Index(text, pattern); idx != -1 {
			endIdx = idx
			break
		}
	}
	if endIdx < startIdx {
		endIdx = len(text)
	}

	return text[startIdx:endIdx], nil
}

// stripMarkup removes XML tags, entities, URLs and interlanguage links.
func stripMarkup(text string) string {
	text = html.UnescapeString(text)
	text = tagRe.ReplaceAllString(text, " ")
	text = urlRe.ReplaceAllString(text, " ")
	return interwikiRe.ReplaceAllString(text, " ")
}

// words splits text on anything but letters, digits and apostrophes, trims
// quoting apostrophes and lowercases.
func words(text string) []string {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '\''
	})

	out := fields[:0]
	for _, f := range fields {
		if w := lexicon.Clean(strings.Trim(f, "'")); w != "" {
			out = append(out, w)
		}
	}
	return out
}

// rank orders words by descending count, alphabetically on ties, then
// appends any fallback entry the counts did not produce.
func rank(counts map[string]int, minCount, maxLen int) []string {
	words := make([]string, 0, len(counts))
	for w, c := range counts {
		if c >= minCount && utf8.RuneCountInString(w) <= maxLen {
			words = append(words, w)
		}
	}
	sort.Slice(words, func(i, j int) bool {
		ci, cj := counts[words[i]], counts[words[j]]
		if ci != cj {
			return ci > cj
		}
		return words[i] < words[j]
	})
	if len(words) > lexicon.MaxWords-len(fallback) {
		words = words[:lexicon.MaxWords-len(fallback)]
	}

	for _, r := range fallback {
		if _, ok := counts[string(r)]; !ok || counts[string(r)] < minCount {
			words = append(words, string(r))
		}
	}
	return words
}

// samplePhrases takes up to n clauses of three or more words.
func samplePhrases(body string, n int) []string {
	body = strings.Join(strings.Fields(body), " ")

	var out []string
	for _, m := range phraseRe.FindAllString(body, -1) {
		if len(out) == n {
			break
		}
		phrase := strings.TrimSpace(m)
		if len(strings.Fields(phrase)) >= 3 {
			out = append(out, phrase)
		}
	}
	return out
}

func writeDictionary(path string, words []string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output: %w", err)
	}
	if err := dictionary.WriteGzip(f, words); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func writeCorpus(path string, phrases []string) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output: %w", err)
	}
	defer out.Close()

	w := bufio.NewWriter(out)
	fmt.Fprintf(w, "# Source: https://www.gutenberg.org/\n")
	fmt.Fprintf(w, "# Title: Reference phrases\n")
	fmt.Fprintf(w, "\n")
	for _, p := range phrases {
		w.WriteString(p)
		w.WriteString("\n")
	}

	return w.Flush()
}
