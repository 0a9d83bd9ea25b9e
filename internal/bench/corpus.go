// Package bench provides accuracy benchmarking for word splitting.
package bench

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/jamesainslie/go-wordninja/lexicon"
)

// Header contains metadata parsed from a corpus file header.
type Header struct {
	Source string
	Title  string
}

// ParseHeader extracts metadata from header comments.
// Returns the header, remaining text after header, and any error.
func ParseHeader(text string) (Header, string, error) {
	var h Header
	scanner := bufio.NewScanner(strings.NewReader(text))
	var bodyStart int
	var lineEnd int

	for scanner.Scan() {
		line := scanner.Text()
		lineEnd += len(line) + 1 // +1 for newline

		if !strings.HasPrefix(line, "#") {
			if strings.TrimSpace(line) == "" {
				continue
			}
			bodyStart = lineEnd - len(line) - 1
			break
		}

		line = strings.TrimPrefix(line, "# ")
		if value, ok := strings.CutPrefix(line, "Source:"); ok {
			h.Source = strings.TrimSpace(value)
		} else if value, ok := strings.CutPrefix(line, "Title:"); ok {
			h.Title = strings.TrimSpace(value)
		}
	}

	if err := scanner.Err(); err != nil {
		return Header{}, "", fmt.Errorf("scan header: %w", err)
	}

	if h.Source == "" {
		return Header{}, "", errors.New("missing Source in header")
	}

	body := text[bodyStart:]
	body = strings.TrimSpace(body)

	return h, body, nil
}

// Phrase is one reference line: the expected words, the concatenated input
// built from them, and the rune offsets in Input where words end.
// The final offset (len(Input)) is not listed.
type Phrase struct {
	Words      []string
	Input      string
	Boundaries []int
}

// NewPhrase builds a Phrase from a reference line. Each whitespace separated
// field is cleaned like splitter input; fields that clean to nothing are
// dropped. Returns false when no words remain.
func NewPhrase(line string) (Phrase, bool) {
	var p Phrase
	var input strings.Builder
	offset := 0
	for _, field := range strings.Fields(line) {
		word := lexicon.Clean(field)
		if word == "" {
			continue
		}
		if len(p.Words) > 0 {
			p.Boundaries = append(p.Boundaries, offset)
		}
		p.Words = append(p.Words, word)
		input.WriteString(word)
		offset += utf8.RuneCountInString(word)
	}
	if len(p.Words) == 0 {
		return Phrase{}, false
	}
	p.Input = input.String()
	return p, true
}

// ParsePhrases returns one Phrase per non-empty body line.
func ParsePhrases(body string) []Phrase {
	var phrases []Phrase
	for _, line := range strings.Split(body, "\n") {
		if p, ok := NewPhrase(line); ok {
			phrases = append(phrases, p)
		}
	}
	return phrases
}

// Document represents a loaded corpus file.
type Document struct {
	ID      string // filename without extension
	Source  string
	Title   string
	Phrases []Phrase
}

// LoadDocument loads and parses a corpus file.
func LoadDocument(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	header, body, err := ParseHeader(string(data))
	if err != nil {
		return nil, fmt.Errorf("parse header: %w", err)
	}

	base := filepath.Base(path)
	id := strings.TrimSuffix(base, filepath.Ext(base))

	return &Document{
		ID:      id,
		Source:  header.Source,
		Title:   header.Title,
		Phrases: ParsePhrases(body),
	}, nil
}

// LoadCorpus loads all .txt corpus files from a directory.
func LoadCorpus(dir string) ([]*Document, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read dir: %w", err)
	}

	var docs []*Document
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if filepath.Ext(entry.Name()) != ".txt" {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		doc, err := LoadDocument(path)
		if err != nil {
			return nil, fmt.Errorf("loading %s: %w", entry.Name(), err)
		}
		docs = append(docs, doc)
	}

	return docs, nil
}
