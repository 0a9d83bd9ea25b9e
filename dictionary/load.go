// Package dictionary reads ranked word lists: gzip-compressed or plain text
// files with whitespace separated words ordered from most to least frequent,
// and binary snapshots of such lists.
package dictionary

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
)

// Sentinel errors for conditions callers may need to handle differently.
var (
	// ErrNotFound indicates the dictionary file does not exist.
	ErrNotFound = errors.New("dictionary: file not found")

	// ErrNoWords indicates the source decoded to zero words.
	ErrNoWords = errors.New("dictionary: no words loaded")
)

// Format identifies how a word list was decoded.
type Format int

const (
	// FormatGzip is a gzip-compressed text list.
	FormatGzip Format = iota

	// FormatPlain is an uncompressed text list.
	FormatPlain

	// FormatSnapshot is a binary snapshot (see EncodeSnapshot).
	FormatSnapshot
)

func (f Format) String() string {
	switch f {
	case FormatGzip:
		return "gzip"
	case FormatPlain:
		return "plain"
	case FormatSnapshot:
		return "snapshot"
	default:
		return "unknown"
	}
}

// List is a ranked word list, most frequent first. Words may repeat.
type List struct {
	Words  []string
	Format Format
}

// Load reads the word list at path. Files ending in SnapshotExt are decoded
// as snapshots; anything else is tried as gzip first and read as plain text
// when decompression fails or yields no words.
func Load(path string) (*List, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("reading dictionary: %w", err)
	}

	if filepath.Ext(path) == SnapshotExt {
		snap, err := DecodeSnapshot(data)
		if err != nil {
			return nil, err
		}
		if len(snap.Words) == 0 {
			return nil, fmt.Errorf("%w: %s", ErrNoWords, path)
		}
		return &List{Words: snap.Words, Format: FormatSnapshot}, nil
	}

	list, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", err, path)
	}
	return list, nil
}

// Parse decodes an in-memory word list, gzip first with a plain text fallback.
func Parse(data []byte) (*List, error) {
	if words, err := readGzip(data); err == nil && len(words) > 0 {
		return &List{Words: words, Format: FormatGzip}, nil
	}

	words, err := Tokenize(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("reading plain text: %w", err)
	}
	if len(words) == 0 {
		return nil, ErrNoWords
	}
	return &List{Words: words, Format: FormatPlain}, nil
}

func readGzip(data []byte) ([]string, error) {
	zr, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer func() { _ = zr.Close() }()

	return Tokenize(zr)
}

// maxLineLen bounds a single dictionary line.
const maxLineLen = 1 << 20

// Tokenize returns the whitespace separated words of r in order.
func Tokenize(r io.Reader) ([]string, error) {
	var words []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineLen)
	for scanner.Scan() {
		words = append(words, strings.Fields(scanner.Text())...)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan words: %w", err)
	}
	return words, nil
}

// WriteGzip writes words one per line as a gzip stream.
func WriteGzip(w io.Writer, words []string) error {
	zw, err := gzip.NewWriterLevel(w, gzip.BestCompression)
	if err != nil {
		return fmt.Errorf("creating gzip writer: %w", err)
	}

	bw := bufio.NewWriter(zw)
	for _, word := range words {
		if _, err := bw.WriteString(word); err != nil {
			_ = zw.Close()
			return fmt.Errorf("writing word: %w", err)
		}
		if err := bw.WriteByte('\n'); err != nil {
			_ = zw.Close()
			return fmt.Errorf("writing word: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		_ = zw.Close()
		return fmt.Errorf("flushing words: %w", err)
	}
	return zw.Close()
}
