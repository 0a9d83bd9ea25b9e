package dictionary

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
)

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad_Gzip(t *testing.T) {
	words := []string{"the", "of", "and", "to"}
	var buf bytes.Buffer
	if err := WriteGzip(&buf, words); err != nil {
		t.Fatalf("WriteGzip failed: %v", err)
	}
	path := writeFile(t, "words.txt.gz", buf.Bytes())

	list, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if list.Format != FormatGzip {
		t.Errorf("expected gzip format, got %v", list.Format)
	}
	if !slices.Equal(list.Words, words) {
		t.Errorf("words = %q, want %q", list.Words, words)
	}
}

func TestLoad_PlainFallback(t *testing.T) {
	path := writeFile(t, "words.txt.gz", []byte("the of\nand\t to\n\n  in \n"))

	list, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if list.Format != FormatPlain {
		t.Errorf("expected plain format, got %v", list.Format)
	}
	want := []string{"the", "of", "and", "to", "in"}
	if !slices.Equal(list.Words, want) {
		t.Errorf("words = %q, want %q", list.Words, want)
	}
}

func TestLoad_KeepsDuplicates(t *testing.T) {
	path := writeFile(t, "words.txt", []byte("a b a c"))

	list, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(list.Words) != 4 {
		t.Errorf("expected 4 words, got %q", list.Words)
	}
}

func TestLoad_NotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nonexistent.txt.gz"))
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestLoad_NoWords(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"empty file", ""},
		{"whitespace only", " \n\t\n  "},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := writeFile(t, "words.txt", []byte(tc.data))
			_, err := Load(path)
			if !errors.Is(err, ErrNoWords) {
				t.Errorf("expected ErrNoWords, got %v", err)
			}
		})
	}
}

func TestLoad_Directory(t *testing.T) {
	_, err := Load(t.TempDir())
	if err == nil {
		t.Fatal("expected error for directory")
	}
	if errors.Is(err, ErrNotFound) || errors.Is(err, ErrNoWords) {
		t.Errorf("expected a read error, got %v", err)
	}
}

func TestLoad_Snapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words"+SnapshotExt)
	want := Snapshot{Name: "test", Words: []string{"the", "of", "and"}}
	if err := WriteSnapshot(path, want); err != nil {
		t.Fatalf("WriteSnapshot failed: %v", err)
	}

	list, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if list.Format != FormatSnapshot {
		t.Errorf("expected snapshot format, got %v", list.Format)
	}
	if !slices.Equal(list.Words, want.Words) {
		t.Errorf("words = %q, want %q", list.Words, want.Words)
	}
}

func TestLoad_EmptySnapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty"+SnapshotExt)
	if err := WriteSnapshot(path, Snapshot{Name: "empty"}); err != nil {
		t.Fatalf("WriteSnapshot failed: %v", err)
	}

	_, err := Load(path)
	if !errors.Is(err, ErrNoWords) {
		t.Errorf("expected ErrNoWords, got %v", err)
	}
}

func TestTokenize(t *testing.T) {
	got, err := Tokenize(strings.NewReader("one two\r\nthree\n\nfour   five"))
	if err != nil {
		t.Fatalf("Tokenize failed: %v", err)
	}
	want := []string{"one", "two", "three", "four", "five"}
	if !slices.Equal(got, want) {
		t.Errorf("Tokenize = %q, want %q", got, want)
	}
}

func TestFormat_String(t *testing.T) {
	tests := []struct {
		format Format
		want   string
	}{
		{FormatGzip, "gzip"},
		{FormatPlain, "plain"},
		{FormatSnapshot, "snapshot"},
		{Format(42), "unknown"},
	}
	for _, tc := range tests {
		if got := tc.format.String(); got != tc.want {
			t.Errorf("Format(%d).String() = %q, want %q", int(tc.format), got, tc.want)
		}
	}
}
