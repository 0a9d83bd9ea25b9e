package wordninja

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/jamesainslie/go-wordninja/lexicon"
)

// newDefault creates a Splitter over the bundled dictionary.
func newDefault(t *testing.T, opts ...Option) *Splitter {
	t.Helper()
	s, err := New("", opts...)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestNew(t *testing.T) {
	s := newDefault(t)

	if s.model == nil {
		t.Error("expected non-nil model")
	}
	if s.pool == nil {
		t.Error("expected non-nil pool")
	}
	if s.cache != nil {
		t.Error("expected cache disabled by default")
	}

	stats := s.Stats()
	if stats.Words < 1000 {
		t.Errorf("expected at least 1000 words, got %d", stats.Words)
	}
	if stats.MaxWordLen <= 0 {
		t.Errorf("expected positive max word length, got %d", stats.MaxWordLen)
	}
}

func TestNew_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	if err := os.WriteFile(path, []byte("the\ncat\nsat\non\na\nmat\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := New(path)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	defer func() { _ = s.Close() }()

	got, err := s.Split(context.Background(), "TheCatSatOnAMat")
	if err != nil {
		t.Fatalf("Split failed: %v", err)
	}
	if want := "the cat sat on a mat"; got != want {
		t.Errorf("Split = %q, want %q", got, want)
	}
}

func TestNew_DictionaryNotFound(t *testing.T) {
	_, err := New("nonexistent/words.txt.gz")
	if err == nil {
		t.Fatal("expected error for nonexistent dictionary")
	}
	if !errors.Is(err, ErrDictionaryNotFound) {
		t.Errorf("expected ErrDictionaryNotFound, got: %v", err)
	}
}

func TestNew_DictionaryEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.txt")
	if err := os.WriteFile(path, []byte("\n\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := New(path)
	if !errors.Is(err, ErrDictionaryEmpty) {
		t.Errorf("expected ErrDictionaryEmpty, got: %v", err)
	}
}

func TestNew_DictionaryUnreadable(t *testing.T) {
	_, err := New(t.TempDir())
	if !errors.Is(err, ErrDictionaryLoad) {
		t.Errorf("expected ErrDictionaryLoad, got: %v", err)
	}
}

func TestNewFromWords_Empty(t *testing.T) {
	_, err := NewFromWords(nil)
	if !errors.Is(err, ErrDictionaryEmpty) {
		t.Errorf("expected ErrDictionaryEmpty, got: %v", err)
	}
}

func TestNewFromWords_TooLarge(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping: builds a large dictionary")
	}

	words := make([]string, lexicon.MaxWords+1)
	for i := range words {
		words[i] = "w" + strconv.Itoa(i)
	}

	_, err := NewFromWords(words)
	if !errors.Is(err, ErrDictionaryTooLarge) {
		t.Errorf("expected ErrDictionaryTooLarge, got: %v", err)
	}
}

func TestNew_WithOptions(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))

	s := newDefault(t,
		WithPoolSize(2),
		WithCacheSize(16),
		WithLogger(logger),
	)

	if s.pool.Size() != 2 {
		t.Errorf("expected pool size 2, got %d", s.pool.Size())
	}
	if s.cache == nil {
		t.Error("expected cache enabled")
	}
	if !strings.Contains(logs.String(), "dictionary loaded") {
		t.Errorf("expected load to be logged, got %q", logs.String())
	}
}

func TestSplitter_Split(t *testing.T) {
	s := newDefault(t)

	tests := []struct {
		input string
		want  string
	}{
		{"thisisastring", "this is a string"},
		{"thequickbrownfoxjumpsover1978thelazydog", "the quick brown fox jumps over 1978 the lazy dog"},
		{"denythyfatherandrefusethyname", "deny thy father and refuse thy name"},
		{"This Is A String!", "this is a string"},
		{"wikipediaisafreeencyclopedia", "wikipedia is a free encyclopedia"},
		{"hellotheremyfriend", "hello there my friend"},
		{"HelloWorld,HowAreYouTodayMyFriend?", "hello world how are you today my friend"},
		{"waterboilsat100degrees", "water boils at 100 degrees"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := s.Split(context.Background(), tt.input)
			if err != nil {
				t.Fatalf("Split failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("Split(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSplitter_Split_Sentences(t *testing.T) {
	tests := []struct {
		name      string
		sentences []string
	}{
		{
			name: "prologue",
			sentences: []string{
				"From ancient grudge break to new mutiny",
				"From forth the fatal loins of these two foes",
				"A pair of star crossed lovers take their life",
				"Doth with their death bury their parents strife",
				"The fearful passage of their death marked love",
				"And the continuance of their parents rage",
				"Is now the two hours traffic of our stage",
				"The which if you with patient ears attend",
				"O Romeo Romeo wherefore art thou Romeo",
				"Deny thy father and refuse thy name",
				"Or if thou wilt not be but sworn my love",
				"My only love sprung from my only hate",
				"Too early seen unknown and known too late",
			},
		},
		{
			name: "general",
			sentences: []string{
				"It was the best of times it was the worst of times",
				"The United States of America",
				"Machine learning is a field of artificial intelligence",
				"I want to buy a new computer",
				"To be or not to be that is the question",
				"A journey of a thousand miles begins with a single step",
				"The stock market fell sharply on Monday",
			},
		},
	}

	s := newDefault(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, sentence := range tt.sentences {
				want := strings.ToLower(sentence)
				input := strings.ReplaceAll(want, " ", "")

				got, err := s.Split(context.Background(), input)
				if err != nil {
					t.Fatalf("Split(%q) failed: %v", input, err)
				}
				if got != want {
					t.Errorf("Split(%q) = %q, want %q", input, got, want)
				}
			}
		})
	}
}

func TestSplitter_Split_InvalidInput(t *testing.T) {
	s := newDefault(t)

	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"too long", strings.Repeat("a", MaxInputLength+1)},
		{"nothing left after cleaning", "?! -- ..."},
		{"whitespace only", "   "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.Split(context.Background(), tt.input)
			if !errors.Is(err, ErrInvalidInput) {
				t.Errorf("expected ErrInvalidInput, got: %v", err)
			}
			if got != "" {
				t.Errorf("expected no partial result, got %q", got)
			}
		})
	}
}

func TestSplitter_Split_MaxLength(t *testing.T) {
	s := newDefault(t)

	input := strings.Repeat("thisisastring", MaxInputLength/13) + strings.Repeat("a", MaxInputLength%13)
	if len([]rune(input)) != MaxInputLength {
		t.Fatalf("test input has %d runes", len([]rune(input)))
	}

	got, err := s.Split(context.Background(), input)
	if err != nil {
		t.Fatalf("Split failed for input of exactly %d characters: %v", MaxInputLength, err)
	}
	if strings.ReplaceAll(got, " ", "") != input {
		t.Error("expected split to reconstruct the input")
	}
}

func TestSplitter_Split_Lossless(t *testing.T) {
	s := newDefault(t)
	rng := rand.New(rand.NewSource(7))
	alphabet := []rune("abcdefghijklmnopqrstuvwxyzABC0123456789' -.!é")

	for n := 0; n < 200; n++ {
		runes := make([]rune, 1+rng.Intn(120))
		for i := range runes {
			runes[i] = alphabet[rng.Intn(len(alphabet))]
		}
		input := string(runes)

		cleaned := lexicon.Clean(input)
		got, err := s.Split(context.Background(), input)
		if cleaned == "" {
			if !errors.Is(err, ErrInvalidInput) {
				t.Errorf("Split(%q): expected ErrInvalidInput, got %v", input, err)
			}
			continue
		}
		if err != nil {
			t.Fatalf("Split(%q) failed: %v", input, err)
		}
		if got == "" {
			t.Fatalf("Split(%q) returned empty output", input)
		}
		if joined := strings.ReplaceAll(got, " ", ""); joined != cleaned {
			t.Fatalf("Split(%q) = %q, does not reconstruct %q", input, got, cleaned)
		}
	}
}

func TestSplitter_Split_LosslessUnicode(t *testing.T) {
	s := newDefault(t)
	rng := rand.New(rand.NewSource(11))
	// İ lowercases to two runes; ß, Σ and the CJK and Cyrillic letters are
	// absent from the dictionary.
	alphabet := []rune("abcxyzİIıßΣσςЖжñÅ漢字か9٣'")

	for n := 0; n < 100; n++ {
		runes := make([]rune, 1+rng.Intn(400))
		for i := range runes {
			runes[i] = alphabet[rng.Intn(len(alphabet))]
		}
		input := string(runes)
		cleaned := lexicon.Clean(input)

		words, err := s.SplitWords(context.Background(), input)
		if err != nil {
			t.Fatalf("SplitWords(%q) failed: %v", input, err)
		}
		for _, w := range words {
			if w == "" {
				t.Fatalf("SplitWords(%q) returned an empty word", input)
			}
		}
		if joined := strings.Join(words, ""); joined != cleaned {
			t.Fatalf("SplitWords(%q) = %q, does not reconstruct %q", input, words, cleaned)
		}
	}
}

func TestSplitter_Split_Deterministic(t *testing.T) {
	input := "thequickbrownfoxjumpsover1978thelazydog"

	first, err := newDefault(t).Split(context.Background(), input)
	if err != nil {
		t.Fatalf("Split failed: %v", err)
	}
	for i := 0; i < 5; i++ {
		got, err := newDefault(t).Split(context.Background(), input)
		if err != nil {
			t.Fatalf("Split failed: %v", err)
		}
		if got != first {
			t.Fatalf("run %d: got %q, first run %q", i, got, first)
		}
	}
}

func TestSplitter_SplitWords_Cache(t *testing.T) {
	s := newDefault(t, WithCacheSize(4))
	ctx := context.Background()

	words, err := s.SplitWords(ctx, "thisisastring")
	if err != nil {
		t.Fatalf("SplitWords failed: %v", err)
	}
	words[0] = "mutated"

	again, err := s.SplitWords(ctx, "This is a string")
	if err != nil {
		t.Fatalf("SplitWords failed: %v", err)
	}
	if strings.Join(again, " ") != "this is a string" {
		t.Errorf("cached result was modified: %q", again)
	}
	if s.cache.Len() != 1 {
		t.Errorf("expected 1 cached entry, got %d", s.cache.Len())
	}
}

func TestSplitter_ContextCancelled(t *testing.T) {
	s := newDefault(t, WithPoolSize(1))

	// Hold the only buffer so Split has to wait.
	buf, err := s.pool.Acquire(context.Background())
	if err != nil {
		t.Fatalf("Acquire failed: %v", err)
	}
	defer s.pool.Release(buf)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = s.Split(ctx, "thisisastring")
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got: %v", err)
	}
}

func TestSplitter_Concurrent(t *testing.T) {
	s := newDefault(t, WithPoolSize(2), WithCacheSize(8))

	inputs := map[string]string{
		"thisisastring":                 "this is a string",
		"denythyfatherandrefusethyname": "deny thy father and refuse thy name",
		"mylovesprungfrommyonlyhate":    "my love sprung from my only hate",
	}

	var wg sync.WaitGroup
	errs := make(chan error, 64)
	for i := 0; i < 16; i++ {
		for input, want := range inputs {
			wg.Add(1)
			go func(input, want string) {
				defer wg.Done()
				got, err := s.Split(context.Background(), input)
				if err != nil {
					errs <- err
					return
				}
				if got != want {
					errs <- errors.New(input + ": got " + got)
				}
			}(input, want)
		}
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Error(err)
	}
}

func TestSplitter_Close(t *testing.T) {
	s, err := New("")
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	if err := s.Close(); err != nil {
		t.Errorf("Close() failed: %v", err)
	}

	// Double close should not fail
	if err := s.Close(); err != nil {
		t.Errorf("second Close() failed: %v", err)
	}

	if _, err := s.Split(context.Background(), "thisisastring"); !errors.Is(err, ErrClosed) {
		t.Errorf("expected ErrClosed, got: %v", err)
	}
}
