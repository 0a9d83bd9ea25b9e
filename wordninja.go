package wordninja

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync/atomic"
	"unicode/utf8"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/jamesainslie/go-wordninja/dictionary"
	"github.com/jamesainslie/go-wordninja/internal/scratch"
	"github.com/jamesainslie/go-wordninja/lexicon"
)

// Splitter splits concatenated words against one dictionary.
// It is safe for concurrent use.
type Splitter struct {
	model  *lexicon.Model
	pool   *scratch.Pool
	cache  *lru.Cache[string, []string]
	logger *slog.Logger
	closed atomic.Bool
}

// Stats describes the loaded dictionary.
type Stats struct {
	Words      int // distinct words
	MaxWordLen int // longest word, in runes
}

// New creates a Splitter from the dictionary file at dictionaryPath, or from
// the bundled English dictionary when dictionaryPath is empty.
func New(dictionaryPath string, opts ...Option) (*Splitter, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	list, err := loadList(dictionaryPath)
	if err != nil {
		return nil, err
	}

	model, err := buildModel(list.Words)
	if err != nil {
		return nil, err
	}

	source := dictionaryPath
	if source == "" {
		source = dictionary.DefaultName
	}
	cfg.logger.Debug("dictionary loaded",
		"source", source,
		"format", list.Format.String(),
		"words", model.Len(),
		"max_word_len", model.MaxWordLen(),
	)

	return newSplitter(model, cfg)
}

// NewFromWords creates a Splitter from an in-memory word list ordered from
// most to least frequent.
func NewFromWords(words []string, opts ...Option) (*Splitter, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	model, err := buildModel(words)
	if err != nil {
		return nil, err
	}
	return newSplitter(model, cfg)
}

func newSplitter(model *lexicon.Model, cfg config) (*Splitter, error) {
	s := &Splitter{
		model:  model,
		pool:   scratch.NewPool(cfg.poolSize, MaxInputLength+1),
		logger: cfg.logger,
	}

	if cfg.cacheSize > 0 {
		cache, err := lru.New[string, []string](cfg.cacheSize)
		if err != nil {
			_ = s.pool.Close()
			return nil, fmt.Errorf("creating result cache: %w", err)
		}
		s.cache = cache
	}

	return s, nil
}

func loadList(path string) (*dictionary.List, error) {
	var (
		list *dictionary.List
		err  error
	)
	if path == "" {
		list, err = dictionary.Default()
	} else {
		list, err = dictionary.Load(path)
	}
	if err == nil {
		return list, nil
	}

	switch {
	case errors.Is(err, dictionary.ErrNotFound):
		return nil, fmt.Errorf("%w: %s", ErrDictionaryNotFound, path)
	case errors.Is(err, dictionary.ErrNoWords):
		return nil, fmt.Errorf("%w: %w", ErrDictionaryEmpty, err)
	default:
		return nil, fmt.Errorf("%w: %w", ErrDictionaryLoad, err)
	}
}

func buildModel(words []string) (*lexicon.Model, error) {
	model, err := lexicon.New(words)
	switch {
	case err == nil:
		return model, nil
	case errors.Is(err, lexicon.ErrEmpty):
		return nil, fmt.Errorf("%w: %w", ErrDictionaryEmpty, err)
	case errors.Is(err, lexicon.ErrTooLarge):
		return nil, fmt.Errorf("%w: %w", ErrDictionaryTooLarge, err)
	default:
		return nil, fmt.Errorf("%w: %w", ErrDictionaryLoad, err)
	}
}

// Split returns text split into dictionary words joined by single spaces.
// The words are taken from the cleaned input: lowercased, with everything
// but letters, digits and apostrophes removed.
func (s *Splitter) Split(ctx context.Context, text string) (string, error) {
	words, err := s.SplitWords(ctx, text)
	if err != nil {
		return "", err
	}
	return strings.Join(words, " "), nil
}

// SplitWords is like Split but returns the words.
func (s *Splitter) SplitWords(ctx context.Context, text string) ([]string, error) {
	if s.closed.Load() {
		return nil, ErrClosed
	}

	cleaned, err := prepare(text)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if words, ok := s.cache.Get(cleaned); ok {
			return slices.Clone(words), nil
		}
	}

	buf, err := s.pool.Acquire(ctx)
	if err != nil {
		if errors.Is(err, scratch.ErrPoolClosed) {
			return nil, ErrClosed
		}
		return nil, err
	}
	defer s.pool.Release(buf)

	words := s.model.SplitBuffer(cleaned, buf.Costs(utf8.RuneCountInString(cleaned)+1))

	if s.cache != nil {
		s.cache.Add(cleaned, slices.Clone(words))
	}
	return words, nil
}

// Stats returns statistics about the loaded dictionary.
func (s *Splitter) Stats() Stats {
	return Stats{
		Words:      s.model.Len(),
		MaxWordLen: s.model.MaxWordLen(),
	}
}

// Close releases pooled buffers and the result cache. Split fails with
// ErrClosed afterwards. Close is idempotent.
func (s *Splitter) Close() error {
	if !s.closed.CompareAndSwap(false, true) {
		return nil
	}

	if s.cache != nil {
		s.cache.Purge()
	}
	return s.pool.Close()
}
