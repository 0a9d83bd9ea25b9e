package wordninja

import (
	"context"
	"path/filepath"
	"sync"

	"golang.org/x/sync/singleflight"
)

// defaultRegistry backs the package-level Split and SplitFile.
var defaultRegistry = newRegistry()

// registry memoizes one Splitter per dictionary path. A path is loaded at
// most once at a time; a failed load leaves nothing behind, so the next call
// retries from scratch.
type registry struct {
	mu        sync.RWMutex
	splitters map[string]*Splitter
	group     singleflight.Group
	opts      []Option
}

func newRegistry(opts ...Option) *registry {
	return &registry{
		splitters: make(map[string]*Splitter),
		opts:      opts,
	}
}

func (r *registry) get(path string) (*Splitter, error) {
	if path != "" {
		path = filepath.Clean(path)
	}

	r.mu.RLock()
	s, ok := r.splitters[path]
	r.mu.RUnlock()
	if ok {
		return s, nil
	}

	v, err, _ := r.group.Do(path, func() (any, error) {
		r.mu.RLock()
		s, ok := r.splitters[path]
		r.mu.RUnlock()
		if ok {
			return s, nil
		}

		s, err := New(path, r.opts...)
		if err != nil {
			return nil, err
		}

		r.mu.Lock()
		r.splitters[path] = s
		r.mu.Unlock()
		return s, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Splitter), nil
}

// reset closes and forgets every memoized Splitter. It must not run
// concurrently with Split or SplitFile: callers already holding a Splitter
// would fail with ErrClosed.
func (r *registry) reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	for path, s := range r.splitters {
		_ = s.Close()
		delete(r.splitters, path)
	}
}

// Split splits text with the bundled English dictionary.
func Split(text string) (string, error) {
	return SplitFile(text, "")
}

// SplitFile splits text with the dictionary at dictionaryPath, loading it on
// first use. An empty path selects the bundled dictionary.
func SplitFile(text, dictionaryPath string) (string, error) {
	// Input errors take precedence over dictionary errors.
	if _, err := prepare(text); err != nil {
		return "", err
	}

	s, err := defaultRegistry.get(dictionaryPath)
	if err != nil {
		return "", err
	}
	return s.Split(context.Background(), text)
}
