package wordninja

import "errors"

// Sentinel errors for conditions callers may need to handle differently.
var (
	// ErrInvalidInput indicates empty input, input longer than MaxInputLength,
	// or input with no letters, digits or apostrophes.
	ErrInvalidInput = errors.New("wordninja: invalid input")

	// ErrDictionaryNotFound indicates the dictionary file does not exist.
	ErrDictionaryNotFound = errors.New("wordninja: dictionary file not found")

	// ErrDictionaryEmpty indicates the dictionary decoded to zero words.
	ErrDictionaryEmpty = errors.New("wordninja: no words loaded")

	// ErrDictionaryTooLarge indicates more distinct words than lexicon.MaxWords.
	ErrDictionaryTooLarge = errors.New("wordninja: dictionary too large")

	// ErrDictionaryLoad indicates the dictionary exists but cannot be read or decoded.
	ErrDictionaryLoad = errors.New("wordninja: cannot load dictionary")

	// ErrClosed indicates use of a closed Splitter.
	ErrClosed = errors.New("wordninja: splitter closed")
)
