// Package tokenizer defines the language-specific tokenization boundary.
//
// A tokenizer splits a sentence into an ordered sequence of token and
// whitespace pieces. The one hard requirement is losslessness:
// concatenating the returned pieces must reproduce the input exactly.
// Empty whitespace pieces are omitted rather than emitted as "".
package tokenizer

// Tokenizer splits a sentence into token and whitespace pieces.
type Tokenizer interface {
	Tokenize(sentence string) []string
}

// Factory constructs a tokenizer for one language.
type Factory func() Tokenizer

var factories = map[string]Factory{}

// Register associates a tokenizer factory with an ISO 639-3 language code,
// replacing any previous registration.
func Register(code string, f Factory) {
	factories[code] = f
}

// New returns the tokenizer registered for the language code, or the
// default segmenter when no language-specific tokenizer exists. Language
// validity is gated by the profile registry, not by tokenizer availability.
func New(code string) Tokenizer {
	if f, ok := factories[code]; ok {
		return f()
	}
	return NewSegmenter()
}
