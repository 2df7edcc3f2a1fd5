package tokenizer

import (
	"strings"
	"unicode"
)

// Segmenter is the default tokenizer: a rune-class scanner. Maximal runs of
// letters, digits, and combining marks form tokens; maximal runs of spaces
// form whitespace pieces; every other rune becomes a single-rune token.
type Segmenter struct{}

// NewSegmenter creates the default tokenizer.
func NewSegmenter() *Segmenter {
	return &Segmenter{}
}

// Tokenize splits a sentence into token and whitespace pieces whose
// concatenation reproduces the input.
func (s *Segmenter) Tokenize(sentence string) []string {
	var pieces []string
	var current strings.Builder
	inSpace := false

	flush := func() {
		if current.Len() > 0 {
			pieces = append(pieces, current.String())
			current.Reset()
		}
	}

	for _, r := range sentence {
		switch {
		case unicode.IsSpace(r):
			if !inSpace {
				flush()
				inSpace = true
			}
			current.WriteRune(r)
		case unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsMark(r):
			if inSpace {
				flush()
				inSpace = false
			}
			current.WriteRune(r)
		default:
			flush()
			inSpace = false
			pieces = append(pieces, string(r))
		}
	}
	flush()

	return pieces
}
