package tokenizer

import (
	"strings"

	prose "github.com/jdkato/prose/v2"
)

func init() {
	Register("eng", func() Tokenizer { return NewProse() })
}

// Prose tokenizes with the prose NLP library. prose discards whitespace, so
// the token stream is realigned against the source sentence and the gaps
// between consecutive tokens are re-emitted as whitespace pieces.
type Prose struct {
	fallback *Segmenter
}

// NewProse creates a prose-backed tokenizer.
func NewProse() *Prose {
	return &Prose{fallback: NewSegmenter()}
}

// Tokenize splits a sentence with prose. If prose fails, or its token stream
// cannot be realigned against the sentence, the default segmenter handles
// the whole sentence instead so the reconstruction contract holds.
func (p *Prose) Tokenize(sentence string) []string {
	if sentence == "" {
		return nil
	}

	doc, err := prose.NewDocument(sentence,
		prose.WithSegmentation(false),
		prose.WithTagging(false),
		prose.WithExtraction(false))
	if err != nil {
		return p.fallback.Tokenize(sentence)
	}

	tokens := make([]string, 0, len(doc.Tokens()))
	for _, tok := range doc.Tokens() {
		tokens = append(tokens, tok.Text)
	}
	pieces, ok := align(sentence, tokens)
	if !ok {
		return p.fallback.Tokenize(sentence)
	}
	return pieces
}

// align re-inserts the text between consecutive tokens as whitespace pieces.
// It reports false when a token cannot be located in order, or when a gap
// contains a non-whitespace rune: such a gap means the tokenizer rewrote or
// dropped part of the sentence, and emitting it as a piece would hand a
// pseudo-token to the frequency counter.
func align(sentence string, tokens []string) ([]string, bool) {
	var pieces []string
	rest := sentence
	for _, tok := range tokens {
		i := strings.Index(rest, tok)
		if i < 0 {
			return nil, false
		}
		if gap := rest[:i]; gap != "" {
			if strings.TrimSpace(gap) != "" {
				return nil, false
			}
			pieces = append(pieces, gap)
		}
		pieces = append(pieces, tok)
		rest = rest[i+len(tok):]
	}
	if rest != "" {
		if strings.TrimSpace(rest) != "" {
			return nil, false
		}
		pieces = append(pieces, rest)
	}
	return pieces, true
}
