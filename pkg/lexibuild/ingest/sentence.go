package ingest

import (
	"encoding/json"
	"strconv"
)

// Sentence is one ingested corpus sentence and its token sequence. It is
// built once per input line and written out immediately; the pipeline does
// not retain sentences.
type Sentence struct {
	ID     int64
	HasID  bool
	Text   string
	Tokens []string
}

// Equal reports whether two sentences are interchangeable for counting and
// deduplication purposes. Identity is the cleaned text alone.
func (s Sentence) Equal(other Sentence) bool {
	return s.Text == other.Text
}

// Row returns the accepted-sentence output row. Tokens are encoded as a
// JSON array so that order and empty strings survive losslessly.
func (s Sentence) Row() ([]string, error) {
	tokens := s.Tokens
	if tokens == nil {
		tokens = []string{}
	}
	encoded, err := json.Marshal(tokens)
	if err != nil {
		return nil, err
	}
	if !s.HasID {
		return []string{s.Text, string(encoded)}, nil
	}
	return []string{strconv.FormatInt(s.ID, 10), s.Text, string(encoded)}, nil
}
