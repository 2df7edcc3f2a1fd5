package internalerr

import "errors"

// Sentinel errors for common cases
var (
	ErrUnknownLanguage = errors.New("unknown language")
	ErrMalformedLine   = errors.New("malformed line")
	ErrEmptyLexicon    = errors.New("empty lexicon")
	ErrInvalidConfig   = errors.New("invalid configuration")
)
