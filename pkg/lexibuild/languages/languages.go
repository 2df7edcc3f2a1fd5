// Package languages defines the per-language profiles used to decide which
// corpus tokens count as words of the target language.
package languages

import (
	"fmt"
	"sort"

	"golang.org/x/text/language"

	"github.com/lexibuild/lexibuild/pkg/lexibuild/internalerr"
)

// Language describes one corpus language: its identity tags plus the
// character sets backing the word-validity rule.
type Language struct {
	Code string       // ISO 639-3 code, the registry key
	Name string       // display name, pass-through metadata
	Tag  language.Tag // BCP 47 tag, pass-through metadata

	alphabet map[rune]struct{}
	symbols  map[rune]struct{}
}

// New builds a profile from alphabet and symbol strings. Alphabet runes may
// start a word and are always acceptable; symbol runes are acceptable only
// after the first rune.
func New(code, name string, tag language.Tag, alphabet, symbols string) Language {
	return Language{
		Code:     code,
		Name:     name,
		Tag:      tag,
		alphabet: runeSet(alphabet),
		symbols:  runeSet(symbols),
	}
}

// IsWord reports whether a token is a word of the language: non-empty,
// first rune in the alphabet, every rune in the alphabet or symbol set.
func (l Language) IsWord(token string) bool {
	if token == "" {
		return false
	}
	first := true
	for _, r := range token {
		if _, ok := l.alphabet[r]; ok {
			first = false
			continue
		}
		if first {
			return false
		}
		if _, ok := l.symbols[r]; !ok {
			return false
		}
	}
	return true
}

func runeSet(s string) map[rune]struct{} {
	set := make(map[rune]struct{}, len(s))
	for _, r := range s {
		set[r] = struct{}{}
	}
	return set
}

// Get looks up a built-in language profile by ISO 639-3 code.
func Get(code string) (Language, error) {
	lang, ok := registry[code]
	if !ok {
		return Language{}, fmt.Errorf("%w: %q", internalerr.ErrUnknownLanguage, code)
	}
	return lang, nil
}

// Resolve looks up a profile by code, preferring extra profiles over the
// built-in table. Extra profiles typically come from a config overlay.
func Resolve(code string, extra []Language) (Language, error) {
	for _, lang := range extra {
		if lang.Code == code {
			return lang, nil
		}
	}
	return Get(code)
}

// Codes returns the built-in language codes in sorted order.
func Codes() []string {
	codes := make([]string, 0, len(registry))
	for code := range registry {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}
