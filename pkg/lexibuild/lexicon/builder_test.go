package lexicon

import (
	"bytes"
	"encoding/csv"
	"errors"
	"reflect"
	"strings"
	"testing"

	"golang.org/x/text/language"

	"github.com/lexibuild/lexibuild/pkg/lexibuild/freq"
	"github.com/lexibuild/lexibuild/pkg/lexibuild/internalerr"
	"github.com/lexibuild/lexibuild/pkg/lexibuild/languages"
)

func testLanguage() languages.Language {
	return languages.New("tst", "Test", language.Make("en"), "abc", "-")
}

func addN(c *freq.Counter, word string, n int) {
	for i := 0; i < n; i++ {
		c.Add([]string{word})
	}
}

func TestFrequencyClass(t *testing.T) {
	cases := []struct {
		count, max int64
		want       int
	}{
		{10, 10, 0}, // the most frequent word is always class 0
		{5, 10, 1},  // floor(0.5 - log2(0.5)) = floor(1.5) = 1
		{1, 10, 3},  // floor(0.5 + log2(10)) = floor(3.82)
		{3, 4, 0},
		{1, 2, 1},
		{1, 1, 0},
		{7, 10, 1},
		{71, 100, 0},
	}
	for _, c := range cases {
		if got := FrequencyClass(c.count, c.max); got != c.want {
			t.Errorf("FrequencyClass(%d, %d): expected %d, got %d", c.count, c.max, c.want, got)
		}
	}
}

func TestWriteLexicon(t *testing.T) {
	counter := freq.NewCounter()
	addN(counter, "a", 10)
	addN(counter, "b", 5)
	addN(counter, "c", 10)
	addN(counter, "!", 3)  // non-word: not in any set
	addN(counter, "Ab", 2) // non-word: bad first character

	var words, nonwords bytes.Buffer
	builder := NewBuilder(counter, testLanguage())
	if err := builder.WriteLexicon(&words, &nonwords); err != nil {
		t.Fatalf("WriteLexicon: %v", err)
	}

	rows, err := csv.NewReader(&words).ReadAll()
	if err != nil {
		t.Fatalf("Lexicon output is not valid CSV: %v", err)
	}
	want := [][]string{
		{"word", "frequency", "frequency_class"},
		{"a", "10", "0"},
		{"c", "10", "0"},
		{"b", "5", "1"},
	}
	if !reflect.DeepEqual(rows, want) {
		t.Errorf("Expected %v, got %v", want, rows)
	}

	// Rejected tokens are logged raw, in descending-count order.
	if got := nonwords.String(); got != "!\nAb\n" {
		t.Errorf("Expected nonwords log %q, got %q", "!\nAb\n", got)
	}

	// Non-words must be gone from the counter, not zeroed.
	if counter.Len() != 3 {
		t.Errorf("Expected 3 words left in counter, got %d", counter.Len())
	}
	if counter.Count("!") != 0 {
		t.Error("Rejected token should be deleted from the counter")
	}
}

func TestWriteLexiconSingleWord(t *testing.T) {
	counter := freq.NewCounter()
	addN(counter, "ab", 7)

	var words, nonwords bytes.Buffer
	builder := NewBuilder(counter, testLanguage())
	if err := builder.WriteLexicon(&words, &nonwords); err != nil {
		t.Fatalf("WriteLexicon: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(words.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("Expected header + 1 row, got %d lines", len(lines))
	}
	if lines[1] != "ab,7,0" {
		t.Errorf("A single word is its own max count, expected class 0, got %q", lines[1])
	}
}

func TestWriteLexiconEmpty(t *testing.T) {
	counter := freq.NewCounter()
	addN(counter, "!", 4)
	addN(counter, "123", 2)

	var words, nonwords bytes.Buffer
	builder := NewBuilder(counter, testLanguage())
	err := builder.WriteLexicon(&words, &nonwords)
	if err == nil {
		t.Fatal("Expected error when every token is rejected")
	}
	if !errors.Is(err, internalerr.ErrEmptyLexicon) {
		t.Errorf("Expected ErrEmptyLexicon, got %v", err)
	}

	// The nonwords log is still written.
	if got := nonwords.String(); got != "!\n123\n" {
		t.Errorf("Expected nonwords log %q, got %q", "!\n123\n", got)
	}
}
