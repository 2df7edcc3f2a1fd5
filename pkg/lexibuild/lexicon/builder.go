// Package lexicon turns a fully-counted corpus into a ranked word table
// with derived frequency classes.
package lexicon

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/lexibuild/lexibuild/pkg/lexibuild/freq"
	"github.com/lexibuild/lexibuild/pkg/lexibuild/internalerr"
	"github.com/lexibuild/lexibuild/pkg/lexibuild/languages"
)

// Builder filters non-words out of a frequency counter and writes the
// ranked lexicon. It takes exclusive ownership of the counter: the
// ingestion pass must be finished before the build starts, and non-words
// are deleted from the counter during the build.
type Builder struct {
	counter *freq.Counter
	lang    languages.Language
}

// NewBuilder creates a builder over a fully-populated counter.
func NewBuilder(counter *freq.Counter, lang languages.Language) *Builder {
	return &Builder{counter: counter, lang: lang}
}

// FrequencyClass derives the logarithmic rank of a word: 0 for the most
// frequent word(s), growing by one for roughly every halving of the count.
// Rounding is floor(x + 0.5), so ties at .5 round toward positive infinity.
func FrequencyClass(count, maxCount int64) int {
	return int(math.Floor(0.5 - math.Log2(float64(count)/float64(maxCount))))
}

// WriteLexicon deletes non-words from the counter, logging each to the
// nonwords writer (one raw token per line, in descending-count order), then
// writes the word,frequency,frequency_class table for the survivors in the
// same order.
func (b *Builder) WriteLexicon(words, nonwords io.Writer) error {
	logw := bufio.NewWriter(nonwords)
	for _, entry := range b.counter.MostCommon() {
		if b.lang.IsWord(entry.Word) {
			continue
		}
		b.counter.Delete(entry.Word)
		if _, err := fmt.Fprintln(logw, entry.Word); err != nil {
			return err
		}
	}
	if err := logw.Flush(); err != nil {
		return err
	}

	entries := b.counter.MostCommon()
	if len(entries) == 0 {
		return fmt.Errorf("%w: every counted token was rejected as a non-word", internalerr.ErrEmptyLexicon)
	}
	maxCount := entries[0].Count

	out := csv.NewWriter(words)
	if err := out.Write([]string{"word", "frequency", "frequency_class"}); err != nil {
		return err
	}
	for _, entry := range entries {
		row := []string{
			entry.Word,
			strconv.FormatInt(entry.Count, 10),
			strconv.Itoa(FrequencyClass(entry.Count, maxCount)),
		}
		if err := out.Write(row); err != nil {
			return err
		}
	}
	out.Flush()
	return out.Error()
}
