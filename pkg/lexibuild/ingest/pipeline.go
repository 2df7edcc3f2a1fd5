// Package ingest reads raw corpus lines and fans them out to the
// accepted-sentence output, the skip log, and the frequency counter.
package ingest

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/lexibuild/lexibuild/pkg/lexibuild/freq"
	"github.com/lexibuild/lexibuild/pkg/lexibuild/internalerr"
	"github.com/lexibuild/lexibuild/pkg/lexibuild/tokenizer"
)

// MaxSentenceLength is the rune count above which a sentence goes to the
// skip log instead of the accepted output. The boundary is inclusive: a
// sentence of exactly this length is accepted.
const MaxSentenceLength = 100

const (
	leftToRightMark = '\u200e'
	rightToLeftMark = '\u200f'
)

// Pipeline streams corpus lines through tokenization into the accepted
// output, the skip log, and a frequency counter. Every sentence is counted,
// including ones excluded from the accepted output.
//
// Lines are processed strictly in input order; output row order is part of
// the interface.
type Pipeline struct {
	tokenizer tokenizer.Tokenizer
	counter   *freq.Counter
	hasIDs    bool
}

// NewPipeline creates a pipeline for corpora whose lines carry an
// identifier column (identifier<TAB>sentence).
func NewPipeline(t tokenizer.Tokenizer, c *freq.Counter) *Pipeline {
	return &Pipeline{tokenizer: t, counter: c, hasIDs: true}
}

// WithoutIdentifiers switches the pipeline to ad-hoc corpora whose lines
// are bare sentences. The accepted output then has no identifier column.
func (p *Pipeline) WithoutIdentifiers() *Pipeline {
	p.hasIDs = false
	return p
}

// Run consumes lines from r until EOF or the first malformed line. A
// malformed line aborts the run, but headers and rows written before the
// failure are flushed so partial output stays well-formed.
func (p *Pipeline) Run(r io.Reader, sentences, skipped io.Writer) (err error) {
	out := csv.NewWriter(sentences)
	skip := csv.NewWriter(skipped)
	defer func() {
		out.Flush()
		skip.Flush()
		if err == nil {
			err = out.Error()
		}
		if err == nil {
			err = skip.Error()
		}
	}()

	header := []string{"identifier", "text", "tokens"}
	if !p.hasIDs {
		header = header[1:]
	}
	if err := out.Write(header); err != nil {
		return err
	}
	if err := skip.Write([]string{"identifier", "text", "reason_for_exclusion"}); err != nil {
		return err
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)
	lineno := 0
	for scanner.Scan() {
		lineno++
		if err := p.process(scanner.Text(), lineno, out, skip); err != nil {
			return err
		}
	}
	return scanner.Err()
}

func (p *Pipeline) process(line string, lineno int, out, skip *csv.Writer) error {
	var sentence Sentence
	raw := line

	if p.hasIDs {
		id, rest, found := strings.Cut(line, "\t")
		if !found {
			return fmt.Errorf("line %d: %w: missing tab delimiter", lineno, internalerr.ErrMalformedLine)
		}
		n, err := strconv.ParseInt(id, 10, 64)
		if err != nil {
			return fmt.Errorf("line %d: %w: identifier %q is not an integer", lineno, internalerr.ErrMalformedLine, id)
		}
		sentence.ID, sentence.HasID = n, true
		raw = rest
	}

	sentence.Text = clean(raw)
	sentence.Tokens = p.tokenizer.Tokenize(sentence.Text)

	// Count before routing: skipped sentences still contribute to the
	// frequency table.
	p.counter.Add(sentence.Tokens)

	if utf8.RuneCountInString(sentence.Text) <= MaxSentenceLength {
		row, err := sentence.Row()
		if err != nil {
			return err
		}
		return out.Write(row)
	}

	identifier := ""
	if sentence.HasID {
		identifier = strconv.FormatInt(sentence.ID, 10)
	}
	return skip.Write([]string{identifier, sentence.Text, "too long"})
}

// clean strips a single leading and a single trailing directional mark,
// then ordinary whitespace.
func clean(text string) string {
	if r, size := utf8.DecodeRuneInString(text); r == leftToRightMark || r == rightToLeftMark {
		text = text[size:]
	}
	if r, size := utf8.DecodeLastRuneInString(text); r == leftToRightMark || r == rightToLeftMark {
		text = text[:len(text)-size]
	}
	return strings.TrimSpace(text)
}
