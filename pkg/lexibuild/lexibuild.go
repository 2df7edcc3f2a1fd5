// Package lexibuild builds per-language word-frequency lexicons from raw
// sentence corpora: sentences are tokenized and counted in one streaming
// pass, then the counted tokens are filtered against the language's word
// rule and ranked by frequency class.
package lexibuild

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/lexibuild/lexibuild/pkg/lexibuild/freq"
	"github.com/lexibuild/lexibuild/pkg/lexibuild/ingest"
	"github.com/lexibuild/lexibuild/pkg/lexibuild/languages"
	"github.com/lexibuild/lexibuild/pkg/lexibuild/lexicon"
	"github.com/lexibuild/lexibuild/pkg/lexibuild/tokenizer"
)

// Output file names within the output directory.
const (
	SentencesFile = "sentences.csv"
	SkippedFile   = "skipped.csv"
	WordsFile     = "words.csv"
	NonwordsFile  = "nonwords.txt"
)

// Options configures one lexicon build.
type Options struct {
	// Language is the ISO 639-3 code of the corpus language.
	Language string

	// Input supplies identifier<TAB>sentence lines, one per sentence.
	Input io.Reader

	// OutputDir receives sentences.csv, skipped.csv, words.csv, and
	// nonwords.txt. It is created if missing.
	OutputDir string

	// NoIdentifiers marks an ad-hoc corpus whose lines are bare sentences
	// without an identifier column.
	NoIdentifiers bool

	// Extra registers additional language profiles, looked up ahead of the
	// built-in table.
	Extra []languages.Language
}

// Run ingests the corpus and writes all four output files. The language is
// resolved before any file is touched, so an unknown code fails cleanly.
//
// The two stages are strictly sequential: the pipeline populates the
// frequency counter, then hands it to the lexicon builder. Frequency
// classes are only meaningful once the whole corpus has been counted.
func Run(opts Options) error {
	lang, err := languages.Resolve(opts.Language, opts.Extra)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(opts.OutputDir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	counter := freq.NewCounter()
	pipeline := ingest.NewPipeline(tokenizer.New(lang.Code), counter)
	if opts.NoIdentifiers {
		pipeline = pipeline.WithoutIdentifiers()
	}

	err = withOutputs(opts.OutputDir, SentencesFile, SkippedFile, func(sentences, skipped *os.File) error {
		return pipeline.Run(opts.Input, sentences, skipped)
	})
	if err != nil {
		return err
	}

	builder := lexicon.NewBuilder(counter, lang)
	return withOutputs(opts.OutputDir, WordsFile, NonwordsFile, func(words, nonwords *os.File) error {
		return builder.WriteLexicon(words, nonwords)
	})
}

// withOutputs creates two files in dir, runs fn with both open, and closes
// them afterwards. Files stay open for fn's whole duration and are closed
// even when fn fails, keeping partial output intact.
func withOutputs(dir, nameA, nameB string, fn func(a, b *os.File) error) error {
	a, err := os.Create(filepath.Join(dir, nameA))
	if err != nil {
		return fmt.Errorf("create %s: %w", nameA, err)
	}
	defer a.Close()

	b, err := os.Create(filepath.Join(dir, nameB))
	if err != nil {
		return fmt.Errorf("create %s: %w", nameB, err)
	}
	defer b.Close()

	if err := fn(a, b); err != nil {
		return err
	}
	if err := b.Close(); err != nil {
		return fmt.Errorf("close %s: %w", nameB, err)
	}
	if err := a.Close(); err != nil {
		return fmt.Errorf("close %s: %w", nameA, err)
	}
	return nil
}
