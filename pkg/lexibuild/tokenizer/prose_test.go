package tokenizer

import (
	"strings"
	"testing"
)

func TestProseRoundTrip(t *testing.T) {
	p := NewProse()

	sentences := []string{
		"",
		"The quick brown fox jumps over the lazy dog.",
		"It is raining,  isn't it?",
		"one two three",
	}
	for _, sentence := range sentences {
		pieces := p.Tokenize(sentence)
		if got := strings.Join(pieces, ""); got != sentence {
			t.Errorf("Round trip failed for %q: got %q", sentence, got)
		}
	}
}

func TestAlign(t *testing.T) {
	pieces, ok := align("the  cat", []string{"the", "cat"})
	if !ok {
		t.Fatal("Expected alignment to succeed")
	}
	if got := strings.Join(pieces, ""); got != "the  cat" {
		t.Errorf("Expected pieces to reconstruct input, got %q", got)
	}

	// Trailing whitespace becomes a final piece.
	pieces, ok = align("cat ", []string{"cat"})
	if !ok {
		t.Fatal("Expected alignment to succeed")
	}
	if len(pieces) != 2 || pieces[1] != " " {
		t.Errorf("Expected trailing whitespace piece, got %v", pieces)
	}
}

func TestAlignRejectsRewrittenText(t *testing.T) {
	cases := []struct {
		sentence string
		tokens   []string
	}{
		// Token missing from the sentence.
		{"the cat", []string{"the", "dog"}},
		// Gap between tokens holds a dropped non-whitespace rune.
		{"the x cat", []string{"the", "cat"}},
		// Non-whitespace remainder after the last token.
		{"the cat!", []string{"the", "cat"}},
	}
	for _, c := range cases {
		if _, ok := align(c.sentence, c.tokens); ok {
			t.Errorf("Expected alignment of %q against %v to fail", c.sentence, c.tokens)
		}
	}
}

func TestProseSplitsPunctuation(t *testing.T) {
	p := NewProse()

	pieces := p.Tokenize("the cat sat.")
	found := false
	for _, piece := range pieces {
		if piece == "cat" {
			found = true
			break
		}
	}
	if !found {
		t.Errorf("Expected 'cat' among pieces, got %v", pieces)
	}
}
