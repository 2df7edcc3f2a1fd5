// Package freq provides the word-frequency multiset shared by the ingestion
// and lexicon-building stages.
package freq

import (
	"sort"
	"strings"
)

// Entry is one counted word.
type Entry struct {
	Word  string
	Count int64
}

// Counter is a multiset of word tokens. Enumeration runs in descending
// count order with ties broken by first insertion, and is identical across
// repeated calls when the counter is not mutated in between.
//
// Counter is not safe for concurrent use; the pipeline owns it exclusively
// during ingestion and hands it off to the lexicon builder afterwards.
type Counter struct {
	counts map[string]int64
	order  map[string]int
	next   int
}

// NewCounter creates an empty counter.
func NewCounter() *Counter {
	return &Counter{
		counts: make(map[string]int64),
		order:  make(map[string]int),
	}
}

// Add increments the count of every piece in the token sequence, skipping
// whitespace pieces and empty strings.
func (c *Counter) Add(tokens []string) {
	for _, tok := range tokens {
		if strings.TrimSpace(tok) == "" {
			continue
		}
		if _, ok := c.counts[tok]; !ok {
			c.order[tok] = c.next
			c.next++
		}
		c.counts[tok]++
	}
}

// Delete removes a word entirely. Deleted words do not linger as
// zero-count entries.
func (c *Counter) Delete(word string) {
	delete(c.counts, word)
	delete(c.order, word)
}

// Count returns the count of a word, or 0 if it was never added.
func (c *Counter) Count(word string) int64 {
	return c.counts[word]
}

// Len returns the number of distinct words.
func (c *Counter) Len() int {
	return len(c.counts)
}

// MostCommon returns all entries ordered by descending count, ties broken
// by first insertion.
func (c *Counter) MostCommon() []Entry {
	entries := make([]Entry, 0, len(c.counts))
	for word, count := range c.counts {
		entries = append(entries, Entry{Word: word, Count: count})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return c.order[entries[i].Word] < c.order[entries[j].Word]
	})
	return entries
}
