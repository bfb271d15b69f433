// Package search implements exact, prefix, and substring dictionary lookup
// on top of an opened index.Reader, with an optional romaji-to-kana
// preprocessing pass and priority-bucket ranking: hits are ordered by
// priority bucket, then by ascending JMdict sequence number.
package search

import (
	"sort"

	"github.com/lanastasov/jpv/internal/index"
	"github.com/lanastasov/jpv/internal/kana"
)

// Mode selects how a query string is interpreted before lookup.
type Mode int

const (
	// ModeAsIs looks the query up verbatim (kana, kanji, or mixed text).
	ModeAsIs Mode = iota
	// ModeRomaji converts the query from romaji to hiragana before lookup,
	// for callers whose users type on an ASCII keyboard.
	ModeRomaji
)

// Result is one ranked hit: the resolved entry plus the priority-bucket
// ordinal the reader used to rank it (lower is more common).
type Result struct {
	Entry          index.EntryView
	PriorityBucket uint8
}

// Engine binds a Reader to the search operations. It holds no state beyond
// the Reader reference, so it is safe to share across goroutines.
type Engine struct {
	reader *index.Reader
}

// New creates an Engine over an already-opened Reader.
func New(r *index.Reader) *Engine {
	return &Engine{reader: r}
}

func (e *Engine) preprocess(query string, mode Mode) string {
	if mode == ModeRomaji {
		return kana.ToKana(query, kana.Hiragana)
	}
	return query
}

// Exact looks up query for an exact surface match.
func (e *Engine) Exact(query string, mode Mode) []Result {
	return e.rank(e.reader.SearchExact(e.preprocess(query, mode)))
}

// Prefix looks up every entry whose surface starts with query.
func (e *Engine) Prefix(query string, mode Mode) []Result {
	return e.rank(e.reader.SearchPrefix(e.preprocess(query, mode)))
}

// Substring looks up every entry whose surface contains query anywhere.
func (e *Engine) Substring(query string, mode Mode) []Result {
	return e.rank(e.reader.SearchSubstring(e.preprocess(query, mode)))
}

// rank resolves each match to its entry and orders by ascending priority
// bucket, then by ascending sequence number — the two ranking keys a static
// dictionary image actually varies on, since no per-entry search weight
// survives into the built index.
func (e *Engine) rank(matches []index.Match) []Result {
	results := make([]Result, len(matches))
	for i, m := range matches {
		results[i] = Result{Entry: e.reader.Entry(m.EntryIdx), PriorityBucket: m.PriorityBucket}
	}
	sort.SliceStable(results, func(i, j int) bool {
		if results[i].PriorityBucket != results[j].PriorityBucket {
			return results[i].PriorityBucket < results[j].PriorityBucket
		}
		return results[i].Entry.Sequence < results[j].Entry.Sequence
	})
	return results
}
