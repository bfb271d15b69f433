// Package jpv is the public facade over the dictionary engine: build an
// index image from JMdict/JMnedict/KANJIDIC2 XML, open a previously built
// image, and query it by search, sentence analysis, or conjugation.
//
// Decompression and network fetch are explicitly out of scope here — callers
// hand Build already-decompressed XML bytes.
package jpv

import (
	"fmt"
	"io"

	"github.com/rs/zerolog/log"

	"github.com/lanastasov/jpv/internal/analyzer"
	"github.com/lanastasov/jpv/internal/column"
	"github.com/lanastasov/jpv/internal/entities"
	"github.com/lanastasov/jpv/internal/index"
	"github.com/lanastasov/jpv/internal/inflect"
	"github.com/lanastasov/jpv/internal/jmdict"
	"github.com/lanastasov/jpv/internal/kanjidic"
	"github.com/lanastasov/jpv/internal/pos"
	"github.com/lanastasov/jpv/internal/search"
)

// SourceKind selects which schema an Input's bytes should be parsed as.
type SourceKind int

const (
	SourceJMdict SourceKind = iota
	SourceJMnedict
	SourceKanjiDic2
)

// Input is one XML document to fold into a build, already decompressed.
type Input struct {
	Kind SourceKind
	Data []byte
}

// Build parses every Input and serializes the combined result into an index
// image. name is used only for logging context.
func Build(name string, inputs ...Input) ([]byte, error) {
	store := column.NewStore()
	log.Info().Str("build", name).Int("inputs", len(inputs)).Msg("starting index build")

	for _, in := range inputs {
		switch in.Kind {
		case SourceJMdict:
			if err := ingestJMdict(store, in.Data, jmdict.JMdict, entities.JMdict); err != nil {
				return nil, fmt.Errorf("jpv: building %s: %w", name, err)
			}
		case SourceJMnedict:
			if err := ingestJMdict(store, in.Data, jmdict.JMnedict, entities.JMdict); err != nil {
				return nil, fmt.Errorf("jpv: building %s: %w", name, err)
			}
		case SourceKanjiDic2:
			if err := ingestKanjiDic2(store, in.Data); err != nil {
				return nil, fmt.Errorf("jpv: building %s: %w", name, err)
			}
		}
	}

	img, err := index.Build(store)
	if err != nil {
		return nil, fmt.Errorf("jpv: serializing %s: %w", name, err)
	}
	log.Info().Str("build", name).Int("bytes", len(img)).
		Int("entries", len(store.Entries)).Int("characters", len(store.Characters)).
		Msg("index build complete")
	return img, nil
}

func ingestJMdict(store *column.Store, data []byte, dialect jmdict.Dialect, ents entities.Table) error {
	dec := jmdict.NewDecoder(data, ents, dialect)
	for {
		entry, err := dec.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		store.AddEntry(entry)
	}
}

func ingestKanjiDic2(store *column.Store, data []byte) error {
	dec := kanjidic.NewDecoder(data, entities.KanjiDic2)
	for {
		c, err := dec.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		store.AddCharacter(c)
	}
}

// Index is an opened dictionary image, ready for search, analysis, and
// conjugation queries.
type Index struct {
	reader   *index.Reader
	engine   *search.Engine
	analyzer *analyzer.Analyzer
}

// Open validates and wraps an index image previously produced by Build. data
// may be an in-memory buffer; use OpenFile for a memory-mapped open of a
// file on disk.
func Open(data []byte) (*Index, error) {
	r, err := index.Open(data)
	if err != nil {
		return nil, fmt.Errorf("jpv: opening index: %w", err)
	}
	return newIndex(r), nil
}

// OpenFile memory-maps path and opens it as a dictionary index.
func OpenFile(path string) (*Index, error) {
	r, err := index.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("jpv: opening index %s: %w", path, err)
	}
	return newIndex(r), nil
}

func newIndex(r *index.Reader) *Index {
	engine := search.New(r)
	return &Index{reader: r, engine: engine, analyzer: analyzer.New(engine)}
}

// Close releases any resources (e.g. a memory mapping) the Index holds.
func (ix *Index) Close() error {
	return ix.reader.Close()
}

// SearchMode mirrors search.Mode at the facade boundary so callers never
// need to import internal/search directly.
type SearchMode = search.Mode

const (
	SearchAsIs  = search.ModeAsIs
	SearchRomaji = search.ModeRomaji
)

// SearchResult mirrors search.Result.
type SearchResult = search.Result

// Search returns every entry whose surface starts with query.
func (ix *Index) Search(query string, mode SearchMode) []SearchResult {
	return ix.engine.Prefix(query, mode)
}

// SearchExact returns every entry whose surface equals query exactly.
func (ix *Index) SearchExact(query string, mode SearchMode) []SearchResult {
	return ix.engine.Exact(query, mode)
}

// SearchSubstring returns every entry whose surface contains query anywhere.
func (ix *Index) SearchSubstring(query string, mode SearchMode) []SearchResult {
	return ix.engine.Substring(query, mode)
}

// AnalyzerSegment mirrors analyzer.Segment.
type AnalyzerSegment = analyzer.Segment

// Analyze finds the longest dictionary match (direct or inflected) starting
// at the rune offset start in text. Callers drive a full sentence by
// re-calling Analyze with the previous segment's End (or start+1 on a miss)
// until it returns false.
func (ix *Index) Analyze(text string, start int) (AnalyzerSegment, bool) {
	return ix.analyzer.Next(text, start)
}

// ConjugateEntry produces every inflected form of entryIdx across every
// kanji/reading surface pairing the entry actually allows, not just its
// first kanji and first reading. An entry with several kanji spellings and
// several readings can restrict which readings attach to which kanji (the
// reading element's restrict list, or no_kanji for a reading that only ever
// stands alone); each resulting (kanji, reading) permutation gets its own
// Conjugation tagged with the ReadingKey it came from, so a caller can trace
// a conjugated form back to the exact surface it belongs to.
func (ix *Index) ConjugateEntry(entryIdx uint32) []inflect.Conjugation {
	entry := ix.reader.Entry(entryIdx)
	if len(entry.Readings) == 0 {
		return nil
	}

	parts := conjugableParts(entry)
	if len(parts) == 0 {
		return nil
	}

	var out []inflect.Conjugation
	for _, perm := range readingPermutations(entry) {
		for _, p := range parts {
			kind, ok := kindOf(p)
			if !ok {
				continue
			}
			word := inflect.Word{Kanji: perm.kanji, Reading: perm.reading}
			forms, ok := inflect.Conjugate(word, p)
			if !ok {
				continue
			}
			out = append(out, inflect.Conjugation{Key: perm.key, Forms: forms, Kind: kind})
		}
	}
	return out
}

// conjugableParts collects every distinct verb/adjective part of speech
// carried across entry's senses, since JMdict repeats a part of speech on
// every sense it governs rather than listing it once per entry.
func conjugableParts(entry index.EntryView) []pos.PartOfSpeech {
	var parts []pos.PartOfSpeech
	seen := map[pos.PartOfSpeech]bool{}
	for _, sense := range entry.Senses {
		pos.Set(sense.PartsOfSpeech).Each(func(p pos.PartOfSpeech) {
			if seen[p] || !(p.IsVerb() || p.IsAdjective()) {
				return
			}
			seen[p] = true
			parts = append(parts, p)
		})
	}
	return parts
}

// kindOf classifies a part of speech as the conjugation table it draws
// from. ok is false for anything conjugableParts would not have returned.
func kindOf(p pos.PartOfSpeech) (inflect.Kind, bool) {
	switch {
	case p.IsVerb():
		return inflect.KindVerb, true
	case p.IsAdjective():
		return inflect.KindAdjective, true
	}
	return 0, false
}

// readingSurface is one surface/reading pairing an entry actually allows,
// tagged with the ReadingKey it was derived from.
type readingSurface struct {
	key     inflect.ReadingKey
	kanji   string
	reading string
}

// readingPermutations enumerates every (kanji, reading) pairing entry
// allows: a reading applies to a kanji form unless the reading is
// marked no_kanji, or carries a restrict list that excludes that kanji.
// A reading with no applicable kanji (no_kanji, an empty restrict match, or
// an entry with no kanji elements at all) stands alone with KanjiIndex set
// to inflect.NoKanji.
func readingPermutations(entry index.EntryView) []readingSurface {
	var out []readingSurface
	for ri, r := range entry.Readings {
		if r.NoKanji || len(entry.Kanji) == 0 {
			out = append(out, readingSurface{
				key:     inflect.ReadingKey{KanjiIndex: inflect.NoKanji, ReadingIndex: uint8(ri)},
				kanji:   r.Text,
				reading: r.Text,
			})
			continue
		}
		applied := false
		for ki, k := range entry.Kanji {
			if !jmdict.Applies(r.Restrict, k.Text) {
				continue
			}
			applied = true
			out = append(out, readingSurface{
				key:     inflect.ReadingKey{KanjiIndex: uint8(ki), ReadingIndex: uint8(ri)},
				kanji:   k.Text,
				reading: r.Text,
			})
		}
		if !applied {
			out = append(out, readingSurface{
				key:     inflect.ReadingKey{KanjiIndex: inflect.NoKanji, ReadingIndex: uint8(ri)},
				kanji:   r.Text,
				reading: r.Text,
			})
		}
	}
	return out
}

// LookupSequence resolves a JMdict sequence number to an entry index.
func (ix *Index) LookupSequence(seq uint32) (uint32, bool) {
	return ix.reader.LookupSequence(seq)
}

// Entry resolves an entry index to its full view.
func (ix *Index) Entry(idx uint32) index.EntryView {
	return ix.reader.Entry(idx)
}
