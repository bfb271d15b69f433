package column

import (
	"sort"

	"github.com/lanastasov/jpv/internal/jmdict"
	"github.com/lanastasov/jpv/internal/kanjidic"
	"github.com/lanastasov/jpv/internal/pos"
)

// EntryRecord is one dictionary entry's column-store shape: string ids into
// Store.Strings plus indices into the ReadingElements/KanjiElements/Senses
// columns, rather than owned copies of their text.
type EntryRecord struct {
	Sequence          uint32
	KanjiElementStart uint32
	KanjiElementCount uint32
	ReadingElementStart uint32
	ReadingElementCount uint32
	SenseStart        uint32
	SenseCount        uint32
}

// KanjiElementRecord is one <k_ele>, with Text interned.
type KanjiElementRecord struct {
	Text           uint32
	PriorityBucket uint8
}

// ReadingElementRecord is one <r_ele>, with Text interned. RestrictStart/Count
// index into a flat restrict-surface column shared by readings and senses.
type ReadingElementRecord struct {
	Text           uint32
	NoKanji        bool
	PriorityBucket uint8
	RestrictStart  uint32
	RestrictCount  uint32
}

// SenseRecord is one <sense>, with every gloss's text interned and POS
// carried as the same bitset the conjugation engine consumes directly.
type SenseRecord struct {
	PartsOfSpeech pos.Set
	GlossStart    uint32
	GlossCount    uint32
	RestrictStart uint32
	RestrictCount uint32
}

// CharacterRecord is one KANJIDIC2 <character>, readings/meanings interned
// the same way sense glosses are.
type CharacterRecord struct {
	Literal     rune
	Grade       int32
	StrokeCount int32
	Frequency   int32
	JLPT        int32
	ReadingStart uint32
	ReadingCount uint32
	MeaningStart uint32
	MeaningCount uint32
}

// PhraseEntry is one (surface-text, entry-index) pair in the sorted phrase
// index used for exact/prefix search: a sorted array plus binary search
// rather than a trie, since the corpus is static after a build.
// PriorityBucket is the JMdict priority-tag ordinal (see
// jmdict.PriorityBucket) this surface was tagged with, used to rank hits.
type PhraseEntry struct {
	Text           string
	EntryIdx       uint32
	PriorityBucket uint8
}

// Store accumulates every record the index writer will serialize. Builders
// append to it as they stream entries/characters out of the XML decoders;
// nothing is re-sorted until Finalize.
type Store struct {
	Strings *Interner

	Entries         []EntryRecord
	KanjiElements   []KanjiElementRecord
	ReadingElements []ReadingElementRecord
	Senses          []SenseRecord
	Glosses         []uint32 // interned gloss text ids, flat, sliced by SenseRecord
	Restricts       []uint32 // interned restrict-surface text ids, flat

	Characters []CharacterRecord
	Readings   []uint32 // interned reading text ids, flat
	Meanings   []uint32 // interned meaning text ids, flat

	SequenceMap map[uint32]uint32 // JMdict sequence number -> entry index
	LiteralMap  map[rune]uint32   // kanji literal -> character index

	PhraseIndex []PhraseEntry // sorted after Finalize
}

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{
		Strings:     NewInterner(),
		SequenceMap: make(map[uint32]uint32),
		LiteralMap:  make(map[rune]uint32),
	}
}

// AddEntry appends one JMdict/JMnedict entry and every surface it carries to
// the phrase index.
func (s *Store) AddEntry(e jmdict.Entry) {
	rec := EntryRecord{Sequence: e.Sequence}
	entryIdx := uint32(len(s.Entries))

	rec.KanjiElementStart = uint32(len(s.KanjiElements))
	for _, k := range e.KanjiElements {
		bucket := jmdict.PriorityBucket(k.Priority)
		s.KanjiElements = append(s.KanjiElements, KanjiElementRecord{
			Text:           s.Strings.Intern(k.Text),
			PriorityBucket: bucket,
		})
		s.PhraseIndex = append(s.PhraseIndex, PhraseEntry{Text: k.Text, EntryIdx: entryIdx, PriorityBucket: bucket})
	}
	rec.KanjiElementCount = uint32(len(e.KanjiElements))

	rec.ReadingElementStart = uint32(len(s.ReadingElements))
	for _, r := range e.ReadingElements {
		restrictStart := uint32(len(s.Restricts))
		for _, surf := range r.Restrict {
			s.Restricts = append(s.Restricts, s.Strings.Intern(surf))
		}
		bucket := jmdict.PriorityBucket(r.Priority)
		s.ReadingElements = append(s.ReadingElements, ReadingElementRecord{
			Text:           s.Strings.Intern(r.Text),
			NoKanji:        r.NoKanji,
			PriorityBucket: bucket,
			RestrictStart:  restrictStart,
			RestrictCount:  uint32(len(r.Restrict)),
		})
		s.PhraseIndex = append(s.PhraseIndex, PhraseEntry{Text: r.Text, EntryIdx: entryIdx, PriorityBucket: bucket})
	}
	rec.ReadingElementCount = uint32(len(e.ReadingElements))

	rec.SenseStart = uint32(len(s.Senses))
	for _, sense := range e.Senses {
		glossStart := uint32(len(s.Glosses))
		for _, g := range sense.Glosses {
			s.Glosses = append(s.Glosses, s.Strings.Intern(g.Text))
		}
		restrictStart := uint32(len(s.Restricts))
		for _, surf := range sense.RestrictToKanji {
			s.Restricts = append(s.Restricts, s.Strings.Intern(surf))
		}
		for _, surf := range sense.RestrictToReading {
			s.Restricts = append(s.Restricts, s.Strings.Intern(surf))
		}
		s.Senses = append(s.Senses, SenseRecord{
			PartsOfSpeech: sense.PartsOfSpeech,
			GlossStart:    glossStart,
			GlossCount:    uint32(len(sense.Glosses)),
			RestrictStart: restrictStart,
			RestrictCount: uint32(len(sense.RestrictToKanji) + len(sense.RestrictToReading)),
		})
	}
	rec.SenseCount = uint32(len(e.Senses))

	s.Entries = append(s.Entries, rec)
	s.SequenceMap[e.Sequence] = entryIdx
}

// AddCharacter appends one KANJIDIC2 character.
func (s *Store) AddCharacter(c kanjidic.Character) {
	literal := []rune(c.Literal)[0]
	idx := uint32(len(s.Characters))

	readingStart := uint32(len(s.Readings))
	for _, r := range c.Readings {
		s.Readings = append(s.Readings, s.Strings.Intern(r.Text))
	}
	meaningStart := uint32(len(s.Meanings))
	for _, m := range c.Meanings {
		if m.Lang != "" {
			continue // non-English meanings are out of scope for search/display
		}
		s.Meanings = append(s.Meanings, s.Strings.Intern(m.Text))
	}

	s.Characters = append(s.Characters, CharacterRecord{
		Literal:      literal,
		Grade:        int32(c.Grade),
		StrokeCount:  int32(c.StrokeCount),
		Frequency:    int32(c.Frequency),
		JLPT:         int32(c.JLPT),
		ReadingStart: readingStart,
		ReadingCount: uint32(len(c.Readings)),
		MeaningStart: meaningStart,
		MeaningCount: uint32(len(s.Meanings)) - meaningStart,
	})
	s.LiteralMap[literal] = idx
}

// Finalize sorts the phrase index lexicographically by surface text (ties
// broken by priority bucket, lowest first, then entry index), making
// exact/prefix lookup a binary search. Call this once, after every entry and
// character has been added.
func (s *Store) Finalize() {
	sort.Slice(s.PhraseIndex, func(i, j int) bool {
		a, b := s.PhraseIndex[i], s.PhraseIndex[j]
		if a.Text != b.Text {
			return a.Text < b.Text
		}
		if a.PriorityBucket != b.PriorityBucket {
			return a.PriorityBucket < b.PriorityBucket
		}
		return a.EntryIdx < b.EntryIdx
	})
}
