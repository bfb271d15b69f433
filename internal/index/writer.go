package index

import (
	"bytes"
	"encoding/binary"
	"sort"

	"github.com/lanastasov/jpv/internal/column"
	"github.com/lanastasov/jpv/internal/jmdict"
)

// recEntry/recKanji/... mirror column.Store's record shapes with every field
// forced to a fixed-width integer type, since bool and rune are not
// themselves encoding/binary-safe across every platform's width.
type recEntry struct {
	Sequence            uint32
	KanjiElementStart   uint32
	KanjiElementCount   uint32
	ReadingElementStart uint32
	ReadingElementCount uint32
	SenseStart          uint32
	SenseCount          uint32
}

type recKanjiElement struct {
	Text           uint32
	PriorityBucket uint8
	_              [3]byte
}

type recReadingElement struct {
	Text           uint32
	NoKanji        uint8
	PriorityBucket uint8
	_              [2]byte
	RestrictStart  uint32
	RestrictCount  uint32
}

type recSense struct {
	PartsOfSpeech uint64
	GlossStart    uint32
	GlossCount    uint32
	RestrictStart uint32
	RestrictCount uint32
}

type recCharacter struct {
	Literal      uint32
	Grade        int32
	StrokeCount  int32
	Frequency    int32
	JLPT         int32
	ReadingStart uint32
	ReadingCount uint32
	MeaningStart uint32
	MeaningCount uint32
}

type recPhrase struct {
	TextID         uint32
	EntryIdx       uint32
	PriorityBucket uint8
	_              [3]byte
}

// Build serializes s into a complete index image.
func Build(s *column.Store) ([]byte, error) {
	s.Finalize()

	var body bytes.Buffer
	var dir []dirEntry

	write := func(id ColumnID, fn func(*bytes.Buffer) error) error {
		start := body.Len()
		if err := fn(&body); err != nil {
			return err
		}
		dir = append(dir, dirEntry{ColumnID: id, Offset: uint64(start), Length: uint64(body.Len() - start)})
		return nil
	}

	if err := write(ColumnStrings, func(b *bytes.Buffer) error { return writeStrings(b, s.Strings) }); err != nil {
		return nil, err
	}
	if err := write(ColumnEntries, func(b *bytes.Buffer) error { return writeEntries(b, s.Entries) }); err != nil {
		return nil, err
	}
	if err := write(ColumnKanjiElements, func(b *bytes.Buffer) error { return writeKanjiElements(b, s.KanjiElements) }); err != nil {
		return nil, err
	}
	if err := write(ColumnReadingElements, func(b *bytes.Buffer) error { return writeReadingElements(b, s.ReadingElements) }); err != nil {
		return nil, err
	}
	if err := write(ColumnSenses, func(b *bytes.Buffer) error { return writeSenses(b, s.Senses, s.Glosses, s.Restricts) }); err != nil {
		return nil, err
	}
	if err := write(ColumnCharacters, func(b *bytes.Buffer) error {
		return writeCharacters(b, s.Characters, s.Readings, s.Meanings)
	}); err != nil {
		return nil, err
	}
	if err := write(ColumnSequenceMap, func(b *bytes.Buffer) error { return writeSequenceMap(b, s.SequenceMap) }); err != nil {
		return nil, err
	}
	if err := write(ColumnLiteralMap, func(b *bytes.Buffer) error { return writeLiteralMap(b, s.LiteralMap) }); err != nil {
		return nil, err
	}
	if err := write(ColumnPhraseIndex, func(b *bytes.Buffer) error {
		return writePhraseIndex(b, s.Strings, s.PhraseIndex, false)
	}); err != nil {
		return nil, err
	}
	if err := write(ColumnPriorityIndex, func(b *bytes.Buffer) error {
		return writePhraseIndex(b, s.Strings, s.PhraseIndex, true)
	}); err != nil {
		return nil, err
	}

	// Every column body offset recorded above is relative to the start of
	// body; shift by headerSize now that body's final length (and hence the
	// directory's own offset) is known.
	directoryOffset := uint64(headerSize + body.Len())
	for i := range dir {
		dir[i].Offset += uint64(headerSize)
	}

	var out bytes.Buffer
	out.WriteString(Magic)
	binary.Write(&out, binary.LittleEndian, FormatVersion)
	binary.Write(&out, binary.LittleEndian, uint16(0)) // reserved
	binary.Write(&out, binary.LittleEndian, directoryOffset)
	out.Write(body.Bytes())
	binary.Write(&out, binary.LittleEndian, uint32(len(dir)))
	for _, d := range dir {
		binary.Write(&out, binary.LittleEndian, d.ColumnID)
		binary.Write(&out, binary.LittleEndian, d.Reserved)
		binary.Write(&out, binary.LittleEndian, d.Offset)
		binary.Write(&out, binary.LittleEndian, d.Length)
	}
	return out.Bytes(), nil
}

func writeStrings(b *bytes.Buffer, in *column.Interner) error {
	arena := in.Arena()
	binary.Write(b, binary.LittleEndian, uint32(len(arena)))
	b.Write(arena)
	spans := in.Spans()
	binary.Write(b, binary.LittleEndian, uint32(len(spans)))
	for _, sp := range spans {
		binary.Write(b, binary.LittleEndian, sp.Offset)
		binary.Write(b, binary.LittleEndian, sp.Length)
	}
	return nil
}

func writeEntries(b *bytes.Buffer, recs []column.EntryRecord) error {
	binary.Write(b, binary.LittleEndian, uint32(len(recs)))
	for _, r := range recs {
		binary.Write(b, binary.LittleEndian, recEntry(r))
	}
	return nil
}

func writeKanjiElements(b *bytes.Buffer, recs []column.KanjiElementRecord) error {
	binary.Write(b, binary.LittleEndian, uint32(len(recs)))
	for _, r := range recs {
		binary.Write(b, binary.LittleEndian, recKanjiElement{Text: r.Text, PriorityBucket: r.PriorityBucket})
	}
	return nil
}

func writeReadingElements(b *bytes.Buffer, recs []column.ReadingElementRecord) error {
	binary.Write(b, binary.LittleEndian, uint32(len(recs)))
	for _, r := range recs {
		binary.Write(b, binary.LittleEndian, recReadingElement{
			Text: r.Text, NoKanji: boolByte(r.NoKanji), PriorityBucket: r.PriorityBucket,
			RestrictStart: r.RestrictStart, RestrictCount: r.RestrictCount,
		})
	}
	return nil
}

func writeSenses(b *bytes.Buffer, recs []column.SenseRecord, glosses, restricts []uint32) error {
	binary.Write(b, binary.LittleEndian, uint32(len(recs)))
	for _, r := range recs {
		binary.Write(b, binary.LittleEndian, recSense{
			PartsOfSpeech: uint64(r.PartsOfSpeech),
			GlossStart:    r.GlossStart, GlossCount: r.GlossCount,
			RestrictStart: r.RestrictStart, RestrictCount: r.RestrictCount,
		})
	}
	binary.Write(b, binary.LittleEndian, uint32(len(glosses)))
	for _, g := range glosses {
		binary.Write(b, binary.LittleEndian, g)
	}
	binary.Write(b, binary.LittleEndian, uint32(len(restricts)))
	for _, r := range restricts {
		binary.Write(b, binary.LittleEndian, r)
	}
	return nil
}

func writeCharacters(b *bytes.Buffer, recs []column.CharacterRecord, readings, meanings []uint32) error {
	binary.Write(b, binary.LittleEndian, uint32(len(recs)))
	for _, r := range recs {
		binary.Write(b, binary.LittleEndian, recCharacter{
			Literal: uint32(r.Literal), Grade: r.Grade, StrokeCount: r.StrokeCount,
			Frequency: r.Frequency, JLPT: r.JLPT,
			ReadingStart: r.ReadingStart, ReadingCount: r.ReadingCount,
			MeaningStart: r.MeaningStart, MeaningCount: r.MeaningCount,
		})
	}
	binary.Write(b, binary.LittleEndian, uint32(len(readings)))
	for _, r := range readings {
		binary.Write(b, binary.LittleEndian, r)
	}
	binary.Write(b, binary.LittleEndian, uint32(len(meanings)))
	for _, m := range meanings {
		binary.Write(b, binary.LittleEndian, m)
	}
	return nil
}

func writeSequenceMap(b *bytes.Buffer, m map[uint32]uint32) error {
	seqs := make([]uint32, 0, len(m))
	for k := range m {
		seqs = append(seqs, k)
	}
	sortUint32(seqs)
	binary.Write(b, binary.LittleEndian, uint32(len(seqs)))
	for _, seq := range seqs {
		binary.Write(b, binary.LittleEndian, seq)
		binary.Write(b, binary.LittleEndian, m[seq])
	}
	return nil
}

func writeLiteralMap(b *bytes.Buffer, m map[rune]uint32) error {
	keys := make([]rune, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sortRune(keys)
	binary.Write(b, binary.LittleEndian, uint32(len(keys)))
	for _, k := range keys {
		binary.Write(b, binary.LittleEndian, uint32(k))
		binary.Write(b, binary.LittleEndian, m[k])
	}
	return nil
}

func writePhraseIndex(b *bytes.Buffer, in *column.Interner, entries []column.PhraseEntry, priorityOnly bool) error {
	hasPriority := func(e column.PhraseEntry) bool { return e.PriorityBucket < jmdict.NoPriorityBucket }
	count := 0
	for _, e := range entries {
		if !priorityOnly || hasPriority(e) {
			count++
		}
	}
	binary.Write(b, binary.LittleEndian, uint32(count))
	for _, e := range entries {
		if priorityOnly && !hasPriority(e) {
			continue
		}
		binary.Write(b, binary.LittleEndian, recPhrase{
			TextID: in.Intern(e.Text), EntryIdx: e.EntryIdx, PriorityBucket: e.PriorityBucket,
		})
	}
	return nil
}

func boolByte(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}

func sortUint32(s []uint32) {
	sort.Slice(s, func(i, j int) bool { return s[i] < s[j] })
}

func sortRune(s []rune) {
	sort.Slice(s, func(i, j int) bool { return s[i] < s[j] })
}
