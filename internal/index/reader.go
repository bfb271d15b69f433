package index

import (
	"encoding/binary"
	"fmt"
	"sort"
	"unsafe"

	"github.com/edsrzf/mmap-go"

	"github.com/lanastasov/jpv/internal/pos"
)

// Reader is an opened, immutable index image. It never mutates after Open
// returns, so every method is safe to call concurrently from multiple
// goroutines without locking.
type Reader struct {
	data mmap.MMap // nil when opened from an in-memory []byte instead of a file
	buf  []byte

	strings []byte
	spans   []stringSpan

	entries         []entryView
	kanjiElements   []kanjiElementView
	readingElements []readingElementView
	senses          []senseView
	glosses         []uint32
	restricts       []uint32
	characters      []characterView
	readingRefs     []uint32
	meaningRefs     []uint32

	sequenceMap []seqMapEntry
	literalMap  []literalMapEntry
	phraseIndex []phraseView
	priorityIndex []phraseView
}

// Open validates and maps a byte slice already read into memory (e.g. via
// os.ReadFile), with no OS-level mmap involved. Use OpenFile for true
// zero-copy mapping of a file on disk.
func Open(buf []byte) (*Reader, error) {
	return newReader(buf, nil)
}

// OpenFile memory-maps path and opens it as an index image. The returned
// Reader holds the mapping open until Close is called.
func OpenFile(path string) (*Reader, error) {
	f, err := openForMmap(path)
	if err != nil {
		return nil, &ImageError{Msg: err.Error()}
	}
	defer f.Close()

	m, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return nil, &ImageError{Msg: "mmap: " + err.Error()}
	}
	r, err := newReader([]byte(m), m)
	if err != nil {
		m.Unmap()
		return nil, err
	}
	return r, nil
}

// Close unmaps the file backing r, if any. It is a no-op for Readers opened
// via Open.
func (r *Reader) Close() error {
	if r.data != nil {
		return r.data.Unmap()
	}
	return nil
}

func newReader(buf []byte, mapping mmap.MMap) (*Reader, error) {
	if len(buf) < headerSize {
		return nil, &ImageError{Msg: "file too small for header"}
	}
	if string(buf[0:4]) != Magic {
		return nil, &ImageError{Msg: fmt.Sprintf("bad magic %q", buf[0:4])}
	}
	version := binary.LittleEndian.Uint16(buf[4:6])
	if version != FormatVersion {
		return nil, &ImageError{Msg: fmt.Sprintf("unsupported format version %d", version)}
	}
	dirOffset := binary.LittleEndian.Uint64(buf[8:16])
	if dirOffset > uint64(len(buf)) {
		return nil, &ImageError{Msg: "directory offset out of range"}
	}

	dirs, err := readDirectory(buf, dirOffset)
	if err != nil {
		return nil, err
	}

	r := &Reader{data: mapping, buf: buf}
	for _, d := range dirs {
		section, err := sliceFor(buf, d)
		if err != nil {
			return nil, err
		}
		if err := r.loadColumn(d.ColumnID, section); err != nil {
			return nil, err
		}
	}
	return r, nil
}

func readDirectory(buf []byte, offset uint64) ([]dirEntry, error) {
	if offset+4 > uint64(len(buf)) {
		return nil, &ImageError{Msg: "truncated directory count"}
	}
	count := binary.LittleEndian.Uint32(buf[offset : offset+4])
	pos := offset + 4
	dirs := make([]dirEntry, 0, count)
	for i := uint32(0); i < count; i++ {
		if pos+uint64(directoryEntrySize) > uint64(len(buf)) {
			return nil, &ImageError{Msg: "truncated directory entry"}
		}
		dirs = append(dirs, dirEntry{
			ColumnID: ColumnID(binary.LittleEndian.Uint16(buf[pos : pos+2])),
			Reserved: binary.LittleEndian.Uint16(buf[pos+2 : pos+4]),
			Offset:   binary.LittleEndian.Uint64(buf[pos+4 : pos+12]),
			Length:   binary.LittleEndian.Uint64(buf[pos+12 : pos+20]),
		})
		pos += uint64(directoryEntrySize)
	}
	return dirs, nil
}

func sliceFor(buf []byte, d dirEntry) ([]byte, error) {
	if d.Offset > uint64(len(buf)) || d.Offset+d.Length > uint64(len(buf)) {
		return nil, &ImageError{Msg: fmt.Sprintf("column %d out of range", d.ColumnID)}
	}
	return buf[d.Offset : d.Offset+d.Length], nil
}

// bytesToString aliases b's backing array as a string with no copy. Safe
// here because the Reader guarantees buf outlives every returned string (it
// is either a caller-owned []byte or an mmap held open until Close), and
// byte<->string conversion carries no alignment requirement.
func bytesToString(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(&b[0], len(b))
}

type stringSpan struct {
	offset, length uint32
}

// String returns the interned text for id with no allocation.
func (r *Reader) String(id uint32) string {
	sp := r.spans[id]
	return bytesToString(r.strings[sp.offset : sp.offset+sp.length])
}

type seqMapEntry struct {
	Sequence uint32
	EntryIdx uint32
}

type literalMapEntry struct {
	Literal  rune
	CharIdx  uint32
}

type phraseView struct {
	TextID         uint32
	EntryIdx       uint32
	PriorityBucket uint8
}

type entryView struct {
	Sequence            uint32
	KanjiElementStart    uint32
	KanjiElementCount    uint32
	ReadingElementStart  uint32
	ReadingElementCount  uint32
	SenseStart           uint32
	SenseCount           uint32
}

type kanjiElementView struct {
	Text           uint32
	PriorityBucket uint8
}

type readingElementView struct {
	Text           uint32
	NoKanji        bool
	PriorityBucket uint8
	RestrictStart  uint32
	RestrictCount  uint32
}

type senseView struct {
	PartsOfSpeech pos.Set
	GlossStart    uint32
	GlossCount    uint32
	RestrictStart uint32
	RestrictCount uint32
}

type characterView struct {
	Literal      rune
	Grade        int32
	StrokeCount  int32
	Frequency    int32
	JLPT         int32
	ReadingStart uint32
	ReadingCount uint32
	MeaningStart uint32
	MeaningCount uint32
}

func (r *Reader) loadColumn(id ColumnID, section []byte) error {
	switch id {
	case ColumnStrings:
		return r.loadStrings(section)
	case ColumnEntries:
		return r.loadEntries(section)
	case ColumnKanjiElements:
		return r.loadKanjiElements(section)
	case ColumnReadingElements:
		return r.loadReadingElements(section)
	case ColumnSenses:
		return r.loadSenses(section)
	case ColumnCharacters:
		return r.loadCharacters(section)
	case ColumnSequenceMap:
		return r.loadSequenceMap(section)
	case ColumnLiteralMap:
		return r.loadLiteralMap(section)
	case ColumnPhraseIndex:
		pv, err := loadPhraseView(section)
		if err != nil {
			return err
		}
		r.phraseIndex = pv
		return nil
	case ColumnPriorityIndex:
		pv, err := loadPhraseView(section)
		if err != nil {
			return err
		}
		r.priorityIndex = pv
		return nil
	}
	return nil // unknown future column ids are ignored, not fatal
}

type byteReader struct {
	b   []byte
	pos int
}

func (br *byteReader) u32() (uint32, error) {
	if br.pos+4 > len(br.b) {
		return 0, &ImageError{Msg: "truncated column body"}
	}
	v := binary.LittleEndian.Uint32(br.b[br.pos:])
	br.pos += 4
	return v, nil
}

func (br *byteReader) u64() (uint64, error) {
	if br.pos+8 > len(br.b) {
		return 0, &ImageError{Msg: "truncated column body"}
	}
	v := binary.LittleEndian.Uint64(br.b[br.pos:])
	br.pos += 8
	return v, nil
}

func (br *byteReader) u8() (uint8, error) {
	if br.pos+1 > len(br.b) {
		return 0, &ImageError{Msg: "truncated column body"}
	}
	v := br.b[br.pos]
	br.pos++
	return v, nil
}

func (br *byteReader) skip(n int) error {
	if br.pos+n > len(br.b) {
		return &ImageError{Msg: "truncated column body"}
	}
	br.pos += n
	return nil
}

func (r *Reader) loadStrings(section []byte) error {
	br := &byteReader{b: section}
	arenaLen, err := br.u32()
	if err != nil {
		return err
	}
	if br.pos+int(arenaLen) > len(section) {
		return &ImageError{Msg: "string arena truncated"}
	}
	r.strings = section[br.pos : br.pos+int(arenaLen)]
	br.pos += int(arenaLen)

	spanCount, err := br.u32()
	if err != nil {
		return err
	}
	r.spans = make([]stringSpan, spanCount)
	for i := range r.spans {
		off, err := br.u32()
		if err != nil {
			return err
		}
		ln, err := br.u32()
		if err != nil {
			return err
		}
		r.spans[i] = stringSpan{offset: off, length: ln}
	}
	return nil
}

func (r *Reader) loadEntries(section []byte) error {
	br := &byteReader{b: section}
	count, err := br.u32()
	if err != nil {
		return err
	}
	r.entries = make([]entryView, count)
	for i := range r.entries {
		var fields [7]uint32
		for j := range fields {
			fields[j], err = br.u32()
			if err != nil {
				return err
			}
		}
		r.entries[i] = entryView{
			Sequence: fields[0], KanjiElementStart: fields[1], KanjiElementCount: fields[2],
			ReadingElementStart: fields[3], ReadingElementCount: fields[4],
			SenseStart: fields[5], SenseCount: fields[6],
		}
	}
	return nil
}

func (r *Reader) loadKanjiElements(section []byte) error {
	br := &byteReader{b: section}
	count, err := br.u32()
	if err != nil {
		return err
	}
	r.kanjiElements = make([]kanjiElementView, count)
	for i := range r.kanjiElements {
		text, err := br.u32()
		if err != nil {
			return err
		}
		p, err := br.u8()
		if err != nil {
			return err
		}
		if err := br.skip(3); err != nil {
			return err
		}
		r.kanjiElements[i] = kanjiElementView{Text: text, PriorityBucket: p}
	}
	return nil
}

func (r *Reader) loadReadingElements(section []byte) error {
	br := &byteReader{b: section}
	count, err := br.u32()
	if err != nil {
		return err
	}
	r.readingElements = make([]readingElementView, count)
	for i := range r.readingElements {
		text, err := br.u32()
		if err != nil {
			return err
		}
		nk, err := br.u8()
		if err != nil {
			return err
		}
		p, err := br.u8()
		if err != nil {
			return err
		}
		if err := br.skip(2); err != nil {
			return err
		}
		rs, err := br.u32()
		if err != nil {
			return err
		}
		rc, err := br.u32()
		if err != nil {
			return err
		}
		r.readingElements[i] = readingElementView{
			Text: text, NoKanji: nk != 0, PriorityBucket: p, RestrictStart: rs, RestrictCount: rc,
		}
	}
	return nil
}

func (r *Reader) loadSenses(section []byte) error {
	br := &byteReader{b: section}
	count, err := br.u32()
	if err != nil {
		return err
	}
	r.senses = make([]senseView, count)
	for i := range r.senses {
		p, err := br.u64()
		if err != nil {
			return err
		}
		gs, err := br.u32()
		if err != nil {
			return err
		}
		gc, err := br.u32()
		if err != nil {
			return err
		}
		rs, err := br.u32()
		if err != nil {
			return err
		}
		rc, err := br.u32()
		if err != nil {
			return err
		}
		r.senses[i] = senseView{PartsOfSpeech: pos.Set(p), GlossStart: gs, GlossCount: gc, RestrictStart: rs, RestrictCount: rc}
	}

	glossLen, err := br.u32()
	if err != nil {
		return err
	}
	r.glosses = make([]uint32, glossLen)
	for i := range r.glosses {
		r.glosses[i], err = br.u32()
		if err != nil {
			return err
		}
	}

	restrictLen, err := br.u32()
	if err != nil {
		return err
	}
	r.restricts = make([]uint32, restrictLen)
	for i := range r.restricts {
		r.restricts[i], err = br.u32()
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *Reader) loadCharacters(section []byte) error {
	br := &byteReader{b: section}
	count, err := br.u32()
	if err != nil {
		return err
	}
	r.characters = make([]characterView, count)
	for i := range r.characters {
		var u [9]uint32
		lit, err := br.u32()
		if err != nil {
			return err
		}
		u[0] = lit
		for j := 1; j < 9; j++ {
			u[j], err = br.u32()
			if err != nil {
				return err
			}
		}
		r.characters[i] = characterView{
			Literal: rune(u[0]), Grade: int32(u[1]), StrokeCount: int32(u[2]),
			Frequency: int32(u[3]), JLPT: int32(u[4]),
			ReadingStart: u[5], ReadingCount: u[6], MeaningStart: u[7], MeaningCount: u[8],
		}
	}

	readingLen, err := br.u32()
	if err != nil {
		return err
	}
	r.readingRefs = make([]uint32, readingLen)
	for i := range r.readingRefs {
		r.readingRefs[i], err = br.u32()
		if err != nil {
			return err
		}
	}

	meaningLen, err := br.u32()
	if err != nil {
		return err
	}
	r.meaningRefs = make([]uint32, meaningLen)
	for i := range r.meaningRefs {
		r.meaningRefs[i], err = br.u32()
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *Reader) loadSequenceMap(section []byte) error {
	br := &byteReader{b: section}
	count, err := br.u32()
	if err != nil {
		return err
	}
	r.sequenceMap = make([]seqMapEntry, count)
	for i := range r.sequenceMap {
		seq, err := br.u32()
		if err != nil {
			return err
		}
		idx, err := br.u32()
		if err != nil {
			return err
		}
		r.sequenceMap[i] = seqMapEntry{Sequence: seq, EntryIdx: idx}
	}
	return nil
}

func (r *Reader) loadLiteralMap(section []byte) error {
	br := &byteReader{b: section}
	count, err := br.u32()
	if err != nil {
		return err
	}
	r.literalMap = make([]literalMapEntry, count)
	for i := range r.literalMap {
		lit, err := br.u32()
		if err != nil {
			return err
		}
		idx, err := br.u32()
		if err != nil {
			return err
		}
		r.literalMap[i] = literalMapEntry{Literal: rune(lit), CharIdx: idx}
	}
	return nil
}

func loadPhraseView(section []byte) ([]phraseView, error) {
	br := &byteReader{b: section}
	count, err := br.u32()
	if err != nil {
		return nil, err
	}
	out := make([]phraseView, count)
	for i := range out {
		id, err := br.u32()
		if err != nil {
			return nil, err
		}
		idx, err := br.u32()
		if err != nil {
			return nil, err
		}
		p, err := br.u8()
		if err != nil {
			return nil, err
		}
		if err := br.skip(3); err != nil {
			return nil, err
		}
		out[i] = phraseView{TextID: id, EntryIdx: idx, PriorityBucket: p}
	}
	return out, nil
}

// LookupSequence resolves a JMdict sequence number to an entry index.
func (r *Reader) LookupSequence(seq uint32) (uint32, bool) {
	i := sort.Search(len(r.sequenceMap), func(i int) bool { return r.sequenceMap[i].Sequence >= seq })
	if i < len(r.sequenceMap) && r.sequenceMap[i].Sequence == seq {
		return r.sequenceMap[i].EntryIdx, true
	}
	return 0, false
}

// LookupLiteral resolves a kanji literal to a character index.
func (r *Reader) LookupLiteral(literal rune) (uint32, bool) {
	i := sort.Search(len(r.literalMap), func(i int) bool { return r.literalMap[i].Literal >= literal })
	if i < len(r.literalMap) && r.literalMap[i].Literal == literal {
		return r.literalMap[i].CharIdx, true
	}
	return 0, false
}

// EntryCount reports how many entries the image holds.
func (r *Reader) EntryCount() int { return len(r.entries) }

// CharacterCount reports how many KANJIDIC2 characters the image holds.
func (r *Reader) CharacterCount() int { return len(r.characters) }
