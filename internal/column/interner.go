// Package column implements the append-only columnar store the index
// builder assembles entries, readings, senses, and characters into before
// serialization: a deduplicating string interner plus one slice per record
// kind, insertion order doubling as canonical order.
package column

// Span is a byte range into an Interner's arena.
type Span struct {
	Offset uint32
	Length uint32
}

// Interner deduplicates strings into a single backing arena by content, so
// two entries sharing a gloss or reading text only pay for it once.
type Interner struct {
	arena []byte
	ids   map[string]uint32
	spans []Span
}

// NewInterner creates an empty Interner.
func NewInterner() *Interner {
	return &Interner{ids: make(map[string]uint32)}
}

// Intern returns the id for s, allocating a new arena entry only if s has not
// been seen before.
func (in *Interner) Intern(s string) uint32 {
	if id, ok := in.ids[s]; ok {
		return id
	}
	offset := uint32(len(in.arena))
	in.arena = append(in.arena, s...)
	id := uint32(len(in.spans))
	in.spans = append(in.spans, Span{Offset: offset, Length: uint32(len(s))})
	in.ids[s] = id
	return id
}

// String looks up the text an id was interned with.
func (in *Interner) String(id uint32) string {
	sp := in.spans[id]
	return string(in.arena[sp.Offset : sp.Offset+sp.Length])
}

// Arena returns the backing byte buffer every span indexes into.
func (in *Interner) Arena() []byte {
	return in.arena
}

// Spans returns every span in insertion (id) order.
func (in *Interner) Spans() []Span {
	return in.spans
}
