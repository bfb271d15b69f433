// Package index serializes a column.Store into the on-disk image format and
// reads it back via a memory-mapped, zero-copy Reader.
//
// The image is a fixed little-endian header, a directory of column
// descriptors, and the column bodies themselves. Column bodies are encoded
// with encoding/binary rather than raw struct-memory aliasing: Go gives no
// portable guarantee of a struct's in-memory layout across architectures,
// so a true unsafe.Pointer cast of an arbitrary record type is not safe to
// write without compiling and running it on the target platform (see
// DESIGN.md). The one place this module does alias file memory directly is
// the string arena, via unsafe.String over the mmap'd bytes — the dominant
// share of image size, and safe because []byte->string aliasing has no
// alignment requirement.
package index

const (
	// Magic identifies an index image. Readers reject anything else.
	Magic = "JPV1"

	// FormatVersion is bumped whenever the column layout below changes in a
	// way old readers can't tolerate.
	FormatVersion uint16 = 1

	headerSize    = 4 + 2 + 2 + 8 // magic + version + reserved + directory_offset
	directoryEntrySize = 2 + 2 + 8 + 8 // column_id + reserved + offset + length
)

// ColumnID names one of the ten sections a directory entry can point at.
type ColumnID uint16

const (
	ColumnStrings ColumnID = iota + 1
	ColumnEntries
	ColumnReadingElements
	ColumnKanjiElements
	ColumnSenses
	ColumnCharacters
	ColumnSequenceMap
	ColumnLiteralMap
	ColumnPhraseIndex
	ColumnPriorityIndex
)

// dirEntry is one row of the on-disk directory.
type dirEntry struct {
	ColumnID ColumnID
	Reserved uint16
	Offset   uint64
	Length   uint64
}

// ImageError reports a problem with an index image's framing: bad magic,
// unsupported version, a directory entry pointing outside the file, or a
// truncated column body. Readers never panic on a malformed image; every
// failure mode surfaces as an ImageError instead.
type ImageError struct {
	Msg string
}

func (e *ImageError) Error() string { return "index: " + e.Msg }
