package inflect

import "strings"

// Fragments is a lazily-joined surface/reading pair plus a shared kana
// suffix. Concatenation only ever extends the suffix slice, so deriving one
// form from another (e.g. TeIru from Te) never re-copies the stem.
type Fragments struct {
	Kanji   []string
	Reading []string
	Suffix  []string
}

// NewFragments builds a Fragments from stem and suffix parts.
func NewFragments(kanji, reading, suffix []string) Fragments {
	return Fragments{Kanji: kanji, Reading: reading, Suffix: suffix}
}

// Concat returns a new Fragments whose suffix is extended by more.
func (f Fragments) Concat(more ...string) Fragments {
	suffix := make([]string, 0, len(f.Suffix)+len(more))
	suffix = append(suffix, f.Suffix...)
	suffix = append(suffix, more...)
	return Fragments{Kanji: f.Kanji, Reading: f.Reading, Suffix: suffix}
}

// IsEmpty reports whether f carries no text at all.
func (f Fragments) IsEmpty() bool {
	return len(f.Kanji) == 0 && len(f.Reading) == 0 && len(f.Suffix) == 0
}

// Surface renders the kanji-preferring surface form.
func (f Fragments) Surface() string {
	var b strings.Builder
	for _, s := range f.Kanji {
		b.WriteString(s)
	}
	for _, s := range f.Suffix {
		b.WriteString(s)
	}
	return b.String()
}

// ReadingText renders the all-kana reading form.
func (f Fragments) ReadingText() string {
	var b strings.Builder
	for _, s := range f.Reading {
		b.WriteString(s)
	}
	for _, s := range f.Suffix {
		b.WriteString(s)
	}
	return b.String()
}

// Full holds a word's dictionary-form surface and reading, plus any trailing
// extra text.
type Full struct {
	Kanji   string
	Reading string
	Extra   string
}

// NewFull builds a Full dictionary-form pair.
func NewFull(kanji, reading, extra string) Full {
	return Full{Kanji: kanji, Reading: reading, Extra: extra}
}
