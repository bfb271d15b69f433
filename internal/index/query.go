package index

import (
	"sort"
	"strings"
)

// EntryView is a read-only, string-resolved view over one stored entry.
type EntryView struct {
	Sequence uint32
	Kanji    []KanjiView
	Readings []ReadingView
	Senses   []SenseView
}

// KanjiView resolves one kanji element's interned text. PriorityBucket is
// the JMdict priority-tag ordinal (jmdict.PriorityBucket); lower is more
// common, jmdict.NoPriorityBucket means the surface carries no priority tag.
type KanjiView struct {
	Text           string
	PriorityBucket uint8
}

// ReadingView resolves one reading element's interned text and restrict
// list.
type ReadingView struct {
	Text           string
	NoKanji        bool
	PriorityBucket uint8
	Restrict       []string
}

// SenseView resolves one sense's glosses and restrict lists.
type SenseView struct {
	PartsOfSpeech     uint64
	Glosses           []string
	RestrictToKanji   []string
	RestrictToReading []string
}

// Entry resolves entry index idx into a fully-stringed view. idx must come
// from LookupSequence, a phrase lookup, or an EntryCount-bounded range; out
// of range indices return the zero EntryView.
func (r *Reader) Entry(idx uint32) EntryView {
	if int(idx) >= len(r.entries) {
		return EntryView{}
	}
	e := r.entries[idx]

	kanji := make([]KanjiView, e.KanjiElementCount)
	for i := range kanji {
		k := r.kanjiElements[e.KanjiElementStart+uint32(i)]
		kanji[i] = KanjiView{Text: r.String(k.Text), PriorityBucket: k.PriorityBucket}
	}

	readings := make([]ReadingView, e.ReadingElementCount)
	for i := range readings {
		rd := r.readingElements[e.ReadingElementStart+uint32(i)]
		readings[i] = ReadingView{
			Text: r.String(rd.Text), NoKanji: rd.NoKanji, PriorityBucket: rd.PriorityBucket,
			Restrict: r.resolveRestrict(rd.RestrictStart, rd.RestrictCount),
		}
	}

	senses := make([]SenseView, e.SenseCount)
	for i := range senses {
		sv := r.senses[e.SenseStart+uint32(i)]
		glosses := make([]string, sv.GlossCount)
		for j := range glosses {
			glosses[j] = r.String(r.glosses[sv.GlossStart+uint32(j)])
		}
		restrict := r.resolveRestrict(sv.RestrictStart, sv.RestrictCount)
		senses[i] = SenseView{PartsOfSpeech: uint64(sv.PartsOfSpeech), Glosses: glosses, RestrictToKanji: restrict}
	}

	return EntryView{Sequence: e.Sequence, Kanji: kanji, Readings: readings, Senses: senses}
}

func (r *Reader) resolveRestrict(start, count uint32) []string {
	if count == 0 {
		return nil
	}
	out := make([]string, count)
	for i := range out {
		out[i] = r.String(r.restricts[start+uint32(i)])
	}
	return out
}

// CharacterView is a read-only, string-resolved view over one stored
// KANJIDIC2 character.
type CharacterView struct {
	Literal     rune
	Grade       int32
	StrokeCount int32
	Frequency   int32
	JLPT        int32
	Readings    []string
	Meanings    []string
}

// Character resolves character index idx into a fully-stringed view.
func (r *Reader) Character(idx uint32) CharacterView {
	if int(idx) >= len(r.characters) {
		return CharacterView{}
	}
	c := r.characters[idx]
	readings := make([]string, c.ReadingCount)
	for i := range readings {
		readings[i] = r.String(r.readingRefs[c.ReadingStart+uint32(i)])
	}
	meanings := make([]string, c.MeaningCount)
	for i := range meanings {
		meanings[i] = r.String(r.meaningRefs[c.MeaningStart+uint32(i)])
	}
	return CharacterView{
		Literal: c.Literal, Grade: c.Grade, StrokeCount: c.StrokeCount,
		Frequency: c.Frequency, JLPT: c.JLPT, Readings: readings, Meanings: meanings,
	}
}

// Match is one search hit: the entry it came from and the priority-tag
// ordinal (jmdict.PriorityBucket) its matched surface carries — lower is
// more common, jmdict.NoPriorityBucket means no priority tag at all.
type Match struct {
	EntryIdx       uint32
	PriorityBucket uint8
}

// SearchExact returns every entry whose surface (kanji or reading) equals
// text exactly, most-common-priority-bucket entries first.
func (r *Reader) SearchExact(text string) []Match {
	lo, hi := r.phraseRange(text, false)
	return r.collectMatches(lo, hi)
}

// SearchPrefix returns every entry whose surface starts with prefix, ranked
// by priority bucket then surface-then-sequence order.
func (r *Reader) SearchPrefix(prefix string) []Match {
	lo := sort.Search(len(r.phraseIndex), func(i int) bool { return r.String(r.phraseIndex[i].TextID) >= prefix })
	hi := sort.Search(len(r.phraseIndex), func(i int) bool { return r.String(r.phraseIndex[i].TextID) >= prefixUpperBound(prefix) })
	return r.collectMatches(lo, hi)
}

// SearchSubstring returns every entry whose surface (kanji or reading)
// contains text anywhere, ranked by priority bucket. Unlike SearchExact and
// SearchPrefix, this cannot binary-search the sorted phrase index — a
// substring may start at any position within a surface, not just its
// beginning — so it scans every phrase entry once.
func (r *Reader) SearchSubstring(text string) []Match {
	if text == "" {
		return nil
	}
	var out []Match
	for i := range r.phraseIndex {
		p := r.phraseIndex[i]
		if strings.Contains(r.String(p.TextID), text) {
			out = append(out, Match{EntryIdx: p.EntryIdx, PriorityBucket: p.PriorityBucket})
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].PriorityBucket < out[j].PriorityBucket })
	return out
}

func (r *Reader) phraseRange(text string, prefixOnly bool) (int, int) {
	lo := sort.Search(len(r.phraseIndex), func(i int) bool { return r.String(r.phraseIndex[i].TextID) >= text })
	hi := sort.Search(len(r.phraseIndex), func(i int) bool { return r.String(r.phraseIndex[i].TextID) > text })
	return lo, hi
}

func (r *Reader) collectMatches(lo, hi int) []Match {
	if lo >= hi {
		return nil
	}
	out := make([]Match, 0, hi-lo)
	for i := lo; i < hi; i++ {
		p := r.phraseIndex[i]
		out = append(out, Match{EntryIdx: p.EntryIdx, PriorityBucket: p.PriorityBucket})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].PriorityBucket < out[j].PriorityBucket })
	return out
}

// prefixUpperBound returns the smallest string that is lexicographically
// greater than every string starting with prefix, by incrementing prefix's
// final rune. Used to turn a prefix search into a half-open range scan over
// the sorted phrase index.
func prefixUpperBound(prefix string) string {
	r := []rune(prefix)
	if len(r) == 0 {
		return ""
	}
	r[len(r)-1]++
	return string(r)
}
