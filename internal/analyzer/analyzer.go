// Package analyzer implements greedy longest-match sentence segmentation:
// repeatedly take the longest prefix of the remaining text that resolves to
// a dictionary entry, either directly or as one of that entry's inflected
// forms, and advance past it.
package analyzer

import (
	"github.com/lanastasov/jpv/internal/index"
	"github.com/lanastasov/jpv/internal/inflect"
	"github.com/lanastasov/jpv/internal/pos"
	"github.com/lanastasov/jpv/internal/search"
)

// Segment is one recognized span of input text.
type Segment struct {
	Start    int
	End      int // exclusive, in runes
	Surface  string
	Entry    int // JMdict sequence number of the entry the match resolved to
	Features inflect.FeatureSet
	Inflected bool
}

// inflectableClass pairs a part of speech with the dictionary-form ending
// its lemma is stored with, so the analyzer can recover a candidate lemma
// from an inflected surface by trying each ending in turn.
var inflectableClasses = []struct {
	part   pos.PartOfSpeech
	ending string
}{
	{pos.VerbIchidan, "る"},
	{pos.VerbSuruIncluded, "する"},
	{pos.VerbKuru, "来る"},
	{pos.VerbKuru, "くる"},
	{pos.AdjectiveI, "い"},
	{pos.VerbGodanU, "う"}, {pos.VerbGodanTsu, "つ"}, {pos.VerbGodanRu, "る"},
	{pos.VerbGodanK, "く"}, {pos.VerbGodanG, "ぐ"}, {pos.VerbGodanM, "む"},
	{pos.VerbGodanB, "ぶ"}, {pos.VerbGodanN, "ぬ"}, {pos.VerbGodanS, "す"},
	{pos.VerbGodanKS, "く"},
}

// maxStemProbe bounds how many characters of the candidate surface the
// analyzer treats as a possible inflectional suffix when it cannot find an
// exact dictionary match. It is the longest suffix the engine appends to a
// stem: a te-form plus the negative-past-polite てしまう chain, e.g.
// 勉強「してしまいませんでした」 or 飲「んでしまいませんでした」 (11 kana).
const maxStemProbe = 11

// Analyzer drives segmentation over an Engine.
type Analyzer struct {
	engine *search.Engine
}

// New creates an Analyzer over an already-open search Engine.
func New(e *search.Engine) *Analyzer {
	return &Analyzer{engine: e}
}

// Next finds the longest match starting at the rune offset start in text. ok
// is false once start is at or past the end of text, or no match (not even a
// single character) is found at start, in which case the caller should
// advance one rune and retry.
func (a *Analyzer) Next(text string, start int) (Segment, bool) {
	runes := []rune(text)
	if start >= len(runes) {
		return Segment{}, false
	}

	for end := len(runes); end > start; end-- {
		candidate := string(runes[start:end])

		if results := a.engine.Exact(candidate, search.ModeAsIs); len(results) > 0 {
			return Segment{Start: start, End: end, Surface: candidate, Entry: int(results[0].Entry.Sequence)}, true
		}

		if seg, ok := a.matchInflected(candidate, start, end); ok {
			return seg, true
		}
	}
	return Segment{}, false
}

// matchInflected tries to explain candidate as an inflected form of some
// dictionary entry: for each inflectable class's dictionary ending, probe
// shrinking prefixes of candidate as the recovered stem, look the
// stem+ending lemma up, and confirm by actually conjugating it and checking
// the result reproduces candidate exactly.
func (a *Analyzer) matchInflected(candidate string, start, end int) (Segment, bool) {
	runes := []rune(candidate)
	probeLimit := len(runes)
	if probeLimit > maxStemProbe {
		probeLimit = maxStemProbe
	}

	for stemCut := 1; stemCut <= probeLimit; stemCut++ {
		if stemCut >= len(runes) {
			break
		}
		stem := string(runes[:len(runes)-stemCut])

		for _, class := range inflectableClasses {
			lemma := stem + class.ending
			results := a.engine.Exact(lemma, search.ModeAsIs)
			if len(results) == 0 {
				continue
			}
			for _, res := range results {
				if !hasPartOfSpeech(res.Entry.Senses, class.part) {
					continue
				}
				word := inflect.Word{Kanji: lemma, Reading: readingFor(res, lemma)}
				forms, ok := inflect.Conjugate(word, class.part)
				if !ok {
					continue
				}
				for _, f := range forms {
					if f.Kanji == candidate || f.Reading == candidate {
						return Segment{
							Start: start, End: end, Surface: candidate,
							Entry: int(res.Entry.Sequence), Features: f.Features, Inflected: true,
						}, true
					}
				}
			}
		}
	}
	return Segment{}, false
}

func hasPartOfSpeech(senses []index.SenseView, part pos.PartOfSpeech) bool {
	for _, s := range senses {
		if pos.Set(s.PartsOfSpeech).Has(part) {
			return true
		}
	}
	return false
}

func readingFor(res search.Result, kanjiLemma string) string {
	for _, k := range res.Entry.Kanji {
		if k.Text == kanjiLemma && len(res.Entry.Readings) > 0 {
			return res.Entry.Readings[0].Text
		}
	}
	if len(res.Entry.Readings) > 0 {
		return res.Entry.Readings[0].Text
	}
	return kanjiLemma
}
