package inflect

import "unicode"

// Segment is one piece of a furigana-annotated surface: either a kanji run
// with its reading, or a plain (kana/other) run with no reading.
type Segment struct {
	Text    string
	Reading string // empty when Text needs no furigana
}

// Furigana splits surface into kanji/non-kanji runs and assigns each kanji
// run its corresponding slice of reading, anchored on the non-kanji runs that
// surround it, to align a conjugated form's kanji surface against its
// all-kana reading.
//
// When a kanji run's reading cannot be unambiguously isolated (two adjacent
// kanji runs with no kana between them), the whole ambiguous span is folded
// into a single segment rather than guessed at.
func Furigana(surface, reading string) []Segment {
	runs := splitRuns(surface)
	if len(runs) == 0 {
		return nil
	}

	readingRunes := []rune(reading)
	segments := make([]Segment, 0, len(runs))
	pos := 0

	for i, r := range runs {
		if !r.kanji {
			// Plain run: it must appear verbatim in reading at pos.
			text := []rune(r.text)
			if pos+len(text) > len(readingRunes) {
				segments = append(segments, Segment{Text: r.text})
				continue
			}
			pos += len(text)
			segments = append(segments, Segment{Text: r.text})
			continue
		}

		// Kanji run: find where the reading resumes by locating the next
		// non-kanji run's text in reading, starting the search at pos.
		end := len(readingRunes)
		if i+1 < len(runs) && !runs[i+1].kanji {
			next := []rune(runs[i+1].text)
			if idx := indexRunesFrom(readingRunes, next, pos); idx >= 0 {
				end = idx
			}
		}
		if end < pos {
			end = pos
		}
		segments = append(segments, Segment{
			Text:    r.text,
			Reading: string(readingRunes[pos:end]),
		})
		pos = end
	}

	return segments
}

type run struct {
	text  string
	kanji bool
}

func splitRuns(s string) []run {
	var runs []run
	var cur []rune
	curKanji := false
	started := false

	flush := func() {
		if len(cur) > 0 {
			runs = append(runs, run{text: string(cur), kanji: curKanji})
			cur = cur[:0]
		}
	}

	for _, r := range s {
		k := isKanji(r)
		if started && k != curKanji {
			flush()
		}
		cur = append(cur, r)
		curKanji = k
		started = true
	}
	flush()
	return runs
}

func isKanji(r rune) bool {
	return unicode.Is(unicode.Han, r)
}

func indexRunesFrom(haystack, needle []rune, from int) int {
	if len(needle) == 0 {
		return from
	}
	for i := from; i+len(needle) <= len(haystack); i++ {
		match := true
		for j, r := range needle {
			if haystack[i+j] != r {
				match = false
				break
			}
		}
		if match {
			return i
		}
	}
	return -1
}
