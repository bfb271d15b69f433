// Package jmdict parses JMdict and JMnedict XML into typed entry records.
// Each element is read by a recursive-descent reader function that pulls
// scanner events until its own close tag. Text is collected only inside leaf
// elements (readText), which reject nested elements and mismatched close
// tags; child elements a reader does not recognize are skipped, not
// rejected.
package jmdict

import "github.com/lanastasov/jpv/internal/pos"

// Entry is one JMdict/JMnedict entry: a sequence number, every surface
// spelling (kanji elements), every reading, and every sense.
type Entry struct {
	Sequence       uint32
	KanjiElements  []KanjiElement
	ReadingElements []ReadingElement
	Senses         []Sense
}

// KanjiElement is one <k_ele>: a kanji/kana surface spelling plus any
// informational tags (ateji, irregular okurigana, etc).
type KanjiElement struct {
	Text     string
	Info     []string
	Priority []string
}

// ReadingElement is one <r_ele>: a kana reading, whether it is true reading
// for every kanji surface (the common case) or restricted to a subset
// (re_restr), plus informational tags and priority markers.
type ReadingElement struct {
	Text       string
	NoKanji    bool
	Restrict   []string // kanji surfaces this reading applies to; empty = all
	Info       []string
	Priority   []string
}

// Sense is one <sense>: the parts of speech it inflects as, the kanji/reading
// surfaces it is restricted to (if any), cross-references, glosses, and
// example sentences.
type Sense struct {
	PartsOfSpeech    pos.Set
	RestrictToKanji  []string
	RestrictToReading []string
	Fields           []string
	Misc             []string
	Dialects         []string
	CrossReferences  []string
	Antonyms         []string
	Glosses          []Gloss
	Examples         []ExampleSentence
}

// Gloss is one <gloss>: translated text in a target language, with an
// optional gender/type annotation.
type Gloss struct {
	Lang string
	Text string
	Type string
}

// ExampleSentence is one <example> block: the source sentence text in
// Japanese and its translation, plus the example-corpus sentence id it was
// drawn from.
type ExampleSentence struct {
	SourceID string
	Text     string
	Translation string
}

// Applies reports whether a sense restriction list (RestrictToKanji /
// RestrictToReading, or a reading's Restrict list) permits surface. An empty
// list means "applies to everything"; restrict-list application happens
// before conjugation, not inside it.
func Applies(restrictList []string, surface string) bool {
	if len(restrictList) == 0 {
		return true
	}
	for _, r := range restrictList {
		if r == surface {
			return true
		}
	}
	return false
}
