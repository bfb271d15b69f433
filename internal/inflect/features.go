// Package inflect implements the rule-driven conjugation engine: given an
// entry's surface/reading pairs and part-of-speech set, it produces the full
// inflection table keyed by a closed set of grammatical features. Table keys
// are bitsets, never strings, so a feature combination is a single integer
// comparison rather than a string join.
package inflect

// Feature is one bit of the closed inflection-feature enumeration.
type Feature uint32

const (
	Past Feature = 1 << iota
	Negative
	Polite
	Te
	Short
	Causative
	Passive
	Potential
	Volitional
	Imperative
	Conditional
	Chau
	TeIru
	TeAru
	TeIku
	TeKuru
	TeShimau
	TeOku
)

// FeatureSet is a set of Feature values. It is comparable and usable as a map
// key directly.
type FeatureSet uint32

// With returns a new set with every given feature added.
func With(features ...Feature) FeatureSet {
	var s FeatureSet
	for _, f := range features {
		s |= FeatureSet(f)
	}
	return s
}

// Has reports whether f is present in s.
func (s FeatureSet) Has(f Feature) bool {
	return s&FeatureSet(f) != 0
}

// Plus returns a new set with f added to s.
func (s FeatureSet) Plus(f Feature) FeatureSet {
	return s | FeatureSet(f)
}

// Kind classifies which conjugation table a Conjugation's forms came from.
type Kind int

const (
	KindVerb Kind = iota
	KindAdjective
)

// NoKanji is the ReadingKey.KanjiIndex sentinel for a permutation that has
// no kanji surface at all, only a reading.
const NoKanji uint8 = 0xFF

// ReadingKey identifies which kanji/reading surface pairing of an entry a
// Conjugation's forms were generated from: KanjiIndex/ReadingIndex index
// into that entry's own kanji/reading element lists, with KanjiIndex ==
// NoKanji for a reading that stands without a kanji form.
type ReadingKey struct {
	KanjiIndex   uint8
	ReadingIndex uint8
}

// Conjugation is the complete inflection table for one reading permutation
// of an entry, tagged with the part-of-speech class it was produced from.
type Conjugation struct {
	Key   ReadingKey
	Forms []Form
	Kind  Kind
}
