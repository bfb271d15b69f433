// Package inflect's engine entry point. Conjugate takes a dictionary-form
// surface/reading pair and a part of speech and produces every inflected
// form the engine knows, each tagged with the FeatureSet it represents.
//
// Every non-KS godan tag reaches the same row table — the real discriminant
// is the surface's terminal kana, not the individual VerbGodan* tag — so
// dispatch collapses to nine shared row tables plus the 行く exception
// rather than one case per tag.
package inflect

import (
	"strings"

	"github.com/lanastasov/jpv/internal/pos"
)

// Word is one surface/reading pairing to conjugate, already selected by the
// caller from an entry's reading/kanji elements — restrict-list application
// happens before conjugation, not inside it.
type Word struct {
	Kanji   string
	Reading string
}

// Form is one produced inflection: the surface/reading text plus the feature
// set it represents.
type Form struct {
	Kanji    string
	Reading  string
	Features FeatureSet
}

// formPair is a kanji/reading suffix pair. For every class but kuru the two
// sides are identical text; kuru needs distinct text because of its reading
// alternation (来/き/こ/く).
type formPair struct {
	kanji   string
	reading string
}

// Conjugate produces every inflected form of word for the given part of
// speech. ok is false when part is not an inflectable class, in which case
// the caller should treat word as invariant.
func Conjugate(word Word, part pos.PartOfSpeech) ([]Form, bool) {
	switch {
	case part == pos.VerbIchidan || part == pos.VerbIchidanS:
		return conjugateStrip(word, "る", wrapUniform(ichidanForms()), "", false, true), true
	case part == pos.VerbSuruSpecial || part == pos.VerbSuruIncluded:
		return conjugateStrip(word, "する", wrapUniform(suruForms()), "", false, true), true
	case part == pos.VerbKuru:
		return conjugateKuru(word), true
	case part == pos.AdjectiveI:
		return conjugateStrip(word, "い", wrapUniform(adjectiveIForms()), "", false, false), true
	case part == pos.AdjectiveIx:
		return conjugateStrip(word, "い", wrapUniform(adjectiveIxForms()), "", false, false), true
	case part == pos.AdjectiveNa:
		return conjugateStrip(word, "", wrapUniform(adjectiveNaForms()), "", false, false), true
	case part == pos.VerbGodanKS:
		return conjugateGodan(word, godanIku, "く"), true
	case part.IsVerb():
		return conjugateGodanByTerminal(word)
	}
	return nil, false
}

func wrapUniform(m map[FeatureSet]string) map[FeatureSet]formPair {
	out := make(map[FeatureSet]formPair, len(m))
	for k, v := range m {
		out[k] = formPair{kanji: v, reading: v}
	}
	return out
}

// conjugateGodanByTerminal resolves the row table from the reading's
// terminal rune (the reading, not the kanji, always carries the true okurigana
// since kanji surfaces can hide it, e.g. 行く's く is visible but some
// entries have irregular okurigana spans).
func conjugateGodanByTerminal(word Word) ([]Form, bool) {
	stemRune := []rune(word.Reading)
	if len(stemRune) == 0 {
		return nil, false
	}
	row, ok := godanRowFor(stemRune[len(stemRune)-1])
	if !ok {
		return nil, false
	}
	return conjugateGodan(word, row, string(stemRune[len(stemRune)-1])), true
}

func conjugateGodan(word Word, row godanRow, terminal string) []Form {
	forms := row.forms()
	forms[With()] = terminal
	forms[With(Te)] = row.te
	pairs := wrapUniform(forms)
	results := conjugateStrip(word, terminal, pairs, row.teStem, row.de, true)
	return results
}

func conjugateKuru(word Word) []Form {
	kanjiStem := strings.TrimSuffix(word.Kanji, "来る")
	readingStem := strings.TrimSuffix(word.Reading, "くる")
	// Every kanji suffix carries its own 来, so a bare 来る (empty kanji stem)
	// still has a kanji surface; only a word with no kanji spelling gets none.
	kanjiForm := func(suffix string) string {
		if word.Kanji == "" {
			return ""
		}
		return kanjiStem + suffix
	}
	forms := kuruForms()
	results := make([]Form, 0, len(forms)+teChainCapacity)
	for fs, pair := range forms {
		results = append(results, Form{
			Kanji:    kanjiForm(pair.kanji),
			Reading:  readingStem + pair.reading,
			Features: fs,
		})
	}
	if te, ok := forms[With(Te)]; ok {
		results = append(results, teChain(kanjiForm("来"), strings.TrimPrefix(te.kanji, "来"), readingStem, te.reading)...)
		results = append(results, Form{
			Kanji:    kanjiForm("来ちゃう"),
			Reading:  readingStem + "きちゃう",
			Features: With(Chau),
		})
	}
	return results
}

// conjugateStrip is the shared worker for every non-kuru class: it strips
// terminal from both the kanji and reading dictionary forms, applies pairs to
// the resulting stems, and (when withTeChain) grafts the te-derived
// auxiliaries and the chau contraction.
func conjugateStrip(word Word, terminal string, pairs map[FeatureSet]formPair, teStem string, sonorized, withTeChain bool) []Form {
	kanjiStem := strings.TrimSuffix(word.Kanji, terminal)
	readingStem := strings.TrimSuffix(word.Reading, terminal)

	results := make([]Form, 0, len(pairs)+8)
	for fs, p := range pairs {
		results = append(results, Form{
			Kanji:    appendIfNonEmpty(kanjiStem, p.kanji),
			Reading:  readingStem + p.reading,
			Features: fs,
		})
	}

	if !withTeChain {
		return results
	}

	te, ok := pairs[With(Te)]
	if !ok {
		return results
	}
	results = append(results, teChain(kanjiStem, te.kanji, readingStem, te.reading)...)

	chauSuffix := teStem + "ゃう"
	if sonorized {
		chauSuffix = teStem + "じゃう"
	} else if teStem != "" {
		chauSuffix = teStem + "ちゃう"
	} else {
		chauSuffix = "ちゃう"
	}
	results = append(results, Form{
		Kanji:    appendIfNonEmpty(kanjiStem, chauSuffix),
		Reading:  readingStem + chauSuffix,
		Features: With(Chau),
	})
	return results
}

// tenseGrid is the eight tense/polarity combinations every te-form auxiliary
// carries through its own conjugation: plain, negative, polite, past, and
// their pairings.
var tenseGrid = []FeatureSet{
	With(),
	With(Negative),
	With(Polite),
	With(Past),
	With(Negative, Polite),
	With(Past, Polite),
	With(Past, Negative),
	With(Past, Negative, Polite),
}

// teAux is one auxiliary verb that can follow a te-form (ている, てある,
// ていく, てくる, てしまう, ておく), fully conjugated across tenseGrid rather
// than grafted on as a bare literal. short, when set, is the contracted
// text used for the auxiliary's colloquial Short variant (食べてる,
// 食べとく) instead of its full dictionary suffix.
type teAux struct {
	feature Feature
	table   map[FeatureSet]string
	short   string
}

// teChainCapacity approximates the number of forms teChain produces (six
// auxiliaries times the eight-entry tense grid, plus two Short variants),
// used only to size the caller's initial slice allocation.
const teChainCapacity = 6*8 + 2

// prefixGrid restricts forms to tenseGrid's eight keys and prepends stem to
// each surviving suffix, turning a verb class's own conjugation table into
// one auxiliary's tense/polarity grid.
func prefixGrid(stem string, forms map[FeatureSet]string) map[FeatureSet]string {
	out := make(map[FeatureSet]string, len(tenseGrid))
	for _, fs := range tenseGrid {
		if v, ok := forms[fs]; ok {
			out[fs] = stem + v
		}
	}
	return out
}

// teAuxiliaryTables builds the tense/polarity grid for every te-form
// auxiliary by re-running it through the same rule tables a standalone verb
// of its class would use: いる and くる conjugate as themselves (ichidan and
// kuru respectively), ある/いく/しまう/おく conjugate as godan verbs of their
// own terminal kana.
func teAuxiliaryTables() []teAux {
	aru := godanRu.forms()
	aru[With()] = "る"
	iku := godanIku.forms()
	iku[With()] = "く"
	shimau := godanU.forms()
	shimau[With()] = "う"
	oku := godanKu.forms()
	oku[With()] = "く"

	kuru := make(map[FeatureSet]string, len(tenseGrid))
	for _, fs := range tenseGrid {
		if v, ok := kuruForms()[fs]; ok {
			kuru[fs] = v.reading
		}
	}

	return []teAux{
		{feature: TeIru, table: prefixGrid("い", ichidanForms()), short: "る"},
		{feature: TeAru, table: prefixGrid("あ", aru)},
		{feature: TeIku, table: prefixGrid("い", iku)},
		{feature: TeShimau, table: prefixGrid("しま", shimau)},
		{feature: TeOku, table: prefixGrid("お", oku), short: "く"},
		{feature: TeKuru, table: kuru},
	}
}

// teChain grafts every te-form auxiliary onto the already-built Te fragment,
// producing each auxiliary's full tense/polarity grid (TeIru+Negative,
// TeIru+Past, TeIru+Polite, ...) plus its Short contraction where the
// language has one (食べてる, 食べとく).
func teChain(kanjiStem, teKanji, readingStem, teReading string) []Form {
	out := make([]Form, 0, teChainCapacity)
	// ておく contracts to とく and でおく to どく (食べとく, 飲んどく): the
	// te-fragment's final て/で becomes と/ど before the short suffix.
	contract := func(te string) string {
		if strings.HasSuffix(te, "で") {
			return strings.TrimSuffix(te, "で") + "ど"
		}
		return strings.TrimSuffix(te, "て") + "と"
	}
	for _, aux := range teAuxiliaryTables() {
		for fs, text := range aux.table {
			out = append(out, Form{
				Kanji:    appendIfNonEmpty(kanjiStem, teKanji+text),
				Reading:  readingStem + teReading + text,
				Features: With(Te, aux.feature) | fs,
			})
		}
		if aux.short != "" {
			kTe, rTe := teKanji, teReading
			if aux.feature == TeOku {
				kTe, rTe = contract(teKanji), contract(teReading)
			}
			out = append(out, Form{
				Kanji:    appendIfNonEmpty(kanjiStem, kTe+aux.short),
				Reading:  readingStem + rTe + aux.short,
				Features: With(Te, aux.feature, Short),
			})
		}
	}
	return out
}

func appendIfNonEmpty(stem, suffix string) string {
	if stem == "" {
		return ""
	}
	return stem + suffix
}
