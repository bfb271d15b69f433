// Package entities holds the DOCTYPE entity tables JMdict/JMnedict XML
// files declare for their part-of-speech, field, and dialect abbreviations
// (e.g. &v5r; expands to "Godan verb with 'ru' ending").
package entities

// Table is a flat name->expansion map implementing xmlio.EntityResolver.
type Table map[string]string

// Resolve looks up name, satisfying xmlio.EntityResolver.
func (t Table) Resolve(name string) (string, bool) {
	v, ok := t[name]
	return v, ok
}

// JMdict holds the standard JMdict entity declarations: part-of-speech,
// field-of-application, misc, and dialect tags. This is the fixed table
// published with the dictionary itself, not derived from any one release's
// DOCTYPE (which repeats it verbatim release to release).
var JMdict = Table{
	"v1":      "Ichidan verb",
	"v1-s":    "Ichidan verb - kureru special class",
	"v5aru":   "Godan verb - -aru special class",
	"v5b":     "Godan verb with 'bu' ending",
	"v5g":     "Godan verb with 'gu' ending",
	"v5k":     "Godan verb with 'ku' ending",
	"v5k-s":   "Godan verb - Iku/Yuku special class",
	"v5m":     "Godan verb with 'mu' ending",
	"v5n":     "Godan verb with 'nu' ending",
	"v5r":     "Godan verb with 'ru' ending",
	"v5r-i":   "Godan verb with 'ru' ending (irregular verb)",
	"v5s":     "Godan verb with 'su' ending",
	"v5t":     "Godan verb with 'tsu' ending",
	"v5u":     "Godan verb with 'u' ending",
	"v5u-s":   "Godan verb with 'u' ending (special class)",
	"v5uru":   "Godan verb - Uru old class verb (old form of Eru)",
	"vk":      "Kuru verb - special class",
	"vs":      "noun or participle which takes the aux. verb suru",
	"vs-s":    "suru verb - special class",
	"vs-i":    "suru verb - included",
	"adj-i":   "adjective (keiyoushi)",
	"adj-ix":  "adjective (keiyoushi) - yoi/ii class",
	"adj-na":  "adjectival nouns or quasi-adjectives (keiyodoshi)",
	"n":       "noun (common) (futsuumeishi)",
	"n-pr":    "proper noun",
	"adv":     "adverb (fukushi)",
	"prt":     "particle",
	"conj":    "conjunction",
	"int":     "interjection (kandoushi)",
	"pref":    "prefix",
	"suf":     "suffix",
	"exp":     "Expressions (phrases, clauses, etc.)",
	"pn":      "pronoun",
	"aux":     "auxiliary",
	"aux-v":   "auxiliary verb",
	"aux-adj": "auxiliary adjective",
	"ateji":   "ateji (phonetic) reading",
	"ik":      "word containing irregular kana usage",
	"gikun":   "gikun (meaning as reading) or jukujikun (special kanji reading)",
	"oK":      "word containing out-dated kanji or kanji usage",
	"ok":      "out-dated or obsolete kana usage",
	"uK":      "word usually written using kanji alone",
	"uk":      "word usually written using kana alone",
	"P":       "popular term (appears in the frequency-tagged subset)",
	"abbr":    "abbreviation",
	"arch":    "archaic",
	"chn":     "children's language",
	"col":     "colloquialism",
	"derog":   "derogatory",
	"hon":     "honorific or respectful (sonkeigo) language",
	"hum":     "humble (kenjougo) language",
	"id":      "idiomatic expression",
	"joc":     "jocular, humorous term",
	"male":    "male term or language",
	"fem":     "female term or language",
	"obs":     "obsolete term",
	"obsc":    "obscure term",
	"poet":    "poetical term",
	"pol":     "polite (teineigo) language",
	"rare":    "rare term",
	"sl":      "slang",
	"vulg":    "vulgar expression or word",
	"yoji":    "yojijukugo",
}

// KanjiDic2 holds the small set of entity declarations KANJIDIC2 uses for
// its reading/dictionary-reference type attributes.
var KanjiDic2 = Table{
	"ja_on":  "on-yomi reading",
	"ja_kun": "kun-yomi reading",
}
