package inflect

// godanRow is one row of the godan rule table: the suffixes to append after
// stripping a verb's terminal kana, indexed by which of the nine terminal
// kana {う,つ,る,く,ぐ,む,ぶ,ぬ,す} the verb ends in.
type godanRow struct {
	te          string
	teStem      string // the small-tsu stem used to build Chau (stem+ちゃ/じゃ)
	negative    string
	polite      string
	past        string
	volitional  string
	conditional string
	potential   string
	passive     string
	causative   string
	imperative  string
	de          bool // true when the te-form is sonorized (ぬ/ぶ/む/ぐ rows)
}

// Rows for the nine godan terminal kana, plus the 行く (iku) exception used
// only for PartOfSpeech.VerbGodanKS. Constant data, not generated code.
var (
	godanU = godanRow{
		te: "って", teStem: "っ", negative: "わない", polite: "います", past: "った",
		volitional: "おう", conditional: "えば", potential: "える", passive: "われる",
		causative: "わせる", imperative: "え",
	}
	godanTsu = godanRow{
		te: "って", teStem: "っ", negative: "たない", polite: "ちます", past: "った",
		volitional: "とう", conditional: "てば", potential: "てる", passive: "たれる",
		causative: "たせる", imperative: "て",
	}
	godanRu = godanRow{
		te: "って", teStem: "っ", negative: "らない", polite: "ります", past: "った",
		volitional: "ろう", conditional: "れば", potential: "れる", passive: "られる",
		causative: "らせる", imperative: "れ",
	}
	godanKu = godanRow{
		te: "いて", teStem: "い", negative: "かない", polite: "きます", past: "いた",
		volitional: "こう", conditional: "けば", potential: "ける", passive: "かれる",
		causative: "かせる", imperative: "け",
	}
	godanGu = godanRow{
		te: "いで", teStem: "い", negative: "がない", polite: "ぎます", past: "いだ",
		volitional: "ごう", conditional: "げば", potential: "げる", passive: "がれる",
		causative: "がせる", imperative: "げ", de: true,
	}
	godanMu = godanRow{
		te: "んで", teStem: "ん", negative: "まない", polite: "みます", past: "んだ",
		volitional: "もう", conditional: "めば", potential: "める", passive: "まれる",
		causative: "ませる", imperative: "め", de: true,
	}
	godanBu = godanRow{
		te: "んで", teStem: "ん", negative: "ばない", polite: "びます", past: "んだ",
		volitional: "ぼう", conditional: "べば", potential: "べる", passive: "ばれる",
		causative: "ばせる", imperative: "べ", de: true,
	}
	godanNu = godanRow{
		te: "んで", teStem: "ん", negative: "なない", polite: "にます", past: "んだ",
		volitional: "のう", conditional: "ねば", potential: "ねる", passive: "なれる",
		causative: "なせる", imperative: "ね", de: true,
	}
	godanSu = godanRow{
		te: "して", teStem: "し", negative: "さない", polite: "します", past: "した",
		volitional: "そう", conditional: "せば", potential: "せる", passive: "される",
		causative: "させる", imperative: "せ",
	}
	// godanIku is the 行く/いく exception: every row is identical to godanKu
	// except the te-form and past, which are irregular (行って, not 行いて).
	godanIku = godanRow{
		te: "って", teStem: "っ", negative: "かない", polite: "きます", past: "った",
		volitional: "こう", conditional: "けば", potential: "ける", passive: "かれる",
		causative: "かせる", imperative: "け",
	}
)

// godanRowFor resolves the rule row for a verb's terminal kana. ok is false
// when r is not one of the nine godan terminals, in which case the caller
// must silently skip the permutation rather than erroring.
func godanRowFor(r rune) (godanRow, bool) {
	switch r {
	case 'う':
		return godanU, true
	case 'つ':
		return godanTsu, true
	case 'る':
		return godanRu, true
	case 'く':
		return godanKu, true
	case 'ぐ':
		return godanGu, true
	case 'む':
		return godanMu, true
	case 'ぶ':
		return godanBu, true
	case 'ぬ':
		return godanNu, true
	case 'す':
		return godanSu, true
	}
	return godanRow{}, false
}

// forms expands a godan row into every feature set the engine produces for a
// plain godan verb (everything but Te, which the caller inserts separately so
// it can be reused to derive the te-chain auxiliaries).
func (g godanRow) forms() map[FeatureSet]string {
	return map[FeatureSet]string{
		With():                            "う", // overwritten by caller with the real terminal kana where needed
		With(Negative):                    g.negative,
		With(Polite):                      g.polite,
		With(Past):                        g.past,
		With(Negative, Polite):            trimLast(trimLast(g.polite)) + "ません",
		With(Past, Polite):                trimLast(trimLast(g.polite)) + "ました",
		With(Past, Negative):              trimLast(g.negative) + "かった",
		With(Past, Negative, Polite):      trimLast(trimLast(g.polite)) + "ませんでした",
		With(Volitional):                  g.volitional,
		With(Conditional):                 g.conditional,
		With(Potential):                   g.potential,
		With(Passive):                     g.passive,
		With(Causative):                   g.causative,
		With(Imperative):                  g.imperative,
	}
}

// trimLast drops the final rune of s; used to derive compound forms (ません,
// なかった, ...) from a row's base negative/polite suffix.
func trimLast(s string) string {
	r := []rune(s)
	if len(r) == 0 {
		return s
	}
	return string(r[:len(r)-1])
}
