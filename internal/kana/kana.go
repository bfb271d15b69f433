// Package kana implements romaji->kana transliteration: a finite-state
// walk over Hepburn-style romaji producing hiragana or katakana, covering
// the gojūon grid, yōon digraphs, sokuon (geminate consonants), and the
// syllabic ん disambiguation that search preprocessing needs when a query
// arrives typed on an ASCII keyboard.
package kana

import "strings"

// Script selects which kana script ToKana renders into.
type Script int

const (
	Hiragana Script = iota
	Katakana
)

// syllables maps every romaji syllable the converter recognizes to its
// hiragana rendering. Katakana is derived by codepoint offset (hiragana and
// katakana occupy parallel Unicode blocks starting at U+3041/U+30A1).
var syllables = map[string]string{
	"a": "あ", "i": "い", "u": "う", "e": "え", "o": "お",
	"ka": "か", "ki": "き", "ku": "く", "ke": "け", "ko": "こ",
	"ga": "が", "gi": "ぎ", "gu": "ぐ", "ge": "げ", "go": "ご",
	"sa": "さ", "shi": "し", "si": "し", "su": "す", "se": "せ", "so": "そ",
	"za": "ざ", "ji": "じ", "zi": "じ", "zu": "ず", "ze": "ぜ", "zo": "ぞ",
	"ta": "た", "chi": "ち", "ti": "ち", "tsu": "つ", "tu": "つ", "te": "て", "to": "と",
	"da": "だ", "di": "ぢ", "du": "づ", "de": "で", "do": "ど",
	"na": "な", "ni": "に", "nu": "ぬ", "ne": "ね", "no": "の",
	"ha": "は", "hi": "ひ", "fu": "ふ", "hu": "ふ", "he": "へ", "ho": "ほ",
	"ba": "ば", "bi": "び", "bu": "ぶ", "be": "べ", "bo": "ぼ",
	"pa": "ぱ", "pi": "ぴ", "pu": "ぷ", "pe": "ぺ", "po": "ぽ",
	"ma": "ま", "mi": "み", "mu": "む", "me": "め", "mo": "も",
	"ya": "や", "yu": "ゆ", "yo": "よ",
	"ra": "ら", "ri": "り", "ru": "る", "re": "れ", "ro": "ろ",
	"wa": "わ", "wo": "を", "n": "ん",
	"va": "ゔぁ", "vi": "ゔぃ", "vu": "ゔ", "ve": "ゔぇ", "vo": "ゔぉ",

	// yōon digraphs
	"kya": "きゃ", "kyu": "きゅ", "kyo": "きょ",
	"gya": "ぎゃ", "gyu": "ぎゅ", "gyo": "ぎょ",
	"sha": "しゃ", "sya": "しゃ", "shu": "しゅ", "syu": "しゅ", "sho": "しょ", "syo": "しょ",
	"ja": "じゃ", "zya": "じゃ", "ju": "じゅ", "zyu": "じゅ", "jo": "じょ", "zyo": "じょ",
	"cha": "ちゃ", "tya": "ちゃ", "chu": "ちゅ", "tyu": "ちゅ", "cho": "ちょ", "tyo": "ちょ",
	"nya": "にゃ", "nyu": "にゅ", "nyo": "にょ",
	"hya": "ひゃ", "hyu": "ひゅ", "hyo": "ひょ",
	"bya": "びゃ", "byu": "びゅ", "byo": "びょ",
	"pya": "ぴゃ", "pyu": "ぴゅ", "pyo": "ぴょ",
	"mya": "みゃ", "myu": "みゅ", "myo": "みょ",
	"rya": "りゃ", "ryu": "りゅ", "ryo": "りょ",
}

// maxSyllableLen bounds the greedy match window; every key in syllables is
// at most 3 ASCII bytes.
const maxSyllableLen = 3

const hiraganaBase = 0x3041
const katakanaBase = 0x30A1
const kanaBlockSpan = 0x3096 - 0x3041 // shared span covered by both blocks

// ToKana transliterates romaji into the requested script. Runs it cannot
// recognize (already-kana text, punctuation, digits) pass through
// unchanged rather than erroring on mixed input.
func ToKana(romaji string, script Script) string {
	s := strings.ToLower(romaji)
	var b strings.Builder
	i := 0
	for i < len(s) {
		// Sokuon: a doubled consonant (not n/vowel) becomes っ/ッ plus the
		// syllable for the single consonant.
		if i+1 < len(s) && isGeminateConsonant(s[i]) && s[i] == s[i+1] {
			b.WriteString(sokuon(script))
			i++
			continue
		}

		// n followed by a consonant or end-of-input is a syllabic ん; n
		// followed by a vowel or y is consumed by the syllable table below
		// instead (na/nya/...), and n' forces the syllabic reading even
		// before a vowel.
		if s[i] == 'n' {
			if i+1 < len(s) && s[i+1] == '\'' {
				b.WriteString(kanaFor("n", script))
				i += 2
				continue
			}
			if i+1 >= len(s) || !isVowelOrY(s[i+1]) {
				b.WriteString(kanaFor("n", script))
				i++
				continue
			}
		}

		matched := false
		for l := maxSyllableLen; l >= 1; l-- {
			if i+l > len(s) {
				continue
			}
			if _, ok := syllables[s[i:i+l]]; ok {
				b.WriteString(kanaFor(s[i:i+l], script))
				i += l
				matched = true
				break
			}
		}
		if matched {
			continue
		}

		// Long-vowel mark: a bare hyphen in katakana mode renders as ー.
		if script == Katakana && s[i] == '-' {
			b.WriteString("ー")
			i++
			continue
		}

		// Unrecognized byte: pass the original rune through unchanged.
		r := []rune(s[i:])[0]
		b.WriteRune(r)
		i += len(string(r))
	}
	return b.String()
}

func kanaFor(syllable string, script Script) string {
	hira := syllables[syllable]
	if script == Hiragana {
		return hira
	}
	return shiftToKatakana(hira)
}

func sokuon(script Script) string {
	if script == Hiragana {
		return "っ"
	}
	return "ッ"
}

// shiftToKatakana remaps each hiragana rune onto its katakana counterpart by
// codepoint offset. Both Unicode blocks are laid out identically, so the
// shift is a constant added to every code point.
func shiftToKatakana(hira string) string {
	var b strings.Builder
	for _, r := range hira {
		if r >= hiraganaBase && r <= hiraganaBase+kanaBlockSpan {
			b.WriteRune(r - hiraganaBase + katakanaBase)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func isGeminateConsonant(b byte) bool {
	if b < 'a' || b > 'z' {
		return false
	}
	switch b {
	case 'a', 'i', 'u', 'e', 'o', 'n', '\'', '-':
		return false
	}
	return true
}

func isVowelOrY(b byte) bool {
	switch b {
	case 'a', 'i', 'u', 'e', 'o', 'y':
		return true
	}
	return false
}
