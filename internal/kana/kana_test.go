package kana

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToKanaHiraganaBasics(t *testing.T) {
	assert.Equal(t, "こんにちは", ToKana("konnichiha", Hiragana))
	assert.Equal(t, "ありがとう", ToKana("arigatou", Hiragana))
}

func TestToKanaSokuon(t *testing.T) {
	assert.Equal(t, "がっこう", ToKana("gakkou", Hiragana))
	assert.Equal(t, "きって", ToKana("kitte", Hiragana))
}

func TestToKanaYoon(t *testing.T) {
	assert.Equal(t, "しゃしん", ToKana("shashin", Hiragana))
	assert.Equal(t, "きょう", ToKana("kyou", Hiragana))
}

func TestToKanaSyllabicNDisambiguation(t *testing.T) {
	// "kan'i" must keep ん distinct from a following な-row syllable.
	assert.Equal(t, "かんい", ToKana("kan'i", Hiragana))
	// "kani" (no apostrophe) reads as a plain に syllable, not syllabic ん+i.
	assert.Equal(t, "かに", ToKana("kani", Hiragana))
}

func TestToKanaKatakana(t *testing.T) {
	assert.Equal(t, "コンピューター", ToKana("konpyu-ta-", Katakana))
}

func TestToKanaPassesThroughUnknownRunes(t *testing.T) {
	assert.Equal(t, "あ123あ", ToKana("a123a", Hiragana))
}
