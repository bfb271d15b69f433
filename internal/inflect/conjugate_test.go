package inflect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lanastasov/jpv/internal/pos"
)

func findForm(t *testing.T, forms []Form, fs FeatureSet) Form {
	t.Helper()
	for _, f := range forms {
		if f.Features == fs {
			return f
		}
	}
	require.Failf(t, "feature set not produced", "%v not found in %d forms", fs, len(forms))
	return Form{}
}

func TestConjugateIchidanTaberu(t *testing.T) {
	forms, ok := Conjugate(Word{Kanji: "食べる", Reading: "たべる"}, pos.VerbIchidan)
	require.True(t, ok)

	assert.Equal(t, "食べない", findForm(t, forms, With(Negative)).Kanji)
	assert.Equal(t, "食べた", findForm(t, forms, With(Past)).Kanji)
	assert.Equal(t, "食べて", findForm(t, forms, With(Te)).Kanji)
	assert.Equal(t, "食べている", findForm(t, forms, With(Te, TeIru)).Kanji)
	assert.Equal(t, "食べちゃう", findForm(t, forms, With(Chau)).Kanji)
}

func TestConjugateTeIruShortContraction(t *testing.T) {
	forms, ok := Conjugate(Word{Kanji: "食べる", Reading: "たべる"}, pos.VerbIchidan)
	require.True(t, ok)

	assert.Equal(t, "食べてる", findForm(t, forms, With(Te, TeIru, Short)).Kanji)
	assert.Equal(t, "食べていない", findForm(t, forms, With(Te, TeIru, Negative)).Kanji)
	assert.Equal(t, "食べていた", findForm(t, forms, With(Te, TeIru, Past)).Kanji)
	assert.Equal(t, "食べています", findForm(t, forms, With(Te, TeIru, Polite)).Kanji)
}

func TestConjugateTeOkuShortContraction(t *testing.T) {
	forms, ok := Conjugate(Word{Kanji: "飲む", Reading: "のむ"}, pos.VerbGodanM)
	require.True(t, ok)

	assert.Equal(t, "飲んでおく", findForm(t, forms, With(Te, TeOku)).Kanji)
	assert.Equal(t, "飲んどく", findForm(t, forms, With(Te, TeOku, Short)).Kanji)
}

func TestConjugateGodanNomu(t *testing.T) {
	forms, ok := Conjugate(Word{Kanji: "飲む", Reading: "のむ"}, pos.VerbGodanM)
	require.True(t, ok)

	assert.Equal(t, "飲んで", findForm(t, forms, With(Te)).Kanji)
	assert.Equal(t, "飲んだ", findForm(t, forms, With(Past)).Kanji)
	assert.Equal(t, "飲まない", findForm(t, forms, With(Negative)).Kanji)
	assert.Equal(t, "飲んじゃう", findForm(t, forms, With(Chau)).Kanji)
}

func TestConjugateGodanIkuException(t *testing.T) {
	forms, ok := Conjugate(Word{Kanji: "行く", Reading: "いく"}, pos.VerbGodanKS)
	require.True(t, ok)

	// 行く's te-form is irregular: 行って, not 行いて.
	assert.Equal(t, "行って", findForm(t, forms, With(Te)).Kanji)
	assert.Equal(t, "行った", findForm(t, forms, With(Past)).Kanji)
}

func TestConjugateGodanDispatchIgnoresTagIdentityForSharedRows(t *testing.T) {
	// VerbGodanAru and VerbGodanRu are distinct POS tags but both resolve by
	// terminal kana る, so they must produce identical inflections for the
	// same surface.
	byTag, ok := Conjugate(Word{Kanji: "座る", Reading: "すわる"}, pos.VerbGodanRu)
	require.True(t, ok)
	byAru, ok := Conjugate(Word{Kanji: "座る", Reading: "すわる"}, pos.VerbGodanAru)
	require.True(t, ok)

	assert.Equal(t, findForm(t, byTag, With(Past)).Kanji, findForm(t, byAru, With(Past)).Kanji)
}

func TestConjugateSuru(t *testing.T) {
	forms, ok := Conjugate(Word{Kanji: "勉強する", Reading: "べんきょうする"}, pos.VerbSuruIncluded)
	require.True(t, ok)

	assert.Equal(t, "勉強します", findForm(t, forms, With(Polite)).Kanji)
	assert.Equal(t, "勉強した", findForm(t, forms, With(Past)).Kanji)
	assert.Equal(t, "勉強できる", findForm(t, forms, With(Potential)).Kanji)
}

func TestConjugateKuruReadingAlternation(t *testing.T) {
	forms, ok := Conjugate(Word{Kanji: "来る", Reading: "くる"}, pos.VerbKuru)
	require.True(t, ok)

	assert.Equal(t, "来ない", findForm(t, forms, With(Negative)).Kanji)
	assert.Equal(t, "こない", findForm(t, forms, With(Negative)).Reading)
	assert.Equal(t, "来た", findForm(t, forms, With(Past)).Kanji)
	assert.Equal(t, "きた", findForm(t, forms, With(Past)).Reading)
}

func TestConjugateAdjectiveI(t *testing.T) {
	forms, ok := Conjugate(Word{Kanji: "忙しい", Reading: "いそがしい"}, pos.AdjectiveI)
	require.True(t, ok)

	assert.Equal(t, "忙しくない", findForm(t, forms, With(Negative)).Kanji)
	assert.Equal(t, "忙しくなかった", findForm(t, forms, With(Past, Negative)).Kanji)
}

func TestConjugateAdjectiveIxPreservesSourceQuirk(t *testing.T) {
	forms, ok := Conjugate(Word{Kanji: "いい", Reading: "いい"}, pos.AdjectiveIx)
	require.True(t, ok)

	// Deliberately ungrammatical: the source data omits く here. This is not
	// a bug in this engine — it reproduces the dictionary's own irregular
	// entry for round-trip parity.
	assert.Equal(t, "よなかった", findForm(t, forms, With(Past, Negative)).Kanji)
	assert.Equal(t, "よかった", findForm(t, forms, With(Past)).Kanji)
}

func TestConjugateUnsupportedPartOfSpeechSkipsSilently(t *testing.T) {
	_, ok := Conjugate(Word{Kanji: "犬", Reading: "いぬ"}, pos.Noun)
	assert.False(t, ok)
}
