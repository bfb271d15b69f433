package index

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lanastasov/jpv/internal/column"
	"github.com/lanastasov/jpv/internal/jmdict"
	"github.com/lanastasov/jpv/internal/kanjidic"
	"github.com/lanastasov/jpv/internal/pos"
)

func buildSampleStore() *column.Store {
	s := column.NewStore()
	s.AddEntry(jmdict.Entry{
		Sequence: 1358280,
		KanjiElements: []jmdict.KanjiElement{
			{Text: "食べる", Priority: []string{"ichi1"}},
		},
		ReadingElements: []jmdict.ReadingElement{
			{Text: "たべる", Priority: []string{"ichi1"}},
		},
		Senses: []jmdict.Sense{
			{PartsOfSpeech: pos.Set(0).Insert(pos.VerbIchidan), Glosses: []jmdict.Gloss{{Lang: "eng", Text: "to eat"}}},
		},
	})
	s.AddEntry(jmdict.Entry{
		Sequence: 1000000,
		ReadingElements: []jmdict.ReadingElement{
			{Text: "あ"},
		},
		Senses: []jmdict.Sense{
			{Glosses: []jmdict.Gloss{{Lang: "eng", Text: "ah"}}},
		},
	})
	s.AddCharacter(kanjidic.Character{
		Literal:     "食",
		Grade:       2,
		StrokeCount: 9,
		Readings:    []kanjidic.Reading{{Type: "ja_on", Text: "ショク"}},
		Meanings:    []kanjidic.Meaning{{Text: "eat"}},
	})
	return s
}

func TestBuildAndOpenRoundTrip(t *testing.T) {
	s := buildSampleStore()
	img, err := Build(s)
	require.NoError(t, err)

	r, err := Open(img)
	require.NoError(t, err)
	defer r.Close()

	assert.Equal(t, 2, r.EntryCount())
	assert.Equal(t, 1, r.CharacterCount())

	idx, ok := r.LookupSequence(1358280)
	require.True(t, ok)
	entry := r.Entry(idx)
	assert.Equal(t, "食べる", entry.Kanji[0].Text)
	assert.Equal(t, "たべる", entry.Readings[0].Text)
	require.Len(t, entry.Senses, 1)
	assert.Equal(t, "to eat", entry.Senses[0].Glosses[0])

	charIdx, ok := r.LookupLiteral('食')
	require.True(t, ok)
	char := r.Character(charIdx)
	assert.Equal(t, int32(2), char.Grade)
	assert.Equal(t, "eat", char.Meanings[0])
}

func TestSearchExactAndPrefix(t *testing.T) {
	s := buildSampleStore()
	img, err := Build(s)
	require.NoError(t, err)
	r, err := Open(img)
	require.NoError(t, err)
	defer r.Close()

	exact := r.SearchExact("たべる")
	require.Len(t, exact, 1)
	entry := r.Entry(exact[0].EntryIdx)
	assert.Equal(t, uint32(1358280), entry.Sequence)

	prefix := r.SearchPrefix("た")
	require.Len(t, prefix, 1)

	none := r.SearchExact("zzz")
	assert.Empty(t, none)
}

func TestOpenRejectsBadMagic(t *testing.T) {
	_, err := Open([]byte("not an index at all, way too short"))
	require.Error(t, err)
	var imgErr *ImageError
	require.ErrorAs(t, err, &imgErr)
}

func TestOpenRejectsTruncatedDirectory(t *testing.T) {
	s := buildSampleStore()
	img, err := Build(s)
	require.NoError(t, err)

	truncated := img[:len(img)-10]
	_, err = Open(truncated)
	require.Error(t, err)
}
