package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lanastasov/jpv/internal/column"
	"github.com/lanastasov/jpv/internal/index"
	"github.com/lanastasov/jpv/internal/jmdict"
)

func openSample(t *testing.T) *index.Reader {
	t.Helper()
	s := column.NewStore()
	s.AddEntry(jmdict.Entry{
		Sequence:        1358280,
		KanjiElements:   []jmdict.KanjiElement{{Text: "食べる", Priority: []string{"ichi1"}}},
		ReadingElements: []jmdict.ReadingElement{{Text: "たべる", Priority: []string{"ichi1"}}},
		Senses:          []jmdict.Sense{{Glosses: []jmdict.Gloss{{Text: "to eat"}}}},
	})
	s.AddEntry(jmdict.Entry{
		Sequence:        2008770,
		ReadingElements: []jmdict.ReadingElement{{Text: "たべもの"}},
		Senses:          []jmdict.Sense{{Glosses: []jmdict.Gloss{{Text: "food"}}}},
	})
	img, err := index.Build(s)
	require.NoError(t, err)
	r, err := index.Open(img)
	require.NoError(t, err)
	t.Cleanup(func() { r.Close() })
	return r
}

func TestEngineExactMatch(t *testing.T) {
	e := New(openSample(t))
	results := e.Exact("たべる", ModeAsIs)
	require.Len(t, results, 1)
	assert.Equal(t, "to eat", results[0].Entry.Senses[0].Glosses[0])
}

func TestEnginePrefixMatch(t *testing.T) {
	e := New(openSample(t))
	results := e.Prefix("たべ", ModeAsIs)
	require.Len(t, results, 2)
}

func TestEngineRomajiPreprocessing(t *testing.T) {
	e := New(openSample(t))
	results := e.Exact("taberu", ModeRomaji)
	require.Len(t, results, 1)
	assert.Equal(t, "to eat", results[0].Entry.Senses[0].Glosses[0])
}

func TestEngineSubstringMatch(t *testing.T) {
	e := New(openSample(t))
	results := e.Substring("べも", ModeAsIs)
	require.Len(t, results, 1)
	assert.Equal(t, "food", results[0].Entry.Senses[0].Glosses[0])
}
