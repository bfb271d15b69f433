package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lanastasov/jpv/internal/column"
	"github.com/lanastasov/jpv/internal/index"
	"github.com/lanastasov/jpv/internal/inflect"
	"github.com/lanastasov/jpv/internal/jmdict"
	"github.com/lanastasov/jpv/internal/pos"
	"github.com/lanastasov/jpv/internal/search"
)

func openSample(t *testing.T) *search.Engine {
	t.Helper()
	s := column.NewStore()
	s.AddEntry(jmdict.Entry{
		Sequence:        1358280,
		KanjiElements:   []jmdict.KanjiElement{{Text: "食べる"}},
		ReadingElements: []jmdict.ReadingElement{{Text: "たべる"}},
		Senses: []jmdict.Sense{{
			PartsOfSpeech: pos.Set(0).Insert(pos.VerbIchidan),
			Glosses:       []jmdict.Gloss{{Text: "to eat"}},
		}},
	})
	s.AddEntry(jmdict.Entry{
		Sequence:        1002390,
		ReadingElements: []jmdict.ReadingElement{{Text: "を"}},
		Senses:          []jmdict.Sense{{Glosses: []jmdict.Gloss{{Text: "object marker"}}}},
	})
	img, err := index.Build(s)
	require.NoError(t, err)
	r, err := index.Open(img)
	require.NoError(t, err)
	t.Cleanup(func() { r.Close() })
	return search.New(r)
}

func TestAnalyzeExactDictionaryForm(t *testing.T) {
	a := New(openSample(t))
	seg, ok := a.Next("食べるを", 0)
	require.True(t, ok)
	assert.Equal(t, "食べる", seg.Surface)
	assert.False(t, seg.Inflected)
	assert.Equal(t, 3, seg.End)
}

func TestAnalyzeInflectedForm(t *testing.T) {
	a := New(openSample(t))
	seg, ok := a.Next("食べません", 0)
	require.True(t, ok)
	assert.Equal(t, "食べません", seg.Surface)
	assert.True(t, seg.Inflected)
	assert.True(t, seg.Features.Has(inflect.Negative))
	assert.True(t, seg.Features.Has(inflect.Polite))
}

func TestAnalyzeParticleThenAdvance(t *testing.T) {
	a := New(openSample(t))
	seg, ok := a.Next("食べるを", 3)
	require.True(t, ok)
	assert.Equal(t, "を", seg.Surface)
}
