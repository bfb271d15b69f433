package jpv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lanastasov/jpv/internal/inflect"
)

const sampleJMdictXML = `<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE JMdict [
<!ENTITY v1 "Ichidan verb">
]>
<JMdict>
<entry>
<ent_seq>1358280</ent_seq>
<k_ele><keb>食べる</keb><ke_pri>ichi1</ke_pri></k_ele>
<r_ele><reb>たべる</reb><re_pri>ichi1</re_pri></r_ele>
<sense><pos>&v1;</pos><gloss xml:lang="eng">to eat</gloss></sense>
</entry>
</JMdict>`

func TestBuildOpenSearchAndConjugateEndToEnd(t *testing.T) {
	img, err := Build("test", Input{Kind: SourceJMdict, Data: []byte(sampleJMdictXML)})
	require.NoError(t, err)

	ix, err := Open(img)
	require.NoError(t, err)
	defer ix.Close()

	results := ix.SearchExact("食べる", SearchAsIs)
	require.Len(t, results, 1)
	assert.Equal(t, "to eat", results[0].Entry.Senses[0].Glosses[0])

	idx, ok := ix.LookupSequence(1358280)
	require.True(t, ok)

	conjugations := ix.ConjugateEntry(idx)
	require.NotEmpty(t, conjugations)
	require.Equal(t, inflect.KindVerb, conjugations[0].Kind)
	require.Equal(t, inflect.ReadingKey{KanjiIndex: 0, ReadingIndex: 0}, conjugations[0].Key)

	var foundShortTeIru bool
	for _, f := range conjugations[0].Forms {
		if f.Features == inflect.With(inflect.Te, inflect.TeIru, inflect.Short) {
			assert.Equal(t, "食べてる", f.Kanji)
			foundShortTeIru = true
		}
	}
	assert.True(t, foundShortTeIru, "expected {TeIru,Short} form among conjugations")

	seg, ok := ix.Analyze("食べません", 0)
	require.True(t, ok)
	assert.Equal(t, "食べません", seg.Surface)
	assert.True(t, seg.Inflected)
}
