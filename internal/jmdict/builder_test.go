package jmdict

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lanastasov/jpv/internal/entities"
	"github.com/lanastasov/jpv/internal/pos"
)

const sampleJMdict = `<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE JMdict [
<!ENTITY v1 "Ichidan verb">
]>
<JMdict>
<entry>
<ent_seq>1358280</ent_seq>
<k_ele><keb>食べる</keb><ke_pri>ichi1</ke_pri></k_ele>
<r_ele><reb>たべる</reb><re_pri>ichi1</re_pri></r_ele>
<sense>
<pos>&v1;</pos>
<gloss xml:lang="eng">to eat</gloss>
<example>
<ex_srce>tat:12345</ex_srce>
<ex_text>食べる</ex_text>
<ex_sent>たべる</ex_sent>
<ex_sent>to eat</ex_sent>
</example>
</sense>
</entry>
</JMdict>`

func TestDecodeSingleEntry(t *testing.T) {
	dec := NewDecoder([]byte(sampleJMdict), entities.JMdict, JMdict)
	entry, err := dec.Next()
	require.NoError(t, err)

	assert.EqualValues(t, 1358280, entry.Sequence)
	require.Len(t, entry.KanjiElements, 1)
	assert.Equal(t, "食べる", entry.KanjiElements[0].Text)
	require.Len(t, entry.ReadingElements, 1)
	assert.Equal(t, "たべる", entry.ReadingElements[0].Text)
	require.Len(t, entry.Senses, 1)
	assert.True(t, entry.Senses[0].PartsOfSpeech.Has(pos.VerbIchidan))
	require.Len(t, entry.Senses[0].Glosses, 1)
	assert.Equal(t, "to eat", entry.Senses[0].Glosses[0].Text)
	require.Len(t, entry.Senses[0].Examples, 1)
	assert.Equal(t, "食べる", entry.Senses[0].Examples[0].Text)
	assert.Equal(t, "to eat", entry.Senses[0].Examples[0].Translation)

	_, err = dec.Next()
	assert.ErrorIs(t, err, io.EOF)
}

func TestDecodeRejectsEntryWithNoSenses(t *testing.T) {
	bad := `<JMdict><entry><ent_seq>1</ent_seq><r_ele><reb>あ</reb></r_ele></entry></JMdict>`
	dec := NewDecoder([]byte(bad), entities.JMdict, JMdict)
	_, err := dec.Next()
	require.Error(t, err)
	var schemaErr *SchemaError
	assert.ErrorAs(t, err, &schemaErr)
}

func TestIngestStreamsOverChannel(t *testing.T) {
	dec := NewDecoder([]byte(sampleJMdict), entities.JMdict, JMdict)
	out := make(chan Entry, 4)
	errc := make(chan error, 1)
	go Ingest(dec, out, errc)

	var got []Entry
	for e := range out {
		got = append(got, e)
	}
	require.Len(t, got, 1)
	select {
	case err := <-errc:
		t.Fatalf("unexpected error: %v", err)
	default:
	}
}
