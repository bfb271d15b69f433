package kanjidic

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleKanjiDic = `<?xml version="1.0"?>
<kanjidic2>
<character>
<literal>亜</literal>
<misc><grade>8</grade><stroke_count>7</stroke_count><freq>1509</freq><jlpt>1</jlpt></misc>
<reading_meaning><rmgroup>
<reading r_type="ja_on">ア</reading>
<reading r_type="ja_kun">つ.ぐ</reading>
<meaning>Asia</meaning>
<meaning m_lang="fr">Asie</meaning>
</rmgroup></reading_meaning>
</character>
</kanjidic2>`

func TestDecodeCharacter(t *testing.T) {
	dec := NewDecoder([]byte(sampleKanjiDic), nil)
	c, err := dec.Next()
	require.NoError(t, err)

	assert.Equal(t, "亜", c.Literal)
	assert.Equal(t, 8, c.Grade)
	assert.Equal(t, 7, c.StrokeCount)
	assert.Equal(t, 1509, c.Frequency)
	assert.Equal(t, 1, c.JLPT)
	require.Len(t, c.Readings, 2)
	assert.Equal(t, "ja_on", c.Readings[0].Type)
	require.Len(t, c.Meanings, 2)
	assert.Equal(t, "fr", c.Meanings[1].Lang)

	_, err = dec.Next()
	assert.ErrorIs(t, err, io.EOF)
}

func TestDecodeRejectsMultiRuneLiteral(t *testing.T) {
	bad := `<kanjidic2><character><literal>ab</literal></character></kanjidic2>`
	dec := NewDecoder([]byte(bad), nil)
	_, err := dec.Next()
	require.Error(t, err)
}
