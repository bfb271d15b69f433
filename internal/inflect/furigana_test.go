package inflect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFuriganaSingleKanjiRunWithOkurigana(t *testing.T) {
	segs := Furigana("食べた", "たべた")
	require.Len(t, segs, 2)
	assert.Equal(t, Segment{Text: "食", Reading: "た"}, segs[0])
	assert.Equal(t, Segment{Text: "べた", Reading: ""}, segs[1])
}

func TestFuriganaPureKana(t *testing.T) {
	segs := Furigana("たべた", "たべた")
	require.Len(t, segs, 1)
	assert.Equal(t, "", segs[0].Reading)
}

func TestFuriganaTwoKanjiRunsSeparatedByKana(t *testing.T) {
	segs := Furigana("書き直す", "かきなおす")
	require.Len(t, segs, 4)
	assert.Equal(t, "書", segs[0].Text)
	assert.Equal(t, "か", segs[0].Reading)
	assert.Equal(t, "き", segs[1].Text)
	assert.Equal(t, "", segs[1].Reading)
	assert.Equal(t, "直", segs[2].Text)
	assert.Equal(t, "なお", segs[2].Reading)
	assert.Equal(t, "す", segs[3].Text)
}
