package xmlio

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func drain(t *testing.T, sc *Scanner) []Event {
	t.Helper()
	var events []Event
	for {
		ev, err := sc.Next()
		require.NoError(t, err)
		if ev.Kind == EventEOF {
			return events
		}
		events = append(events, ev)
	}
}

func TestScannerOpenTextClose(t *testing.T) {
	sc := NewScanner([]byte(`<keb>食べる</keb>`), nil, true)
	events := drain(t, sc)
	require.Len(t, events, 3)
	assert.Equal(t, EventOpen, events[0].Kind)
	assert.Equal(t, "keb", events[0].Name)
	assert.Equal(t, EventText, events[1].Kind)
	assert.Equal(t, "食べる", events[1].Text)
	assert.Equal(t, EventClose, events[2].Kind)
	assert.Equal(t, "keb", events[2].Name)
}

func TestScannerAttributes(t *testing.T) {
	sc := NewScanner([]byte(`<character literal="亜" version="1"/>`), nil, true)
	events := drain(t, sc)
	require.Len(t, events, 2)
	require.Len(t, events[0].Attrs, 2)
	assert.Equal(t, Attribute{Name: "literal", Value: "亜"}, events[0].Attrs[0])
	assert.Equal(t, EventClose, events[1].Kind)
}

func TestScannerSkipsCommentsAndProlog(t *testing.T) {
	sc := NewScanner([]byte(`<?xml version="1.0"?><!-- hi --><a>x</a>`), nil, true)
	events := drain(t, sc)
	require.Len(t, events, 3)
	assert.Equal(t, "a", events[0].Name)
}

func TestScannerPredefinedEntities(t *testing.T) {
	sc := NewScanner([]byte(`<a>Tom &amp; Jerry</a>`), nil, true)
	events := drain(t, sc)
	assert.Equal(t, "Tom & Jerry", events[1].Text)
}

func TestScannerNumericCharRef(t *testing.T) {
	sc := NewScanner([]byte(`<a>&#20154;</a>`), nil, true)
	events := drain(t, sc)
	assert.Equal(t, "人", events[1].Text)
}

type mapResolver map[string]string

func (m mapResolver) Resolve(name string) (string, bool) {
	v, ok := m[name]
	return v, ok
}

func TestScannerCustomEntityResolver(t *testing.T) {
	sc := NewScanner([]byte(`<pos>&v5r;</pos>`), mapResolver{"v5r": "Godan verb - -ru class"}, true)
	events := drain(t, sc)
	assert.Equal(t, "Godan verb - -ru class", events[1].Text)
}

func TestScannerUnknownEntityStrictError(t *testing.T) {
	sc := NewScanner([]byte(`<a>&bogus;</a>`), nil, true)
	_, err := sc.Next() // <a>
	require.NoError(t, err)
	_, err = sc.Next() // text with bad entity
	require.Error(t, err)
}

func TestScannerDoctypeSkipped(t *testing.T) {
	sc := NewScanner([]byte("<!DOCTYPE JMdict [\n<!ENTITY v5r \"Godan verb\">\n]>\n<a>x</a>"), nil, true)
	events := drain(t, sc)
	require.Len(t, events, 4)
	assert.Equal(t, Event{Kind: EventText, Text: "\n"}, events[0])
	assert.Equal(t, "a", events[1].Name)
}
