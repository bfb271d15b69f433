package jmdict

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/lanastasov/jpv/internal/entities"
	"github.com/lanastasov/jpv/internal/pos"
	"github.com/lanastasov/jpv/internal/xmlio"
)

// SchemaError reports a structural violation the builders caught: missing
// required child, an event the current builder state didn't expect, or an
// invariant the top-level Entry enforces (at least one reading, at least one
// sense).
type SchemaError struct {
	Context string
	Msg     string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("jmdict: %s: %s", e.Context, e.Msg)
}

// Dialect selects which schema Decoder expects: the glossary-bearing JMdict
// format or the name-typed JMnedict format.
type Dialect int

const (
	JMdict Dialect = iota
	JMnedict
)

// Decoder pulls one Entry at a time out of a JMdict/JMnedict XML document.
type Decoder struct {
	sc      *xmlio.Scanner
	dialect Dialect
}

// NewDecoder creates a Decoder over the full document buffer, using ents to
// resolve the document's named entities (typically entities.JMdict).
func NewDecoder(data []byte, ents entities.Table, dialect Dialect) *Decoder {
	return &Decoder{sc: xmlio.NewScanner(data, ents, false), dialect: dialect}
}

// Next returns the next Entry, or io.EOF once the document root closes.
func (d *Decoder) Next() (Entry, error) {
	for {
		ev, err := d.sc.Next()
		if err != nil {
			return Entry{}, err
		}
		switch ev.Kind {
		case xmlio.EventEOF:
			return Entry{}, io.EOF
		case xmlio.EventOpen:
			if ev.Name == "entry" {
				return d.readEntry()
			}
		}
	}
}

// Ingest drives a Decoder to completion, sending each parsed Entry on out and
// closing it when done (or on the first error, which is sent on errc). The
// parser is the single producer and the column store the single consumer, so
// no synchronization beyond the channel itself is needed.
func Ingest(d *Decoder, out chan<- Entry, errc chan<- error) {
	defer close(out)
	for {
		entry, err := d.Next()
		if err == io.EOF {
			return
		}
		if err != nil {
			errc <- err
			return
		}
		out <- entry
	}
}

func (d *Decoder) readEntry() (Entry, error) {
	var entry Entry
	for {
		ev, err := d.sc.Next()
		if err != nil {
			return Entry{}, err
		}
		switch ev.Kind {
		case xmlio.EventEOF:
			return Entry{}, &SchemaError{Context: "entry", Msg: "unexpected end of document"}
		case xmlio.EventClose:
			if ev.Name == "entry" {
				return d.finishEntry(entry)
			}
		case xmlio.EventOpen:
			switch ev.Name {
			case "ent_seq":
				text, err := d.readText("ent_seq")
				if err != nil {
					return Entry{}, err
				}
				n, convErr := strconv.ParseUint(strings.TrimSpace(text), 10, 32)
				if convErr != nil {
					return Entry{}, &SchemaError{Context: "ent_seq", Msg: "not a number: " + text}
				}
				entry.Sequence = uint32(n)
			case "k_ele":
				k, err := d.readKanjiElement()
				if err != nil {
					return Entry{}, err
				}
				entry.KanjiElements = append(entry.KanjiElements, k)
			case "r_ele":
				r, err := d.readReadingElement()
				if err != nil {
					return Entry{}, err
				}
				entry.ReadingElements = append(entry.ReadingElements, r)
			case "sense":
				if d.dialect == JMdict {
					s, err := d.readSense()
					if err != nil {
						return Entry{}, err
					}
					entry.Senses = append(entry.Senses, s)
				}
			case "trans":
				if d.dialect == JMnedict {
					s, err := d.readTrans()
					if err != nil {
						return Entry{}, err
					}
					entry.Senses = append(entry.Senses, s)
				}
			}
		}
	}
}

func (d *Decoder) finishEntry(entry Entry) (Entry, error) {
	if len(entry.ReadingElements) == 0 {
		return Entry{}, &SchemaError{Context: fmt.Sprintf("entry %d", entry.Sequence), Msg: "no reading elements"}
	}
	if len(entry.Senses) == 0 {
		return Entry{}, &SchemaError{Context: fmt.Sprintf("entry %d", entry.Sequence), Msg: "no senses"}
	}
	return entry, nil
}

func (d *Decoder) readKanjiElement() (KanjiElement, error) {
	var k KanjiElement
	for {
		ev, err := d.sc.Next()
		if err != nil {
			return KanjiElement{}, err
		}
		switch ev.Kind {
		case xmlio.EventClose:
			if ev.Name == "k_ele" {
				if k.Text == "" {
					return KanjiElement{}, &SchemaError{Context: "k_ele", Msg: "missing keb"}
				}
				return k, nil
			}
		case xmlio.EventOpen:
			switch ev.Name {
			case "keb":
				text, err := d.readText("keb")
				if err != nil {
					return KanjiElement{}, err
				}
				k.Text = text
			case "ke_inf":
				text, err := d.readText("ke_inf")
				if err != nil {
					return KanjiElement{}, err
				}
				k.Info = append(k.Info, text)
			case "ke_pri":
				text, err := d.readText("ke_pri")
				if err != nil {
					return KanjiElement{}, err
				}
				k.Priority = append(k.Priority, text)
			}
		}
	}
}

func (d *Decoder) readReadingElement() (ReadingElement, error) {
	var r ReadingElement
	for {
		ev, err := d.sc.Next()
		if err != nil {
			return ReadingElement{}, err
		}
		switch ev.Kind {
		case xmlio.EventClose:
			if ev.Name == "r_ele" {
				if r.Text == "" {
					return ReadingElement{}, &SchemaError{Context: "r_ele", Msg: "missing reb"}
				}
				return r, nil
			}
		case xmlio.EventOpen:
			switch ev.Name {
			case "reb":
				text, err := d.readText("reb")
				if err != nil {
					return ReadingElement{}, err
				}
				r.Text = text
			case "re_nokanji":
				r.NoKanji = true
				if _, err := d.skipToClose("re_nokanji"); err != nil {
					return ReadingElement{}, err
				}
			case "re_restr":
				text, err := d.readText("re_restr")
				if err != nil {
					return ReadingElement{}, err
				}
				r.Restrict = append(r.Restrict, text)
			case "re_inf":
				text, err := d.readText("re_inf")
				if err != nil {
					return ReadingElement{}, err
				}
				r.Info = append(r.Info, text)
			case "re_pri":
				text, err := d.readText("re_pri")
				if err != nil {
					return ReadingElement{}, err
				}
				r.Priority = append(r.Priority, text)
			}
		}
	}
}

func (d *Decoder) readSense() (Sense, error) {
	var s Sense
	for {
		ev, err := d.sc.Next()
		if err != nil {
			return Sense{}, err
		}
		switch ev.Kind {
		case xmlio.EventClose:
			if ev.Name == "sense" {
				return s, nil
			}
		case xmlio.EventOpen:
			switch ev.Name {
			case "stagk":
				text, err := d.readText("stagk")
				if err != nil {
					return Sense{}, err
				}
				s.RestrictToKanji = append(s.RestrictToKanji, text)
			case "stagr":
				text, err := d.readText("stagr")
				if err != nil {
					return Sense{}, err
				}
				s.RestrictToReading = append(s.RestrictToReading, text)
			case "pos":
				text, err := d.readText("pos")
				if err != nil {
					return Sense{}, err
				}
				s.PartsOfSpeech = s.PartsOfSpeech.Insert(pos.FromTag(text))
			case "field":
				text, err := d.readText("field")
				if err != nil {
					return Sense{}, err
				}
				s.Fields = append(s.Fields, text)
			case "misc":
				text, err := d.readText("misc")
				if err != nil {
					return Sense{}, err
				}
				s.Misc = append(s.Misc, text)
			case "dial":
				text, err := d.readText("dial")
				if err != nil {
					return Sense{}, err
				}
				s.Dialects = append(s.Dialects, text)
			case "xref":
				text, err := d.readText("xref")
				if err != nil {
					return Sense{}, err
				}
				s.CrossReferences = append(s.CrossReferences, text)
			case "ant":
				text, err := d.readText("ant")
				if err != nil {
					return Sense{}, err
				}
				s.Antonyms = append(s.Antonyms, text)
			case "gloss":
				g, err := d.readGloss(ev.Attrs)
				if err != nil {
					return Sense{}, err
				}
				s.Glosses = append(s.Glosses, g)
			case "example":
				ex, err := d.readExample()
				if err != nil {
					return Sense{}, err
				}
				s.Examples = append(s.Examples, ex)
			}
		}
	}
}

func (d *Decoder) readGloss(attrs []xmlio.Attribute) (Gloss, error) {
	g := Gloss{Lang: "eng"}
	for _, a := range attrs {
		switch a.Name {
		case "xml:lang":
			g.Lang = a.Value
		case "g_type":
			g.Type = a.Value
		}
	}
	text, err := d.readText("gloss")
	if err != nil {
		return Gloss{}, err
	}
	g.Text = text
	return g, nil
}

func (d *Decoder) readExample() (ExampleSentence, error) {
	var ex ExampleSentence
	for {
		ev, err := d.sc.Next()
		if err != nil {
			return ExampleSentence{}, err
		}
		switch ev.Kind {
		case xmlio.EventClose:
			if ev.Name == "example" {
				return ex, nil
			}
		case xmlio.EventOpen:
			switch ev.Name {
			case "ex_srce":
				text, err := d.readText("ex_srce")
				if err != nil {
					return ExampleSentence{}, err
				}
				ex.SourceID = text
			case "ex_text":
				text, err := d.readText("ex_text")
				if err != nil {
					return ExampleSentence{}, err
				}
				ex.Text = text
			case "ex_sent":
				text, err := d.readText("ex_sent")
				if err != nil {
					return ExampleSentence{}, err
				}
				if ex.Text == "" {
					ex.Text = text
				} else {
					ex.Translation = text
				}
			}
		}
	}
}

// readTrans adapts a JMnedict <trans> block (name_type/xref/trans_det) into a
// Sense so JMnedict entries fit the same Entry shape as JMdict entries.
func (d *Decoder) readTrans() (Sense, error) {
	var s Sense
	for {
		ev, err := d.sc.Next()
		if err != nil {
			return Sense{}, err
		}
		switch ev.Kind {
		case xmlio.EventClose:
			if ev.Name == "trans" {
				return s, nil
			}
		case xmlio.EventOpen:
			switch ev.Name {
			case "name_type":
				text, err := d.readText("name_type")
				if err != nil {
					return Sense{}, err
				}
				s.Misc = append(s.Misc, text)
			case "xref":
				text, err := d.readText("xref")
				if err != nil {
					return Sense{}, err
				}
				s.CrossReferences = append(s.CrossReferences, text)
			case "trans_det":
				text, err := d.readText("trans_det")
				if err != nil {
					return Sense{}, err
				}
				s.Glosses = append(s.Glosses, Gloss{Lang: "eng", Text: text})
			}
		}
	}
}

// readText consumes events until the close of elementName, concatenating any
// text events seen (JMdict leaf elements never have nested elements, but may
// have mixed child entity references emitted as distinct text runs).
func (d *Decoder) readText(elementName string) (string, error) {
	var b strings.Builder
	for {
		ev, err := d.sc.Next()
		if err != nil {
			return "", err
		}
		switch ev.Kind {
		case xmlio.EventEOF:
			return "", &SchemaError{Context: elementName, Msg: "unexpected end of document"}
		case xmlio.EventText:
			b.WriteString(ev.Text)
		case xmlio.EventClose:
			if ev.Name == elementName {
				return b.String(), nil
			}
			return "", &SchemaError{Context: elementName, Msg: "mismatched close </" + ev.Name + ">"}
		case xmlio.EventOpen:
			return "", &SchemaError{Context: elementName, Msg: "unexpected nested element <" + ev.Name + ">"}
		}
	}
}

// skipToClose discards events (including nested elements) until elementName
// closes, used for empty elements like <re_nokanji/> whose presence alone is
// the signal.
func (d *Decoder) skipToClose(elementName string) (struct{}, error) {
	depth := 0
	for {
		ev, err := d.sc.Next()
		if err != nil {
			return struct{}{}, err
		}
		switch ev.Kind {
		case xmlio.EventEOF:
			return struct{}{}, &SchemaError{Context: elementName, Msg: "unexpected end of document"}
		case xmlio.EventOpen:
			if ev.Name == elementName {
				depth++
			}
		case xmlio.EventClose:
			if ev.Name == elementName {
				if depth == 0 {
					return struct{}{}, nil
				}
				depth--
			}
		}
	}
}
