package kanjidic

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/lanastasov/jpv/internal/entities"
	"github.com/lanastasov/jpv/internal/xmlio"
)

// SchemaError reports a structural violation in a KANJIDIC2 document.
type SchemaError struct {
	Context string
	Msg     string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("kanjidic: %s: %s", e.Context, e.Msg)
}

// Decoder pulls one Character at a time out of a KANJIDIC2 XML document.
type Decoder struct {
	sc *xmlio.Scanner
}

// NewDecoder creates a Decoder over the full document buffer.
func NewDecoder(data []byte, ents entities.Table) *Decoder {
	return &Decoder{sc: xmlio.NewScanner(data, ents, false)}
}

// Next returns the next Character, or io.EOF once the document closes.
func (d *Decoder) Next() (Character, error) {
	for {
		ev, err := d.sc.Next()
		if err != nil {
			return Character{}, err
		}
		switch ev.Kind {
		case xmlio.EventEOF:
			return Character{}, io.EOF
		case xmlio.EventOpen:
			if ev.Name == "character" {
				return d.readCharacter()
			}
		}
	}
}

// Ingest drains d onto out, mirroring jmdict.Ingest's channel pipeline.
func Ingest(d *Decoder, out chan<- Character, errc chan<- error) {
	defer close(out)
	for {
		c, err := d.Next()
		if err == io.EOF {
			return
		}
		if err != nil {
			errc <- err
			return
		}
		out <- c
	}
}

func (d *Decoder) readCharacter() (Character, error) {
	var c Character
	for {
		ev, err := d.sc.Next()
		if err != nil {
			return Character{}, err
		}
		switch ev.Kind {
		case xmlio.EventEOF:
			return Character{}, &SchemaError{Context: "character", Msg: "unexpected end of document"}
		case xmlio.EventClose:
			if ev.Name == "character" {
				return d.finish(c)
			}
		case xmlio.EventOpen:
			switch ev.Name {
			case "literal":
				text, err := d.readText("literal")
				if err != nil {
					return Character{}, err
				}
				c.Literal = text
			case "grade":
				n, err := d.readInt("grade")
				if err != nil {
					return Character{}, err
				}
				c.Grade = n
			case "stroke_count":
				if c.StrokeCount != 0 {
					// KANJIDIC2 allows multiple stroke_count entries for
					// miscounted characters; the first is canonical.
					if _, err := d.skipElement("stroke_count"); err != nil {
						return Character{}, err
					}
					continue
				}
				n, err := d.readInt("stroke_count")
				if err != nil {
					return Character{}, err
				}
				c.StrokeCount = n
			case "freq":
				n, err := d.readInt("freq")
				if err != nil {
					return Character{}, err
				}
				c.Frequency = n
			case "jlpt":
				n, err := d.readInt("jlpt")
				if err != nil {
					return Character{}, err
				}
				c.JLPT = n
			case "reading":
				r, err := d.readReading(ev.Attrs)
				if err != nil {
					return Character{}, err
				}
				c.Readings = append(c.Readings, r)
			case "meaning":
				m, err := d.readMeaning(ev.Attrs)
				if err != nil {
					return Character{}, err
				}
				c.Meanings = append(c.Meanings, m)
			}
		}
	}
}

func (d *Decoder) finish(c Character) (Character, error) {
	if len([]rune(c.Literal)) != 1 {
		return Character{}, &SchemaError{Context: "character", Msg: fmt.Sprintf("literal %q is not exactly one codepoint", c.Literal)}
	}
	return c, nil
}

func (d *Decoder) readReading(attrs []xmlio.Attribute) (Reading, error) {
	r := Reading{}
	for _, a := range attrs {
		if a.Name == "r_type" {
			r.Type = a.Value
		}
	}
	if r.Type == "" {
		return Reading{}, &SchemaError{Context: "reading", Msg: "missing r_type"}
	}
	text, err := d.readText("reading")
	if err != nil {
		return Reading{}, err
	}
	r.Text = text
	return r, nil
}

func (d *Decoder) readMeaning(attrs []xmlio.Attribute) (Meaning, error) {
	m := Meaning{}
	for _, a := range attrs {
		if a.Name == "m_lang" {
			m.Lang = a.Value
		}
	}
	text, err := d.readText("meaning")
	if err != nil {
		return Meaning{}, err
	}
	m.Text = text
	return m, nil
}

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

func (d *Decoder) readInt(elementName string) (int, error) {
	text, err := d.readText(elementName)
	if err != nil {
		return 0, err
	}
	n, convErr := strconv.Atoi(strings.TrimSpace(text))
	if convErr != nil {
		return 0, &SchemaError{Context: elementName, Msg: "not a number: " + text}
	}
	return n, nil
}

func (d *Decoder) skipElement(elementName string) (struct{}, error) {
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
