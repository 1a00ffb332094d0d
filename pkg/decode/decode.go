package decode

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/matzehuels/mysportsfeeds/pkg/errors"
	"github.com/matzehuels/mysportsfeeds/pkg/feeds"
)

// Document is a decoded feed response: one of [JSON], [XML] or [CSV].
type Document interface {
	// Format reports which decoder produced the document.
	Format() feeds.Format
	// Encode writes the document back out in its own format.
	Encode(w io.Writer) error
}

// JSON is a decoded JSON response. Value holds the generic tree produced
// by encoding/json: map[string]any, []any, string, json.Number, bool or nil.
// Numbers stay json.Number so large ids are encoded back digit for digit.
type JSON struct {
	Value any
}

// XML is a decoded XML response.
type XML struct {
	Root *Element
}

// CSV is a CSV response, kept as raw text.
type CSV struct {
	Text string
}

type decoderFunc func(data []byte) (Document, error)

var decoders = map[feeds.Format]decoderFunc{
	feeds.FormatJSON: decodeJSON,
	feeds.FormatXML:  decodeXML,
	feeds.FormatCSV:  decodeCSV,
}

// Decode parses data according to format.
//
// Returns an UNSUPPORTED_FORMAT error for formats other than json, xml and
// csv, and a DECODE_ERROR wrapping the parser error for malformed input.
func Decode(format feeds.Format, data []byte) (Document, error) {
	fn, ok := decoders[format]
	if !ok {
		return nil, errors.New(errors.ErrCodeUnsupportedFormat, "unsupported format '%s'", format)
	}
	return fn(data)
}

func decodeJSON(data []byte) (Document, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, errors.Wrap(errors.ErrCodeDecode, err, "decode json response")
	}
	if _, err := dec.Token(); err != io.EOF {
		if err == nil {
			err = fmt.Errorf("trailing data at offset %d", dec.InputOffset())
		}
		return nil, errors.Wrap(errors.ErrCodeDecode, err, "decode json response")
	}
	return JSON{Value: v}, nil
}

func decodeXML(data []byte) (Document, error) {
	root, err := parseElement(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeDecode, err, "decode xml response")
	}
	return XML{Root: root}, nil
}

func decodeCSV(data []byte) (Document, error) {
	return CSV{Text: string(data)}, nil
}

// Format implements Document.
func (JSON) Format() feeds.Format { return feeds.FormatJSON }

// Encode writes the tree as indented JSON.
func (d JSON) Encode(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(d.Value)
}

// Format implements Document.
func (XML) Format() feeds.Format { return feeds.FormatXML }

// Encode writes the element tree as indented XML.
func (d XML) Encode(w io.Writer) error {
	return writeElement(w, d.Root)
}

// Format implements Document.
func (CSV) Format() feeds.Format { return feeds.FormatCSV }

// Encode writes the text unchanged.
func (d CSV) Encode(w io.Writer) error {
	_, err := io.WriteString(w, d.Text)
	return err
}

// Records parses the text into rows. Rows may have differing field counts.
func (d CSV) Records() ([][]string, error) {
	r := csv.NewReader(strings.NewReader(d.Text))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true
	rows, err := r.ReadAll()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeDecode, err, "parse csv records")
	}
	return rows, nil
}

var (
	_ Document = JSON{}
	_ Document = XML{}
	_ Document = CSV{}
)
