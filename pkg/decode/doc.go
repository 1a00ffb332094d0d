// Package decode turns raw feed responses into in-memory documents.
//
// Each output format has one decoder:
//
//   - json: a generic tree ([JSON]) of maps, slices and scalars
//   - xml: an element tree ([XML]) of [Element] nodes
//   - csv: the raw text ([CSV]), parsed into rows only on request
//
// Malformed JSON or XML yields a DECODE_ERROR that wraps the parser error.
package decode
