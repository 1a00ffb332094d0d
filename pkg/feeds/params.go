package feeds

import (
	"iter"
	"strings"
)

// Params is an insertion-ordered set of query parameters.
//
// Setting a key that already exists replaces its value and keeps its
// original position. The zero value is an empty, ready to use Params.
type Params struct {
	keys   []string
	values map[string]string
}

// NewParams builds Params from alternating key, value arguments.
// A trailing key without a value is set to "".
func NewParams(kv ...string) *Params {
	p := &Params{}
	for i := 0; i < len(kv); i += 2 {
		v := ""
		if i+1 < len(kv) {
			v = kv[i+1]
		}
		p.Set(kv[i], v)
	}
	return p
}

// Set stores value under key.
func (p *Params) Set(key, value string) {
	if p.values == nil {
		p.values = make(map[string]string)
	}
	if _, ok := p.values[key]; !ok {
		p.keys = append(p.keys, key)
	}
	p.values[key] = value
}

// Get returns the value for key and whether it was present.
func (p *Params) Get(key string) (string, bool) {
	if p == nil {
		return "", false
	}
	v, ok := p.values[key]
	return v, ok
}

// Has reports whether key is present.
func (p *Params) Has(key string) bool {
	_, ok := p.Get(key)
	return ok
}

// Len returns the number of parameters.
func (p *Params) Len() int {
	if p == nil {
		return 0
	}
	return len(p.keys)
}

// All iterates over the parameters in insertion order.
func (p *Params) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		if p == nil {
			return
		}
		for _, k := range p.keys {
			if !yield(k, p.values[k]) {
				return
			}
		}
	}
}

// Clone returns an independent copy of p.
func (p *Params) Clone() *Params {
	c := &Params{}
	for k, v := range p.All() {
		c.Set(k, v)
	}
	return c
}

// Encode renders the parameters as k=v pairs joined with '&'.
// Keys and values are written as-is; callers pre-encode when needed.
func (p *Params) Encode() string {
	var b strings.Builder
	for k, v := range p.All() {
		if b.Len() > 0 {
			b.WriteByte('&')
		}
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(v)
	}
	return b.String()
}

// SplitKV splits a "key=value" string on its first '='. Both halves are
// trimmed of surrounding whitespace. A string without '=' yields an empty
// value.
func SplitKV(s string) (key, value string) {
	k, v, _ := strings.Cut(s, "=")
	return strings.TrimSpace(k), strings.TrimSpace(v)
}
