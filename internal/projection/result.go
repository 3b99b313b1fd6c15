package projection

import (
	"bytes"
	"encoding/json"
	"slices"
)

// Result is an ordered JSON object produced by one projector call.
// It keeps insertion order when marshaled; setting an existing key keeps
// its position.
type Result struct {
	keys   []string
	values map[string]any
}

// NewResult creates an empty Result.
func NewResult() *Result {
	return &Result{values: make(map[string]any)}
}

// Set stores v under key.
func (r *Result) Set(key string, v any) {
	if _, ok := r.values[key]; !ok {
		r.keys = append(r.keys, key)
	}
	r.values[key] = v
}

// Get returns the value under key.
func (r *Result) Get(key string) (any, bool) {
	v, ok := r.values[key]
	return v, ok
}

// Has reports whether key is present, even with a nil value.
func (r *Result) Has(key string) bool {
	_, ok := r.values[key]
	return ok
}

// Keys returns the keys in output order.
func (r *Result) Keys() []string {
	return slices.Clone(r.keys)
}

// Len returns the number of keys.
func (r *Result) Len() int {
	return len(r.keys)
}

// Map returns an unordered copy of the result.
func (r *Result) Map() map[string]any {
	out := make(map[string]any, len(r.values))
	for k, v := range r.values {
		out[k] = v
	}
	return out
}

// merge appends every key of other in order.
func (r *Result) merge(other *Result) {
	for _, k := range other.keys {
		r.Set(k, other.values[k])
	}
}

// MarshalJSON implements json.Marshaler, preserving key order.
func (r *Result) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range r.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		vb, err := json.Marshal(r.values[k])
		if err != nil {
			return nil, err
		}
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
