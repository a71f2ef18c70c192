package spec

import (
	"strconv"
	"strings"

	"adtgen/internal/analyze"
)

// Reader is a key/value view of directive arguments. Bare words are not
// visible through it.
type Reader struct {
	keys   []string
	values map[string]string
}

// NewReader builds a Reader from directive arguments.
func NewReader(args []analyze.Arg) Reader {
	r := Reader{values: make(map[string]string)}

	for _, a := range args {
		if a.Key == "" {
			continue
		}

		if _, dup := r.values[a.Key]; !dup {
			r.keys = append(r.keys, a.Key)
		}

		r.values[a.Key] = a.Value
	}

	return r
}

// Get returns the raw value of key.
func (r Reader) Get(key string) (string, bool) {
	v, ok := r.values[key]
	return v, ok
}

// String returns the value of key, or def when it is absent or empty.
func (r Reader) String(key, def string) string {
	if v, ok := r.values[key]; ok && v != "" {
		return v
	}

	return def
}

// List splits a comma separated value, dropping empty elements.
func (r Reader) List(key string) []string {
	v, ok := r.values[key]
	if !ok {
		return nil
	}

	var out []string

	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}

	return out
}

// Bool parses the value of key. Absent or malformed values yield def.
func (r Reader) Bool(key string, def bool) bool {
	v, ok := r.values[key]
	if !ok {
		return def
	}

	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}

	return b
}

// Keys returns the keys in directive order.
func (r Reader) Keys() []string { return r.keys }
