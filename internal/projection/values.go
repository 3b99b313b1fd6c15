package projection

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
)

// blank reports whether v counts as "no value" for fallback chains.
func blank(v any) bool {
	switch s := v.(type) {
	case nil:
		return true
	case string:
		return s == ""
	}
	return false
}

// coalesce returns the first non-blank value, or nil.
func coalesce(values ...any) any {
	for _, v := range values {
		if !blank(v) {
			return v
		}
	}
	return nil
}

// guidList extracts identifiers from a list of guids or guid-bearing
// records. It never returns nil.
func guidList(v any) []string {
	out := []string{}
	if v == nil {
		return out
	}
	if ss, ok := v.([]string); ok {
		return append(out, ss...)
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return out
	}
	for i := 0; i < rv.Len(); i++ {
		elem := rv.Index(i).Interface()
		if s, ok := elem.(string); ok {
			out = append(out, s)
			continue
		}
		rec, ok := asRecord(elem)
		if !ok {
			continue
		}
		if g, ok := rec.Field(identifierKey); ok {
			if s, ok := g.(string); ok && s != "" {
				out = append(out, s)
			}
		}
	}
	return out
}

// toInt64 converts a database identifier into an int64.
func toInt64(v any) (int64, error) {
	switch n := v.(type) {
	case int:
		return int64(n), nil
	case int8:
		return int64(n), nil
	case int16:
		return int64(n), nil
	case int32:
		return int64(n), nil
	case int64:
		return n, nil
	case uint:
		return int64(n), nil
	case uint8:
		return int64(n), nil
	case uint16:
		return int64(n), nil
	case uint32:
		return int64(n), nil
	case uint64:
		if n > math.MaxInt64 {
			return 0, fmt.Errorf("id %d overflows int64", n)
		}
		return int64(n), nil
	case float64:
		if n != math.Trunc(n) {
			return 0, fmt.Errorf("id %v is not whole", n)
		}
		return int64(n), nil
	case json.Number:
		return n.Int64()
	case string:
		return strconv.ParseInt(n, 10, 64)
	case nil:
		return 0, fmt.Errorf("id is missing")
	}
	return 0, fmt.Errorf("unsupported id type %T", v)
}

// joinMedia joins a relative media path under root.
func joinMedia(root, rel string) string {
	return strings.TrimRight(root, "/") + "/" + strings.TrimLeft(rel, "/")
}

// mediaURL resolves a media field to its public URL.
func (p *Projector) mediaURL(v any) any {
	switch f := v.(type) {
	case nil:
		return nil
	case MediaFile:
		if u := f.PublicURL(); u != "" {
			return u
		}
		return nil
	case string:
		if f == "" {
			return nil
		}
		return joinMedia(p.mediaRoot, f)
	case []byte:
		if len(f) == 0 {
			return nil
		}
		return joinMedia(p.mediaRoot, string(f))
	case fmt.Stringer:
		if s := f.String(); s != "" {
			return joinMedia(p.mediaRoot, s)
		}
		return nil
	}
	return nil
}

// displayUser turns a user reference into a display string: the email, else
// the username. Scalars are returned unchanged.
func displayUser(v any) any {
	if _, ok := v.(string); ok {
		return v
	}
	rec, ok := asRecord(v)
	if !ok {
		return v
	}
	email, _ := rec.Field("email")
	username, _ := rec.Field("username")
	return coalesce(email, username)
}

// parseDocument decodes an embedded JSON document. Values that are already
// decoded are passed through.
func parseDocument(v any) (any, error) {
	var raw []byte
	switch d := v.(type) {
	case nil:
		return nil, nil
	case string:
		raw = []byte(d)
	case []byte:
		raw = d
	case json.RawMessage:
		raw = d
	default:
		return v, nil
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return nil, nil
	}

	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}
