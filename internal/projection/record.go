package projection

import (
	"reflect"
	"strings"

	"github.com/go-openapi/inflect"
)

// Record reads named fields from a persisted entity. ok is false when the
// record has no such field.
//
// Implementations may load relations on demand; the projector calls Field
// as often as its catalog requires and caches nothing.
type Record interface {
	Field(name string) (value any, ok bool)
}

// MapRecord adapts a plain string-keyed mapping.
type MapRecord map[string]any

// Field implements Record.
func (m MapRecord) Field(name string) (any, bool) {
	v, ok := m[name]
	return v, ok
}

// Object adapts a struct, or a pointer to one. A field matches a name
// through its `attr:"name"` tag, or when untagged, through its Go name
// compared case-insensitively with the camelized name ("pedigree_image"
// matches PedigreeImage). Nil pointer and interface fields read as nil.
//
// Object returns nil when v is not a struct.
func Object(v any) Record {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil
	}
	return object{v: rv}
}

type object struct {
	v reflect.Value
}

// Field implements Record.
func (o object) Field(name string) (any, bool) {
	t := o.v.Type()
	goName := inflect.Camelize(name)
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}
		tag := sf.Tag.Get("attr")
		if tag == "-" {
			continue
		}
		if tag == name || (tag == "" && strings.EqualFold(sf.Name, goName)) {
			return fieldValue(o.v.Field(i)), true
		}
	}
	return nil, false
}

func fieldValue(fv reflect.Value) any {
	switch fv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice:
		if fv.IsNil() {
			return nil
		}
	}
	return fv.Interface()
}

// asRecord turns a relation value into a Record. It fails for nil values and
// for values that carry no named fields.
func asRecord(v any) (Record, bool) {
	switch r := v.(type) {
	case nil:
		return nil, false
	case Record:
		if rv := reflect.ValueOf(r); rv.Kind() == reflect.Pointer && rv.IsNil() {
			return nil, false
		}
		return r, true
	case map[string]any:
		return MapRecord(r), true
	}
	if rec := Object(v); rec != nil {
		return rec, true
	}
	return nil, false
}
