package projection

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// Tier decides who can see a field.
type Tier int

const (
	TierPublic Tier = iota
	TierPrivileged
)

func (t Tier) String() string {
	if t == TierPrivileged {
		return "privileged"
	}
	return "public"
}

// identifierKey is the intermediate key every catalog uses for its own guid.
const identifierKey = "guid"

// FieldSpec maps one attribute, possibly reached through relations, to an
// intermediate output key.
type FieldSpec struct {
	// Path is the attribute chain, e.g. ["family", "project", "guid"].
	Path []string
	// Key is the snake_case output key. Empty means Path joined with "_".
	Key  string
	Tier Tier
}

// NewField builds a public FieldSpec from a dotted path such as
// "family.project.guid". It panics on an invalid path and is meant for
// compiled-in catalogs.
func NewField(path string) FieldSpec {
	steps, err := ParsePath(path)
	if err != nil {
		panic(err)
	}
	return FieldSpec{Path: steps, Key: strings.Join(steps, "_")}
}

// As returns a copy of f with an explicit output key.
func (f FieldSpec) As(key string) FieldSpec {
	f.Key = key
	return f
}

// OutputKey returns the intermediate key the field is stored under.
func (f FieldSpec) OutputKey() string {
	if f.Key != "" {
		return f.Key
	}
	return strings.Join(f.Path, "_")
}

// ParsePath splits a dotted attribute path into its steps.
func ParsePath(path string) ([]string, error) {
	if strings.TrimSpace(path) == "" {
		return nil, ErrEmptyPath
	}
	steps := strings.Split(path, ".")
	for _, s := range steps {
		if strings.TrimSpace(s) == "" {
			return nil, fmt.Errorf("%w: %q has an empty step", ErrEmptyPath, path)
		}
	}
	return steps, nil
}

type kindFields struct {
	public []FieldSpec
	all    []FieldSpec
}

// Registry collects field catalogs during start up. It is not safe for
// concurrent use; Build turns it into an immutable Catalog.
type Registry struct {
	kinds map[Kind]*kindFields
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{kinds: make(map[Kind]*kindFields)}
}

// Register records the public and privileged fields of one kind. Each kind
// can be registered once.
func (r *Registry) Register(kind Kind, public, privileged []FieldSpec) error {
	if !kind.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	if _, ok := r.kinds[kind]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateKind, kind)
	}

	kf := &kindFields{}
	for _, f := range public {
		f.Tier = TierPublic
		kf.public = append(kf.public, cloneSpec(f))
	}
	kf.all = slices.Clone(kf.public)
	for _, f := range privileged {
		f.Tier = TierPrivileged
		kf.all = append(kf.all, cloneSpec(f))
	}
	r.kinds[kind] = kf
	return nil
}

// Build validates every kind and freezes the registry into a Catalog.
// All validation failures are reported together.
func (r *Registry) Build() (*Catalog, error) {
	var errs []error
	for _, kind := range Kinds {
		kf, ok := r.kinds[kind]
		if !ok {
			errs = append(errs, fmt.Errorf("%w: %s", ErrUnregisteredKind, kind))
			continue
		}
		errs = append(errs, validateKind(kind, kf)...)
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	c := &Catalog{kinds: make(map[Kind]*kindFields, len(r.kinds))}
	for kind, kf := range r.kinds {
		c.kinds[kind] = &kindFields{public: slices.Clone(kf.public), all: slices.Clone(kf.all)}
	}
	return c, nil
}

func validateKind(kind Kind, kf *kindFields) []error {
	var errs []error
	seen := make(map[string]bool, len(kf.all))
	seenCamel := make(map[string]string, len(kf.all))
	reserved := reservedKeys(kind)
	hasGuid := false

	for _, f := range kf.all {
		if len(f.Path) == 0 {
			errs = append(errs, fmt.Errorf("%w: %s field %q", ErrEmptyPath, kind, f.Key))
			continue
		}
		for _, step := range f.Path {
			if strings.TrimSpace(step) == "" {
				errs = append(errs, fmt.Errorf("%w: %s field %q", ErrEmptyPath, kind, f.OutputKey()))
				break
			}
		}

		key := f.OutputKey()
		if seen[key] {
			errs = append(errs, fmt.Errorf("%w: %s %q", ErrDuplicateKey, kind, key))
			continue
		}
		seen[key] = true

		camel := camelKey(key)
		if prev, ok := seenCamel[camel]; ok {
			errs = append(errs, fmt.Errorf("%w: %s %q and %q both become %q", ErrDuplicateKey, kind, prev, key, camel))
			continue
		}
		seenCamel[camel] = key

		if slices.Contains(reserved, camel) {
			errs = append(errs, fmt.Errorf("%w: %s %q becomes %q, which the projection sets itself", ErrDuplicateKey, kind, key, camel))
			continue
		}

		if key == identifierKey && f.Tier == TierPublic && len(f.Path) == 1 && f.Path[0] == identifierKey {
			hasGuid = true
		}
	}

	if !hasGuid {
		errs = append(errs, fmt.Errorf("%w: %s", ErrMissingIdentifier, kind))
	}
	return errs
}

func cloneSpec(f FieldSpec) FieldSpec {
	f.Path = slices.Clone(f.Path)
	return f
}

// Catalog is the frozen, read-only set of field catalogs for every kind.
type Catalog struct {
	kinds map[Kind]*kindFields
}

// Has reports whether kind has a catalog.
func (c *Catalog) Has(kind Kind) bool {
	_, ok := c.kinds[kind]
	return ok
}

// Fields returns the kind's public fields, followed by its privileged fields
// when privileged is true. The returned slice is a copy.
func (c *Catalog) Fields(kind Kind, privileged bool) []FieldSpec {
	fields := c.fields(kind, privileged)
	out := make([]FieldSpec, len(fields))
	for i, f := range fields {
		out[i] = cloneSpec(f)
	}
	return out
}

// PrivilegedKeys returns the camelCase output keys only privileged callers see.
func (c *Catalog) PrivilegedKeys(kind Kind) []string {
	kf, ok := c.kinds[kind]
	if !ok {
		return nil
	}
	var keys []string
	for _, f := range kf.all[len(kf.public):] {
		keys = append(keys, camelKey(f.OutputKey()))
	}
	return keys
}

func (c *Catalog) fields(kind Kind, privileged bool) []FieldSpec {
	kf, ok := c.kinds[kind]
	if !ok {
		return nil
	}
	if privileged {
		return kf.all
	}
	return kf.public
}
