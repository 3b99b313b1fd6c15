package projection

import "log/slog"

// Entry is one intermediate key/value pair.
type Entry struct {
	Key   string
	Value any
}

// Flat is the ordered output of the normalizer, keyed by FieldSpec output key.
type Flat []Entry

// Get returns the value stored under key, nil when absent.
func (f Flat) Get(key string) any {
	for _, e := range f {
		if e.Key == key {
			return e.Value
		}
	}
	return nil
}

// walkState is the state of a path walk after each step.
type walkState int

const (
	walkStepping walkState = iota
	walkResolved
	walkAbsent  // the leaf field does not exist
	walkMissing // an intermediate relation could not be followed
)

// walk follows one FieldSpec path through rec. Every step is a named field
// read; intermediate values must be traversable as a Record.
type walk struct {
	path   []string
	step   int
	cur    Record
	state  walkState
	value  any
	failed string
}

func newWalk(rec Record, path []string) *walk {
	return &walk{path: path, cur: rec}
}

func (w *walk) advance() {
	name := w.path[w.step]
	v, ok := w.cur.Field(name)

	if w.step == len(w.path)-1 {
		if !ok {
			w.state = walkAbsent
			return
		}
		w.value = v
		w.state = walkResolved
		return
	}

	next, ok := asRecord(v)
	if !ok {
		w.failed = name
		w.state = walkMissing
		return
	}
	w.cur = next
	w.step++
}

func (w *walk) run() *walk {
	for w.state == walkStepping {
		w.advance()
	}
	return w
}

// normalize resolves every spec against rec. Unresolvable fields are kept
// with a nil value so that every spec yields exactly one entry.
func normalize(rec Record, specs []FieldSpec, log *slog.Logger) Flat {
	if rec == nil {
		rec = MapRecord{}
	}
	out := make(Flat, 0, len(specs))
	for _, spec := range specs {
		key := spec.OutputKey()
		w := newWalk(rec, spec.Path).run()
		if w.state == walkMissing {
			log.Warn("missing relation",
				slog.String("key", key),
				slog.String("relation", w.failed),
				slog.Int("step", w.step))
		}
		out = append(out, Entry{Key: key, Value: w.value})
	}
	return out
}
