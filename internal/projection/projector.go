package projection

import (
	"fmt"
	"io"
	"log/slog"
	"time"
)

// DefaultMediaRoot is the public root relative media paths are joined under.
const DefaultMediaRoot = "/media/"

// PermissionCheck reports whether the caller can edit the given entity.
type PermissionCheck func(entity Record) bool

// Caller carries the caller's privileges into a projection.
type Caller struct {
	// Privileged callers (staff) see privileged fields and can edit everything.
	Privileged bool
	CanEdit    PermissionCheck
}

func (c Caller) canEdit(rec Record) bool {
	if c.Privileged {
		return true
	}
	return c.CanEdit != nil && c.CanEdit(rec)
}

// AnalysedBy summarises one analyst's pass over a family.
type AnalysedBy struct {
	CreatedBy        string    `json:"createdBy"`
	LastModifiedDate time.Time `json:"lastModifiedDate"`
}

// AnalysedByLookup returns the analysed-by summaries of a family, keyed by
// the family's internal id, in display order.
type AnalysedByLookup interface {
	AnalysedBy(familyID int64) ([]AnalysedBy, error)
}

// AnalysedByFunc adapts a function to AnalysedByLookup.
type AnalysedByFunc func(familyID int64) ([]AnalysedBy, error)

// AnalysedBy implements AnalysedByLookup.
func (f AnalysedByFunc) AnalysedBy(familyID int64) ([]AnalysedBy, error) {
	return f(familyID)
}

// MediaFile is implemented by media field values that know their own public
// URL.
type MediaFile interface {
	PublicURL() string
}

// Flag adjusts a single projection call.
type Flag func(*settings)

type settings struct {
	categoryGuids   bool
	individualGuids bool
	sampleType      bool
	analysedBy      AnalysedByLookup
}

func newSettings(flags []Flag) settings {
	s := settings{categoryGuids: true, sampleType: true}
	for _, f := range flags {
		f(&s)
	}
	return s
}

// WithCategoryGuids controls projectCategoryGuids on projects. On by default;
// when off the field is an empty list.
func WithCategoryGuids(on bool) Flag {
	return func(s *settings) { s.categoryGuids = on }
}

// WithIndividualGuids adds individualGuids to families from the guids the
// record already carries under "individuals". Off by default.
func WithIndividualGuids(on bool) Flag {
	return func(s *settings) { s.individualGuids = on }
}

// WithSampleType controls sampleType on datasets. On by default.
func WithSampleType(on bool) Flag {
	return func(s *settings) { s.sampleType = on }
}

// WithAnalysedBy adds analysedBy to families using lookup. A nil lookup
// leaves the field out.
func WithAnalysedBy(lookup AnalysedByLookup) Flag {
	return func(s *settings) { s.analysedBy = lookup }
}

// Projector projects records of every kind against one Catalog. It holds no
// mutable state and is safe for concurrent use.
type Projector struct {
	catalog   *Catalog
	mediaRoot string
	logger    *slog.Logger
}

// Option configures a Projector.
type Option func(*Projector)

// WithMediaRoot sets the root relative media paths are joined under.
func WithMediaRoot(root string) Option {
	return func(p *Projector) {
		if root != "" {
			p.mediaRoot = root
		}
	}
}

// WithLogger sets the sink for soft-failure diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Projector) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// New creates a Projector. It fails when catalog misses a kind.
func New(catalog *Catalog, opts ...Option) (*Projector, error) {
	if catalog == nil {
		return nil, fmt.Errorf("%w: nil catalog", ErrConfig)
	}
	for _, kind := range Kinds {
		if !catalog.Has(kind) {
			return nil, fmt.Errorf("%w: %s", ErrUnregisteredKind, kind)
		}
	}

	p := &Projector{
		catalog:   catalog,
		mediaRoot: DefaultMediaRoot,
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// Catalog returns the catalog the projector reads.
func (p *Projector) Catalog() *Catalog {
	return p.catalog
}

// view is the state the augmentation step of one record works on.
type view struct {
	kind   Kind
	record Record
	out    *Result
	rel    Flat
	caller Caller
	flags  settings
	log    *slog.Logger
}

// pipeline is the kind-specific part of a projection: the relation lookups
// the augmentation needs, the augmentation itself, and the output keys it
// adds on top of the catalog fields.
type pipeline struct {
	relations func(settings) []FieldSpec
	augment   func(p *Projector, v *view)
	added     []string
}

var pipelines = map[Kind]pipeline{
	KindProject: {
		relations: projectRelations,
		augment:   augmentProject,
		added:     []string{"projectCategoryGuids", "canEdit"},
	},
	KindFamily: {
		relations: familyRelations,
		augment:   augmentFamily,
		added:     []string{"projectGuid", "analysedBy", "individualGuids"},
	},
	KindIndividual: {
		relations: individualRelations,
		augment:   augmentIndividual,
		added:     []string{"projectGuid", "familyGuid"},
	},
	KindSample: {
		relations: sampleRelations,
		augment:   augmentSample,
		added:     []string{"projectGuid", "individualGuid"},
	},
	KindDataset: {
		relations: datasetRelations,
		augment:   augmentDataset,
		added:     []string{"projectGuid", "sampleType"},
	},
}

// reservedKeys are the output keys of kind that no catalog field may take:
// the identifier key and every key the augmentation adds.
func reservedKeys(kind Kind) []string {
	return append([]string{kind.GuidKey()}, pipelines[kind].added...)
}

// project runs normalize, transform and augment for one record.
func (p *Projector) project(kind Kind, rec Record, caller Caller, s settings, relations []FieldSpec) *Result {
	log := p.logger.With(slog.String("kind", string(kind)))

	flat := normalize(rec, p.catalog.fields(kind, caller.Privileged), log)
	rel := normalize(rec, relations, log)

	fields, guid, _ := TransformKeys(flat)
	out := NewResult()
	out.Set(kind.GuidKey(), guid)
	out.merge(fields)

	if guid != nil {
		log = log.With(slog.Any("guid", guid))
	}
	pipelines[kind].augment(p, &view{
		kind:   kind,
		record: rec,
		out:    out,
		rel:    rel,
		caller: caller,
		flags:  s,
		log:    log,
	})
	return out
}
