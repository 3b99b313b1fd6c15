package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/GoSim-25-26J-441/seqr-views/internal/analysedby"
	"github.com/GoSim-25-26J-441/seqr-views/internal/projection"
	"github.com/GoSim-25-26J-441/seqr-views/internal/records"
	"github.com/GoSim-25-26J-441/seqr-views/internal/users"
	"github.com/GoSim-25-26J-441/seqr-views/internal/views/domain"
	"golang.org/x/sync/errgroup"
)

// RecordStore loads the entity records the views project.
type RecordStore interface {
	AllProjects(ctx context.Context) ([]projection.Record, error)
	Projects(ctx context.Context, guids []string) ([]projection.Record, error)
	Project(ctx context.Context, guid string) (projection.Record, error)
	Families(ctx context.Context, projectGuid string) ([]projection.Record, error)
	Family(ctx context.Context, guid string) (projection.Record, error)
	Individuals(ctx context.Context, projectGuid string) ([]projection.Record, error)
	Samples(ctx context.Context, projectGuid string) ([]projection.Record, error)
	Datasets(ctx context.Context, projectGuid string) ([]projection.Record, error)
}

// ViewService loads records for a caller and projects them.
type ViewService struct {
	store      RecordStore
	projector  *projection.Projector
	analysedBy analysedby.Source
}

// NewViewService creates a view service. analysedBy may be nil, in which
// case families never carry analysedBy.
func NewViewService(store RecordStore, projector *projection.Projector, analysedBy analysedby.Source) *ViewService {
	return &ViewService{store: store, projector: projector, analysedBy: analysedBy}
}

// Projects returns every project the caller can view.
func (s *ViewService) Projects(ctx context.Context, access *users.Access) ([]*projection.Result, error) {
	var (
		recs []projection.Record
		err  error
	)
	if access.Staff() {
		recs, err = s.store.AllProjects(ctx)
	} else {
		recs, err = s.store.Projects(ctx, access.ViewableProjects())
	}
	if err != nil {
		return nil, err
	}
	return s.projector.Projects(recs, access.Caller()), nil
}

// ProjectDetails loads a project and its families, individuals, samples and
// datasets concurrently, then projects them.
func (s *ViewService) ProjectDetails(ctx context.Context, access *users.Access, guid string, opts domain.Options) (*domain.ProjectDetails, error) {
	if !access.CanView(guid) {
		return nil, domain.ErrForbidden
	}

	var (
		project                                  projection.Record
		families, individuals, samples, datasets []projection.Record
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) { project, err = s.store.Project(gctx, guid); return })
	g.Go(func() (err error) { families, err = s.store.Families(gctx, guid); return })
	g.Go(func() (err error) { individuals, err = s.store.Individuals(gctx, guid); return })
	g.Go(func() (err error) { samples, err = s.store.Samples(gctx, guid); return })
	g.Go(func() (err error) { datasets, err = s.store.Datasets(gctx, guid); return })
	if err := g.Wait(); err != nil {
		return nil, notFound(err)
	}

	caller := access.Caller()
	flags := s.flags(ctx, opts)
	return &domain.ProjectDetails{
		Project:     s.projector.Project(project, caller, flags...),
		Families:    s.projector.Families(families, caller, flags...),
		Individuals: s.projector.Individuals(individuals, caller, flags...),
		Samples:     s.projector.Samples(samples, caller, flags...),
		Datasets:    s.projector.Datasets(datasets, caller, flags...),
	}, nil
}

// Family returns one family if the caller can view its project.
func (s *ViewService) Family(ctx context.Context, access *users.Access, guid string, opts domain.Options) (*projection.Result, error) {
	rec, err := s.store.Family(ctx, guid)
	if err != nil {
		return nil, notFound(err)
	}
	if !access.CanView(projectGuidOf(rec)) {
		return nil, domain.ErrForbidden
	}
	return s.projector.Family(rec, access.Caller(), s.flags(ctx, opts)...), nil
}

// User returns the caller's own account.
func (s *ViewService) User(access *users.Access) *projection.Result {
	return s.projector.User(projection.Object(access.User))
}

func (s *ViewService) flags(ctx context.Context, opts domain.Options) []projection.Flag {
	flags := []projection.Flag{
		projection.WithIndividualGuids(opts.IndividualGuids),
		projection.WithSampleType(opts.SampleType),
	}
	if opts.AnalysedBy && s.analysedBy != nil {
		flags = append(flags, projection.WithAnalysedBy(analysedby.ForContext(ctx, s.analysedBy)))
	}
	return flags
}

func projectGuidOf(rec projection.Record) string {
	v, _ := rec.Field("project")
	project, ok := v.(projection.Record)
	if !ok {
		return ""
	}
	guid, _ := project.Field("guid")
	s, _ := guid.(string)
	return s
}

func notFound(err error) error {
	if errors.Is(err, records.ErrNotFound) {
		return fmt.Errorf("%w: %w", domain.ErrNotFound, err)
	}
	return err
}
