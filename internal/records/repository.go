package records

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/GoSim-25-26J-441/seqr-views/internal/projection"
	"github.com/lib/pq"
)

// Repository loads entity rows as projection records.
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new Repository
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// AllProjects returns every project, for staff.
func (r *Repository) AllProjects(ctx context.Context) ([]projection.Record, error) {
	return r.query(ctx, "projects", selectAllProjects)
}

// Projects returns the projects with the given guids.
func (r *Repository) Projects(ctx context.Context, guids []string) ([]projection.Record, error) {
	if len(guids) == 0 {
		return []projection.Record{}, nil
	}
	return r.query(ctx, "projects", selectProjectsByGuid, pq.Array(guids))
}

// Project returns one project or ErrNotFound.
func (r *Repository) Project(ctx context.Context, guid string) (projection.Record, error) {
	return r.one(ctx, "project", selectProject, guid)
}

// Families returns the families of a project.
func (r *Repository) Families(ctx context.Context, projectGuid string) ([]projection.Record, error) {
	return r.query(ctx, "families", selectFamiliesByProject, projectGuid)
}

// Family returns one family or ErrNotFound.
func (r *Repository) Family(ctx context.Context, guid string) (projection.Record, error) {
	return r.one(ctx, "family", selectFamily, guid)
}

// Individuals returns the individuals of a project.
func (r *Repository) Individuals(ctx context.Context, projectGuid string) ([]projection.Record, error) {
	return r.query(ctx, "individuals", selectIndividualsByProject, projectGuid)
}

// Samples returns the samples of a project.
func (r *Repository) Samples(ctx context.Context, projectGuid string) ([]projection.Record, error) {
	return r.query(ctx, "samples", selectSamplesByProject, projectGuid)
}

// Datasets returns the datasets of a project.
func (r *Repository) Datasets(ctx context.Context, projectGuid string) ([]projection.Record, error) {
	return r.query(ctx, "datasets", selectDatasetsByProject, projectGuid)
}

func (r *Repository) query(ctx context.Context, what, q string, args ...any) ([]projection.Record, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", what, err)
	}
	defer rows.Close()

	recs, err := scanRecords(rows)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", what, err)
	}
	return recs, nil
}

func (r *Repository) one(ctx context.Context, what, q string, args ...any) (projection.Record, error) {
	recs, err := r.query(ctx, what, q, args...)
	if err != nil {
		return nil, err
	}
	if len(recs) == 0 {
		return nil, fmt.Errorf("%s: %w", what, ErrNotFound)
	}
	return recs[0], nil
}
