package analysedby

import (
	"context"
	"fmt"
	"time"

	"github.com/GoSim-25-26J-441/seqr-views/internal/projection"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Source returns the analysed-by summaries of one family.
type Source interface {
	AnalysedBy(ctx context.Context, familyID int64) ([]projection.AnalysedBy, error)
}

// PostgresSource reads family_analysed_by rows.
type PostgresSource struct {
	db *pgxpool.Pool
}

func NewPostgresSource(db *pgxpool.Pool) *PostgresSource {
	return &PostgresSource{db: db}
}

func (s *PostgresSource) AnalysedBy(ctx context.Context, familyID int64) ([]projection.AnalysedBy, error) {
	const q = `
select coalesce(nullif(u.email, ''), u.username), a.last_modified_date
from seqr_familyanalysedby a
join auth_user u on u.id = a.created_by_id
where a.family_id = $1
order by a.last_modified_date;
`
	rows, err := s.db.Query(ctx, q, familyID)
	if err != nil {
		return nil, fmt.Errorf("query analysed by: %w", err)
	}
	defer rows.Close()

	out := make([]projection.AnalysedBy, 0, 4)
	for rows.Next() {
		var by string
		var at time.Time
		if err := rows.Scan(&by, &at); err != nil {
			return nil, fmt.Errorf("scan analysed by: %w", err)
		}
		out = append(out, projection.AnalysedBy{CreatedBy: by, LastModifiedDate: at})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate analysed by: %w", err)
	}
	return out, nil
}

// SourceFunc adapts a function to Source.
type SourceFunc func(ctx context.Context, familyID int64) ([]projection.AnalysedBy, error)

func (f SourceFunc) AnalysedBy(ctx context.Context, familyID int64) ([]projection.AnalysedBy, error) {
	return f(ctx, familyID)
}

// ForContext binds src to ctx so it can serve a projection.
func ForContext(ctx context.Context, src Source) projection.AnalysedByLookup {
	return projection.AnalysedByFunc(func(familyID int64) ([]projection.AnalysedBy, error) {
		return src.AnalysedBy(ctx, familyID)
	})
}
