package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/GoSim-25-26J-441/seqr-views/internal/analysedby"
	"github.com/GoSim-25-26J-441/seqr-views/internal/projection"
	"github.com/GoSim-25-26J-441/seqr-views/internal/records"
	"github.com/GoSim-25-26J-441/seqr-views/internal/users"
	"github.com/GoSim-25-26J-441/seqr-views/internal/views/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	mu       sync.Mutex
	projects map[string]projection.MapRecord
	families map[string]projection.MapRecord
	fail     error
	asked    [][]string
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		projects: map[string]projection.MapRecord{
			"P1": {"guid": "P1", "name": "Cohort", "project_categories": []string{"PC1"}},
			"P2": {"guid": "P2", "name": "Other"},
		},
		families: map[string]projection.MapRecord{
			"F1": {"id": int64(1), "guid": "F1", "project": projection.MapRecord{"guid": "P1"}, "individuals": []string{"I1"}},
			"F2": {"id": int64(2), "guid": "F2", "project": projection.MapRecord{"guid": "P2"}},
		},
	}
}

func (f *fakeStore) AllProjects(context.Context) ([]projection.Record, error) {
	return []projection.Record{f.projects["P1"], f.projects["P2"]}, f.fail
}

func (f *fakeStore) Projects(_ context.Context, guids []string) ([]projection.Record, error) {
	f.mu.Lock()
	f.asked = append(f.asked, guids)
	f.mu.Unlock()
	out := []projection.Record{}
	for _, g := range guids {
		if p, ok := f.projects[g]; ok {
			out = append(out, p)
		}
	}
	return out, f.fail
}

func (f *fakeStore) Project(_ context.Context, guid string) (projection.Record, error) {
	if f.fail != nil {
		return nil, f.fail
	}
	p, ok := f.projects[guid]
	if !ok {
		return nil, records.ErrNotFound
	}
	return p, nil
}

func (f *fakeStore) Families(_ context.Context, projectGuid string) ([]projection.Record, error) {
	out := []projection.Record{}
	for _, guid := range []string{"F1", "F2"} {
		fam := f.families[guid]
		if fam["project"].(projection.MapRecord)["guid"] == projectGuid {
			out = append(out, fam)
		}
	}
	return out, nil
}

func (f *fakeStore) Family(_ context.Context, guid string) (projection.Record, error) {
	fam, ok := f.families[guid]
	if !ok {
		return nil, records.ErrNotFound
	}
	return fam, nil
}

func (f *fakeStore) Individuals(_ context.Context, projectGuid string) ([]projection.Record, error) {
	return []projection.Record{projection.MapRecord{
		"guid":   "I1",
		"family": projection.MapRecord{"guid": "F1", "project": projection.MapRecord{"guid": projectGuid}},
	}}, nil
}

func (f *fakeStore) Samples(_ context.Context, projectGuid string) ([]projection.Record, error) {
	return []projection.Record{projection.MapRecord{"guid": "S1", "project_guid": projectGuid}}, nil
}

func (f *fakeStore) Datasets(_ context.Context, projectGuid string) ([]projection.Record, error) {
	return []projection.Record{projection.MapRecord{
		"guid":    "D1",
		"project": projection.MapRecord{"guid": projectGuid},
		"sample":  projection.MapRecord{"sample_type": "WES"},
	}}, nil
}

func newService(t *testing.T, store RecordStore, src analysedby.Source) *ViewService {
	t.Helper()
	cat, err := projection.DefaultCatalog()
	require.NoError(t, err)
	p, err := projection.New(cat)
	require.NoError(t, err)
	return NewViewService(store, p, src)
}

var (
	staff  = users.NewAccess(&users.User{ID: 1, Username: "admin", IsStaff: true}, nil, nil)
	member = users.NewAccess(&users.User{ID: 2, Username: "ana"}, []string{"P1"}, []string{"P1"})
)

func TestViewService_Projects(t *testing.T) {
	ctx := context.Background()

	t.Run("staff see every project", func(t *testing.T) {
		out, err := newService(t, newFakeStore(), nil).Projects(ctx, staff)
		require.NoError(t, err)
		assert.Len(t, out, 2)
	})

	t.Run("members see their projects", func(t *testing.T) {
		store := newFakeStore()
		out, err := newService(t, store, nil).Projects(ctx, member)
		require.NoError(t, err)

		require.Len(t, out, 1)
		canEdit, _ := out[0].Get("canEdit")
		assert.Equal(t, true, canEdit)
		assert.Equal(t, [][]string{{"P1"}}, store.asked)
	})

	t.Run("store failure", func(t *testing.T) {
		store := newFakeStore()
		store.fail = errors.New("db down")
		_, err := newService(t, store, nil).Projects(ctx, staff)
		assert.EqualError(t, err, "db down")
	})
}

func TestViewService_ProjectDetails(t *testing.T) {
	ctx := context.Background()
	src := analysedby.SourceFunc(func(_ context.Context, familyID int64) ([]projection.AnalysedBy, error) {
		return []projection.AnalysedBy{{CreatedBy: "ana@example.org"}}, nil
	})

	t.Run("loads and projects everything", func(t *testing.T) {
		details, err := newService(t, newFakeStore(), src).ProjectDetails(ctx, member, "P1", domain.DefaultOptions())
		require.NoError(t, err)

		guid, _ := details.Project.Get("projectGuid")
		assert.Equal(t, "P1", guid)
		require.Len(t, details.Families, 1)
		analysed, _ := details.Families[0].Get("analysedBy")
		assert.Len(t, analysed, 1)
		assert.False(t, details.Families[0].Has("individualGuids"))
		require.Len(t, details.Individuals, 1)
		familyGuid, _ := details.Individuals[0].Get("familyGuid")
		assert.Equal(t, "F1", familyGuid)
		sampleProject, _ := details.Samples[0].Get("projectGuid")
		assert.Equal(t, "P1", sampleProject)
		sampleType, _ := details.Datasets[0].Get("sampleType")
		assert.Equal(t, "WES", sampleType)
	})

	t.Run("options", func(t *testing.T) {
		opts := domain.Options{IndividualGuids: true}
		details, err := newService(t, newFakeStore(), src).ProjectDetails(ctx, member, "P1", opts)
		require.NoError(t, err)

		assert.False(t, details.Families[0].Has("analysedBy"))
		individuals, _ := details.Families[0].Get("individualGuids")
		assert.Equal(t, []string{"I1"}, individuals)
		assert.False(t, details.Datasets[0].Has("sampleType"))
	})

	t.Run("no analysed-by source", func(t *testing.T) {
		details, err := newService(t, newFakeStore(), nil).ProjectDetails(ctx, member, "P1", domain.DefaultOptions())
		require.NoError(t, err)
		assert.False(t, details.Families[0].Has("analysedBy"))
	})

	t.Run("forbidden", func(t *testing.T) {
		_, err := newService(t, newFakeStore(), src).ProjectDetails(ctx, member, "P2", domain.DefaultOptions())
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := newService(t, newFakeStore(), src).ProjectDetails(ctx, staff, "P404", domain.DefaultOptions())
		assert.ErrorIs(t, err, domain.ErrNotFound)
		assert.ErrorIs(t, err, records.ErrNotFound)
	})

	t.Run("staff see privileged fields", func(t *testing.T) {
		store := newFakeStore()
		store.families["F1"]["internal_case_review_notes"] = "internal"
		details, err := newService(t, store, nil).ProjectDetails(ctx, staff, "P1", domain.DefaultOptions())
		require.NoError(t, err)
		notes, _ := details.Families[0].Get("internalCaseReviewNotes")
		assert.Equal(t, "internal", notes)

		details, err = newService(t, store, nil).ProjectDetails(ctx, member, "P1", domain.DefaultOptions())
		require.NoError(t, err)
		assert.False(t, details.Families[0].Has("internalCaseReviewNotes"))
	})
}

func TestViewService_Family(t *testing.T) {
	ctx := context.Background()
	svc := newService(t, newFakeStore(), nil)

	out, err := svc.Family(ctx, member, "F1", domain.DefaultOptions())
	require.NoError(t, err)
	guid, _ := out.Get("familyGuid")
	assert.Equal(t, "F1", guid)

	_, err = svc.Family(ctx, member, "F2", domain.DefaultOptions())
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = svc.Family(ctx, member, "F404", domain.DefaultOptions())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestViewService_User(t *testing.T) {
	out := newService(t, newFakeStore(), nil).User(member)
	username, _ := out.Get("username")
	isStaff, _ := out.Get("isStaff")
	assert.Equal(t, "ana", username)
	assert.Equal(t, false, isStaff)
}
