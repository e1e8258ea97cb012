package service

import (
	"alcyxob/lesson-planner/internal/domain"
	"alcyxob/lesson-planner/internal/repository/kv"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestUnitService(files *fakeFiles) (*unitService, *countingStore) {
	store := newCountingStore()
	var svc UnitService
	if files != nil {
		svc = NewUnitService(kv.NewUnitRepository(store), files, nil)
	} else {
		svc = NewUnitService(kv.NewUnitRepository(store), nil, nil)
	}
	s := svc.(*unitService)
	s.now = fixedClock(time.Date(2025, 9, 1, 8, 0, 0, 0, time.UTC))
	return s, store
}

func TestCreateUnitAssignsIDAndListsOnce(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestUnitService(nil)

	created, err := svc.CreateUnit(ctx, domain.UnitPlan{Title: "Algebra I"})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	assert.Equal(t, created.CreatedAt, created.UpdatedAt)

	units, err := svc.ListUnits(ctx)
	require.NoError(t, err)
	count := 0
	for _, u := range units {
		if u.ID == created.ID {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestCreateUnitKeepsProvidedID(t *testing.T) {
	svc, _ := newTestUnitService(nil)
	created, err := svc.CreateUnit(context.Background(), domain.UnitPlan{ID: "fixed", Title: "Geometry"})
	require.NoError(t, err)
	assert.Equal(t, "fixed", created.ID)
}

func TestCreateUnitRequiresTitle(t *testing.T) {
	svc, store := newTestUnitService(nil)
	_, err := svc.CreateUnit(context.Background(), domain.UnitPlan{Subject: "Math"})
	assert.ErrorIs(t, err, ErrValidation)
	assert.Zero(t, store.setCount())
}

func TestUpdateUnitReplacesAndPreservesCreatedAt(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestUnitService(nil)
	created, err := svc.CreateUnit(ctx, domain.UnitPlan{Title: "Algebra I", Description: "old"})
	require.NoError(t, err)

	later := time.Date(2025, 9, 2, 8, 0, 0, 0, time.UTC)
	svc.now = fixedClock(later)
	updated, err := svc.UpdateUnit(ctx, created.ID, domain.UnitPlan{ID: "ignored", Title: "Algebra II"})
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	assert.Equal(t, later, updated.UpdatedAt)
	assert.Empty(t, updated.Description, "update is a full replace")

	got, err := svc.GetUnit(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Algebra II", got.Title)
}

func TestGetUnitNotFound(t *testing.T) {
	svc, _ := newTestUnitService(nil)
	_, err := svc.GetUnit(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteUnitIsIdempotent(t *testing.T) {
	svc, _ := newTestUnitService(nil)
	assert.NoError(t, svc.DeleteUnit(context.Background(), "missing"))
}

func TestDeleteUnitRemovesSourceDocument(t *testing.T) {
	ctx := context.Background()
	files := newFakeFiles()
	files.objects["sources/u1/a.pdf"] = []byte("%PDF-")
	svc, _ := newTestUnitService(files)
	_, err := svc.CreateUnit(ctx, domain.UnitPlan{ID: "u1", Title: "T", SourceDocumentKey: "sources/u1/a.pdf"})
	require.NoError(t, err)

	url, err := svc.SourceDocumentURL(ctx, "u1")
	require.NoError(t, err)
	assert.Contains(t, url, "sources/u1/a.pdf")

	require.NoError(t, svc.DeleteUnit(ctx, "u1"))
	assert.Equal(t, []string{"sources/u1/a.pdf"}, files.deleted)
}

func TestSourceDocumentURLWithoutStorage(t *testing.T) {
	svc, _ := newTestUnitService(nil)
	_, err := svc.SourceDocumentURL(context.Background(), "u1")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCreateUnitStorageFailure(t *testing.T) {
	svc, store := newTestUnitService(nil)
	store.fail = errors.New("connection reset")
	_, err := svc.CreateUnit(context.Background(), domain.UnitPlan{Title: "x"})
	assert.ErrorIs(t, err, ErrStorage)
	assert.Equal(t, "Failed to save unit", PublicMessage(err))
}

func TestUnitSaveLinksEmbeddedLessons(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestUnitService(nil)

	created, err := svc.CreateUnit(ctx, domain.UnitPlan{
		Title:   "Algebra I",
		Lessons: []domain.Lesson{{Title: "Variables"}, {ID: "l2", Title: "Equations", UnitID: "stale"}},
	})
	require.NoError(t, err)
	for _, l := range created.Lessons {
		assert.NotEmpty(t, l.ID)
		assert.Equal(t, created.ID, l.UnitID)
	}
	assert.Equal(t, "l2", created.Lessons[1].ID)

	updated, err := svc.UpdateUnit(ctx, created.ID, domain.UnitPlan{
		Title:   "Algebra I",
		Lessons: []domain.Lesson{{ID: "l3", Title: "Inequalities"}},
	})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.Lessons[0].UnitID)

	stored, err := svc.GetUnit(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, stored.Lessons[0].UnitID)
}
