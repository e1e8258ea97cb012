package service

import (
	"alcyxob/lesson-planner/internal/domain"
	"alcyxob/lesson-planner/internal/repository/kv"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpsertSlotRequiresDateAndPeriod(t *testing.T) {
	store := newCountingStore()
	svc := NewPlannerService(kv.NewScheduleRepository(store))

	_, err := svc.UpsertSlot(context.Background(), domain.ScheduleSlot{"date": "2025-09-01"})
	assert.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, "Missing date or periodId", PublicMessage(err))
	assert.Zero(t, store.setCount())
}

func TestUpsertSlotOverwritesSameKey(t *testing.T) {
	ctx := context.Background()
	store := newCountingStore()
	svc := NewPlannerService(kv.NewScheduleRepository(store))

	_, err := svc.UpsertSlot(ctx, domain.ScheduleSlot{"date": "2025-09-01", "periodId": "p1", "lessonId": "a"})
	require.NoError(t, err)
	_, err = svc.UpsertSlot(ctx, domain.ScheduleSlot{"date": "2025-09-01", "periodId": "p1", "lessonId": "b"})
	require.NoError(t, err)

	entries, err := store.ScanPrefix(ctx, "schedule:")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "schedule:2025-09-01:p1", entries[0].Key)
	assert.Contains(t, string(entries[0].Value), `"lessonId":"b"`)
}

func TestListSlotsFiltersByRange(t *testing.T) {
	ctx := context.Background()
	svc := NewPlannerService(kv.NewScheduleRepository(newCountingStore()))
	for _, d := range []string{"2025-09-01", "2025-09-05", "2025-09-10"} {
		_, err := svc.UpsertSlot(ctx, domain.ScheduleSlot{"date": d, "periodId": "p1"})
		require.NoError(t, err)
	}

	all, err := svc.ListSlots(ctx, "", "")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	some, err := svc.ListSlots(ctx, "2025-09-02", "2025-09-10")
	require.NoError(t, err)
	require.Len(t, some, 2)
	assert.Equal(t, "2025-09-05", some[0].Date())
}

func TestDeleteSlot(t *testing.T) {
	ctx := context.Background()
	svc := NewPlannerService(kv.NewScheduleRepository(newCountingStore()))
	_, err := svc.UpsertSlot(ctx, domain.ScheduleSlot{"date": "2025-09-01", "periodId": "p1"})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteSlot(ctx, "2025-09-01", "p1"))
	slots, err := svc.ListSlots(ctx, "", "")
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestUpsertSlotRejectsSeparatorInKeyParts(t *testing.T) {
	ctx := context.Background()
	store := newCountingStore()
	svc := NewPlannerService(kv.NewScheduleRepository(store))

	for _, slot := range []domain.ScheduleSlot{
		{"date": "2026-01-07:p1", "periodId": "x"},
		{"date": "2026-01-07", "periodId": "p1:x"},
	} {
		_, err := svc.UpsertSlot(ctx, slot)
		assert.ErrorIs(t, err, ErrValidation)
	}
	assert.Zero(t, store.setCount())
	assert.ErrorIs(t, svc.DeleteSlot(ctx, "2026-01-07", "p1:x"), ErrValidation)
}

func TestUpsertSlotRejectsZeroPeriod(t *testing.T) {
	store := newCountingStore()
	svc := NewPlannerService(kv.NewScheduleRepository(store))

	_, err := svc.UpsertSlot(context.Background(), domain.ScheduleSlot{"date": "2025-09-01", "periodId": float64(0)})
	assert.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, "Missing date or periodId", PublicMessage(err))
	assert.Zero(t, store.setCount())
}
