package kv

import (
	"alcyxob/lesson-planner/internal/domain"
	"alcyxob/lesson-planner/internal/repository"
	"context"
	"errors"
)

type kvScheduleRepository struct {
	store repository.KVStore
}

// NewScheduleRepository creates a ScheduleRepository over store.
func NewScheduleRepository(store repository.KVStore) repository.ScheduleRepository {
	return &kvScheduleRepository{store: store}
}

func (r *kvScheduleRepository) List(ctx context.Context) ([]domain.ScheduleSlot, error) {
	return scanJSON[domain.ScheduleSlot](ctx, r.store, repository.SchedulePrefix)
}

// Save writes slot at its (date, periodId) key, overwriting any previous slot.
func (r *kvScheduleRepository) Save(ctx context.Context, slot domain.ScheduleSlot) error {
	date, period := slot.Date(), slot.PeriodID()
	if date == "" || period == "" {
		return errors.New("schedule slot requires date and periodId")
	}
	return setJSON(ctx, r.store, repository.SchedulePrefix+domain.ScheduleKey(date, period), slot)
}

func (r *kvScheduleRepository) Delete(ctx context.Context, date, periodID string) error {
	return r.store.Delete(ctx, repository.SchedulePrefix+domain.ScheduleKey(date, periodID))
}
