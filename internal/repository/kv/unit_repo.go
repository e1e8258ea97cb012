package kv

import (
	"alcyxob/lesson-planner/internal/domain"
	"alcyxob/lesson-planner/internal/repository"
	"context"
	"errors"
)

type kvUnitRepository struct {
	store repository.KVStore
}

// NewUnitRepository creates a UnitRepository over store.
func NewUnitRepository(store repository.KVStore) repository.UnitRepository {
	return &kvUnitRepository{store: store}
}

func (r *kvUnitRepository) List(ctx context.Context) ([]domain.UnitPlan, error) {
	units, err := scanJSON[domain.UnitPlan](ctx, r.store, repository.UnitPrefix)
	if err != nil {
		return nil, err
	}
	for i := range units {
		units[i].Normalize()
	}
	return units, nil
}

func (r *kvUnitRepository) GetByID(ctx context.Context, id string) (*domain.UnitPlan, error) {
	var unit domain.UnitPlan
	if err := getJSON(ctx, r.store, repository.UnitPrefix+id, &unit); err != nil {
		return nil, err
	}
	unit.Normalize()
	return &unit, nil
}

// Save replaces the full document at "unit:<id>".
func (r *kvUnitRepository) Save(ctx context.Context, unit *domain.UnitPlan) error {
	if unit == nil || unit.ID == "" {
		return errors.New("unit ID is required for save")
	}
	return setJSON(ctx, r.store, repository.UnitPrefix+unit.ID, unit)
}

func (r *kvUnitRepository) Delete(ctx context.Context, id string) error {
	return r.store.Delete(ctx, repository.UnitPrefix+id)
}
