package kv

import (
	"alcyxob/lesson-planner/internal/domain"
	"alcyxob/lesson-planner/internal/repository"
	"context"
	"errors"
)

type kvLessonRepository struct {
	store repository.KVStore
}

// NewLessonRepository creates a LessonRepository over store.
func NewLessonRepository(store repository.KVStore) repository.LessonRepository {
	return &kvLessonRepository{store: store}
}

func (r *kvLessonRepository) List(ctx context.Context) ([]domain.Lesson, error) {
	lessons, err := scanJSON[domain.Lesson](ctx, r.store, repository.LessonPrefix)
	if err != nil {
		return nil, err
	}
	for i := range lessons {
		lessons[i].Normalize()
	}
	return lessons, nil
}

func (r *kvLessonRepository) GetByID(ctx context.Context, id string) (*domain.Lesson, error) {
	var lesson domain.Lesson
	if err := getJSON(ctx, r.store, repository.LessonPrefix+id, &lesson); err != nil {
		return nil, err
	}
	lesson.Normalize()
	return &lesson, nil
}

func (r *kvLessonRepository) Save(ctx context.Context, lesson *domain.Lesson) error {
	if lesson == nil || lesson.ID == "" {
		return errors.New("lesson ID is required for save")
	}
	return setJSON(ctx, r.store, repository.LessonPrefix+lesson.ID, lesson)
}

func (r *kvLessonRepository) Delete(ctx context.Context, id string) error {
	return r.store.Delete(ctx, repository.LessonPrefix+id)
}
