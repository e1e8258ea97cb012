package service

import (
	"alcyxob/lesson-planner/internal/domain"
	"alcyxob/lesson-planner/internal/repository"
	"context"
	"strings"

	"github.com/google/uuid"
)

// LessonService manages the standalone lesson library ("lesson:<id>").
type LessonService interface {
	ListLessons(ctx context.Context) ([]domain.Lesson, error)
	CreateLesson(ctx context.Context, lesson domain.Lesson) (*domain.Lesson, error)
	UpdateLesson(ctx context.Context, id string, lesson domain.Lesson) (*domain.Lesson, error)
	DeleteLesson(ctx context.Context, id string) error
}

type lessonService struct {
	lessonRepo repository.LessonRepository
}

func NewLessonService(lessonRepo repository.LessonRepository) LessonService {
	return &lessonService{lessonRepo: lessonRepo}
}

func (s *lessonService) ListLessons(ctx context.Context) ([]domain.Lesson, error) {
	lessons, err := s.lessonRepo.List(ctx)
	if err != nil {
		return nil, storageError("Failed to load lessons", err)
	}
	return lessons, nil
}

func (s *lessonService) CreateLesson(ctx context.Context, lesson domain.Lesson) (*domain.Lesson, error) {
	if lesson.ID == "" {
		lesson.ID = uuid.NewString()
	}
	return s.save(ctx, lesson)
}

// UpdateLesson overwrites the lesson at id; the path id wins.
func (s *lessonService) UpdateLesson(ctx context.Context, id string, lesson domain.Lesson) (*domain.Lesson, error) {
	lesson.ID = id
	return s.save(ctx, lesson)
}

func (s *lessonService) save(ctx context.Context, lesson domain.Lesson) (*domain.Lesson, error) {
	if strings.TrimSpace(lesson.Title) == "" {
		return nil, validationError("Missing required field: title")
	}
	lesson.Normalize()
	for i := range lesson.Resources {
		if lesson.Resources[i].ID == "" {
			lesson.Resources[i].ID = uuid.NewString()
		}
	}
	if err := s.lessonRepo.Save(ctx, &lesson); err != nil {
		return nil, storageError("Failed to save lesson", err)
	}
	return &lesson, nil
}

func (s *lessonService) DeleteLesson(ctx context.Context, id string) error {
	if err := s.lessonRepo.Delete(ctx, id); err != nil {
		return storageError("Failed to delete lesson", err)
	}
	return nil
}
