package service

import (
	"alcyxob/lesson-planner/internal/domain"
	"alcyxob/lesson-planner/internal/logger"
	"alcyxob/lesson-planner/internal/repository"
	"alcyxob/lesson-planner/internal/storage"
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// UnitService manages unit plans stored under "unit:<id>".
type UnitService interface {
	ListUnits(ctx context.Context) ([]domain.UnitPlan, error)
	GetUnit(ctx context.Context, id string) (*domain.UnitPlan, error)
	CreateUnit(ctx context.Context, unit domain.UnitPlan) (*domain.UnitPlan, error)
	UpdateUnit(ctx context.Context, id string, unit domain.UnitPlan) (*domain.UnitPlan, error)
	DeleteUnit(ctx context.Context, id string) error
	SourceDocumentURL(ctx context.Context, id string) (string, error)
}

type unitService struct {
	unitRepo repository.UnitRepository
	files    storage.FileStorage // nil when object storage is disabled
	log      *logger.Logger
	now      func() time.Time
}

// NewUnitService creates a UnitService. files may be nil.
func NewUnitService(unitRepo repository.UnitRepository, files storage.FileStorage, log *logger.Logger) UnitService {
	if log == nil {
		log = logger.Nop()
	}
	return &unitService{
		unitRepo: unitRepo,
		files:    files,
		log:      log.With("component", "UnitService"),
		now:      time.Now,
	}
}

func (s *unitService) ListUnits(ctx context.Context) ([]domain.UnitPlan, error) {
	units, err := s.unitRepo.List(ctx)
	if err != nil {
		return nil, storageError("Failed to load units", err)
	}
	return units, nil
}

func (s *unitService) GetUnit(ctx context.Context, id string) (*domain.UnitPlan, error) {
	unit, err := s.unitRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, newError(ErrNotFound, "Unit not found", nil)
		}
		return nil, storageError("Failed to load unit", err)
	}
	return unit, nil
}

// CreateUnit assigns an id when absent and stamps both timestamps.
func (s *unitService) CreateUnit(ctx context.Context, unit domain.UnitPlan) (*domain.UnitPlan, error) {
	if strings.TrimSpace(unit.Title) == "" {
		return nil, validationError("Missing required field: title")
	}
	if unit.ID == "" {
		unit.ID = uuid.NewString()
	}
	now := s.now().UTC()
	if unit.CreatedAt.IsZero() {
		unit.CreatedAt = now
	}
	unit.UpdatedAt = now
	unit.Normalize()
	linkLessons(&unit)

	if err := s.unitRepo.Save(ctx, &unit); err != nil {
		return nil, storageError("Failed to save unit", err)
	}
	s.log.Info("unit created", "unitID", unit.ID, "lessons", len(unit.Lessons))
	return &unit, nil
}

// UpdateUnit replaces the whole document. The path id wins over the body id and
// an omitted createdAt is carried over from the stored record.
func (s *unitService) UpdateUnit(ctx context.Context, id string, unit domain.UnitPlan) (*domain.UnitPlan, error) {
	if strings.TrimSpace(unit.Title) == "" {
		return nil, validationError("Missing required field: title")
	}
	unit.ID = id

	if unit.CreatedAt.IsZero() || unit.SourceDocumentKey == "" {
		existing, err := s.unitRepo.GetByID(ctx, id)
		switch {
		case err == nil:
			if unit.CreatedAt.IsZero() {
				unit.CreatedAt = existing.CreatedAt
			}
			if unit.SourceDocumentKey == "" {
				unit.SourceDocumentKey = existing.SourceDocumentKey
			}
		case !errors.Is(err, repository.ErrNotFound):
			return nil, storageError("Failed to load unit", err)
		}
	}
	now := s.now().UTC()
	if unit.CreatedAt.IsZero() {
		unit.CreatedAt = now
	}
	unit.UpdatedAt = now
	unit.Normalize()
	linkLessons(&unit)

	if err := s.unitRepo.Save(ctx, &unit); err != nil {
		return nil, storageError("Failed to save unit", err)
	}
	return &unit, nil
}

// linkLessons points every embedded lesson back at its unit and fills missing lesson ids.
func linkLessons(unit *domain.UnitPlan) {
	for i := range unit.Lessons {
		if unit.Lessons[i].ID == "" {
			unit.Lessons[i].ID = uuid.NewString()
		}
		unit.Lessons[i].UnitID = unit.ID
	}
}

// DeleteUnit removes the unit. Deleting a missing unit succeeds. An archived
// source document is removed best-effort.
func (s *unitService) DeleteUnit(ctx context.Context, id string) error {
	var sourceKey string
	if s.files != nil {
		if unit, err := s.unitRepo.GetByID(ctx, id); err == nil {
			sourceKey = unit.SourceDocumentKey
		}
	}
	if err := s.unitRepo.Delete(ctx, id); err != nil {
		return storageError("Failed to delete unit", err)
	}
	if sourceKey != "" {
		if err := s.files.DeleteObject(ctx, sourceKey); err != nil {
			s.log.Warn("failed to delete source document", "unitID", id, "key", sourceKey, "error", err)
		}
	}
	return nil
}

// SourceDocumentURL returns a presigned download URL for the unit's archived upload.
func (s *unitService) SourceDocumentURL(ctx context.Context, id string) (string, error) {
	if s.files == nil {
		return "", validationError("Document storage is not enabled")
	}
	unit, err := s.GetUnit(ctx, id)
	if err != nil {
		return "", err
	}
	if unit.SourceDocumentKey == "" {
		return "", newError(ErrNotFound, "Unit has no source document", nil)
	}
	url, err := s.files.GeneratePresignedDownloadURL(ctx, unit.SourceDocumentKey, storage.DefaultPresignedURLExpiry)
	if err != nil {
		return "", storageError("Failed to create download URL", err)
	}
	return url, nil
}
