package service

import (
	"alcyxob/lesson-planner/internal/domain"
	"alcyxob/lesson-planner/internal/repository"
	"context"
	"strings"
)

// PlannerService manages schedule slots keyed by (date, periodId).
type PlannerService interface {
	// ListSlots returns slots whose date lies in [from, to]; empty bounds are open.
	ListSlots(ctx context.Context, from, to string) ([]domain.ScheduleSlot, error)
	// UpsertSlot stores slot, replacing any slot with the same date and periodId.
	UpsertSlot(ctx context.Context, slot domain.ScheduleSlot) (domain.ScheduleSlot, error)
	DeleteSlot(ctx context.Context, date, periodID string) error
}

type plannerService struct {
	scheduleRepo repository.ScheduleRepository
}

func NewPlannerService(scheduleRepo repository.ScheduleRepository) PlannerService {
	return &plannerService{scheduleRepo: scheduleRepo}
}

func (s *plannerService) ListSlots(ctx context.Context, from, to string) ([]domain.ScheduleSlot, error) {
	slots, err := s.scheduleRepo.List(ctx)
	if err != nil {
		return nil, storageError("Failed to load planner", err)
	}
	if from == "" && to == "" {
		return slots, nil
	}
	filtered := make([]domain.ScheduleSlot, 0, len(slots))
	for _, slot := range slots {
		d := slot.Date()
		if from != "" && d < from {
			continue
		}
		if to != "" && d > to {
			continue
		}
		filtered = append(filtered, slot)
	}
	return filtered, nil
}

func (s *plannerService) UpsertSlot(ctx context.Context, slot domain.ScheduleSlot) (domain.ScheduleSlot, error) {
	if err := validateSlotKey(slot.Date(), slot.PeriodID()); err != nil {
		return nil, err
	}
	if err := s.scheduleRepo.Save(ctx, slot); err != nil {
		return nil, storageError("Failed to save planner slot", err)
	}
	return slot, nil
}

func (s *plannerService) DeleteSlot(ctx context.Context, date, periodID string) error {
	if err := validateSlotKey(date, periodID); err != nil {
		return err
	}
	if err := s.scheduleRepo.Delete(ctx, date, periodID); err != nil {
		return storageError("Failed to delete planner slot", err)
	}
	return nil
}

// validateSlotKey rejects empty parts and the key separator, so distinct
// (date, periodId) pairs never share a store key.
func validateSlotKey(date, periodID string) error {
	if date == "" || periodID == "" {
		return validationError("Missing date or periodId")
	}
	if strings.Contains(date, ":") || strings.Contains(periodID, ":") {
		return validationError("date and periodId must not contain ':'")
	}
	return nil
}
