package service

import (
	"alcyxob/lesson-planner/internal/domain"
	"alcyxob/lesson-planner/internal/repository"
	"context"
	"time"
)

const dateLayout = "2006-01-02"

// DashboardSummary is the overview shown on the landing page.
type DashboardSummary struct {
	UnitCount               int                   `json:"unitCount"`
	LessonCount             int                   `json:"lessonCount"`
	LessonsPlannedNext7Days int                   `json:"lessonsPlannedNext7Days"`
	TodaySchedule           []domain.ScheduleSlot `json:"todaySchedule"`
}

type DashboardService interface {
	// Summary computes the overview for date (YYYY-MM-DD, empty means today).
	Summary(ctx context.Context, date string) (*DashboardSummary, error)
}

type dashboardService struct {
	unitRepo     repository.UnitRepository
	lessonRepo   repository.LessonRepository
	scheduleRepo repository.ScheduleRepository
	now          func() time.Time
}

func NewDashboardService(unitRepo repository.UnitRepository, lessonRepo repository.LessonRepository, scheduleRepo repository.ScheduleRepository) DashboardService {
	return &dashboardService{
		unitRepo:     unitRepo,
		lessonRepo:   lessonRepo,
		scheduleRepo: scheduleRepo,
		now:          time.Now,
	}
}

func (s *dashboardService) Summary(ctx context.Context, date string) (*DashboardSummary, error) {
	day := s.now()
	if date != "" {
		parsed, err := time.Parse(dateLayout, date)
		if err != nil {
			return nil, validationError("Invalid date, expected YYYY-MM-DD")
		}
		day = parsed
	}
	today := day.Format(dateLayout)
	weekEnd := day.AddDate(0, 0, 7).Format(dateLayout)

	units, err := s.unitRepo.List(ctx)
	if err != nil {
		return nil, storageError("Failed to load units", err)
	}
	lessons, err := s.lessonRepo.List(ctx)
	if err != nil {
		return nil, storageError("Failed to load lessons", err)
	}
	slots, err := s.scheduleRepo.List(ctx)
	if err != nil {
		return nil, storageError("Failed to load planner", err)
	}

	summary := &DashboardSummary{
		UnitCount:     len(units),
		LessonCount:   len(lessons),
		TodaySchedule: []domain.ScheduleSlot{},
	}
	inWeek := func(d string) bool { return d != "" && d >= today && d < weekEnd }
	for _, u := range units {
		for _, l := range u.Lessons {
			if inWeek(l.ScheduledDate) {
				summary.LessonsPlannedNext7Days++
			}
		}
	}
	for _, l := range lessons {
		if inWeek(l.ScheduledDate) {
			summary.LessonsPlannedNext7Days++
		}
	}
	for _, slot := range slots {
		if slot.Date() == today {
			summary.TodaySchedule = append(summary.TodaySchedule, slot)
		}
	}
	return summary, nil
}
