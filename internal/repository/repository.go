package repository

import (
	"alcyxob/lesson-planner/internal/domain"
	"context"
)

// Error constants for repository layer
var (
	ErrNotFound = RepositoryError("not found")
)

// RepositoryError helps distinguish repository errors
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// KVEntry is one key/value pair returned by a prefix scan.
type KVEntry struct {
	Key   string
	Value []byte
}

// KVStore is the flat key-value collaborator every repository is built on.
// Values are opaque JSON documents. There are no transactions: concurrent
// writers to the same key are last-write-wins.
type KVStore interface {
	Get(ctx context.Context, key string) ([]byte, error) // ErrNotFound when absent
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error // Deleting a missing key is not an error
	ScanPrefix(ctx context.Context, prefix string) ([]KVEntry, error)
	Close(ctx context.Context) error
}

// Key prefixes of the flat namespace.
const (
	UnitPrefix     = "unit:"
	LessonPrefix   = "lesson:"
	SchedulePrefix = "schedule:"
)

// UnitRepository stores unit plans at "unit:<id>".
type UnitRepository interface {
	List(ctx context.Context) ([]domain.UnitPlan, error)
	GetByID(ctx context.Context, id string) (*domain.UnitPlan, error)
	Save(ctx context.Context, unit *domain.UnitPlan) error
	Delete(ctx context.Context, id string) error
}

// LessonRepository stores library lessons at "lesson:<id>".
type LessonRepository interface {
	List(ctx context.Context) ([]domain.Lesson, error)
	GetByID(ctx context.Context, id string) (*domain.Lesson, error)
	Save(ctx context.Context, lesson *domain.Lesson) error
	Delete(ctx context.Context, id string) error
}

// ScheduleRepository stores planner slots at "schedule:<date>:<periodId>".
type ScheduleRepository interface {
	List(ctx context.Context) ([]domain.ScheduleSlot, error)
	Save(ctx context.Context, slot domain.ScheduleSlot) error
	Delete(ctx context.Context, date, periodID string) error
}
