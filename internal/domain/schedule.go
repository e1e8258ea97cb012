// internal/domain/schedule.go
package domain

import (
	"encoding/json"
	"fmt"
)

// ScheduleSlot is a planner entry keyed by (date, periodId). The payload is an
// arbitrary JSON object; only date and periodId are interpreted.
type ScheduleSlot map[string]any

// Date returns the slot's "date" field as a string, or "" when it is missing.
func (s ScheduleSlot) Date() string { return s.stringField("date") }

// PeriodID returns the slot's "periodId" field as a string, or "" when it is
// missing. Numeric ids are formatted; zero counts as missing.
func (s ScheduleSlot) PeriodID() string { return s.stringField("periodId") }

func (s ScheduleSlot) stringField(name string) string {
	v, ok := s[name]
	if !ok || v == nil {
		return ""
	}
	switch t := v.(type) {
	case string:
		return t
	case json.Number:
		if f, err := t.Float64(); err == nil && f == 0 {
			return ""
		}
		return t.String()
	case float64:
		if t == 0 {
			return ""
		}
		return fmt.Sprintf("%v", t)
	default:
		return ""
	}
}

// ScheduleKey builds the composite key suffix "<date>:<periodId>".
func ScheduleKey(date, periodID string) string {
	return date + ":" + periodID
}
