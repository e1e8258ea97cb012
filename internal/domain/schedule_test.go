package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScheduleSlotFields(t *testing.T) {
	tests := []struct {
		name       string
		slot       ScheduleSlot
		wantDate   string
		wantPeriod string
	}{
		{"strings", ScheduleSlot{"date": "2025-09-01", "periodId": "p1"}, "2025-09-01", "p1"},
		{"numeric period", ScheduleSlot{"date": "2025-09-01", "periodId": float64(3)}, "2025-09-01", "3"},
		{"json number period", ScheduleSlot{"date": "2025-09-01", "periodId": json.Number("4")}, "2025-09-01", "4"},
		{"zero period is missing", ScheduleSlot{"date": "2025-09-01", "periodId": float64(0)}, "2025-09-01", ""},
		{"zero json number is missing", ScheduleSlot{"periodId": json.Number("0")}, "", ""},
		{"null and bool are missing", ScheduleSlot{"date": nil, "periodId": true}, "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantDate, tt.slot.Date())
			assert.Equal(t, tt.wantPeriod, tt.slot.PeriodID())
		})
	}
}

func TestScheduleKey(t *testing.T) {
	assert.Equal(t, "2025-09-01:p1", ScheduleKey("2025-09-01", "p1"))
}
