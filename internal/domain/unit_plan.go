// internal/domain/unit_plan.go
package domain

import "time"

// UnitPlan is a multi-week instructional plan made of lessons aligned to standards.
// It is stored wholesale under the key "unit:<id>".
type UnitPlan struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Subject     string     `json:"subject"`
	GradeLevel  string     `json:"gradeLevel"`
	StartDate   string     `json:"startDate"` // YYYY-MM-DD, end >= start is not enforced
	EndDate     string     `json:"endDate"`
	Description string     `json:"description,omitempty"`
	Standards   []Standard `json:"standards"`
	Lessons     []Lesson   `json:"lessons"`

	// Object key of the archived source document, set when the unit was generated from an upload.
	SourceDocumentKey string `json:"sourceDocumentKey,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Standard is an externally defined curriculum requirement referenced by code.
// Subject and GradeLevel are denormalized copies of the owning unit's fields.
type Standard struct {
	ID          string `json:"id"`
	Code        string `json:"code"`
	Description string `json:"description"`
	Subject     string `json:"subject"`
	GradeLevel  string `json:"gradeLevel"`
}

// Normalize replaces nil slices with empty ones so the JSON form always carries arrays.
func (u *UnitPlan) Normalize() {
	if u.Standards == nil {
		u.Standards = []Standard{}
	}
	if u.Lessons == nil {
		u.Lessons = []Lesson{}
	}
	for i := range u.Lessons {
		u.Lessons[i].Normalize()
	}
}
