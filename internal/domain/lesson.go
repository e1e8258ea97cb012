// internal/domain/lesson.go
package domain

// Lesson is the single lesson shape used both inside a UnitPlan and in the
// standalone lesson library ("lesson:<id>").
type Lesson struct {
	ID            string     `json:"id"`
	UnitID        string     `json:"unitId,omitempty"` // Weak back-reference, never ownership
	Title         string     `json:"title"`
	Objectives    []string   `json:"objectives"`
	Activities    string     `json:"activities"`
	Materials     []string   `json:"materials"`
	Assessment    string     `json:"assessment"`
	Duration      string     `json:"duration"` // Free text, e.g. "60 minutes"
	ScheduledDate string     `json:"scheduledDate,omitempty"`
	Resources     []Resource `json:"resources"`
	Notes         string     `json:"notes"`
}

// Normalize replaces nil slices with empty ones.
func (l *Lesson) Normalize() {
	if l.Objectives == nil {
		l.Objectives = []string{}
	}
	if l.Materials == nil {
		l.Materials = []string{}
	}
	if l.Resources == nil {
		l.Resources = []Resource{}
	}
	for i := range l.Resources {
		if l.Resources[i].AlignedObjectives == nil {
			l.Resources[i].AlignedObjectives = []string{}
		}
	}
}
