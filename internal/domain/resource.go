// internal/domain/resource.go
package domain

// ResourceType is the closed set of instructional artifact kinds.
type ResourceType string

const (
	ResourceWorksheet  ResourceType = "worksheet"
	ResourceText       ResourceType = "text"
	ResourceQuiz       ResourceType = "quiz"
	ResourceAssignment ResourceType = "assignment"
	ResourceExam       ResourceType = "exam"
)

// Valid reports whether t is one of the known resource types.
func (t ResourceType) Valid() bool {
	switch t {
	case ResourceWorksheet, ResourceText, ResourceQuiz, ResourceAssignment, ResourceExam:
		return true
	}
	return false
}

// Resource is a generated instructional artifact attached to a lesson.
// AlignedObjectives reference lesson objectives by label, not by id.
type Resource struct {
	ID                string       `json:"id"`
	Type              ResourceType `json:"type"`
	Title             string       `json:"title"`
	Description       string       `json:"description"`
	EstimatedTime     string       `json:"estimatedTime"`
	AlignedObjectives []string     `json:"alignedObjectives"`
}

// EnhancementType selects the focus of lesson enhancement suggestions.
type EnhancementType string

const (
	EnhanceDifferentiation EnhancementType = "differentiation"
	EnhanceTechnology      EnhancementType = "technology"
	EnhanceAssessment      EnhancementType = "assessment"
)
