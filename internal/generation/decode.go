package generation

import (
	"alcyxob/lesson-planner/internal/domain"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrMalformedOutput means the model answered, but not with the expected JSON.
// The cause is nondeterministic output, so callers should offer a retry.
var ErrMalformedOutput = errors.New("completion output is not valid plan JSON")

// GeneratedUnit is the unit-plan-shaped payload the model returns.
type GeneratedUnit struct {
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Standards   []domain.Standard `json:"standards"`
	Lessons     []domain.Lesson   `json:"lessons"`
}

var (
	leadingFence  = regexp.MustCompile("^\\s*```[A-Za-z]*[ \\t]*\\r?\\n?")
	trailingFence = regexp.MustCompile("\\r?\\n?[ \\t]*```\\s*$")
)

// StripCodeFences removes one leading and one trailing Markdown code fence
// (optionally tagged, e.g. ```json). Input without fences is returned unchanged.
func StripCodeFences(s string) string {
	out := s
	stripped := false
	if loc := leadingFence.FindStringIndex(out); loc != nil {
		out = out[loc[1]:]
		stripped = true
	}
	if loc := trailingFence.FindStringIndex(out); loc != nil {
		out = out[:loc[0]]
		stripped = true
	}
	if !stripped {
		return s
	}
	return strings.TrimSpace(out)
}

func decodeJSON(raw string, out any) error {
	text := strings.TrimSpace(StripCodeFences(raw))
	if text == "" {
		return fmt.Errorf("%w: empty output", ErrMalformedOutput)
	}
	if err := json.Unmarshal([]byte(text), out); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedOutput, err)
	}
	return nil
}

// DecodeUnitPlan parses raw completion text into a GeneratedUnit.
// Syntactically valid JSON without any standards or lessons is rejected.
func DecodeUnitPlan(raw string) (*GeneratedUnit, error) {
	var unit GeneratedUnit
	if err := decodeJSON(raw, &unit); err != nil {
		return nil, err
	}
	if len(unit.Lessons) == 0 {
		return nil, fmt.Errorf("%w: no lessons in output", ErrMalformedOutput)
	}
	if len(unit.Standards) == 0 {
		return nil, fmt.Errorf("%w: no standards in output", ErrMalformedOutput)
	}
	for i := range unit.Lessons {
		normalizeLesson(&unit.Lessons[i])
	}
	return &unit, nil
}

// DecodeLesson parses a single generated lesson. A lesson without a title is rejected.
func DecodeLesson(raw string) (*domain.Lesson, error) {
	var lesson domain.Lesson
	if err := decodeJSON(raw, &lesson); err != nil {
		return nil, err
	}
	if strings.TrimSpace(lesson.Title) == "" {
		return nil, fmt.Errorf("%w: lesson has no title", ErrMalformedOutput)
	}
	normalizeLesson(&lesson)
	return &lesson, nil
}

// DecodeSuggestions accepts a JSON array of strings, or an object with a
// "suggestions" array.
func DecodeSuggestions(raw string) ([]string, error) {
	text := strings.TrimSpace(StripCodeFences(raw))
	var list []string
	if err := json.Unmarshal([]byte(text), &list); err != nil {
		var wrapped struct {
			Suggestions []string `json:"suggestions"`
		}
		if err2 := json.Unmarshal([]byte(text), &wrapped); err2 != nil || wrapped.Suggestions == nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedOutput, err)
		}
		list = wrapped.Suggestions
	}
	out := make([]string, 0, len(list))
	for _, s := range list {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: no suggestions in output", ErrMalformedOutput)
	}
	return out, nil
}

// normalizeLesson coerces unknown resource types to text and fills nil slices.
func normalizeLesson(l *domain.Lesson) {
	l.Normalize()
	for i := range l.Resources {
		if !l.Resources[i].Type.Valid() {
			l.Resources[i].Type = domain.ResourceText
		}
	}
}
