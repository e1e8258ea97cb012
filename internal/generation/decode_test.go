package generation

import (
	"alcyxob/lesson-planner/internal/domain"
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validUnitJSON = `{
  "title": "Ratios and Proportions",
  "description": "Proportional reasoning in context.",
  "standards": [{"code": "CCSS.MATH.CONTENT.7.RP.A.1", "description": "Compute unit rates"}],
  "lessons": [{
    "title": "Lesson 1: Unit Rates",
    "objectives": ["Compute unit rates"],
    "activities": "Warm-up (5 min)",
    "materials": ["Worksheet"],
    "assessment": "Exit ticket",
    "duration": "45 minutes",
    "resources": [{"type": "poster", "title": "Rates", "description": "", "estimatedTime": "10 minutes"}]
  }]
}`

func TestStripCodeFences(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"no fences is a no-op", `  {"a":1}` + "\n", `  {"a":1}` + "\n"},
		{"json tagged", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"untagged", "```\n[1,2]\n```\n", `[1,2]`},
		{"leading only", "```json\n{\"a\":1}", `{"a":1}`},
		{"removes exactly one pair", "```json\n```\n{\"a\":1}\n```\n```", "```\n{\"a\":1}\n```"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, StripCodeFences(tc.in))
		})
	}
}

func TestDecodeUnitPlanFenced(t *testing.T) {
	unit, err := DecodeUnitPlan("```json\n" + validUnitJSON + "\n```")
	require.NoError(t, err)

	assert.Equal(t, "Ratios and Proportions", unit.Title)
	require.Len(t, unit.Lessons, 1)
	require.Len(t, unit.Lessons[0].Resources, 1)
	assert.Equal(t, domain.ResourceText, unit.Lessons[0].Resources[0].Type, "unknown resource types are coerced")
	assert.NotNil(t, unit.Lessons[0].Resources[0].AlignedObjectives)
}

func TestDecodeUnitPlanIsIdempotent(t *testing.T) {
	first, err := DecodeUnitPlan(validUnitJSON)
	require.NoError(t, err)

	raw, err := json.Marshal(first)
	require.NoError(t, err)
	second, err := DecodeUnitPlan(string(raw))
	require.NoError(t, err)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("re-decoding changed the unit (-first +second):\n%s", diff)
	}
}

func TestDecodeUnitPlanMalformed(t *testing.T) {
	cases := map[string]string{
		"truncated in fences": "```json\n{\"title\": \"Ratios\", \"lessons\": [\n```",
		"prose":               "Sure! Here is your unit plan.",
		"empty":               "  ",
		"missing lessons":     `{"title":"x","standards":[{"code":"A"}]}`,
		"missing standards":   `{"title":"x","lessons":[{"title":"L1"}]}`,
		"wrong field type":    `{"title":"x","standards":[{"code":"A"}],"lessons":[{"title":"L1","objectives":"not a list"}]}`,
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := DecodeUnitPlan(in)
			assert.ErrorIs(t, err, ErrMalformedOutput)
		})
	}
}

func TestDecodeLesson(t *testing.T) {
	lesson, err := DecodeLesson("```json\n{\"title\":\"Photosynthesis\",\"objectives\":[\"Explain inputs\"]}\n```")
	require.NoError(t, err)
	assert.Equal(t, "Photosynthesis", lesson.Title)
	assert.Equal(t, []string{}, lesson.Materials)

	_, err = DecodeLesson(`{"objectives":[]}`)
	assert.ErrorIs(t, err, ErrMalformedOutput)
}

func TestDecodeSuggestions(t *testing.T) {
	got, err := DecodeSuggestions("```json\n[\"Use exit tickets\", \" \", \"Add peer review\"]\n```")
	require.NoError(t, err)
	assert.Equal(t, []string{"Use exit tickets", "Add peer review"}, got)

	got, err = DecodeSuggestions(`{"suggestions":["One"]}`)
	require.NoError(t, err)
	assert.Equal(t, []string{"One"}, got)

	_, err = DecodeSuggestions(`{"ideas":["One"]}`)
	assert.ErrorIs(t, err, ErrMalformedOutput)

	_, err = DecodeSuggestions(`[]`)
	assert.ErrorIs(t, err, ErrMalformedOutput)
}
