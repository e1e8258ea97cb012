package generation

import (
	"alcyxob/lesson-planner/internal/domain"
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"
)

// MaxSourceChars is the budget of extracted document text embedded in a prompt.
const MaxSourceChars = 15000

// TruncationMarker is appended to source text cut at MaxSourceChars.
const TruncationMarker = "\n\n[... document truncated ...]"

// SystemJSON constrains the model to JSON-only output.
const SystemJSON = "You are an expert curriculum designer and experienced classroom teacher. " +
	"Respond ONLY with valid JSON that matches the requested structure. " +
	"Do not include markdown formatting, code fences, or any commentary."

// SystemMarkdown is used for free-form resource content.
const SystemMarkdown = "You are an expert curriculum designer and experienced classroom teacher. " +
	"Write classroom-ready material in Markdown."

// TruncateSource cuts text to MaxSourceChars characters and appends
// TruncationMarker. Text at or under the limit is returned unchanged.
func TruncateSource(text string) (string, bool) {
	if utf8.RuneCountInString(text) <= MaxSourceChars {
		return text, false
	}
	runes := []rune(text)
	return string(runes[:MaxSourceChars]) + TruncationMarker, true
}

// DocumentPromptInput carries the context for building a unit plan from a document.
type DocumentPromptInput struct {
	Subject    string
	GradeLevel string
	Text       string
	StartDate  string
	EndDate    string
}

const unitSchemaExample = `{
  "title": "Unit title",
  "description": "Two or three sentence overview of the unit",
  "standards": [
    {
      "code": "CCSS.MATH.CONTENT.7.RP.A.1",
      "description": "What the standard requires"
    }
  ],
  "lessons": [
    {
      "title": "Lesson 1: Topic",
      "objectives": ["Students will be able to ..."],
      "activities": "Warm-up (5 min): ...\n\nInstruction (20 min): ...",
      "materials": ["Textbook", "Worksheet"],
      "assessment": "Exit ticket with three questions",
      "duration": "60 minutes",
      "resources": [
        {
          "type": "worksheet",
          "title": "Practice Worksheet",
          "description": "What the resource covers",
          "estimatedTime": "20 minutes",
          "alignedObjectives": ["Students will be able to ..."]
        }
      ]
    }
  ]
}`

const lessonSchemaExample = `{
  "title": "Lesson title",
  "objectives": ["Students will be able to ..."],
  "activities": "Warm-up (5 min): ...\n\nGuided Practice (20 min): ...",
  "materials": ["Handouts"],
  "assessment": "How learning is checked",
  "duration": "60 minutes",
  "notes": "",
  "resources": [
    {
      "type": "quiz",
      "title": "Quick Check",
      "description": "What the resource covers",
      "estimatedTime": "15 minutes",
      "alignedObjectives": ["Students will be able to ..."]
    }
  ]
}`

const resourceTypesLine = `Resource "type" must be one of: "worksheet", "text", "quiz", "assignment", "exam".`

// UnitFromDocumentPrompt builds the user prompt for turning extracted
// curriculum text into a unit plan.
func UnitFromDocumentPrompt(in DocumentPromptInput) string {
	source, _ := TruncateSource(in.Text)

	var b strings.Builder
	b.WriteString("Create a complete unit plan from the curriculum document below.\n\n")
	fmt.Fprintf(&b, "Subject: %s\n", in.Subject)
	fmt.Fprintf(&b, "Grade level: %s\n", in.GradeLevel)
	if in.StartDate != "" || in.EndDate != "" {
		fmt.Fprintf(&b, "Date range: %s to %s\n", orUnspecified(in.StartDate), orUnspecified(in.EndDate))
		b.WriteString("Pace the number of lessons to fit the date range.\n")
	}
	b.WriteString("\nDocument content:\n\"\"\"\n")
	b.WriteString(source)
	b.WriteString("\n\"\"\"\n\n")
	b.WriteString("Requirements:\n")
	b.WriteString("- Identify the standards the document addresses, using official codes where they appear.\n")
	b.WriteString("- Produce between 3 and 10 lessons that follow the document's sequence.\n")
	b.WriteString("- Each lesson needs measurable objectives, timed activities, materials, an assessment, and 1-3 resources.\n")
	b.WriteString("- " + resourceTypesLine + "\n\n")
	b.WriteString("Return JSON with exactly this structure:\n")
	b.WriteString(unitSchemaExample)
	return b.String()
}

// UnitFormInput is the manual "create unit" form.
type UnitFormInput struct {
	Title       string
	Subject     string
	GradeLevel  string
	StartDate   string
	EndDate     string
	Description string
	NumLessons  int
}

// UnitFromFormPrompt asks for standards and lessons for a unit described by a form.
func UnitFromFormPrompt(in UnitFormInput) string {
	var b strings.Builder
	b.WriteString("Design standards and lessons for the following unit.\n\n")
	fmt.Fprintf(&b, "Title: %s\nSubject: %s\nGrade level: %s\nDates: %s to %s\n",
		in.Title, in.Subject, in.GradeLevel, orUnspecified(in.StartDate), orUnspecified(in.EndDate))
	if in.Description != "" {
		fmt.Fprintf(&b, "Description: %s\n", in.Description)
	}
	fmt.Fprintf(&b, "Number of lessons: exactly %d\n\n", in.NumLessons)
	b.WriteString(resourceTypesLine + "\n\n")
	b.WriteString("Return JSON with exactly this structure:\n")
	b.WriteString(unitSchemaExample)
	return b.String()
}

// LessonPrompt asks for one lesson on topic within subject.
func LessonPrompt(subject, topic string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Write a complete lesson plan on %q for a %s class.\n\n", topic, subject)
	b.WriteString("Include three measurable objectives, timed activities, materials, an assessment, and 2-3 resources.\n")
	b.WriteString(resourceTypesLine + "\n\n")
	b.WriteString("Return JSON with exactly this structure:\n")
	b.WriteString(lessonSchemaExample)
	return b.String()
}

// ResourceContentPrompt asks for the Markdown body of a resource.
func ResourceContentPrompt(t domain.ResourceType, title, description string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Write the full content of a %s titled %q.\n", t, title)
	if description != "" {
		fmt.Fprintf(&b, "It should cover: %s\n", description)
	}
	switch t {
	case domain.ResourceWorksheet:
		b.WriteString("Include instructions, vocabulary, application questions, a critical thinking prompt, and a teacher answer key.\n")
	case domain.ResourceQuiz:
		b.WriteString("Include multiple choice, short answer and one essay question with point values, followed by an answer key.\n")
	case domain.ResourceAssignment:
		b.WriteString("Include objectives, step-by-step instructions, a task checklist, and a grading rubric totalling 100 points.\n")
	case domain.ResourceExam:
		b.WriteString("Include sections with point values, a time limit, and note that an answer key is available to instructors.\n")
	default:
		b.WriteString("Include an overview, key concepts with explanations, a summary, and discussion questions.\n")
	}
	b.WriteString("Use Markdown headings.")
	return b.String()
}

// EnhancementPrompt asks for suggestions to improve a lesson along one axis.
func EnhancementPrompt(lesson domain.Lesson, t domain.EnhancementType) string {
	focus := map[domain.EnhancementType]string{
		domain.EnhanceDifferentiation: "differentiating instruction for diverse learners",
		domain.EnhanceTechnology:      "integrating classroom technology",
		domain.EnhanceAssessment:      "strengthening formative and summative assessment",
	}[t]

	var b strings.Builder
	fmt.Fprintf(&b, "Suggest five specific, actionable improvements to this lesson focused on %s.\n\n", focus)
	b.WriteString("Lesson:\n")
	b.WriteString(compactJSON(lesson))
	b.WriteString("\n\nReturn a JSON array of strings, for example: [\"Suggestion one\", \"Suggestion two\"]")
	return b.String()
}

// UnitImprovementsPrompt asks for a review of a whole unit.
func UnitImprovementsPrompt(unit domain.UnitPlan) string {
	var b strings.Builder
	b.WriteString("Review this unit plan and suggest five to seven concrete improvements covering pacing, engagement, assessment alignment and cross-curricular connections.\n\n")
	b.WriteString("Unit plan:\n")
	b.WriteString(compactJSON(unit))
	b.WriteString("\n\nReturn a JSON array of strings, for example: [\"Suggestion one\", \"Suggestion two\"]")
	return b.String()
}

func orUnspecified(s string) string {
	if strings.TrimSpace(s) == "" {
		return "unspecified"
	}
	return s
}

func compactJSON(v any) string {
	raw, err := json.Marshal(v)
	if err != nil {
		return "{}"
	}
	s, _ := TruncateSource(string(raw))
	return s
}
