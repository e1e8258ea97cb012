package service

import (
	"alcyxob/lesson-planner/internal/domain"
	"alcyxob/lesson-planner/internal/extractor"
	"alcyxob/lesson-planner/internal/generation"
	"alcyxob/lesson-planner/internal/logger"
	"alcyxob/lesson-planner/internal/repository"
	"alcyxob/lesson-planner/internal/storage"
	"context"
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

// MinExtractedChars is the shortest extracted text accepted as a real document.
// Blank or scanned-image PDFs fall below it.
const MinExtractedChars = 100

const (
	defaultUnitDays   = 30
	defaultNumLessons = 5
	maxNumLessons     = 20
)

// User-facing messages.
const (
	msgEmptyDocument   = "PDF appears to be empty or text could not be extracted"
	msgNotConfigured   = "AI service is not configured"
	msgServiceFailed   = "Failed to generate content from AI service"
	msgMalformedOutput = "Failed to parse AI response. Please try again."
)

// Pipeline stages of GenerateUnitFromDocument, logged under the "stage" key.
type stage string

const (
	stageReceived            stage = "Received"
	stageDecoded             stage = "Decoded"
	stageTextExtracted       stage = "TextExtracted"
	stagePromptBuilt         stage = "PromptBuilt"
	stageCompletionRequested stage = "CompletionRequested"
	stageCompletionReceived  stage = "CompletionReceived"
	stageValidated           stage = "Validated"
	stagePersisted           stage = "Persisted"
	stageFailed              stage = "Failed"
)

// DocumentUnitRequest is the /generate-unit-from-pdf payload.
type DocumentUnitRequest struct {
	PDFData    string // base64
	FileName   string
	Subject    string
	GradeLevel string
	StartDate  string
	EndDate    string
}

// GeneratedUnitContent is the standards and lessons proposed for a manually described unit.
type GeneratedUnitContent struct {
	Standards []domain.Standard `json:"standards"`
	Lessons   []domain.Lesson   `json:"lessons"`
}

// GenerationService drives every completion-backed flow.
type GenerationService interface {
	// GenerateUnitFromDocument runs decode, extract, prompt, complete, validate and
	// persist. The first failing stage ends the flow and nothing is persisted.
	GenerateUnitFromDocument(ctx context.Context, req DocumentUnitRequest) (*domain.UnitPlan, error)
	GenerateUnitContent(ctx context.Context, in generation.UnitFormInput) (*GeneratedUnitContent, error)
	GenerateLesson(ctx context.Context, subject, topic string) (*domain.Lesson, error)
	GenerateResourceContent(ctx context.Context, t domain.ResourceType, title, description string) (string, error)
	GenerateEnhancements(ctx context.Context, lesson domain.Lesson, t domain.EnhancementType) ([]string, error)
	GenerateUnitImprovements(ctx context.Context, unit domain.UnitPlan) ([]string, error)
}

type generationService struct {
	completer      generation.Completer
	extractor      extractor.Extractor
	unitRepo       repository.UnitRepository
	files          storage.FileStorage // optional
	maxUploadBytes int64
	log            *logger.Logger
	now            func() time.Time
}

// NewGenerationService wires the pipeline collaborators. files may be nil and
// maxUploadBytes <= 0 disables the size check.
func NewGenerationService(
	completer generation.Completer,
	ext extractor.Extractor,
	unitRepo repository.UnitRepository,
	files storage.FileStorage,
	maxUploadBytes int64,
	log *logger.Logger,
) GenerationService {
	if log == nil {
		log = logger.Nop()
	}
	return &generationService{
		completer:      completer,
		extractor:      ext,
		unitRepo:       unitRepo,
		files:          files,
		maxUploadBytes: maxUploadBytes,
		log:            log.With("component", "GenerationService"),
		now:            time.Now,
	}
}

func (s *generationService) GenerateUnitFromDocument(ctx context.Context, req DocumentUnitRequest) (*domain.UnitPlan, error) {
	log := s.log.With("fileName", req.FileName, "subject", req.Subject, "gradeLevel", req.GradeLevel)
	fail := func(err error) (*domain.UnitPlan, error) {
		log.Warn("unit generation failed", "stage", stageFailed, "error", err)
		return nil, err
	}

	if req.PDFData == "" || strings.TrimSpace(req.Subject) == "" || strings.TrimSpace(req.GradeLevel) == "" {
		return fail(validationError("Missing required fields: pdfData, subject, gradeLevel"))
	}
	log.Debug("pipeline", "stage", stageReceived)

	data, err := extractor.DecodeBase64(req.PDFData)
	if err != nil {
		return fail(newError(ErrExtraction, "Invalid PDF data", err))
	}
	if s.maxUploadBytes > 0 && int64(len(data)) > s.maxUploadBytes {
		return fail(validationError(fmt.Sprintf("Document exceeds the %d byte upload limit", s.maxUploadBytes)))
	}
	log.Debug("pipeline", "stage", stageDecoded, "bytes", len(data))

	fileName := req.FileName
	if fileName == "" {
		fileName = "document.pdf"
	}
	text, err := s.extractor.Extract(fileName, data)
	if err != nil {
		return fail(newError(ErrExtraction, "Failed to extract text from PDF", err))
	}
	text = strings.TrimSpace(text)
	if utf8.RuneCountInString(text) < MinExtractedChars {
		return fail(newError(ErrExtraction, msgEmptyDocument, nil))
	}
	log.Debug("pipeline", "stage", stageTextExtracted, "chars", utf8.RuneCountInString(text))

	prompt := generation.UnitFromDocumentPrompt(generation.DocumentPromptInput{
		Subject:    req.Subject,
		GradeLevel: req.GradeLevel,
		Text:       text,
		StartDate:  req.StartDate,
		EndDate:    req.EndDate,
	})
	_, truncated := generation.TruncateSource(text)
	log.Debug("pipeline", "stage", stagePromptBuilt, "promptChars", len(prompt), "truncated", truncated)

	log.Debug("pipeline", "stage", stageCompletionRequested)
	raw, err := s.complete(ctx, generation.SystemJSON, prompt)
	if err != nil {
		return fail(err)
	}
	log.Debug("pipeline", "stage", stageCompletionReceived, "chars", len(raw))

	generated, err := generation.DecodeUnitPlan(raw)
	if err != nil {
		return fail(newError(ErrMalformedOutput, msgMalformedOutput, err))
	}
	log.Debug("pipeline", "stage", stageValidated, "lessons", len(generated.Lessons), "standards", len(generated.Standards))

	unit := s.materializeUnit(generated, req, fileName)

	if s.files != nil {
		key := storage.SourceDocumentKey(unit.ID, fileName)
		if err := s.files.PutObject(ctx, key, http.DetectContentType(data), data); err != nil {
			log.Warn("failed to archive source document", "unitID", unit.ID, "error", err)
		} else {
			unit.SourceDocumentKey = key
		}
	}

	if err := s.unitRepo.Save(ctx, unit); err != nil {
		// The archive is the only earlier durable side effect; drop it with the failed unit.
		if unit.SourceDocumentKey != "" {
			if delErr := s.files.DeleteObject(ctx, unit.SourceDocumentKey); delErr != nil {
				log.Warn("failed to remove archived source document", "unitID", unit.ID, "key", unit.SourceDocumentKey, "error", delErr)
			}
		}
		return fail(storageError("Failed to save generated unit", err))
	}
	log.Info("unit generated from document", "stage", stagePersisted, "unitID", unit.ID, "lessons", len(unit.Lessons))
	return unit, nil
}

// materializeUnit turns model output into a storable unit: ids, denormalized
// subject/grade, lesson back-references, and default dates.
func (s *generationService) materializeUnit(gen *generation.GeneratedUnit, req DocumentUnitRequest, fileName string) *domain.UnitPlan {
	now := s.now().UTC()
	unit := &domain.UnitPlan{
		ID:          uuid.NewString(),
		Title:       strings.TrimSpace(gen.Title),
		Subject:     req.Subject,
		GradeLevel:  req.GradeLevel,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Description: gen.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if unit.Title == "" {
		unit.Title = strings.TrimSuffix(filepath.Base(fileName), filepath.Ext(fileName))
	}
	if unit.StartDate == "" {
		unit.StartDate = now.Format(dateLayout)
	}
	if unit.EndDate == "" {
		unit.EndDate = now.AddDate(0, 0, defaultUnitDays).Format(dateLayout)
	}
	unit.Standards = materializeStandards(gen.Standards, req.Subject, req.GradeLevel)
	unit.Lessons = materializeLessons(gen.Lessons, unit.ID)
	unit.Normalize()
	return unit
}

func materializeStandards(in []domain.Standard, subject, gradeLevel string) []domain.Standard {
	out := make([]domain.Standard, len(in))
	for i, st := range in {
		if st.ID == "" {
			st.ID = uuid.NewString()
		}
		st.Subject = subject
		st.GradeLevel = gradeLevel
		out[i] = st
	}
	return out
}

func materializeLessons(in []domain.Lesson, unitID string) []domain.Lesson {
	out := make([]domain.Lesson, len(in))
	for i, l := range in {
		if l.ID == "" {
			l.ID = uuid.NewString()
		}
		l.UnitID = unitID
		for j := range l.Resources {
			if l.Resources[j].ID == "" {
				l.Resources[j].ID = uuid.NewString()
			}
		}
		l.Normalize()
		out[i] = l
	}
	return out
}

// complete calls the completion service and maps its failures onto the error
// taxonomy. A missing credential is logged as a configuration problem.
func (s *generationService) complete(ctx context.Context, system, prompt string) (string, error) {
	raw, err := s.completer.Complete(ctx, system, prompt)
	if err == nil {
		return raw, nil
	}
	if errors.Is(err, generation.ErrNotConfigured) {
		s.log.Error("completion service configuration error", "error", err)
		return "", newError(ErrGenerationService, msgNotConfigured, fmt.Errorf("%w: %w", ErrGenerationNotConfigured, err))
	}
	var httpErr *generation.HTTPError
	if errors.As(err, &httpErr) {
		s.log.Error("completion service returned an error", "status", httpErr.StatusCode, "body", httpErr.Body)
	} else {
		s.log.Error("completion service request failed", "error", err)
	}
	return "", newError(ErrGenerationService, msgServiceFailed, err)
}

// Request fields of the remaining generators are validated by the API binding layer.

func (s *generationService) GenerateUnitContent(ctx context.Context, in generation.UnitFormInput) (*GeneratedUnitContent, error) {
	if in.NumLessons <= 0 {
		in.NumLessons = defaultNumLessons
	}
	if in.NumLessons > maxNumLessons {
		in.NumLessons = maxNumLessons
	}

	raw, err := s.complete(ctx, generation.SystemJSON, generation.UnitFromFormPrompt(in))
	if err != nil {
		return nil, err
	}
	generated, err := generation.DecodeUnitPlan(raw)
	if err != nil {
		return nil, newError(ErrMalformedOutput, msgMalformedOutput, err)
	}
	return &GeneratedUnitContent{
		Standards: materializeStandards(generated.Standards, in.Subject, in.GradeLevel),
		Lessons:   materializeLessons(generated.Lessons, ""),
	}, nil
}

func (s *generationService) GenerateLesson(ctx context.Context, subject, topic string) (*domain.Lesson, error) {
	raw, err := s.complete(ctx, generation.SystemJSON, generation.LessonPrompt(subject, topic))
	if err != nil {
		return nil, err
	}
	lesson, err := generation.DecodeLesson(raw)
	if err != nil {
		return nil, newError(ErrMalformedOutput, msgMalformedOutput, err)
	}
	return &materializeLessons([]domain.Lesson{*lesson}, "")[0], nil
}

func (s *generationService) GenerateResourceContent(ctx context.Context, t domain.ResourceType, title, description string) (string, error) {
	raw, err := s.complete(ctx, generation.SystemMarkdown, generation.ResourceContentPrompt(t, title, description))
	if err != nil {
		return "", err
	}
	content := strings.TrimSpace(raw)
	if content == "" {
		return "", newError(ErrMalformedOutput, msgMalformedOutput, errors.New("empty resource content"))
	}
	return content, nil
}

func (s *generationService) GenerateEnhancements(ctx context.Context, lesson domain.Lesson, t domain.EnhancementType) ([]string, error) {
	if strings.TrimSpace(lesson.Title) == "" {
		return nil, validationError("Missing required field: lesson.title")
	}
	raw, err := s.complete(ctx, generation.SystemJSON, generation.EnhancementPrompt(lesson, t))
	if err != nil {
		return nil, err
	}
	suggestions, err := generation.DecodeSuggestions(raw)
	if err != nil {
		return nil, newError(ErrMalformedOutput, msgMalformedOutput, err)
	}
	return suggestions, nil
}

func (s *generationService) GenerateUnitImprovements(ctx context.Context, unit domain.UnitPlan) ([]string, error) {
	if strings.TrimSpace(unit.Title) == "" {
		return nil, validationError("Missing required field: unit.title")
	}
	raw, err := s.complete(ctx, generation.SystemJSON, generation.UnitImprovementsPrompt(unit))
	if err != nil {
		return nil, err
	}
	suggestions, err := generation.DecodeSuggestions(raw)
	if err != nil {
		return nil, newError(ErrMalformedOutput, msgMalformedOutput, err)
	}
	return suggestions, nil
}
