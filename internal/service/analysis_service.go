package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/taejinchoi-cbnu/gradescan-backend/internal/analyzer"
	"github.com/taejinchoi-cbnu/gradescan-backend/internal/config"
	"github.com/taejinchoi-cbnu/gradescan-backend/internal/model"
	"github.com/taejinchoi-cbnu/gradescan-backend/internal/transcript"
)

// Domain Errors
var (
	ErrEmptyFile           = errors.New("uploaded file is empty")
	ErrUnsupportedFileType = errors.New("unsupported image type")
	ErrFileTooLarge        = errors.New("image exceeds the size limit")
	ErrNoAnalysisData      = errors.New("no analysis data produced")
)

// allowedImageTypes are the upload content types the analyzer accepts.
var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

// AnalysisView is the normalized record shaped for consumers: GPA
// formatted for display, semesters chronological with empty ones
// filtered out.
type AnalysisView struct {
	StudentID    string                 `json:"student_id"`
	StudentName  string                 `json:"student_name"`
	TotalCredits int                    `json:"total_credits"`
	AverageGPA   string                 `json:"average_gpa"`
	Semesters    []model.SemesterRecord `json:"semesters"`
}

// AnalysisReport is the full output of one analysis request.
type AnalysisReport struct {
	Result              AnalysisView              `json:"result"`
	Progress            transcript.ProgressReport `json:"progress"`
	RequirementResolved bool                      `json:"requirement_resolved"`
	Cohort              int                       `json:"cohort"`
	Major               string                    `json:"major"`
}

// AnalysisService orchestrates the analyze pipeline: upstream call (with
// a Redis payload cache keyed by image digest), normalization,
// aggregation, requirement resolution and progress reporting. The engine
// itself stays pure; all I/O lives here.
type AnalysisService struct {
	cfg         *config.Config
	analyzer    *analyzer.Client
	requirement *RequirementService
	rdb         *redis.Client
	log         zerolog.Logger
}

// NewAnalysisService creates a new AnalysisService.
func NewAnalysisService(
	cfg *config.Config,
	analyzerClient *analyzer.Client,
	requirement *RequirementService,
	rdb *redis.Client,
	log zerolog.Logger,
) *AnalysisService {
	return &AnalysisService{
		cfg:         cfg,
		analyzer:    analyzerClient,
		requirement: requirement,
		rdb:         rdb,
		log:         log.With().Str("component", "analysis_service").Logger(),
	}
}

// AnalyzeUpload validates the uploaded transcript image and runs the full
// analysis pipeline on it.
func (s *AnalysisService) AnalyzeUpload(ctx context.Context, file multipart.File, header *multipart.FileHeader) (*AnalysisReport, error) {
	if header == nil || header.Size == 0 {
		return nil, ErrEmptyFile
	}
	if header.Size > s.cfg.MaxUploadBytes {
		return nil, ErrFileTooLarge
	}

	mimeType := header.Header.Get("Content-Type")
	if !allowedImageTypes[mimeType] {
		return nil, ErrUnsupportedFileType
	}

	image, err := io.ReadAll(io.LimitReader(file, s.cfg.MaxUploadBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read upload: %w", err)
	}
	if int64(len(image)) > s.cfg.MaxUploadBytes {
		return nil, ErrFileTooLarge
	}

	return s.Analyze(ctx, image, mimeType)
}

// Analyze fetches the raw payload for an image (cache first), normalizes
// it and builds the progress report against the resolved graduation
// requirement.
func (s *AnalysisService) Analyze(ctx context.Context, image []byte, mimeType string) (*AnalysisReport, error) {
	rawPayload, err := s.fetchPayload(ctx, image, mimeType)
	if err != nil {
		if errors.Is(err, analyzer.ErrEmptyResponse) {
			return nil, ErrNoAnalysisData
		}
		return nil, err
	}

	var payload *model.RawAnalysisPayload
	if err := json.Unmarshal(rawPayload, &payload); err != nil {
		// The analyzer may wrap the payload in a result container.
		var wrapped model.RawAnalysisResponse
		if err2 := json.Unmarshal(rawPayload, &wrapped); err2 != nil {
			return nil, fmt.Errorf("decode analysis payload: %w", err)
		}
		payload = wrapped.Result
	}

	result, diag, err := transcript.Normalize(payload)
	if err != nil {
		if errors.Is(err, transcript.ErrEmptyAnalysisResult) {
			return nil, ErrNoAnalysisData
		}
		return nil, err
	}

	s.reportDiagnostics(ctx, result.StudentID, diag)

	agg := transcript.Aggregate(result)

	cohort := transcript.AdmissionYear(result.StudentID)
	major := transcript.DefaultMajor
	req, resolved := s.requirement.Resolve(cohort, major)
	progress := transcript.BuildReport(agg, req)

	report := &AnalysisReport{
		Result: AnalysisView{
			StudentID:    result.StudentID,
			StudentName:  result.StudentName,
			TotalCredits: agg.TotalCredits,
			AverageGPA:   transcript.FormatGPA(agg.AverageGPA),
			Semesters:    result.DisplaySemesters(),
		},
		Progress:            progress,
		RequirementResolved: resolved,
		Cohort:              cohort,
		Major:               major,
	}

	s.log.Info().
		Str("student_id", result.StudentID).
		Int("semesters", len(result.Semesters)).
		Int("total_credits", agg.TotalCredits).
		Bool("requirement_resolved", resolved).
		Msg("Transcript analyzed")

	return report, nil
}

// ProgressFor rebuilds a progress report from already-known aggregates,
// letting a client recompute against another major without re-analyzing.
func (s *AnalysisService) ProgressFor(studentID, major string, agg transcript.Aggregates) (*AnalysisReport, bool) {
	if major == "" {
		major = transcript.DefaultMajor
	}
	cohort := transcript.AdmissionYear(studentID)
	req, resolved := s.requirement.Resolve(cohort, major)

	return &AnalysisReport{
		Result: AnalysisView{
			StudentID:    studentID,
			TotalCredits: agg.TotalCredits,
			AverageGPA:   transcript.FormatGPA(agg.AverageGPA),
		},
		Progress:            transcript.BuildReport(agg, req),
		RequirementResolved: resolved,
		Cohort:              cohort,
		Major:               major,
	}, resolved
}

// fetchPayload returns the raw upstream payload for this image, serving
// from Redis when the same image was analyzed before.
func (s *AnalysisService) fetchPayload(ctx context.Context, image []byte, mimeType string) (json.RawMessage, error) {
	digest := sha256.Sum256(image)
	cacheKey := config.CacheKey.AnalysisPayloadKey(hex.EncodeToString(digest[:]))

	cached, err := s.rdb.Get(ctx, cacheKey).Result()
	if err == nil && cached != "" {
		s.log.Debug().Str("key", cacheKey).Msg("Analysis payload cache hit")
		return json.RawMessage(cached), nil
	}
	if err != nil && !errors.Is(err, redis.Nil) {
		s.log.Warn().Err(err).Msg("Payload cache read failed, calling upstream")
	}

	payload, err := s.analyzer.Analyze(ctx, image, mimeType)
	if err != nil {
		return nil, err
	}

	if err := s.rdb.Set(ctx, cacheKey, string(payload), s.cfg.PayloadCacheTTL).Err(); err != nil {
		s.log.Warn().Err(err).Msg("Payload cache write failed")
	}

	return payload, nil
}

// reportDiagnostics logs data-quality signals and queues them for the
// diagnostics worker. Failures here never fail the analysis.
func (s *AnalysisService) reportDiagnostics(ctx context.Context, studentID string, diag *transcript.Diagnostics) {
	if diag == nil {
		return
	}

	events := make([]model.DiagnosticEvent, 0, len(diag.JoinMisses)+len(diag.AmbiguousLabels))

	for _, miss := range diag.JoinMisses {
		s.log.Warn().
			Str("student_id", studentID).
			Int("year", miss.Year).
			Str("semester", miss.Semester).
			Msg("Semester summary matched no course rows")
		events = append(events, model.DiagnosticEvent{
			StudentID: studentID,
			Kind:      model.DiagnosticJoinMiss,
			Year:      miss.Year,
			Semester:  miss.Semester,
		})
	}

	for _, label := range diag.AmbiguousLabels {
		s.log.Warn().
			Str("student_id", studentID).
			Str("category", label).
			Msg("Course category label matches multiple buckets")
		events = append(events, model.DiagnosticEvent{
			StudentID: studentID,
			Kind:      model.DiagnosticAmbiguousCategory,
			Detail:    label,
		})
	}

	for _, event := range events {
		raw, err := json.Marshal(event)
		if err != nil {
			continue
		}
		if err := s.rdb.RPush(ctx, config.WorkerKey.DiagnosticsQueue, raw).Err(); err != nil {
			s.log.Warn().Err(err).Msg("Diagnostics enqueue failed")
			return
		}
	}
}
