package service

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/taejinchoi-cbnu/gradescan-backend/internal/model"
	"github.com/taejinchoi-cbnu/gradescan-backend/internal/repository"
	"github.com/taejinchoi-cbnu/gradescan-backend/internal/transcript"
)

// RequirementService loads the graduation requirement table at startup
// and serves read-only lookups against it for the process lifetime.
type RequirementService struct {
	repo  *repository.RequirementRepository
	table *transcript.RequirementTable
	log   zerolog.Logger
}

// NewRequirementService creates a new RequirementService.
func NewRequirementService(repo *repository.RequirementRepository, log zerolog.Logger) *RequirementService {
	return &RequirementService{
		repo: repo,
		log:  log.With().Str("component", "requirement_service").Logger(),
	}
}

// Load reads all requirement rows into the in-memory table. Must be
// called once before the service handles lookups.
func (s *RequirementService) Load(ctx context.Context) error {
	rows, err := s.repo.ListAll(ctx)
	if err != nil {
		return err
	}

	s.table = transcript.NewRequirementTable(rows)
	s.log.Info().Int("rows", s.table.Len()).Msg("Graduation requirement table loaded")
	return nil
}

// Table returns the loaded requirement table for injection into the
// engine. Empty until Load succeeds.
func (s *RequirementService) Table() *transcript.RequirementTable {
	if s.table == nil {
		return transcript.NewRequirementTable(nil)
	}
	return s.table
}

// Resolve looks up the requirement for one cohort and major, falling
// back to the baseline cohort. Absence is a valid outcome.
func (s *RequirementService) Resolve(cohort int, major string) (*model.GraduationRequirement, bool) {
	return s.Table().Resolve(cohort, major)
}
