package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/openlms/lms/internal/app/models"
	"github.com/openlms/lms/internal/app/repositories"
	"github.com/openlms/lms/internal/pkg/apperrors"
	"github.com/openlms/lms/pkg/api"
)

// dateLayout is the YYYY-MM-DD form grades travel in.
const dateLayout = "2006-01-02"

// GradeService defines the interface for grade operations
type GradeService interface {
	ListGrades(ctx context.Context, p repositories.ListParams) ([]models.Grade, int64, error)
	GetGradeByID(ctx context.Context, id string) (*models.Grade, error)
	GetGradesByStudent(ctx context.Context, studentID string) ([]models.Grade, error)
	CreateGrade(ctx context.Context, req *api.CreateGradeRequest) (*models.Grade, error)
	UpdateGrade(ctx context.Context, id string, req *api.UpdateGradeRequest) (*models.Grade, error)
	DeleteGrade(ctx context.Context, id string) error
}

// gradeServiceImpl implements GradeService
type gradeServiceImpl struct {
	gradeRepo *repositories.GradeRepository
	logger    zerolog.Logger
}

// NewGradeService creates a new GradeService
func NewGradeService(gradeRepo *repositories.GradeRepository, logger zerolog.Logger) GradeService {
	return &gradeServiceImpl{
		gradeRepo: gradeRepo,
		logger:    logger,
	}
}

// ListGrades retrieves a page of grades
func (s *gradeServiceImpl) ListGrades(ctx context.Context, p repositories.ListParams) ([]models.Grade, int64, error) {
	return s.gradeRepo.List(ctx, p)
}

// GetGradeByID retrieves a grade by ID
func (s *gradeServiceImpl) GetGradeByID(ctx context.Context, id string) (*models.Grade, error) {
	if strings.TrimSpace(id) == "" {
		return nil, apperrors.NewValidationError("grade ID cannot be empty")
	}
	return s.gradeRepo.GetByID(ctx, id)
}

// GetGradesByStudent retrieves all grades for one student
func (s *gradeServiceImpl) GetGradesByStudent(ctx context.Context, studentID string) ([]models.Grade, error) {
	if strings.TrimSpace(studentID) == "" {
		return nil, apperrors.NewValidationError("student ID cannot be empty")
	}
	return s.gradeRepo.GetByStudent(ctx, studentID)
}

// CreateGrade validates and stores a new grade. A score of exactly 0
// or 10 is acceptable; anything outside that range is not.
func (s *gradeServiceImpl) CreateGrade(ctx context.Context, req *api.CreateGradeRequest) (*models.Grade, error) {
	if req.Score == nil {
		return nil, apperrors.NewValidationError("score is required")
	}
	if err := validateScore(*req.Score); err != nil {
		return nil, err
	}
	if !models.ValidGradeLetter(req.GradeLetter) {
		return nil, fmt.Errorf("%w: unknown grade letter %q", apperrors.ErrValidationFailed, req.GradeLetter)
	}

	recorded := time.Now()
	if req.DateRecorded != nil {
		parsed, err := time.Parse(dateLayout, *req.DateRecorded)
		if err != nil {
			return nil, fmt.Errorf("%w: date must be in YYYY-MM-DD form", apperrors.ErrValidationFailed)
		}
		recorded = parsed
	}

	grade := &models.Grade{
		GradeID:      strings.TrimSpace(req.GradeID),
		StudentID:    strings.TrimSpace(req.StudentID),
		AssessID:     strings.TrimSpace(req.AssessID),
		Score:        *req.Score,
		GradeLetter:  req.GradeLetter,
		DateRecorded: recorded,
	}

	if err := s.gradeRepo.Create(ctx, grade); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("gradeId", grade.GradeID).
		Str("studentId", grade.StudentID).
		Float64("score", grade.Score).
		Msg("Grade recorded")

	return grade, nil
}

// UpdateGrade writes the supplied fields and returns the fresh row
func (s *gradeServiceImpl) UpdateGrade(ctx context.Context, id string, req *api.UpdateGradeRequest) (*models.Grade, error) {
	fields := map[string]interface{}{}
	if req.StudentID != nil {
		fields["student_id"] = *req.StudentID
	}
	if req.AssessID != nil {
		fields["assess_id"] = *req.AssessID
	}
	if req.Score != nil {
		if err := validateScore(*req.Score); err != nil {
			return nil, err
		}
		fields["score"] = *req.Score
	}
	if req.GradeLetter != nil {
		if !models.ValidGradeLetter(*req.GradeLetter) {
			return nil, fmt.Errorf("%w: unknown grade letter %q", apperrors.ErrValidationFailed, *req.GradeLetter)
		}
		fields["grade_letter"] = *req.GradeLetter
	}
	if req.DateRecorded != nil {
		parsed, err := time.Parse(dateLayout, *req.DateRecorded)
		if err != nil {
			return nil, fmt.Errorf("%w: date must be in YYYY-MM-DD form", apperrors.ErrValidationFailed)
		}
		fields["date_recorded"] = parsed
	}

	if len(fields) > 0 {
		if err := s.gradeRepo.Update(ctx, id, fields); err != nil {
			return nil, err
		}
	}

	return s.gradeRepo.GetByID(ctx, id)
}

// DeleteGrade removes a grade
func (s *gradeServiceImpl) DeleteGrade(ctx context.Context, id string) error {
	if err := s.gradeRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("gradeId", id).Msg("Grade deleted")
	return nil
}

func validateScore(score float64) error {
	if score < 0 || score > 10 {
		return fmt.Errorf("%w: score must be between 0 and 10", apperrors.ErrValidationFailed)
	}
	return nil
}
