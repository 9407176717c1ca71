package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/openlms/lms/internal/app/models"
	"github.com/openlms/lms/internal/app/repositories"
	"github.com/openlms/lms/internal/pkg/apperrors"
	"github.com/openlms/lms/pkg/api"
)

// EnrollmentService defines the interface for enrollment operations
type EnrollmentService interface {
	ListEnrollments(ctx context.Context, p repositories.ListParams) ([]models.Enrollment, int64, error)
	GetEnrollmentByID(ctx context.Context, id string) (*models.Enrollment, error)
	CreateEnrollment(ctx context.Context, req *api.CreateEnrollmentRequest) (*models.Enrollment, error)
	UpdateEnrollment(ctx context.Context, id string, req *api.UpdateEnrollmentRequest) (*models.Enrollment, error)
	DeleteEnrollment(ctx context.Context, id string) error
}

// enrollmentServiceImpl implements EnrollmentService
type enrollmentServiceImpl struct {
	enrollmentRepo *repositories.EnrollmentRepository
	logger         zerolog.Logger
}

// NewEnrollmentService creates a new EnrollmentService
func NewEnrollmentService(enrollmentRepo *repositories.EnrollmentRepository, logger zerolog.Logger) EnrollmentService {
	return &enrollmentServiceImpl{
		enrollmentRepo: enrollmentRepo,
		logger:         logger,
	}
}

// ListEnrollments retrieves a page of enrollments
func (s *enrollmentServiceImpl) ListEnrollments(ctx context.Context, p repositories.ListParams) ([]models.Enrollment, int64, error) {
	return s.enrollmentRepo.List(ctx, p)
}

// GetEnrollmentByID retrieves one enrollment
func (s *enrollmentServiceImpl) GetEnrollmentByID(ctx context.Context, id string) (*models.Enrollment, error) {
	if strings.TrimSpace(id) == "" {
		return nil, apperrors.NewValidationError("enrollment ID cannot be empty")
	}
	return s.enrollmentRepo.GetByID(ctx, id)
}

// CreateEnrollment validates and stores a new enrollment
func (s *enrollmentServiceImpl) CreateEnrollment(ctx context.Context, req *api.CreateEnrollmentRequest) (*models.Enrollment, error) {
	status := models.EnrollmentStatus(req.Status)
	if req.Status == "" {
		status = models.StatusEnrolled
	} else if !models.ValidEnrollmentStatus(req.Status) {
		return nil, fmt.Errorf("%w: status must be Enrolled, Completed or Dropped", apperrors.ErrValidationFailed)
	}

	if err := validateGradeFinal(req.GradeFinal); err != nil {
		return nil, err
	}

	enrollment := &models.Enrollment{
		EnrollID:     strings.TrimSpace(req.EnrollID),
		StudentID:    strings.TrimSpace(req.StudentID),
		CourseID:     strings.TrimSpace(req.CourseID),
		Status:       status,
		Semester:     strings.TrimSpace(req.Semester),
		GradeFinal:   req.GradeFinal,
		Schedule:     req.Schedule,
		InstructorID: req.InstructorID,
	}

	if err := s.enrollmentRepo.Create(ctx, enrollment); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("enrollId", enrollment.EnrollID).
		Str("studentId", enrollment.StudentID).
		Str("courseId", enrollment.CourseID).
		Msg("Enrollment created")

	return s.enrollmentRepo.GetByID(ctx, enrollment.EnrollID)
}

// UpdateEnrollment writes the supplied fields and returns the fresh row
func (s *enrollmentServiceImpl) UpdateEnrollment(ctx context.Context, id string, req *api.UpdateEnrollmentRequest) (*models.Enrollment, error) {
	fields := map[string]interface{}{}
	if req.StudentID != nil {
		fields["student_id"] = *req.StudentID
	}
	if req.CourseID != nil {
		fields["course_id"] = *req.CourseID
	}
	if req.Status != nil {
		if !models.ValidEnrollmentStatus(*req.Status) {
			return nil, fmt.Errorf("%w: status must be Enrolled, Completed or Dropped", apperrors.ErrValidationFailed)
		}
		fields["status"] = *req.Status
	}
	if req.Semester != nil {
		fields["semester"] = *req.Semester
	}
	if req.GradeFinal != nil {
		if err := validateGradeFinal(req.GradeFinal); err != nil {
			return nil, err
		}
		fields["grade_final"] = *req.GradeFinal
	}
	if req.Schedule != nil {
		fields["schedule"] = *req.Schedule
	}
	if req.InstructorID != nil {
		fields["instructor_id"] = *req.InstructorID
	}

	if len(fields) > 0 {
		if err := s.enrollmentRepo.Update(ctx, id, fields); err != nil {
			return nil, err
		}
	}

	return s.enrollmentRepo.GetByID(ctx, id)
}

// DeleteEnrollment removes an enrollment
func (s *enrollmentServiceImpl) DeleteEnrollment(ctx context.Context, id string) error {
	if err := s.enrollmentRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("enrollId", id).Msg("Enrollment deleted")
	return nil
}

func validateGradeFinal(grade *float64) error {
	if grade != nil && (*grade < 0 || *grade > 10) {
		return fmt.Errorf("%w: final grade must be between 0 and 10", apperrors.ErrValidationFailed)
	}
	return nil
}
