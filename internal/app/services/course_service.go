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

// CourseService defines the interface for course operations
type CourseService interface {
	ListCourses(ctx context.Context, p repositories.ListParams) ([]models.Course, int64, error)
	GetCourseByID(ctx context.Context, id string) (*models.Course, error)
	CreateCourse(ctx context.Context, req *api.CreateCourseRequest) (*models.Course, error)
	UpdateCourse(ctx context.Context, id string, req *api.UpdateCourseRequest) (*models.Course, error)
	DeleteCourse(ctx context.Context, id string) error
}

// courseServiceImpl implements CourseService
type courseServiceImpl struct {
	courseRepo *repositories.CourseRepository
	logger     zerolog.Logger
}

// NewCourseService creates a new CourseService
func NewCourseService(courseRepo *repositories.CourseRepository, logger zerolog.Logger) CourseService {
	return &courseServiceImpl{
		courseRepo: courseRepo,
		logger:     logger,
	}
}

// ListCourses retrieves a page of courses
func (s *courseServiceImpl) ListCourses(ctx context.Context, p repositories.ListParams) ([]models.Course, int64, error) {
	return s.courseRepo.List(ctx, p)
}

// GetCourseByID retrieves one course with its enrollment count
func (s *courseServiceImpl) GetCourseByID(ctx context.Context, id string) (*models.Course, error) {
	if strings.TrimSpace(id) == "" {
		return nil, apperrors.NewValidationError("course ID cannot be empty")
	}
	return s.courseRepo.GetByID(ctx, id)
}

// CreateCourse validates and stores a new course
func (s *courseServiceImpl) CreateCourse(ctx context.Context, req *api.CreateCourseRequest) (*models.Course, error) {
	if err := validateCredit(req.Credit); err != nil {
		return nil, err
	}
	if req.Duration < 1 {
		return nil, apperrors.NewValidationError("duration must be at least 1")
	}

	course := &models.Course{
		CourseID:     strings.TrimSpace(req.CourseID),
		Name:         strings.TrimSpace(req.Name),
		Description:  req.Description,
		Credit:       req.Credit,
		Duration:     req.Duration,
		DeptID:       req.DeptID,
		InstructorID: req.InstructorID,
	}
	if course.CourseID == "" || course.Name == "" {
		return nil, apperrors.NewValidationError("course ID and name cannot be empty")
	}

	if err := s.courseRepo.Create(ctx, course); err != nil {
		return nil, err
	}

	s.logger.Info().Str("courseId", course.CourseID).Msg("Course created")
	return course, nil
}

// UpdateCourse writes the supplied fields and returns the fresh row
func (s *courseServiceImpl) UpdateCourse(ctx context.Context, id string, req *api.UpdateCourseRequest) (*models.Course, error) {
	fields := map[string]interface{}{}
	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, apperrors.NewValidationError("name cannot be empty")
		}
		fields["name"] = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.Credit != nil {
		if err := validateCredit(*req.Credit); err != nil {
			return nil, err
		}
		fields["credit"] = *req.Credit
	}
	if req.Duration != nil {
		if *req.Duration < 1 {
			return nil, apperrors.NewValidationError("duration must be at least 1")
		}
		fields["duration"] = *req.Duration
	}
	if req.DeptID != nil {
		fields["dept_id"] = *req.DeptID
	}
	if req.InstructorID != nil {
		fields["instructor_id"] = *req.InstructorID
	}

	if len(fields) > 0 {
		if err := s.courseRepo.Update(ctx, id, fields); err != nil {
			return nil, err
		}
	}

	return s.courseRepo.GetByID(ctx, id)
}

// DeleteCourse removes a course unless enrollments still reference it
func (s *courseServiceImpl) DeleteCourse(ctx context.Context, id string) error {
	if err := s.courseRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("courseId", id).Msg("Course deleted")
	return nil
}

func validateCredit(credit int) error {
	if credit < 1 || credit > 10 {
		return fmt.Errorf("%w: credit must be between 1 and 10", apperrors.ErrValidationFailed)
	}
	return nil
}
