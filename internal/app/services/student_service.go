package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"

	"github.com/openlms/lms/internal/app/models"
	"github.com/openlms/lms/internal/app/repositories"
	"github.com/openlms/lms/internal/db"
	"github.com/openlms/lms/internal/pkg/apperrors"
	"github.com/openlms/lms/pkg/api"
)

// StudentService defines the interface for student operations
type StudentService interface {
	ListStudents(ctx context.Context, p repositories.ListParams) ([]models.Student, int64, error)
	GetStudentByID(ctx context.Context, id string) (*models.Student, error)
	GetStudentsByDepartment(ctx context.Context, deptID string) ([]models.Student, error)
	CreateStudent(ctx context.Context, req *api.CreateStudentRequest) (*models.Student, error)
	CreateStudentTx(ctx context.Context, req *api.CreateStudentRequest) (*models.Student, error)
	UpdateStudent(ctx context.Context, id string, req *api.UpdateStudentRequest) (*models.Student, error)
	DeleteStudent(ctx context.Context, id string) error
}

// studentServiceImpl implements StudentService
type studentServiceImpl struct {
	studentRepo *repositories.StudentRepository
	txRunner    db.TxRunner
	logger      zerolog.Logger
}

// NewStudentService creates a new StudentService
func NewStudentService(studentRepo *repositories.StudentRepository, txRunner db.TxRunner, logger zerolog.Logger) StudentService {
	return &studentServiceImpl{
		studentRepo: studentRepo,
		txRunner:    txRunner,
		logger:      logger,
	}
}

// ListStudents retrieves a page of students
func (s *studentServiceImpl) ListStudents(ctx context.Context, p repositories.ListParams) ([]models.Student, int64, error) {
	return s.studentRepo.List(ctx, p)
}

// GetStudentByID retrieves a student by ID
func (s *studentServiceImpl) GetStudentByID(ctx context.Context, id string) (*models.Student, error) {
	if strings.TrimSpace(id) == "" {
		return nil, apperrors.NewValidationError("student ID cannot be empty")
	}
	return s.studentRepo.GetByID(ctx, id)
}

// GetStudentsByDepartment retrieves a department's students
func (s *studentServiceImpl) GetStudentsByDepartment(ctx context.Context, deptID string) ([]models.Student, error) {
	if strings.TrimSpace(deptID) == "" {
		return nil, apperrors.NewValidationError("department ID cannot be empty")
	}
	return s.studentRepo.GetByDepartment(ctx, deptID)
}

func (s *studentServiceImpl) buildStudent(req *api.CreateStudentRequest) (*models.Student, error) {
	if req.EnrollmentYear < 1900 || req.EnrollmentYear > 2100 {
		return nil, fmt.Errorf("%w: enrollment year is out of range", apperrors.ErrValidationFailed)
	}
	student := &models.Student{
		StudentID:      strings.TrimSpace(req.StudentID),
		EnrollmentYear: req.EnrollmentYear,
		Major:          req.Major,
		DeptID:         strings.TrimSpace(req.DeptID),
	}
	if student.StudentID == "" || student.DeptID == "" {
		return nil, apperrors.NewValidationError("student ID and department ID cannot be empty")
	}
	return student, nil
}

// CreateStudent validates and stores a new student
func (s *studentServiceImpl) CreateStudent(ctx context.Context, req *api.CreateStudentRequest) (*models.Student, error) {
	student, err := s.buildStudent(req)
	if err != nil {
		return nil, err
	}

	if err := s.studentRepo.Create(ctx, student); err != nil {
		return nil, err
	}

	s.logger.Info().Str("studentId", student.StudentID).Msg("Student created")
	return student, nil
}

// CreateStudentTx stores a new student inside an explicit transaction.
// This is the path the old AddStudent procedure owned.
func (s *studentServiceImpl) CreateStudentTx(ctx context.Context, req *api.CreateStudentRequest) (*models.Student, error) {
	student, err := s.buildStudent(req)
	if err != nil {
		return nil, err
	}

	err = s.txRunner.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		return s.studentRepo.CreateInTx(ctx, tx, student)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("studentId", student.StudentID).Msg("Student created via transactional path")
	return student, nil
}

// UpdateStudent writes the supplied fields and returns the fresh row
func (s *studentServiceImpl) UpdateStudent(ctx context.Context, id string, req *api.UpdateStudentRequest) (*models.Student, error) {
	fields := map[string]interface{}{}
	if req.EnrollmentYear != nil {
		if *req.EnrollmentYear < 1900 || *req.EnrollmentYear > 2100 {
			return nil, fmt.Errorf("%w: enrollment year is out of range", apperrors.ErrValidationFailed)
		}
		fields["enrollment_year"] = *req.EnrollmentYear
	}
	if req.Major != nil {
		fields["major"] = *req.Major
	}
	if req.DeptID != nil {
		fields["dept_id"] = *req.DeptID
	}

	if len(fields) > 0 {
		if err := s.studentRepo.Update(ctx, id, fields); err != nil {
			return nil, err
		}
	}

	return s.studentRepo.GetByID(ctx, id)
}

// DeleteStudent removes a student
func (s *studentServiceImpl) DeleteStudent(ctx context.Context, id string) error {
	if err := s.studentRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("studentId", id).Msg("Student deleted")
	return nil
}
