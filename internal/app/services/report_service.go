package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/openlms/lms/internal/app/repositories"
	"github.com/openlms/lms/internal/pkg/academics"
	"github.com/openlms/lms/internal/pkg/apperrors"
	"github.com/openlms/lms/pkg/api"
)

// ReportService defines the interface for academic reporting
type ReportService interface {
	StudentGPA(ctx context.Context, studentID, semester string) (*api.GPAReport, error)
	StudentCredits(ctx context.Context, studentID string) (*api.CreditsReport, error)
	DepartmentReport(ctx context.Context, deptID, semester string) ([]api.DepartmentReportRow, error)
	InstructorStatistics(ctx context.Context, instructorID string) ([]api.InstructorStatRow, error)
	WarningList(ctx context.Context, semester string) ([]api.WarningRow, error)
	DispatchDeadlineReminders(ctx context.Context) (*api.DeadlineDispatchResult, error)
}

// reportServiceImpl implements ReportService
type reportServiceImpl struct {
	reportRepo *repositories.ReportRepository
	logger     zerolog.Logger
}

// NewReportService creates a new ReportService
func NewReportService(reportRepo *repositories.ReportRepository, logger zerolog.Logger) ReportService {
	return &reportServiceImpl{
		reportRepo: reportRepo,
		logger:     logger,
	}
}

func upstream(err error) error {
	return fmt.Errorf("%w: %v", apperrors.ErrUpstreamFailure, err)
}

// StudentGPA computes the credit-weighted GPA and its ranking for one
// student and semester
func (s *reportServiceImpl) StudentGPA(ctx context.Context, studentID, semester string) (*api.GPAReport, error) {
	if strings.TrimSpace(studentID) == "" || strings.TrimSpace(semester) == "" {
		return nil, apperrors.NewValidationError("student ID and semester are required")
	}

	results, err := s.reportRepo.StudentResults(ctx, studentID, semester)
	if err != nil {
		return nil, upstream(err)
	}

	gpa := academics.GPA(results)
	return &api.GPAReport{
		StudentID: studentID,
		Semester:  semester,
		GPA:       gpa,
		Ranking:   academics.Ranking(gpa),
	}, nil
}

// StudentCredits sums a student's completed credits across semesters
func (s *reportServiceImpl) StudentCredits(ctx context.Context, studentID string) (*api.CreditsReport, error) {
	if strings.TrimSpace(studentID) == "" {
		return nil, apperrors.NewValidationError("student ID is required")
	}

	results, err := s.reportRepo.StudentResults(ctx, studentID, "")
	if err != nil {
		return nil, upstream(err)
	}

	return &api.CreditsReport{
		StudentID:        studentID,
		CompletedCredits: academics.CompletedCredits(results),
	}, nil
}

// DepartmentReport lists per-student GPA rows for one department and
// semester
func (s *reportServiceImpl) DepartmentReport(ctx context.Context, deptID, semester string) ([]api.DepartmentReportRow, error) {
	if strings.TrimSpace(deptID) == "" || strings.TrimSpace(semester) == "" {
		return nil, apperrors.NewValidationError("department ID and semester are required")
	}

	students, err := s.reportRepo.DepartmentResults(ctx, deptID, semester)
	if err != nil {
		return nil, upstream(err)
	}

	rows := make([]api.DepartmentReportRow, 0, len(students))
	for _, st := range students {
		gpa := academics.GPA(st.Results)
		rows = append(rows, api.DepartmentReportRow{
			StudentID:   st.StudentID,
			StudentName: st.StudentName,
			Major:       st.Major,
			GPA:         gpa,
			Ranking:     academics.Ranking(gpa),
		})
	}
	return rows, nil
}

// InstructorStatistics summarizes each course an instructor teaches
func (s *reportServiceImpl) InstructorStatistics(ctx context.Context, instructorID string) ([]api.InstructorStatRow, error) {
	if strings.TrimSpace(instructorID) == "" {
		return nil, apperrors.NewValidationError("instructor ID is required")
	}

	courseRows, err := s.reportRepo.InstructorRows(ctx, instructorID)
	if err != nil {
		return nil, upstream(err)
	}

	stats := academics.InstructorStats(courseRows)
	rows := make([]api.InstructorStatRow, 0, len(stats))
	for _, stat := range stats {
		rows = append(rows, api.InstructorStatRow{
			CourseID:     stat.CourseID,
			CourseName:   stat.CourseName,
			Enrolled:     stat.Enrolled,
			Completed:    stat.Completed,
			AverageGrade: stat.AverageGrade,
		})
	}
	return rows, nil
}

// WarningList flags the semester's at-risk students
func (s *reportServiceImpl) WarningList(ctx context.Context, semester string) ([]api.WarningRow, error) {
	if strings.TrimSpace(semester) == "" {
		return nil, apperrors.NewValidationError("semester is required")
	}

	results, err := s.reportRepo.SemesterResults(ctx, semester)
	if err != nil {
		return nil, upstream(err)
	}

	warnings := academics.Warnings(results)
	rows := make([]api.WarningRow, 0, len(warnings))
	for _, w := range warnings {
		rows = append(rows, api.WarningRow{
			StudentID:    w.StudentID,
			GPA:          w.GPA,
			DroppedCount: w.DroppedCount,
			Reason:       w.Reason,
		})
	}
	return rows, nil
}

// DispatchDeadlineReminders writes deadline reminder notifications for
// active enrollments and reports how many were sent
func (s *reportServiceImpl) DispatchDeadlineReminders(ctx context.Context) (*api.DeadlineDispatchResult, error) {
	sent, err := s.reportRepo.DispatchDeadlineReminders(ctx)
	if err != nil {
		return nil, upstream(err)
	}

	s.logger.Info().Int64("sent", sent).Msg("Deadline reminders dispatched")
	return &api.DeadlineDispatchResult{
		Message: fmt.Sprintf("Dispatched %d deadline reminders", sent),
		Sent:    sent,
	}, nil
}
