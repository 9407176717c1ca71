package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/openlms/lms/internal/app/models"
	"github.com/openlms/lms/internal/pkg/apperrors"
	"github.com/openlms/lms/internal/pkg/dberrors"
	"github.com/openlms/lms/internal/pkg/helpers"
)

var enrollmentSortColumns = map[string]string{
	"EnrollID":  "e.enroll_id",
	"StudentID": "e.student_id",
	"CourseID":  "e.course_id",
	"Status":    "e.status",
	"Semester":  "e.semester",
}

// enrollmentColumns are the scan targets every enrollment query shares:
// the row itself plus the joined display names.
const enrollmentColumns = `
	e.enroll_id, e.student_id, e.course_id, e.status, e.semester,
	e.grade_final, e.schedule, e.instructor_id,
	COALESCE(TRIM(s.last_name || ' ' || s.first_name), '') AS student_name,
	COALESCE(c.name, '') AS course_name,
	COALESCE(TRIM(i.last_name || ' ' || i.first_name), '') AS instructor_name`

// EnrollmentRepository handles database operations for enrollments
type EnrollmentRepository struct {
	db *pgxpool.Pool
}

// NewEnrollmentRepository creates a new enrollment repository
func NewEnrollmentRepository(db *pgxpool.Pool) *EnrollmentRepository {
	return &EnrollmentRepository{db: db}
}

func scanEnrollment(row pgx.Row, extra ...interface{}) (*models.Enrollment, error) {
	var e models.Enrollment
	var gradeFinal sql.NullFloat64
	var schedule, instructorID sql.NullString

	targets := []interface{}{
		&e.EnrollID, &e.StudentID, &e.CourseID, &e.Status, &e.Semester,
		&gradeFinal, &schedule, &instructorID,
		&e.StudentName, &e.CourseName, &e.InstructorName,
	}
	targets = append(targets, extra...)

	if err := row.Scan(targets...); err != nil {
		return nil, err
	}

	e.GradeFinal = helpers.Float64OrNil(gradeFinal)
	e.Schedule = helpers.StringOrNil(schedule)
	e.InstructorID = helpers.StringOrNil(instructorID)
	return &e, nil
}

// List retrieves a page of enrollments, search matching the student or
// course identifier, each row enriched with display names.
func (r *EnrollmentRepository) List(ctx context.Context, p ListParams) ([]models.Enrollment, int64, error) {
	builder := squirrel.Select(enrollmentColumns, "COUNT(*) OVER() AS total_count").
		From("enrollments e").
		LeftJoin("users s ON e.student_id = s.user_id").
		LeftJoin("courses c ON e.course_id = c.course_id").
		LeftJoin("users i ON e.instructor_id = i.user_id").
		PlaceholderFormat(squirrel.Dollar)

	builder, err := applyListParams(builder, p, enrollmentSortColumns, "e.student_id", "e.course_id")
	if err != nil {
		return nil, 0, err
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	var enrollments []models.Enrollment
	var total int64
	for rows.Next() {
		e, err := scanEnrollment(rows, &total)
		if err != nil {
			return nil, 0, fmt.Errorf("error scanning row: %w", err)
		}
		enrollments = append(enrollments, *e)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return enrollments, total, nil
}

// GetByID retrieves one enriched enrollment
func (r *EnrollmentRepository) GetByID(ctx context.Context, id string) (*models.Enrollment, error) {
	query := `
		SELECT` + enrollmentColumns + `
		FROM enrollments e
		LEFT JOIN users s ON e.student_id = s.user_id
		LEFT JOIN courses c ON e.course_id = c.course_id
		LEFT JOIN users i ON e.instructor_id = i.user_id
		WHERE e.enroll_id = $1
	`

	e, err := scanEnrollment(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrEnrollmentNotFound
		}
		return nil, fmt.Errorf("error retrieving enrollment: %w", err)
	}

	return e, nil
}

// Create inserts a new enrollment. The student and course references
// are enforced by foreign keys.
func (r *EnrollmentRepository) Create(ctx context.Context, e *models.Enrollment) error {
	query := `
		INSERT INTO enrollments (enroll_id, student_id, course_id, status, semester, grade_final, schedule, instructor_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.Exec(ctx, query,
		e.EnrollID, e.StudentID, e.CourseID, e.Status, e.Semester,
		e.GradeFinal, e.Schedule, e.InstructorID)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.NewConflictError("enrollment with this ID already exists")
		}
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.NewValidationError("enrollment must reference an existing student and course")
		}
		return fmt.Errorf("error creating enrollment: %w", err)
	}

	return nil
}

// Update writes only the supplied columns.
func (r *EnrollmentRepository) Update(ctx context.Context, id string, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}

	query, args, err := squirrel.Update("enrollments").
		SetMap(fields).
		Where(squirrel.Eq{"enroll_id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.NewValidationError("enrollment must reference an existing student and course")
		}
		return fmt.Errorf("error updating enrollment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrEnrollmentNotFound
	}

	return nil
}

// Delete removes an enrollment
func (r *EnrollmentRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM enrollments WHERE enroll_id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting enrollment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrEnrollmentNotFound
	}

	return nil
}
