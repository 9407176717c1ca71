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

// courseSortColumns maps client sort names to real columns.
var courseSortColumns = map[string]string{
	"CourseID": "c.course_id",
	"Name":     "c.name",
	"Credit":   "c.credit",
	"Duration": "c.duration",
	"DeptID":   "c.dept_id",
}

// CourseRepository handles database operations for courses
type CourseRepository struct {
	db *pgxpool.Pool
}

// NewCourseRepository creates a new course repository
func NewCourseRepository(db *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{db: db}
}

// List retrieves a page of courses matching the search term, plus the
// total match count.
func (r *CourseRepository) List(ctx context.Context, p ListParams) ([]models.Course, int64, error) {
	builder := squirrel.Select(
		"c.course_id", "c.name", "c.description", "c.credit", "c.duration",
		"c.dept_id", "c.instructor_id",
		"COUNT(*) OVER() AS total_count",
	).
		From("courses c").
		PlaceholderFormat(squirrel.Dollar)

	builder, err := applyListParams(builder, p, courseSortColumns, "c.name", "c.description")
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

	var courses []models.Course
	var total int64
	for rows.Next() {
		var course models.Course
		var description, deptID, instructorID sql.NullString
		if err := rows.Scan(
			&course.CourseID,
			&course.Name,
			&description,
			&course.Credit,
			&course.Duration,
			&deptID,
			&instructorID,
			&total,
		); err != nil {
			return nil, 0, fmt.Errorf("error scanning row: %w", err)
		}
		course.Description = helpers.StringOrNil(description)
		course.DeptID = helpers.StringOrNil(deptID)
		course.InstructorID = helpers.StringOrNil(instructorID)
		courses = append(courses, course)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return courses, total, nil
}

// GetByID retrieves one course enriched with its instructor's display
// name and the number of enrollments referencing it.
func (r *CourseRepository) GetByID(ctx context.Context, id string) (*models.Course, error) {
	query := `
		SELECT c.course_id, c.name, c.description, c.credit, c.duration,
		       c.dept_id, c.instructor_id,
		       COALESCE(TRIM(u.last_name || ' ' || u.first_name), '') AS instructor_name,
		       (SELECT COUNT(*) FROM enrollments e WHERE e.course_id = c.course_id) AS student_count
		FROM courses c
		LEFT JOIN users u ON c.instructor_id = u.user_id
		WHERE c.course_id = $1
	`

	var course models.Course
	var description, deptID, instructorID sql.NullString
	var studentCount int
	err := r.db.QueryRow(ctx, query, id).Scan(
		&course.CourseID,
		&course.Name,
		&description,
		&course.Credit,
		&course.Duration,
		&deptID,
		&instructorID,
		&course.InstructorName,
		&studentCount,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, fmt.Errorf("error retrieving course: %w", err)
	}

	course.Description = helpers.StringOrNil(description)
	course.DeptID = helpers.StringOrNil(deptID)
	course.InstructorID = helpers.StringOrNil(instructorID)
	course.StudentCount = &studentCount

	return &course, nil
}

// Create inserts a new course
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) error {
	query := `
		INSERT INTO courses (course_id, name, description, credit, duration, dept_id, instructor_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Exec(ctx, query,
		course.CourseID, course.Name, course.Description,
		course.Credit, course.Duration, course.DeptID, course.InstructorID)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.NewConflictError("course with this ID already exists")
		}
		return fmt.Errorf("error creating course: %w", err)
	}

	return nil
}

// Update writes only the supplied columns. fields maps column names to
// new values; callers build it from the non-nil request fields.
func (r *CourseRepository) Update(ctx context.Context, id string, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}

	query, args, err := squirrel.Update("courses").
		SetMap(fields).
		Where(squirrel.Eq{"course_id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("error updating course: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}

	return nil
}

// Delete removes a course. A foreign-key rejection (enrollments still
// reference the course) surfaces as a constraint error for the handler
// to downgrade; the row stays intact.
func (r *CourseRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM courses WHERE course_id = $1`, id)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.NewConstraintError(
				fmt.Sprintf("cannot delete course %s: it still has enrollments", id))
		}
		return fmt.Errorf("error deleting course: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}

	return nil
}
