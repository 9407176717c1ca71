package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/openlms/lms/internal/app/models"
	"github.com/openlms/lms/internal/pkg/apperrors"
	"github.com/openlms/lms/internal/pkg/dberrors"
	"github.com/openlms/lms/internal/pkg/helpers"
)

var studentSortColumns = map[string]string{
	"StudentID":      "student_id",
	"EnrollmentYear": "enrollment_year",
	"Major":          "major",
	"DeptID":         "dept_id",
}

// StudentRepository handles database operations for students
type StudentRepository struct {
	db *pgxpool.Pool
}

// NewStudentRepository creates a new student repository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{db: db}
}

// List retrieves a page of students matching the search term.
func (r *StudentRepository) List(ctx context.Context, p ListParams) ([]models.Student, int64, error) {
	builder := squirrel.Select(
		"student_id", "enrollment_year", "major", "dept_id",
		"COUNT(*) OVER() AS total_count",
	).
		From("students").
		PlaceholderFormat(squirrel.Dollar)

	builder, err := applyListParams(builder, p, studentSortColumns, "student_id", "major")
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

	return scanStudents(rows)
}

func scanStudents(rows pgx.Rows) ([]models.Student, int64, error) {
	var students []models.Student
	var total int64
	for rows.Next() {
		var student models.Student
		var major sql.NullString
		if err := rows.Scan(&student.StudentID, &student.EnrollmentYear, &major, &student.DeptID, &total); err != nil {
			return nil, 0, fmt.Errorf("error scanning row: %w", err)
		}
		student.Major = helpers.StringOrNil(major)
		students = append(students, student)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return students, total, nil
}

// GetByID retrieves a student by ID
func (r *StudentRepository) GetByID(ctx context.Context, id string) (*models.Student, error) {
	query := `
		SELECT student_id, enrollment_year, major, dept_id
		FROM students
		WHERE student_id = $1
	`

	var student models.Student
	var major sql.NullString
	err := r.db.QueryRow(ctx, query, id).Scan(
		&student.StudentID, &student.EnrollmentYear, &major, &student.DeptID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}
	student.Major = helpers.StringOrNil(major)

	return &student, nil
}

// GetByDepartment retrieves all students belonging to a department.
func (r *StudentRepository) GetByDepartment(ctx context.Context, deptID string) ([]models.Student, error) {
	query := `
		SELECT student_id, enrollment_year, major, dept_id, COUNT(*) OVER() AS total_count
		FROM students
		WHERE dept_id = $1
		ORDER BY student_id
	`

	rows, err := r.db.Query(ctx, query, deptID)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	students, _, err := scanStudents(rows)
	return students, err
}

// Create inserts a new student
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	return r.create(ctx, r.db, student)
}

// CreateInTx inserts a new student within an existing transaction. The
// /students/procedure route goes through here, matching the stored
// procedure the schema used to own.
func (r *StudentRepository) CreateInTx(ctx context.Context, tx pgx.Tx, student *models.Student) error {
	return r.create(ctx, tx, student)
}

// execer is satisfied by both *pgxpool.Pool and pgx.Tx.
type execer interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

func (r *StudentRepository) create(ctx context.Context, q execer, student *models.Student) error {
	query := `
		INSERT INTO students (student_id, enrollment_year, major, dept_id)
		VALUES ($1, $2, $3, $4)
	`

	_, err := q.Exec(ctx, query, student.StudentID, student.EnrollmentYear, student.Major, student.DeptID)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.NewConflictError("student with this ID already exists")
		}
		return fmt.Errorf("error creating student: %w", err)
	}

	return nil
}

// Update writes only the supplied columns.
func (r *StudentRepository) Update(ctx context.Context, id string, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}

	query, args, err := squirrel.Update("students").
		SetMap(fields).
		Where(squirrel.Eq{"student_id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("error updating student: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}

// Delete removes a student
func (r *StudentRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM students WHERE student_id = $1`, id)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.NewConstraintError(
				fmt.Sprintf("cannot delete student %s: related records still reference it", id))
		}
		return fmt.Errorf("error deleting student: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}
