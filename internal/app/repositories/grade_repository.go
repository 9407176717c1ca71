package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/openlms/lms/internal/app/models"
	"github.com/openlms/lms/internal/pkg/apperrors"
	"github.com/openlms/lms/internal/pkg/dberrors"
)

var gradeSortColumns = map[string]string{
	"GradeID":      "grade_id",
	"StudentID":    "student_id",
	"AssessID":     "assess_id",
	"Score":        "score",
	"GradeLetter":  "grade_letter",
	"DateRecorded": "date_recorded",
}

// GradeRepository handles database operations for grades
type GradeRepository struct {
	db *pgxpool.Pool
}

// NewGradeRepository creates a new grade repository
func NewGradeRepository(db *pgxpool.Pool) *GradeRepository {
	return &GradeRepository{db: db}
}

// List retrieves a page of grades matching the search term.
func (r *GradeRepository) List(ctx context.Context, p ListParams) ([]models.Grade, int64, error) {
	builder := squirrel.Select(
		"grade_id", "student_id", "assess_id", "score", "grade_letter", "date_recorded",
		"COUNT(*) OVER() AS total_count",
	).
		From("grades").
		PlaceholderFormat(squirrel.Dollar)

	builder, err := applyListParams(builder, p, gradeSortColumns, "student_id", "assess_id")
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

	var grades []models.Grade
	var total int64
	for rows.Next() {
		var grade models.Grade
		if err := rows.Scan(
			&grade.GradeID, &grade.StudentID, &grade.AssessID,
			&grade.Score, &grade.GradeLetter, &grade.DateRecorded, &total,
		); err != nil {
			return nil, 0, fmt.Errorf("error scanning row: %w", err)
		}
		grades = append(grades, grade)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return grades, total, nil
}

// GetByID retrieves a grade by ID
func (r *GradeRepository) GetByID(ctx context.Context, id string) (*models.Grade, error) {
	query := `
		SELECT grade_id, student_id, assess_id, score, grade_letter, date_recorded
		FROM grades
		WHERE grade_id = $1
	`

	var grade models.Grade
	err := r.db.QueryRow(ctx, query, id).Scan(
		&grade.GradeID, &grade.StudentID, &grade.AssessID,
		&grade.Score, &grade.GradeLetter, &grade.DateRecorded)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrGradeNotFound
		}
		return nil, fmt.Errorf("error retrieving grade: %w", err)
	}

	return &grade, nil
}

// GetByStudent retrieves all grades recorded for one student, newest
// first.
func (r *GradeRepository) GetByStudent(ctx context.Context, studentID string) ([]models.Grade, error) {
	query := `
		SELECT grade_id, student_id, assess_id, score, grade_letter, date_recorded
		FROM grades
		WHERE student_id = $1
		ORDER BY date_recorded DESC, grade_id
	`

	rows, err := r.db.Query(ctx, query, studentID)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	var grades []models.Grade
	for rows.Next() {
		var grade models.Grade
		if err := rows.Scan(
			&grade.GradeID, &grade.StudentID, &grade.AssessID,
			&grade.Score, &grade.GradeLetter, &grade.DateRecorded,
		); err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		grades = append(grades, grade)
	}

	return grades, rows.Err()
}

// Create inserts a new grade
func (r *GradeRepository) Create(ctx context.Context, grade *models.Grade) error {
	query := `
		INSERT INTO grades (grade_id, student_id, assess_id, score, grade_letter, date_recorded)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.Exec(ctx, query,
		grade.GradeID, grade.StudentID, grade.AssessID,
		grade.Score, grade.GradeLetter, grade.DateRecorded)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.NewConflictError("grade with this ID already exists")
		}
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.NewValidationError("grade must reference an existing student and assessment")
		}
		return fmt.Errorf("error creating grade: %w", err)
	}

	return nil
}

// Update writes only the supplied columns.
func (r *GradeRepository) Update(ctx context.Context, id string, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}

	query, args, err := squirrel.Update("grades").
		SetMap(fields).
		Where(squirrel.Eq{"grade_id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.NewValidationError("grade must reference an existing student and assessment")
		}
		return fmt.Errorf("error updating grade: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrGradeNotFound
	}

	return nil
}

// Delete removes a grade
func (r *GradeRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM grades WHERE grade_id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting grade: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrGradeNotFound
	}

	return nil
}
