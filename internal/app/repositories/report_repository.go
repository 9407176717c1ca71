package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/openlms/lms/internal/pkg/academics"
	"github.com/openlms/lms/internal/pkg/helpers"
)

// ReportRepository fetches the raw enrollment rows the academics
// package aggregates. No arithmetic happens in SQL beyond joins.
type ReportRepository struct {
	db *pgxpool.Pool
}

// NewReportRepository creates a new report repository
func NewReportRepository(db *pgxpool.Pool) *ReportRepository {
	return &ReportRepository{db: db}
}

// DepartmentStudent pairs a student's identity with their results for
// department-wide reports.
type DepartmentStudent struct {
	StudentID   string
	StudentName string
	Major       *string
	Results     []academics.CourseResult
}

func scanCourseResults(rows pgx.Rows) ([]academics.CourseResult, error) {
	var results []academics.CourseResult
	for rows.Next() {
		var r academics.CourseResult
		var grade sql.NullFloat64
		if err := rows.Scan(&r.StudentID, &r.Semester, &r.Status, &r.Credit, &grade); err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		r.GradeFinal = helpers.Float64OrNil(grade)
		results = append(results, r)
	}
	return results, rows.Err()
}

// StudentResults returns one student's enrollment rows joined with
// course credits, optionally narrowed to a semester.
func (r *ReportRepository) StudentResults(ctx context.Context, studentID, semester string) ([]academics.CourseResult, error) {
	query := `
		SELECT e.student_id, e.semester, e.status, c.credit, e.grade_final
		FROM enrollments e
		JOIN courses c ON e.course_id = c.course_id
		WHERE e.student_id = $1
	`
	args := []any{studentID}
	if semester != "" {
		query += ` AND e.semester = $2`
		args = append(args, semester)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	return scanCourseResults(rows)
}

// SemesterResults returns every enrollment row of one semester, the
// input for the campus-wide warning list.
func (r *ReportRepository) SemesterResults(ctx context.Context, semester string) ([]academics.CourseResult, error) {
	query := `
		SELECT e.student_id, e.semester, e.status, c.credit, e.grade_final
		FROM enrollments e
		JOIN courses c ON e.course_id = c.course_id
		WHERE e.semester = $1
		ORDER BY e.student_id, e.enroll_id
	`

	rows, err := r.db.Query(ctx, query, semester)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	return scanCourseResults(rows)
}

// DepartmentResults returns, per student of the department, the
// semester's enrollment rows plus the student's display name and major.
func (r *ReportRepository) DepartmentResults(ctx context.Context, deptID, semester string) ([]DepartmentStudent, error) {
	query := `
		SELECT s.student_id,
		       COALESCE(TRIM(u.last_name || ' ' || u.first_name), '') AS student_name,
		       s.major,
		       e.semester, e.status, c.credit, e.grade_final
		FROM students s
		LEFT JOIN users u ON s.student_id = u.user_id
		JOIN enrollments e ON e.student_id = s.student_id AND e.semester = $2
		JOIN courses c ON e.course_id = c.course_id
		WHERE s.dept_id = $1
		ORDER BY s.student_id, e.enroll_id
	`

	rows, err := r.db.Query(ctx, query, deptID, semester)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	byStudent := make(map[string]*DepartmentStudent)
	var order []string
	for rows.Next() {
		var id, name string
		var major sql.NullString
		var result academics.CourseResult
		var grade sql.NullFloat64
		if err := rows.Scan(&id, &name, &major,
			&result.Semester, &result.Status, &result.Credit, &grade); err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		result.StudentID = id
		result.GradeFinal = helpers.Float64OrNil(grade)

		ds, ok := byStudent[id]
		if !ok {
			ds = &DepartmentStudent{
				StudentID:   id,
				StudentName: name,
				Major:       helpers.StringOrNil(major),
			}
			byStudent[id] = ds
			order = append(order, id)
		}
		ds.Results = append(ds.Results, result)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	students := make([]DepartmentStudent, 0, len(order))
	for _, id := range order {
		students = append(students, *byStudent[id])
	}
	return students, nil
}

// InstructorRows returns the enrollment rows of every course taught by
// one instructor, the input for per-course statistics.
func (r *ReportRepository) InstructorRows(ctx context.Context, instructorID string) ([]academics.CourseRow, error) {
	query := `
		SELECT c.course_id, c.name, e.status, e.grade_final
		FROM courses c
		JOIN enrollments e ON e.course_id = c.course_id
		WHERE c.instructor_id = $1
		ORDER BY c.course_id, e.enroll_id
	`

	rows, err := r.db.Query(ctx, query, instructorID)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	var results []academics.CourseRow
	for rows.Next() {
		var row academics.CourseRow
		var grade sql.NullFloat64
		if err := rows.Scan(&row.CourseID, &row.CourseName, &row.Status, &grade); err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		row.GradeFinal = helpers.Float64OrNil(grade)
		results = append(results, row)
	}

	return results, rows.Err()
}

// DispatchDeadlineReminders inserts one unseen deadline reminder per
// active enrollment, skipping students already holding an unseen
// reminder for the same course. Returns the number of rows written.
func (r *ReportRepository) DispatchDeadlineReminders(ctx context.Context) (int64, error) {
	query := `
		INSERT INTO notifications (notif_id, type, content, user_id, status, created_at)
		SELECT 'N' || nextval('notification_seq'),
		       'Deadline',
		       'Reminder: course ' || c.name || ' has an upcoming deadline',
		       e.student_id,
		       'Unseen',
		       NOW()
		FROM enrollments e
		JOIN courses c ON e.course_id = c.course_id
		WHERE e.status = 'Enrolled'
		  AND NOT EXISTS (
			SELECT 1 FROM notifications n
			WHERE n.user_id = e.student_id
			  AND n.type = 'Deadline'
			  AND n.status = 'Unseen'
			  AND n.content LIKE '%' || c.name || '%'
		  )
	`

	tag, err := r.db.Exec(ctx, query)
	if err != nil {
		return 0, fmt.Errorf("error dispatching reminders: %w", err)
	}

	return tag.RowsAffected(), nil
}
