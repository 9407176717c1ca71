package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// StatisticsRepository serves the dashboard row counts.
type StatisticsRepository struct {
	db *pgxpool.Pool
}

// NewStatisticsRepository creates a new statistics repository
func NewStatisticsRepository(db *pgxpool.Pool) *StatisticsRepository {
	return &StatisticsRepository{db: db}
}

func (r *StatisticsRepository) count(ctx context.Context, table string) (int64, error) {
	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM `+table).Scan(&total); err != nil {
		return 0, fmt.Errorf("error counting %s: %w", table, err)
	}
	return total, nil
}

// CountUsers returns the number of user profiles.
func (r *StatisticsRepository) CountUsers(ctx context.Context) (int64, error) {
	return r.count(ctx, "users")
}

// CountClasses returns the number of enrollments.
func (r *StatisticsRepository) CountClasses(ctx context.Context) (int64, error) {
	return r.count(ctx, "enrollments")
}

// CountCourses returns the number of courses.
func (r *StatisticsRepository) CountCourses(ctx context.Context) (int64, error) {
	return r.count(ctx, "courses")
}

// CountAssignments returns the number of assessments.
func (r *StatisticsRepository) CountAssignments(ctx context.Context) (int64, error) {
	return r.count(ctx, "assessments")
}
