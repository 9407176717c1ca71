package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	CourseRepository       *CourseRepository
	EnrollmentRepository   *EnrollmentRepository
	StudentRepository      *StudentRepository
	GradeRepository        *GradeRepository
	NotificationRepository *NotificationRepository
	UserRepository         *UserRepository
	ReportRepository       *ReportRepository
	StatisticsRepository   *StatisticsRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		CourseRepository:       NewCourseRepository(db),
		EnrollmentRepository:   NewEnrollmentRepository(db),
		StudentRepository:      NewStudentRepository(db),
		GradeRepository:        NewGradeRepository(db),
		NotificationRepository: NewNotificationRepository(db),
		UserRepository:         NewUserRepository(db),
		ReportRepository:       NewReportRepository(db),
		StatisticsRepository:   NewStatisticsRepository(db),
	}
}
