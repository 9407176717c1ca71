package models

// Enrollment links a student to a course for a semester.
type Enrollment struct {
	EnrollID     string
	StudentID    string
	CourseID     string
	Status       EnrollmentStatus
	Semester     string
	GradeFinal   *float64
	Schedule     *string
	InstructorID *string

	// Populated on enriched lookups
	StudentName    string
	CourseName     string
	InstructorName string
}
