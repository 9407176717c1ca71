package models

// Student represents a student profile as stored.
type Student struct {
	StudentID      string
	EnrollmentYear int
	Major          *string
	DeptID         string
}
