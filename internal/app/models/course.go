package models

// Course represents a course as stored. Name is the original title,
// Description the localized display title.
type Course struct {
	CourseID     string
	Name         string
	Description  *string
	Credit       int
	Duration     int
	DeptID       *string
	InstructorID *string

	// Populated on enriched lookups
	InstructorName string
	StudentCount   *int
}
