package models

// Role is the stored, authoritative account role. It is never inferred
// from the shape of a user identifier.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleTeacher Role = "teacher"
	RoleStudent Role = "student"
)

// ValidRole reports whether the tag is one of the stored roles.
func ValidRole(r string) bool {
	switch Role(r) {
	case RoleAdmin, RoleTeacher, RoleStudent:
		return true
	}
	return false
}

// EnrollmentStatus is the lifecycle tag on an enrollment. Transitions
// are deliberately unconstrained; any status may overwrite any other.
type EnrollmentStatus string

const (
	StatusEnrolled  EnrollmentStatus = "Enrolled"
	StatusCompleted EnrollmentStatus = "Completed"
	StatusDropped   EnrollmentStatus = "Dropped"
)

// ValidEnrollmentStatus reports whether the tag is a known status.
func ValidEnrollmentStatus(s string) bool {
	switch EnrollmentStatus(s) {
	case StatusEnrolled, StatusCompleted, StatusDropped:
		return true
	}
	return false
}

// Notification read states.
const (
	NotificationSeen   = "Seen"
	NotificationUnseen = "Unseen"
)

// GradeLetters is the closed set of accepted letter grades.
var GradeLetters = []string{
	"A+", "A", "A-",
	"B+", "B", "B-",
	"C+", "C", "C-",
	"D+", "D", "D-",
	"F",
}

// ValidGradeLetter reports whether the letter is in the accepted set.
func ValidGradeLetter(letter string) bool {
	for _, l := range GradeLetters {
		if l == letter {
			return true
		}
	}
	return false
}
