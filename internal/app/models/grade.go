package models

import "time"

// Grade is one recorded assessment score for a student.
type Grade struct {
	GradeID      string
	StudentID    string
	AssessID     string
	Score        float64
	GradeLetter  string
	DateRecorded time.Time
}
