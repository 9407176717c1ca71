package api

// GPAReport is the body of GET /reports/gpa/:studentId/:semester.
type GPAReport struct {
	StudentID string  `json:"StudentID"`
	Semester  string  `json:"Semester"`
	GPA       float64 `json:"GPA"`
	Ranking   string  `json:"Ranking"`
}

// CreditsReport is the body of GET /reports/credits/:studentId.
type CreditsReport struct {
	StudentID        string `json:"StudentID"`
	CompletedCredits int    `json:"CompletedCredits"`
}

// DepartmentReportRow is one student's line in a department report.
type DepartmentReportRow struct {
	StudentID   string  `json:"StudentID"`
	StudentName string  `json:"StudentName"`
	Major       *string `json:"Major"`
	GPA         float64 `json:"GPA"`
	Ranking     string  `json:"Ranking"`
}

// InstructorStatRow is one course's line in an instructor report.
type InstructorStatRow struct {
	CourseID     string  `json:"CourseID"`
	CourseName   string  `json:"CourseName"`
	Enrolled     int     `json:"Enrolled"`
	Completed    int     `json:"Completed"`
	AverageGrade float64 `json:"AverageGrade"`
}

// WarningRow is one at-risk student in the academic warning list.
type WarningRow struct {
	StudentID    string  `json:"StudentID"`
	GPA          float64 `json:"GPA"`
	DroppedCount int     `json:"DroppedCount"`
	Reason       string  `json:"Reason"`
}

// DeadlineDispatchResult reports how many reminder notifications a
// deadline sweep created.
type DeadlineDispatchResult struct {
	Message string `json:"message"`
	Sent    int64  `json:"sent"`
}
