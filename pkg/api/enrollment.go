package api

// Enrollment is an enrollment row enriched with the display names the
// roster screens need.
type Enrollment struct {
	EnrollID       string   `json:"EnrollID"`
	StudentID      string   `json:"StudentID"`
	CourseID       string   `json:"CourseID"`
	Status         string   `json:"Status"`
	Semester       string   `json:"Semester"`
	GradeFinal     *float64 `json:"GradeFinal"`
	Schedule       *string  `json:"Schedule"`
	InstructorID   *string  `json:"InstructorID"`
	StudentName    string   `json:"StudentName,omitempty"`
	CourseName     string   `json:"CourseName,omitempty"`
	InstructorName string   `json:"InstructorName,omitempty"`
}

// CreateEnrollmentRequest is the payload for POST /enrollments.
// Status defaults to Enrolled when omitted.
type CreateEnrollmentRequest struct {
	EnrollID     string   `json:"EnrollID" binding:"required,max=16"`
	StudentID    string   `json:"StudentID" binding:"required,max=16"`
	CourseID     string   `json:"CourseID" binding:"required,max=16"`
	Status       string   `json:"Status"`
	Semester     string   `json:"Semester" binding:"required"`
	GradeFinal   *float64 `json:"GradeFinal"`
	Schedule     *string  `json:"Schedule"`
	InstructorID *string  `json:"InstructorID"`
}

// UpdateEnrollmentRequest is the partial payload for PUT /enrollments/:id.
type UpdateEnrollmentRequest struct {
	StudentID    *string  `json:"StudentID"`
	CourseID     *string  `json:"CourseID"`
	Status       *string  `json:"Status"`
	Semester     *string  `json:"Semester"`
	GradeFinal   *float64 `json:"GradeFinal"`
	Schedule     *string  `json:"Schedule"`
	InstructorID *string  `json:"InstructorID"`
}
