package api

// Student is a student row as served over the wire.
type Student struct {
	StudentID      string  `json:"StudentID"`
	EnrollmentYear int     `json:"EnrollmentYear"`
	Major          *string `json:"Major"`
	DeptID         string  `json:"DeptID"`
}

// CreateStudentRequest is the payload for POST /students.
type CreateStudentRequest struct {
	StudentID      string  `json:"StudentID" binding:"required,max=16"`
	EnrollmentYear int     `json:"EnrollmentYear" binding:"required,min=1900,max=2100"`
	Major          *string `json:"Major"`
	DeptID         string  `json:"DeptID" binding:"required,max=16"`
}

// UpdateStudentRequest is the partial payload for PATCH /students/:id.
type UpdateStudentRequest struct {
	EnrollmentYear *int    `json:"EnrollmentYear"`
	Major          *string `json:"Major"`
	DeptID         *string `json:"DeptID"`
}
