package api

// Course is a course row as served over the wire. Name holds the
// original (source-language) title and Description the localized
// display title; the dashboard swaps them when rendering.
type Course struct {
	CourseID       string  `json:"CourseID"`
	Name           string  `json:"Name"`
	Description    *string `json:"Description"`
	Credit         int     `json:"Credit"`
	Duration       int     `json:"Duration"`
	DeptID         *string `json:"DeptID"`
	InstructorID   *string `json:"InstructorID"`
	InstructorName string  `json:"InstructorName,omitempty"`
	// StudentCount is computed from enrollments and only attached on
	// detail lookups; nil means "not computed", zero means "no
	// enrollments".
	StudentCount *int `json:"StudentCount,omitempty"`
}

// CreateCourseRequest is the payload for POST /courses.
type CreateCourseRequest struct {
	CourseID     string  `json:"CourseID" binding:"required,max=16"`
	Name         string  `json:"Name" binding:"required,max=200"`
	Description  *string `json:"Description"`
	Credit       int     `json:"Credit" binding:"required,min=1,max=10"`
	Duration     int     `json:"Duration" binding:"required,min=1"`
	DeptID       *string `json:"DeptID"`
	InstructorID *string `json:"InstructorID"`
}

// UpdateCourseRequest is the partial payload for PATCH/PUT /courses/:id.
// Only non-nil fields are written.
type UpdateCourseRequest struct {
	Name         *string `json:"Name"`
	Description  *string `json:"Description"`
	Credit       *int    `json:"Credit"`
	Duration     *int    `json:"Duration"`
	DeptID       *string `json:"DeptID"`
	InstructorID *string `json:"InstructorID"`
}
