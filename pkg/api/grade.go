package api

// Grade is a grade row as served over the wire. DateRecorded uses the
// YYYY-MM-DD form the dashboard renders directly.
type Grade struct {
	GradeID      string  `json:"GradeID"`
	StudentID    string  `json:"StudentID"`
	AssessID     string  `json:"AssessID"`
	Score        float64 `json:"Score"`
	GradeLetter  string  `json:"GradeLetter"`
	DateRecorded string  `json:"DateRecorded"`
}

// CreateGradeRequest is the payload for POST /grades. Score is a
// pointer so an explicit 0 survives required-field binding; bounds are
// checked by the service. DateRecorded defaults to today when omitted.
type CreateGradeRequest struct {
	GradeID      string   `json:"GradeID" binding:"required,max=16"`
	StudentID    string   `json:"StudentID" binding:"required,max=16"`
	AssessID     string   `json:"AssessID" binding:"required,max=16"`
	Score        *float64 `json:"Score" binding:"required"`
	GradeLetter  string   `json:"GradeLetter" binding:"required"`
	DateRecorded *string  `json:"DateRecorded"`
}

// UpdateGradeRequest is the partial payload for PATCH /grades/:id.
type UpdateGradeRequest struct {
	StudentID    *string  `json:"StudentID"`
	AssessID     *string  `json:"AssessID"`
	Score        *float64 `json:"Score"`
	GradeLetter  *string  `json:"GradeLetter"`
	DateRecorded *string  `json:"DateRecorded"`
}
