package api

// TotalCount is the body of the single-counter statistics endpoints.
type TotalCount struct {
	Total int64 `json:"total"`
}

// Overview is the body of GET /stats/overview.
type Overview struct {
	TotalUsers       int64 `json:"totalUsers"`
	TotalClasses     int64 `json:"totalClasses"`
	TotalCourses     int64 `json:"totalCourses"`
	TotalAssignments int64 `json:"totalAssignments"`
}
