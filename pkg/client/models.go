package client

import (
	"net/url"
	"strconv"
	"time"
)

// maxPageSize matches the server-side page cap.
const maxPageSize = 200

// ListOptions are the query parameters every list endpoint accepts.
// Zero values are omitted from the request.
type ListOptions struct {
	Page   int
	Limit  int
	Sort   string
	Order  string
	Search string
}

func (o ListOptions) query() string {
	q := url.Values{}
	if o.Page > 0 {
		q.Set("page", strconv.Itoa(o.Page))
	}
	if o.Limit > 0 {
		q.Set("limit", strconv.Itoa(o.Limit))
	}
	if o.Sort != "" {
		q.Set("sort", o.Sort)
	}
	if o.Order != "" {
		q.Set("order", o.Order)
	}
	if o.Search != "" {
		q.Set("search", o.Search)
	}
	if len(q) == 0 {
		return ""
	}
	return "?" + q.Encode()
}

// Course is the dashboard-facing course view. Name carries the display
// title (the wire Description when present) and OriginalName the source
// title, matching how the rows render.
type Course struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	OriginalName   string `json:"originalName"`
	Credit         int    `json:"credit"`
	Duration       int    `json:"duration"`
	DeptID         string `json:"deptId"`
	InstructorID   string `json:"instructorId"`
	InstructorName string `json:"instructorName"`
	StudentCount   int    `json:"studentCount"`
}

// Enrollment is the dashboard-facing enrollment view.
type Enrollment struct {
	ID             string   `json:"id"`
	StudentID      string   `json:"studentId"`
	StudentName    string   `json:"studentName"`
	CourseID       string   `json:"courseId"`
	CourseName     string   `json:"courseName"`
	Status         string   `json:"status"`
	Semester       string   `json:"semester"`
	GradeFinal     *float64 `json:"gradeFinal"`
	Schedule       string   `json:"schedule"`
	InstructorID   string   `json:"instructorId"`
	InstructorName string   `json:"instructorName"`
}

// User is the dashboard-facing user view. FullName joins last and first
// names the way the user table renders them.
type User struct {
	ID       string `json:"id"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	Age      *int   `json:"age"`
	DoB      string `json:"dob"`
}

// Notification is the dashboard-facing notification view.
type Notification struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Content   string    `json:"content"`
	UserID    string    `json:"userId"`
	Seen      bool      `json:"seen"`
	CreatedAt time.Time `json:"createdAt"`
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
