// Package api defines the wire contract shared by the server handlers
// and the Go client. Row shapes keep the storage-style PascalCase field
// names the dashboard consumes; both tiers import these types so the
// mapping between them cannot drift.
package api

import (
	"fmt"
	"time"
)

// ErrorCode represents standardized error codes
type ErrorCode string

const (
	ErrorCodeResourceNotFound    ErrorCode = "RES_001"
	ErrorCodeResourceExists      ErrorCode = "RES_002"
	ErrorCodeConstraintViolation ErrorCode = "RES_003"

	ErrorCodeValidationFailed ErrorCode = "VAL_001"

	ErrorCodeUnauthorized       ErrorCode = "AUTH_001"
	ErrorCodeInvalidCredentials ErrorCode = "AUTH_002"
	ErrorCodeInvalidToken       ErrorCode = "AUTH_003"
	ErrorCodeExpiredToken       ErrorCode = "AUTH_004"

	ErrorCodeInternalServer ErrorCode = "SRV_001"
)

// ErrorDetail carries structured error information
type ErrorDetail struct {
	Code    ErrorCode   `json:"code"`
	Message string      `json:"message"`
	Field   string      `json:"field,omitempty"`
	Details interface{} `json:"details,omitempty"`
}

// ErrorResponse is the standard error envelope. The top-level message
// duplicates the detail message because the client gateway (and the
// dashboard before it) only looks for a "message" field.
type ErrorResponse struct {
	Success   bool         `json:"success"`
	Message   string       `json:"message"`
	Error     *ErrorDetail `json:"error"`
	Timestamp time.Time    `json:"timestamp"`
}

// NewErrorDetail creates a new error detail
func NewErrorDetail(code ErrorCode, message string) *ErrorDetail {
	return &ErrorDetail{Code: code, Message: message}
}

// WithField attaches the offending field name
func (e *ErrorDetail) WithField(field string) *ErrorDetail {
	e.Field = field
	return e
}

// WithDetails attaches extra context
func (e *ErrorDetail) WithDetails(details interface{}) *ErrorDetail {
	e.Details = details
	return e
}

// NewErrorResponse creates a standard error envelope
func NewErrorResponse(detail *ErrorDetail) *ErrorResponse {
	return &ErrorResponse{
		Success:   false,
		Message:   detail.Message,
		Error:     detail,
		Timestamp: time.Now(),
	}
}

// MessageResponse is the plain acknowledgement several mutations return.
type MessageResponse struct {
	Message string `json:"message"`
}

// NewMessageResponse formats a plain acknowledgement
func NewMessageResponse(format string, args ...interface{}) MessageResponse {
	return MessageResponse{Message: fmt.Sprintf(format, args...)}
}

// PaginationInfo describes the page window of a list response.
type PaginationInfo struct {
	CurrentPage int   `json:"currentPage"`
	TotalPages  int   `json:"totalPages"`
	PageSize    int   `json:"pageSize"`
	TotalItems  int64 `json:"totalItems"`
}

// CourseList is the paginated course collection.
type CourseList struct {
	Items      []Course       `json:"items"`
	TotalCount int64          `json:"totalCount"`
	Pagination PaginationInfo `json:"pagination"`
}

// EnrollmentList is the paginated enrollment collection.
type EnrollmentList struct {
	Items      []Enrollment   `json:"items"`
	TotalCount int64          `json:"totalCount"`
	Pagination PaginationInfo `json:"pagination"`
}

// StudentList is the paginated student collection.
type StudentList struct {
	Items      []Student      `json:"items"`
	TotalCount int64          `json:"totalCount"`
	Pagination PaginationInfo `json:"pagination"`
}

// GradeList is the paginated grade collection.
type GradeList struct {
	Items      []Grade        `json:"items"`
	TotalCount int64          `json:"totalCount"`
	Pagination PaginationInfo `json:"pagination"`
}

// NotificationList is the paginated notification collection.
type NotificationList struct {
	Items      []Notification `json:"items"`
	TotalCount int64          `json:"totalCount"`
	Pagination PaginationInfo `json:"pagination"`
}

// UserList is the paginated user collection.
type UserList struct {
	Items      []User         `json:"items"`
	TotalCount int64          `json:"totalCount"`
	Pagination PaginationInfo `json:"pagination"`
}
