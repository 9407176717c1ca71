package client

import (
	"context"

	"github.com/openlms/lms/pkg/api"
)

// EnrollmentService reads and writes enrollments through the gateway.
type EnrollmentService struct {
	client *Client
}

// Enrollments returns the enrollment view service.
func (c *Client) Enrollments() *EnrollmentService {
	return &EnrollmentService{client: c}
}

func toEnrollmentView(w api.Enrollment) Enrollment {
	return Enrollment{
		ID:             w.EnrollID,
		StudentID:      w.StudentID,
		StudentName:    w.StudentName,
		CourseID:       w.CourseID,
		CourseName:     w.CourseName,
		Status:         w.Status,
		Semester:       w.Semester,
		GradeFinal:     w.GradeFinal,
		Schedule:       deref(w.Schedule),
		InstructorID:   deref(w.InstructorID),
		InstructorName: w.InstructorName,
	}
}

// List fetches a page of enrollments with student and course names
// already joined in.
func (s *EnrollmentService) List(ctx context.Context, opts ListOptions) ([]Enrollment, int64, error) {
	var list api.EnrollmentList
	if err := s.client.Get(ctx, "/enrollments"+opts.query(), &list); err != nil {
		return nil, 0, err
	}

	views := make([]Enrollment, 0, len(list.Items))
	for _, item := range list.Items {
		views = append(views, toEnrollmentView(item))
	}
	return views, list.TotalCount, nil
}

// Get fetches a single enrollment.
func (s *EnrollmentService) Get(ctx context.Context, enrollID string) (Enrollment, error) {
	var wire api.Enrollment
	if err := s.client.Get(ctx, "/enrollments/"+enrollID, &wire); err != nil {
		return Enrollment{}, err
	}
	return toEnrollmentView(wire), nil
}

// Create adds an enrollment and returns its enriched view.
func (s *EnrollmentService) Create(ctx context.Context, req api.CreateEnrollmentRequest) (Enrollment, error) {
	var wire api.Enrollment
	if err := s.client.Post(ctx, "/enrollments", req, &wire); err != nil {
		return Enrollment{}, err
	}
	return toEnrollmentView(wire), nil
}

// Update applies a partial update and returns the fresh view.
func (s *EnrollmentService) Update(ctx context.Context, enrollID string, req api.UpdateEnrollmentRequest) (Enrollment, error) {
	var wire api.Enrollment
	if err := s.client.Put(ctx, "/enrollments/"+enrollID, req, &wire); err != nil {
		return Enrollment{}, err
	}
	return toEnrollmentView(wire), nil
}

// Delete removes an enrollment and returns the server's message.
func (s *EnrollmentService) Delete(ctx context.Context, enrollID string) (string, error) {
	var msg api.MessageResponse
	if err := s.client.Delete(ctx, "/enrollments/"+enrollID, &msg); err != nil {
		return "", err
	}
	return msg.Message, nil
}
