package client

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/openlms/lms/pkg/api"
)

// CourseService reads and writes courses through the gateway and maps
// them into dashboard views.
type CourseService struct {
	client *Client
}

// Courses returns the course view service.
func (c *Client) Courses() *CourseService {
	return &CourseService{client: c}
}

func toCourseView(w api.Course) Course {
	view := Course{
		ID:             w.CourseID,
		Name:           w.Name,
		OriginalName:   w.Name,
		Credit:         w.Credit,
		Duration:       w.Duration,
		DeptID:         deref(w.DeptID),
		InstructorID:   deref(w.InstructorID),
		InstructorName: w.InstructorName,
	}
	if w.Description != nil && *w.Description != "" {
		view.Name = *w.Description
	}
	if w.StudentCount != nil {
		view.StudentCount = *w.StudentCount
	}
	return view
}

// List fetches a page of courses.
func (s *CourseService) List(ctx context.Context, opts ListOptions) ([]Course, int64, error) {
	var list api.CourseList
	if err := s.client.Get(ctx, "/courses"+opts.query(), &list); err != nil {
		return nil, 0, err
	}

	views := make([]Course, 0, len(list.Items))
	for _, item := range list.Items {
		views = append(views, toCourseView(item))
	}
	return views, list.TotalCount, nil
}

// Get fetches a single course. The detail endpoint attaches the
// computed student count.
func (s *CourseService) Get(ctx context.Context, courseID string) (Course, error) {
	var wire api.Course
	if err := s.client.Get(ctx, "/courses/"+courseID, &wire); err != nil {
		return Course{}, err
	}
	return toCourseView(wire), nil
}

// Create adds a course and returns its view.
func (s *CourseService) Create(ctx context.Context, req api.CreateCourseRequest) (Course, error) {
	var wire api.Course
	if err := s.client.Post(ctx, "/courses", req, &wire); err != nil {
		return Course{}, err
	}
	return toCourseView(wire), nil
}

// Update applies a partial update and returns the fresh view.
func (s *CourseService) Update(ctx context.Context, courseID string, req api.UpdateCourseRequest) (Course, error) {
	var wire api.Course
	if err := s.client.Patch(ctx, "/courses/"+courseID, req, &wire); err != nil {
		return Course{}, err
	}
	return toCourseView(wire), nil
}

// Delete removes a course. The server answers with a plain message even
// when dependents block the delete, so the message is returned for
// display.
func (s *CourseService) Delete(ctx context.Context, courseID string) (string, error) {
	var msg api.MessageResponse
	if err := s.client.Delete(ctx, "/courses/"+courseID, &msg); err != nil {
		return "", err
	}
	return msg.Message, nil
}

// CoursesWithStudentCounts fetches courses and enrollments concurrently
// and fills in each course's student count from the enrollment rows.
// The list endpoint does not compute counts, so the cross-reference
// happens here.
func (s *CourseService) CoursesWithStudentCounts(ctx context.Context, opts ListOptions) ([]Course, int64, error) {
	var (
		courseList api.CourseList
		enrollList api.EnrollmentList
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return s.client.Get(gctx, "/courses"+opts.query(), &courseList)
	})
	g.Go(func() error {
		enrollOpts := ListOptions{Limit: maxPageSize}
		return s.client.Get(gctx, "/enrollments"+enrollOpts.query(), &enrollList)
	})
	if err := g.Wait(); err != nil {
		return nil, 0, fmt.Errorf("fetching courses with counts: %w", err)
	}

	counts := make(map[string]int, len(courseList.Items))
	for _, e := range enrollList.Items {
		counts[e.CourseID]++
	}

	views := make([]Course, 0, len(courseList.Items))
	for _, item := range courseList.Items {
		view := toCourseView(item)
		view.StudentCount = counts[item.CourseID]
		views = append(views, view)
	}
	return views, courseList.TotalCount, nil
}
