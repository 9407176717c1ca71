package controllers

import (
	"github.com/openlms/lms/internal/app/models"
	"github.com/openlms/lms/internal/app/repositories"
	"github.com/openlms/lms/internal/pkg/helpers"
	"github.com/openlms/lms/pkg/api"
)

// The functions here are the only place storage rows become wire rows.
// Both tiers share pkg/api, so a field added there shows up on each
// side or compiles nowhere.

func listParams(p helpers.PageParams) repositories.ListParams {
	return repositories.ListParams{
		Search: p.Search,
		Sort:   p.Sort,
		Order:  p.Order,
		Page:   p.Page,
		Limit:  p.Limit,
	}
}

func toAPICourse(c *models.Course) api.Course {
	return api.Course{
		CourseID:       c.CourseID,
		Name:           c.Name,
		Description:    c.Description,
		Credit:         c.Credit,
		Duration:       c.Duration,
		DeptID:         c.DeptID,
		InstructorID:   c.InstructorID,
		InstructorName: c.InstructorName,
		StudentCount:   c.StudentCount,
	}
}

func toAPICourses(courses []models.Course) []api.Course {
	out := make([]api.Course, 0, len(courses))
	for i := range courses {
		out = append(out, toAPICourse(&courses[i]))
	}
	return out
}

func toAPIEnrollment(e *models.Enrollment) api.Enrollment {
	return api.Enrollment{
		EnrollID:       e.EnrollID,
		StudentID:      e.StudentID,
		CourseID:       e.CourseID,
		Status:         string(e.Status),
		Semester:       e.Semester,
		GradeFinal:     e.GradeFinal,
		Schedule:       e.Schedule,
		InstructorID:   e.InstructorID,
		StudentName:    e.StudentName,
		CourseName:     e.CourseName,
		InstructorName: e.InstructorName,
	}
}

func toAPIEnrollments(enrollments []models.Enrollment) []api.Enrollment {
	out := make([]api.Enrollment, 0, len(enrollments))
	for i := range enrollments {
		out = append(out, toAPIEnrollment(&enrollments[i]))
	}
	return out
}

func toAPIStudent(s *models.Student) api.Student {
	return api.Student{
		StudentID:      s.StudentID,
		EnrollmentYear: s.EnrollmentYear,
		Major:          s.Major,
		DeptID:         s.DeptID,
	}
}

func toAPIStudents(students []models.Student) []api.Student {
	out := make([]api.Student, 0, len(students))
	for i := range students {
		out = append(out, toAPIStudent(&students[i]))
	}
	return out
}

func toAPIGrade(g *models.Grade) api.Grade {
	return api.Grade{
		GradeID:      g.GradeID,
		StudentID:    g.StudentID,
		AssessID:     g.AssessID,
		Score:        g.Score,
		GradeLetter:  g.GradeLetter,
		DateRecorded: g.DateRecorded.Format("2006-01-02"),
	}
}

func toAPIGrades(grades []models.Grade) []api.Grade {
	out := make([]api.Grade, 0, len(grades))
	for i := range grades {
		out = append(out, toAPIGrade(&grades[i]))
	}
	return out
}

func toAPINotification(n *models.Notification) api.Notification {
	return api.Notification{
		NotifID:   n.NotifID,
		Type:      n.Type,
		Content:   n.Content,
		UserID:    n.UserID,
		Status:    n.Status,
		CreatedAt: n.CreatedAt,
	}
}

func toAPINotifications(notifications []models.Notification) []api.Notification {
	out := make([]api.Notification, 0, len(notifications))
	for i := range notifications {
		out = append(out, toAPINotification(&notifications[i]))
	}
	return out
}

func toAPIUser(u *models.User) api.User {
	var dob *string
	if u.DoB != nil {
		s := u.DoB.Format("2006-01-02")
		dob = &s
	}
	return api.User{
		UserID:    u.UserID,
		LastName:  u.LastName,
		FirstName: u.FirstName,
		Email:     u.Email,
		Role:      string(u.Role),
		Phone:     u.Phone,
		Address:   u.Address,
		Age:       u.Age,
		DoB:       dob,
	}
}

func toAPIUsers(users []models.User) []api.User {
	out := make([]api.User, 0, len(users))
	for i := range users {
		out = append(out, toAPIUser(&users[i]))
	}
	return out
}
