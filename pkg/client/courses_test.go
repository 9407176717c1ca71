package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openlms/lms/pkg/api"
)

func fakeAPI(t *testing.T, handlers map[string]http.HandlerFunc) *Client {
	t.Helper()

	mux := http.NewServeMux()
	for pattern, h := range handlers {
		mux.HandleFunc(pattern, h)
	}
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	c, err := New(server.URL)
	require.NoError(t, err)
	return c
}

func writeJSON(t *testing.T, w http.ResponseWriter, v interface{}) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

func TestCourseViewUsesDisplayTitle(t *testing.T) {
	display := "Introduction to Databases"
	c := fakeAPI(t, map[string]http.HandlerFunc{
		"/courses/C01": func(w http.ResponseWriter, r *http.Request) {
			count := 42
			writeJSON(t, w, api.Course{
				CourseID:     "C01",
				Name:         "Co so du lieu",
				Description:  &display,
				Credit:       4,
				Duration:     12,
				StudentCount: &count,
			})
		},
	})

	course, err := c.Courses().Get(context.Background(), "C01")
	require.NoError(t, err)

	assert.Equal(t, "Introduction to Databases", course.Name)
	assert.Equal(t, "Co so du lieu", course.OriginalName)
	assert.Equal(t, 42, course.StudentCount)
}

func TestCourseViewFallsBackToOriginalTitle(t *testing.T) {
	c := fakeAPI(t, map[string]http.HandlerFunc{
		"/courses/C02": func(w http.ResponseWriter, r *http.Request) {
			writeJSON(t, w, api.Course{CourseID: "C02", Name: "Networks", Credit: 3, Duration: 10})
		},
	})

	course, err := c.Courses().Get(context.Background(), "C02")
	require.NoError(t, err)

	assert.Equal(t, "Networks", course.Name)
	assert.Equal(t, 0, course.StudentCount, "missing count renders as zero")
}

func TestCoursesWithStudentCounts(t *testing.T) {
	c := fakeAPI(t, map[string]http.HandlerFunc{
		"/courses": func(w http.ResponseWriter, r *http.Request) {
			writeJSON(t, w, api.CourseList{
				Items: []api.Course{
					{CourseID: "C01", Name: "Databases"},
					{CourseID: "C02", Name: "Networks"},
					{CourseID: "C03", Name: "Compilers"},
				},
				TotalCount: 3,
			})
		},
		"/enrollments": func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "200", r.URL.Query().Get("limit"), "enrollments are fetched at the page cap")
			writeJSON(t, w, api.EnrollmentList{
				Items: []api.Enrollment{
					{EnrollID: "E01", CourseID: "C01"},
					{EnrollID: "E02", CourseID: "C01"},
					{EnrollID: "E03", CourseID: "C02"},
				},
				TotalCount: 3,
			})
		},
	})

	courses, total, err := c.Courses().CoursesWithStudentCounts(context.Background(), ListOptions{})
	require.NoError(t, err)

	assert.Equal(t, int64(3), total)
	require.Len(t, courses, 3)
	assert.Equal(t, 2, courses[0].StudentCount)
	assert.Equal(t, 1, courses[1].StudentCount)
	assert.Equal(t, 0, courses[2].StudentCount)
}

func TestCoursesWithStudentCountsPropagatesFailure(t *testing.T) {
	c := fakeAPI(t, map[string]http.HandlerFunc{
		"/courses": func(w http.ResponseWriter, r *http.Request) {
			writeJSON(t, w, api.CourseList{})
		},
		"/enrollments": func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"message":"Internal server error"}`))
		},
	})

	_, _, err := c.Courses().CoursesWithStudentCounts(context.Background(), ListOptions{})
	assert.Error(t, err)
}

func TestCourseListPassesQueryOptions(t *testing.T) {
	c := fakeAPI(t, map[string]http.HandlerFunc{
		"/courses": func(w http.ResponseWriter, r *http.Request) {
			q := r.URL.Query()
			assert.Equal(t, "2", q.Get("page"))
			assert.Equal(t, "25", q.Get("limit"))
			assert.Equal(t, "Credit", q.Get("sort"))
			assert.Equal(t, "DESC", q.Get("order"))
			assert.Equal(t, "data", q.Get("search"))
			writeJSON(t, w, api.CourseList{})
		},
	})

	_, _, err := c.Courses().List(context.Background(), ListOptions{
		Page:   2,
		Limit:  25,
		Sort:   "Credit",
		Order:  "DESC",
		Search: "data",
	})
	require.NoError(t, err)
}
