package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openlms/lms/internal/app/models"
	"github.com/openlms/lms/internal/app/repositories"
	"github.com/openlms/lms/internal/pkg/apperrors"
	"github.com/openlms/lms/pkg/api"
)

type stubCourseService struct {
	courses   []models.Course
	total     int64
	course    *models.Course
	err       error
	deleteErr error

	gotParams repositories.ListParams
	gotCreate *api.CreateCourseRequest
}

func (s *stubCourseService) ListCourses(_ context.Context, p repositories.ListParams) ([]models.Course, int64, error) {
	s.gotParams = p
	return s.courses, s.total, s.err
}

func (s *stubCourseService) GetCourseByID(_ context.Context, id string) (*models.Course, error) {
	if s.course == nil {
		return nil, s.err
	}
	return s.course, nil
}

func (s *stubCourseService) CreateCourse(_ context.Context, req *api.CreateCourseRequest) (*models.Course, error) {
	s.gotCreate = req
	if s.err != nil {
		return nil, s.err
	}
	return &models.Course{
		CourseID: req.CourseID,
		Name:     req.Name,
		Credit:   req.Credit,
		Duration: req.Duration,
	}, nil
}

func (s *stubCourseService) UpdateCourse(_ context.Context, id string, _ *api.UpdateCourseRequest) (*models.Course, error) {
	if s.course == nil {
		return nil, s.err
	}
	return s.course, nil
}

func (s *stubCourseService) DeleteCourse(_ context.Context, id string) error {
	return s.deleteErr
}

func courseRouter(svc *stubCourseService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	c := NewCourseController(svc)
	router.GET("/courses", c.ListCourses)
	router.GET("/courses/:id", c.GetCourse)
	router.POST("/courses", c.CreateCourse)
	router.DELETE("/courses/:id", c.DeleteCourse)
	return router
}

func doRequest(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestListCoursesResponseShape(t *testing.T) {
	svc := &stubCourseService{
		courses: []models.Course{
			{CourseID: "C01", Name: "Databases", Credit: 4, Duration: 12},
			{CourseID: "C02", Name: "Networks", Credit: 3, Duration: 10},
		},
		total: 17,
	}

	w := doRequest(courseRouter(svc), http.MethodGet, "/courses?page=2&limit=2", "")
	require.Equal(t, http.StatusOK, w.Code)

	var list api.CourseList
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))

	assert.Len(t, list.Items, 2)
	assert.Equal(t, int64(17), list.TotalCount)
	assert.Equal(t, "C01", list.Items[0].CourseID)
	assert.Equal(t, 2, list.Pagination.CurrentPage)
	assert.Equal(t, 9, list.Pagination.TotalPages)

	assert.Equal(t, 2, svc.gotParams.Page)
	assert.Equal(t, 2, svc.gotParams.Limit)
	assert.Equal(t, "Name", svc.gotParams.Sort, "default sort is by name")
}

func TestGetCourseNotFound(t *testing.T) {
	svc := &stubCourseService{err: apperrors.ErrCourseNotFound}

	w := doRequest(courseRouter(svc), http.MethodGet, "/courses/C99", "")
	require.Equal(t, http.StatusNotFound, w.Code)

	var resp api.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, api.ErrorCodeResourceNotFound, resp.Error.Code)
}

func TestCreateCourse(t *testing.T) {
	svc := &stubCourseService{}

	body := `{"CourseID":"C10","Name":"Compilers","Credit":4,"Duration":14}`
	w := doRequest(courseRouter(svc), http.MethodPost, "/courses", body)
	require.Equal(t, http.StatusCreated, w.Code)

	var course api.Course
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &course))
	assert.Equal(t, "C10", course.CourseID)
	assert.Equal(t, 4, course.Credit)

	require.NotNil(t, svc.gotCreate)
	assert.Equal(t, "Compilers", svc.gotCreate.Name)
}

func TestCreateCourseRejectsMissingFields(t *testing.T) {
	svc := &stubCourseService{}

	w := doRequest(courseRouter(svc), http.MethodPost, "/courses", `{"CourseID":"C10"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Nil(t, svc.gotCreate, "service must not be called on a binding failure")
}

func TestCreateCourseValidationError(t *testing.T) {
	svc := &stubCourseService{err: apperrors.NewValidationError("credit must be between 1 and 10")}

	body := `{"CourseID":"C10","Name":"Compilers","Credit":9,"Duration":14}`
	w := doRequest(courseRouter(svc), http.MethodPost, "/courses", body)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp api.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "credit must be between 1 and 10", resp.Message)
}

func TestDeleteCourse(t *testing.T) {
	svc := &stubCourseService{}

	w := doRequest(courseRouter(svc), http.MethodDelete, "/courses/C01", "")
	require.Equal(t, http.StatusOK, w.Code)

	var msg api.MessageResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &msg))
	assert.Equal(t, "Course C01 deleted", msg.Message)
}

func TestDeleteCourseWithEnrollmentsReportsInsteadOfFailing(t *testing.T) {
	svc := &stubCourseService{
		deleteErr: apperrors.NewConstraintError("cannot delete course C01: enrollments still reference it"),
	}

	w := doRequest(courseRouter(svc), http.MethodDelete, "/courses/C01", "")
	require.Equal(t, http.StatusOK, w.Code, "blocked deletes answer 200 with a message")

	var msg api.MessageResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &msg))
	assert.Equal(t, "cannot delete course C01: enrollments still reference it", msg.Message)
}
