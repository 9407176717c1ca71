package controllers

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openlms/lms/pkg/api"
)

type stubStatisticsService struct {
	users, classes, courses, assignments int64
	err                                  error
}

func (s *stubStatisticsService) TotalUsers(context.Context) (int64, error) {
	return s.users, s.err
}

func (s *stubStatisticsService) TotalClasses(context.Context) (int64, error) {
	return s.classes, s.err
}

func (s *stubStatisticsService) TotalCourses(context.Context) (int64, error) {
	return s.courses, s.err
}

func (s *stubStatisticsService) TotalAssignments(context.Context) (int64, error) {
	return s.assignments, s.err
}

func (s *stubStatisticsService) Overview(context.Context) (*api.Overview, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &api.Overview{
		TotalUsers:       s.users,
		TotalClasses:     s.classes,
		TotalCourses:     s.courses,
		TotalAssignments: s.assignments,
	}, nil
}

func statisticsRouter(svc *stubStatisticsService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	c := NewStatisticsController(svc)
	router.GET("/stats/total-users", c.TotalUsers)
	router.GET("/stats/total-courses", c.TotalCourses)
	router.GET("/stats/overview", c.Overview)
	return router
}

func TestTotalCounters(t *testing.T) {
	svc := &stubStatisticsService{users: 120, courses: 31}
	router := statisticsRouter(svc)

	w := doRequest(router, http.MethodGet, "/stats/total-users", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"total":120}`, w.Body.String())

	w = doRequest(router, http.MethodGet, "/stats/total-courses", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"total":31}`, w.Body.String())
}

func TestOverview(t *testing.T) {
	svc := &stubStatisticsService{users: 120, classes: 240, courses: 31, assignments: 64}

	w := doRequest(statisticsRouter(svc), http.MethodGet, "/stats/overview", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"totalUsers":120,"totalClasses":240,"totalCourses":31,"totalAssignments":64}`, w.Body.String())
}

func TestOverviewUpstreamFailure(t *testing.T) {
	svc := &stubStatisticsService{err: errors.New("pool exhausted")}

	w := doRequest(statisticsRouter(svc), http.MethodGet, "/stats/overview", "")
	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "pool exhausted", "internal detail stays out of the payload")
}
