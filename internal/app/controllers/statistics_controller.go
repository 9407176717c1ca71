package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/openlms/lms/internal/app/services"
	"github.com/openlms/lms/internal/middleware"
	"github.com/openlms/lms/pkg/api"
)

// StatisticsController handles dashboard counter endpoints
type StatisticsController struct {
	statisticsService services.StatisticsService
}

// NewStatisticsController creates a new StatisticsController
func NewStatisticsController(statisticsService services.StatisticsService) *StatisticsController {
	return &StatisticsController{statisticsService: statisticsService}
}

func (c *StatisticsController) respondTotal(ctx *gin.Context, count func(context.Context) (int64, error)) {
	total, err := count(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, api.TotalCount{Total: total})
}

// TotalUsers counts user profiles
// @Summary Total users
// @Tags statistics
// @Produce json
// @Success 200 {object} api.TotalCount
// @Router /stats/total-users [get]
func (c *StatisticsController) TotalUsers(ctx *gin.Context) {
	c.respondTotal(ctx, c.statisticsService.TotalUsers)
}

// TotalClasses counts enrollments
// @Summary Total classes
// @Tags statistics
// @Produce json
// @Success 200 {object} api.TotalCount
// @Router /stats/total-classes [get]
func (c *StatisticsController) TotalClasses(ctx *gin.Context) {
	c.respondTotal(ctx, c.statisticsService.TotalClasses)
}

// TotalCourses counts courses
// @Summary Total courses
// @Tags statistics
// @Produce json
// @Success 200 {object} api.TotalCount
// @Router /stats/total-courses [get]
func (c *StatisticsController) TotalCourses(ctx *gin.Context) {
	c.respondTotal(ctx, c.statisticsService.TotalCourses)
}

// TotalAssignments counts assessments
// @Summary Total assignments
// @Tags statistics
// @Produce json
// @Success 200 {object} api.TotalCount
// @Router /stats/total-assignments [get]
func (c *StatisticsController) TotalAssignments(ctx *gin.Context) {
	c.respondTotal(ctx, c.statisticsService.TotalAssignments)
}

// Overview returns the four dashboard counts in one response
// @Summary Dashboard overview
// @Tags statistics
// @Produce json
// @Success 200 {object} api.Overview
// @Router /stats/overview [get]
func (c *StatisticsController) Overview(ctx *gin.Context) {
	overview, err := c.statisticsService.Overview(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, overview)
}
