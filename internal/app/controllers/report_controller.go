package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/openlms/lms/internal/app/services"
	"github.com/openlms/lms/internal/middleware"
)

// ReportController handles academic report endpoints
type ReportController struct {
	reportService services.ReportService
}

// NewReportController creates a new ReportController
func NewReportController(reportService services.ReportService) *ReportController {
	return &ReportController{reportService: reportService}
}

// StudentGPA returns one student's GPA and ranking for a semester
// @Summary Student GPA report
// @Tags reports
// @Produce json
// @Param studentId path string true "Student ID"
// @Param semester path string true "Semester tag"
// @Success 200 {object} api.GPAReport
// @Failure 400 {object} api.ErrorResponse
// @Router /reports/gpa/{studentId}/{semester} [get]
func (c *ReportController) StudentGPA(ctx *gin.Context) {
	report, err := c.reportService.StudentGPA(ctx, ctx.Param("studentId"), ctx.Param("semester"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, report)
}

// StudentCredits returns one student's completed credit total
// @Summary Student credits report
// @Tags reports
// @Produce json
// @Param studentId path string true "Student ID"
// @Success 200 {object} api.CreditsReport
// @Failure 400 {object} api.ErrorResponse
// @Router /reports/credits/{studentId} [get]
func (c *ReportController) StudentCredits(ctx *gin.Context) {
	report, err := c.reportService.StudentCredits(ctx, ctx.Param("studentId"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, report)
}

// DepartmentReport returns per-student GPA rows for a department
// @Summary Department GPA report
// @Tags reports
// @Produce json
// @Param deptId path string true "Department ID"
// @Param semester path string true "Semester tag"
// @Success 200 {object} []api.DepartmentReportRow
// @Failure 400 {object} api.ErrorResponse
// @Router /reports/department/{deptId}/{semester} [get]
func (c *ReportController) DepartmentReport(ctx *gin.Context) {
	rows, err := c.reportService.DepartmentReport(ctx, ctx.Param("deptId"), ctx.Param("semester"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, rows)
}

// InstructorStatistics returns per-course stats for an instructor
// @Summary Instructor statistics report
// @Tags reports
// @Produce json
// @Param instructorId path string true "Instructor user ID"
// @Success 200 {object} []api.InstructorStatRow
// @Failure 400 {object} api.ErrorResponse
// @Router /reports/instructor/{instructorId} [get]
func (c *ReportController) InstructorStatistics(ctx *gin.Context) {
	rows, err := c.reportService.InstructorStatistics(ctx, ctx.Param("instructorId"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, rows)
}

// WarningList returns the semester's at-risk students
// @Summary Academic warning list
// @Tags reports
// @Produce json
// @Param semester path string true "Semester tag"
// @Success 200 {object} []api.WarningRow
// @Failure 400 {object} api.ErrorResponse
// @Router /reports/warnings/{semester} [get]
func (c *ReportController) WarningList(ctx *gin.Context) {
	rows, err := c.reportService.WarningList(ctx, ctx.Param("semester"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, rows)
}

// DispatchDeadlineReminders writes reminder notifications for active
// enrollments
// @Summary Dispatch deadline reminders
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Success 200 {object} api.DeadlineDispatchResult
// @Failure 500 {object} api.ErrorResponse
// @Router /reports/notifications/deadlines/send [get]
func (c *ReportController) DispatchDeadlineReminders(ctx *gin.Context) {
	result, err := c.reportService.DispatchDeadlineReminders(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, result)
}
