package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/openlms/lms/internal/app/services"
	"github.com/openlms/lms/internal/middleware"
	"github.com/openlms/lms/internal/pkg/helpers"
	"github.com/openlms/lms/pkg/api"
)

// GradeController handles grade endpoints
type GradeController struct {
	gradeService services.GradeService
}

// NewGradeController creates a new GradeController
func NewGradeController(gradeService services.GradeService) *GradeController {
	return &GradeController{gradeService: gradeService}
}

// ListGrades returns a page of grades
// @Summary List grades
// @Tags grades
// @Produce json
// @Param search query string false "Substring matched against student and assessment IDs"
// @Param sort query string false "Sort column" default(GradeID)
// @Param order query string false "ASC or DESC" default(ASC)
// @Param page query int false "1-based page number" default(1)
// @Param limit query int false "Page size" default(10)
// @Success 200 {object} api.GradeList
// @Failure 400 {object} api.ErrorResponse
// @Router /grades [get]
func (c *GradeController) ListGrades(ctx *gin.Context) {
	params := helpers.ParseListParams(ctx, "GradeID", helpers.DefaultPageSize)

	grades, total, err := c.gradeService.ListGrades(ctx, listParams(params))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, api.GradeList{
		Items:      toAPIGrades(grades),
		TotalCount: total,
		Pagination: helpers.NewPaginationInfo(total, params.Page, params.Limit),
	})
}

// GetGrade returns one grade
// @Summary Get grade by ID
// @Tags grades
// @Produce json
// @Param id path string true "Grade ID"
// @Success 200 {object} api.Grade
// @Failure 404 {object} api.ErrorResponse
// @Router /grades/{id} [get]
func (c *GradeController) GetGrade(ctx *gin.Context) {
	grade, err := c.gradeService.GetGradeByID(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, toAPIGrade(grade))
}

// GetGradesByStudent returns every grade of one student
// @Summary List a student's grades
// @Tags grades
// @Produce json
// @Param studentId path string true "Student ID"
// @Success 200 {object} []api.Grade
// @Failure 400 {object} api.ErrorResponse
// @Router /grades/student/{studentId} [get]
func (c *GradeController) GetGradesByStudent(ctx *gin.Context) {
	grades, err := c.gradeService.GetGradesByStudent(ctx, ctx.Param("studentId"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, toAPIGrades(grades))
}

// CreateGrade records a new grade
// @Summary Record a grade
// @Tags grades
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body api.CreateGradeRequest true "Grade payload"
// @Success 201 {object} api.Grade
// @Failure 400 {object} api.ErrorResponse
// @Failure 409 {object} api.ErrorResponse
// @Router /grades [post]
func (c *GradeController) CreateGrade(ctx *gin.Context) {
	var req api.CreateGradeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.BindError(ctx, err)
		return
	}

	grade, err := c.gradeService.CreateGrade(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, toAPIGrade(grade))
}

// UpdateGrade writes the supplied fields of a grade
// @Summary Update a grade
// @Tags grades
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Grade ID"
// @Param request body api.UpdateGradeRequest true "Fields to change"
// @Success 200 {object} api.Grade
// @Failure 400 {object} api.ErrorResponse
// @Failure 404 {object} api.ErrorResponse
// @Router /grades/{id} [patch]
func (c *GradeController) UpdateGrade(ctx *gin.Context) {
	var req api.UpdateGradeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.BindError(ctx, err)
		return
	}

	grade, err := c.gradeService.UpdateGrade(ctx, ctx.Param("id"), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, toAPIGrade(grade))
}

// DeleteGrade removes a grade
// @Summary Delete a grade
// @Tags grades
// @Produce json
// @Security BearerAuth
// @Param id path string true "Grade ID"
// @Success 200 {object} api.MessageResponse
// @Failure 404 {object} api.ErrorResponse
// @Router /grades/{id} [delete]
func (c *GradeController) DeleteGrade(ctx *gin.Context) {
	id := ctx.Param("id")
	if err := c.gradeService.DeleteGrade(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, api.NewMessageResponse("Grade %s deleted", id))
}
