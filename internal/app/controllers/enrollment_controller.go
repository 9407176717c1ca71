package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/openlms/lms/internal/app/services"
	"github.com/openlms/lms/internal/middleware"
	"github.com/openlms/lms/internal/pkg/helpers"
	"github.com/openlms/lms/pkg/api"
)

// EnrollmentController handles enrollment endpoints
type EnrollmentController struct {
	enrollmentService services.EnrollmentService
}

// NewEnrollmentController creates a new EnrollmentController
func NewEnrollmentController(enrollmentService services.EnrollmentService) *EnrollmentController {
	return &EnrollmentController{enrollmentService: enrollmentService}
}

// ListEnrollments returns a page of enrollments with display names
// @Summary List enrollments
// @Tags enrollments
// @Produce json
// @Param search query string false "Substring matched against student and course IDs"
// @Param sort query string false "Sort column" default(EnrollID)
// @Param order query string false "ASC or DESC" default(ASC)
// @Param page query int false "1-based page number" default(1)
// @Param limit query int false "Page size" default(10)
// @Success 200 {object} api.EnrollmentList
// @Failure 400 {object} api.ErrorResponse
// @Router /enrollments [get]
func (c *EnrollmentController) ListEnrollments(ctx *gin.Context) {
	params := helpers.ParseListParams(ctx, "EnrollID", helpers.DefaultPageSize)

	enrollments, total, err := c.enrollmentService.ListEnrollments(ctx, listParams(params))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, api.EnrollmentList{
		Items:      toAPIEnrollments(enrollments),
		TotalCount: total,
		Pagination: helpers.NewPaginationInfo(total, params.Page, params.Limit),
	})
}

// GetEnrollment returns one enrollment
// @Summary Get enrollment by ID
// @Tags enrollments
// @Produce json
// @Param id path string true "Enrollment ID"
// @Success 200 {object} api.Enrollment
// @Failure 404 {object} api.ErrorResponse
// @Router /enrollments/{id} [get]
func (c *EnrollmentController) GetEnrollment(ctx *gin.Context) {
	enrollment, err := c.enrollmentService.GetEnrollmentByID(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, toAPIEnrollment(enrollment))
}

// CreateEnrollment stores a new enrollment
// @Summary Create an enrollment
// @Tags enrollments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body api.CreateEnrollmentRequest true "Enrollment payload"
// @Success 201 {object} api.Enrollment
// @Failure 400 {object} api.ErrorResponse
// @Failure 409 {object} api.ErrorResponse
// @Router /enrollments [post]
func (c *EnrollmentController) CreateEnrollment(ctx *gin.Context) {
	var req api.CreateEnrollmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.BindError(ctx, err)
		return
	}

	enrollment, err := c.enrollmentService.CreateEnrollment(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, toAPIEnrollment(enrollment))
}

// UpdateEnrollment writes the supplied fields of an enrollment
// @Summary Update an enrollment
// @Tags enrollments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Enrollment ID"
// @Param request body api.UpdateEnrollmentRequest true "Fields to change"
// @Success 200 {object} api.Enrollment
// @Failure 400 {object} api.ErrorResponse
// @Failure 404 {object} api.ErrorResponse
// @Router /enrollments/{id} [put]
func (c *EnrollmentController) UpdateEnrollment(ctx *gin.Context) {
	var req api.UpdateEnrollmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.BindError(ctx, err)
		return
	}

	enrollment, err := c.enrollmentService.UpdateEnrollment(ctx, ctx.Param("id"), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, toAPIEnrollment(enrollment))
}

// DeleteEnrollment removes an enrollment
// @Summary Delete an enrollment
// @Tags enrollments
// @Produce json
// @Security BearerAuth
// @Param id path string true "Enrollment ID"
// @Success 200 {object} api.MessageResponse
// @Failure 404 {object} api.ErrorResponse
// @Router /enrollments/{id} [delete]
func (c *EnrollmentController) DeleteEnrollment(ctx *gin.Context) {
	id := ctx.Param("id")
	if err := c.enrollmentService.DeleteEnrollment(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, api.NewMessageResponse("Enrollment %s deleted", id))
}
