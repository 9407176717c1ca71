package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/openlms/lms/internal/app/services"
	"github.com/openlms/lms/internal/middleware"
	"github.com/openlms/lms/internal/pkg/helpers"
	"github.com/openlms/lms/pkg/api"
)

// CourseController handles course catalog endpoints
type CourseController struct {
	courseService services.CourseService
}

// NewCourseController creates a new CourseController
func NewCourseController(courseService services.CourseService) *CourseController {
	return &CourseController{courseService: courseService}
}

// ListCourses returns a page of courses
// @Summary List courses
// @Description Retrieves a paginated course list with optional search and sorting
// @Tags courses
// @Produce json
// @Param search query string false "Substring matched against name and description"
// @Param sort query string false "Sort column" default(Name)
// @Param order query string false "ASC or DESC" default(ASC)
// @Param page query int false "1-based page number" default(1)
// @Param limit query int false "Page size" default(10)
// @Success 200 {object} api.CourseList
// @Failure 400 {object} api.ErrorResponse
// @Router /courses [get]
func (c *CourseController) ListCourses(ctx *gin.Context) {
	params := helpers.ParseListParams(ctx, "Name", helpers.DefaultPageSize)

	courses, total, err := c.courseService.ListCourses(ctx, listParams(params))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, api.CourseList{
		Items:      toAPICourses(courses),
		TotalCount: total,
		Pagination: helpers.NewPaginationInfo(total, params.Page, params.Limit),
	})
}

// GetCourse returns one course with its enrollment count
// @Summary Get course by ID
// @Tags courses
// @Produce json
// @Param id path string true "Course ID"
// @Success 200 {object} api.Course
// @Failure 404 {object} api.ErrorResponse
// @Router /courses/{id} [get]
func (c *CourseController) GetCourse(ctx *gin.Context) {
	course, err := c.courseService.GetCourseByID(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, toAPICourse(course))
}

// CreateCourse stores a new course
// @Summary Create a course
// @Tags courses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body api.CreateCourseRequest true "Course payload"
// @Success 201 {object} api.Course
// @Failure 400 {object} api.ErrorResponse
// @Failure 409 {object} api.ErrorResponse
// @Router /courses [post]
func (c *CourseController) CreateCourse(ctx *gin.Context) {
	var req api.CreateCourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.BindError(ctx, err)
		return
	}

	course, err := c.courseService.CreateCourse(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, toAPICourse(course))
}

// UpdateCourse writes the supplied fields of a course
// @Summary Update a course
// @Tags courses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Course ID"
// @Param request body api.UpdateCourseRequest true "Fields to change"
// @Success 200 {object} api.Course
// @Failure 400 {object} api.ErrorResponse
// @Failure 404 {object} api.ErrorResponse
// @Router /courses/{id} [put]
func (c *CourseController) UpdateCourse(ctx *gin.Context) {
	var req api.UpdateCourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.BindError(ctx, err)
		return
	}

	course, err := c.courseService.UpdateCourse(ctx, ctx.Param("id"), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, toAPICourse(course))
}

// DeleteCourse removes a course. When enrollments still reference it
// the delete is reported back as a message instead of an error.
// @Summary Delete a course
// @Tags courses
// @Produce json
// @Security BearerAuth
// @Param id path string true "Course ID"
// @Success 200 {object} api.MessageResponse
// @Failure 404 {object} api.ErrorResponse
// @Router /courses/{id} [delete]
func (c *CourseController) DeleteCourse(ctx *gin.Context) {
	id := ctx.Param("id")
	if err := c.courseService.DeleteCourse(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, api.NewMessageResponse("Course %s deleted", id))
}
