package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/openlms/lms/internal/app/services"
	"github.com/openlms/lms/internal/middleware"
	"github.com/openlms/lms/internal/pkg/helpers"
	"github.com/openlms/lms/pkg/api"
)

// studentPageSize keeps the roster screens usable without paging
// through dozens of requests.
const studentPageSize = 200

// StudentController handles student profile endpoints
type StudentController struct {
	studentService services.StudentService
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService services.StudentService) *StudentController {
	return &StudentController{studentService: studentService}
}

// ListStudents returns a page of students
// @Summary List students
// @Tags students
// @Produce json
// @Param search query string false "Substring matched against ID and major"
// @Param sort query string false "Sort column" default(StudentID)
// @Param order query string false "ASC or DESC" default(ASC)
// @Param page query int false "1-based page number" default(1)
// @Param limit query int false "Page size" default(200)
// @Success 200 {object} api.StudentList
// @Failure 400 {object} api.ErrorResponse
// @Router /students [get]
func (c *StudentController) ListStudents(ctx *gin.Context) {
	params := helpers.ParseListParams(ctx, "StudentID", studentPageSize)

	students, total, err := c.studentService.ListStudents(ctx, listParams(params))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, api.StudentList{
		Items:      toAPIStudents(students),
		TotalCount: total,
		Pagination: helpers.NewPaginationInfo(total, params.Page, params.Limit),
	})
}

// GetStudent returns one student
// @Summary Get student by ID
// @Tags students
// @Produce json
// @Param id path string true "Student ID"
// @Success 200 {object} api.Student
// @Failure 404 {object} api.ErrorResponse
// @Router /students/{id} [get]
func (c *StudentController) GetStudent(ctx *gin.Context) {
	student, err := c.studentService.GetStudentByID(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, toAPIStudent(student))
}

// GetStudentsByDepartment returns every student of one department
// @Summary List a department's students
// @Tags students
// @Produce json
// @Param deptId path string true "Department ID"
// @Success 200 {object} []api.Student
// @Failure 400 {object} api.ErrorResponse
// @Router /students/department/{deptId} [get]
func (c *StudentController) GetStudentsByDepartment(ctx *gin.Context) {
	students, err := c.studentService.GetStudentsByDepartment(ctx, ctx.Param("deptId"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, toAPIStudents(students))
}

// CreateStudent stores a new student
// @Summary Create a student
// @Tags students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body api.CreateStudentRequest true "Student payload"
// @Success 201 {object} api.Student
// @Failure 400 {object} api.ErrorResponse
// @Failure 409 {object} api.ErrorResponse
// @Router /students [post]
func (c *StudentController) CreateStudent(ctx *gin.Context) {
	var req api.CreateStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.BindError(ctx, err)
		return
	}

	student, err := c.studentService.CreateStudent(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, toAPIStudent(student))
}

// CreateStudentTx stores a new student through the transactional path
// @Summary Create a student transactionally
// @Tags students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body api.CreateStudentRequest true "Student payload"
// @Success 201 {object} api.Student
// @Failure 400 {object} api.ErrorResponse
// @Failure 409 {object} api.ErrorResponse
// @Router /students/procedure [post]
func (c *StudentController) CreateStudentTx(ctx *gin.Context) {
	var req api.CreateStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.BindError(ctx, err)
		return
	}

	student, err := c.studentService.CreateStudentTx(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, toAPIStudent(student))
}

// UpdateStudent writes the supplied fields of a student
// @Summary Update a student
// @Tags students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Student ID"
// @Param request body api.UpdateStudentRequest true "Fields to change"
// @Success 200 {object} api.Student
// @Failure 400 {object} api.ErrorResponse
// @Failure 404 {object} api.ErrorResponse
// @Router /students/{id} [patch]
func (c *StudentController) UpdateStudent(ctx *gin.Context) {
	var req api.UpdateStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.BindError(ctx, err)
		return
	}

	student, err := c.studentService.UpdateStudent(ctx, ctx.Param("id"), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, toAPIStudent(student))
}

// DeleteStudent removes a student
// @Summary Delete a student
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param id path string true "Student ID"
// @Success 200 {object} api.MessageResponse
// @Failure 404 {object} api.ErrorResponse
// @Router /students/{id} [delete]
func (c *StudentController) DeleteStudent(ctx *gin.Context) {
	id := ctx.Param("id")
	if err := c.studentService.DeleteStudent(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, api.NewMessageResponse("Student %s deleted", id))
}
