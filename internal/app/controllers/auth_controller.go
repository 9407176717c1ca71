package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/openlms/lms/internal/app/services"
	"github.com/openlms/lms/internal/middleware"
	"github.com/openlms/lms/pkg/api"
)

// AuthController handles authentication endpoints
type AuthController struct {
	authService services.AuthService
}

// NewAuthController creates a new AuthController
func NewAuthController(authService services.AuthService) *AuthController {
	return &AuthController{authService: authService}
}

// Login checks credentials and returns a signed access token
// @Summary Log in
// @Tags auth
// @Accept json
// @Produce json
// @Param request body api.LoginRequest true "Credentials"
// @Success 200 {object} api.LoginResponse
// @Failure 400 {object} api.ErrorResponse
// @Failure 401 {object} api.ErrorResponse
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req api.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.BindError(ctx, err)
		return
	}

	resp, err := c.authService.Login(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// Register creates a user profile with login credentials
// @Summary Register
// @Tags auth
// @Accept json
// @Produce json
// @Param request body api.RegisterRequest true "Registration payload"
// @Success 201 {object} api.MessageResponse
// @Failure 400 {object} api.ErrorResponse
// @Failure 409 {object} api.ErrorResponse
// @Router /auth/register [post]
func (c *AuthController) Register(ctx *gin.Context) {
	var req api.RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.BindError(ctx, err)
		return
	}

	account, err := c.authService.Register(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, api.NewMessageResponse("User %s registered", account.UserID))
}
