package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/openlms/lms/internal/app/services"
	"github.com/openlms/lms/internal/middleware"
	"github.com/openlms/lms/internal/pkg/helpers"
	"github.com/openlms/lms/pkg/api"
)

// NotificationController handles inbox endpoints
type NotificationController struct {
	notificationService services.NotificationService
}

// NewNotificationController creates a new NotificationController
func NewNotificationController(notificationService services.NotificationService) *NotificationController {
	return &NotificationController{notificationService: notificationService}
}

// ListNotifications returns a page of notifications, optionally scoped
// to one recipient via ?userId=
// @Summary List notifications
// @Tags notifications
// @Produce json
// @Param userId query string false "Restrict to one recipient"
// @Param search query string false "Substring matched against content and type"
// @Param sort query string false "Sort column" default(CreatedAt)
// @Param order query string false "ASC or DESC" default(ASC)
// @Param page query int false "1-based page number" default(1)
// @Param limit query int false "Page size" default(10)
// @Success 200 {object} api.NotificationList
// @Failure 400 {object} api.ErrorResponse
// @Router /notifications [get]
func (c *NotificationController) ListNotifications(ctx *gin.Context) {
	params := helpers.ParseListParams(ctx, "CreatedAt", helpers.DefaultPageSize)

	notifications, total, err := c.notificationService.ListNotifications(ctx, listParams(params), ctx.Query("userId"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, api.NotificationList{
		Items:      toAPINotifications(notifications),
		TotalCount: total,
		Pagination: helpers.NewPaginationInfo(total, params.Page, params.Limit),
	})
}

// GetNotification returns one notification
// @Summary Get notification by ID
// @Tags notifications
// @Produce json
// @Param id path string true "Notification ID"
// @Success 200 {object} api.Notification
// @Failure 404 {object} api.ErrorResponse
// @Router /notifications/{id} [get]
func (c *NotificationController) GetNotification(ctx *gin.Context) {
	n, err := c.notificationService.GetNotificationByID(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, toAPINotification(n))
}

// CreateNotification stores a new notification
// @Summary Create a notification
// @Tags notifications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body api.CreateNotificationRequest true "Notification payload"
// @Success 201 {object} api.Notification
// @Failure 400 {object} api.ErrorResponse
// @Failure 409 {object} api.ErrorResponse
// @Router /notifications [post]
func (c *NotificationController) CreateNotification(ctx *gin.Context) {
	var req api.CreateNotificationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.BindError(ctx, err)
		return
	}

	n, err := c.notificationService.CreateNotification(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, toAPINotification(n))
}

// MarkSeen flips one notification to seen
// @Summary Mark a notification seen
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Param id path string true "Notification ID"
// @Success 200 {object} api.MessageResponse
// @Failure 404 {object} api.ErrorResponse
// @Router /notifications/{id}/seen [patch]
func (c *NotificationController) MarkSeen(ctx *gin.Context) {
	id := ctx.Param("id")
	if err := c.notificationService.MarkSeen(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, api.NewMessageResponse("Notification %s marked as seen", id))
}

// UnreadCount counts one user's unseen notifications
// @Summary Count unseen notifications
// @Tags notifications
// @Produce json
// @Param userId query string true "Recipient user ID"
// @Success 200 {object} api.UnreadCount
// @Failure 400 {object} api.ErrorResponse
// @Router /notifications/unread-count [get]
func (c *NotificationController) UnreadCount(ctx *gin.Context) {
	count, err := c.notificationService.UnreadCount(ctx, ctx.Query("userId"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, api.UnreadCount{Unread: count})
}

// DeleteNotification removes a notification
// @Summary Delete a notification
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Param id path string true "Notification ID"
// @Success 200 {object} api.MessageResponse
// @Failure 404 {object} api.ErrorResponse
// @Router /notifications/{id} [delete]
func (c *NotificationController) DeleteNotification(ctx *gin.Context) {
	id := ctx.Param("id")
	if err := c.notificationService.DeleteNotification(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, api.NewMessageResponse("Notification %s deleted", id))
}
