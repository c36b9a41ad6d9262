package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"photoprint-backend/internal/models"
	"photoprint-backend/internal/session"
)

type NotificationHandler struct {
	store *session.Store
}

func NewNotificationHandler(store *session.Store) *NotificationHandler {
	return &NotificationHandler{store: store}
}

// GetNotification godoc
// @Summary     Visible notification
// @Description Returns the toast currently shown to the visitor, or null once dismissed
// @Tags        notification
// @Produce     json
// @Success     200 {object} models.NotificationResponse
// @Router      /notification [get]
func (h *NotificationHandler) GetNotification(c *gin.Context) {
	sess, ok := currentSession(c, h.store)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, models.NotificationResponse{Notification: sess.Notices.Current()})
}

// DismissNotification godoc
// @Summary     Close the visible notification
// @Tags        notification
// @Produce     json
// @Success     200 {object} models.NotificationResponse
// @Router      /notification [delete]
func (h *NotificationHandler) DismissNotification(c *gin.Context) {
	sess, ok := currentSession(c, h.store)
	if !ok {
		return
	}
	sess.Notices.Dismiss()
	c.JSON(http.StatusOK, models.NotificationResponse{})
}
