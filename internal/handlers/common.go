package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"photoprint-backend/internal/middleware"
	"photoprint-backend/internal/models"
	"photoprint-backend/internal/session"
	"photoprint-backend/internal/wizard"
)

// currentSession resolves the visitor session set by SessionMiddleware.
func currentSession(c *gin.Context, store *session.Store) (*session.Session, bool) {
	id := c.GetString(middleware.SessionIDKey)
	if id == "" {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "session not found"})
		return nil, false
	}
	return store.Get(id), true
}

// statusFor maps a wizard rejection to an HTTP status.
func statusFor(err error) int {
	ve, ok := wizard.AsValidation(err)
	if !ok {
		return http.StatusInternalServerError
	}
	switch ve.Kind {
	case wizard.KindStepPrecondition:
		return http.StatusUnprocessableEntity
	case wizard.KindFileTooLarge:
		return http.StatusRequestEntityTooLarge
	case wizard.KindUnsupportedFile:
		return http.StatusUnsupportedMediaType
	default:
		return http.StatusBadRequest
	}
}

func errorResponse(err error) *models.ErrorResponse {
	var ve *wizard.ValidationError
	if errors.As(err, &ve) {
		return &models.ErrorResponse{Error: string(ve.Kind), Message: ve.Message}
	}
	return &models.ErrorResponse{Error: "internal_error", Message: err.Error()}
}

// renderWizard writes the current view with the visible notification. A nil
// err renders 200.
func renderWizard(c *gin.Context, sess *session.Session, err error) {
	resp := models.WizardResponse{
		View:         sess.Wizard.View(),
		Notification: sess.Notices.Current(),
	}
	status := http.StatusOK
	if err != nil {
		status = statusFor(err)
		resp.Error = errorResponse(err)
	}
	c.JSON(status, resp)
}

func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request", Message: err.Error()})
}
