package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"photoprint-backend/internal/logging"
	"photoprint-backend/internal/models"
	"photoprint-backend/internal/notify"
	"photoprint-backend/internal/session"
	"photoprint-backend/internal/tracking"
)

type TrackingHandler struct {
	store   *session.Store
	tracker *tracking.Tracker
}

func NewTrackingHandler(store *session.Store, tracker *tracking.Tracker) *TrackingHandler {
	return &TrackingHandler{store: store, tracker: tracker}
}

// Track godoc
// @Summary     Track an order
// @Description Looks up an order number. A newer lookup from the same visitor cancels one still in flight.
// @Tags        tracking
// @Accept      json
// @Produce     json
// @Param       request body models.TrackingRequest true "Order number"
// @Success     200 {object} models.TrackingResponse
// @Failure     400 {object} models.TrackingResponse
// @Failure     409 {object} models.TrackingResponse
// @Router      /tracking [post]
func (h *TrackingHandler) Track(c *gin.Context) {
	sess, ok := currentSession(c, h.store)
	if !ok {
		return
	}
	var req models.TrackingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	if !tracking.HasOrderNumber(req.OrderNumber) {
		n := sess.Notices.Show(notify.Error, tracking.MsgOrderNumberRequired)
		c.JSON(http.StatusBadRequest, models.TrackingResponse{
			Notification: &n,
			Error:        &models.ErrorResponse{Error: "missing-required-field", Message: tracking.MsgOrderNumberRequired},
		})
		return
	}
	ctx, done := sess.BeginLookup(c.Request.Context())
	defer done()
	sess.Notices.Show(notify.Info, tracking.MsgLookingUp)

	result, err := h.tracker.Track(ctx, req.OrderNumber)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, models.TrackingResponse{
			Result:       &result,
			Notification: sess.Notices.Current(),
		})
	case errors.Is(err, context.Canceled):
		c.JSON(http.StatusConflict, models.TrackingResponse{
			Error: &models.ErrorResponse{Error: "lookup_superseded", Message: "a newer lookup replaced this one"},
		})
	default:
		logging.FromContext(c.Request.Context()).Error("tracking lookup failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.TrackingResponse{
			Error: &models.ErrorResponse{Error: "lookup_failed", Message: err.Error()},
		})
	}
}
