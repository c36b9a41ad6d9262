package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"photoprint-backend/internal/models"
	"photoprint-backend/internal/session"
)

type HealthHandler struct {
	store  *session.Store
	ledger string
}

func NewHealthHandler(store *session.Store, ledger string) *HealthHandler {
	return &HealthHandler{store: store, ledger: ledger}
}

// Health godoc
// @Summary     Health check
// @Description Returns the health status of the API
// @Tags        health
// @Accept      json
// @Produce     json
// @Success     200 {object} models.HealthResponse
// @Router      /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	response := models.HealthResponse{
		Status:   "ok",
		Sessions: h.store.Len(),
		Ledger:   h.ledger,
	}
	c.JSON(http.StatusOK, response)
}
