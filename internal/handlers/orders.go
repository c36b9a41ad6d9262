package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"photoprint-backend/internal/logging"
	"photoprint-backend/internal/middleware"
	"photoprint-backend/internal/models"
	"photoprint-backend/internal/orders"
	"photoprint-backend/internal/wizard"
)

var errNoLedger = errors.New("order ledger not configured")

type OrdersHandler struct {
	ledger orders.Ledger
}

func NewOrdersHandler(ledger orders.Ledger) *OrdersHandler {
	return &OrdersHandler{ledger: ledger}
}

// GetOrder godoc
// @Summary     Get a submitted order
// @Description Returns the acknowledgement recorded for an order number placed by the calling session
// @Tags        orders
// @Produce     json
// @Param       order_number path string true "Order number"
// @Success     200 {object} models.OrderResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /orders/{order_number} [get]
func (h *OrdersHandler) GetOrder(c *gin.Context) {
	if h.ledger == nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: errNoLedger.Error()})
		return
	}

	sessionID := c.GetString(middleware.SessionIDKey)
	if sessionID == "" {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "session not found"})
		return
	}

	receipt, err := h.ledger.Get(c.Request.Context(), sessionID, c.Param("order_number"))
	if errors.Is(err, orders.ErrNotFound) {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "order not found"})
		return
	}
	if err != nil {
		logging.FromContext(c.Request.Context()).Error("failed to get order", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to get order",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.OrderResponse{Order: receipt})
}

// ListOrders godoc
// @Summary     Recent orders
// @Description Operator-only listing of every acknowledged order
// @Tags        orders
// @Produce     json
// @Security    Bearer
// @Param       limit query int false "Maximum number of orders (default 20)"
// @Success     200 {object} models.OrderListResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /orders [get]
func (h *OrdersHandler) ListOrders(c *gin.Context) {
	if h.ledger == nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: errNoLedger.Error()})
		return
	}

	limit := 20
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid limit"})
			return
		}
		limit = n
	}

	list, err := h.ledger.Recent(c.Request.Context(), limit)
	if err != nil {
		logging.FromContext(c.Request.Context()).Error("failed to list orders", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to list orders",
			Message: err.Error(),
		})
		return
	}
	if list == nil {
		list = []wizard.Receipt{}
	}
	c.JSON(http.StatusOK, models.OrderListResponse{Orders: list})
}
