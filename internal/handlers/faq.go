package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"photoprint-backend/internal/models"
	"photoprint-backend/internal/session"
)

type FAQHandler struct {
	store *session.Store
}

func NewFAQHandler(store *session.Store) *FAQHandler {
	return &FAQHandler{store: store}
}

// GetFAQ godoc
// @Summary     FAQ entries
// @Tags        faq
// @Produce     json
// @Success     200 {object} models.FAQResponse
// @Router      /faq [get]
func (h *FAQHandler) GetFAQ(c *gin.Context) {
	sess, ok := currentSession(c, h.store)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, models.FAQResponse{Items: sess.FAQ.Items(), Open: sess.FAQ.Open()})
}

// Toggle godoc
// @Summary     Expand or collapse an FAQ entry
// @Description Opening an entry closes any other open entry
// @Tags        faq
// @Produce     json
// @Param       index path int true "Entry index"
// @Success     200 {object} models.FAQResponse
// @Failure     404 {object} models.ErrorResponse
// @Router      /faq/{index}/toggle [post]
func (h *FAQHandler) Toggle(c *gin.Context) {
	sess, ok := currentSession(c, h.store)
	if !ok {
		return
	}
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid index"})
		return
	}
	if err := sess.FAQ.Toggle(index); err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "faq entry not found", Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, models.FAQResponse{Items: sess.FAQ.Items(), Open: sess.FAQ.Open()})
}
