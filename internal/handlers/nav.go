package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"photoprint-backend/internal/models"
	"photoprint-backend/internal/scrollspy"
)

// ActiveNav godoc
// @Summary     Resolve the active navigation link
// @Description Given the scroll offset and section geometry, marks at most one link active
// @Tags        nav
// @Accept      json
// @Produce     json
// @Param       request body models.NavRequest true "Scroll state"
// @Success     200 {object} models.NavResponse
// @Failure     400 {object} models.ErrorResponse
// @Router      /nav/active [post]
func ActiveNav(c *gin.Context) {
	var req models.NavRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	c.JSON(http.StatusOK, models.NavResponse{
		Links:  scrollspy.Highlight(req.Links, req.Sections, req.Offset),
		Active: scrollspy.Current(req.Sections, req.Offset),
	})
}
