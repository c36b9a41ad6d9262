package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"photoprint-backend/internal/catalog"
	"photoprint-backend/internal/models"
	"photoprint-backend/internal/wizard"
)

// GetCatalog godoc
// @Summary     Print catalog
// @Description Lists print sizes with prices, paper types, templates and the template gallery
// @Tags        catalog
// @Produce     json
// @Success     200 {object} models.CatalogResponse
// @Router      /catalog [get]
func GetCatalog(c *gin.Context) {
	resp := models.CatalogResponse{
		Gallery:  catalog.Gallery(),
		Quantity: models.QuantityRange{Min: wizard.MinQuantity, Max: wizard.MaxQuantity},
	}
	for _, s := range catalog.Sizes() {
		resp.Sizes = append(resp.Sizes, models.SizeInfo{
			Size:       s,
			Label:      s.Label(),
			Dimensions: s.Dimensions(),
			Price:      s.Price(),
			PriceLabel: catalog.FormatPeso(s.Price()),
		})
	}
	for _, p := range catalog.Papers() {
		resp.Papers = append(resp.Papers, models.OptionInfo{Value: string(p), Name: p.Name()})
	}
	for _, t := range catalog.Templates() {
		resp.Templates = append(resp.Templates, models.OptionInfo{Value: string(t), Name: t.Name()})
	}
	c.JSON(http.StatusOK, resp)
}
