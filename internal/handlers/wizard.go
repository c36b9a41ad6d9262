package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"photoprint-backend/internal/catalog"
	"photoprint-backend/internal/logging"
	"photoprint-backend/internal/models"
	"photoprint-backend/internal/orders"
	"photoprint-backend/internal/photo"
	"photoprint-backend/internal/session"
	"photoprint-backend/internal/wizard"
)

type WizardHandler struct {
	store  *session.Store
	ledger orders.Ledger
}

func NewWizardHandler(store *session.Store, ledger orders.Ledger) *WizardHandler {
	return &WizardHandler{store: store, ledger: ledger}
}

// GetWizard godoc
// @Summary     Current order form
// @Description Returns the visitor's wizard view: step, options, summary, review and receipt
// @Tags        wizard
// @Produce     json
// @Success     200 {object} models.WizardResponse
// @Router      /wizard [get]
func (h *WizardHandler) GetWizard(c *gin.Context) {
	sess, ok := currentSession(c, h.store)
	if !ok {
		return
	}
	renderWizard(c, sess, nil)
}

// GoToStep godoc
// @Summary     Navigate the wizard
// @Description Moves to step 1-4. Steps past upload require a photo.
// @Tags        wizard
// @Accept      json
// @Produce     json
// @Param       request body models.StepRequest true "Target step"
// @Success     200 {object} models.WizardResponse
// @Failure     400 {object} models.WizardResponse
// @Failure     422 {object} models.WizardResponse
// @Router      /wizard/step [post]
func (h *WizardHandler) GoToStep(c *gin.Context) {
	sess, ok := currentSession(c, h.store)
	if !ok {
		return
	}
	var req models.StepRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	renderWizard(c, sess, sess.Wizard.GoToStep(wizard.Step(req.Step)))
}

// UploadPhoto godoc
// @Summary     Upload the print photo
// @Description Accepts one image (JPG, PNG, JPEG) up to 10MB and shows it as a preview
// @Tags        wizard
// @Accept      multipart/form-data
// @Produce     json
// @Param       photo formData file true "Photo to print"
// @Success     200 {object} models.WizardResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     413 {object} models.WizardResponse
// @Failure     415 {object} models.WizardResponse
// @Router      /wizard/photo [post]
func (h *WizardHandler) UploadPhoto(c *gin.Context) {
	sess, ok := currentSession(c, h.store)
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("photo")
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "photo file is required",
			Message: err.Error(),
		})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to open file",
			Message: err.Error(),
		})
		return
	}
	defer file.Close()

	_, err = sess.Wizard.UploadPhoto(c.Request.Context(), photo.Upload{
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Size:        fileHeader.Size,
		Body:        file,
	})
	if err != nil {
		if _, ok := wizard.AsValidation(err); !ok {
			logging.FromContext(c.Request.Context()).Error("photo upload failed",
				zap.String("filename", fileHeader.Filename), zap.Error(err))
		}
	}
	renderWizard(c, sess, err)
}

// RemovePhoto godoc
// @Summary     Remove the uploaded photo
// @Tags        wizard
// @Produce     json
// @Success     200 {object} models.WizardResponse
// @Router      /wizard/photo [delete]
func (h *WizardHandler) RemovePhoto(c *gin.Context) {
	sess, ok := currentSession(c, h.store)
	if !ok {
		return
	}
	sess.Wizard.RemovePhoto()
	renderWizard(c, sess, nil)
}

// SetSize godoc
// @Summary     Choose print size
// @Tags        wizard
// @Accept      json
// @Produce     json
// @Param       request body models.SizeRequest true "4R, 5R or 8R"
// @Success     200 {object} models.WizardResponse
// @Failure     400 {object} models.WizardResponse
// @Router      /wizard/size [put]
func (h *WizardHandler) SetSize(c *gin.Context) {
	sess, ok := currentSession(c, h.store)
	if !ok {
		return
	}
	var req models.SizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	renderWizard(c, sess, sess.Wizard.SetSize(req.Size))
}

// SetPaper godoc
// @Summary     Choose paper type
// @Tags        wizard
// @Accept      json
// @Produce     json
// @Param       request body models.PaperRequest true "glossy, matte or premium"
// @Success     200 {object} models.WizardResponse
// @Router      /wizard/paper [put]
func (h *WizardHandler) SetPaper(c *gin.Context) {
	sess, ok := currentSession(c, h.store)
	if !ok {
		return
	}
	var req models.PaperRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	sess.Wizard.SetPaper(req.Paper)
	renderWizard(c, sess, nil)
}

// SetTemplate godoc
// @Summary     Choose template
// @Tags        wizard
// @Accept      json
// @Produce     json
// @Param       request body models.TemplateRequest true "Template value"
// @Success     200 {object} models.WizardResponse
// @Router      /wizard/template [put]
func (h *WizardHandler) SetTemplate(c *gin.Context) {
	sess, ok := currentSession(c, h.store)
	if !ok {
		return
	}
	var req models.TemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	sess.Wizard.SetTemplate(req.Template)
	renderWizard(c, sess, nil)
}

// SelectTemplate godoc
// @Summary     Pick a template from the gallery
// @Tags        wizard
// @Produce     json
// @Param       template path string true "Gallery template (classic, collage, seasonal, school)"
// @Success     200 {object} models.WizardResponse
// @Failure     400 {object} models.WizardResponse
// @Router      /templates/{template}/select [post]
func (h *WizardHandler) SelectTemplate(c *gin.Context) {
	sess, ok := currentSession(c, h.store)
	if !ok {
		return
	}
	err := sess.Wizard.SelectGalleryTemplate(catalog.Template(c.Param("template")))
	renderWizard(c, sess, err)
}

// SetQuantity godoc
// @Summary     Set quantity
// @Description Values outside 1-10 or non-numeric input leave the quantity unchanged
// @Tags        wizard
// @Accept      json
// @Produce     json
// @Param       request body models.QuantityRequest true "Quantity"
// @Success     200 {object} models.WizardResponse
// @Router      /wizard/quantity [put]
func (h *WizardHandler) SetQuantity(c *gin.Context) {
	sess, ok := currentSession(c, h.store)
	if !ok {
		return
	}
	var req models.QuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	sess.Wizard.ParseQuantity(rawQuantity(req.Quantity))
	renderWizard(c, sess, nil)
}

// StepQuantity godoc
// @Summary     Increment or decrement quantity
// @Tags        wizard
// @Accept      json
// @Produce     json
// @Param       request body models.QuantityStepRequest true "Delta, usually 1 or -1"
// @Success     200 {object} models.WizardResponse
// @Router      /wizard/quantity/step [post]
func (h *WizardHandler) StepQuantity(c *gin.Context) {
	sess, ok := currentSession(c, h.store)
	if !ok {
		return
	}
	var req models.QuantityStepRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	sess.Wizard.ChangeQuantity(req.Delta)
	renderWizard(c, sess, nil)
}

// Submit godoc
// @Summary     Submit the order
// @Description Validates the customer form, acknowledges the order and resets the form after a short delay
// @Tags        wizard
// @Accept      json
// @Produce     json
// @Param       request body models.SubmitRequest true "Customer details"
// @Success     200 {object} models.WizardResponse
// @Failure     400 {object} models.WizardResponse
// @Failure     422 {object} models.WizardResponse
// @Router      /wizard/submit [post]
func (h *WizardHandler) Submit(c *gin.Context) {
	sess, ok := currentSession(c, h.store)
	if !ok {
		return
	}
	var req models.SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	receipt, err := sess.Wizard.Submit(wizard.SubmitForm{
		Name:         req.Name,
		Grade:        req.Grade,
		Phone:        req.Phone,
		Email:        req.Email,
		Instructions: req.Instructions,
	})
	if err == nil && h.ledger != nil {
		if recErr := h.ledger.Record(c.Request.Context(), sess.ID, *receipt); recErr != nil {
			logging.FromContext(c.Request.Context()).Error("failed to record order",
				zap.String("order_number", receipt.OrderNumber), zap.Error(recErr))
		}
	}
	renderWizard(c, sess, err)
}

// Reset godoc
// @Summary     Start over
// @Tags        wizard
// @Produce     json
// @Success     200 {object} models.WizardResponse
// @Router      /wizard/reset [post]
func (h *WizardHandler) Reset(c *gin.Context) {
	sess, ok := currentSession(c, h.store)
	if !ok {
		return
	}
	sess.Wizard.Reset()
	renderWizard(c, sess, nil)
}

func rawQuantity(v interface{}) string {
	switch q := v.(type) {
	case string:
		return q
	case float64:
		return strconv.FormatFloat(q, 'f', -1, 64)
	case nil:
		return ""
	default:
		return fmt.Sprint(q)
	}
}
