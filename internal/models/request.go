package models

import "photoprint-backend/internal/scrollspy"

type StepRequest struct {
	Step int `json:"step" binding:"required" example:"2"`
}

type SizeRequest struct {
	Size string `json:"size" binding:"required" example:"5R"`
}

type PaperRequest struct {
	Paper string `json:"paper" binding:"required" example:"matte"`
}

type TemplateRequest struct {
	Template string `json:"template" binding:"required" example:"classic"`
}

type QuantityRequest struct {
	// Quantity is the raw field value. Numbers and numeric strings are both
	// accepted; anything outside 1..10 leaves the quantity unchanged.
	Quantity interface{} `json:"quantity" swaggertype:"string" example:"3"`
}

type QuantityStepRequest struct {
	Delta int `json:"delta" binding:"required" example:"1"`
}

// SubmitRequest carries the customer form. Required fields are checked by the
// wizard so that the visitor sees the storefront message.
type SubmitRequest struct {
	Name         string `json:"name" example:"Juan Dela Cruz"`
	Grade        string `json:"grade" example:"10 - Rizal"`
	Phone        string `json:"phone" example:"09123456789"`
	Email        string `json:"email,omitempty"`
	Instructions string `json:"instructions,omitempty"`
}

type TrackingRequest struct {
	OrderNumber string `json:"order_number" example:"PHO-01J9Z"`
}

type NavRequest struct {
	Offset   int                 `json:"offset" example:"720"`
	Sections []scrollspy.Section `json:"sections"`
	Links    []scrollspy.Link    `json:"links"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
