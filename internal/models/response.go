package models

import (
	"photoprint-backend/internal/catalog"
	"photoprint-backend/internal/faq"
	"photoprint-backend/internal/notify"
	"photoprint-backend/internal/scrollspy"
	"photoprint-backend/internal/tracking"
	"photoprint-backend/internal/wizard"
)

type HealthResponse struct {
	Status   string `json:"status"`
	Sessions int    `json:"sessions"`
	Ledger   string `json:"ledger"`
}

// WizardResponse is returned by every wizard operation. Error is set when the
// operation was rejected; View always reflects the current state.
type WizardResponse struct {
	View         wizard.View          `json:"view"`
	Notification *notify.Notification `json:"notification,omitempty"`
	Error        *ErrorResponse       `json:"error,omitempty"`
}

type SizeInfo struct {
	Size       catalog.Size `json:"size"`
	Label      string       `json:"label"`
	Dimensions string       `json:"dimensions"`
	Price      int          `json:"price"`
	PriceLabel string       `json:"price_label"`
}

type OptionInfo struct {
	Value string `json:"value"`
	Name  string `json:"name"`
}

type CatalogResponse struct {
	Sizes     []SizeInfo            `json:"sizes"`
	Papers    []OptionInfo          `json:"papers"`
	Templates []OptionInfo          `json:"templates"`
	Gallery   []catalog.GalleryCard `json:"gallery"`
	Quantity  QuantityRange         `json:"quantity"`
}

type QuantityRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

type TrackingResponse struct {
	Result       *tracking.Result     `json:"result,omitempty"`
	Notification *notify.Notification `json:"notification,omitempty"`
	Error        *ErrorResponse       `json:"error,omitempty"`
}

type FAQResponse struct {
	Items []faq.Item `json:"items"`
	Open  int        `json:"open"`
}

type NavResponse struct {
	Links  []scrollspy.Link `json:"links"`
	Active string           `json:"active,omitempty"`
}

type NotificationResponse struct {
	Notification *notify.Notification `json:"notification"`
}

type OrderResponse struct {
	Order wizard.Receipt `json:"order"`
}

type OrderListResponse struct {
	Orders []wizard.Receipt `json:"orders"`
}
