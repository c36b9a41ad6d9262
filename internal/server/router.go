// Package server wires the HTTP API together and runs it.
package server

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"photoprint-backend/internal/handlers"
	"photoprint-backend/internal/middleware"
	"photoprint-backend/internal/orders"
	"photoprint-backend/internal/session"
	"photoprint-backend/internal/tracking"
)

// Dependencies are the collaborators shared by all handlers.
type Dependencies struct {
	Logger     *zap.Logger
	Sessions   *session.Store
	Tokens     *middleware.SessionTokens
	Tracker    *tracking.Tracker
	Ledger     orders.Ledger
	LedgerName string

	// OperatorToken enables the staff order listing when set.
	OperatorToken string
}

func NewRouter(deps Dependencies) *gin.Engine {
	wizardHandler := handlers.NewWizardHandler(deps.Sessions, deps.Ledger)
	trackingHandler := handlers.NewTrackingHandler(deps.Sessions, deps.Tracker)
	faqHandler := handlers.NewFAQHandler(deps.Sessions)
	notificationHandler := handlers.NewNotificationHandler(deps.Sessions)
	ordersHandler := handlers.NewOrdersHandler(deps.Ledger)
	healthHandler := handlers.NewHealthHandler(deps.Sessions, deps.LedgerName)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(deps.Logger))

	// Health check (no session)
	router.GET("/health", healthHandler.Health)

	api := router.Group("/api/v1")
	api.GET("/catalog", handlers.GetCatalog)
	api.POST("/nav/active", handlers.ActiveNav)

	// Staff listing (bearer token)
	if deps.OperatorToken != "" {
		api.GET("/orders", middleware.OperatorAuth(deps.OperatorToken), ordersHandler.ListOrders)
	}

	visitor := api.Group("")
	visitor.Use(middleware.SessionMiddleware(deps.Tokens))

	// Order wizard
	visitor.GET("/wizard", wizardHandler.GetWizard)
	visitor.POST("/wizard/step", wizardHandler.GoToStep)
	visitor.POST("/wizard/photo", wizardHandler.UploadPhoto)
	visitor.DELETE("/wizard/photo", wizardHandler.RemovePhoto)
	visitor.PUT("/wizard/size", wizardHandler.SetSize)
	visitor.PUT("/wizard/paper", wizardHandler.SetPaper)
	visitor.PUT("/wizard/template", wizardHandler.SetTemplate)
	visitor.PUT("/wizard/quantity", wizardHandler.SetQuantity)
	visitor.POST("/wizard/quantity/step", wizardHandler.StepQuantity)
	visitor.POST("/wizard/submit", wizardHandler.Submit)
	visitor.POST("/wizard/reset", wizardHandler.Reset)
	visitor.POST("/templates/:template/select", wizardHandler.SelectTemplate)

	// Tracking, FAQ and notifications
	visitor.POST("/tracking", trackingHandler.Track)
	visitor.GET("/faq", faqHandler.GetFAQ)
	visitor.POST("/faq/:index/toggle", faqHandler.Toggle)
	visitor.GET("/notification", notificationHandler.GetNotification)
	visitor.DELETE("/notification", notificationHandler.DismissNotification)

	// Order acknowledgements, scoped to the calling session
	visitor.GET("/orders/:order_number", ordersHandler.GetOrder)

	return router
}
