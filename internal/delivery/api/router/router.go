// Package router contains routing for the local storefront API.
package router

import (
	"storefront/internal/delivery/api/middleware"
	"storefront/internal/delivery/api/router/handler"
	"storefront/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	HealthHandler       *handler.HealthHandler
	AccountHandler      *handler.AccountHandler
	CartHandler         *handler.CartHandler
	CatalogHandler      *handler.CatalogHandler
	PrescriptionHandler *handler.PrescriptionHandler
	PurchaseHandler     *handler.PurchaseHandler
	AnalyticsHandler    *handler.AnalyticsHandler
	SessionGate         *middleware.SessionGate
}

// router holds all the handlers that need to be registered.
type router struct {
	health       *handler.HealthHandler
	account      *handler.AccountHandler
	cart         *handler.CartHandler
	catalog      *handler.CatalogHandler
	prescription *handler.PrescriptionHandler
	purchase     *handler.PurchaseHandler
	analytics    *handler.AnalyticsHandler
	gate         *middleware.SessionGate
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		health:       params.HealthHandler,
		account:      params.AccountHandler,
		cart:         params.CartHandler,
		catalog:      params.CatalogHandler,
		prescription: params.PrescriptionHandler,
		purchase:     params.PurchaseHandler,
		analytics:    params.AnalyticsHandler,
		gate:         params.SessionGate,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", r.health.Health)

	sessionGroup := e.Group("/session")
	{
		sessionGroup.GET("", r.account.GetSession)
		sessionGroup.DELETE("", r.account.Logout)
		sessionGroup.POST("/login", r.account.Login)
		sessionGroup.POST("/register", r.account.Register)
	}

	profileGroup := e.Group("/profile", r.gate.RequireSession)
	{
		profileGroup.GET("", r.account.GetProfile)
		profileGroup.PUT("", r.account.UpdateProfile)
		profileGroup.DELETE("", r.account.DeleteProfile)
	}

	// The cart works signed out too
	cartGroup := e.Group("/cart")
	{
		cartGroup.GET("", r.cart.GetCart)
		cartGroup.DELETE("", r.cart.ClearCart)
		cartGroup.POST("/items", r.cart.AddItem)
		cartGroup.PUT("/items/:productId", r.cart.UpdateItem)
		cartGroup.DELETE("/items/:productId", r.cart.RemoveItem)
	}
	e.POST("/checkout", r.cart.Checkout, r.gate.RequireSession)

	productsGroup := e.Group("/products")
	{
		productsGroup.GET("", r.catalog.ListProducts)
		productsGroup.GET("/types", r.catalog.ProductTypes)
		productsGroup.GET("/:id", r.catalog.GetProduct)
	}

	offersGroup := e.Group("/offers")
	{
		offersGroup.GET("", r.catalog.ListOffers)
		offersGroup.GET("/:id", r.catalog.GetOffer)
	}

	e.GET("/doctors", r.prescription.ListDoctors)

	prescriptionsGroup := e.Group("/prescriptions", r.gate.RequireSession)
	{
		prescriptionsGroup.GET("", r.prescription.ListPrescriptions)
		prescriptionsGroup.POST("", r.prescription.UploadPrescription)
		prescriptionsGroup.GET("/:id", r.prescription.GetPrescription)
		prescriptionsGroup.DELETE("/:id", r.prescription.DeletePrescription)
		prescriptionsGroup.PUT("/:id/validate", r.prescription.ValidatePrescription)
	}

	purchasesGroup := e.Group("/purchases", r.gate.RequireSession)
	{
		purchasesGroup.GET("/me", r.purchase.MyPurchases)
	}

	adminGroup := e.Group("/admin", r.gate.RequireRole(entity.RoleAdmin))
	{
		adminGroup.POST("/products", r.catalog.CreateProduct)
		adminGroup.PUT("/products/:id", r.catalog.UpdateProduct)
		adminGroup.DELETE("/products/:id", r.catalog.DeleteProduct)

		adminGroup.POST("/offers", r.catalog.CreateOffer)
		adminGroup.PUT("/offers/:id", r.catalog.UpdateOffer)
		adminGroup.DELETE("/offers/:id", r.catalog.DeleteOffer)

		adminGroup.GET("/purchases", r.purchase.AllPurchases)
		adminGroup.GET("/users", r.purchase.ListUsers)

		adminGroup.GET("/analytics/:report", r.analytics.Report)
		adminGroup.POST("/analytics/ingest/:source", r.analytics.Ingest)
	}
}
