package router

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/wb-go/wbf/ginext"

	"github.com/tickethub-io/tickethub/internal/handler"
	"github.com/tickethub-io/tickethub/internal/middleware"
	"github.com/tickethub-io/tickethub/internal/token"
)

func InitRouter(mode string, h *handler.Handler, tokens *token.Manager, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")

	// Events: reads are public, writes are admin only.
	events := api.Group("/events")
	events.Use(middleware.OptionalAuth(tokens))
	{
		events.GET("", h.ListEvents)
		events.GET("/:id", h.GetEvent)
	}

	adminEvents := api.Group("/events", middleware.Auth(tokens), middleware.AdminOnly())
	{
		adminEvents.POST("", h.CreateEvent)
		adminEvents.PATCH("/:id", h.UpdateEvent)
		adminEvents.POST("/:id/publish", h.PublishEvent)
		adminEvents.POST("/:id/cancel", h.CancelEvent)
		adminEvents.DELETE("/:id", h.DeleteEvent)
	}

	// Orders
	orders := api.Group("/orders", middleware.Auth(tokens))
	{
		orders.POST("", h.CreateOrder)
		orders.GET("", h.ListMyOrders)
		orders.GET("/:id", h.GetOrder)
		orders.POST("/:id/payment", h.ProcessPayment)
		orders.POST("/:id/cancel", h.CancelOrder)
	}

	adminOrders := api.Group("/admin/orders", middleware.Auth(tokens), middleware.AdminOnly())
	{
		adminOrders.GET("", h.ListAllOrders)
		adminOrders.POST("/:id/refund", h.RefundOrder)
	}

	// Users
	users := api.Group("/users")
	{
		users.POST("/register", h.Register)
		users.POST("/login", h.Login)
		users.GET("/me", middleware.Auth(tokens), h.Me)
		users.GET("", middleware.Auth(tokens), middleware.AdminOnly(), h.ListUsers)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	promHandler := promhttp.Handler()
	router.GET("/metrics", func(c *ginext.Context) {
		promHandler.ServeHTTP(c.Writer, c.Request)
	})

	return router
}
