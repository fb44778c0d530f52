package router

import (
	"net/http"

	"github.com/Jairobuifranco/A2-Group17/internal/metrics"
	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	CreateEvent(c *ginext.Context)
	UpdateEvent(c *ginext.Context)
	CancelEvent(c *ginext.Context)
	ReopenEvent(c *ginext.Context)
	GetEvent(c *ginext.Context)
	ListEvents(c *ginext.Context)
	BookEvent(c *ginext.Context)
	CancelOrder(c *ginext.Context)
	AddComment(c *ginext.Context)
	ListComments(c *ginext.Context)
	CreateUser(c *ginext.Context)
	GetUser(c *ginext.Context)
	ListUsers(c *ginext.Context)
	GetUserOrders(c *ginext.Context)
}

func InitRouter(mode string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Events
		api.POST("/events", h.CreateEvent)
		api.GET("/events", h.ListEvents)
		api.GET("/events/:id", h.GetEvent)
		api.PUT("/events/:id", h.UpdateEvent)
		api.POST("/events/:id/cancel", h.CancelEvent)
		api.POST("/events/:id/reopen", h.ReopenEvent)

		// Orders
		api.POST("/events/:id/orders", h.BookEvent)
		api.POST("/orders/:id/cancel", h.CancelOrder)

		// Comments
		api.GET("/events/:id/comments", h.ListComments)
		api.POST("/events/:id/comments", h.AddComment)

		// Users
		api.POST("/users", h.CreateUser)
		api.GET("/users", h.ListUsers)
		api.GET("/users/:id", h.GetUser)
		api.GET("/users/:id/orders", h.GetUserOrders)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	metricsHandler := metrics.Handler()
	router.GET("/metrics", func(c *ginext.Context) {
		metricsHandler.ServeHTTP(c.Writer, c.Request)
	})

	return router
}
