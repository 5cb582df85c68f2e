package api

import (
	"database/sql"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"courier-admin-service/internal/api/handlers"
	"courier-admin-service/internal/api/middleware"
	"courier-admin-service/internal/domain"
	"courier-admin-service/internal/platform/auth"
	"courier-admin-service/internal/ports"
	"courier-admin-service/internal/services"
)

// Deps carries everything the router wires into handlers. This is the API
// composition root; handlers stay unaware of concrete adapters.
type Deps struct {
	DB     *sql.DB
	Logger *zap.Logger
	Tokens *auth.TokenManager

	Planner *services.Planner

	Stores        ports.StoreRepository
	Customers     ports.CustomerRepository
	Drivers       ports.DriverRepository
	Managers      ports.ManagerRepository
	Orders        ports.OrderRepository
	Notifications ports.NotificationRepository
	Penalties     ports.PenaltyRepository
	Announcements ports.AnnouncementRepository

	CORSOrigins []string
}

func NewRouter(deps Deps) *gin.Engine {
	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.Logger(deps.Logger),
		gin.Recovery(),
		middleware.CORS(deps.CORSOrigins),
	)

	if err := r.SetTrustedProxies(nil); err != nil {
		deps.Logger.Warn("failed to set trusted proxies", zap.Error(err))
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	healthHandler := &handlers.HealthHandler{DB: deps.DB}
	authHandler := &handlers.AuthHandler{Managers: deps.Managers, Tokens: deps.Tokens, Logger: deps.Logger}
	storeHandler := &handlers.StoreHandler{Stores: deps.Stores}
	customerHandler := &handlers.CustomerHandler{Customers: deps.Customers}
	driverHandler := &handlers.DriverHandler{Drivers: deps.Drivers}
	orderHandler := &handlers.OrderHandler{Orders: deps.Orders}
	notificationHandler := &handlers.NotificationHandler{Notifications: deps.Notifications}
	penaltyHandler := &handlers.PenaltyHandler{Penalties: deps.Penalties, Drivers: deps.Drivers}
	announcementHandler := &handlers.AnnouncementHandler{Announcements: deps.Announcements}
	planHandler := &handlers.PlanHandler{Planner: deps.Planner, Logger: deps.Logger}

	api := r.Group("/api")
	{
		api.GET("/health", healthHandler.Health)
		api.POST("/auth/login", authHandler.Login)

		// Everything past this point needs a manager token.
		authed := api.Group("")
		authed.Use(middleware.Auth(deps.Tokens))

		authed.POST("/auth/register",
			middleware.RequireRole(domain.RoleAdmin), authHandler.Register)

		stores := authed.Group("/stores")
		stores.GET("", storeHandler.List)
		stores.POST("", storeHandler.Create)
		stores.GET("/:id", storeHandler.Get)
		stores.PUT("/:id", storeHandler.Update)

		customers := authed.Group("/customers")
		customers.GET("", customerHandler.List)
		customers.POST("", customerHandler.Create)
		customers.GET("/:id", customerHandler.Get)
		customers.PUT("/:id", customerHandler.Update)
		customers.POST("/:id/addresses", customerHandler.AddAddress)

		drivers := authed.Group("/drivers")
		drivers.GET("", driverHandler.List)
		drivers.POST("", driverHandler.Create)
		drivers.GET("/:id", driverHandler.Get)
		drivers.PUT("/:id", driverHandler.Update)
		drivers.PUT("/:id/status", driverHandler.UpdateStatus)
		drivers.GET("/:id/orders", orderHandler.ListByDriver)
		drivers.GET("/:id/notifications", notificationHandler.ListByDriver)
		drivers.GET("/:id/penalties", penaltyHandler.ListByDriver)

		orders := authed.Group("/orders")
		orders.GET("/:id", orderHandler.Get)
		orders.PUT("/:id/status", orderHandler.UpdateStatus)
		authed.GET("/batches/:batchID", orderHandler.ListByBatch)

		authed.PUT("/notifications/:id/read", notificationHandler.MarkRead)

		penalties := authed.Group("/penalties")
		penalties.GET("", penaltyHandler.List)
		penalties.POST("", penaltyHandler.Create)

		announcements := authed.Group("/announcements")
		announcements.GET("", announcementHandler.List)
		announcements.POST("", announcementHandler.Create)
		announcements.DELETE("/:id", announcementHandler.Delete)

		plans := authed.Group("/plans/sessions")
		plans.POST("", planHandler.StartSession)
		plans.GET("/:id", planHandler.GetSession)
		plans.PUT("/:id/depot", planHandler.SelectDepot)
		plans.PUT("/:id/destinations", planHandler.SelectDestinations)
		plans.POST("/:id/compute", planHandler.ComputeRoutes)
		plans.POST("/:id/reorder", planHandler.Reorder)
		plans.POST("/:id/confirm", planHandler.Confirm)
		plans.DELETE("/:id", planHandler.Cancel)
	}

	return r
}
