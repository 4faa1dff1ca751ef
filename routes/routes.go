package routes

import (
	"restaurant-api/config"
	"restaurant-api/handlers"
	"restaurant-api/middleware"
	"restaurant-api/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupRoutes(r *gin.Engine, db *gorm.DB, cfg config.Config) {
	orderSvc := services.NewOrderService(db)
	customerSvc := services.NewCustomerService(db)
	menuSvc := services.NewMenuItemService(db)
	orderItemSvc := services.NewOrderItemService(db)

	auth := handlers.NewAuthHandler(db, cfg.JWTSecret)
	customers := handlers.NewCustomerHandler(customerSvc, orderSvc)
	menu := handlers.NewMenuItemHandler(menuSvc)
	orders := handlers.NewOrderHandler(orderSvc, orderItemSvc)
	orderItems := handlers.NewOrderItemHandler(orderItemSvc)

	// ── Public routes ──────────────────────────────────────────────
	public := r.Group("/api")
	{
		public.POST("/auth/register", auth.Register)
		public.POST("/auth/login", auth.Login)

		public.GET("/customers", customers.List)
		public.GET("/customers/:id", customers.Find)
		public.GET("/customers/:id/orders", customers.ListOrders)
		public.GET("/customers/:id/order-items", orderItems.ListByCustomer)

		public.GET("/menu-items", menu.List)
		public.GET("/menu-items/:id", menu.Find)
		public.GET("/menu-items/:id/orders", menu.FindWithOrders)
		public.GET("/menu-items/:id/order-items", orderItems.ListByMenuItem)

		public.GET("/orders", orders.List)
		public.GET("/orders/:id", orders.Find)
		public.GET("/orders/:id/items", orders.ListItems)

		public.GET("/order-items", orderItems.List)
		public.GET("/order-items/:id", orderItems.Find)
	}

	// ── Mutating routes (staff only) ───────────────────────────────
	protected := r.Group("/api")
	protected.Use(middleware.AuthRequired(cfg.JWTSecret))
	{
		protected.POST("/customers", customers.Add)
		protected.PUT("/customers/:id", customers.Update)
		protected.DELETE("/customers/:id", customers.Delete)

		protected.POST("/menu-items", menu.Add)
		protected.PUT("/menu-items/:id", menu.Update)
		protected.DELETE("/menu-items/:id", menu.Delete)

		protected.POST("/orders", orders.Create)
		protected.PUT("/orders/:id", orders.Update)
		protected.DELETE("/orders/:id", orders.Delete)

		protected.POST("/order-items", orderItems.Add)
		protected.PUT("/order-items/:id", orderItems.Update)
		protected.DELETE("/order-items/:id", orderItems.Delete)
	}
}
