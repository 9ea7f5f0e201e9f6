package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/rokan2059/coffee/configs"
	"github.com/rokan2059/coffee/controllers"
	"github.com/rokan2059/coffee/middlewares"
	"github.com/rokan2059/coffee/services"
	"github.com/rokan2059/coffee/ws"
)

type Deps struct {
	Cfg      *configs.Config
	Catalog  *services.CatalogService
	Carts    *services.CartService
	Orders   *services.OrderService
	Cloud    *services.CloudService
	Describe *services.DescriptionService
	Feed     *ws.OrderFeed
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	r.Use(middlewares.CORSMiddleware())
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Controllers
	authCtrl := controllers.NewAuthController(d.Cfg)
	menuCtrl := controllers.NewMenuController(d.Catalog)
	cartCtrl := controllers.NewCartController(d.Carts)
	orderCtrl := controllers.NewOrderController(d.Orders, d.Carts)
	adminCtrl := controllers.NewAdminController(d.Catalog, d.Orders, d.Describe)
	cloudCtrl := controllers.NewCloudController(d.Cloud)

	// Staff session (public)
	r.POST("/auth/staff", authCtrl.StaffLogin)

	// Storefront (public)
	r.GET("/menu", menuCtrl.List)
	r.GET("/menu/:id", menuCtrl.Detail)

	cart := r.Group("/cart")
	{
		cart.GET("", cartCtrl.Get)
		cart.POST("/items", cartCtrl.Add)
		cart.PATCH("/items/:id/quantity", cartCtrl.AdjustQuantity)
		cart.DELETE("/items/:id", cartCtrl.Remove)
		cart.DELETE("", cartCtrl.Clear)
	}

	orders := r.Group("/orders")
	{
		orders.POST("", orderCtrl.Checkout)
		orders.GET("", orderCtrl.List)
		orders.GET("/partition", orderCtrl.Partition)
		orders.GET("/:id", orderCtrl.Detail)
	}

	// Staff dashboard
	admin := r.Group("/admin", middlewares.StaffOnly(d.Cfg.JWTSecret))
	{
		admin.POST("/menu", adminCtrl.CreateMenuItem)
		admin.PATCH("/menu/:id", adminCtrl.UpdateMenuItem)
		admin.DELETE("/menu/:id", adminCtrl.DeleteMenuItem)
		admin.POST("/menu/describe", adminCtrl.DescribeMenuItem)

		admin.GET("/orders", adminCtrl.OrderQueue)
		admin.PATCH("/orders/:id/status", adminCtrl.UpdateOrderStatus)
		admin.PATCH("/orders/:id/payment", adminCtrl.UpdatePaymentStatus)

		admin.GET("/cloud", cloudCtrl.GetConfig)
		admin.PUT("/cloud", cloudCtrl.PutConfig)
	}

	// Live order feed (staff)
	r.GET("/ws/orders", middlewares.StaffOnly(d.Cfg.JWTSecret), d.Feed.HandleWebSocket)
}
