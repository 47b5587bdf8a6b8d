package http

import (
	"github.com/gin-gonic/gin"
	"github.com/snackhub/snackshop/internal/adapter/config"
	"github.com/snackhub/snackshop/internal/core/port"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type Router struct {
	*gin.Engine
}

func NewRouter(
	conf *config.HTTP,
	tokenService port.TokenService,
	userHandler *UserHandler,
	snackHandler *SnackHandler,
	cartHandler *CartHandler,
	addressHandler *AddressHandler,
	orderHandler *OrderHandler) (*Router, error) {

	router := gin.New()
	router.Use(gin.Recovery())

	// Swagger
	router.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api")
	{
		user := api.Group("/user")
		{
			user.POST("/register", userHandler.RegisterUser)
			user.POST("/login", userHandler.LoginUser)
		}

		snacks := api.Group("/snacks")
		{
			snacks.GET("", snackHandler.ListSnacks)
			snacks.GET("/:id", snackHandler.GetSnack)
		}

		authed := api.Group("")
		authed.Use(authCheck(tokenService))
		{
			cart := authed.Group("/cart")
			{
				cart.POST("", cartHandler.AddToCart)
				cart.GET("", cartHandler.GetCart)
				cart.DELETE("", cartHandler.RemoveCartLines)
			}

			address := authed.Group("/address")
			{
				address.POST("", addressHandler.CreateAddress)
				address.GET("", addressHandler.ListAddresses)
				address.GET("/:id", addressHandler.GetAddress)
			}

			orders := authed.Group("/orders")
			{
				orders.POST("", orderHandler.CreateOrder)
				orders.GET("", orderHandler.ListOrdersByUser)
				orders.GET("/:id", orderHandler.GetOrderDetail)
				orders.PUT("/:id/pay", orderHandler.PayOrder)
				orders.PUT("/:id/cancel", orderHandler.CancelOrder)
				orders.PUT("/:id/complete", orderHandler.CompleteOrder)
			}

			admin := authed.Group("/admin")
			admin.Use(adminCheck())
			{
				admin.GET("/orders", orderHandler.ListAllOrders)
				admin.GET("/orders/:id", orderHandler.GetAdminOrderDetail)
				admin.PUT("/orders/:id/ship", orderHandler.ShipOrder)
				admin.POST("/snacks", snackHandler.CreateSnack)
				admin.PUT("/snacks/:id", snackHandler.UpdateSnack)
			}
		}
	}

	return &Router{router}, nil
}

// Serve starts the HTTP server
func (r *Router) Serve(listenAddr string) error {
	return r.Run(listenAddr)
}
