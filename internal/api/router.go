package api

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/neha-5456/kaagjee/config"
	adminOrder "github.com/neha-5456/kaagjee/internal/api/v1/admin/order"
	adminPayment "github.com/neha-5456/kaagjee/internal/api/v1/admin/payment"
	adminProduct "github.com/neha-5456/kaagjee/internal/api/v1/admin/product"
	adminUser "github.com/neha-5456/kaagjee/internal/api/v1/admin/user"
	"github.com/neha-5456/kaagjee/internal/api/v1/auth"
	orderRoutes "github.com/neha-5456/kaagjee/internal/api/v1/order"
	paymentRoutes "github.com/neha-5456/kaagjee/internal/api/v1/payment"
	productRoutes "github.com/neha-5456/kaagjee/internal/api/v1/product"
	userRoutes "github.com/neha-5456/kaagjee/internal/api/v1/user"
	"github.com/neha-5456/kaagjee/internal/database"
	"github.com/neha-5456/kaagjee/internal/middleware"
)

func NewRouter() (*gin.Engine, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}

	_, err = database.Connect(cfg.DSN())
	if err != nil {
		return nil, err
	}

	err = database.ConnectRedis(cfg)
	if err != nil {
		return nil, err
	}

	router := gin.New()
	router.Use(middleware.Logger(), gin.Recovery())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSAllowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	v1 := router.Group("/api/v1")
	{
		auth.RegisterRoutes(v1)
		productRoutes.RegisterRoutes(v1)

		authorized := v1.Group("/")
		authorized.Use(middleware.AuthMiddleware())
		{
			userRoutes.RegisterRoutes(authorized)
			orderRoutes.RegisterRoutes(authorized)
			paymentRoutes.RegisterRoutes(authorized)
		}

		admin := v1.Group("/admin")
		admin.Use(middleware.AdminAuthMiddleware())
		{
			adminOrder.RegisterRoutes(admin)
			adminPayment.RegisterRoutes(admin)
			adminProduct.RegisterRoutes(admin)
			adminUser.RegisterRoutes(admin)
		}
	}

	return router, nil
}
