package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/strungco/stringmart/internal/server/http/handlers"
	"github.com/strungco/stringmart/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.StringingFacade, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	authHandler := handlers.NewAuthHandler(facade)
	orderHandler := handlers.NewOrderHandler(facade)
	walletHandler := handlers.NewWalletHandler(facade)
	catalogHandler := handlers.NewCatalogHandler(facade)
	photoHandler := handlers.NewPhotoHandler(facade)
	adminHandler := handlers.NewAdminHandler(facade)

	api := engine.Group("/api")
	api.GET("/products", catalogHandler.Products)
	api.GET("/packages", catalogHandler.Packages)

	user := api.Group("/user")
	user.POST("/register", authHandler.Register)
	user.POST("/login", authHandler.Login)

	userAuth := user.Group("")
	userAuth.Use(middleware.AuthRequired(facade))
	userAuth.POST("/orders", orderHandler.Create)
	userAuth.GET("/orders", orderHandler.List)
	userAuth.GET("/orders/:id/queue", orderHandler.Queue)
	userAuth.POST("/orders/:id/review", orderHandler.Review)
	userAuth.GET("/orders/:id/photos", photoHandler.List)
	userAuth.POST("/orders/:id/photos", photoHandler.Add)
	userAuth.PUT("/orders/:id/photos", photoHandler.Reorder)
	userAuth.DELETE("/orders/:id/photos/:photoId", photoHandler.Remove)
	userAuth.GET("/points", walletHandler.Points)
	userAuth.GET("/points/history", walletHandler.PointsHistory)
	userAuth.GET("/packages", walletHandler.Packages)
	userAuth.GET("/vouchers", walletHandler.Vouchers)
	userAuth.POST("/packages/:id/purchase", walletHandler.PurchasePackage)

	admin := api.Group("/admin")
	admin.Use(middleware.AuthRequired(facade), middleware.AdminRequired())
	admin.POST("/orders/:id/complete", adminHandler.CompleteOrder)
	admin.PATCH("/orders/:id/status", adminHandler.UpdateOrderStatus)
	admin.POST("/payments/:id/confirm", adminHandler.ConfirmPayment)
	admin.POST("/sweep-expired", adminHandler.SweepExpired)
	admin.POST("/stock/:productId/adjust", adminHandler.AdjustStock)
	admin.GET("/stock-alerts", adminHandler.LowStock)
	admin.GET("/stock/:productId", adminHandler.StockLevel)
	admin.GET("/stock/:productId/logs", adminHandler.StockLogs)

	return engine
}
