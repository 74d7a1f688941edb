package http

import (
	"github.com/cjaradhye/quirkventory/internal/adapter/config"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Router struct {
	*gin.Engine
}

func NewRouter(
	conf *config.HTTP,
	productHandler *ProductHandler,
	orderHandler *OrderHandler,
	reportHandler *ReportHandler,
	logger *zap.Logger) (*Router, error) {

	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(logger))

	router.GET("/healthz", func(ctx *gin.Context) { ctx.Status(200) })

	api := router.Group("/api")
	{
		products := api.Group("/products")
		{
			products.POST("", productHandler.CreateProduct)
			products.GET("", productHandler.ListProducts)
			products.GET("/:id", productHandler.GetProduct)
			products.DELETE("/:id", productHandler.DeleteProduct)
			products.POST("/:id/restock", productHandler.RestockProduct)
		}

		orders := api.Group("/orders")
		{
			orders.POST("", orderHandler.CreateOrder)
			orders.GET("", orderHandler.ListOrders)
			orders.POST("/process-pending", orderHandler.ProcessAllPending)
			orders.DELETE("/completed", orderHandler.ClearCompleted)
			orders.GET("/:id", orderHandler.GetOrder)
			orders.DELETE("/:id", orderHandler.DeleteOrder)
			orders.POST("/:id/items", orderHandler.AddItem)
			orders.DELETE("/:id/items/:product", orderHandler.RemoveItem)
			orders.GET("/:id/validate", orderHandler.ValidateOrder)
			orders.POST("/:id/process", orderHandler.ProcessOrder)
			orders.POST("/:id/cancel", orderHandler.CancelOrder)
			orders.POST("/:id/status", orderHandler.UpdateStatus)
		}

		reports := api.Group("/reports")
		{
			reports.GET("/inventory", reportHandler.InventoryReport)
			reports.GET("/orders", reportHandler.OrderStatistics)
			reports.GET("/alerts", reportHandler.Alerts)
		}
	}

	return &Router{router}, nil
}

// Serve starts the HTTP server
func (r *Router) Serve(listenAddr string) error {
	return r.Run(listenAddr)
}
