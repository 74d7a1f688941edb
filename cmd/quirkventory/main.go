package main

import (
	"fmt"

	"github.com/cjaradhye/quirkventory/internal/adapter/config"
	"github.com/cjaradhye/quirkventory/internal/adapter/handler/http"
	"github.com/cjaradhye/quirkventory/internal/adapter/logger"
	"github.com/cjaradhye/quirkventory/internal/adapter/notification"
	"github.com/cjaradhye/quirkventory/internal/core/inventory"
	"github.com/cjaradhye/quirkventory/internal/core/orders"
	"github.com/cjaradhye/quirkventory/internal/core/service"
	"github.com/cjaradhye/quirkventory/internal/core/worker"
	"go.uber.org/zap"
)

func main() {
	conf, err := config.NewConfig()
	if err != nil {
		fmt.Printf("config error:%s", err)
		return
	}

	log := logger.NewLogger(conf.App)
	if log == nil {
		fmt.Printf("error creating log")
		return
	}
	defer func() {
		err := log.Sync()
		if err != nil {
			fmt.Printf("log error: %s", err)
		}
	}()

	feed := notification.NewFeed(100, notification.NewLogNotifier(log.Named("Notifier")))

	inv := inventory.New(conf.Inventory.LowStockThreshold, feed, log.Named("Inventory"))

	pool := worker.NewPool(conf.Processing.Workers, conf.Processing.QueueSize, log.Named("Pool"))
	defer pool.Stop()

	manager := orders.NewManager(pool, log.Named("Orders"))

	svc, err := service.NewService(inv, manager, pool, conf.Inventory.PriceTolerancePercent, log.Named("Service"))
	if err != nil {
		log.Error("service creating error", zap.Error(err))
		return
	}

	productHandler, err := http.NewProductHandler(svc, log.Named("Product handler"))
	if err != nil {
		log.Error("product handler creating error", zap.Error(err))
		return
	}
	orderHandler, err := http.NewOrderHandler(svc, log.Named("Order handler"))
	if err != nil {
		log.Error("order handler creating error", zap.Error(err))
		return
	}
	reportHandler, err := http.NewReportHandler(svc, feed, log.Named("Report handler"))
	if err != nil {
		log.Error("report handler creating error", zap.Error(err))
		return
	}

	r, err := http.NewRouter(conf.HTTP, productHandler, orderHandler, reportHandler, log.Named("Router"))
	if err != nil {
		log.Error("router creating error", zap.Error(err))
		return
	}

	err = r.Serve(conf.HTTP.HostString)
	if err != nil {
		log.Error("router serve error", zap.Error(err))
		return
	}
}
