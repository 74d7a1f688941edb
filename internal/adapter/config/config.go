package config

import (
	"flag"
	"fmt"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

type Config struct {
	HTTP       *HTTP
	App        *App
	Inventory  *Inventory
	Processing *Processing
}

const AppModeProduction = "PROD"
const AppModeDevelop = "DEV"

type App struct {
	LogLevel string `env:"LOG_LEVEL"`
	Mode     string
}

type HTTP struct {
	HostString string `env:"RUN_ADDRESS"`
}

type Inventory struct {
	LowStockThreshold     int `env:"LOW_STOCK_THRESHOLD"`
	PriceTolerancePercent int `env:"PRICE_TOLERANCE_PERCENT"`
}

type Processing struct {
	Workers   int `env:"PROCESS_WORKERS"`
	QueueSize int `env:"PROCESS_QUEUE_SIZE"`
}

func NewConfig() (*Config, error) {
	_ = godotenv.Load()

	var http HTTP
	var app App
	var inv Inventory
	var proc Processing

	flag.StringVar(&http.HostString, "a", `localhost:8080`, "HTTP server endpoint")
	flag.StringVar(&app.LogLevel, "l", `error`, "Log level")
	flag.StringVar(&app.Mode, "m", `DEV`, "PROD / DEV")
	flag.IntVar(&inv.LowStockThreshold, "t", 10, "Low stock alert threshold")
	flag.IntVar(&inv.PriceTolerancePercent, "p", 5, "Allowed price drift in percent")
	flag.IntVar(&proc.Workers, "w", 4, "Order processing workers")
	flag.IntVar(&proc.QueueSize, "q", 16, "Order processing queue size")
	flag.Parse()

	err := env.Parse(&http)
	if err != nil {
		return nil, fmt.Errorf("error parsing http config: %w", err)
	}
	err = env.Parse(&app)
	if err != nil {
		return nil, fmt.Errorf("error parsing app config: %w", err)
	}
	err = env.Parse(&inv)
	if err != nil {
		return nil, fmt.Errorf("error parsing inventory config: %w", err)
	}
	err = env.Parse(&proc)
	if err != nil {
		return nil, fmt.Errorf("error parsing processing config: %w", err)
	}

	config := Config{
		HTTP:       &http,
		App:        &app,
		Inventory:  &inv,
		Processing: &proc,
	}

	return &config, nil
}
