package main

import (
	"os"

	_ "tracker_orders/docs"
	"tracker_orders/internal/adapter/http/routes"
	"tracker_orders/internal/config"
	"tracker_orders/internal/logging"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Tracker Orders API
// @version         1.0
// @description     Order tracking service for custom tracker builds: admin order management and public progress lookup.

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	configDir := os.Getenv("CONFIG_DIR")
	if configDir == "" {
		configDir = "configs"
	}

	cfg, err := config.Load(configDir, os.Getenv("APP_ENV"))
	if err != nil {
		logging.Base().Fatalf("Failed to load configuration: %v", err)
	}

	logging.Init(logging.Options{
		Service: cfg.App.Name,
		Level:   cfg.App.LogLevel,
		File:    cfg.App.LogFile,
	})

	routes.Run(cfg)
}
