// Package main is the entry point for the allocation-service application.
//
// @title           Allocation Service API
// @version         1.0.0
// @description     API for allocating orders to the most efficient package options.
//
//	This service matches each order to the package with the best fill-to-cost
//	ratio, and reports savings against a declared or even-split baseline.
//
// @termsOfService  http://swagger.io/terms/
//
// @contact.name   API Support
// @contact.email  support@example.com
// @contact.url    https://github.com/guttosm/allocation-service
//
// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT
//
// @host      localhost:8080
// @BasePath  /
//
// @tag.name        Allocation
// @tag.description Synchronous order-to-package allocation
//
// @tag.name        Analyses
// @tag.description Asynchronous batch analysis lifecycle
//
// @tag.name        Health
// @tag.description Health check endpoints
package main

import (
	_ "github.com/guttosm/allocation-service/docs" // swagger docs

	"github.com/guttosm/allocation-service/config"
	"github.com/guttosm/allocation-service/internal/app"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Load()

	router := app.InitializeApp(cfg)
	server := app.NewServer(router, cfg.Server.Port)

	if err := server.Run(); err != nil {
		log.Fatal().Err(err).Msg("Server error")
	}
}
