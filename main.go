package main

import (
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"cpu-scheduler/api"
	"cpu-scheduler/config"
)

func main() {
	cfg := config.GetSchedulerConfig()

	app := fiber.New(fiber.Config{
		AppName:   "cpu-scheduler",
		BodyLimit: cfg.BodyLimit,
	})
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(logger.New(logger.Config{
		Format: "${time} ${locals:requestid} ${status} ${method} ${path} ${latency}\n",
	}))

	var metrics *api.SimulationMetrics
	var gatherer prometheus.Gatherer
	if cfg.MetricsEnabled {
		registry := prometheus.NewRegistry()
		metrics = api.NewSimulationMetrics(registry)
		gatherer = registry
	}

	var limiter *api.ClientLimiter
	if cfg.RateLimitPerSecond > 0 {
		limiter = api.NewClientLimiter(cfg.RateLimitPerSecond, cfg.RateLimitBurst)
	}

	handler := api.NewSchedulerHandlerImpl(cfg, metrics)
	api.SetupRoutes(app, handler, gatherer, limiter)

	addr := fmt.Sprintf(":%d", cfg.Port)
	log.Printf("scheduler api listening on %s", addr)
	log.Fatalln(app.Listen(addr))
}
