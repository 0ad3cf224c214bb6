package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// SetupRoutes mounts the scheduler API. gatherer may be nil, in which case
// /metrics is not exposed. limiter may be nil to leave /api unthrottled.
func SetupRoutes(app *fiber.App, handler SchedulerHandler, gatherer prometheus.Gatherer, limiter *ClientLimiter) {
	app.Get("/health", handler.Health)
	if gatherer != nil {
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	}

	api := app.Group("/api")
	if limiter != nil {
		api.Use(limiter.Middleware())
	}

	v1 := api.Group("/v1")
	{
		v1.Post("/simulate", handler.Simulate)
		v1.Post("/fcfs", handler.FirstComeFirstServe)
		v1.Post("/sjf", handler.ShortestJobFirst)
		v1.Post("/srtf", handler.ShortestRemainingTimeFirst)
		v1.Post("/priority", handler.PriorityNonPreemptive)
		v1.Post("/priority-preemptive", handler.PriorityPreemptive)
		v1.Post("/rr", handler.RoundRobin)
		v1.Post("/mlfq", handler.MultilevelFeedbackQueue)
		v1.Post("/all", handler.AllAlgorithms)
	}
}
