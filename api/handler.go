package api

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"cpu-scheduler/config"
	"cpu-scheduler/internal/requests"
	"cpu-scheduler/internal/responses"
	"cpu-scheduler/internal/schedulers"
)

const (
	codeBadRequest = "BAD_REQUEST"
	codeInternal   = "INTERNAL"
)

type SchedulerHandler interface {
	Simulate(ctx *fiber.Ctx) error
	FirstComeFirstServe(ctx *fiber.Ctx) error
	ShortestJobFirst(ctx *fiber.Ctx) error
	ShortestRemainingTimeFirst(ctx *fiber.Ctx) error
	PriorityNonPreemptive(ctx *fiber.Ctx) error
	PriorityPreemptive(ctx *fiber.Ctx) error
	RoundRobin(ctx *fiber.Ctx) error
	MultilevelFeedbackQueue(ctx *fiber.Ctx) error
	AllAlgorithms(ctx *fiber.Ctx) error
	Health(ctx *fiber.Ctx) error
}

type SchedulerHandlerImpl struct {
	config  *config.SchedulerConfig
	metrics *SimulationMetrics
}

// NewSchedulerHandlerImpl wires a handler. metrics may be nil.
func NewSchedulerHandlerImpl(config *config.SchedulerConfig, metrics *SimulationMetrics) *SchedulerHandlerImpl {
	return &SchedulerHandlerImpl{config: config, metrics: metrics}
}

// Simulate runs the algorithm named in the request body.
func (s *SchedulerHandlerImpl) Simulate(ctx *fiber.Ctx) error {
	return s.schedule(ctx, "")
}

func (s *SchedulerHandlerImpl) FirstComeFirstServe(ctx *fiber.Ctx) error {
	return s.schedule(ctx, requests.FirstComeFirstServe)
}

func (s *SchedulerHandlerImpl) ShortestJobFirst(ctx *fiber.Ctx) error {
	return s.schedule(ctx, requests.ShortestJobFirst)
}

func (s *SchedulerHandlerImpl) ShortestRemainingTimeFirst(ctx *fiber.Ctx) error {
	return s.schedule(ctx, requests.ShortestRemainingTime)
}

func (s *SchedulerHandlerImpl) PriorityNonPreemptive(ctx *fiber.Ctx) error {
	return s.schedule(ctx, requests.PriorityNonPreemptive)
}

func (s *SchedulerHandlerImpl) PriorityPreemptive(ctx *fiber.Ctx) error {
	return s.schedule(ctx, requests.PriorityPreemptive)
}

func (s *SchedulerHandlerImpl) RoundRobin(ctx *fiber.Ctx) error {
	return s.schedule(ctx, requests.RoundRobin)
}

func (s *SchedulerHandlerImpl) MultilevelFeedbackQueue(ctx *fiber.Ctx) error {
	return s.schedule(ctx, requests.MultilevelFeedbackQueue)
}

// AllAlgorithms runs every algorithm against the same process list and
// returns the responses keyed by algorithm.
func (s *SchedulerHandlerImpl) AllAlgorithms(ctx *fiber.Ctx) error {
	request, err := s.parseRequest(ctx)
	if err != nil {
		return writeError(ctx, fiber.StatusBadRequest, codeBadRequest, err.Error())
	}

	all := make(map[requests.Algorithm]responses.SimulationResponse, len(requests.Algorithms()))
	for _, algorithm := range requests.Algorithms() {
		request.Algorithm = algorithm
		response, err := s.run(ctx, request)
		if err != nil {
			return s.writeSimulationError(ctx, err)
		}
		all[algorithm] = response
	}
	return ctx.JSON(all)
}

func (s *SchedulerHandlerImpl) Health(ctx *fiber.Ctx) error {
	return ctx.SendString("OK")
}

func (s *SchedulerHandlerImpl) schedule(ctx *fiber.Ctx, algorithm requests.Algorithm) error {
	request, err := s.parseRequest(ctx)
	if err != nil {
		return writeError(ctx, fiber.StatusBadRequest, codeBadRequest, err.Error())
	}
	if algorithm != "" {
		request.Algorithm = algorithm
	}

	response, err := s.run(ctx, request)
	if err != nil {
		return s.writeSimulationError(ctx, err)
	}
	return ctx.JSON(response)
}

func (s *SchedulerHandlerImpl) parseRequest(ctx *fiber.Ctx) (requests.SimulationRequest, error) {
	var request requests.SimulationRequest
	if err := ctx.BodyParser(&request); err != nil {
		log.Printf("[%s] invalid request format: %v", requestID(ctx), err)
		return request, fiber.NewError(fiber.StatusBadRequest, "invalid request format")
	}
	if s.config != nil {
		s.config.ApplyDefaults(&request)
	}
	return request, nil
}

func (s *SchedulerHandlerImpl) run(ctx *fiber.Ctx, request requests.SimulationRequest) (responses.SimulationResponse, error) {
	log.Printf("[%s] running %s with %d processes", requestID(ctx), request.Algorithm, len(request.Processes))
	response, err := schedulers.Simulate(request)
	if s.metrics != nil {
		s.metrics.Observe(request.Algorithm, len(request.Processes), response, err)
	}
	if err != nil {
		log.Printf("[%s] %s failed: %v", requestID(ctx), request.Algorithm, err)
		return response, err
	}
	log.Printf("[%s] %s done: makespan=%d", requestID(ctx), request.Algorithm, response.Metrics.Makespan)
	return response, nil
}

func (s *SchedulerHandlerImpl) writeSimulationError(ctx *fiber.Ctx, err error) error {
	if schedulers.IsClientError(err) {
		return writeError(ctx, fiber.StatusBadRequest, codeBadRequest, err.Error())
	}
	return writeError(ctx, fiber.StatusInternalServerError, codeInternal, err.Error())
}

func writeError(ctx *fiber.Ctx, status int, code, message string) error {
	return ctx.Status(status).JSON(fiber.Map{
		"error": fiber.Map{
			"code":    code,
			"message": message,
		},
	})
}

func requestID(ctx *fiber.Ctx) string {
	if id, ok := ctx.Locals("requestid").(string); ok {
		return id
	}
	return "-"
}
