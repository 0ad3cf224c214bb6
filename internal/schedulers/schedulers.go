// Package schedulers is the simulation engine. Every Schedule* function is a
// pure function of its request: it allocates its own queues and results and
// never logs.
package schedulers

import (
	"fmt"

	"cpu-scheduler/internal/requests"
	"cpu-scheduler/internal/responses"
)

// Simulate routes the request to the scheduler named by its algorithm tag.
func Simulate(request requests.SimulationRequest) (responses.SimulationResponse, error) {
	switch request.Algorithm.Normalize() {
	case requests.FirstComeFirstServe:
		return ScheduleFirstComeFirstServe(request)
	case requests.ShortestJobFirst:
		return ScheduleShortestJobFirst(request)
	case requests.ShortestRemainingTime:
		return ScheduleShortestRemainingTimeFirst(request)
	case requests.PriorityNonPreemptive:
		return SchedulePriorityNonPreemptive(request)
	case requests.PriorityPreemptive:
		return SchedulePriorityPreemptive(request)
	case requests.RoundRobin:
		return ScheduleRoundRobin(request)
	case requests.MultilevelFeedbackQueue:
		return ScheduleMultilevelFeedbackQueue(request)
	default:
		return responses.SimulationResponse{}, fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, request.Algorithm)
	}
}

// validateProcesses checks per-process shape. Duplicate ids are the
// caller's responsibility and are not detected.
func validateProcesses(processes []requests.ProcessSpec) error {
	for i, p := range processes {
		switch {
		case p.ID == "":
			return fmt.Errorf("%w: process %d has an empty id", ErrInvalidProcess, i)
		case p.Arrival < 0:
			return fmt.Errorf("%w: %q has negative arrival %d", ErrInvalidProcess, p.ID, p.Arrival)
		case p.Burst <= 0:
			return fmt.Errorf("%w: %q has non-positive burst %d", ErrInvalidProcess, p.ID, p.Burst)
		}
	}
	return nil
}
