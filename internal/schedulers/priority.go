package schedulers

import (
	"cmp"

	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/requests"
	"cpu-scheduler/internal/responses"
)

// priorityOrder ranks by priority value, then arrival, then id. When
// lowerIsHigher is false the numerically larger priority wins.
func priorityOrder(lowerIsHigher bool) func(a, b *core.Process) int {
	return func(a, b *core.Process) int {
		byPriority := cmp.Compare(a.Spec.PriorityValue(), b.Spec.PriorityValue())
		if !lowerIsHigher {
			byPriority = -byPriority
		}
		return cmp.Or(byPriority, compareArrival(a.Spec, b.Spec))
	}
}

func SchedulePriorityNonPreemptive(request requests.SimulationRequest) (responses.SimulationResponse, error) {
	if err := validateProcesses(request.Processes); err != nil {
		return responses.SimulationResponse{}, err
	}
	return runToCompletion(request.Processes, core.NewMinHeap(priorityOrder(request.LowerIsHigher())))
}

// SchedulePriorityPreemptive re-evaluates the ready set at every arrival
// boundary, the same way SRTF does.
func SchedulePriorityPreemptive(request requests.SimulationRequest) (responses.SimulationResponse, error) {
	if err := validateProcesses(request.Processes); err != nil {
		return responses.SimulationResponse{}, err
	}
	return runToNextArrival(request.Processes, core.NewMinHeap(priorityOrder(request.LowerIsHigher())))
}
