package schedulers

import (
	"fmt"

	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/requests"
	"cpu-scheduler/internal/responses"
)

// ScheduleRoundRobin gives each ready process at most one quantum in FIFO
// order. A process that still has work is put back only after everything
// that arrived during its run has been admitted.
func ScheduleRoundRobin(request requests.SimulationRequest) (responses.SimulationResponse, error) {
	timeQuantum := request.TimeQuantum()
	if timeQuantum <= 0 {
		return responses.SimulationResponse{}, fmt.Errorf("%w: got %d", ErrInvalidQuantum, timeQuantum)
	}
	if err := validateProcesses(request.Processes); err != nil {
		return responses.SimulationResponse{}, err
	}

	pending := newArrivals(request.Processes)
	roundRobinQueue := core.NewRingBuffer[*core.Process](len(request.Processes))
	cpu := core.NewCPU(len(request.Processes))
	results := newLedger(request.Processes)

	for !pending.exhausted() || !roundRobinQueue.IsEmpty() {
		if err := pending.admit(cpu.Clock(), roundRobinQueue.Enqueue); err != nil {
			return responses.SimulationResponse{}, err
		}
		if roundRobinQueue.IsEmpty() {
			next, _ := pending.nextArrival()
			cpu.IdleUntil(next)
			continue
		}

		process, _ := roundRobinQueue.Dequeue()
		results.dispatch(process, cpu.Clock())
		cpu.Execute(process, timeQuantum)

		if err := pending.admit(cpu.Clock(), roundRobinQueue.Enqueue); err != nil {
			return responses.SimulationResponse{}, err
		}
		if process.Done() {
			results.complete(process, cpu.Clock())
			continue
		}
		if !roundRobinQueue.Enqueue(process) {
			return responses.SimulationResponse{}, fmt.Errorf("%w: re-queueing %q at t=%d", ErrReadyQueueFull, process.Spec.ID, cpu.Clock())
		}
	}

	return generateResponse(cpu.Timeline(), results.list()), nil
}
