package schedulers

import (
	"cmp"
	"slices"

	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/requests"
	"cpu-scheduler/internal/responses"
)

// ScheduleFirstComeFirstServe runs processes to completion in arrival order.
// Equal arrivals keep their input order.
func ScheduleFirstComeFirstServe(request requests.SimulationRequest) (responses.SimulationResponse, error) {
	if err := validateProcesses(request.Processes); err != nil {
		return responses.SimulationResponse{}, err
	}

	// sort jobs by arrival time
	jobs := slices.Clone(request.Processes)
	slices.SortStableFunc(jobs, func(a, b requests.ProcessSpec) int {
		return cmp.Compare(a.Arrival, b.Arrival)
	})

	readyQueue := core.NewQueue[*core.Process]()
	for _, job := range jobs {
		readyQueue.Enqueue(core.NewProcess(job, job.Arrival))
	}

	cpu := core.NewCPU(len(jobs))
	results := newLedger(request.Processes)
	for !readyQueue.IsEmpty() {
		process, _ := readyQueue.Dequeue()
		cpu.IdleUntil(process.Spec.Arrival)
		results.dispatch(process, cpu.Clock())
		cpu.Execute(process, process.Remaining)
		results.complete(process, cpu.Clock())
	}

	return generateResponse(cpu.Timeline(), results.list()), nil
}
