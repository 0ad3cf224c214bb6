package schedulers

import (
	"cmp"

	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/requests"
	"cpu-scheduler/internal/responses"
)

// compareShortestJob orders by total burst, then arrival, then id.
func compareShortestJob(a, b *core.Process) int {
	return cmp.Or(
		cmp.Compare(a.Spec.Burst, b.Spec.Burst),
		compareArrival(a.Spec, b.Spec),
	)
}

// ScheduleShortestJobFirst is non-preemptive: once selected, a process runs
// to completion even if a shorter one arrives meanwhile.
func ScheduleShortestJobFirst(request requests.SimulationRequest) (responses.SimulationResponse, error) {
	if err := validateProcesses(request.Processes); err != nil {
		return responses.SimulationResponse{}, err
	}
	return runToCompletion(request.Processes, core.NewMinHeap(compareShortestJob))
}

// runToCompletion is the non-preemptive discrete-event loop shared by SJF
// and non-preemptive priority. ready decides the selection order.
func runToCompletion(processes []requests.ProcessSpec, ready *core.MinHeap[*core.Process]) (responses.SimulationResponse, error) {
	pending := newArrivals(processes)
	cpu := core.NewCPU(len(processes))
	results := newLedger(processes)
	push := func(p *core.Process) bool {
		ready.Push(p)
		return true
	}

	for !pending.exhausted() || !ready.IsEmpty() {
		if ready.IsEmpty() {
			next, _ := pending.nextArrival()
			cpu.IdleUntil(next)
		}
		if err := pending.admit(cpu.Clock(), push); err != nil {
			return responses.SimulationResponse{}, err
		}

		process, ok := ready.Pop()
		if !ok {
			continue
		}
		results.dispatch(process, cpu.Clock())
		cpu.Execute(process, process.Remaining)
		results.complete(process, cpu.Clock())
	}

	return generateResponse(cpu.Timeline(), results.list()), nil
}
