package schedulers

import (
	"cmp"

	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/requests"
	"cpu-scheduler/internal/responses"
)

// compareShortestRemaining orders by remaining burst, then original arrival,
// then id.
func compareShortestRemaining(a, b *core.Process) int {
	return cmp.Or(
		cmp.Compare(a.Remaining, b.Remaining),
		compareArrival(a.Spec, b.Spec),
	)
}

// ScheduleShortestRemainingTimeFirst is preemptive SJF. The running process
// is only re-ranked at arrival instants.
func ScheduleShortestRemainingTimeFirst(request requests.SimulationRequest) (responses.SimulationResponse, error) {
	if err := validateProcesses(request.Processes); err != nil {
		return responses.SimulationResponse{}, err
	}
	return runToNextArrival(request.Processes, core.NewMinHeap(compareShortestRemaining))
}

// runToNextArrival is the preemptive loop shared by SRTF and preemptive
// priority: the selected process runs until it completes or the next
// process arrives, whichever is first, and is then put back into ready.
func runToNextArrival(processes []requests.ProcessSpec, ready *core.MinHeap[*core.Process]) (responses.SimulationResponse, error) {
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

		runFor := process.Remaining
		if next, ok := pending.nextArrival(); ok {
			runFor = min(runFor, next-cpu.Clock())
		}
		cpu.Execute(process, runFor)

		// arrivals during the run are admitted before the current process is ranked again
		if err := pending.admit(cpu.Clock(), push); err != nil {
			return responses.SimulationResponse{}, err
		}
		if process.Done() {
			results.complete(process, cpu.Clock())
			continue
		}
		ready.Push(process)
	}

	return generateResponse(cpu.Timeline(), results.list()), nil
}
