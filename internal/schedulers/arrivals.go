package schedulers

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/requests"
	"cpu-scheduler/internal/responses"
)

// compareArrival orders by arrival time, then id.
func compareArrival(a, b requests.ProcessSpec) int {
	return cmp.Or(
		cmp.Compare(a.Arrival, b.Arrival),
		strings.Compare(a.ID, b.ID),
	)
}

// arrivals is a cursor over the processes sorted by arrival.
type arrivals struct {
	pending []requests.ProcessSpec
	next    int
}

func newArrivals(processes []requests.ProcessSpec) *arrivals {
	pending := slices.Clone(processes)
	slices.SortStableFunc(pending, compareArrival)
	return &arrivals{pending: pending}
}

// admit hands every not yet admitted process with arrival <= t to push.
// push reports false when the ready structure cannot take the process.
func (a *arrivals) admit(t int, push func(*core.Process) bool) error {
	for a.next < len(a.pending) && a.pending[a.next].Arrival <= t {
		spec := a.pending[a.next]
		if !push(core.NewProcess(spec, t)) {
			return fmt.Errorf("%w: admitting %q at t=%d", ErrReadyQueueFull, spec.ID, t)
		}
		a.next++
	}
	return nil
}

func (a *arrivals) exhausted() bool {
	return a.next >= len(a.pending)
}

// nextArrival returns the arrival time of the next pending process.
func (a *arrivals) nextArrival() (int, bool) {
	if a.exhausted() {
		return 0, false
	}
	return a.pending[a.next].Arrival, true
}

// ledger accumulates one ProcessResult per input process, keyed by id.
type ledger struct {
	order   []string
	results map[string]*responses.ProcessResult
}

func newLedger(processes []requests.ProcessSpec) *ledger {
	l := &ledger{
		order:   make([]string, 0, len(processes)),
		results: make(map[string]*responses.ProcessResult, len(processes)),
	}
	for _, p := range processes {
		if _, ok := l.results[p.ID]; !ok {
			l.order = append(l.order, p.ID)
		}
		l.results[p.ID] = &responses.ProcessResult{
			ID:        p.ID,
			Arrival:   p.Arrival,
			Burst:     p.Burst,
			Priority:  p.Priority,
			StartTime: -1,
		}
	}
	return l
}

// dispatch records that p was selected at t: the first selection fixes the
// start and response time, every later one counts as a preemption.
func (l *ledger) dispatch(p *core.Process, t int) {
	res := l.results[p.Spec.ID]
	if !p.Started {
		p.Started = true
		res.StartTime = t
		res.ResponseTime = t - p.Spec.Arrival
		return
	}
	res.Preemptions++
}

// complete merges the completion of p at t into its result.
func (l *ledger) complete(p *core.Process, t int) {
	res := l.results[p.Spec.ID]
	res.CompletionTime = t
	res.TurnaroundTime = t - res.Arrival
	res.WaitingTime = res.TurnaroundTime - res.Burst
}

func (l *ledger) list() []responses.ProcessResult {
	out := make([]responses.ProcessResult, 0, len(l.order))
	for _, id := range l.order {
		out = append(out, *l.results[id])
	}
	return out
}
