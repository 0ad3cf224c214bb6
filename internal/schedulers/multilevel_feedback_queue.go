package schedulers

import (
	"fmt"

	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/requests"
	"cpu-scheduler/internal/responses"
)

// levelQueue is the ready structure of one MLFQ level.
type levelQueue interface {
	push(p *core.Process) bool
	pop() (*core.Process, bool)
	isEmpty() bool
}

type roundRobinLevel struct {
	queue *core.RingBuffer[*core.Process]
}

func (l roundRobinLevel) push(p *core.Process) bool  { return l.queue.Enqueue(p) }
func (l roundRobinLevel) pop() (*core.Process, bool) { return l.queue.Dequeue() }
func (l roundRobinLevel) isEmpty() bool              { return l.queue.IsEmpty() }

// fcfsLevel serves by original arrival, then id.
type fcfsLevel struct {
	queue *core.MinHeap[*core.Process]
}

func (l fcfsLevel) push(p *core.Process) bool {
	l.queue.Push(p)
	return true
}
func (l fcfsLevel) pop() (*core.Process, bool) { return l.queue.Pop() }
func (l fcfsLevel) isEmpty() bool              { return l.queue.IsEmpty() }

// feedbackQueues is the MLFQ ladder. Index 0 is the highest priority.
type feedbackQueues struct {
	levels []requests.MLFQLevel
	queues []levelQueue
}

func newFeedbackQueues(levels []requests.MLFQLevel, capacity int) *feedbackQueues {
	f := &feedbackQueues{
		levels: levels,
		queues: make([]levelQueue, len(levels)),
	}
	for i, level := range levels {
		if level.Algorithm.Normalize() == requests.FirstComeFirstServe {
			f.queues[i] = fcfsLevel{queue: core.NewMinHeap(func(a, b *core.Process) int {
				return compareArrival(a.Spec, b.Spec)
			})}
			continue
		}
		f.queues[i] = roundRobinLevel{queue: core.NewRingBuffer[*core.Process](capacity)}
	}
	return f
}

func (f *feedbackQueues) enqueue(p *core.Process) bool {
	return f.queues[p.Level].push(p)
}

// next pops from the first non-empty level.
func (f *feedbackQueues) next() (*core.Process, bool) {
	for _, q := range f.queues {
		if p, ok := q.pop(); ok {
			return p, true
		}
	}
	return nil, false
}

func (f *feedbackQueues) isEmpty() bool {
	for _, q := range f.queues {
		if !q.isEmpty() {
			return false
		}
	}
	return true
}

// boost moves every process below the top level back to level 0, level by
// level in each level's own order, and resets its level timer.
func (f *feedbackQueues) boost(t int) error {
	for level := 1; level < len(f.queues); level++ {
		for {
			p, ok := f.queues[level].pop()
			if !ok {
				break
			}
			p.Level = 0
			p.LevelTime = 0
			p.BoostedAt = t
			if !f.enqueue(p) {
				return fmt.Errorf("%w: boosting %q at t=%d", ErrReadyQueueFull, p.Spec.ID, t)
			}
		}
	}
	return nil
}

func (f *feedbackQueues) lowest() int {
	return len(f.levels) - 1
}

func validateLevels(levels []requests.MLFQLevel) error {
	for i, level := range levels {
		switch level.Algorithm.Normalize() {
		case requests.FirstComeFirstServe, requests.RoundRobin:
		default:
			return fmt.Errorf("%w: mlfq level %d uses %q", ErrUnsupportedAlgorithm, i, level.Algorithm)
		}
		if level.Quantum <= 0 {
			return fmt.Errorf("%w: mlfq level %d got %d", ErrInvalidQuantum, i, level.Quantum)
		}
	}
	return nil
}

// ScheduleMultilevelFeedbackQueue admits every process at level 0. A process
// that uses its whole quantum without finishing drops one level, capped at
// the lowest. Every boostInterval time units all lower levels are promoted
// back to level 0.
func ScheduleMultilevelFeedbackQueue(request requests.SimulationRequest) (responses.SimulationResponse, error) {
	levels := request.Levels()
	if err := validateLevels(levels); err != nil {
		return responses.SimulationResponse{}, err
	}
	boostInterval := request.Boost()
	if boostInterval <= 0 {
		return responses.SimulationResponse{}, fmt.Errorf("%w: got %d", ErrInvalidBoostInterval, boostInterval)
	}
	if err := validateProcesses(request.Processes); err != nil {
		return responses.SimulationResponse{}, err
	}

	pending := newArrivals(request.Processes)
	ladder := newFeedbackQueues(levels, len(request.Processes))
	cpu := core.NewCPU(len(request.Processes))
	results := newLedger(request.Processes)
	nextBoost := boostInterval

	for !pending.exhausted() || !ladder.isEmpty() {
		if now := cpu.Clock(); now >= nextBoost {
			if err := ladder.boost(now); err != nil {
				return responses.SimulationResponse{}, err
			}
			nextBoost = (now/boostInterval + 1) * boostInterval
		}
		if err := pending.admit(cpu.Clock(), ladder.enqueue); err != nil {
			return responses.SimulationResponse{}, err
		}

		process, ok := ladder.next()
		if !ok {
			next, _ := pending.nextArrival()
			cpu.IdleUntil(next)
			continue
		}

		level := process.Level
		timeQuantum := levels[level].Quantum
		results.dispatch(process, cpu.Clock())
		ran := cpu.Execute(process, timeQuantum)

		if err := pending.admit(cpu.Clock(), ladder.enqueue); err != nil {
			return responses.SimulationResponse{}, err
		}
		if process.Done() {
			results.complete(process, cpu.Clock())
			continue
		}
		if ran >= timeQuantum && level < ladder.lowest() {
			process.Level = level + 1
			process.LevelTime = 0
		}
		if !ladder.enqueue(process) {
			return responses.SimulationResponse{}, fmt.Errorf("%w: re-queueing %q at t=%d", ErrReadyQueueFull, process.Spec.ID, cpu.Clock())
		}
	}

	return generateResponse(cpu.Timeline(), results.list()), nil
}
