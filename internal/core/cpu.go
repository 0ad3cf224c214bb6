package core

import (
	"cpu-scheduler/internal/requests"
	"cpu-scheduler/internal/responses"
)

// Process is the live scheduling state of one admitted process. Exactly one
// ready structure (or the CPU) holds a given *Process at any time.
type Process struct {
	Spec      requests.ProcessSpec
	Remaining int
	Started   bool
	Level     int // MLFQ level, 0 is the highest
	LevelTime int // time consumed at the current level
	BoostedAt int
}

func NewProcess(spec requests.ProcessSpec, admittedAt int) *Process {
	return &Process{
		Spec:      spec,
		Remaining: spec.Burst,
		BoostedAt: admittedAt,
	}
}

func (p *Process) Done() bool {
	return p.Remaining <= 0
}

// CPU is a single simulated core. It owns the clock and the raw, unmerged
// timeline of everything it has executed.
type CPU struct {
	clock    int
	timeline []responses.ExecutionSegment
}

func NewCPU(processCount int) *CPU {
	return &CPU{
		timeline: make([]responses.ExecutionSegment, 0, processCount),
	}
}

func (c *CPU) Clock() int {
	return c.clock
}

// IdleUntil jumps the clock forward to t. No segment is emitted for the gap.
func (c *CPU) IdleUntil(t int) {
	if t > c.clock {
		c.clock = t
	}
}

// Execute runs p for up to duration time units, capped at its remaining
// burst, and emits exactly one segment. It returns the time actually run.
func (c *CPU) Execute(p *Process, duration int) int {
	if duration > p.Remaining {
		duration = p.Remaining
	}
	if duration <= 0 {
		return 0
	}

	start := c.clock
	c.clock += duration
	p.Remaining -= duration
	p.LevelTime += duration
	c.timeline = append(c.timeline, responses.ExecutionSegment{
		ProcessID: p.Spec.ID,
		Start:     start,
		End:       c.clock,
	})
	return duration
}

// Timeline returns the segments executed so far, in emission order.
func (c *CPU) Timeline() []responses.ExecutionSegment {
	return c.timeline
}
