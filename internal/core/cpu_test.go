package core

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"cpu-scheduler/internal/requests"
	"cpu-scheduler/internal/responses"
)

func TestCPUExecuteEmitsOneSegment(t *testing.T) {
	cpu := NewCPU(1)
	p := NewProcess(requests.ProcessSpec{ID: "P1", Burst: 5}, 0)

	ran := cpu.Execute(p, 2)
	assert.Equal(t, 2, ran)
	assert.Equal(t, 2, cpu.Clock())
	assert.Equal(t, 3, p.Remaining)
	assert.Equal(t, 2, p.LevelTime)

	// capped at the remaining burst
	ran = cpu.Execute(p, 10)
	assert.Equal(t, 3, ran)
	assert.True(t, p.Done())

	assert.Equal(t, []responses.ExecutionSegment{
		{ProcessID: "P1", Start: 0, End: 2},
		{ProcessID: "P1", Start: 2, End: 5},
	}, cpu.Timeline())
}

func TestCPUIdleUntilLeavesGap(t *testing.T) {
	cpu := NewCPU(2)
	cpu.IdleUntil(4)
	assert.Equal(t, 4, cpu.Clock())

	// never moves backwards
	cpu.IdleUntil(1)
	assert.Equal(t, 4, cpu.Clock())

	p := NewProcess(requests.ProcessSpec{ID: "P1", Arrival: 4, Burst: 1}, 4)
	cpu.Execute(p, 1)
	assert.Equal(t, []responses.ExecutionSegment{{ProcessID: "P1", Start: 4, End: 5}}, cpu.Timeline())
}

func TestCPUExecuteZeroDurationEmitsNothing(t *testing.T) {
	cpu := NewCPU(1)
	p := NewProcess(requests.ProcessSpec{ID: "P1", Burst: 3}, 0)
	assert.Equal(t, 0, cpu.Execute(p, 0))
	assert.Empty(t, cpu.Timeline())
	assert.Equal(t, 0, cpu.Clock())
}
