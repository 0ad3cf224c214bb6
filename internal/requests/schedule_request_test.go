package requests

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimulationRequestDefaults(t *testing.T) {
	var r SimulationRequest
	assert.Equal(t, DefaultTimeQuantum, r.TimeQuantum())
	assert.True(t, r.LowerIsHigher())
	assert.Equal(t, DefaultMLFQLevels(), r.Levels())
	assert.Equal(t, DefaultBoostInterval, r.Boost())

	r.MLFQLevels = []MLFQLevel{}
	assert.Len(t, r.Levels(), 3, "an empty ladder falls back to the default")
}

func TestSimulationRequestDecodesClientShape(t *testing.T) {
	body := `{
		"algorithm": "ROUND_ROBIN",
		"quantum": 0,
		"contextSwitchCost": 2,
		"priorityLowerIsHigher": false,
		"boostInterval": 4,
		"mlfqLevels": [{"quantum": 3, "algorithm": "FCFS"}],
		"processes": [
			{"id": "P1", "arrival": 0, "burst": 3, "priority": 2},
			{"id": "P2", "arrival": 1, "burst": 1}
		]
	}`

	var r SimulationRequest
	require.NoError(t, json.Unmarshal([]byte(body), &r))

	assert.Equal(t, RoundRobin, r.Algorithm)
	assert.Equal(t, 0, r.TimeQuantum(), "an explicit zero quantum is preserved for validation")
	assert.False(t, r.LowerIsHigher())
	assert.Equal(t, 4, r.Boost())
	assert.Equal(t, []MLFQLevel{{Quantum: 3, Algorithm: FirstComeFirstServe}}, r.Levels())
	require.Len(t, r.Processes, 2)
	assert.Equal(t, 2, r.Processes[0].PriorityValue())
	assert.Nil(t, r.Processes[1].Priority)
	assert.Equal(t, 0, r.Processes[1].PriorityValue())
}

func TestAlgorithmNormalize(t *testing.T) {
	assert.Equal(t, ShortestJobFirst, Algorithm("SJF_NON_PREEMPTIVE").Normalize())
	assert.Equal(t, ShortestRemainingTime, Algorithm("SRTF_PREEMPTIVE").Normalize())
	assert.Equal(t, MultilevelFeedbackQueue, MultilevelFeedbackQueue.Normalize())
	assert.Equal(t, Algorithm("LOTTERY"), Algorithm("LOTTERY").Normalize())
	assert.Len(t, Algorithms(), 7)
}
