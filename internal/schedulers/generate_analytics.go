package schedulers

import (
	"cmp"
	"slices"
	"strings"

	"cpu-scheduler/internal/responses"
	"cpu-scheduler/internal/util"
)

// cpuUtilization is reported as a constant; idle gaps are not subtracted.
const cpuUtilization = 1

// generateResponse sorts and merges the raw timeline, orders results by id
// and derives the aggregate metrics.
func generateResponse(timeline []responses.ExecutionSegment, results []responses.ProcessResult) responses.SimulationResponse {
	gantt := mergeContiguous(timeline)

	makespan := 0
	for _, s := range gantt {
		makespan = max(makespan, s.End)
	}

	var throughput float64
	if makespan > 0 {
		throughput = float64(len(results)) / float64(makespan)
	}

	perProcess := slices.Clone(results)
	slices.SortStableFunc(perProcess, func(a, b responses.ProcessResult) int {
		return strings.Compare(a.ID, b.ID)
	})

	averageWaitingTime, averageResponseTime, averageTurnAroundTime := util.CalculateAverage(perProcess)
	return responses.SimulationResponse{
		Gantt:      gantt,
		PerProcess: perProcess,
		Metrics: responses.Metrics{
			AvgWaitingTime:    averageWaitingTime,
			AvgTurnaroundTime: averageTurnAroundTime,
			AvgResponseTime:   averageResponseTime,
			Throughput:        throughput,
			Makespan:          makespan,
			CpuUtilization:    cpuUtilization,
		},
	}
}

// mergeContiguous sorts segments by start and joins neighbours that belong
// to the same process and touch end to start.
func mergeContiguous(timeline []responses.ExecutionSegment) []responses.ExecutionSegment {
	sorted := slices.Clone(timeline)
	slices.SortStableFunc(sorted, func(a, b responses.ExecutionSegment) int {
		return cmp.Compare(a.Start, b.Start)
	})

	merged := make([]responses.ExecutionSegment, 0, len(sorted))
	for _, s := range sorted {
		if n := len(merged); n > 0 && merged[n-1].ProcessID == s.ProcessID && merged[n-1].End == s.Start {
			merged[n-1].End = s.End
			continue
		}
		merged = append(merged, s)
	}
	return merged
}
