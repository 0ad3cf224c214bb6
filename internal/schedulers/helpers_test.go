package schedulers

import (
	"cpu-scheduler/internal/requests"
	"cpu-scheduler/internal/responses"
)

func proc(id string, arrival, burst int) requests.ProcessSpec {
	return requests.ProcessSpec{ID: id, Arrival: arrival, Burst: burst}
}

func procWithPriority(id string, arrival, burst, priority int) requests.ProcessSpec {
	p := proc(id, arrival, burst)
	p.Priority = &priority
	return p
}

func seg(id string, start, end int) responses.ExecutionSegment {
	return responses.ExecutionSegment{ProcessID: id, Start: start, End: end}
}

func intPtr(v int) *int {
	return &v
}

func boolPtr(v bool) *bool {
	return &v
}

func byID(res responses.SimulationResponse) map[string]responses.ProcessResult {
	out := make(map[string]responses.ProcessResult, len(res.PerProcess))
	for _, r := range res.PerProcess {
		out[r.ID] = r
	}
	return out
}
