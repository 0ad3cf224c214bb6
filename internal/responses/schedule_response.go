package responses

// ExecutionSegment is one Gantt slice: ProcessID held the CPU over [Start, End).
type ExecutionSegment struct {
	ProcessID string `json:"id"`
	Start     int    `json:"start"`
	End       int    `json:"end"`
}

func (s ExecutionSegment) Duration() int {
	return s.End - s.Start
}

type ProcessResult struct {
	ID             string `json:"id"`
	Arrival        int    `json:"arrival"`
	Burst          int    `json:"burst"`
	Priority       *int   `json:"priority,omitempty"`
	StartTime      int    `json:"startTime"`
	CompletionTime int    `json:"completionTime"`
	TurnaroundTime int    `json:"turnaroundTime"`
	WaitingTime    int    `json:"waitingTime"`
	ResponseTime   int    `json:"responseTime"`
	Preemptions    int    `json:"preemptions"`
}

type Metrics struct {
	AvgWaitingTime    float64 `json:"avgWaitingTime"`
	AvgTurnaroundTime float64 `json:"avgTurnaroundTime"`
	AvgResponseTime   float64 `json:"avgResponseTime"`
	Throughput        float64 `json:"throughput"`
	Makespan          int     `json:"makespan"`
	CpuUtilization    float64 `json:"cpuUtilization"`
}

type SimulationResponse struct {
	Gantt      []ExecutionSegment `json:"gantt"`
	PerProcess []ProcessResult    `json:"perProcess"`
	Metrics    Metrics            `json:"metrics"`
}
