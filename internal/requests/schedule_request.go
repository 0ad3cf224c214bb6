package requests

// Algorithm names a scheduling discipline.
type Algorithm string

const (
	FirstComeFirstServe        Algorithm = "FCFS"
	ShortestJobFirst           Algorithm = "SJF"
	ShortestRemainingTime      Algorithm = "SRTF"
	PriorityNonPreemptive      Algorithm = "PRIORITY_NON_PREEMPTIVE"
	PriorityPreemptive         Algorithm = "PRIORITY_PREEMPTIVE"
	RoundRobin                 Algorithm = "ROUND_ROBIN"
	MultilevelFeedbackQueue    Algorithm = "MLFQ"
	shortestJobFirstAlias      Algorithm = "SJF_NON_PREEMPTIVE"
	shortestRemainingTimeAlias Algorithm = "SRTF_PREEMPTIVE"
)

const (
	DefaultTimeQuantum   = 1
	DefaultBoostInterval = 10
)

// Algorithms returns every supported algorithm in a fixed order.
func Algorithms() []Algorithm {
	return []Algorithm{
		FirstComeFirstServe,
		ShortestJobFirst,
		ShortestRemainingTime,
		PriorityNonPreemptive,
		PriorityPreemptive,
		RoundRobin,
		MultilevelFeedbackQueue,
	}
}

// Normalize maps the client's legacy tags onto the canonical ones.
func (a Algorithm) Normalize() Algorithm {
	switch a {
	case shortestJobFirstAlias:
		return ShortestJobFirst
	case shortestRemainingTimeAlias:
		return ShortestRemainingTime
	default:
		return a
	}
}

func (a Algorithm) String() string {
	return string(a)
}

type ProcessSpec struct {
	ID       string `json:"id"`
	Arrival  int    `json:"arrival"`
	Burst    int    `json:"burst"`
	Priority *int   `json:"priority,omitempty"`
}

// PriorityValue returns the priority, treating an absent one as 0.
func (p ProcessSpec) PriorityValue() int {
	if p.Priority == nil {
		return 0
	}
	return *p.Priority
}

// MLFQLevel is one rung of the feedback ladder. Level 0 is the highest priority.
type MLFQLevel struct {
	Quantum   int       `json:"quantum"`
	Algorithm Algorithm `json:"algorithm"`
}

// DefaultMLFQLevels is the three level ladder used when a request brings none.
func DefaultMLFQLevels() []MLFQLevel {
	return []MLFQLevel{
		{Quantum: 1, Algorithm: RoundRobin},
		{Quantum: 2, Algorithm: RoundRobin},
		{Quantum: 4, Algorithm: FirstComeFirstServe},
	}
}

type SimulationRequest struct {
	Algorithm             Algorithm     `json:"algorithm"`
	Processes             []ProcessSpec `json:"processes"`
	Quantum               *int          `json:"quantum,omitempty"`
	ContextSwitchCost     *int          `json:"contextSwitchCost,omitempty"` // accepted, not simulated
	PriorityLowerIsHigher *bool         `json:"priorityLowerIsHigher,omitempty"`
	MLFQLevels            []MLFQLevel   `json:"mlfqLevels,omitempty"`
	BoostInterval         *int          `json:"boostInterval,omitempty"`
}

func (r SimulationRequest) TimeQuantum() int {
	if r.Quantum == nil {
		return DefaultTimeQuantum
	}
	return *r.Quantum
}

func (r SimulationRequest) LowerIsHigher() bool {
	if r.PriorityLowerIsHigher == nil {
		return true
	}
	return *r.PriorityLowerIsHigher
}

func (r SimulationRequest) Levels() []MLFQLevel {
	if len(r.MLFQLevels) == 0 {
		return DefaultMLFQLevels()
	}
	return r.MLFQLevels
}

func (r SimulationRequest) Boost() int {
	if r.BoostInterval == nil {
		return DefaultBoostInterval
	}
	return *r.BoostInterval
}
