package cpusched

import (
	"encoding/json"
	"fmt"
)

// Algorithm selects a CPU scheduling policy.
type Algorithm int

const (
	FCFS       Algorithm = iota // First Come First Serve
	SJF                         // Shortest Job First (SRTF when preemptive)
	Priority                    // lower priority value runs first
	RoundRobin                  // fixed quantum, FIFO ready queue
)

// Algorithms lists every policy in catalog order.
var Algorithms = []Algorithm{FCFS, SJF, Priority, RoundRobin}

// Options carries the parameters some policies need.
type Options struct {
	Preemptive bool `json:"preemptive"` // SJF and Priority only
	Quantum    int  `json:"quantum"`    // Round Robin only
}

// String returns the display name of the algorithm
func (a Algorithm) String() string {
	switch a {
	case FCFS:
		return "FCFS"
	case SJF:
		return "SJF"
	case Priority:
		return "Priority"
	case RoundRobin:
		return "Round Robin"
	default:
		return fmt.Sprintf("unknown(%d)", int(a))
	}
}

// ID returns the catalog identifier of the algorithm
func (a Algorithm) ID() string {
	switch a {
	case FCFS:
		return "fcfs"
	case SJF:
		return "sjf"
	case Priority:
		return "priority"
	case RoundRobin:
		return "round-robin"
	default:
		return ""
	}
}

// SupportsPreemption reports whether Options.Preemptive changes the policy.
func (a Algorithm) SupportsPreemption() bool {
	return a == SJF || a == Priority
}

// ParseAlgorithm parses a catalog identifier into an Algorithm
func ParseAlgorithm(s string) (Algorithm, error) {
	for _, a := range Algorithms {
		if a.ID() == s {
			return a, nil
		}
	}
	return FCFS, fmt.Errorf("invalid cpu scheduling algorithm: %s (must be 'fcfs', 'sjf', 'priority' or 'round-robin')", s)
}

// MarshalJSON implements json.Marshaler for Algorithm
func (a Algorithm) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.ID())
}

// UnmarshalJSON implements json.Unmarshaler for Algorithm
func (a *Algorithm) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseAlgorithm(s)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// Run executes alg over processes. Inputs are assumed validated: unique ids,
// arrival >= 0, burst > 0, and a positive quantum for Round Robin.
func Run(alg Algorithm, processes []Process, opts Options) Result {
	switch alg {
	case SJF:
		return RunSJF(processes, opts.Preemptive)
	case Priority:
		return RunPriority(processes, opts.Preemptive)
	case RoundRobin:
		return RunRoundRobin(processes, opts.Quantum)
	default:
		return RunFCFS(processes)
	}
}
