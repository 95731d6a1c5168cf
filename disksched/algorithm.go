package disksched

import (
	"encoding/json"
	"fmt"
)

// Algorithm selects a disk scheduling policy.
type Algorithm int

const (
	FCFS  Algorithm = iota // First Come First Serve
	SSTF                   // Shortest Seek Time First
	SCAN                   // elevator: sweep, reverse at the edge
	CSCAN                  // circular: sweep, jump back, sweep again
)

// Algorithms lists every policy in catalog order.
var Algorithms = []Algorithm{FCFS, SSTF, SCAN, CSCAN}

// Request is the input shared by all policies.
type Request struct {
	InitialPosition int       `json:"initialPosition"`
	Tracks          []int     `json:"requests"`
	DiskSize        int       `json:"diskSize"`
	Direction       Direction `json:"direction,omitempty"`
}

// String returns the display name of the algorithm
func (a Algorithm) String() string {
	switch a {
	case FCFS:
		return "FCFS"
	case SSTF:
		return "SSTF"
	case SCAN:
		return "SCAN"
	case CSCAN:
		return "C-SCAN"
	default:
		return fmt.Sprintf("unknown(%d)", int(a))
	}
}

// ID returns the identifier used in scenario documents
func (a Algorithm) ID() string {
	switch a {
	case FCFS:
		return "fcfs"
	case SSTF:
		return "sstf"
	case SCAN:
		return "scan"
	case CSCAN:
		return "c-scan"
	default:
		return ""
	}
}

// UsesDirection reports whether Request.Direction and DiskSize matter.
func (a Algorithm) UsesDirection() bool {
	return a == SCAN || a == CSCAN
}

// ParseAlgorithm parses an identifier into an Algorithm. "fcfs-disk" is
// accepted as the catalog spelling of FCFS.
func ParseAlgorithm(s string) (Algorithm, error) {
	if s == "fcfs-disk" {
		return FCFS, nil
	}
	for _, a := range Algorithms {
		if a.ID() == s {
			return a, nil
		}
	}
	return FCFS, fmt.Errorf("invalid disk scheduling algorithm: %s (must be 'fcfs', 'sstf', 'scan' or 'c-scan')", s)
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

// Run executes alg over req. Inputs are assumed validated: every track and
// the initial position lie in [0, DiskSize).
func Run(alg Algorithm, req Request) Result {
	switch alg {
	case SSTF:
		return RunSSTF(req.InitialPosition, req.Tracks)
	case SCAN:
		return RunSCAN(req.InitialPosition, req.Tracks, req.DiskSize, req.Direction)
	case CSCAN:
		return RunCSCAN(req.InitialPosition, req.Tracks, req.DiskSize, req.Direction)
	default:
		return RunFCFS(req.InitialPosition, req.Tracks)
	}
}
