package paging

import (
	"encoding/json"
	"fmt"
)

// Algorithm selects a page-replacement policy.
type Algorithm int

const (
	FIFO    Algorithm = iota // First In First Out
	LRU                      // Least Recently Used
	Optimal                  // Belady's optimal (needs the future stream)
	LFU                      // Least Frequently Used, FIFO among equal counts
)

// Algorithms lists every policy in catalog order.
var Algorithms = []Algorithm{FIFO, LRU, Optimal, LFU}

// String returns the display name of the algorithm
func (a Algorithm) String() string {
	switch a {
	case FIFO:
		return "FIFO"
	case LRU:
		return "LRU"
	case Optimal:
		return "Optimal"
	case LFU:
		return "LFU"
	default:
		return fmt.Sprintf("unknown(%d)", int(a))
	}
}

// ID returns the catalog identifier of the algorithm
func (a Algorithm) ID() string {
	switch a {
	case FIFO:
		return "fifo"
	case LRU:
		return "lru"
	case Optimal:
		return "optimal"
	case LFU:
		return "lfu"
	default:
		return ""
	}
}

// ParseAlgorithm parses a catalog identifier into an Algorithm
func ParseAlgorithm(s string) (Algorithm, error) {
	for _, a := range Algorithms {
		if a.ID() == s {
			return a, nil
		}
	}
	return FIFO, fmt.Errorf("invalid page replacement algorithm: %s (must be 'fifo', 'lru', 'optimal' or 'lfu')", s)
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

// Run executes alg over pages with numFrames frames.
// Inputs are assumed validated: numFrames >= 1 and pages non-negative.
func Run(alg Algorithm, pages []int, numFrames int) Result {
	switch alg {
	case LRU:
		return RunLRU(pages, numFrames)
	case Optimal:
		return RunOptimal(pages, numFrames)
	case LFU:
		return RunLFU(pages, numFrames)
	default:
		return RunFIFO(pages, numFrames)
	}
}
