// Package scenario describes one visualizer run as a JSON document,
// validates it and dispatches it to the engines.
package scenario

import (
	"encoding/json"
	"fmt"
	"os"
	"slices"

	"github.com/miretskiy/osviz/cpusched"
	"github.com/miretskiy/osviz/disksched"
	"github.com/miretskiy/osviz/paging"
)

const (
	MaxFrames    = 10  // frames beyond this are unreadable in the frame grid
	MaxProcesses = 10  // rows in the process table
	MaxQuantum   = 100 // Round Robin time slice upper bound
)

// PagingInput is the page replacement workload.
type PagingInput struct {
	Pages  []int `json:"pages"`
	Frames int   `json:"frames"`
}

// CPUInput is the CPU scheduling workload.
type CPUInput struct {
	Processes  []cpusched.Process `json:"processes"`
	Preemptive bool               `json:"preemptive"`
	Quantum    int                `json:"quantum"`
}

// Options returns the engine parameters.
func (c *CPUInput) Options() cpusched.Options {
	return cpusched.Options{Preemptive: c.Preemptive, Quantum: c.Quantum}
}

// Scenario is one run request: a family, the algorithms to run, and the
// family's workload. An empty algorithm list means every algorithm of the
// family.
type Scenario struct {
	Family     Family             `json:"family"`
	Algorithms []string           `json:"algorithms,omitempty"`
	Paging     *PagingInput       `json:"paging,omitempty"`
	CPU        *CPUInput          `json:"cpu,omitempty"`
	Disk       *disksched.Request `json:"disk,omitempty"`
}

// DefaultScenario returns the textbook workload for f with every algorithm
// of the family selected.
func DefaultScenario(f Family) Scenario {
	s := Scenario{Family: f, Algorithms: f.AlgorithmIDs()}
	switch f {
	case FamilyCPUScheduling:
		s.CPU = &CPUInput{
			Processes: []cpusched.Process{
				{ID: 1, Name: "P1", ArrivalTime: 0, BurstTime: 5, Priority: 2},
				{ID: 2, Name: "P2", ArrivalTime: 1, BurstTime: 3, Priority: 1},
				{ID: 3, Name: "P3", ArrivalTime: 2, BurstTime: 8, Priority: 3},
				{ID: 4, Name: "P4", ArrivalTime: 3, BurstTime: 6, Priority: 2},
			},
			Quantum: 2,
		}
	case FamilyDiskScheduling:
		s.Disk = &disksched.Request{
			InitialPosition: 50,
			Tracks:          []int{82, 170, 43, 140, 24, 16, 190},
			DiskSize:        200,
			Direction:       disksched.Right,
		}
	default:
		s.Paging = &PagingInput{
			Pages:  []int{7, 0, 1, 2, 0, 3, 0, 4, 2, 3, 0, 3, 2},
			Frames: 3,
		}
	}
	return s
}

// Load reads a scenario document from path.
func Load(path string) (Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Scenario{}, fmt.Errorf("failed to read scenario file: %w", err)
	}
	var s Scenario
	if err := json.Unmarshal(data, &s); err != nil {
		return Scenario{}, fmt.Errorf("failed to parse scenario JSON: %w", err)
	}
	return s, nil
}

// Validate checks the scenario against the family's input rules.
func (s *Scenario) Validate() error {
	switch s.Family {
	case FamilyPageReplacement:
		if _, err := s.pagingAlgorithms(); err != nil {
			return err
		}
		return validatePaging(s.Paging)
	case FamilyCPUScheduling:
		algs, err := s.cpuAlgorithms()
		if err != nil {
			return err
		}
		return validateCPU(s.CPU, algs)
	case FamilyDiskScheduling:
		algs, err := s.diskAlgorithms()
		if err != nil {
			return err
		}
		return validateDisk(s.Disk, algs)
	default:
		return ErrInvalidInputf("unknown family %d", int(s.Family))
	}
}

func validatePaging(in *PagingInput) error {
	if in == nil {
		return ErrInvalidInput("paging input is required")
	}
	if len(in.Pages) == 0 {
		return ErrInvalidInput("Page reference string cannot be empty")
	}
	for _, p := range in.Pages {
		if p < 0 {
			return ErrInvalidInputf("Invalid page number: %d", p)
		}
	}
	return validateFrameCount(in.Frames)
}

func validateFrameCount(n int) error {
	if n < 1 {
		return ErrInvalidInput("Number of frames must be at least 1")
	}
	if n > MaxFrames {
		return ErrInvalidInputf("Number of frames cannot exceed %d for visualization clarity", MaxFrames)
	}
	return nil
}

func validateCPU(in *CPUInput, algs []cpusched.Algorithm) error {
	if in == nil {
		return ErrInvalidInput("cpu input is required")
	}
	if len(in.Processes) == 0 {
		return ErrInvalidInput("At least one process is required")
	}
	if len(in.Processes) > MaxProcesses {
		return ErrInvalidInputf("Maximum %d processes allowed for visualization clarity", MaxProcesses)
	}

	seen := make(map[int]bool, len(in.Processes))
	for i, p := range in.Processes {
		if p.ArrivalTime < 0 {
			return ErrInvalidInputf("Process %d: Arrival time cannot be negative", i+1)
		}
		if p.BurstTime <= 0 {
			return ErrInvalidInputf("Process %d: Burst time must be positive", i+1)
		}
		if p.Priority < 0 {
			return ErrInvalidInputf("Process %d: Priority cannot be negative", i+1)
		}
		if seen[p.ID] {
			return ErrInvalidInputf("Process %d: duplicate process id %d", i+1, p.ID)
		}
		seen[p.ID] = true
	}

	if in.Preemptive && !slices.ContainsFunc(algs, cpusched.Algorithm.SupportsPreemption) {
		return ErrInvalidInput("Preemptive mode requires SJF or Priority scheduling")
	}
	if slices.Contains(algs, cpusched.RoundRobin) {
		return validateTimeQuantum(in.Quantum)
	}
	return nil
}

func validateTimeQuantum(q int) error {
	if q <= 0 {
		return ErrInvalidInput("Time quantum must be positive")
	}
	if q > MaxQuantum {
		return ErrInvalidInputf("Time quantum too large (max %d)", MaxQuantum)
	}
	return nil
}

func validateDisk(in *disksched.Request, algs []disksched.Algorithm) error {
	if in == nil {
		return ErrInvalidInput("disk input is required")
	}
	if in.DiskSize <= 0 {
		return ErrInvalidInput("Disk size must be positive")
	}
	if len(in.Tracks) == 0 {
		return ErrInvalidInput("Request queue cannot be empty")
	}
	for _, t := range in.Tracks {
		if t < 0 || t >= in.DiskSize {
			return ErrInvalidInputf("Invalid track number: %d (must be 0-%d)", t, in.DiskSize-1)
		}
	}
	if in.InitialPosition < 0 || in.InitialPosition >= in.DiskSize {
		return ErrInvalidInputf("Invalid initial position: %d (must be 0-%d)", in.InitialPosition, in.DiskSize-1)
	}
	// FCFS and SSTF never read the direction.
	if !slices.ContainsFunc(algs, disksched.Algorithm.UsesDirection) {
		return nil
	}
	if _, err := disksched.ParseDirection(string(in.Direction)); err != nil {
		return ErrInvalidInput(err.Error())
	}
	return nil
}

// parseAll resolves algorithm ids. An empty list selects the whole family.
func parseAll[A comparable](ids []string, all []A, parse func(string) (A, error)) ([]A, error) {
	if len(ids) == 0 {
		return append([]A(nil), all...), nil
	}
	out := make([]A, 0, len(ids))
	seen := make(map[A]bool, len(ids))
	for _, id := range ids {
		a, err := parse(id)
		if err != nil {
			return nil, ErrInvalidInput(err.Error())
		}
		if seen[a] {
			return nil, ErrInvalidInputf("algorithm %s listed more than once", id)
		}
		seen[a] = true
		out = append(out, a)
	}
	return out, nil
}

func (s *Scenario) pagingAlgorithms() ([]paging.Algorithm, error) {
	return parseAll(s.Algorithms, paging.Algorithms, paging.ParseAlgorithm)
}

func (s *Scenario) cpuAlgorithms() ([]cpusched.Algorithm, error) {
	return parseAll(s.Algorithms, cpusched.Algorithms, cpusched.ParseAlgorithm)
}

func (s *Scenario) diskAlgorithms() ([]disksched.Algorithm, error) {
	return parseAll(s.Algorithms, disksched.Algorithms, disksched.ParseAlgorithm)
}
