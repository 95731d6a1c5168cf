package scenario

import (
	"encoding/json"
	"fmt"
	"math"
	"math/rand"

	"github.com/miretskiy/osviz/cpusched"
	"github.com/miretskiy/osviz/disksched"
)

// Locality shapes how random workloads pick pages, burst times and tracks.
type Locality int

const (
	LocalityUniform     Locality = iota // every value equally likely
	LocalityExponential                 // skewed toward the low end
	LocalityGeometric                   // strongly skewed toward the low end
)

// String returns the string representation of Locality
func (l Locality) String() string {
	switch l {
	case LocalityUniform:
		return "uniform"
	case LocalityExponential:
		return "exponential"
	case LocalityGeometric:
		return "geometric"
	default:
		return fmt.Sprintf("unknown(%d)", int(l))
	}
}

// ParseLocality parses a string into a Locality
func ParseLocality(s string) (Locality, error) {
	switch s {
	case "uniform", "":
		return LocalityUniform, nil
	case "exponential":
		return LocalityExponential, nil
	case "geometric":
		return LocalityGeometric, nil
	default:
		return LocalityUniform, fmt.Errorf("invalid locality: %s (must be 'uniform', 'exponential' or 'geometric')", s)
	}
}

// MarshalJSON implements json.Marshaler for Locality
func (l Locality) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.String())
}

// UnmarshalJSON implements json.Unmarshaler for Locality
func (l *Locality) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseLocality(s)
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

// sampler draws an integer in [lo, hi]
type sampler interface {
	Sample(rng *rand.Rand, lo, hi int) int
}

type uniformSampler struct{}

func (uniformSampler) Sample(rng *rand.Rand, lo, hi int) int {
	if lo >= hi {
		return lo
	}
	return lo + rng.Intn(hi-lo+1)
}

// exponentialSampler uses inverse transform sampling, clamped at 6/lambda
type exponentialSampler struct {
	lambda float64
}

func (s exponentialSampler) Sample(rng *rand.Rand, lo, hi int) int {
	if lo >= hi {
		return lo
	}
	u := rng.Float64()
	if u == 0 {
		u = 1e-10 // Avoid log(0)
	}
	x := -math.Log(u) / s.lambda
	normalized := math.Min(x/(6.0/s.lambda), 1.0)
	return lo + int(normalized*float64(hi-lo))
}

// geometricSampler counts failures before the first success
type geometricSampler struct {
	p float64
}

func (s geometricSampler) Sample(rng *rand.Rand, lo, hi int) int {
	if lo >= hi {
		return lo
	}
	u := math.Min(rng.Float64(), 0.999999)
	trials := int(math.Log(1-u) / math.Log(1-s.p))
	return lo + max(0, min(trials, hi-lo))
}

func newSampler(l Locality) sampler {
	switch l {
	case LocalityExponential:
		return exponentialSampler{lambda: 0.5}
	case LocalityGeometric:
		return geometricSampler{p: 0.3}
	default:
		return uniformSampler{}
	}
}

// RandomOptions controls RandomScenario.
type RandomOptions struct {
	Seed     int64    `json:"seed"`     // 0 picks a random seed
	Locality Locality `json:"locality"` // distribution of generated values
	Size     int      `json:"size"`     // pages, processes or requests; 0 uses the family default
}

const (
	randomPages     = 15
	randomPageRange = 9 // pages are drawn from [0, randomPageRange]
	randomProcesses = 5
	randomRequests  = 8
	randomDiskSize  = 200
	randomMaxBurst  = 10
)

// RandomScenario generates a valid workload for f with every algorithm of
// the family selected. The same non-zero seed yields the same scenario.
func RandomScenario(f Family, opts RandomOptions) Scenario {
	var rng *rand.Rand
	if opts.Seed == 0 {
		rng = rand.New(rand.NewSource(rand.Int63()))
	} else {
		rng = rand.New(rand.NewSource(opts.Seed))
	}
	dist := newSampler(opts.Locality)
	uniform := uniformSampler{}

	s := Scenario{Family: f, Algorithms: f.AlgorithmIDs()}
	switch f {
	case FamilyCPUScheduling:
		n := sizeOr(opts.Size, randomProcesses, MaxProcesses)
		processes := make([]cpusched.Process, n)
		arrival := 0
		for i := range processes {
			if i > 0 {
				arrival += uniform.Sample(rng, 0, 3)
			}
			processes[i] = cpusched.Process{
				ID:          i + 1,
				Name:        fmt.Sprintf("P%d", i+1),
				ArrivalTime: arrival,
				BurstTime:   dist.Sample(rng, 1, randomMaxBurst),
				Priority:    uniform.Sample(rng, 0, 5),
			}
		}
		s.CPU = &CPUInput{Processes: processes, Quantum: 2}

	case FamilyDiskScheduling:
		n := sizeOr(opts.Size, randomRequests, 0)
		tracks := make([]int, n)
		for i := range tracks {
			tracks[i] = dist.Sample(rng, 0, randomDiskSize-1)
		}
		dir := disksched.Right
		if rng.Intn(2) == 0 {
			dir = disksched.Left
		}
		s.Disk = &disksched.Request{
			InitialPosition: uniform.Sample(rng, 0, randomDiskSize-1),
			Tracks:          tracks,
			DiskSize:        randomDiskSize,
			Direction:       dir,
		}

	default:
		n := sizeOr(opts.Size, randomPages, 0)
		pages := make([]int, n)
		for i := range pages {
			pages[i] = dist.Sample(rng, 0, randomPageRange)
		}
		s.Paging = &PagingInput{Pages: pages, Frames: 3}
	}
	return s
}

// sizeOr returns size, or def when size is not positive, capped at limit
// when limit is positive.
func sizeOr(size, def, limit int) int {
	if size <= 0 {
		size = def
	}
	if limit > 0 && size > limit {
		size = limit
	}
	return size
}
