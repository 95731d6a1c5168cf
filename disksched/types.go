package disksched

import "fmt"

// Direction is the sweep direction of SCAN-style policies.
type Direction string

const (
	Left  Direction = "left"  // towards track 0
	Right Direction = "right" // towards diskSize-1
)

// ParseDirection parses "left" or "right". The empty string means Right.
func ParseDirection(s string) (Direction, error) {
	switch Direction(s) {
	case Left:
		return Left, nil
	case Right, "":
		return Right, nil
	default:
		return Right, fmt.Errorf("invalid direction: %s (must be 'left' or 'right')", s)
	}
}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	if d == Left {
		return Right
	}
	return Left
}

// MoveKind distinguishes serviced requests from head-only moves.
type MoveKind string

const (
	MoveService  MoveKind = "service"  // head travels to a requested track
	MoveBoundary MoveKind = "boundary" // head travels to the edge of the disk
	MoveJump     MoveKind = "jump"     // C-SCAN return sweep to the opposite edge
)

// Step is one head movement.
type Step struct {
	Index           int       `json:"step"`
	CurrentPosition int       `json:"currentPosition"`
	TargetTrack     int       `json:"targetTrack"`
	SeekDistance    int       `json:"seekDistance"`
	Direction       Direction `json:"direction,omitempty"`
	Kind            MoveKind  `json:"kind"`
	Explanation     string    `json:"explanation"`
}

// Result is the full trace of one run plus seek totals.
//
// TotalSeekTime includes boundary and jump moves while AverageSeekTime
// divides by RequestCount only.
type Result struct {
	Steps           []Step  `json:"steps"`
	SeekSequence    []int   `json:"seekSequence"` // initial position first, then every head stop
	TotalSeekTime   int     `json:"totalSeekTime"`
	AverageSeekTime float64 `json:"averageSeekTime"`
	RequestCount    int     `json:"requestCount"`
}

// ServiceOrder returns the requested tracks in the order they were serviced.
func (r Result) ServiceOrder() []int {
	var out []int
	for _, s := range r.Steps {
		if s.Kind == MoveService {
			out = append(out, s.TargetTrack)
		}
	}
	return out
}

// head tracks the disk arm during a single run.
type head struct {
	position int
	steps    []Step
	sequence []int
	total    int
}

func newHead(initial, requests int) *head {
	return &head{
		position: initial,
		steps:    make([]Step, 0, requests+2),
		sequence: append(make([]int, 0, requests+3), initial),
	}
}

// move travels to target and records the step.
func (h *head) move(target int, dir Direction, kind MoveKind, explanation func(from, distance int) string) {
	distance := abs(target - h.position)
	h.steps = append(h.steps, Step{
		Index:           len(h.steps),
		CurrentPosition: h.position,
		TargetTrack:     target,
		SeekDistance:    distance,
		Direction:       dir,
		Kind:            kind,
		Explanation:     explanation(h.position, distance),
	})
	h.total += distance
	h.position = target
	h.sequence = append(h.sequence, target)
}

// serviceOne moves to a requested track. note is appended after the target,
// e.g. " (closest)".
func (h *head) serviceOne(track int, dir Direction, note string) {
	h.move(track, dir, MoveService, func(from, distance int) string {
		if dir == "" {
			return fmt.Sprintf("Moving from track %d to %d%s, seek distance: %d", from, track, note, distance)
		}
		return fmt.Sprintf("Moving %s from track %d to %d%s, seek distance: %d", dir, from, track, note, distance)
	})
}

// service moves to each track in order.
func (h *head) service(tracks []int, dir Direction) {
	for _, track := range tracks {
		h.serviceOne(track, dir, "")
	}
}

// toEdge moves to track 0 or diskSize-1 unless the head is already there.
func (h *head) toEdge(edge int, dir Direction) {
	if h.position == edge {
		return
	}
	h.move(edge, dir, MoveBoundary, func(from, distance int) string {
		return fmt.Sprintf("Moving to %s of disk (track %d), seek distance: %d", edgeName(edge), edge, distance)
	})
}

func edgeName(edge int) string {
	if edge == 0 {
		return "beginning"
	}
	return "end"
}

// result divides the total by the number of requests. An empty queue yields NaN.
func (h *head) result(requests int) Result {
	return Result{
		Steps:           h.steps,
		SeekSequence:    h.sequence,
		TotalSeekTime:   h.total,
		AverageSeekTime: float64(h.total) / float64(requests),
		RequestCount:    requests,
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
