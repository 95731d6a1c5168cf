package paging

import (
	"encoding/json"
	"fmt"
	"strings"
)

// EmptyFrame marks a frame slot that holds no page.
const EmptyFrame = -1

// Action classifies what happened to the frame set for one page reference.
type Action string

const (
	ActionHit     Action = "hit"     // page already resident
	ActionMiss    Action = "miss"    // fault served by an empty frame
	ActionReplace Action = "replace" // fault that evicted a resident page
)

// Frames is a fixed-length frame set. Slot order is stable for display.
type Frames []int

// newFrames returns n empty slots.
func newFrames(n int) Frames {
	f := make(Frames, n)
	for i := range f {
		f[i] = EmptyFrame
	}
	return f
}

// Snapshot returns an independent copy of the frame set.
func (f Frames) Snapshot() Frames {
	out := make(Frames, len(f))
	copy(out, f)
	return out
}

// IndexOf returns the slot holding page, or -1.
func (f Frames) IndexOf(page int) int {
	for i, p := range f {
		if p == page {
			return i
		}
	}
	return -1
}

// Occupied counts non-empty slots.
func (f Frames) Occupied() int {
	n := 0
	for _, p := range f {
		if p != EmptyFrame {
			n++
		}
	}
	return n
}

// MarshalJSON renders empty slots as null.
func (f Frames) MarshalJSON() ([]byte, error) {
	out := make([]*int, len(f))
	for i, p := range f {
		if p != EmptyFrame {
			p := p
			out[i] = &p
		}
	}
	return json.Marshal(out)
}

// UnmarshalJSON accepts null for empty slots.
func (f *Frames) UnmarshalJSON(data []byte) error {
	var in []*int
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	out := make(Frames, len(in))
	for i, p := range in {
		if p == nil {
			out[i] = EmptyFrame
		} else {
			out[i] = *p
		}
	}
	*f = out
	return nil
}

// String renders the frame set as "[7 0 -]".
func (f Frames) String() string {
	parts := make([]string, len(f))
	for i, p := range f {
		if p == EmptyFrame {
			parts[i] = "-"
		} else {
			parts[i] = fmt.Sprint(p)
		}
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// Step is one immutable snapshot of the engine after consuming a page.
type Step struct {
	Index              int    `json:"step"`
	CurrentPage        int    `json:"currentPage"`
	Frames             Frames `json:"frames"`
	Action             Action `json:"action"`
	ReplacedPage       *int   `json:"replacedPage,omitempty"`
	ReplacedFrameIndex *int   `json:"replacedFrameIndex,omitempty"`
	HitFrameIndex      *int   `json:"hitFrameIndex,omitempty"`
	Explanation        string `json:"explanation"`
}

// IsFault reports whether the step was a page fault.
func (s Step) IsFault() bool {
	return s.Action != ActionHit
}

// Result is the full trace of one run plus summary counters.
type Result struct {
	Steps           []Step  `json:"steps"`
	TotalPageFaults int     `json:"totalPageFaults"`
	TotalHits       int     `json:"totalHits"`
	HitRatio        float64 `json:"hitRatio"`
	MissRatio       float64 `json:"missRatio"`
}

// trace accumulates steps and counters for a single run. Every run owns one.
type trace struct {
	frames Frames
	steps  []Step
	faults int
	hits   int
}

func newTrace(numFrames, streamLen int) *trace {
	return &trace{
		frames: newFrames(numFrames),
		steps:  make([]Step, 0, streamLen),
	}
}

func (t *trace) hit(index, page, frame int, explanation string) {
	t.hits++
	t.steps = append(t.steps, Step{
		Index:         index,
		CurrentPage:   page,
		Frames:        t.frames.Snapshot(),
		Action:        ActionHit,
		HitFrameIndex: intPtr(frame),
		Explanation:   explanation,
	})
}

// load places page into an empty slot and records a miss.
func (t *trace) load(index, page, frame int, explanation string) {
	t.faults++
	t.frames[frame] = page
	t.steps = append(t.steps, Step{
		Index:       index,
		CurrentPage: page,
		Frames:      t.frames.Snapshot(),
		Action:      ActionMiss,
		Explanation: explanation,
	})
}

// replace evicts the page in frame and records the fault.
func (t *trace) replace(index, page, frame int, explanation string) {
	t.faults++
	victim := t.frames[frame]
	t.frames[frame] = page
	t.steps = append(t.steps, Step{
		Index:              index,
		CurrentPage:        page,
		Frames:             t.frames.Snapshot(),
		Action:             ActionReplace,
		ReplacedPage:       intPtr(victim),
		ReplacedFrameIndex: intPtr(frame),
		Explanation:        explanation,
	})
}

// result reduces the trace. An empty stream yields NaN ratios.
func (t *trace) result() Result {
	total := float64(t.hits + t.faults)
	return Result{
		Steps:           t.steps,
		TotalPageFaults: t.faults,
		TotalHits:       t.hits,
		HitRatio:        float64(t.hits) / total,
		MissRatio:       float64(t.faults) / total,
	}
}

func intPtr(v int) *int {
	return &v
}

func hitExplanation(page, frame int) string {
	return fmt.Sprintf("Page %d found in frame %d (Page Hit)", page, frame)
}

func loadExplanation(page, frame int) string {
	return fmt.Sprintf("Page %d loaded into empty frame %d (Page Fault)", page, frame)
}
