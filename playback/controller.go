// Package playback steps through a precomputed step log.
package playback

import "time"

const (
	BaseDelay = time.Second // delay between steps at 1x
	MinSpeed  = 0.5
	MaxSpeed  = 3.0
)

// State is a snapshot of the controller.
type State struct {
	CurrentStep int     `json:"currentStep"`
	TotalSteps  int     `json:"totalSteps"`
	Playing     bool    `json:"playing"`
	Speed       float64 `json:"speed"`
}

// Controller is a PURE playback state machine with NO timers or goroutines.
// The caller owns the clock: while Playing, call Tick every Delay.
type Controller struct {
	current int
	total   int
	playing bool
	speed   float64

	// Called with the new index whenever the current step changes (optional)
	OnStepChange func(step int)
}

// New creates a paused controller over total steps at 1x speed.
func New(total int) *Controller {
	c := &Controller{speed: 1}
	c.Load(total)
	return c
}

// Load replaces the step log length and rewinds. Speed is kept.
func (c *Controller) Load(total int) {
	if total < 0 {
		total = 0
	}
	c.total = total
	c.playing = false
	c.current = 0
}

func (c *Controller) setStep(i int) {
	c.current = i
	if c.OnStepChange != nil {
		c.OnStepChange(i)
	}
}

func (c *Controller) atEnd() bool {
	return c.current >= c.total-1
}

// Play starts playback, rewinding first when already at the last step.
func (c *Controller) Play() {
	if c.total == 0 {
		return
	}
	if c.atEnd() {
		c.setStep(0)
	}
	c.playing = !c.atEnd()
}

// Pause stops playback.
func (c *Controller) Pause() {
	c.playing = false
}

// StepForward advances one step and pauses. No-op at the last step.
func (c *Controller) StepForward() {
	if c.atEnd() {
		return
	}
	c.setStep(c.current + 1)
	c.playing = false
}

// StepBackward goes back one step and pauses. No-op at the first step.
func (c *Controller) StepBackward() {
	if c.current <= 0 {
		return
	}
	c.setStep(c.current - 1)
	c.playing = false
}

// Reset pauses and rewinds to the first step.
func (c *Controller) Reset() {
	c.playing = false
	c.setStep(0)
}

// GoTo jumps to step i and pauses. Out-of-range indices are ignored.
func (c *Controller) GoTo(i int) {
	if i < 0 || i >= c.total {
		return
	}
	c.setStep(i)
	c.playing = false
}

// SetSpeed sets the playback multiplier, clamped to [MinSpeed, MaxSpeed].
func (c *Controller) SetSpeed(speed float64) {
	c.speed = min(max(speed, MinSpeed), MaxSpeed)
}

// Tick advances one step while playing and reports whether it moved.
// Playback stops on reaching the last step.
func (c *Controller) Tick() bool {
	if !c.playing {
		return false
	}
	if c.atEnd() {
		c.playing = false
		return false
	}
	c.setStep(c.current + 1)
	if c.atEnd() {
		c.playing = false
	}
	return true
}

// Delay is the time between ticks at the current speed.
func (c *Controller) Delay() time.Duration {
	return time.Duration(float64(BaseDelay) / c.speed)
}

// Current returns the current step index.
func (c *Controller) Current() int { return c.current }

// Playing reports whether playback is running.
func (c *Controller) Playing() bool { return c.playing }

// State returns a snapshot for serialisation.
func (c *Controller) State() State {
	return State{CurrentStep: c.current, TotalSteps: c.total, Playing: c.playing, Speed: c.speed}
}
