package main

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/miretskiy/osviz/playback"
	"github.com/miretskiy/osviz/scenario"
)

// Client message types
type ClientMessage struct {
	Type      string             `json:"type"`
	Scenario  *scenario.Scenario `json:"scenario,omitempty"`
	Algorithm string             `json:"algorithm,omitempty"` // load, select
	Step      int                `json:"step,omitempty"`      // seek
	Speed     float64            `json:"speed,omitempty"`     // speed
}

// Server message types
type ServerMessage struct {
	Type        string            `json:"type"`
	Outcome     *scenario.Outcome `json:"outcome,omitempty"`
	Algorithm   string            `json:"algorithm,omitempty"`
	Playback    *playback.State   `json:"playback,omitempty"`
	Step        any               `json:"step,omitempty"`
	Explanation string            `json:"explanation,omitempty"`
	Error       string            `json:"error,omitempty"`
}

// session owns one client's loaded outcome and playback position
type session struct {
	mu        sync.Mutex
	outcome   *scenario.Outcome
	algorithm string
	steps     scenario.Steps
	ctrl      *playback.Controller
	stopCh    chan struct{}
	wakeCh    chan struct{} // poked when the tick delay may have changed
}

func newSession() *session {
	ctrl := playback.New(0)
	ctrl.OnStepChange = func(int) { promMetrics.stepsPlayed.Inc() }
	return &session{
		ctrl:   ctrl,
		stopCh: make(chan struct{}),
		wakeCh: make(chan struct{}, 1),
	}
}

// load runs sc and selects algorithm (or the first one) for playback. The
// session is left untouched unless both succeed.
func (s *session) load(ctx context.Context, sc *scenario.Scenario, algorithm string) (*scenario.Outcome, error) {
	out, err := sc.Run(ctx)
	if err != nil {
		promMetrics.runErrors.Inc()
		return nil, err
	}
	if algorithm == "" {
		algorithm = out.Algorithms[0]
	}
	steps, err := out.Steps(algorithm)
	if err != nil {
		promMetrics.runErrors.Inc()
		return nil, err
	}

	s.mu.Lock()
	s.outcome = out
	s.play(algorithm, steps)
	s.mu.Unlock()

	updatePrometheusMetrics(out)
	return out, nil
}

// selectAlgorithm switches playback to another algorithm of the loaded outcome
func (s *session) selectAlgorithm(algorithm string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.outcome == nil {
		return fmt.Errorf("no scenario loaded")
	}
	steps, err := s.outcome.Steps(algorithm)
	if err != nil {
		return err
	}
	s.play(algorithm, steps)
	return nil
}

// play points the controller at steps. Callers hold mu.
func (s *session) play(algorithm string, steps scenario.Steps) {
	s.algorithm = algorithm
	s.steps = steps
	s.ctrl.Load(steps.Len())
	s.wake()
}

// control applies a playback command and returns the resulting frame
func (s *session) control(msg ClientMessage) (ServerMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.steps == nil {
		return ServerMessage{}, fmt.Errorf("no scenario loaded")
	}

	switch msg.Type {
	case "play":
		s.ctrl.Play()
	case "pause":
		s.ctrl.Pause()
	case "step_forward":
		s.ctrl.StepForward()
	case "step_backward":
		s.ctrl.StepBackward()
	case "reset":
		s.ctrl.Reset()
	case "seek":
		s.ctrl.GoTo(msg.Step)
	case "speed":
		s.ctrl.SetSpeed(msg.Speed)
	default:
		return ServerMessage{}, fmt.Errorf("unknown command %q", msg.Type)
	}
	if s.ctrl.Playing() {
		s.wake()
	}
	return s.frameLocked(), nil
}

func (s *session) wake() {
	select {
	case s.wakeCh <- struct{}{}:
	default:
	}
}

// tick advances playback by one step if it is running
func (s *session) tick() (ServerMessage, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.steps == nil || !s.ctrl.Tick() {
		return ServerMessage{}, false
	}
	return s.frameLocked(), true
}

// delay returns the current tick interval
func (s *session) delay() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ctrl.Delay()
}

func (s *session) frame() ServerMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.frameLocked()
}

func (s *session) frameLocked() ServerMessage {
	state := s.ctrl.State()
	msg := ServerMessage{Type: "frame", Algorithm: s.algorithm, Playback: &state}
	if i := s.ctrl.Current(); s.steps != nil && i < s.steps.Len() {
		msg.Step = s.steps.At(i)
		msg.Explanation = s.steps.Explanation(i)
	}
	return msg
}

// stop signals the playback loop to stop
func (s *session) stop() {
	close(s.stopCh)
}

// playLoop ticks the controller at the speed-dependent delay and pushes frames.
// This runs in its own goroutine and controls playback pacing.
func playLoop(conn *safeConn, s *session) {
	timer := time.NewTimer(s.delay())
	defer timer.Stop()

	for {
		select {
		case <-s.stopCh:
			log.Println("Playback loop stopping")
			return

		case <-s.wakeCh:
			timer.Reset(s.delay())

		case <-timer.C:
			if msg, ok := s.tick(); ok {
				if err := conn.WriteJSON(msg); err != nil {
					log.Printf("Error sending frame: %v", err)
					return
				}
				promMetrics.framesSent.Inc()
			}
			timer.Reset(s.delay())
		}
	}
}

// safeConn wraps a WebSocket connection with a mutex to prevent concurrent writes
type safeConn struct {
	*websocket.Conn
	writeMu sync.Mutex
}

func (sc *safeConn) WriteJSON(v interface{}) error {
	sc.writeMu.Lock()
	defer sc.writeMu.Unlock()
	return sc.Conn.WriteJSON(v)
}

func writeError(conn *safeConn, err error) {
	if werr := conn.WriteJSON(ServerMessage{Type: "error", Error: err.Error()}); werr != nil {
		log.Printf("Error sending error: %v", werr)
	}
}
