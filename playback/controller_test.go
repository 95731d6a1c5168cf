package playback

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestPlayRunsToTheEnd(t *testing.T) {
	c := New(3)
	var seen []int
	c.OnStepChange = func(step int) { seen = append(seen, step) }

	c.Play()
	require.True(t, c.Playing())
	require.True(t, c.Tick())
	require.True(t, c.Tick())
	require.False(t, c.Playing(), "stops on the last step")
	require.False(t, c.Tick())

	require.Equal(t, []int{1, 2}, seen)
	require.Equal(t, State{CurrentStep: 2, TotalSteps: 3, Speed: 1}, c.State())
}

func TestPlayAtEndRestarts(t *testing.T) {
	c := New(3)
	c.GoTo(2)

	var seen []int
	c.OnStepChange = func(step int) { seen = append(seen, step) }
	c.Play()
	require.Equal(t, 0, c.Current())
	require.True(t, c.Playing())
	require.Equal(t, []int{0}, seen)
}

func TestPlayEmptyAndSingleStep(t *testing.T) {
	c := New(0)
	c.Play()
	require.False(t, c.Playing())
	require.False(t, c.Tick())

	c.Load(1)
	c.Play()
	require.False(t, c.Playing())
	require.Equal(t, 0, c.Current())
}

func TestTickWhilePausedDoesNothing(t *testing.T) {
	c := New(5)
	require.False(t, c.Tick())
	require.Equal(t, 0, c.Current())
}

func TestSteppingPauses(t *testing.T) {
	c := New(4)
	c.Play()
	c.StepForward()
	require.Equal(t, 1, c.Current())
	require.False(t, c.Playing())

	c.Play()
	c.StepBackward()
	require.Equal(t, 0, c.Current())
	require.False(t, c.Playing())

	c.StepBackward()
	require.Equal(t, 0, c.Current())

	c.GoTo(3)
	c.StepForward()
	require.Equal(t, 3, c.Current())
}

func TestGoToIgnoresOutOfRange(t *testing.T) {
	c := New(4)
	calls := 0
	c.OnStepChange = func(int) { calls++ }

	c.GoTo(2)
	c.GoTo(-1)
	c.GoTo(4)
	require.Equal(t, 2, c.Current())
	require.Equal(t, 1, calls)
}

func TestReset(t *testing.T) {
	c := New(4)
	c.GoTo(3)
	c.Play()
	c.Tick()
	c.Reset()
	require.Equal(t, State{CurrentStep: 0, TotalSteps: 4, Speed: 1}, c.State())
}

func TestSpeed(t *testing.T) {
	c := New(2)
	require.Equal(t, time.Second, c.Delay())

	c.SetSpeed(2)
	require.Equal(t, 500*time.Millisecond, c.Delay())

	c.SetSpeed(10)
	require.Equal(t, MaxSpeed, c.State().Speed)

	c.SetSpeed(0)
	require.Equal(t, MinSpeed, c.State().Speed)
	require.Equal(t, 2*time.Second, c.Delay())
}

func TestLoadRewindsAndKeepsSpeed(t *testing.T) {
	c := New(5)
	c.SetSpeed(1.5)
	c.GoTo(4)
	c.Load(2)
	require.Equal(t, State{CurrentStep: 0, TotalSteps: 2, Speed: 1.5}, c.State())
}
