package paging

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

var textbookStream = []int{7, 0, 1, 2, 0, 3, 0, 4, 2, 3, 0, 3, 2}

func TestFaultCountsOnTextbookStream(t *testing.T) {
	tests := []struct {
		alg    Algorithm
		faults int
		hits   int
	}{
		{FIFO, 10, 3},
		{LRU, 9, 4},
		{Optimal, 7, 6},
		{LFU, 8, 5},
	}

	for _, tt := range tests {
		t.Run(tt.alg.String(), func(t *testing.T) {
			result := Run(tt.alg, textbookStream, 3)
			require.Equal(t, tt.faults, result.TotalPageFaults)
			require.Equal(t, tt.hits, result.TotalHits)
			require.InDelta(t, float64(tt.hits)/13, result.HitRatio, 1e-9)
			require.InDelta(t, float64(tt.faults)/13, result.MissRatio, 1e-9)
		})
	}
}

func TestLRUHitRatio(t *testing.T) {
	result := RunLRU(textbookStream, 3)
	require.InDelta(t, 0.3077, result.HitRatio, 1e-4, "4 hits out of 13 references")
}

func TestConservationAndOccupancy(t *testing.T) {
	streams := [][]int{
		textbookStream,
		{1},
		{1, 1, 1, 1},
		{1, 2, 3, 4, 1, 2, 5, 1, 2, 3, 4, 5},
		{0, 0, 1, 1, 2, 2, 3, 3},
	}

	for _, alg := range Algorithms {
		for _, frames := range []int{1, 2, 3, 4, 6} {
			for _, stream := range streams {
				result := Run(alg, stream, frames)
				require.Equal(t, len(stream), result.TotalPageFaults+result.TotalHits, "%s frames=%d", alg, frames)
				require.Len(t, result.Steps, len(stream))
				require.InDelta(t, 1.0, result.HitRatio+result.MissRatio, 1e-9)

				seen := make(map[int]bool)
				for i, step := range result.Steps {
					seen[stream[i]] = true
					require.Equal(t, i, step.Index)
					require.Equal(t, stream[i], step.CurrentPage)
					require.Len(t, step.Frames, frames)
					require.Equal(t, min(frames, len(seen)), step.Frames.Occupied(),
						"%s frames=%d step=%d", alg, frames, i)
					require.NotEqual(t, -1, step.Frames.IndexOf(step.CurrentPage), "current page must be resident")
				}
			}
		}
	}
}

func TestStepFields(t *testing.T) {
	result := RunFIFO([]int{1, 2, 1, 3}, 2)

	hit := result.Steps[2]
	require.Equal(t, ActionHit, hit.Action)
	require.NotNil(t, hit.HitFrameIndex)
	require.Equal(t, 0, *hit.HitFrameIndex)
	require.Nil(t, hit.ReplacedPage)
	require.Equal(t, "Page 1 found in frame 0 (Page Hit)", hit.Explanation)

	miss := result.Steps[1]
	require.Equal(t, ActionMiss, miss.Action)
	require.Nil(t, miss.ReplacedFrameIndex)
	require.Equal(t, "Page 2 loaded into empty frame 1 (Page Fault)", miss.Explanation)

	replace := result.Steps[3]
	require.Equal(t, ActionReplace, replace.Action)
	require.Equal(t, 1, *replace.ReplacedPage)
	require.Equal(t, 0, *replace.ReplacedFrameIndex)
	require.Equal(t, Frames{3, 2}, replace.Frames)
	require.True(t, replace.IsFault())
}

func TestSnapshotsAreIndependent(t *testing.T) {
	result := RunLRU(textbookStream, 3)
	before := result.Steps[3].Frames.Snapshot()

	result.Steps[4].Frames[0] = 99
	require.Equal(t, before, result.Steps[3].Frames)

	again := RunLRU(textbookStream, 3)
	require.Equal(t, before, again.Steps[3].Frames, "runs must not share state")
}

func TestLRUEvictsLeastRecentlyUsed(t *testing.T) {
	result := RunLRU(textbookStream, 3)
	step := result.Steps[5] // page 3 arrives, frames [2 0 1]
	require.Equal(t, ActionReplace, step.Action)
	require.Equal(t, 1, *step.ReplacedPage)
	require.Contains(t, step.Explanation, "last used at 2")
}

func TestOptimalTieBreaksOnLowestFrame(t *testing.T) {
	// Neither 1 nor 2 is referenced again when 3 faults: frame 0 is evicted.
	result := RunOptimal([]int{1, 2, 3}, 2)
	step := result.Steps[2]
	require.Equal(t, 1, *step.ReplacedPage)
	require.Equal(t, 0, *step.ReplacedFrameIndex)
	require.Contains(t, step.Explanation, "won't be used again")

	result = RunOptimal([]int{1, 2, 3, 2, 1}, 2)
	step = result.Steps[2]
	require.Equal(t, 1, *step.ReplacedPage, "page 1 is used farther in the future")
	require.Contains(t, step.Explanation, "used farthest in future, next at 4")
}

func TestLFUTieBreaksOnInsertion(t *testing.T) {
	result := RunLFU(textbookStream, 3)

	step := result.Steps[5] // 3 arrives: 2 and 1 have frequency 1, 1 was loaded first
	require.Equal(t, 1, *step.ReplacedPage)
	require.Contains(t, step.Explanation, "freq: 1")

	hit := result.Steps[6]
	require.Equal(t, ActionHit, hit.Action)
	require.Contains(t, hit.Explanation, "frequency: 3")
}

func TestLFUResetsFrequencyOnReload(t *testing.T) {
	// 1 reaches frequency 2, is evicted by 2, then reloaded and hit once.
	result := RunLFU([]int{1, 1, 2, 1, 1}, 1)
	require.Equal(t, ActionReplace, result.Steps[3].Action)
	require.Contains(t, result.Steps[3].Explanation, "freq: 1", "2 was evicted with frequency 1")
	require.Contains(t, result.Steps[4].Explanation, "frequency: 2")
}

func TestSingleFrameAndSingleElement(t *testing.T) {
	for _, alg := range Algorithms {
		result := Run(alg, []int{5}, 1)
		require.Len(t, result.Steps, 1)
		require.Equal(t, 1, result.TotalPageFaults)
		require.Equal(t, 0.0, result.HitRatio)
	}
}

func TestEmptyStreamYieldsNaN(t *testing.T) {
	result := RunFIFO(nil, 3)
	require.Empty(t, result.Steps)
	require.True(t, math.IsNaN(result.HitRatio))
	require.True(t, math.IsNaN(result.MissRatio))
}

func TestFramesJSON(t *testing.T) {
	data, err := json.Marshal(Frames{7, EmptyFrame, 0})
	require.NoError(t, err)
	require.JSONEq(t, `[7,null,0]`, string(data))

	var f Frames
	require.NoError(t, json.Unmarshal(data, &f))
	require.Equal(t, Frames{7, EmptyFrame, 0}, f)
	require.Equal(t, "[7 - 0]", f.String())
}

func TestAlgorithmParsing(t *testing.T) {
	for _, alg := range Algorithms {
		parsed, err := ParseAlgorithm(alg.ID())
		require.NoError(t, err)
		require.Equal(t, alg, parsed)
	}

	_, err := ParseAlgorithm("clock")
	require.Error(t, err)

	var alg Algorithm
	require.NoError(t, json.Unmarshal([]byte(`"optimal"`), &alg))
	require.Equal(t, Optimal, alg)
}
