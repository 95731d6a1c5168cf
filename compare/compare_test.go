package compare

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/miretskiy/osviz/cpusched"
	"github.com/miretskiy/osviz/disksched"
	"github.com/miretskiy/osviz/paging"
)

var (
	referenceString = []int{7, 0, 1, 2, 0, 3, 0, 4, 2, 3, 0, 3, 2}
	processes       = []cpusched.Process{
		{ID: 1, Name: "P1", ArrivalTime: 0, BurstTime: 5},
		{ID: 2, Name: "P2", ArrivalTime: 1, BurstTime: 3},
		{ID: 3, Name: "P3", ArrivalTime: 2, BurstTime: 8},
		{ID: 4, Name: "P4", ArrivalTime: 3, BurstTime: 6},
	}
	diskRequest = disksched.Request{
		InitialPosition: 50,
		Tracks:          []int{82, 170, 43, 140, 24, 16, 190},
		DiskSize:        200,
		Direction:       disksched.Right,
	}
)

func TestComparePaging(t *testing.T) {
	cmp, err := ComparePaging(context.Background(), paging.Algorithms, referenceString, 3)
	require.NoError(t, err)

	require.Len(t, cmp.Runs, 4)
	names := make([]string, len(cmp.Rows))
	for i, r := range cmp.Rows {
		names[i] = r.AlgorithmName
	}
	require.Equal(t, []string{"FIFO", "LRU", "Optimal", "LFU"}, names)

	require.Equal(t, 10, cmp.Rows[0].TotalPageFaults)
	require.Equal(t, 9, cmp.Rows[1].TotalPageFaults)
	require.Equal(t, 7, cmp.Rows[2].TotalPageFaults)
	require.Equal(t, "Optimal", cmp.Best)

	for i, run := range cmp.Runs {
		require.Equal(t, paging.Run(paging.Algorithms[i], referenceString, 3), run.Result)
	}
}

func TestCompareCPU(t *testing.T) {
	algs := []cpusched.Algorithm{cpusched.FCFS, cpusched.SJF, cpusched.RoundRobin}
	cmp, err := CompareCPU(context.Background(), algs, processes, cpusched.Options{Quantum: 2})
	require.NoError(t, err)

	require.Equal(t, "FCFS", cmp.Rows[0].AlgorithmName)
	require.InDelta(t, 5.75, cmp.Rows[0].AverageWaitingTime, 1e-9)
	require.InDelta(t, 5.25, cmp.Rows[1].AverageWaitingTime, 1e-9)
	require.Equal(t, "Round Robin", cmp.Rows[2].AlgorithmName)
	require.InDelta(t, 9.75, cmp.Rows[2].AverageWaitingTime, 1e-9)
	for _, r := range cmp.Rows {
		require.Equal(t, 22, r.TotalCompletionTime)
	}
	require.Equal(t, "SJF", cmp.Best)
}

func TestCompareDisk(t *testing.T) {
	cmp, err := CompareDisk(context.Background(), disksched.Algorithms, diskRequest)
	require.NoError(t, err)

	totals := make([]int, len(cmp.Rows))
	for i, r := range cmp.Rows {
		totals[i] = r.TotalSeekTime
		require.Equal(t, 7, r.TotalRequests)
	}
	require.Equal(t, []int{642, 208, 332, 391}, totals)
	require.Equal(t, "SSTF", cmp.Best)
}

func TestCompareRejectsBadAlgorithmLists(t *testing.T) {
	ctx := context.Background()

	_, err := ComparePaging(ctx, []paging.Algorithm{paging.LRU}, referenceString, 3)
	require.ErrorIs(t, err, ErrTooFewAlgorithms)

	_, err = CompareDisk(ctx, nil, diskRequest)
	require.ErrorIs(t, err, ErrTooFewAlgorithms)

	_, err = CompareCPU(ctx, []cpusched.Algorithm{cpusched.SJF, cpusched.FCFS, cpusched.SJF}, processes, cpusched.Options{})
	require.ErrorIs(t, err, ErrDuplicateAlgorithm)
	require.Contains(t, err.Error(), "SJF")
}

func TestCompareCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := CompareDisk(ctx, disksched.Algorithms, diskRequest)
	require.True(t, errors.Is(err, context.Canceled))
}

func TestBestFirstExtremumWins(t *testing.T) {
	require.Equal(t, "A", BestPaging([]PagingRow{
		{AlgorithmName: "A", HitRatio: 0.5},
		{AlgorithmName: "B", HitRatio: 0.5},
		{AlgorithmName: "C", HitRatio: 0.25},
	}))
	require.Equal(t, "B", BestCPU([]CPURow{
		{AlgorithmName: "A", AverageWaitingTime: 3},
		{AlgorithmName: "B", AverageWaitingTime: 1},
		{AlgorithmName: "C", AverageWaitingTime: 1},
	}))
	require.Equal(t, "C", BestDisk([]DiskRow{
		{AlgorithmName: "A", TotalSeekTime: 10},
		{AlgorithmName: "B", TotalSeekTime: 10},
		{AlgorithmName: "C", TotalSeekTime: 9},
	}))
}

func TestBestEmpty(t *testing.T) {
	require.Empty(t, BestPaging(nil))
	require.Empty(t, BestCPU(nil))
	require.Empty(t, BestDisk(nil))
}

func TestRowsFollowRunOrder(t *testing.T) {
	runs := []Run[disksched.Result]{
		{Name: "SCAN", Result: disksched.Run(disksched.SCAN, diskRequest)},
		{Name: "FCFS", Result: disksched.Run(disksched.FCFS, diskRequest)},
	}
	rows := DiskRows(runs)
	require.Equal(t, "SCAN", rows[0].AlgorithmName)
	require.Equal(t, 332, rows[0].TotalSeekTime)
	require.InDelta(t, 332.0/7, rows[0].AverageSeekTime, 1e-9)
	require.Equal(t, "FCFS", rows[1].AlgorithmName)
}
