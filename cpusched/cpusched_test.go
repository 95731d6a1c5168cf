package cpusched

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func textbookProcesses() []Process {
	return []Process{
		{ID: 1, Name: "P1", ArrivalTime: 0, BurstTime: 5, Priority: 2},
		{ID: 2, Name: "P2", ArrivalTime: 1, BurstTime: 3, Priority: 1},
		{ID: 3, Name: "P3", ArrivalTime: 2, BurstTime: 8, Priority: 3},
		{ID: 4, Name: "P4", ArrivalTime: 3, BurstTime: 6, Priority: 2},
	}
}

func completionTimes(t *testing.T, r Result) map[int]int {
	t.Helper()
	out := make(map[int]int)
	for _, m := range r.ProcessMetrics {
		out[m.ProcessID] = m.CompletionTime
	}
	return out
}

func TestFCFS(t *testing.T) {
	result := RunFCFS(textbookProcesses())

	require.Equal(t, map[int]int{1: 5, 2: 8, 3: 16, 4: 22}, completionTimes(t, result))
	require.Equal(t, 5.75, result.AverageWaitingTime)
	require.Equal(t, 11.25, result.AverageTurnaroundTime)
	require.Equal(t, 5.75, result.AverageResponseTime)
	require.Equal(t, 22, result.TotalTime)
	require.Equal(t, 100.0, result.CPUUtilization)

	require.Len(t, result.GanttChart, 4)
	require.Len(t, result.Steps, 8, "start + completion per process")
	first := result.Steps[0]
	require.Equal(t, 1, *first.RunningProcess)
	require.Equal(t, GanttSegment{ProcessID: 1, ProcessName: "P1", StartTime: 0, EndTime: 5}, *first.GanttSegment)
	require.Equal(t, "Process P1 starts execution (arrived at 0, burst time: 5)", first.Explanation)

	done := result.Steps[1]
	require.Nil(t, done.RunningProcess)
	require.Equal(t, []int{1}, done.CompletedProcesses)
	require.Equal(t, []int{2, 3, 4}, done.ReadyQueue)
}

func TestFCFSStableOnArrivalTies(t *testing.T) {
	procs := []Process{
		{ID: 7, Name: "B", ArrivalTime: 1, BurstTime: 1},
		{ID: 3, Name: "A", ArrivalTime: 0, BurstTime: 2},
		{ID: 5, Name: "C", ArrivalTime: 1, BurstTime: 1},
	}
	result := RunFCFS(procs)

	var order []int
	for _, g := range result.GanttChart {
		order = append(order, g.ProcessID)
	}
	require.Equal(t, []int{3, 7, 5}, order)
}

func TestIdleGaps(t *testing.T) {
	procs := []Process{
		{ID: 1, Name: "P1", ArrivalTime: 2, BurstTime: 3},
		{ID: 2, Name: "P2", ArrivalTime: 10, BurstTime: 2},
	}

	for _, alg := range Algorithms {
		for _, preemptive := range []bool{false, true} {
			result := Run(alg, procs, Options{Preemptive: preemptive, Quantum: 2})
			require.Equal(t, 12, result.TotalTime, alg.String())
			require.InDelta(t, 5.0/12.0*100, result.CPUUtilization, 1e-9)

			idle := 0
			for _, s := range result.Steps {
				if strings.HasPrefix(s.Explanation, "CPU idle") {
					idle++
					require.Nil(t, s.RunningProcess)
				}
			}
			require.Equal(t, 2, idle, "%s preemptive=%v", alg, preemptive)
			require.Equal(t, "CPU idle, waiting for process P1 to arrive at time 2", result.Steps[0].Explanation)
		}
	}
}

func TestSJFNonPreemptive(t *testing.T) {
	result := RunSJF(textbookProcesses(), false)

	require.Equal(t, map[int]int{1: 5, 2: 8, 4: 14, 3: 22}, completionTimes(t, result))
	require.Equal(t, 5.25, result.AverageWaitingTime)
	require.Equal(t, "Process P2 selected (shortest burst time: 3)", result.Steps[2].Explanation)
	require.Equal(t, []int{3, 4}, result.Steps[2].ReadyQueue)
}

func TestSJFTieKeepsInputOrder(t *testing.T) {
	procs := []Process{
		{ID: 1, Name: "P1", ArrivalTime: 0, BurstTime: 1},
		{ID: 9, Name: "P9", ArrivalTime: 0, BurstTime: 4},
		{ID: 2, Name: "P2", ArrivalTime: 0, BurstTime: 4},
	}
	result := RunSJF(procs, false)
	require.Equal(t, 9, result.GanttChart[1].ProcessID)
	require.Equal(t, 2, result.GanttChart[2].ProcessID)
}

func TestSRTF(t *testing.T) {
	result := RunSJF(textbookProcesses(), true)

	require.Equal(t, []GanttSegment{
		{ProcessID: 1, ProcessName: "P1", StartTime: 0, EndTime: 1},
		{ProcessID: 2, ProcessName: "P2", StartTime: 1, EndTime: 4},
		{ProcessID: 1, ProcessName: "P1", StartTime: 4, EndTime: 8},
		{ProcessID: 4, ProcessName: "P4", StartTime: 8, EndTime: 14},
		{ProcessID: 3, ProcessName: "P3", StartTime: 14, EndTime: 22},
	}, result.GanttChart)
	require.Equal(t, 5.0, result.AverageWaitingTime)
	require.Len(t, result.Steps, 9, "one step per change of running process plus completions")

	preempt := result.Steps[1]
	require.Equal(t, 1, preempt.CurrentTime)
	require.Equal(t, 2, *preempt.RunningProcess)
	require.Equal(t, "Process P2 selected (remaining time: 3), preempting P1 (remaining: 4)", preempt.Explanation)

	p1, ok := result.MetricsFor(1)
	require.True(t, ok)
	require.Equal(t, 0, p1.ResponseTime, "response time is fixed at first dispatch")
	require.Equal(t, 3, p1.WaitingTime)
	p3, _ := result.MetricsFor(3)
	require.Equal(t, 12, p3.ResponseTime)
}

func TestPriority(t *testing.T) {
	t.Run("non-preemptive", func(t *testing.T) {
		result := RunPriority(textbookProcesses(), false)
		require.Equal(t, map[int]int{1: 5, 2: 8, 4: 14, 3: 22}, completionTimes(t, result))
		require.Equal(t, "Process P2 selected (priority: 1, burst: 3)", result.Steps[2].Explanation)
	})

	t.Run("preemptive", func(t *testing.T) {
		result := RunPriority(textbookProcesses(), true)
		require.Equal(t, []int{1, 2, 1, 4, 3}, segmentOrder(result))
		require.Equal(t, 1, result.GanttChart[1].StartTime, "P2 takes the CPU the instant it arrives")
		require.Equal(t, 4.25, result.AverageResponseTime)
	})

	t.Run("equal priorities keep input order", func(t *testing.T) {
		procs := []Process{
			{ID: 1, Name: "A", ArrivalTime: 0, BurstTime: 3, Priority: 1},
			{ID: 2, Name: "B", ArrivalTime: 0, BurstTime: 3, Priority: 1},
		}
		result := RunPriority(procs, true)
		require.Equal(t, []int{1, 2}, segmentOrder(result))
	})
}

func segmentOrder(r Result) []int {
	var out []int
	for _, g := range r.GanttChart {
		out = append(out, g.ProcessID)
	}
	return out
}

func TestRoundRobin(t *testing.T) {
	result := RunRoundRobin(textbookProcesses(), 2)

	require.Equal(t, 22, result.TotalTime)
	require.Equal(t, []int{1, 2, 3, 1, 4, 2, 3, 1, 4, 3, 4, 3}, segmentOrder(result))
	require.Len(t, result.Segments(3), 4)

	preemptions := 0
	for _, s := range result.Steps {
		if strings.HasPrefix(s.Explanation, "Process P3 preempted") {
			preemptions++
		}
	}
	require.Equal(t, 3, preemptions)

	require.Equal(t, map[int]int{1: 14, 2: 11, 3: 22, 4: 20}, completionTimes(t, result))
	// waits: P1 9, P2 7, P3 12, P4 11
	require.Equal(t, 9.75, result.AverageWaitingTime)
	// responses: P1 0, P2 1, P3 2, P4 5
	require.Equal(t, 2.0, result.AverageResponseTime)
}

func TestRoundRobinAdmitsArrivalsBeforeRequeue(t *testing.T) {
	procs := []Process{
		{ID: 1, Name: "A", ArrivalTime: 0, BurstTime: 4},
		{ID: 2, Name: "B", ArrivalTime: 2, BurstTime: 2},
	}
	result := RunRoundRobin(procs, 2)

	// B arrives at the end of A's first slice and must run before A resumes.
	require.Equal(t, []int{1, 2, 1}, segmentOrder(result))
	requeue := result.Steps[1]
	require.Equal(t, []int{2, 1}, requeue.ReadyQueue)
}

func TestRoundRobinLargeQuantumMatchesFCFS(t *testing.T) {
	rr := RunRoundRobin(textbookProcesses(), 100)
	fcfs := RunFCFS(textbookProcesses())
	require.Equal(t, fcfs.GanttChart, rr.GanttChart)
	require.Equal(t, fcfs.AverageWaitingTime, rr.AverageWaitingTime)
}

func TestInvariantsAcrossAlgorithms(t *testing.T) {
	inputs := [][]Process{
		textbookProcesses(),
		{{ID: 1, Name: "Solo", ArrivalTime: 0, BurstTime: 1}},
		{
			{ID: 1, Name: "P1", ArrivalTime: 3, BurstTime: 2, Priority: 4},
			{ID: 2, Name: "P2", ArrivalTime: 0, BurstTime: 7, Priority: 0},
			{ID: 3, Name: "P3", ArrivalTime: 0, BurstTime: 1, Priority: 4},
			{ID: 4, Name: "P4", ArrivalTime: 20, BurstTime: 3, Priority: 1},
		},
	}

	for _, procs := range inputs {
		for _, alg := range Algorithms {
			for _, preemptive := range []bool{false, true} {
				original := append([]Process(nil), procs...)
				result := Run(alg, procs, Options{Preemptive: preemptive, Quantum: 3})
				require.Equal(t, original, procs, "input must not be modified")

				require.Len(t, result.ProcessMetrics, len(procs))
				last := result.Steps[len(result.Steps)-1]
				require.ElementsMatch(t, ids(procs), last.CompletedProcesses)

				for i := 1; i < len(result.Steps); i++ {
					require.GreaterOrEqual(t, result.Steps[i].CurrentTime, result.Steps[i-1].CurrentTime)
					require.Equal(t, i, result.Steps[i].Index)
				}

				maxCompletion := 0
				for _, m := range result.ProcessMetrics {
					require.Equal(t, m.CompletionTime-m.ArrivalTime, m.TurnaroundTime)
					require.Equal(t, m.TurnaroundTime-m.BurstTime, m.WaitingTime)
					require.GreaterOrEqual(t, m.ResponseTime, 0)
					require.LessOrEqual(t, m.ResponseTime, m.WaitingTime)
					maxCompletion = max(maxCompletion, m.CompletionTime)
				}
				require.Equal(t, maxCompletion, result.TotalTime)

				busy := 0
				for _, g := range result.GanttChart {
					require.Greater(t, g.Duration(), 0)
					busy += g.Duration()
				}
				burst := 0
				for _, p := range procs {
					burst += p.BurstTime
				}
				require.Equal(t, burst, busy)
			}
		}
	}
}

func TestStepsAreIndependent(t *testing.T) {
	result := RunRoundRobin(textbookProcesses(), 2)
	snapshot := append([]int(nil), result.Steps[2].ReadyQueue...)
	completed := append([]int(nil), result.Steps[13].CompletedProcesses...)

	result.Steps[3].ReadyQueue[0] = 42
	result.GanttChart[0].EndTime = 99
	result.Steps[15].CompletedProcesses[0] = 42

	require.Equal(t, snapshot, result.Steps[2].ReadyQueue)
	require.Equal(t, []int{2}, completed)
	require.Equal(t, completed, result.Steps[13].CompletedProcesses)
	require.Equal(t, 2, result.Steps[0].GanttSegment.EndTime)
}

func TestAlgorithmParsing(t *testing.T) {
	for _, alg := range Algorithms {
		parsed, err := ParseAlgorithm(alg.ID())
		require.NoError(t, err)
		require.Equal(t, alg, parsed)
	}
	_, err := ParseAlgorithm("mlfq")
	require.Error(t, err)
	require.True(t, SJF.SupportsPreemption())
	require.False(t, RoundRobin.SupportsPreemption())
}
