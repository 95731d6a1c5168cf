package cpusched

import (
	"fmt"
	"slices"
)

// recorder collects the step log, Gantt chart and per-process metrics of a
// single run. Each Run call allocates its own.
type recorder struct {
	steps      []Step
	gantt      []GanttSegment
	metrics    []ProcessMetrics
	completed  []int
	firstStart map[int]int // process id -> first dispatch time
}

func newRecorder(n int) *recorder {
	return &recorder{
		steps:      make([]Step, 0, 3*n),
		gantt:      make([]GanttSegment, 0, n),
		metrics:    make([]ProcessMetrics, 0, n),
		completed:  make([]int, 0, n),
		firstStart: make(map[int]int, n),
	}
}

// emit appends a step. ready and seg are copied.
func (r *recorder) emit(now int, running *Process, ready []int, seg *GanttSegment, explanation string) {
	step := Step{
		Index:              len(r.steps),
		CurrentTime:        now,
		ReadyQueue:         append([]int{}, ready...),
		CompletedProcesses: slices.Clone(r.completed),
		Explanation:        explanation,
	}
	if step.CompletedProcesses == nil {
		step.CompletedProcesses = []int{}
	}
	if running != nil {
		id := running.ID
		step.RunningProcess = &id
	}
	if seg != nil {
		s := *seg
		step.GanttSegment = &s
	}
	r.steps = append(r.steps, step)
}

// idle records that the CPU waits for next to arrive.
func (r *recorder) idle(now int, next Process) {
	r.emit(now, nil, nil, nil,
		fmt.Sprintf("CPU idle, waiting for process %s to arrive at time %d", next.Name, next.ArrivalTime))
}

// dispatch notes p getting the CPU at now. Only the first dispatch counts
// towards response time.
func (r *recorder) dispatch(p Process, now int) {
	if _, ok := r.firstStart[p.ID]; !ok {
		r.firstStart[p.ID] = now
	}
}

// segment appends CPU time [start, end) for p as its own Gantt segment.
func (r *recorder) segment(p Process, start, end int) GanttSegment {
	seg := GanttSegment{ProcessID: p.ID, ProcessName: p.Name, StartTime: start, EndTime: end}
	r.gantt = append(r.gantt, seg)
	return seg
}

// extend appends one tick for p, merging with the previous segment when p
// kept the CPU.
func (r *recorder) extend(p Process, start, end int) {
	if n := len(r.gantt); n > 0 && r.gantt[n-1].ProcessID == p.ID && r.gantt[n-1].EndTime == start {
		r.gantt[n-1].EndTime = end
		return
	}
	r.segment(p, start, end)
}

// complete finalizes p's metrics at time now.
func (r *recorder) complete(p Process, now int) {
	r.completed = append(r.completed, p.ID)
	turnaround := now - p.ArrivalTime
	r.metrics = append(r.metrics, ProcessMetrics{
		ProcessID:      p.ID,
		ProcessName:    p.Name,
		ArrivalTime:    p.ArrivalTime,
		BurstTime:      p.BurstTime,
		CompletionTime: now,
		TurnaroundTime: turnaround,
		WaitingTime:    turnaround - p.BurstTime,
		ResponseTime:   r.firstStart[p.ID] - p.ArrivalTime,
	})
}

func (r *recorder) completedStep(p Process, now int, ready []int) {
	r.emit(now, nil, ready, nil, fmt.Sprintf("Process %s completed at time %d", p.Name, now))
}

// result reduces the run. Averages are over the input process count.
func (r *recorder) result(processes []Process, totalTime int) Result {
	var waiting, turnaround, response, burst int
	for _, m := range r.metrics {
		waiting += m.WaitingTime
		turnaround += m.TurnaroundTime
		response += m.ResponseTime
	}
	for _, p := range processes {
		burst += p.BurstTime
	}

	n := float64(len(processes))
	return Result{
		Steps:                 r.steps,
		GanttChart:            r.gantt,
		ProcessMetrics:        r.metrics,
		AverageWaitingTime:    float64(waiting) / n,
		AverageTurnaroundTime: float64(turnaround) / n,
		AverageResponseTime:   float64(response) / n,
		CPUUtilization:        float64(burst) / float64(totalTime) * 100,
		TotalTime:             totalTime,
	}
}

// earliestArrival returns the first process in slice order with the
// smallest arrival time.
func earliestArrival(processes []Process) Process {
	next := processes[0]
	for _, p := range processes[1:] {
		if p.ArrivalTime < next.ArrivalTime {
			next = p
		}
	}
	return next
}

func ids(processes []Process) []int {
	out := make([]int, len(processes))
	for i, p := range processes {
		out[i] = p.ID
	}
	return out
}

// runToCompletion drives the non-preemptive policies. At each decision point
// the arrived processes are scanned in slice order and better reports whether
// a candidate beats the current choice, so ties keep the earlier process.
func runToCompletion(processes []Process, better func(candidate, chosen Process) bool, describe func(Process) string) Result {
	r := newRecorder(len(processes))
	remaining := slices.Clone(processes)
	clock := 0

	for len(remaining) > 0 {
		var available []Process
		for _, p := range remaining {
			if p.ArrivalTime <= clock {
				available = append(available, p)
			}
		}

		if len(available) == 0 {
			next := earliestArrival(remaining)
			r.idle(clock, next)
			clock = next.ArrivalTime
			continue
		}

		chosenAt := 0
		for i := 1; i < len(available); i++ {
			if better(available[i], available[chosenAt]) {
				chosenAt = i
			}
		}
		chosen := available[chosenAt]
		remaining = slices.DeleteFunc(remaining, func(p Process) bool { return p.ID == chosen.ID })
		waiting := slices.Delete(slices.Clone(available), chosenAt, chosenAt+1)

		r.dispatch(chosen, clock)
		seg := r.segment(chosen, clock, clock+chosen.BurstTime)
		r.emit(clock, &chosen, ids(waiting), &seg, describe(chosen))

		clock = seg.EndTime
		r.complete(chosen, clock)

		var ready []int
		for _, p := range remaining {
			if p.ArrivalTime <= clock {
				ready = append(ready, p.ID)
			}
		}
		r.completedStep(chosen, clock, ready)
	}

	return r.result(processes, clock)
}

// task is a private working copy of a process for the preemptive policies.
type task struct {
	Process
	remaining int
}

// runByTick drives the preemptive policies one time unit at a time. The
// selection is recomputed every tick over arrived, unfinished tasks in input
// order; a step is emitted only when the running process changes.
func runByTick(processes []Process, better func(candidate, chosen *task) bool, describe func(chosen, preempted *task) string) Result {
	r := newRecorder(len(processes))
	tasks := make([]*task, len(processes))
	for i, p := range processes {
		tasks[i] = &task{Process: p, remaining: p.BurstTime}
	}

	clock := 0
	done := 0
	var current *task

	for done < len(tasks) {
		var available []*task
		for _, t := range tasks {
			if t.ArrivalTime <= clock && t.remaining > 0 {
				available = append(available, t)
			}
		}

		if len(available) == 0 {
			var pending []Process
			for _, t := range tasks {
				if t.remaining > 0 {
					pending = append(pending, t.Process)
				}
			}
			next := earliestArrival(pending)
			r.idle(clock, next)
			current = nil
			clock = next.ArrivalTime
			continue
		}

		chosen := available[0]
		for _, t := range available[1:] {
			if better(t, chosen) {
				chosen = t
			}
		}

		if chosen != current {
			var preempted *task
			if current != nil && current.remaining > 0 {
				preempted = current
			}
			var waiting []int
			for _, t := range available {
				if t != chosen {
					waiting = append(waiting, t.ID)
				}
			}
			r.dispatch(chosen.Process, clock)
			r.emit(clock, &chosen.Process, waiting, nil, describe(chosen, preempted))
		}

		current = chosen
		chosen.remaining--
		clock++
		r.extend(chosen.Process, clock-1, clock)

		if chosen.remaining == 0 {
			done++
			r.complete(chosen.Process, clock)
			var ready []int
			for _, t := range available {
				if t.remaining > 0 {
					ready = append(ready, t.ID)
				}
			}
			r.completedStep(chosen.Process, clock, ready)
		}
	}

	return r.result(processes, clock)
}

// preemptionNote describes the process that lost the CPU, if any.
func preemptionNote(preempted *task) string {
	if preempted == nil {
		return ""
	}
	return fmt.Sprintf(", preempting %s (remaining: %d)", preempted.Name, preempted.remaining)
}
