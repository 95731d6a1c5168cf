package cpusched

import (
	"fmt"
	"slices"
)

// RunRoundRobin gives each ready process at most quantum time units in FIFO
// order. Processes that arrive during a slice join the ready queue before the
// preempted process is put back at its tail.
func RunRoundRobin(processes []Process, quantum int) Result {
	if quantum < 1 {
		quantum = 1
	}
	r := newRecorder(len(processes))

	// Admission order: by arrival, input order on ties.
	pending := make([]*task, len(processes))
	for i, p := range processes {
		pending[i] = &task{Process: p, remaining: p.BurstTime}
	}
	slices.SortStableFunc(pending, func(a, b *task) int {
		return a.ArrivalTime - b.ArrivalTime
	})

	var queue []*task
	admitted := 0
	admit := func(now int) {
		for admitted < len(pending) && pending[admitted].ArrivalTime <= now {
			queue = append(queue, pending[admitted])
			admitted++
		}
	}
	queueIDs := func() []int {
		out := make([]int, len(queue))
		for i, t := range queue {
			out[i] = t.ID
		}
		return out
	}

	clock := 0
	done := 0
	admit(clock)

	for done < len(processes) {
		if len(queue) == 0 {
			next := pending[admitted]
			r.idle(clock, next.Process)
			clock = next.ArrivalTime
			admit(clock)
			continue
		}

		current := queue[0]
		queue = queue[1:]

		slice := min(quantum, current.remaining)
		start := clock
		r.dispatch(current.Process, start)
		seg := r.segment(current.Process, start, start+slice)
		r.emit(start, &current.Process, queueIDs(), &seg,
			fmt.Sprintf("Process %s executes for %d time units (quantum: %d, remaining: %d)",
				current.Name, slice, quantum, current.remaining))

		current.remaining -= slice
		clock = start + slice
		admit(clock)

		if current.remaining == 0 {
			done++
			r.complete(current.Process, clock)
			r.completedStep(current.Process, clock, queueIDs())
			continue
		}

		queue = append(queue, current)
		r.emit(clock, nil, queueIDs(), nil,
			fmt.Sprintf("Process %s preempted (remaining: %d), added to ready queue", current.Name, current.remaining))
	}

	return r.result(processes, clock)
}
