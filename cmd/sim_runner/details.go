package main

import (
	"fmt"
	"io"

	"github.com/miretskiy/osviz/paging"
	"github.com/miretskiy/osviz/scenario"
)

// writeDetails echoes every step of every run, marking page faults with '*',
// then a per-run summary: per-process timings for CPU runs in input order,
// the service order for disk runs.
func writeDetails(w io.Writer, sc *scenario.Scenario, out *scenario.Outcome) error {
	for i, id := range out.Algorithms {
		steps, err := out.Steps(id)
		if err != nil {
			return err
		}
		for j := 0; j < steps.Len(); j++ {
			mark := " "
			if st, ok := steps.At(j).(paging.Step); ok && st.IsFault() {
				mark = "*"
			}
			fmt.Fprintf(w, "[%s] %3d %s %s\n", id, j, mark, steps.Explanation(j))
		}

		switch {
		case out.CPU != nil:
			res := out.CPU.Runs[i].Result
			for _, p := range sc.CPU.Processes {
				m, ok := res.MetricsFor(p.ID)
				if !ok {
					continue
				}
				fmt.Fprintf(w, "[%s] %s: slices %d, waiting %d, turnaround %d, response %d\n",
					id, m.ProcessName, len(res.Segments(p.ID)), m.WaitingTime, m.TurnaroundTime, m.ResponseTime)
			}
		case out.Disk != nil:
			fmt.Fprintf(w, "[%s] service order: %v\n", id, out.Disk.Runs[i].Result.ServiceOrder())
		}
	}
	return nil
}
