package cpusched

import (
	"fmt"
	"slices"
)

// RunFCFS runs processes to completion in arrival order. Equal arrival
// times keep input order.
func RunFCFS(processes []Process) Result {
	sorted := slices.Clone(processes)
	slices.SortStableFunc(sorted, func(a, b Process) int {
		return a.ArrivalTime - b.ArrivalTime
	})

	return runToCompletion(sorted,
		func(candidate, chosen Process) bool { return false },
		func(p Process) string {
			return fmt.Sprintf("Process %s starts execution (arrived at %d, burst time: %d)", p.Name, p.ArrivalTime, p.BurstTime)
		})
}
