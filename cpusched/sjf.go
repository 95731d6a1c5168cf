package cpusched

import "fmt"

// RunSJF schedules by burst time. With preemptive set it runs Shortest
// Remaining Time First instead.
func RunSJF(processes []Process, preemptive bool) Result {
	if preemptive {
		return RunSRTF(processes)
	}
	return runToCompletion(processes,
		func(candidate, chosen Process) bool { return candidate.BurstTime < chosen.BurstTime },
		func(p Process) string {
			return fmt.Sprintf("Process %s selected (shortest burst time: %d)", p.Name, p.BurstTime)
		})
}

// RunSRTF re-selects the arrived process with the least remaining time on
// every tick.
func RunSRTF(processes []Process) Result {
	return runByTick(processes,
		func(candidate, chosen *task) bool { return candidate.remaining < chosen.remaining },
		func(chosen, preempted *task) string {
			return fmt.Sprintf("Process %s selected (remaining time: %d)%s", chosen.Name, chosen.remaining, preemptionNote(preempted))
		})
}
