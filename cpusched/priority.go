package cpusched

import "fmt"

// RunPriority schedules by priority value, lowest first. The preemptive
// variant re-evaluates every tick, so a more urgent arrival takes the CPU
// immediately.
func RunPriority(processes []Process, preemptive bool) Result {
	if preemptive {
		return runByTick(processes,
			func(candidate, chosen *task) bool { return candidate.Priority < chosen.Priority },
			func(chosen, preempted *task) string {
				return fmt.Sprintf("Process %s selected (priority: %d, remaining: %d)%s",
					chosen.Name, chosen.Priority, chosen.remaining, preemptionNote(preempted))
			})
	}
	return runToCompletion(processes,
		func(candidate, chosen Process) bool { return candidate.Priority < chosen.Priority },
		func(p Process) string {
			return fmt.Sprintf("Process %s selected (priority: %d, burst: %d)", p.Name, p.Priority, p.BurstTime)
		})
}
