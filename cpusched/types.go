package cpusched

// Process is a unit of work as supplied by the caller. Runs never modify it.
type Process struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	ArrivalTime int    `json:"arrivalTime"`
	BurstTime   int    `json:"burstTime"`
	Priority    int    `json:"priority,omitempty"` // lower value = higher priority
}

// GanttSegment is a contiguous stretch of CPU time given to one process.
type GanttSegment struct {
	ProcessID   int    `json:"processId"`
	ProcessName string `json:"processName"`
	StartTime   int    `json:"startTime"`
	EndTime     int    `json:"endTime"`
}

// Duration returns the length of the segment.
func (g GanttSegment) Duration() int {
	return g.EndTime - g.StartTime
}

// Step is one immutable snapshot of the scheduler.
type Step struct {
	Index              int           `json:"step"`
	CurrentTime        int           `json:"currentTime"`
	RunningProcess     *int          `json:"runningProcess"` // nil while idle or between dispatches
	ReadyQueue         []int         `json:"readyQueue"`
	CompletedProcesses []int         `json:"completedProcesses"`
	GanttSegment       *GanttSegment `json:"ganttSegment,omitempty"`
	Explanation        string        `json:"explanation"`
}

// ProcessMetrics holds per-process timing once the process has completed.
type ProcessMetrics struct {
	ProcessID      int    `json:"processId"`
	ProcessName    string `json:"processName"`
	ArrivalTime    int    `json:"arrivalTime"`
	BurstTime      int    `json:"burstTime"`
	CompletionTime int    `json:"completionTime"`
	TurnaroundTime int    `json:"turnaroundTime"` // completion - arrival
	WaitingTime    int    `json:"waitingTime"`    // turnaround - burst
	ResponseTime   int    `json:"responseTime"`   // first dispatch - arrival
}

// Result is the full trace of one run plus summary metrics.
// ProcessMetrics is in completion order.
type Result struct {
	Steps                 []Step           `json:"steps"`
	GanttChart            []GanttSegment   `json:"ganttChart"`
	ProcessMetrics        []ProcessMetrics `json:"processMetrics"`
	AverageWaitingTime    float64          `json:"averageWaitingTime"`
	AverageTurnaroundTime float64          `json:"averageTurnaroundTime"`
	AverageResponseTime   float64          `json:"averageResponseTime"`
	CPUUtilization        float64          `json:"cpuUtilization"` // percent
	TotalTime             int              `json:"totalTime"`
}

// MetricsFor returns the metrics of process id, if it completed.
func (r Result) MetricsFor(id int) (ProcessMetrics, bool) {
	for _, m := range r.ProcessMetrics {
		if m.ProcessID == id {
			return m, true
		}
	}
	return ProcessMetrics{}, false
}

// Segments returns the Gantt segments belonging to process id.
func (r Result) Segments(id int) []GanttSegment {
	var out []GanttSegment
	for _, g := range r.GanttChart {
		if g.ProcessID == id {
			out = append(out, g)
		}
	}
	return out
}
