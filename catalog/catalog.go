// Package catalog holds static metadata about the algorithms the engines
// implement.
package catalog

import "fmt"

// Category groups algorithms by the engine that runs them.
type Category string

const (
	PageReplacement Category = "page-replacement"
	CPUScheduling   Category = "cpu-scheduling"
	DiskScheduling  Category = "disk-scheduling"
)

// ParseCategory parses a category id.
func ParseCategory(s string) (Category, error) {
	for _, c := range categories {
		if string(c.ID) == s {
			return c.ID, nil
		}
	}
	return "", fmt.Errorf("invalid category: %s (must be 'page-replacement', 'cpu-scheduling' or 'disk-scheduling')", s)
}

// CategoryInfo describes one category.
type CategoryInfo struct {
	ID          Category `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Path        string   `json:"path"`
}

// AlgorithmInfo describes one algorithm.
type AlgorithmInfo struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	FullName    string   `json:"fullName"`
	Category    Category `json:"category"`
	Description string   `json:"description"`
	Path        string   `json:"path"`
	Complexity  string   `json:"complexity"`
}

var categories = []CategoryInfo{
	{PageReplacement, "Page Replacement", "Visualize how operating systems manage memory pages", "/page-replacement"},
	{CPUScheduling, "CPU Scheduling", "See how processes are scheduled for execution", "/cpu-scheduling"},
	{DiskScheduling, "Disk Scheduling", "Understand how disk I/O requests are serviced", "/disk-scheduling"},
}

var algorithms = map[Category][]AlgorithmInfo{
	PageReplacement: {
		{"fifo", "FIFO", "First In First Out", PageReplacement,
			"First In First Out - Replaces the oldest page in memory", "/page-replacement/fifo", "O(n)"},
		{"lru", "LRU", "Least Recently Used", PageReplacement,
			"Least Recently Used - Replaces the page that has not been used for the longest time", "/page-replacement/lru", "O(n)"},
		{"optimal", "Optimal", "Optimal Page Replacement", PageReplacement,
			"Replaces the page that will not be used for the longest time in the future", "/page-replacement/optimal", "O(n²)"},
		{"lfu", "LFU", "Least Frequently Used", PageReplacement,
			"Least Frequently Used - Replaces the page with the lowest access frequency", "/page-replacement/lfu", "O(n)"},
	},
	CPUScheduling: {
		{"fcfs", "FCFS", "First Come First Serve", CPUScheduling,
			"First Come First Serve - Processes execute in arrival order", "/cpu-scheduling/fcfs", "O(n)"},
		{"sjf", "SJF", "Shortest Job First", CPUScheduling,
			"Shortest Job First - Executes process with smallest burst time first", "/cpu-scheduling/sjf", "O(n log n)"},
		{"priority", "Priority", "Priority Scheduling", CPUScheduling,
			"Schedules processes based on priority values", "/cpu-scheduling/priority", "O(n log n)"},
		{"round-robin", "Round Robin", "Round Robin", CPUScheduling,
			"Each process gets a fixed time quantum in circular order", "/cpu-scheduling/round-robin", "O(n)"},
	},
	DiskScheduling: {
		// Distinct from the CPU "fcfs" id so ids stay unique across categories.
		{"fcfs-disk", "FCFS", "First Come First Serve", DiskScheduling,
			"Services disk requests in the order they arrive", "/disk-scheduling/fcfs", "O(n)"},
		{"sstf", "SSTF", "Shortest Seek Time First", DiskScheduling,
			"Shortest Seek Time First - Services nearest request first", "/disk-scheduling/sstf", "O(n²)"},
		{"scan", "SCAN", "SCAN (Elevator)", DiskScheduling,
			"Elevator algorithm - Services requests in one direction, then reverses", "/disk-scheduling/scan", "O(n log n)"},
		{"c-scan", "C-SCAN", "Circular SCAN", DiskScheduling,
			"Circular SCAN - Services in one direction, then jumps to start", "/disk-scheduling/c-scan", "O(n log n)"},
	},
}

// Categories returns every category in display order.
func Categories() []CategoryInfo {
	return append([]CategoryInfo(nil), categories...)
}

// ByCategory returns the algorithms of c in display order, or nil for an
// unknown category.
func ByCategory(c Category) []AlgorithmInfo {
	return append([]AlgorithmInfo(nil), algorithms[c]...)
}

// All returns every algorithm grouped by category.
func All() map[Category][]AlgorithmInfo {
	out := make(map[Category][]AlgorithmInfo, len(algorithms))
	for c := range algorithms {
		out[c] = ByCategory(c)
	}
	return out
}

// Lookup finds an algorithm by id within c. Disk FCFS answers to both
// "fcfs-disk" and "fcfs".
func Lookup(c Category, id string) (AlgorithmInfo, bool) {
	for _, a := range algorithms[c] {
		if a.ID == id || (c == DiskScheduling && id == "fcfs" && a.ID == "fcfs-disk") {
			return a, true
		}
	}
	return AlgorithmInfo{}, false
}
