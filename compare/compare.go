// Package compare projects per-algorithm results of one family into
// comparison rows and picks the best algorithm.
package compare

import (
	"github.com/miretskiy/osviz/cpusched"
	"github.com/miretskiy/osviz/disksched"
	"github.com/miretskiy/osviz/paging"
)

// Run is one named result. Comparisons keep runs in request order so that
// ties resolve to the earlier algorithm.
type Run[R any] struct {
	Name   string `json:"name"`
	Result R      `json:"result"`
}

// Comparison is the output of a parallel comparison run. A single-run
// Comparison carries no rows.
type Comparison[R, Row any] struct {
	Runs []Run[R] `json:"runs"`
	Rows []Row    `json:"rows,omitempty"`
	Best string   `json:"best,omitempty"`
}

type (
	PagingComparison = Comparison[paging.Result, PagingRow]
	CPUComparison    = Comparison[cpusched.Result, CPURow]
	DiskComparison   = Comparison[disksched.Result, DiskRow]
)

// PagingRow summarises a page replacement run.
type PagingRow struct {
	AlgorithmName   string  `json:"algorithmName"`
	TotalPageFaults int     `json:"totalPageFaults"`
	TotalHits       int     `json:"totalHits"`
	HitRatio        float64 `json:"hitRatio"`
	MissRatio       float64 `json:"missRatio"`
}

// CPURow summarises a CPU scheduling run.
type CPURow struct {
	AlgorithmName         string  `json:"algorithmName"`
	AverageWaitingTime    float64 `json:"averageWaitingTime"`
	AverageTurnaroundTime float64 `json:"averageTurnaroundTime"`
	AverageResponseTime   float64 `json:"averageResponseTime"`
	TotalCompletionTime   int     `json:"totalCompletionTime"`
}

// DiskRow summarises a disk scheduling run.
type DiskRow struct {
	AlgorithmName   string  `json:"algorithmName"`
	TotalSeekTime   int     `json:"totalSeekTime"`
	AverageSeekTime float64 `json:"averageSeekTime"`
	TotalRequests   int     `json:"totalRequests"`
}

func project[R, Row any](runs []Run[R], fn func(string, R) Row) []Row {
	rows := make([]Row, len(runs))
	for i, r := range runs {
		rows[i] = fn(r.Name, r.Result)
	}
	return rows
}

// PagingRows projects page replacement results.
func PagingRows(runs []Run[paging.Result]) []PagingRow {
	return project(runs, func(name string, r paging.Result) PagingRow {
		return PagingRow{
			AlgorithmName:   name,
			TotalPageFaults: r.TotalPageFaults,
			TotalHits:       r.TotalHits,
			HitRatio:        r.HitRatio,
			MissRatio:       r.MissRatio,
		}
	})
}

// CPURows projects CPU scheduling results.
func CPURows(runs []Run[cpusched.Result]) []CPURow {
	return project(runs, func(name string, r cpusched.Result) CPURow {
		return CPURow{
			AlgorithmName:         name,
			AverageWaitingTime:    r.AverageWaitingTime,
			AverageTurnaroundTime: r.AverageTurnaroundTime,
			AverageResponseTime:   r.AverageResponseTime,
			TotalCompletionTime:   r.TotalTime,
		}
	})
}

// DiskRows projects disk scheduling results. TotalRequests counts serviced
// requests only.
func DiskRows(runs []Run[disksched.Result]) []DiskRow {
	return project(runs, func(name string, r disksched.Result) DiskRow {
		return DiskRow{
			AlgorithmName:   name,
			TotalSeekTime:   r.TotalSeekTime,
			AverageSeekTime: r.AverageSeekTime,
			TotalRequests:   r.RequestCount,
		}
	})
}

// best is a linear scan keeping the first row nothing later strictly beats.
func best[Row any](rows []Row, name func(Row) string, better func(candidate, current Row) bool) string {
	if len(rows) == 0 {
		return ""
	}
	winner := rows[0]
	for _, r := range rows[1:] {
		if better(r, winner) {
			winner = r
		}
	}
	return name(winner)
}

// BestPaging returns the algorithm with the highest hit ratio.
func BestPaging(rows []PagingRow) string {
	return best(rows,
		func(r PagingRow) string { return r.AlgorithmName },
		func(c, b PagingRow) bool { return c.HitRatio > b.HitRatio })
}

// BestCPU returns the algorithm with the lowest average waiting time.
func BestCPU(rows []CPURow) string {
	return best(rows,
		func(r CPURow) string { return r.AlgorithmName },
		func(c, b CPURow) bool { return c.AverageWaitingTime < b.AverageWaitingTime })
}

// BestDisk returns the algorithm with the lowest total seek time.
func BestDisk(rows []DiskRow) string {
	return best(rows,
		func(r DiskRow) string { return r.AlgorithmName },
		func(c, b DiskRow) bool { return c.TotalSeekTime < b.TotalSeekTime })
}
