package main

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"

	"github.com/miretskiy/osviz/compare"
	"github.com/miretskiy/osviz/scenario"
)

var (
	headerColor = color.New(color.FgCyan, color.Bold)
	bestColor   = color.New(color.FgGreen, color.Bold)
)

// renderTable prints one row per algorithm and highlights the best one.
func renderTable(w io.Writer, out *scenario.Outcome) {
	var header []string
	var rows [][]string
	var names []string
	best := out.Best()

	switch {
	case out.Paging != nil:
		header = []string{"Algorithm", "Faults", "Hits", "Hit ratio", "Miss ratio"}
		for _, r := range compare.PagingRows(out.Paging.Runs) {
			names = append(names, r.AlgorithmName)
			rows = append(rows, []string{r.AlgorithmName,
				fmt.Sprint(r.TotalPageFaults), fmt.Sprint(r.TotalHits),
				fmt.Sprintf("%.2f%%", r.HitRatio*100), fmt.Sprintf("%.2f%%", r.MissRatio*100)})
		}
	case out.CPU != nil:
		header = []string{"Algorithm", "Avg waiting", "Avg turnaround", "Avg response", "Completion"}
		for _, r := range compare.CPURows(out.CPU.Runs) {
			names = append(names, r.AlgorithmName)
			rows = append(rows, []string{r.AlgorithmName,
				fmt.Sprintf("%.2f", r.AverageWaitingTime), fmt.Sprintf("%.2f", r.AverageTurnaroundTime),
				fmt.Sprintf("%.2f", r.AverageResponseTime), fmt.Sprint(r.TotalCompletionTime)})
		}
	case out.Disk != nil:
		header = []string{"Algorithm", "Total seek", "Avg seek", "Requests"}
		for _, r := range compare.DiskRows(out.Disk.Runs) {
			names = append(names, r.AlgorithmName)
			rows = append(rows, []string{r.AlgorithmName,
				fmt.Sprint(r.TotalSeekTime), fmt.Sprintf("%.2f", r.AverageSeekTime), fmt.Sprint(r.TotalRequests)})
		}
	}

	// Align before colouring; escape codes count towards tabwriter widths.
	lines := align(append([][]string{header}, rows...))
	headerColor.Fprintln(w, lines[0])
	for i, line := range lines[1:] {
		if names[i] == best {
			bestColor.Fprintln(w, line+"  ★ best")
			continue
		}
		fmt.Fprintln(w, line)
	}
}

func align(cells [][]string) []string {
	var buf bytes.Buffer
	tw := tabwriter.NewWriter(&buf, 0, 0, 2, ' ', 0)
	for _, row := range cells {
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	tw.Flush()
	return strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
}
