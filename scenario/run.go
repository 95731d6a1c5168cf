package scenario

import (
	"context"
	"fmt"
	"slices"

	"github.com/miretskiy/osviz/compare"
	"github.com/miretskiy/osviz/cpusched"
	"github.com/miretskiy/osviz/disksched"
	"github.com/miretskiy/osviz/paging"
)

// Outcome holds the results of a scenario run in request order. Exactly one
// of Paging, CPU and Disk is set. Rows and Best are only filled when two or
// more algorithms ran.
type Outcome struct {
	Family     Family                    `json:"family"`
	Algorithms []string                  `json:"algorithms"`
	Paging     *compare.PagingComparison `json:"paging,omitempty"`
	CPU        *compare.CPUComparison    `json:"cpu,omitempty"`
	Disk       *compare.DiskComparison   `json:"disk,omitempty"`
}

// Run validates the scenario and runs every selected algorithm.
func (s *Scenario) Run(ctx context.Context) (*Outcome, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	out := &Outcome{Family: s.Family}
	switch s.Family {
	case FamilyPageReplacement:
		algs, _ := s.pagingAlgorithms()
		out.Algorithms = ids(algs)
		pages, frames := s.Paging.Pages, s.Paging.Frames
		cmp, err := runFamily(ctx, algs,
			func(a paging.Algorithm) paging.Result { return paging.Run(a, pages, frames) },
			func(ctx context.Context) (compare.PagingComparison, error) {
				return compare.ComparePaging(ctx, algs, pages, frames)
			})
		if err != nil {
			return nil, err
		}
		out.Paging = &cmp

	case FamilyCPUScheduling:
		algs, _ := s.cpuAlgorithms()
		out.Algorithms = ids(algs)
		processes, opts := namedProcesses(s.CPU.Processes), s.CPU.Options()
		cmp, err := runFamily(ctx, algs,
			func(a cpusched.Algorithm) cpusched.Result { return cpusched.Run(a, processes, opts) },
			func(ctx context.Context) (compare.CPUComparison, error) {
				return compare.CompareCPU(ctx, algs, processes, opts)
			})
		if err != nil {
			return nil, err
		}
		out.CPU = &cmp

	case FamilyDiskScheduling:
		algs, _ := s.diskAlgorithms()
		out.Algorithms = ids(algs)
		req := *s.Disk
		if req.Direction == "" {
			req.Direction = disksched.Right
		}
		cmp, err := runFamily(ctx, algs,
			func(a disksched.Algorithm) disksched.Result { return disksched.Run(a, req) },
			func(ctx context.Context) (compare.DiskComparison, error) {
				return compare.CompareDisk(ctx, algs, req)
			})
		if err != nil {
			return nil, err
		}
		out.Disk = &cmp
	}
	return out, nil
}

// runFamily runs a lone algorithm inline and hands two or more to the
// parallel comparison.
func runFamily[A fmt.Stringer, R, Row any](
	ctx context.Context,
	algs []A,
	single func(A) R,
	many func(context.Context) (compare.Comparison[R, Row], error),
) (compare.Comparison[R, Row], error) {
	if len(algs) == 1 {
		return compare.Comparison[R, Row]{
			Runs: []compare.Run[R]{{Name: algs[0].String(), Result: single(algs[0])}},
		}, nil
	}
	return many(ctx)
}

func ids[A interface{ ID() string }](algs []A) []string {
	out := make([]string, len(algs))
	for i, a := range algs {
		out[i] = a.ID()
	}
	return out
}

// namedProcesses fills blank process names with "P<id>".
func namedProcesses(processes []cpusched.Process) []cpusched.Process {
	out := slices.Clone(processes)
	for i := range out {
		if out[i].Name == "" {
			out[i].Name = fmt.Sprintf("P%d", out[i].ID)
		}
	}
	return out
}

// Best returns the display name of the best algorithm, or "" for a single run.
func (o *Outcome) Best() string {
	switch {
	case o.Paging != nil:
		return o.Paging.Best
	case o.CPU != nil:
		return o.CPU.Best
	case o.Disk != nil:
		return o.Disk.Best
	}
	return ""
}

// Steps is a read-only, randomly indexable step log. At returns a
// paging.Step, cpusched.Step or disksched.Step according to the outcome's
// family.
type Steps interface {
	Len() int
	At(i int) any
	Explanation(i int) string
}

type stepLog[S any] struct {
	steps   []S
	explain func(S) string
}

func (l stepLog[S]) Len() int                 { return len(l.steps) }
func (l stepLog[S]) At(i int) any             { return l.steps[i] }
func (l stepLog[S]) Explanation(i int) string { return l.explain(l.steps[i]) }

// Steps returns the step log of the algorithm with the given id.
func (o *Outcome) Steps(algorithmID string) (Steps, error) {
	i := slices.Index(o.Algorithms, algorithmID)
	if i < 0 {
		// Accept aliases such as "fcfs-disk".
		if canon, err := o.canonicalID(algorithmID); err == nil {
			i = slices.Index(o.Algorithms, canon)
		}
	}
	if i < 0 {
		return nil, fmt.Errorf("algorithm %q was not part of this run", algorithmID)
	}

	switch {
	case o.Paging != nil:
		return stepLog[paging.Step]{o.Paging.Runs[i].Result.Steps, func(s paging.Step) string { return s.Explanation }}, nil
	case o.CPU != nil:
		return stepLog[cpusched.Step]{o.CPU.Runs[i].Result.Steps, func(s cpusched.Step) string { return s.Explanation }}, nil
	case o.Disk != nil:
		return stepLog[disksched.Step]{o.Disk.Runs[i].Result.Steps, func(s disksched.Step) string { return s.Explanation }}, nil
	}
	return nil, fmt.Errorf("outcome has no results")
}

func (o *Outcome) canonicalID(id string) (string, error) {
	switch o.Family {
	case FamilyCPUScheduling:
		a, err := cpusched.ParseAlgorithm(id)
		return a.ID(), err
	case FamilyDiskScheduling:
		a, err := disksched.ParseAlgorithm(id)
		return a.ID(), err
	default:
		a, err := paging.ParseAlgorithm(id)
		return a.ID(), err
	}
}
