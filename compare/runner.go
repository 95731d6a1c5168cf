package compare

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/miretskiy/osviz/cpusched"
	"github.com/miretskiy/osviz/disksched"
	"github.com/miretskiy/osviz/paging"
)

var (
	ErrTooFewAlgorithms   = errors.New("comparison needs at least 2 algorithms")
	ErrDuplicateAlgorithm = errors.New("algorithm listed more than once")
)

type algorithm interface {
	comparable
	fmt.Stringer
}

// runAll executes every algorithm on its own goroutine. Engines share no
// state, so results are identical to a sequential run.
func runAll[A algorithm, R any](ctx context.Context, algs []A, run func(A) R) ([]Run[R], error) {
	if len(algs) < 2 {
		return nil, ErrTooFewAlgorithms
	}
	seen := make(map[A]struct{}, len(algs))
	for _, a := range algs {
		if _, ok := seen[a]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateAlgorithm, a)
		}
		seen[a] = struct{}{}
	}

	runs := make([]Run[R], len(algs))
	g, ctx := errgroup.WithContext(ctx)
	for i, a := range algs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			runs[i] = Run[R]{Name: a.String(), Result: run(a)}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return runs, nil
}

// ComparePaging runs algs over the same reference string.
func ComparePaging(ctx context.Context, algs []paging.Algorithm, pages []int, numFrames int) (PagingComparison, error) {
	runs, err := runAll(ctx, algs, func(a paging.Algorithm) paging.Result {
		return paging.Run(a, pages, numFrames)
	})
	if err != nil {
		return PagingComparison{}, err
	}
	rows := PagingRows(runs)
	return PagingComparison{Runs: runs, Rows: rows, Best: BestPaging(rows)}, nil
}

// CompareCPU runs algs over the same process set.
func CompareCPU(ctx context.Context, algs []cpusched.Algorithm, processes []cpusched.Process, opts cpusched.Options) (CPUComparison, error) {
	runs, err := runAll(ctx, algs, func(a cpusched.Algorithm) cpusched.Result {
		return cpusched.Run(a, processes, opts)
	})
	if err != nil {
		return CPUComparison{}, err
	}
	rows := CPURows(runs)
	return CPUComparison{Runs: runs, Rows: rows, Best: BestCPU(rows)}, nil
}

// CompareDisk runs algs over the same request queue.
func CompareDisk(ctx context.Context, algs []disksched.Algorithm, req disksched.Request) (DiskComparison, error) {
	runs, err := runAll(ctx, algs, func(a disksched.Algorithm) disksched.Result {
		return disksched.Run(a, req)
	})
	if err != nil {
		return DiskComparison{}, err
	}
	rows := DiskRows(runs)
	return DiskComparison{Runs: runs, Rows: rows, Best: BestDisk(rows)}, nil
}
