package disksched

import (
	"slices"
)

// split partitions requests around pos. Tracks equal to pos count as right.
// Both halves are returned ascending.
func split(requests []int, pos int) (left, right []int) {
	for _, t := range requests {
		if t < pos {
			left = append(left, t)
		} else {
			right = append(right, t)
		}
	}
	slices.Sort(left)
	slices.Sort(right)
	return left, right
}

func reversed(tracks []int) []int {
	out := slices.Clone(tracks)
	slices.Reverse(out)
	return out
}

// sweep returns the requests ahead of the head in dir, in visiting order, the
// requests behind it, nearest first, and the edge dir runs into.
func sweep(requests []int, pos, diskSize int, dir Direction) (ahead, behind []int, edge int) {
	left, right := split(requests, pos)
	if dir == Left {
		return reversed(left), right, 0
	}
	return right, reversed(left), diskSize - 1
}

// normalized maps anything but Left to Right.
func normalized(dir Direction) Direction {
	if dir == Left {
		return Left
	}
	return Right
}

// RunSCAN sweeps in dir servicing requests, travels to the edge of the disk
// if anything is pending behind the head, then reverses.
func RunSCAN(initialPosition int, requests []int, diskSize int, dir Direction) Result {
	dir = normalized(dir)
	h := newHead(initialPosition, len(requests))
	ahead, behind, edge := sweep(requests, initialPosition, diskSize, dir)

	h.service(ahead, dir)
	if len(behind) > 0 {
		h.toEdge(edge, dir)
		h.service(behind, dir.Opposite())
	}

	return h.result(len(requests))
}
