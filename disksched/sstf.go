package disksched

import "slices"

// RunSSTF repeatedly services the pending request closest to the head.
// Equal distances go to the request that appears first in the remaining
// queue.
func RunSSTF(initialPosition int, requests []int) Result {
	h := newHead(initialPosition, len(requests))
	remaining := slices.Clone(requests)

	for len(remaining) > 0 {
		closest := 0
		best := abs(remaining[0] - h.position)
		for i := 1; i < len(remaining); i++ {
			if d := abs(remaining[i] - h.position); d < best {
				best = d
				closest = i
			}
		}
		h.serviceOne(remaining[closest], "", " (closest)")
		remaining = slices.Delete(remaining, closest, closest+1)
	}

	return h.result(len(requests))
}
