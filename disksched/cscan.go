package disksched

import "fmt"

// RunCSCAN sweeps in dir servicing requests, travels to the edge, jumps to
// the opposite edge and sweeps again in the same direction. The jump is
// counted as seek distance.
func RunCSCAN(initialPosition int, requests []int, diskSize int, dir Direction) Result {
	dir = normalized(dir)
	h := newHead(initialPosition, len(requests))
	ahead, behind, edge := sweep(requests, initialPosition, diskSize, dir)

	h.service(ahead, dir)
	if len(behind) > 0 {
		h.toEdge(edge, dir)
		h.jump(diskSize-1-edge, dir)
		h.service(reversed(behind), dir)
	}

	return h.result(len(requests))
}

// jump returns the head to the opposite edge without servicing anything.
func (h *head) jump(edge int, dir Direction) {
	h.move(edge, dir, MoveJump, func(_, distance int) string {
		return fmt.Sprintf("Jumping to %s of disk (track %d), seek distance: %d", edgeName(edge), edge, distance)
	})
}
