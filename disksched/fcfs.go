package disksched

// RunFCFS services requests in arrival order.
func RunFCFS(initialPosition int, requests []int) Result {
	h := newHead(initialPosition, len(requests))
	h.service(requests, "")
	return h.result(len(requests))
}
