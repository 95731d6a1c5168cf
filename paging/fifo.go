package paging

import "fmt"

// RunFIFO evicts the page that has been resident the longest.
// Hits do not refresh a page's position in the queue.
func RunFIFO(pages []int, numFrames int) Result {
	t := newTrace(numFrames, len(pages))
	queue := make([]int, 0, numFrames) // resident pages, oldest first

	for index, page := range pages {
		if frame := t.frames.IndexOf(page); frame != -1 {
			t.hit(index, page, frame, hitExplanation(page, frame))
			continue
		}

		if empty := t.frames.IndexOf(EmptyFrame); empty != -1 {
			t.load(index, page, empty, loadExplanation(page, empty))
			queue = append(queue, page)
			continue
		}

		oldest := queue[0]
		queue = append(queue[1:], page)
		frame := t.frames.IndexOf(oldest)
		t.replace(index, page, frame,
			fmt.Sprintf("Page %d replaced page %d in frame %d (Page Fault - FIFO)", page, oldest, frame))
	}

	return t.result()
}
