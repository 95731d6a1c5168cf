package paging

import (
	"fmt"
	"math"
)

// neverUsed is the next-use distance of a page absent from the rest of the stream.
const neverUsed = math.MaxInt

// nextUse returns the index of the next reference to page after from, or neverUsed.
func nextUse(pages []int, page, from int) int {
	for i := from + 1; i < len(pages); i++ {
		if pages[i] == page {
			return i
		}
	}
	return neverUsed
}

// RunOptimal evicts the resident page referenced farthest in the future.
// Among equal distances the lowest frame index wins.
func RunOptimal(pages []int, numFrames int) Result {
	t := newTrace(numFrames, len(pages))

	for index, page := range pages {
		if frame := t.frames.IndexOf(page); frame != -1 {
			t.hit(index, page, frame, hitExplanation(page, frame))
			continue
		}

		if empty := t.frames.IndexOf(EmptyFrame); empty != -1 {
			t.load(index, page, empty, loadExplanation(page, empty))
			continue
		}

		victimFrame := 0
		farthest := nextUse(pages, t.frames[0], index)
		for i := 1; i < len(t.frames); i++ {
			if next := nextUse(pages, t.frames[i], index); next > farthest {
				farthest = next
				victimFrame = i
			}
		}
		victim := t.frames[victimFrame]

		reason := fmt.Sprintf("used farthest in future, next at %d", farthest)
		if farthest == neverUsed {
			reason = "won't be used again"
		}
		t.replace(index, page, victimFrame,
			fmt.Sprintf("Page %d replaced page %d (%s) in frame %d (Page Fault)", page, victim, reason, victimFrame))
	}

	return t.result()
}
