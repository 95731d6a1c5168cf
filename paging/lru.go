package paging

import "fmt"

// RunLRU evicts the resident page whose last reference is oldest.
// Last-use is the stream index of the most recent hit or insertion.
func RunLRU(pages []int, numFrames int) Result {
	t := newTrace(numFrames, len(pages))
	lastUsed := make(map[int]int, numFrames)

	for index, page := range pages {
		if frame := t.frames.IndexOf(page); frame != -1 {
			lastUsed[page] = index
			t.hit(index, page, frame, hitExplanation(page, frame))
			continue
		}

		if empty := t.frames.IndexOf(EmptyFrame); empty != -1 {
			lastUsed[page] = index
			t.load(index, page, empty, loadExplanation(page, empty))
			continue
		}

		victimFrame := 0
		for i, resident := range t.frames {
			if lastUsed[resident] < lastUsed[t.frames[victimFrame]] {
				victimFrame = i
			}
		}
		victim := t.frames[victimFrame]
		victimUse := lastUsed[victim]
		delete(lastUsed, victim)
		lastUsed[page] = index

		t.replace(index, page, victimFrame,
			fmt.Sprintf("Page %d replaced LRU page %d (last used at %d) in frame %d (Page Fault)",
				page, victim, victimUse, victimFrame))
	}

	return t.result()
}
