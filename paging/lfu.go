package paging

import "fmt"

// RunLFU evicts the resident page with the fewest references since it was
// loaded. Equal counts fall back to the earliest insertion.
func RunLFU(pages []int, numFrames int) Result {
	t := newTrace(numFrames, len(pages))
	frequency := make(map[int]int, numFrames)
	insertedAt := make(map[int]int, numFrames)

	for index, page := range pages {
		if frame := t.frames.IndexOf(page); frame != -1 {
			frequency[page]++
			t.hit(index, page, frame,
				fmt.Sprintf("Page %d found in frame %d, frequency: %d (Page Hit)", page, frame, frequency[page]))
			continue
		}

		if empty := t.frames.IndexOf(EmptyFrame); empty != -1 {
			frequency[page] = 1
			insertedAt[page] = index
			t.load(index, page, empty,
				fmt.Sprintf("Page %d loaded into empty frame %d, frequency: 1 (Page Fault)", page, empty))
			continue
		}

		victimFrame := 0
		for i, resident := range t.frames {
			best := t.frames[victimFrame]
			if frequency[resident] < frequency[best] ||
				(frequency[resident] == frequency[best] && insertedAt[resident] < insertedAt[best]) {
				victimFrame = i
			}
		}
		victim := t.frames[victimFrame]
		victimFreq := frequency[victim]
		delete(frequency, victim)
		delete(insertedAt, victim)
		frequency[page] = 1
		insertedAt[page] = index

		t.replace(index, page, victimFrame,
			fmt.Sprintf("Page %d replaced LFU page %d (freq: %d) in frame %d (Page Fault)", page, victim, victimFreq, victimFrame))
	}

	return t.result()
}
