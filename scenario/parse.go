package scenario

import (
	"strconv"
	"strings"
)

// ParsePageReferenceString parses comma-separated page numbers such as
// "7, 0, 1, 2".
func ParsePageReferenceString(input string) ([]int, error) {
	if strings.TrimSpace(input) == "" {
		return nil, ErrInvalidInput("Page reference string cannot be empty")
	}
	var pages []int
	for _, part := range strings.Split(input, ",") {
		part = strings.TrimSpace(part)
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 {
			return nil, ErrInvalidInputf("Invalid page number: %s", part)
		}
		pages = append(pages, n)
	}
	return pages, nil
}

// ParseDiskRequests parses comma-separated track numbers, each of which
// must lie in [0, diskSize).
func ParseDiskRequests(input string, diskSize int) ([]int, error) {
	if strings.TrimSpace(input) == "" {
		return nil, ErrInvalidInput("Request queue cannot be empty")
	}
	var tracks []int
	for _, part := range strings.Split(input, ",") {
		part = strings.TrimSpace(part)
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 || n >= diskSize {
			return nil, ErrInvalidInputf("Invalid track number: %s (must be 0-%d)", part, diskSize-1)
		}
		tracks = append(tracks, n)
	}
	return tracks, nil
}
