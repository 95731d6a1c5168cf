package scenario

import (
	"encoding/json"
	"fmt"

	"github.com/miretskiy/osviz/catalog"
	"github.com/miretskiy/osviz/cpusched"
	"github.com/miretskiy/osviz/disksched"
	"github.com/miretskiy/osviz/paging"
)

// Family selects which engine a scenario runs on.
type Family int

const (
	FamilyPageReplacement Family = iota
	FamilyCPUScheduling
	FamilyDiskScheduling
)

// Families lists every family in display order.
var Families = []Family{FamilyPageReplacement, FamilyCPUScheduling, FamilyDiskScheduling}

// String returns the catalog category id of the family
func (f Family) String() string {
	return string(f.Category())
}

// Category maps the family onto its catalog category.
func (f Family) Category() catalog.Category {
	switch f {
	case FamilyCPUScheduling:
		return catalog.CPUScheduling
	case FamilyDiskScheduling:
		return catalog.DiskScheduling
	default:
		return catalog.PageReplacement
	}
}

// ParseFamily parses a string into Family
func ParseFamily(s string) (Family, error) {
	for _, f := range Families {
		if f.String() == s {
			return f, nil
		}
	}
	return FamilyPageReplacement, fmt.Errorf("invalid family: %s (must be 'page-replacement', 'cpu-scheduling' or 'disk-scheduling')", s)
}

// MarshalJSON implements json.Marshaler for Family
func (f Family) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.String())
}

// UnmarshalJSON implements json.Unmarshaler for Family
func (f *Family) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseFamily(s)
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

// AlgorithmIDs returns the ids of every algorithm in the family.
func (f Family) AlgorithmIDs() []string {
	var ids []string
	switch f {
	case FamilyCPUScheduling:
		for _, a := range cpusched.Algorithms {
			ids = append(ids, a.ID())
		}
	case FamilyDiskScheduling:
		for _, a := range disksched.Algorithms {
			ids = append(ids, a.ID())
		}
	default:
		for _, a := range paging.Algorithms {
			ids = append(ids, a.ID())
		}
	}
	return ids
}
