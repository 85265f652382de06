package domain

import (
	"cmp"
	"slices"
)

// Record is a single stored value addressed by its composite key.
type Record struct {
	Outer string `json:"outer" yaml:"outer"`
	Inner string `json:"inner" yaml:"inner"`
	Value string `json:"value" yaml:"value"`
}

// Nested is an outer key and its inner entries.
type Nested struct {
	Outer   string            `json:"outer" yaml:"outer"`
	Size    int               `json:"size" yaml:"size"`
	Entries map[string]string `json:"entries" yaml:"entries"`
}

// FlatEntry is one entry of a flattened map.
type FlatEntry struct {
	Key   string `json:"key" yaml:"key"`
	Value string `json:"value" yaml:"value"`
}

// Modification describes the outcome of a modify operation.
type Modification struct {
	Outer   string `json:"outer" yaml:"outer"`
	Inner   string `json:"inner" yaml:"inner"`
	Op      string `json:"op" yaml:"op"`
	Value   string `json:"value,omitempty" yaml:"value,omitempty"`
	Removed bool   `json:"removed" yaml:"removed"`
}

// SortRecords orders records by outer key, then inner key.
func SortRecords(records []Record) {
	slices.SortFunc(records, func(a, b Record) int {
		if c := cmp.Compare(a.Outer, b.Outer); c != 0 {
			return c
		}
		return cmp.Compare(a.Inner, b.Inner)
	})
}

// SortNested orders nested views by outer key.
func SortNested(nested []Nested) {
	slices.SortFunc(nested, func(a, b Nested) int {
		return cmp.Compare(a.Outer, b.Outer)
	})
}

// SortFlat orders flattened entries by key.
func SortFlat(entries []FlatEntry) {
	slices.SortFunc(entries, func(a, b FlatEntry) int {
		return cmp.Compare(a.Key, b.Key)
	})
}
