package models

import "fmt"

// FilterGroup identifies one independent filter dimension.
type FilterGroup string

const (
	FilterPrice    FilterGroup = "price"
	FilterLevel    FilterGroup = "level"
	FilterDuration FilterGroup = "duration"
	FilterRating   FilterGroup = "rating"
	FilterLanguage FilterGroup = "language"
)

// filterKeys enumerates the valid flags per group. Within a group flags
// are OR'd; across groups the predicates are AND'd. An all-false group
// matches every course.
var filterKeys = map[FilterGroup][]string{
	FilterPrice:    {"free", "paid"},
	FilterLevel:    {"beginner", "intermediate", "advanced"},
	FilterDuration: {"short", "medium", "long"},
	FilterRating:   {"high", "good", "average"},
	FilterLanguage: {"english", "hindi", "other"},
}

// FilterState holds the boolean flag selections for every group.
type FilterState map[FilterGroup]map[string]bool

// NewFilterState returns the all-false default selection.
func NewFilterState() FilterState {
	state := make(FilterState, len(filterKeys))
	for group, keys := range filterKeys {
		flags := make(map[string]bool, len(keys))
		for _, key := range keys {
			flags[key] = false
		}
		state[group] = flags
	}
	return state
}

// Toggle flips exactly one flag. Unknown groups or keys are rejected.
func (s FilterState) Toggle(group FilterGroup, key string) error {
	flags, ok := s[group]
	if !ok {
		return fmt.Errorf("unknown filter group %q", group)
	}
	if _, ok := flags[key]; !ok {
		return fmt.Errorf("unknown filter key %q in group %q", key, group)
	}
	flags[key] = !flags[key]
	return nil
}

// Clear resets every flag to false.
func (s FilterState) Clear() {
	for _, flags := range s {
		for key := range flags {
			flags[key] = false
		}
	}
}

// Enabled reports whether the flag is set. Missing entries read as false.
func (s FilterState) Enabled(group FilterGroup, key string) bool {
	return s[group][key]
}

// GroupActive reports whether any flag in the group is set.
func (s FilterState) GroupActive(group FilterGroup) bool {
	for _, set := range s[group] {
		if set {
			return true
		}
	}
	return false
}

// Clone returns an independent copy of the state.
func (s FilterState) Clone() FilterState {
	clone := make(FilterState, len(s))
	for group, flags := range s {
		copied := make(map[string]bool, len(flags))
		for key, set := range flags {
			copied[key] = set
		}
		clone[group] = copied
	}
	return clone
}
