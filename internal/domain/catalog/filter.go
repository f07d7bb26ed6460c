package catalog

import (
	"strings"
)

// FilterState is the full set of constraints a browsing session can apply.
// Empty fields mean "no constraint".
type FilterState struct {
	SearchKey        string
	SelectedTypes    []string
	SelectedFamilies []string
}

func (s FilterState) IsEmpty() bool {
	return s.SearchKey == "" && len(s.SelectedTypes) == 0 && len(s.SelectedFamilies) == 0
}

// Filter returns the items that satisfy every constraint in state, in the
// same order they appear in items. The search key matches name or
// description, case-insensitive; type and family are exact membership
// checks.
func Filter(items []Item, state FilterState) []Item {
	searchKey := strings.ToLower(state.SearchKey)

	filtered := make([]Item, 0, len(items))
	for _, item := range items {
		if !matchesSearch(item, searchKey) {
			continue
		}
		if !matchesSelection(item.Type, state.SelectedTypes) {
			continue
		}
		if !matchesSelection(item.Family, state.SelectedFamilies) {
			continue
		}
		filtered = append(filtered, item)
	}

	return filtered
}

func matchesSearch(item Item, searchKey string) bool {
	if searchKey == "" {
		return true
	}
	if item.Name != "" && strings.Contains(strings.ToLower(item.Name), searchKey) {
		return true
	}
	if item.Description != "" && strings.Contains(strings.ToLower(item.Description), searchKey) {
		return true
	}
	return false
}

func matchesSelection(value string, selected []string) bool {
	if len(selected) == 0 {
		return true
	}
	for _, s := range selected {
		if value == s {
			return true
		}
	}
	return false
}
