package validation

import "strings"

// IsPresent reports whether the value contains anything besides whitespace.
// Form fields arrive as strings, so "present" means non-empty after trimming.
func IsPresent(value string) bool {
	return strings.TrimSpace(value) != ""
}

// AllPresent reports whether every value passes IsPresent.
func AllPresent(values ...string) bool {
	for _, v := range values {
		if !IsPresent(v) {
			return false
		}
	}
	return true
}

// AnyPresent reports whether at least one value passes IsPresent.
// Checkbox groups submit zero or more values; an all-blank list counts as
// nothing selected.
func AnyPresent(values []string) bool {
	for _, v := range values {
		if IsPresent(v) {
			return true
		}
	}
	return false
}
