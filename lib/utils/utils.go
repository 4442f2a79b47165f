package utils

import (
	"fmt"
	"strconv"
	"strings"

	"go-slist/enum"
)

// SplitValues splits s by sep, trims blanks around every value and drops empty ones.
func SplitValues(s, sep string) []string {
	parts := strings.Split(s, sep)
	values := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			values = append(values, p)
		}
	}
	return values
}

// ParseInts converts every value to int.
func ParseInts(values []string) ([]int, error) {
	ints := make([]int, len(values))
	for i, v := range values {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", enum.BAD_VALUE, v)
		}
		ints[i] = n
	}
	return ints, nil
}

// Truncate returns the first limit values, or all of them when limit <= 0.
func Truncate[T any](values []T, limit int) (head []T, truncated bool) {
	if limit <= 0 || len(values) <= limit {
		return values, false
	}
	return values[:limit], true
}

// If returns trueVal if condition is true, otherwise falseVal.
func If[T any](condition bool, trueVal, falseVal T) T {
	if condition {
		return trueVal
	}
	return falseVal
}
