// Package search finds date times in ascending slices of ISO 8601 strings.
//
// The slices must sort the same lexicographically and chronologically,
// which holds for ISO strings in a single layout with no negative years.
// Slices whose first entry has a negative year are rejected. None of the
// functions panic; failures return a sentinel index documented on each
// function.
package search

import (
	"errors"
	"math"
	"slices"
	"strings"

	"github.com/theory/isotime/iso/parser"
)

var (
	errEmpty = errors.New("search: no dates")

	// errNegativeYear reports a slice whose order is not chronological.
	errNegativeYear = errors.New("search: negative years are not supported")
)

// FindClosest returns the index of the entry in dates closest in time to
// target. An exact string match returns its index. Otherwise the nearer of
// the two entries bracketing target wins, with ties going to the later
// entry. Targets before the first or after the last entry return 0 or
// len(dates)-1. Returns len(dates)-1 if dates is empty, has a negative
// first year, or target or a compared entry cannot be parsed.
func FindClosest(dates []string, target string) int {
	idx, err := findClosest(dates, target)
	if err != nil {
		return len(dates) - 1
	}
	return idx
}

func findClosest(dates []string, target string) (int, error) {
	want, i, found, err := locate(dates, target)
	if err != nil || found {
		return i, err
	}
	switch {
	case i == 0:
		return 0, nil
	case i >= len(dates):
		return len(dates) - 1, nil
	}

	before, err := epoch(dates[i-1])
	if err != nil {
		return 0, err
	}
	after, err := epoch(dates[i])
	if err != nil {
		return 0, err
	}
	if math.Abs(before-want) < math.Abs(after-want) {
		return i - 1, nil
	}
	return i, nil
}

// FindLastLE returns the index of the last entry in dates at or before
// target. Entries equal to target in time are all skipped to the last of
// them. Returns -1 if no entry is at or before target, or if dates is
// empty, has a negative first year, or an entry or target cannot be parsed.
func FindLastLE(dates []string, target string) int {
	idx, err := findLastLE(dates, target)
	if err != nil {
		return -1
	}
	return idx
}

func findLastLE(dates []string, target string) (int, error) {
	want, i, found, err := locate(dates, target)
	if err != nil {
		return 0, err
	}
	if !found {
		i--
	}
	for i < len(dates)-1 {
		next, err := epoch(dates[i+1])
		if err != nil {
			return 0, err
		}
		if next > want {
			break
		}
		i++
	}
	return i, nil
}

// FindFirstGE returns the index of the first entry in dates at or after
// target. Entries equal to target in time are all skipped to the first of
// them. Returns len(dates) if no entry is at or after target, or if dates
// is empty, has a negative first year, or an entry or target cannot be
// parsed.
func FindFirstGE(dates []string, target string) int {
	idx, err := findFirstGE(dates, target)
	if err != nil {
		return len(dates)
	}
	return idx
}

func findFirstGE(dates []string, target string) (int, error) {
	want, i, _, err := locate(dates, target)
	if err != nil {
		return 0, err
	}
	for i > 0 {
		prev, err := epoch(dates[i-1])
		if err != nil {
			return 0, err
		}
		if prev < want {
			break
		}
		i--
	}
	return i, nil
}

// locate validates dates, parses target, and returns its epoch seconds and
// its lexicographic insertion point in dates.
func locate(dates []string, target string) (float64, int, bool, error) {
	if len(dates) == 0 {
		return 0, 0, false, errEmpty
	}
	if strings.HasPrefix(dates[0], "-") {
		return 0, 0, false, errNegativeYear
	}
	want, err := epoch(target)
	if err != nil {
		return 0, 0, false, err
	}
	i, found := slices.BinarySearch(dates, target)
	return want, i, found, nil
}

func epoch(s string) (float64, error) {
	v, err := parser.ParseZulu(s)
	if err != nil {
		return 0, err
	}
	return v.EpochSeconds(), nil
}
