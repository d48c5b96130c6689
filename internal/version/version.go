// Package version implements the string arithmetic of the release flow:
// stripping the snapshot suffix off a development version and incrementing
// the trailing numeric component to derive the next development version.
//
// Versions here are not required to be semver. A version is any
// dot-separated sequence of components; only the final component must be
// an integer for Increment to work. This deliberately accepts "3",
// "1.2" and "1.2.3.4" alike — Maven projects use all of them.
package version

import (
	"fmt"
	"strconv"
	"strings"
)

// DefaultSnapshotSuffix is Maven's conventional pre-release marker.
const DefaultSnapshotSuffix = "-SNAPSHOT"

// StripSuffix removes every trailing occurrence of suffix from v,
// case-insensitively. Stripping is idempotent: a version without the
// suffix is returned unchanged, and "1.0-SNAPSHOT-SNAPSHOT" strips down
// to "1.0" in one call.
func StripSuffix(v, suffix string) string {
	if suffix == "" {
		return v
	}
	lower := strings.ToLower(suffix)
	for strings.HasSuffix(strings.ToLower(v), lower) {
		v = v[:len(v)-len(suffix)]
	}
	return v
}

// Increment returns v with only its final dot-separated component
// incremented by one. All preceding components are preserved verbatim:
//
//	"3"      → "4"
//	"1.2.9"  → "1.2.10"
//	"0.0.0"  → "0.0.1"
//
// It returns an error when the final component is not a plain integer,
// since there is then no sensible default for the next version and the
// operator must supply one explicitly.
func Increment(v string) (string, error) {
	idx := strings.LastIndex(v, ".")
	head, last := "", v
	if idx >= 0 {
		head, last = v[:idx+1], v[idx+1:]
	}

	n, err := strconv.Atoi(last)
	if err != nil || last == "" || strings.HasPrefix(last, "-") {
		return "", fmt.Errorf("cannot increment version %q: final component %q is not a number", v, last)
	}

	return head + strconv.Itoa(n+1), nil
}

// NextDevelopment normalizes v into a development version: any existing
// snapshot suffixes are stripped and exactly one is appended. The operator
// may therefore answer the next-version prompt with or without the suffix
// and get the same result.
func NextDevelopment(v, suffix string) string {
	return StripSuffix(v, suffix) + suffix
}
