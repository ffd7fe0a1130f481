package semver

import (
	"fmt"
	"regexp"
	"strconv"
)

// pattern is searched anywhere in the input, not anchored. Release tags
// in the wild carry prefixes and suffixes ("release-1.2.3", "v1.2.0-rc1")
// and rejecting them would defeat the check.
var pattern = regexp.MustCompile(`v?(\d+)\.(\d+)(?:\.(\d+))?`)

// Version is a three-component semantic version. A missing patch
// component parses as 0; every field is always set. Version is a pure
// value type: compare with Compare or ==.
type Version struct {
	Major int
	Minor int
	Patch int
}

// ParseError reports input that contains no recognizable version
// pattern. It keeps the original input for diagnostics.
type ParseError struct {
	Input string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid semantic version: %q", e.Input)
}

// Parse extracts the first MAJOR.MINOR[.PATCH] occurrence from text,
// with an optional leading "v". Numeric groups parse as base-10, so
// leading zeros are fine ("01" is 1).
func Parse(text string) (Version, error) {
	m := pattern.FindStringSubmatch(text)
	if m == nil {
		return Version{}, &ParseError{Input: text}
	}

	major, err := strconv.Atoi(m[1])
	if err != nil {
		return Version{}, &ParseError{Input: text}
	}
	minor, err := strconv.Atoi(m[2])
	if err != nil {
		return Version{}, &ParseError{Input: text}
	}
	patch := 0
	if m[3] != "" {
		patch, err = strconv.Atoi(m[3])
		if err != nil {
			return Version{}, &ParseError{Input: text}
		}
	}

	return Version{Major: major, Minor: minor, Patch: patch}, nil
}

// Compare orders versions as numeric tuples: major, then minor, then
// patch. Returns -1 if a < b, 0 if a == b, 1 if a > b.
func Compare(a, b Version) int {
	switch {
	case a.Major < b.Major:
		return -1
	case a.Major > b.Major:
		return 1
	case a.Minor < b.Minor:
		return -1
	case a.Minor > b.Minor:
		return 1
	case a.Patch < b.Patch:
		return -1
	case a.Patch > b.Patch:
		return 1
	}
	return 0
}

// Less reports whether v orders strictly before o.
func (v Version) Less(o Version) bool {
	return Compare(v, o) < 0
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}
