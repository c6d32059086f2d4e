package model

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// semverRe matches a major.minor.patch prefix, ignoring a leading "v" and
// any trailing pre-release or build label.
var semverRe = regexp.MustCompile(`^v?(\d+)\.(\d+)\.(\d+)`)

// Version is a parsed semantic version triple.
type Version struct {
	Major int
	Minor int
	Patch int
}

// String renders the triple without any "v" prefix.
func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// ParseVersion extracts the semantic triple from a version string.
// Unparsable input defaults to 0.0.0.
func ParseVersion(s string) Version {
	m := semverRe.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return Version{}
	}
	major, _ := strconv.Atoi(m[1])
	minor, _ := strconv.Atoi(m[2])
	patch, _ := strconv.Atoi(m[3])
	return Version{Major: major, Minor: minor, Patch: patch}
}

// BumpVersion applies a bump tier to a version string. Bumping major resets
// minor and patch; bumping minor resets patch. A "v" prefix on the input is
// preserved on the output and never added when absent.
func BumpVersion(s string, bump VersionBump) string {
	v := ParseVersion(s)
	switch bump {
	case BumpMajor:
		v = Version{Major: v.Major + 1}
	case BumpMinor:
		v = Version{Major: v.Major, Minor: v.Minor + 1}
	default:
		v.Patch++
	}
	out := v.String()
	if strings.HasPrefix(strings.TrimSpace(s), "v") {
		return "v" + out
	}
	return out
}
