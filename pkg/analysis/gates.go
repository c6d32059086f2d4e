// Copyright © 2025 Slipway Authors

package analysis

import (
	"path"
	"regexp"
	"strings"

	"github.com/slipway-sh/slipway/pkg/model"
)

// Completeness gates evaluated against the release range when configuration
// requires them. Both are deterministic, no AI involvement.

var testDirSegments = map[string]bool{
	"test":      true,
	"tests":     true,
	"testing":   true,
	"__tests__": true,
	"spec":      true,
	"specs":     true,
}

// TouchesTests reports whether any commit in the range modifies a test file,
// recognized by common naming conventions across ecosystems.
func TouchesTests(commits []model.Commit) bool {
	for _, c := range commits {
		for _, f := range c.Files {
			if isTestPath(f) {
				return true
			}
		}
	}
	return false
}

func isTestPath(p string) bool {
	p = strings.ToLower(strings.ReplaceAll(p, "\\", "/"))
	base := path.Base(p)
	if strings.Contains(base, "_test.") ||
		strings.Contains(base, ".test.") ||
		strings.Contains(base, ".spec.") ||
		strings.HasPrefix(base, "test_") {
		return true
	}
	for _, seg := range strings.Split(path.Dir(p), "/") {
		if testDirSegments[seg] {
			return true
		}
	}
	return false
}

var prRefRe = regexp.MustCompile(`#\d+\b`)

// HasReviewTrail reports whether any commit in the range carries a
// pull-request trail: a merge-of-PR subject or a PR/issue reference. A proxy
// signal; direct review metadata is not available from the log.
func HasReviewTrail(commits []model.Commit) bool {
	for _, c := range commits {
		if strings.HasPrefix(c.Subject, "Merge pull request") {
			return true
		}
		if prRefRe.MatchString(c.Subject) {
			return true
		}
	}
	return false
}
