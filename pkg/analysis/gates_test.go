// Copyright © 2025 Slipway Authors

package analysis

import (
	"testing"

	"github.com/slipway-sh/slipway/pkg/model"
	"github.com/stretchr/testify/assert"
)

func TestTouchesTests(t *testing.T) {
	cases := []struct {
		name  string
		files []string
		want  bool
	}{
		{"go test file", []string{"pkg/retry/retry_test.go"}, true},
		{"js test file", []string{"src/app.test.ts"}, true},
		{"jest spec", []string{"src/routes.spec.js"}, true},
		{"python test prefix", []string{"api/test_endpoints.py"}, true},
		{"tests directory", []string{"tests/fixtures/data.json"}, true},
		{"dunder tests directory", []string{"src/__tests__/app.js"}, true},
		{"source only", []string{"pkg/retry/retry.go", "README.md"}, false},
		{"contest is not a test dir", []string{"contest/entry.go"}, false},
		{"no files", nil, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			commits := []model.Commit{{Hash: "a", Files: tc.files}}
			assert.Equal(t, tc.want, TouchesTests(commits))
		})
	}
}

func TestHasReviewTrail(t *testing.T) {
	cases := []struct {
		name    string
		subject string
		want    bool
	}{
		{"merge of pr", "Merge pull request #42 from fork/branch", true},
		{"squash suffix", "feat: add exporter (#118)", true},
		{"bare reference", "fix crash reported in #7", true},
		{"plain subject", "fix: handle empty log output", false},
		{"hash without number", "docs: explain # prefix handling", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			commits := []model.Commit{{Hash: "a", Subject: tc.subject}}
			assert.Equal(t, tc.want, HasReviewTrail(commits))
		})
	}
}
