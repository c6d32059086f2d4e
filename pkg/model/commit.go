package model

import (
	"strings"
	"time"
)

// Commit is a single commit extracted from the repository log.
// Immutable once parsed; created exclusively by the log reader.
type Commit struct {
	Hash        string    `json:"hash" yaml:"hash"`
	ShortHash   string    `json:"shortHash" yaml:"shortHash"`
	Subject     string    `json:"subject" yaml:"subject"`
	Body        string    `json:"body,omitempty" yaml:"body,omitempty"`
	AuthorName  string    `json:"authorName" yaml:"authorName"`
	AuthorEmail string    `json:"authorEmail" yaml:"authorEmail"`
	Timestamp   time.Time `json:"timestamp" yaml:"timestamp"`
	Files       []string  `json:"files,omitempty" yaml:"files,omitempty"`
}

// Tag marks the most recent release boundary. A nil *Tag means no prior
// release exists.
type Tag struct {
	Name      string    `json:"name" yaml:"name"`
	Hash      string    `json:"hash" yaml:"hash"`
	Timestamp time.Time `json:"timestamp" yaml:"timestamp"`
}

// ConventionalType returns the conventional-commit type of the subject line
// ("feat", "fix", ...), stripped of any scope and breaking-change bang.
// Subjects without a recognizable "type: " prefix yield "".
func (c Commit) ConventionalType() string {
	head, _, found := strings.Cut(c.Subject, ":")
	if !found {
		return ""
	}
	head = strings.TrimSuffix(strings.TrimSpace(head), "!")
	if i := strings.IndexByte(head, '('); i >= 0 {
		if !strings.HasSuffix(head, ")") {
			return ""
		}
		head = head[:i]
	}
	if head == "" || strings.ContainsAny(head, " \t") {
		return ""
	}
	return strings.ToLower(head)
}

// HasBreakingMarker reports whether the commit declares a breaking change:
// a "!" before the type separator, or a breaking-change footer in the body.
func (c Commit) HasBreakingMarker() bool {
	if head, _, found := strings.Cut(c.Subject, ":"); found {
		if strings.HasSuffix(strings.TrimSpace(head), "!") {
			return true
		}
	}
	body := strings.ToUpper(c.Body)
	return strings.Contains(body, "BREAKING CHANGE") || strings.Contains(body, "BREAKING-CHANGE")
}
