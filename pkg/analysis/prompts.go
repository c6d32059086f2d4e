// Copyright © 2025 Slipway Authors

package analysis

import (
	"fmt"
	"strings"

	"github.com/slipway-sh/slipway/pkg/model"
)

const classifySystem = `You are a release manager analyzing a repository's commit history.
Group commits into work units: named, coherent pieces of delivered functionality.
Respond with a JSON array only, no prose. Each element:
{
  "name": string,
  "description": string,
  "status": "in_progress" | "complete" | "abandoned",
  "value": "low" | "medium" | "high",
  "commits": [commit hashes from the input],
  "created_at": ISO 8601 date of the earliest member commit,
  "completed_at": ISO 8601 date of the finishing commit, omit if not complete
}`

const scoreSystem = `You are a release manager judging whether accumulated changes justify a release.
Score four components and respond with a JSON object only, no prose:
{
  "completeness": 0-40, how finished the in-flight work is,
  "value": 0-30, how much user-facing value has accumulated,
  "coherence": 0-20, whether the changes tell one releasable story,
  "stability": 0-10, CI and code health,
  "total": sum of the four components,
  "ready": boolean, true only if total >= the stated threshold,
  "suggested_bump": "major" | "minor" | "patch", omit if unsure,
  "reasoning": one short paragraph
}`

func classifyPrompt(commits []model.Commit) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Commits since the last release (%d total), newest first:\n\n", len(commits))
	for _, c := range commits {
		fmt.Fprintf(&b, "- %s %s (%s, %s)\n", c.ShortHash, c.Subject, c.AuthorName, c.Timestamp.Format("2006-01-02"))
		if c.Body != "" {
			fmt.Fprintf(&b, "  body: %s\n", firstLine(c.Body))
		}
		if len(c.Files) > 0 {
			fmt.Fprintf(&b, "  files: %s\n", strings.Join(head(c.Files, 8), ", "))
		}
	}
	b.WriteString("\nGroup these commits into work units.")
	return b.String()
}

func scorePrompt(commits []model.Commit, units []model.WorkUnit, currentVersion string, ciPassing bool, threshold int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Current version: %s\n", currentVersion)
	fmt.Fprintf(&b, "CI passing: %t\n", ciPassing)
	fmt.Fprintf(&b, "Readiness threshold: %d\n", threshold)
	fmt.Fprintf(&b, "Commits since last release: %d\n\n", len(commits))
	b.WriteString("Work units:\n")
	for _, u := range units {
		fmt.Fprintf(&b, "- %s [%s, %s value, %d commits]: %s\n", u.Name, u.Status, u.Value, len(u.Commits), u.Description)
	}
	b.WriteString("\nScore release readiness.")
	return b.String()
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

func head(items []string, n int) []string {
	if len(items) <= n {
		return items
	}
	return append(append([]string{}, items[:n]...), fmt.Sprintf("and %d more", len(items)-n))
}
