// Copyright © 2025 Slipway Authors

// Package changelog synthesizes release notes. When complete work units
// exist, an AI narrative is requested; in every other case (and whenever the
// narrative call fails) a deterministic grouped-by-type template guarantees
// output.
package changelog

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/slipway-sh/slipway/pkg/ai"
	"github.com/slipway-sh/slipway/pkg/model"
	"github.com/slipway-sh/slipway/pkg/retry"
	"go.uber.org/zap"
)

const narrativeSystem = `You write release notes for end users.
Write prose, not commit lists. Group content under these markdown headings,
omitting any heading with nothing to say:
### What's New
### Improvements
### Bug Fixes
### Technical Notes
Do not add a version heading; it is added by the caller. Base the notes only
on the work units provided.`

// Synthesizer produces the changelog entry for one release.
type Synthesizer struct {
	model ai.Model
	l     *zap.Logger
	retry retry.Options
	now   func() time.Time
}

// NewSynthesizer builds a synthesizer. A nil model disables the narrative
// path; the deterministic template is then always used.
func NewSynthesizer(m ai.Model, l *zap.Logger) *Synthesizer {
	if l == nil {
		l = zap.NewNop()
	}
	return &Synthesizer{model: m, l: l, now: time.Now}
}

// Generate returns the changelog entry for version. Complete work units
// select the narrative path; incomplete units are excluded from the
// narrative prompt entirely.
func (s *Synthesizer) Generate(ctx context.Context, units []model.WorkUnit, commits []model.Commit, version string) (string, error) {
	complete := model.CompleteUnits(units)
	if len(complete) == 0 || s.model == nil {
		return Deterministic(version, commits, s.now()), nil
	}

	raw, err := retry.DoValue(ctx, func(ctx context.Context) (string, error) {
		return s.model.Complete(ctx, ai.Request{
			System: narrativeSystem,
			Prompt: narrativePrompt(complete, commits),
		})
	}, s.retry)
	if err != nil {
		s.l.Warn("narrative generation failed, using deterministic changelog", zap.Error(err))
		return Deterministic(version, commits, s.now()), nil
	}
	return heading(version, s.now()) + "\n\n" + strings.TrimSpace(raw) + "\n", nil
}

// narrativePrompt passes only the descriptions and commit subjects of
// complete units.
func narrativePrompt(complete []model.WorkUnit, commits []model.Commit) string {
	subjects := make(map[string]string, len(commits))
	for _, c := range commits {
		subjects[c.Hash] = c.Subject
		subjects[c.ShortHash] = c.Subject
	}
	var b strings.Builder
	b.WriteString("Completed work units for this release:\n\n")
	for _, u := range complete {
		fmt.Fprintf(&b, "## %s (%s value)\n%s\n", u.Name, u.Value, u.Description)
		for _, hash := range u.Commits {
			if subj, ok := subjects[hash]; ok {
				fmt.Fprintf(&b, "- %s\n", subj)
			}
		}
		b.WriteString("\n")
	}
	b.WriteString("Write the release notes.")
	return b.String()
}

func heading(version string, now time.Time) string {
	return fmt.Sprintf("## %s (%s)", version, now.Format("2006-01-02"))
}

// Deterministic renders the grouped-by-type fallback template.
func Deterministic(version string, commits []model.Commit, now time.Time) string {
	var b strings.Builder
	b.WriteString(heading(version, now))
	b.WriteString("\n")

	if len(commits) == 0 {
		b.WriteString("\nNo significant changes\n")
		return b.String()
	}

	var features, fixes []model.Commit
	for _, c := range commits {
		switch c.ConventionalType() {
		case "feat":
			features = append(features, c)
		case "fix":
			fixes = append(fixes, c)
		}
	}

	if len(features) == 0 && len(fixes) == 0 {
		writeSection(&b, "Changes", commits)
		return b.String()
	}
	if len(features) > 0 {
		writeSection(&b, "New Features", features)
	}
	if len(fixes) > 0 {
		writeSection(&b, "Bug Fixes", fixes)
	}
	return b.String()
}

func writeSection(b *strings.Builder, title string, commits []model.Commit) {
	fmt.Fprintf(b, "\n### %s\n\n", title)
	for _, c := range commits {
		fmt.Fprintf(b, "- %s (%s)\n", subjectText(c), c.ShortHash)
	}
}

// subjectText strips the conventional prefix for display.
func subjectText(c model.Commit) string {
	if c.ConventionalType() == "" {
		return c.Subject
	}
	if _, rest, found := strings.Cut(c.Subject, ":"); found {
		return strings.TrimSpace(rest)
	}
	return c.Subject
}
