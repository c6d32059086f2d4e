// Copyright © 2025 Slipway Authors

// Package analysis holds the decision core of the release pipeline: grouping
// commits into work units, scoring release readiness, and the deterministic
// version-bump fallback. One AI call per concern, strictly sequential.
package analysis

import (
	"context"
	"strings"
	"time"

	"github.com/slipway-sh/slipway/pkg/ai"
	"github.com/slipway-sh/slipway/pkg/model"
	"github.com/slipway-sh/slipway/pkg/retry"
	"go.uber.org/zap"
)

// Classifier groups commits into named, valued, status-tagged work units
// through one classification request.
type Classifier struct {
	model ai.Model
	l     *zap.Logger
	retry retry.Options
	now   func() time.Time
}

// NewClassifier builds a classifier around the given backend.
func NewClassifier(m ai.Model, l *zap.Logger) *Classifier {
	if l == nil {
		l = zap.NewNop()
	}
	return &Classifier{model: m, l: l, now: time.Now}
}

// Classify issues a single classification request. Empty input
// short-circuits to an empty result without a remote call. Response-supplied
// identifiers are discarded; units get sequential local IDs.
func (c *Classifier) Classify(ctx context.Context, commits []model.Commit) ([]model.WorkUnit, error) {
	if len(commits) == 0 {
		return nil, nil
	}
	raw, err := retry.DoValue(ctx, func(ctx context.Context) (string, error) {
		return c.model.Complete(ctx, ai.Request{
			System: classifySystem,
			Prompt: classifyPrompt(commits),
		})
	}, c.retry)
	if err != nil {
		return nil, err
	}
	units, err := ai.DecodeWorkUnits(raw, c.now())
	if err != nil {
		return nil, err
	}
	for i := range units {
		units[i].ID = i + 1
	}
	c.warnOrphans(units, commits)
	return units, nil
}

// warnOrphans records member hashes that reference no commit in the analyzed
// range. Tolerated, not an error: partial or stale AI output should not sink
// the analysis, but it should not pass silently either.
func (c *Classifier) warnOrphans(units []model.WorkUnit, commits []model.Commit) {
	for _, u := range units {
		var orphans []string
		for _, member := range u.Commits {
			if !referencesCommit(member, commits) {
				orphans = append(orphans, member)
			}
		}
		if len(orphans) > 0 {
			c.l.Warn("work unit references commits outside the analyzed range",
				zap.String("unit", u.Name),
				zap.Strings("orphans", orphans))
		}
	}
}

// referencesCommit matches a member hash against the range, accepting
// abbreviated forms in either direction.
func referencesCommit(member string, commits []model.Commit) bool {
	member = strings.ToLower(strings.TrimSpace(member))
	if member == "" {
		return false
	}
	for _, c := range commits {
		hash := strings.ToLower(c.Hash)
		if strings.HasPrefix(hash, member) || strings.HasPrefix(member, hash) {
			return true
		}
	}
	return false
}
