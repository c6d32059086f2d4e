// Copyright © 2025 Slipway Authors

package analysis

import (
	"context"

	"github.com/slipway-sh/slipway/pkg/ai"
	"github.com/slipway-sh/slipway/pkg/model"
	"github.com/slipway-sh/slipway/pkg/retry"
	"go.uber.org/zap"
)

// DefaultThreshold is the readiness total required for ready=true unless
// configuration overrides it.
const DefaultThreshold = 70

// Scorer produces the 0-100 composite readiness score.
type Scorer struct {
	model     ai.Model
	l         *zap.Logger
	retry     retry.Options
	threshold int
}

// NewScorer builds a scorer. A non-positive threshold selects the default.
func NewScorer(m ai.Model, l *zap.Logger, threshold int) *Scorer {
	if l == nil {
		l = zap.NewNop()
	}
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	return &Scorer{model: m, l: l, threshold: threshold}
}

// Score issues one scoring request. With no commits and no work units it
// short-circuits deterministically without a remote call: all components
// zero except stability, which reflects CI. The model's ready verdict is
// authoritative; callers only gate on it.
func (s *Scorer) Score(ctx context.Context, commits []model.Commit, units []model.WorkUnit, currentVersion string, ciPassing bool) (model.ReadinessScore, error) {
	if len(commits) == 0 && len(units) == 0 {
		stability := 0
		if ciPassing {
			stability = 10
		}
		return model.ReadinessScore{
			Stability: stability,
			Total:     stability,
			Ready:     false,
			Reasoning: "no changes since last release",
		}, nil
	}

	raw, err := retry.DoValue(ctx, func(ctx context.Context) (string, error) {
		return s.model.Complete(ctx, ai.Request{
			System: scoreSystem,
			Prompt: scorePrompt(commits, units, currentVersion, ciPassing, s.threshold),
		})
	}, s.retry)
	if err != nil {
		return model.ReadinessScore{}, err
	}
	score, err := ai.DecodeScore(raw)
	if err != nil {
		return model.ReadinessScore{}, err
	}
	s.l.Debug("readiness scored",
		zap.Int("total", score.Total),
		zap.Bool("ready", score.Ready),
		zap.String("suggestedBump", string(score.SuggestedBump)))
	return score, nil
}
