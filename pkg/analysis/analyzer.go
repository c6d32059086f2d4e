// Copyright © 2025 Slipway Authors

package analysis

import (
	"context"

	"github.com/slipway-sh/slipway/pkg/model"
	"go.uber.org/zap"
)

// Repository supplies the commit and tag data an analysis consumes.
type Repository interface {
	LatestTag(ctx context.Context) (*model.Tag, error)
	Log(ctx context.Context, since string) ([]model.Commit, error)
	CurrentBranch(ctx context.Context) (string, error)
}

// CIReporter derives the tri-state CI signal for a branch. Implementations
// report CIUnknown on error or when no runs exist, never an error.
type CIReporter interface {
	CIStatus(ctx context.Context, branch string) model.CIStatus
}

// Analyzer runs the full read-only half of the pipeline:
// extract → classify → score. Strictly sequential; no two AI calls overlap.
type Analyzer struct {
	repo       Repository
	ci         CIReporter
	classifier *Classifier
	scorer     *Scorer
	l          *zap.Logger
	base       string
}

// NewAnalyzer wires the pipeline. ci may be nil when no host is resolvable;
// the CI signal is then unknown.
func NewAnalyzer(repo Repository, ci CIReporter, classifier *Classifier, scorer *Scorer, l *zap.Logger) *Analyzer {
	if l == nil {
		l = zap.NewNop()
	}
	return &Analyzer{repo: repo, ci: ci, classifier: classifier, scorer: scorer, l: l}
}

// WithBase overrides the range boundary (default: the latest reachable tag).
// The current-version context still comes from the tag.
func (a *Analyzer) WithBase(ref string) *Analyzer {
	a.base = ref
	return a
}

// Analyze recomputes the release analysis from scratch. Nothing is persisted
// between invocations.
func (a *Analyzer) Analyze(ctx context.Context) (model.AnalysisResult, error) {
	var result model.AnalysisResult

	tag, err := a.repo.LatestTag(ctx)
	if err != nil {
		return result, err
	}
	since := a.base
	currentVersion := "0.0.0"
	if tag != nil {
		if since == "" {
			since = tag.Name
		}
		currentVersion = tag.Name
	}

	commits, err := a.repo.Log(ctx, since)
	if err != nil {
		return result, err
	}
	a.l.Debug("analysis range",
		zap.String("since", since),
		zap.Int("commits", len(commits)))

	ciStatus := model.CIUnknown
	if a.ci != nil {
		if branch, err := a.repo.CurrentBranch(ctx); err == nil {
			ciStatus = a.ci.CIStatus(ctx, branch)
		}
	}

	units, err := a.classifier.Classify(ctx, commits)
	if err != nil {
		return result, err
	}

	score, err := a.scorer.Score(ctx, commits, units, currentVersion, ciStatus.Passing())
	if err != nil {
		return result, err
	}

	result = model.AnalysisResult{
		WorkUnits:      units,
		Score:          score,
		CurrentVersion: currentVersion,
		CI:             ciStatus,
		Commits:        commits,
		LastRelease:    tag,
	}
	if score.Ready {
		bump := score.SuggestedBump
		if bump == "" {
			bump = SuggestBump(commits, units)
			a.l.Debug("scorer omitted bump, heuristic fallback", zap.String("bump", string(bump)))
		}
		result.SuggestedVersion = model.BumpVersion(currentVersion, bump)
	}
	return result, nil
}
