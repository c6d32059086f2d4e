// Copyright © 2025 Slipway Authors

package cmd

import (
	"context"

	"github.com/slipway-sh/slipway/pkg/ai"
	"github.com/slipway-sh/slipway/pkg/analysis"
	"github.com/slipway-sh/slipway/pkg/dlogger"
	"github.com/slipway-sh/slipway/pkg/gitrepo"
	"github.com/slipway-sh/slipway/pkg/github"
	"go.uber.org/zap"
)

// toolkit bundles the wired pipeline components for one command invocation.
// Credentials are read here, at the composition root, and threaded through
// constructors; no package below this reads the environment.
type toolkit struct {
	l     *zap.Logger
	repo  *gitrepo.Repo
	model ai.Model
	gh    *github.Client
	ghCLI *github.CLI
	owner string
	name  string
}

// newToolkit wires the shared components. When requireModel is false a
// missing API key degrades to a nil model instead of failing; commands with
// a deterministic fallback use this.
func newToolkit(ctx context.Context, requireModel bool) (*toolkit, error) {
	logger, err := dlogger.GetConsoleLogger(config.LogLevel)
	if err != nil {
		return nil, err
	}

	repo, err := gitrepo.New(params.root.repoPath, gitrepo.WithLogger(logger))
	if err != nil {
		return nil, err
	}

	creds := loadCredentials()

	provider, err := ai.ParseProvider(config.Provider)
	if err != nil {
		return nil, err
	}
	model, err := ai.NewModel(ai.Config{
		Provider:     provider,
		Model:        config.Model,
		AnthropicKey: creds.AnthropicKey,
		OpenAIKey:    creds.OpenAIKey,
	})
	if err != nil {
		if requireModel {
			return nil, err
		}
		logger.Warn("AI backend unavailable, deterministic output only", zap.Error(err))
		model = nil
	}

	t := &toolkit{
		l:     logger,
		repo:  repo,
		model: model,
		gh:    github.NewClient(creds.GitHubToken, github.WithLogger(logger)),
		ghCLI: github.NewCLI(params.root.repoPath, logger),
	}
	if remoteURL, err := repo.RemoteURL(ctx); err == nil {
		t.owner, t.name, _ = gitrepo.ParseOwnerRepo(remoteURL)
	}
	return t, nil
}

// analyzer wires the read-only half of the pipeline, optionally bounded at
// base instead of the latest tag.
func (t *toolkit) analyzer(base string) *analysis.Analyzer {
	ci := github.CIProbe{Client: t.gh, Owner: t.owner, Repo: t.name}
	return analysis.NewAnalyzer(
		t.repo,
		ci,
		analysis.NewClassifier(t.model, t.l),
		analysis.NewScorer(t.model, t.l, config.Release.Threshold),
		t.l,
	).WithBase(base)
}
