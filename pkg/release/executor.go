// Copyright © 2025 Slipway Authors

// Package release executes a release: validate the working tree, create and
// push the annotated tag, then publish a host release (gh CLI preferred,
// REST fallback).
//
// The execution is a one-way state machine:
//
//	Idle → Validated → Tagged → Pushed → Published|Skipped → Done
//
// with a short-circuit Idle → DryRunReported when the dry-run flag is set.
// There is no lock between the cleanliness check and tag creation; a
// concurrent external mutation of the repository in that window is a known,
// accepted race.
package release

import (
	"context"
	"strings"

	"github.com/slipway-sh/slipway/pkg/errors"
	"github.com/slipway-sh/slipway/pkg/gitrepo"
	"github.com/slipway-sh/slipway/pkg/github"
	"github.com/slipway-sh/slipway/pkg/model"
	"go.uber.org/zap"
)

// Repository is the subset of the repository gateway the executor mutates.
type Repository interface {
	IsClean(ctx context.Context) (bool, error)
	CreateTag(ctx context.Context, name, message string) error
	PushTag(ctx context.Context, name string) error
	RemoteURL(ctx context.Context) (string, error)
}

// HostAPI publishes releases over the host REST surface.
type HostAPI interface {
	CreateRelease(ctx context.Context, owner, repo string, p github.ReleaseParams) (string, error)
}

// HostCLI publishes releases through an installed host CLI tool.
type HostCLI interface {
	Available(ctx context.Context) bool
	CreateRelease(ctx context.Context, tag, title, notes string) (string, error)
}

// Options controls one execution.
type Options struct {
	// DryRun reports the would-be outcome without mutating anything.
	DryRun bool

	// SkipPublish terminates in Done after the push, without a host release.
	SkipPublish bool

	// PublishRelease is the configuration toggle for host releases.
	PublishRelease bool
}

// Executor sequences the release steps.
type Executor struct {
	repo Repository
	api  HostAPI
	cli  HostCLI
	l    *zap.Logger
}

// NewExecutor wires an executor. api and cli may be nil; publication then
// terminates in Done without a host release or fails on missing
// credentials, matching the configured toggles.
func NewExecutor(repo Repository, api HostAPI, cli HostCLI, l *zap.Logger) *Executor {
	if l == nil {
		l = zap.NewNop()
	}
	return &Executor{repo: repo, api: api, cli: cli, l: l}
}

// Run executes the release for version with the given changelog entry.
func (e *Executor) Run(ctx context.Context, version, changelog string, opts Options) (model.ReleaseResult, error) {
	result := model.ReleaseResult{Version: version, Changelog: changelog}
	tag := tagName(version)

	if opts.DryRun {
		result.DryRun = true
		e.l.Info("dry run: no tag, no push, no publication", zap.String("tag", tag))
		return result, nil
	}

	// Idle → Validated
	clean, err := e.repo.IsClean(ctx)
	if err != nil {
		return result, err
	}
	if !clean {
		return result, errors.ErrDirtyTree
	}

	// Validated → Tagged. A duplicate tag fails fast here by design.
	if err := e.repo.CreateTag(ctx, tag, "Release "+tag); err != nil {
		return result, err
	}
	result.TagCreated = true

	// Tagged → Pushed
	if err := e.repo.PushTag(ctx, tag); err != nil {
		return result, err
	}
	result.TagPushed = true

	// Pushed → Published | Skipped
	if opts.SkipPublish || !opts.PublishRelease {
		e.l.Info("host release skipped", zap.Bool("skipFlag", opts.SkipPublish))
		return result, nil
	}
	url, err := e.publish(ctx, tag, changelog)
	if err != nil {
		return result, err
	}
	result.ReleaseURL = url
	return result, nil
}

// publish resolves the host repository and creates the release, preferring
// the CLI tool. An unresolvable remote is a successful no-publish outcome.
func (e *Executor) publish(ctx context.Context, tag, notes string) (string, error) {
	remoteURL, err := e.repo.RemoteURL(ctx)
	if err != nil {
		return "", err
	}
	owner, repo, ok := gitrepo.ParseOwnerRepo(remoteURL)
	if !ok {
		e.l.Warn("remote URL does not resolve to a host repository, skipping publication",
			zap.String("remote", remoteURL))
		return "", nil
	}

	if e.cli != nil && e.cli.Available(ctx) {
		return e.cli.CreateRelease(ctx, tag, tag, notes)
	}
	if e.api == nil {
		return "", errors.ErrNoCredentials
	}
	return e.api.CreateRelease(ctx, owner, repo, github.ReleaseParams{
		TagName: tag,
		Name:    tag,
		Body:    notes,
	})
}

// tagName prefixes "v" only when the version string lacks it.
func tagName(version string) string {
	if strings.HasPrefix(version, "v") {
		return version
	}
	return "v" + version
}
