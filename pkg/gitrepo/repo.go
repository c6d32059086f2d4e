// Copyright © 2025 Slipway Authors

// Package gitrepo is the repository gateway: it extracts structured commit
// history, discovers release tags, checks working-tree state, and performs
// the tag mutations of a release.
//
// Reads and mutations go through the git CLI; repository and remote
// introspection uses go-git. VCS failures are fatal to the current
// operation and are never retried.
package gitrepo

import (
	"context"
	"os/exec"
	"strings"

	git "github.com/go-git/go-git/v5"
	"github.com/slipway-sh/slipway/pkg/errors"
	"go.uber.org/zap"
)

// runner abstracts git command execution for tests.
type runner interface {
	run(ctx context.Context, args ...string) (string, error)
}

type execRunner struct {
	dir string
}

func (r execRunner) run(ctx context.Context, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", append([]string{"-C", r.dir}, args...)...)
	out, err := cmd.Output()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok && len(exitErr.Stderr) > 0 {
			return "", errors.New("git " + args[0] + ": " + strings.TrimSpace(string(exitErr.Stderr))).Wrap(err)
		}
		return "", errors.New("git " + args[0] + " failed").Wrap(err)
	}
	return string(out), nil
}

// Repo is a handle on a local working copy.
type Repo struct {
	path   string
	remote string
	l      *zap.Logger
	run    runner
}

// Option customizes a Repo handle.
type Option func(*Repo)

// WithLogger sets the logger (default: no logging).
func WithLogger(l *zap.Logger) Option {
	return func(r *Repo) {
		if l != nil {
			r.l = l
		}
	}
}

// WithRemote overrides the remote name used for pushes and URL resolution
// (default "origin").
func WithRemote(name string) Option {
	return func(r *Repo) {
		if name != "" {
			r.remote = name
		}
	}
}

// New returns a handle on the working copy at path. The path must contain a
// repository; callers get ErrNotRepository otherwise.
func New(path string, opts ...Option) (*Repo, error) {
	if _, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{DetectDotGit: true}); err != nil {
		if err == git.ErrRepositoryNotExists {
			return nil, errors.ErrNotRepository.Wrap(err)
		}
		return nil, err
	}
	r := &Repo{
		path:   path,
		remote: "origin",
		l:      zap.NewNop(),
		run:    execRunner{dir: path},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// IsClean reports whether the working tree has no uncommitted changes.
func (r *Repo) IsClean(ctx context.Context) (bool, error) {
	out, err := r.run.run(ctx, "status", "--porcelain")
	if err != nil {
		return false, err
	}
	return strings.TrimSpace(out) == "", nil
}

// CurrentBranch returns the checked-out branch name.
func (r *Repo) CurrentBranch(ctx context.Context) (string, error) {
	out, err := r.run.run(ctx, "rev-parse", "--abbrev-ref", "HEAD")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// RemoteURL returns the first URL configured for the default remote, or ""
// when the remote does not exist. A missing remote is a legitimate state,
// not an error: it just means no host release can be published.
func (r *Repo) RemoteURL(ctx context.Context) (string, error) {
	repo, err := git.PlainOpenWithOptions(r.path, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return "", errors.ErrNotRepository.Wrap(err)
	}
	rem, err := repo.Remote(r.remote)
	if err != nil {
		r.l.Debug("no remote configured", zap.String("remote", r.remote))
		return "", nil
	}
	urls := rem.Config().URLs
	if len(urls) == 0 {
		return "", nil
	}
	return urls[0], nil
}
