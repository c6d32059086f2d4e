// Copyright © 2025 Slipway Authors

package gitrepo

import (
	"context"
	"strings"
	"time"

	"github.com/slipway-sh/slipway/pkg/errors"
	"github.com/slipway-sh/slipway/pkg/model"
	"go.uber.org/zap"
)

// LatestTag returns the most recent tag reachable from HEAD, or nil when no
// tag exists. Absence of a tag is a legitimate state (first release).
func (r *Repo) LatestTag(ctx context.Context) (*model.Tag, error) {
	name, err := r.run.run(ctx, "describe", "--tags", "--abbrev=0")
	if err != nil {
		// describe exits non-zero when no tag is reachable
		r.l.Debug("no reachable tag", zap.Error(err))
		return nil, nil
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, nil
	}
	out, err := r.run.run(ctx, "log", "-1", "--pretty=format:%H"+fieldSep+"%aI", name)
	if err != nil {
		return nil, err
	}
	tag := &model.Tag{Name: name}
	parts := strings.SplitN(strings.TrimSpace(out), fieldSep, 2)
	if len(parts) == 2 {
		tag.Hash = parts[0]
		if ts, err := time.Parse(time.RFC3339, strings.TrimSpace(parts[1])); err == nil {
			tag.Timestamp = ts
		}
	}
	return tag, nil
}

// CreateTag creates an annotated tag. Creating a tag that already exists
// fails with ErrTagExists; re-running a release is expected to fail fast
// here rather than silently succeed.
func (r *Repo) CreateTag(ctx context.Context, name, message string) error {
	if _, err := r.run.run(ctx, "tag", "-a", name, "-m", message); err != nil {
		if strings.Contains(err.Error(), "already exists") {
			return errors.ErrTagExists.Wrap(err)
		}
		return err
	}
	r.l.Info("created annotated tag", zap.String("tag", name))
	return nil
}

// PushTag pushes exactly one tag to the default remote.
func (r *Repo) PushTag(ctx context.Context, name string) error {
	if _, err := r.run.run(ctx, "push", r.remote, name); err != nil {
		return err
	}
	r.l.Info("pushed tag", zap.String("tag", name), zap.String("remote", r.remote))
	return nil
}
