// Copyright © 2025 Slipway Authors

package github

import (
	"context"
	"os/exec"
	"strings"

	"go.uber.org/zap"
)

// CLI wraps the gh command-line tool, the preferred release-publication
// path when installed.
type CLI struct {
	dir string
	l   *zap.Logger
	run func(ctx context.Context, args ...string) (string, error)
}

// NewCLI returns a gh wrapper executing in dir.
func NewCLI(dir string, l *zap.Logger) *CLI {
	if l == nil {
		l = zap.NewNop()
	}
	c := &CLI{dir: dir, l: l}
	c.run = c.execRun
	return c
}

func (c *CLI) execRun(ctx context.Context, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "gh", args...)
	cmd.Dir = c.dir
	out, err := cmd.Output()
	return strings.TrimSpace(string(out)), err
}

// Available probes for an installed gh binary. Probe failure means
// "unavailable", never an error.
func (c *CLI) Available(ctx context.Context) bool {
	_, err := c.run(ctx, "--version")
	if err != nil {
		c.l.Debug("gh CLI unavailable", zap.Error(err))
		return false
	}
	return true
}

// CreateRelease publishes a release through gh and returns its URL.
func (c *CLI) CreateRelease(ctx context.Context, tag, title, notes string) (string, error) {
	out, err := c.run(ctx, "release", "create", tag, "--title", title, "--notes", notes)
	if err != nil {
		return "", err
	}
	// gh prints the release URL as its final output line
	lines := strings.Split(out, "\n")
	url := strings.TrimSpace(lines[len(lines)-1])
	c.l.Info("published host release via gh", zap.String("tag", tag), zap.String("url", url))
	return url, nil
}
