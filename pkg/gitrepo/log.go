// Copyright © 2025 Slipway Authors

package gitrepo

import (
	"context"
	"strings"
	"time"

	"github.com/slipway-sh/slipway/pkg/model"
	"go.uber.org/zap"
)

// Commit records are delimited out-of-band: \x1e starts a record, \x1f
// separates fields. Natural commit text never contains either, so subjects
// holding pipes, tabs or colons and bodies holding blank lines all parse
// intact. The trailing segment after the last field separator carries the
// --name-only file list.
const (
	recordSep = "\x1e"
	fieldSep  = "\x1f"

	logFormat = "%x1e%H%x1f%h%x1f%an%x1f%ae%x1f%aI%x1f%s%x1f%b%x1f"
)

// Log returns the commits reachable from HEAD but not from since, newest
// first. An empty since yields the whole history. An empty range is an
// empty slice, not an error.
func (r *Repo) Log(ctx context.Context, since string) ([]model.Commit, error) {
	rev := "HEAD"
	if since != "" {
		rev = since + "..HEAD"
	}
	out, err := r.run.run(ctx, "log", "--pretty=format:"+logFormat, "--name-only", rev)
	if err != nil {
		return nil, err
	}
	commits, err := parseLog(out)
	if err != nil {
		return nil, err
	}
	r.l.Debug("extracted commit log", zap.String("range", rev), zap.Int("commits", len(commits)))
	return commits, nil
}

// parseLog scans git log output commit-by-commit on the record separator.
func parseLog(out string) ([]model.Commit, error) {
	var commits []model.Commit
	for _, record := range strings.Split(out, recordSep) {
		if strings.TrimSpace(record) == "" {
			continue
		}
		fields := strings.SplitN(record, fieldSep, 8)
		if len(fields) < 8 {
			return nil, errMalformedRecord(record)
		}
		ts, err := time.Parse(time.RFC3339, strings.TrimSpace(fields[4]))
		if err != nil {
			return nil, errMalformedRecord(record)
		}
		commits = append(commits, model.Commit{
			Hash:        strings.TrimSpace(fields[0]),
			ShortHash:   strings.TrimSpace(fields[1]),
			AuthorName:  strings.TrimSpace(fields[2]),
			AuthorEmail: strings.TrimSpace(fields[3]),
			Timestamp:   ts,
			Subject:     strings.TrimSpace(fields[5]),
			Body:        strings.TrimSpace(fields[6]),
			Files:       parseFileList(fields[7]),
		})
	}
	return commits, nil
}

// parseFileList extracts the changed paths trailing a commit record.
// Merge commits and empty commits have no trailing list.
func parseFileList(segment string) []string {
	var files []string
	for _, line := range strings.Split(segment, "\n") {
		if path := strings.TrimSpace(line); path != "" {
			files = append(files, path)
		}
	}
	return files
}

func errMalformedRecord(record string) error {
	snippet := record
	if len(snippet) > 80 {
		snippet = snippet[:80] + "..."
	}
	return &malformedRecordError{snippet: snippet}
}

type malformedRecordError struct {
	snippet string
}

func (e *malformedRecordError) Error() string {
	return "malformed commit record in log output: " + e.snippet
}
