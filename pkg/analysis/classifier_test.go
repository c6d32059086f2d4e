package analysis

import (
	"context"
	"testing"
	"time"

	"github.com/slipway-sh/slipway/pkg/ai"
	"github.com/slipway-sh/slipway/pkg/errors"
	"github.com/slipway-sh/slipway/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubModel is a canned ai.Model. err takes precedence over response.
type stubModel struct {
	response string
	err      error
	calls    int
	lastReq  ai.Request
}

func (s *stubModel) Complete(_ context.Context, req ai.Request) (string, error) {
	s.calls++
	s.lastReq = req
	if s.err != nil {
		return "", s.err
	}
	return s.response, nil
}

func someCommits() []model.Commit {
	return []model.Commit{
		{Hash: "aaaa111122223333aaaa111122223333aaaa1111", ShortHash: "aaaa111", Subject: "feat: add exporter", Timestamp: time.Now()},
		{Hash: "bbbb444455556666bbbb444455556666bbbb4444", ShortHash: "bbbb444", Subject: "fix: exporter crash", Timestamp: time.Now()},
	}
}

func TestClassifyEmptyInputSkipsRemoteCall(t *testing.T) {
	m := &stubModel{response: "unused"}
	c := NewClassifier(m, nil)
	units, err := c.Classify(context.Background(), nil)
	require.NoError(t, err)
	assert.Nil(t, units)
	assert.Zero(t, m.calls)
}

func TestClassifyAssignsSequentialIDs(t *testing.T) {
	m := &stubModel{response: `[
	  {"id": 99, "name": "exporter", "status": "complete", "value": "medium",
	   "commits": ["aaaa111", "bbbb444"], "created_at": "2025-06-01"},
	  {"id": 1, "name": "cleanup", "status": "in_progress", "value": "low",
	   "commits": ["bbbb444455556666bbbb444455556666bbbb4444"], "created_at": "2025-06-02"}
	]`}
	c := NewClassifier(m, nil)
	units, err := c.Classify(context.Background(), someCommits())
	require.NoError(t, err)
	require.Len(t, units, 2)
	// response-supplied IDs are discarded
	assert.Equal(t, 1, units[0].ID)
	assert.Equal(t, 2, units[1].ID)
	assert.Equal(t, 1, m.calls)
}

func TestClassifyToleratesOrphanHashes(t *testing.T) {
	m := &stubModel{response: `[
	  {"name": "mystery", "status": "complete", "value": "low",
	   "commits": ["ffffffff"], "created_at": "2025-06-01"}
	]`}
	c := NewClassifier(m, nil)
	units, err := c.Classify(context.Background(), someCommits())
	require.NoError(t, err)
	require.Len(t, units, 1)
	assert.Equal(t, []string{"ffffffff"}, units[0].Commits)
}

func TestClassifySchemaErrorSurfaces(t *testing.T) {
	m := &stubModel{response: `[{"name": "x", "status": "finished", "value": "low", "commits": []}]`}
	c := NewClassifier(m, nil)
	_, err := c.Classify(context.Background(), someCommits())
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrSchema))
}

func TestReferencesCommit(t *testing.T) {
	commits := someCommits()
	assert.True(t, referencesCommit("aaaa111", commits))
	assert.True(t, referencesCommit("AAAA111122223333aaaa111122223333aaaa1111", commits))
	assert.False(t, referencesCommit("cccc999", commits))
	assert.False(t, referencesCommit("", commits))
}
