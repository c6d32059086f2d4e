package release

import (
	"context"
	"testing"

	"github.com/slipway-sh/slipway/pkg/errors"
	"github.com/slipway-sh/slipway/pkg/github"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	clean     bool
	remoteURL string

	tagged []string
	pushed []string
	tagErr error
}

func (f *fakeRepo) IsClean(context.Context) (bool, error) { return f.clean, nil }
func (f *fakeRepo) CreateTag(_ context.Context, name, _ string) error {
	if f.tagErr != nil {
		return f.tagErr
	}
	f.tagged = append(f.tagged, name)
	return nil
}
func (f *fakeRepo) PushTag(_ context.Context, name string) error {
	f.pushed = append(f.pushed, name)
	return nil
}
func (f *fakeRepo) RemoteURL(context.Context) (string, error) { return f.remoteURL, nil }

type fakeAPI struct {
	url   string
	err   error
	calls int
	owner string
	repo  string
	param github.ReleaseParams
}

func (f *fakeAPI) CreateRelease(_ context.Context, owner, repo string, p github.ReleaseParams) (string, error) {
	f.calls++
	f.owner, f.repo, f.param = owner, repo, p
	if f.err != nil {
		return "", f.err
	}
	return f.url, nil
}

type fakeCLI struct {
	available bool
	url       string
	calls     int
}

func (f *fakeCLI) Available(context.Context) bool { return f.available }
func (f *fakeCLI) CreateRelease(_ context.Context, _, _, _ string) (string, error) {
	f.calls++
	return f.url, nil
}

func publishOpts() Options {
	return Options{PublishRelease: true}
}

func TestRunDryRunShortCircuits(t *testing.T) {
	repo := &fakeRepo{clean: false} // even a dirty tree is fine on a dry run
	api := &fakeAPI{}
	e := NewExecutor(repo, api, nil, nil)

	result, err := e.Run(context.Background(), "1.2.0", "notes", Options{DryRun: true, PublishRelease: true})
	require.NoError(t, err)
	assert.True(t, result.DryRun)
	assert.False(t, result.TagCreated)
	assert.Empty(t, repo.tagged)
	assert.Empty(t, repo.pushed)
	assert.Zero(t, api.calls)
}

func TestRunDirtyTreeFailsBeforeTagging(t *testing.T) {
	repo := &fakeRepo{clean: false}
	api := &fakeAPI{}
	e := NewExecutor(repo, api, nil, nil)

	_, err := e.Run(context.Background(), "1.2.0", "notes", publishOpts())
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrDirtyTree))
	assert.Empty(t, repo.tagged)
	assert.Empty(t, repo.pushed)
	assert.Zero(t, api.calls)
}

func TestRunTagNamePrefixing(t *testing.T) {
	repo := &fakeRepo{clean: true}
	e := NewExecutor(repo, nil, nil, nil)

	_, err := e.Run(context.Background(), "1.2.0", "", Options{})
	require.NoError(t, err)
	_, err = e.Run(context.Background(), "v2.0.0", "", Options{})
	require.NoError(t, err)
	assert.Equal(t, []string{"v1.2.0", "v2.0.0"}, repo.tagged)
	assert.Equal(t, repo.tagged, repo.pushed)
}

func TestRunDuplicateTagFailsFast(t *testing.T) {
	repo := &fakeRepo{clean: true, tagErr: errors.ErrTagExists}
	e := NewExecutor(repo, nil, nil, nil)

	result, err := e.Run(context.Background(), "1.0.0", "", publishOpts())
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrTagExists))
	assert.False(t, result.TagCreated)
	assert.Empty(t, repo.pushed)
}

func TestRunSkipPublication(t *testing.T) {
	repo := &fakeRepo{clean: true, remoteURL: "git@github.com:org/proj.git"}
	api := &fakeAPI{url: "unused"}
	e := NewExecutor(repo, api, nil, nil)

	result, err := e.Run(context.Background(), "1.0.0", "", Options{SkipPublish: true, PublishRelease: true})
	require.NoError(t, err)
	assert.True(t, result.TagPushed)
	assert.Empty(t, result.ReleaseURL)
	assert.Zero(t, api.calls)

	// disabled by configuration
	result, err = e.Run(context.Background(), "1.0.1", "", Options{PublishRelease: false})
	require.NoError(t, err)
	assert.Empty(t, result.ReleaseURL)
	assert.Zero(t, api.calls)
}

func TestRunUnresolvableRemoteIsSuccess(t *testing.T) {
	repo := &fakeRepo{clean: true, remoteURL: "/srv/git/proj.git"}
	api := &fakeAPI{url: "unused"}
	e := NewExecutor(repo, api, nil, nil)

	result, err := e.Run(context.Background(), "1.0.0", "", publishOpts())
	require.NoError(t, err)
	assert.True(t, result.TagPushed)
	assert.Empty(t, result.ReleaseURL)
	assert.Zero(t, api.calls)
}

func TestRunPrefersCLI(t *testing.T) {
	repo := &fakeRepo{clean: true, remoteURL: "git@github.com:org/proj.git"}
	api := &fakeAPI{url: "https://api-made-this"}
	cli := &fakeCLI{available: true, url: "https://cli-made-this"}
	e := NewExecutor(repo, api, cli, nil)

	result, err := e.Run(context.Background(), "1.0.0", "notes", publishOpts())
	require.NoError(t, err)
	assert.Equal(t, "https://cli-made-this", result.ReleaseURL)
	assert.Equal(t, 1, cli.calls)
	assert.Zero(t, api.calls)
}

func TestRunFallsBackToAPI(t *testing.T) {
	repo := &fakeRepo{clean: true, remoteURL: "https://github.com/org/proj"}
	api := &fakeAPI{url: "https://api-made-this"}
	cli := &fakeCLI{available: false}
	e := NewExecutor(repo, api, cli, nil)

	result, err := e.Run(context.Background(), "1.0.0", "notes", publishOpts())
	require.NoError(t, err)
	assert.Equal(t, "https://api-made-this", result.ReleaseURL)
	assert.Equal(t, "org", api.owner)
	assert.Equal(t, "proj", api.repo)
	assert.Equal(t, "v1.0.0", api.param.TagName)
	assert.Equal(t, "notes", api.param.Body)
	assert.Zero(t, cli.calls)
}

func TestRunMissingCredentialsOnlyAtPublication(t *testing.T) {
	repo := &fakeRepo{clean: true, remoteURL: "git@github.com:org/proj.git"}
	cli := &fakeCLI{available: false}
	e := NewExecutor(repo, nil, cli, nil)

	result, err := e.Run(context.Background(), "1.0.0", "", publishOpts())
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrNoCredentials))
	// the tag work already happened; only the final step failed
	assert.True(t, result.TagCreated)
	assert.True(t, result.TagPushed)
}
