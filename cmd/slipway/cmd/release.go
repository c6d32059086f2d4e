// Copyright © 2025 Slipway Authors

package cmd

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/slipway-sh/slipway/pkg/analysis"
	"github.com/slipway-sh/slipway/pkg/changelog"
	"github.com/slipway-sh/slipway/pkg/model"
	"github.com/slipway-sh/slipway/pkg/release"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var releaseCmd = &cobra.Command{
	Use:   "release",
	Short: "Analyze, and if ready, tag, push and publish the next release",
	Long: `Runs the full pipeline: analysis, readiness gate, changelog synthesis,
then tag creation, push and host release publication.

The release only proceeds when the analysis verdict is ready and enough
complete work units exist. In confirm mode (the default) a prompt precedes
any mutation; --yes or release.mode=auto skips it. --dry-run reports the
would-be release without touching the repository.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		t, err := newToolkit(ctx, true)
		if err != nil {
			logFatalln(err)
			return
		}

		result, err := t.analyzer(params.release.base).Analyze(ctx)
		if err != nil {
			logFatalf("analysis failed: %v", err)
			return
		}
		if params.root.format == "text" {
			renderAnalysisText(result)
			fmt.Println()
		}

		if !result.Score.Ready {
			logFatalf("not ready to release (score %d, threshold %d)",
				result.Score.Total, config.Release.Threshold)
			return
		}
		complete := model.CompleteUnits(result.WorkUnits)
		if len(complete) < config.Release.MinWorkUnits {
			logFatalf("not enough complete work units: %d (minimum %d)",
				len(complete), config.Release.MinWorkUnits)
			return
		}
		if config.Release.RequireTests && !analysis.TouchesTests(result.Commits) {
			logFatalf("release.require_tests is set and no test files changed since %s",
				result.CurrentVersion)
			return
		}
		if config.Release.RequireReview && !analysis.HasReviewTrail(result.Commits) {
			logFatalf("release.require_review is set and no commit since %s references a pull request",
				result.CurrentVersion)
			return
		}

		version := result.SuggestedVersion
		if !params.release.dryRun && !params.release.yes && config.Release.Mode != "auto" {
			if !confirm(fmt.Sprintf("Release %s → %s?", result.CurrentVersion, version)) {
				fmt.Println("Release aborted")
				return
			}
		}

		// generate_notes=false pins the deterministic template
		notesModel := t.model
		if !config.GitHub.GenerateNotes {
			notesModel = nil
		}
		entry, err := changelog.NewSynthesizer(notesModel, t.l).
			Generate(ctx, result.WorkUnits, result.Commits, version)
		if err != nil {
			logFatalf("changelog synthesis failed: %v", err)
			return
		}

		executor := release.NewExecutor(t.repo, t.gh, t.ghCLI, t.l)
		res, err := executor.Run(ctx, version, entry, release.Options{
			DryRun:         params.release.dryRun,
			SkipPublish:    params.release.skipGitHub,
			PublishRelease: config.GitHub.CreateRelease,
		})
		if err != nil {
			logFatalf("release failed: %v", err)
			return
		}

		// The changelog file is written after the release: writing it first
		// would dirty the tree and fail the cleanliness check.
		if !res.DryRun && !params.release.noChangelog {
			path := filepath.Join(params.root.repoPath, "CHANGELOG.md")
			if err := changelog.UpdateFile(afero.NewOsFs(), path, entry); err != nil {
				t.l.Warn("changelog update failed", zap.String("path", path), zap.Error(err))
			} else {
				fmt.Println("Updated", path)
			}
		}

		if err := renderRelease(res); err != nil {
			logFatalln(err)
		}
	},
}

func init() {
	rootCmd.AddCommand(releaseCmd)
	addReleaseBaseFlag(releaseCmd)
	addDryRunFlag(releaseCmd)
	addYesFlag(releaseCmd)
	addSkipGitHubFlag(releaseCmd)
	addNoChangelogFlag(releaseCmd)
}
