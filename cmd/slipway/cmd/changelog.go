// Copyright © 2025 Slipway Authors

package cmd

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/slipway-sh/slipway/pkg/analysis"
	"github.com/slipway-sh/slipway/pkg/changelog"
	"github.com/slipway-sh/slipway/pkg/model"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var changelogCmd = &cobra.Command{
	Use:   "changelog",
	Short: "Generate the changelog entry for the pending release",
	Long: `Synthesizes the changelog entry for the commits since the last release
without releasing anything. Without an AI backend (or when classification
fails) the deterministic grouped-by-type template is used.

Prints to stdout by default; --write merges the entry into CHANGELOG.md.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		t, err := newToolkit(ctx, false)
		if err != nil {
			logFatalln(err)
			return
		}

		tag, err := t.repo.LatestTag(ctx)
		if err != nil {
			logFatalln(err)
			return
		}
		since := ""
		currentVersion := "0.0.0"
		if tag != nil {
			since = tag.Name
			currentVersion = tag.Name
		}
		commits, err := t.repo.Log(ctx, since)
		if err != nil {
			logFatalln(err)
			return
		}

		var units []model.WorkUnit
		if t.model != nil {
			units, err = analysis.NewClassifier(t.model, t.l).Classify(ctx, commits)
			if err != nil {
				t.l.Warn("classification failed, deterministic changelog only", zap.Error(err))
				units = nil
			}
		}

		version := params.changelog.version
		if version == "" {
			version = model.BumpVersion(currentVersion, analysis.SuggestBump(commits, units))
		}

		entry, err := changelog.NewSynthesizer(t.model, t.l).Generate(ctx, units, commits, version)
		if err != nil {
			logFatalln(err)
			return
		}

		if params.changelog.write {
			path := filepath.Join(params.root.repoPath, "CHANGELOG.md")
			if err := changelog.UpdateFile(afero.NewOsFs(), path, entry); err != nil {
				logFatalln(err)
				return
			}
			fmt.Println("Updated", path)
			return
		}
		fmt.Println(entry)
	},
}

func init() {
	rootCmd.AddCommand(changelogCmd)
	addChangelogVersionFlag(changelogCmd)
	addChangelogWriteFlag(changelogCmd)
}
