// Copyright © 2025 Slipway Authors

package cmd

import (
	"github.com/spf13/cobra"
)

type paramsT struct {
	root struct {
		repoPath string
		logLevel string
		format   string
	}
	analyze struct {
		base string
	}
	release struct {
		base        string
		dryRun      bool
		yes         bool
		skipGitHub  bool
		noChangelog bool
	}
	changelog struct {
		version string
		write   bool
	}
}

var params paramsT

func addRepoPathFlag(cmd *cobra.Command) string {
	const flag = "repo"
	cmd.PersistentFlags().StringVarP(&params.root.repoPath, flag, "C", ".",
		"Path to the repository to analyze")
	return flag
}

func addLogLevelFlag(cmd *cobra.Command) string {
	const flag = "log-level"
	cmd.PersistentFlags().StringVar(&params.root.logLevel, flag, "",
		"Log level: debug, info or none (overrides config)")
	return flag
}

func addFormatFlag(cmd *cobra.Command) string {
	const flag = "format"
	cmd.PersistentFlags().StringVar(&params.root.format, flag, "text",
		"Output format: text, yaml or json")
	return flag
}

func addAnalyzeBaseFlag(cmd *cobra.Command) string {
	const flag = "base"
	cmd.Flags().StringVar(&params.analyze.base, flag, "",
		"Analyze commits since this ref instead of the latest tag")
	return flag
}

func addReleaseBaseFlag(cmd *cobra.Command) string {
	const flag = "base"
	cmd.Flags().StringVar(&params.release.base, flag, "",
		"Release commits since this ref instead of the latest tag")
	return flag
}

func addDryRunFlag(cmd *cobra.Command) string {
	const flag = "dry-run"
	cmd.Flags().BoolVar(&params.release.dryRun, flag, false,
		"Report the would-be release without tagging, pushing or publishing")
	return flag
}

func addYesFlag(cmd *cobra.Command) string {
	const flag = "yes"
	cmd.Flags().BoolVarP(&params.release.yes, flag, "y", false,
		"Skip the confirmation prompt")
	return flag
}

func addSkipGitHubFlag(cmd *cobra.Command) string {
	const flag = "skip-github"
	cmd.Flags().BoolVar(&params.release.skipGitHub, flag, false,
		"Tag and push, but do not create a host release")
	return flag
}

func addNoChangelogFlag(cmd *cobra.Command) string {
	const flag = "no-changelog"
	cmd.Flags().BoolVar(&params.release.noChangelog, flag, false,
		"Do not update CHANGELOG.md")
	return flag
}

func addChangelogVersionFlag(cmd *cobra.Command) string {
	const flag = "version"
	cmd.Flags().StringVar(&params.changelog.version, flag, "",
		"Version heading for the entry (default: next version per the bump heuristic)")
	return flag
}

func addChangelogWriteFlag(cmd *cobra.Command) string {
	const flag = "write"
	cmd.Flags().BoolVarP(&params.changelog.write, flag, "w", false,
		"Merge the entry into CHANGELOG.md instead of printing it")
	return flag
}
