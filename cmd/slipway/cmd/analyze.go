// Copyright © 2025 Slipway Authors

package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Score release readiness from the commits since the last release",
	Long: `Reads the commit log since the most recent tag, groups it into work
units, scores readiness on four components (completeness, value, coherence,
stability) and, when ready, suggests the next version.

Read-only: the repository is never mutated.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		t, err := newToolkit(ctx, true)
		if err != nil {
			logFatalln(err)
			return
		}
		result, err := t.analyzer(params.analyze.base).Analyze(ctx)
		if err != nil {
			logFatalf("analysis failed: %v", err)
			return
		}
		if err := renderAnalysis(result); err != nil {
			logFatalln(err)
		}
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
	addAnalyzeBaseFlag(analyzeCmd)
}
