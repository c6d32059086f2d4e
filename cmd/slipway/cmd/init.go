// Copyright © 2025 Slipway Authors

package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

const starterConfig = `# Slipway configuration
provider: anthropic
# model: claude-sonnet-4-20250514
log_level: info
versioning: semantic

release:
  # confirm prompts before mutating; auto releases whenever ready
  mode: confirm
  threshold: 70
  min_work_units: 1

github:
  create_release: true
  generate_notes: true
`

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a starter .slipway.yaml and CHANGELOG.md",
	Long: `Creates a commented .slipway.yaml in the repository root, and a
CHANGELOG.md header when none exists. Existing files are never overwritten.`,
	Run: func(cmd *cobra.Command, args []string) {
		fs := afero.NewOsFs()

		cfgPath := filepath.Join(params.root.repoPath, ".slipway.yaml")
		if ok, _ := afero.Exists(fs, cfgPath); ok {
			logFatalf("refusing to overwrite %s", cfgPath)
			return
		}
		if err := afero.WriteFile(fs, cfgPath, []byte(starterConfig), 0644); err != nil {
			logFatalln(err)
			return
		}
		fmt.Println("Wrote", cfgPath)

		clPath := filepath.Join(params.root.repoPath, "CHANGELOG.md")
		if ok, _ := afero.Exists(fs, clPath); !ok {
			if err := afero.WriteFile(fs, clPath, []byte("# Changelog\n"), 0644); err != nil {
				logFatalln(err)
				return
			}
			fmt.Println("Wrote", clPath)
		}
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
