// Copyright © 2025 Slipway Authors

package cmd

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	units "github.com/docker/go-units"
	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/slipway-sh/slipway/pkg/model"
	yaml "gopkg.in/yaml.v2"
)

var (
	readyBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("10")).
			Padding(0, 2)
	notReadyBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("11")).
			Padding(0, 2)
)

// marshalResult renders v in the requested structured format.
func marshalResult(v interface{}, format string) ([]byte, error) {
	switch format {
	case "yaml":
		return yaml.Marshal(v)
	case "json":
		return json.MarshalIndent(v, "", "  ")
	}
	return nil, fmt.Errorf("unknown output format %q (expected text, yaml or json)", format)
}

func renderAnalysis(result model.AnalysisResult) error {
	if params.root.format != "text" {
		out, err := marshalResult(result, params.root.format)
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	}
	renderAnalysisText(result)
	return nil
}

func renderAnalysisText(result model.AnalysisResult) {
	if result.LastRelease != nil {
		fmt.Printf("Last release: %s (%s ago)\n",
			result.LastRelease.Name,
			units.HumanDuration(time.Since(result.LastRelease.Timestamp)))
	} else {
		fmt.Println("Last release: none")
	}
	fmt.Printf("Commits analyzed: %d\n", len(result.Commits))
	fmt.Printf("CI: %s\n\n", colorCI(result.CI))

	if len(result.WorkUnits) > 0 {
		table := uitable.New()
		table.MaxColWidth = 60
		table.AddRow("ID", "STATUS", "VALUE", "COMMITS", "NAME")
		for _, u := range result.WorkUnits {
			table.AddRow(u.ID, colorStatus(u.Status), string(u.Value), len(u.Commits), u.Name)
		}
		fmt.Println(table)
		fmt.Println()
	}

	s := result.Score
	fmt.Printf("Completeness  %3d / 40\n", s.Completeness)
	fmt.Printf("Value         %3d / 30\n", s.Value)
	fmt.Printf("Coherence     %3d / 20\n", s.Coherence)
	fmt.Printf("Stability     %3d / 10\n", s.Stability)
	fmt.Printf("Total         %3d / 100\n", s.Total)
	if s.Reasoning != "" {
		fmt.Printf("\n%s\n", s.Reasoning)
	}
	fmt.Println()
	fmt.Println(verdictBox(result))
}

func verdictBox(result model.AnalysisResult) string {
	if result.Score.Ready {
		msg := fmt.Sprintf("READY  %s → %s", result.CurrentVersion, result.SuggestedVersion)
		return readyBox.Render(msg)
	}
	return notReadyBox.Render("NOT READY")
}

func colorStatus(s model.WorkUnitStatus) string {
	switch s {
	case model.StatusComplete:
		return color.GreenString(string(s))
	case model.StatusInProgress:
		return color.YellowString(string(s))
	case model.StatusAbandoned:
		return color.RedString(string(s))
	}
	return string(s)
}

func colorCI(s model.CIStatus) string {
	switch s {
	case model.CISuccess:
		return color.GreenString(string(s))
	case model.CIFailure:
		return color.RedString(string(s))
	case model.CIPending:
		return color.YellowString(string(s))
	}
	return string(s)
}

func renderRelease(result model.ReleaseResult) error {
	if params.root.format != "text" {
		out, err := marshalResult(result, params.root.format)
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	}
	if result.DryRun {
		fmt.Printf("Dry run: would release %s\n", result.Version)
		return nil
	}
	fmt.Printf("Released %s\n", result.Version)
	if result.ReleaseURL != "" {
		fmt.Printf("Release: %s\n", result.ReleaseURL)
	}
	return nil
}

// confirm prompts on stdout and reads one line from stdin. Anything but an
// explicit yes declines.
func confirm(prompt string) bool {
	fmt.Printf("%s [y/N]: ", prompt)
	scanner := bufio.NewScanner(os.Stdin)
	if !scanner.Scan() {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(scanner.Text())) {
	case "y", "yes":
		return true
	}
	return false
}
