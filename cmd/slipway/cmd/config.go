// Copyright © 2025 Slipway Authors

package cmd

import (
	"os"

	"github.com/spf13/viper"
)

// CLIConfig describes the CLI configuration. The core packages receive these
// values through constructors and never read configuration themselves.
type CLIConfig struct {
	Provider   string `json:"provider" yaml:"provider" mapstructure:"provider"`
	Model      string `json:"model" yaml:"model" mapstructure:"model"`
	LogLevel   string `json:"log_level" yaml:"log_level" mapstructure:"log_level"`
	Versioning string `json:"versioning" yaml:"versioning" mapstructure:"versioning"`

	Release struct {
		// Mode is "auto" (release when ready) or "confirm" (ask first)
		Mode          string `json:"mode" yaml:"mode" mapstructure:"mode"`
		Threshold     int    `json:"threshold" yaml:"threshold" mapstructure:"threshold"`
		MinWorkUnits  int    `json:"min_work_units" yaml:"min_work_units" mapstructure:"min_work_units"`
		RequireTests  bool   `json:"require_tests" yaml:"require_tests" mapstructure:"require_tests"`
		RequireReview bool   `json:"require_review" yaml:"require_review" mapstructure:"require_review"`
	} `json:"release" yaml:"release" mapstructure:"release"`

	GitHub struct {
		CreateRelease bool `json:"create_release" yaml:"create_release" mapstructure:"create_release"`
		GenerateNotes bool `json:"generate_notes" yaml:"generate_notes" mapstructure:"generate_notes"`
	} `json:"github" yaml:"github" mapstructure:"github"`
}

func newConfig() (*CLIConfig, error) {
	var config CLIConfig
	err := viper.Unmarshal(&config)
	if err != nil {
		return nil, err
	}
	return &config, nil
}

// credentials carries environment-derived secrets. They are read once here,
// at the composition root, and threaded explicitly through constructors.
type credentials struct {
	GitHubToken  string
	AnthropicKey string
	OpenAIKey    string
}

func loadCredentials() credentials {
	return credentials{
		GitHubToken:  os.Getenv("GITHUB_TOKEN"),
		AnthropicKey: os.Getenv("ANTHROPIC_API_KEY"),
		OpenAIKey:    os.Getenv("OPENAI_API_KEY"),
	}
}
