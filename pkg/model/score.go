package model

import "fmt"

// VersionBump is the semantic-versioning increment tier for the next release.
type VersionBump string

const (
	// BumpMajor increments the major version
	BumpMajor VersionBump = "major"

	// BumpMinor increments the minor version
	BumpMinor VersionBump = "minor"

	// BumpPatch increments the patch version
	BumpPatch VersionBump = "patch"
)

// Valid reports whether the bump tier is one of the known values.
func (b VersionBump) Valid() bool {
	switch b {
	case BumpMajor, BumpMinor, BumpPatch:
		return true
	}
	return false
}

// rank orders bump tiers: major > minor > patch. Used for tie-breaking when
// multiple signals disagree (a breaking change always wins).
func (b VersionBump) rank() int {
	switch b {
	case BumpMajor:
		return 3
	case BumpMinor:
		return 2
	case BumpPatch:
		return 1
	}
	return 0
}

// MaxBump returns the higher-precedence of two bump tiers.
func MaxBump(a, b VersionBump) VersionBump {
	if a.rank() >= b.rank() {
		return a
	}
	return b
}

// ReadinessScore is a 0-100 composite judgment of whether accumulated
// changes justify a release. Invariant: Total equals the sum of the four
// components. The components are bounded: completeness 0-40, value 0-30,
// coherence 0-20, stability 0-10.
type ReadinessScore struct {
	Completeness  int         `json:"completeness" yaml:"completeness"`
	Value         int         `json:"value" yaml:"value"`
	Coherence     int         `json:"coherence" yaml:"coherence"`
	Stability     int         `json:"stability" yaml:"stability"`
	Total         int         `json:"total" yaml:"total"`
	Ready         bool        `json:"ready" yaml:"ready"`
	SuggestedBump VersionBump `json:"suggestedBump,omitempty" yaml:"suggestedBump,omitempty"`
	Reasoning     string      `json:"reasoning,omitempty" yaml:"reasoning,omitempty"`
}

// Validate performs schema-level range checks. The sum invariant is the
// scorer's responsibility and is deliberately not recomputed here.
func (s ReadinessScore) Validate() error {
	if s.Completeness < 0 || s.Completeness > 40 {
		return fmt.Errorf("completeness %d out of range [0,40]", s.Completeness)
	}
	if s.Value < 0 || s.Value > 30 {
		return fmt.Errorf("value %d out of range [0,30]", s.Value)
	}
	if s.Coherence < 0 || s.Coherence > 20 {
		return fmt.Errorf("coherence %d out of range [0,20]", s.Coherence)
	}
	if s.Stability < 0 || s.Stability > 10 {
		return fmt.Errorf("stability %d out of range [0,10]", s.Stability)
	}
	if s.Total < 0 || s.Total > 100 {
		return fmt.Errorf("total %d out of range [0,100]", s.Total)
	}
	if s.SuggestedBump != "" && !s.SuggestedBump.Valid() {
		return fmt.Errorf("invalid suggested bump %q", s.SuggestedBump)
	}
	return nil
}

// CIStatus is the tri-state CI signal derived from the most recent workflow
// run of the tracked branch.
type CIStatus string

const (
	// CISuccess means the latest run completed successfully
	CISuccess CIStatus = "success"

	// CIFailure means the latest run completed with a failure
	CIFailure CIStatus = "failure"

	// CIPending means a run is queued or in progress
	CIPending CIStatus = "pending"

	// CIUnknown means no runs exist or the query failed
	CIUnknown CIStatus = "unknown"
)

// Passing reports whether the signal counts as green for scoring purposes.
func (s CIStatus) Passing() bool {
	return s == CISuccess
}

// AnalysisResult aggregates the outcome of one full analysis pass.
type AnalysisResult struct {
	WorkUnits        []WorkUnit     `json:"workUnits" yaml:"workUnits"`
	Score            ReadinessScore `json:"score" yaml:"score"`
	CurrentVersion   string         `json:"currentVersion" yaml:"currentVersion"`
	SuggestedVersion string         `json:"suggestedVersion,omitempty" yaml:"suggestedVersion,omitempty"`
	CI               CIStatus       `json:"ci" yaml:"ci"`
	Commits          []Commit       `json:"commits,omitempty" yaml:"commits,omitempty"`
	LastRelease      *Tag           `json:"lastRelease,omitempty" yaml:"lastRelease,omitempty"`
}

// ReleaseResult reports what a release execution actually did.
type ReleaseResult struct {
	Version    string `json:"version" yaml:"version"`
	Changelog  string `json:"changelog,omitempty" yaml:"changelog,omitempty"`
	TagCreated bool   `json:"tagCreated" yaml:"tagCreated"`
	TagPushed  bool   `json:"tagPushed" yaml:"tagPushed"`
	ReleaseURL string `json:"releaseUrl,omitempty" yaml:"releaseUrl,omitempty"`
	DryRun     bool   `json:"dryRun,omitempty" yaml:"dryRun,omitempty"`
}
