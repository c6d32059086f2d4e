// Copyright © 2025 Slipway Authors

package analysis

import (
	"github.com/slipway-sh/slipway/pkg/model"
)

// SuggestBump is the deterministic version-bump fallback, used only when the
// readiness scorer omits a suggestion. Entirely local, no remote call.
//
// Precedence: any breaking-change marker decides major and short-circuits
// everything else; a high-value work unit or a feature commit decides minor;
// otherwise patch.
func SuggestBump(commits []model.Commit, units []model.WorkUnit) model.VersionBump {
	for _, c := range commits {
		if c.HasBreakingMarker() {
			return model.BumpMajor
		}
	}
	for _, u := range units {
		if u.Value == model.ValueHigh {
			return model.BumpMinor
		}
	}
	for _, c := range commits {
		if c.ConventionalType() == "feat" {
			return model.BumpMinor
		}
	}
	return model.BumpPatch
}
