// Copyright © 2025 Slipway Authors

package cmd

import (
	"encoding/json"
	"testing"

	"github.com/slipway-sh/slipway/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	yaml "gopkg.in/yaml.v2"
)

func analysisFixture() model.AnalysisResult {
	return model.AnalysisResult{
		WorkUnits: []model.WorkUnit{
			{ID: 1, Name: "retry policy", Status: model.StatusComplete, Value: model.ValueMedium},
		},
		Score: model.ReadinessScore{
			Completeness: 35, Value: 22, Coherence: 16, Stability: 10,
			Total: 83, Ready: true, SuggestedBump: model.BumpMinor,
		},
		CurrentVersion:   "v1.2.0",
		SuggestedVersion: "v1.3.0",
		CI:               model.CISuccess,
	}
}

func TestMarshalResultJSON(t *testing.T) {
	out, err := marshalResult(analysisFixture(), "json")
	require.NoError(t, err)

	var decoded model.AnalysisResult
	require.NoError(t, json.Unmarshal(out, &decoded))
	assert.Equal(t, "v1.3.0", decoded.SuggestedVersion)
	assert.True(t, decoded.Score.Ready)
	require.Len(t, decoded.WorkUnits, 1)
	assert.Equal(t, model.StatusComplete, decoded.WorkUnits[0].Status)
}

func TestMarshalResultYAML(t *testing.T) {
	out, err := marshalResult(analysisFixture(), "yaml")
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, yaml.Unmarshal(out, &decoded))
	assert.Equal(t, "v1.2.0", decoded["currentVersion"])
	assert.Contains(t, string(out), "suggestedVersion: v1.3.0")
}

func TestMarshalResultUnknownFormat(t *testing.T) {
	_, err := marshalResult(analysisFixture(), "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown output format")
}
