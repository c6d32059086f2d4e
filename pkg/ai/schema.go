// Copyright © 2025 Slipway Authors

package ai

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/slipway-sh/slipway/pkg/errors"
	"github.com/slipway-sh/slipway/pkg/model"
)

// Wire shapes for the two structured response contracts. Schema violations
// surface as ErrSchema; retrying will not fix a malformed response, so these
// errors are never classified retryable.

type workUnitWire struct {
	ID          json.RawMessage `json:"id"` // discarded: local identity is assigned sequentially
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Status      string          `json:"status"`
	Value       string          `json:"value"`
	Commits     []string        `json:"commits"`
	CreatedAt   string          `json:"created_at"`
	CompletedAt string          `json:"completed_at"`
}

type scoreWire struct {
	Completeness  *int   `json:"completeness"`
	Value         *int   `json:"value"`
	Coherence     *int   `json:"coherence"`
	Stability     *int   `json:"stability"`
	Total         *int   `json:"total"`
	Ready         *bool  `json:"ready"`
	SuggestedBump string `json:"suggested_bump"`
	Reasoning     string `json:"reasoning"`
}

// DecodeWorkUnits parses a work-unit array response. Unparsable date fields
// degrade gracefully: creation defaults to now, completion to absent.
// Anything else off-schema rejects the whole response.
func DecodeWorkUnits(raw string, now time.Time) ([]model.WorkUnit, error) {
	payload, err := extractJSON(raw, '[', ']') // tolerate fenced or prose-wrapped output
	if err != nil {
		return nil, errors.ErrSchema.Wrap(err)
	}
	var wire []workUnitWire
	if err := json.Unmarshal([]byte(payload), &wire); err != nil {
		return nil, errors.ErrSchema.Wrap(fmt.Errorf("work unit array: %w", err))
	}
	units := make([]model.WorkUnit, 0, len(wire))
	for i, w := range wire {
		unit := model.WorkUnit{
			Name:        w.Name,
			Description: w.Description,
			Status:      model.WorkUnitStatus(w.Status),
			Value:       model.WorkUnitValue(w.Value),
			Commits:     w.Commits,
			CreatedAt:   coerceTime(w.CreatedAt, now),
		}
		if t, ok := parseLooseTime(w.CompletedAt); ok {
			unit.CompletedAt = &t
		}
		if err := unit.Validate(); err != nil {
			return nil, errors.ErrSchema.Wrap(fmt.Errorf("work unit %d: %w", i, err))
		}
		units = append(units, unit)
	}
	return units, nil
}

// DecodeScore parses a readiness-score response, enforcing the bounded-field
// schema. The component breakdown and total are trusted as returned; only
// range checks apply here.
func DecodeScore(raw string) (model.ReadinessScore, error) {
	var score model.ReadinessScore
	payload, err := extractJSON(raw, '{', '}')
	if err != nil {
		return score, errors.ErrSchema.Wrap(err)
	}
	var wire scoreWire
	if err := json.Unmarshal([]byte(payload), &wire); err != nil {
		return score, errors.ErrSchema.Wrap(fmt.Errorf("score object: %w", err))
	}
	for name, field := range map[string]*int{
		"completeness": wire.Completeness,
		"value":        wire.Value,
		"coherence":    wire.Coherence,
		"stability":    wire.Stability,
		"total":        wire.Total,
	} {
		if field == nil {
			return score, errors.ErrSchema.Wrap(fmt.Errorf("score object: missing field %q", name))
		}
	}
	if wire.Ready == nil {
		return score, errors.ErrSchema.Wrap(fmt.Errorf("score object: missing field %q", "ready"))
	}
	score = model.ReadinessScore{
		Completeness:  *wire.Completeness,
		Value:         *wire.Value,
		Coherence:     *wire.Coherence,
		Stability:     *wire.Stability,
		Total:         *wire.Total,
		Ready:         *wire.Ready,
		SuggestedBump: model.VersionBump(wire.SuggestedBump),
		Reasoning:     wire.Reasoning,
	}
	if err := score.Validate(); err != nil {
		return model.ReadinessScore{}, errors.ErrSchema.Wrap(err)
	}
	return score, nil
}

// extractJSON pulls the first top-level JSON value delimited by the given
// brackets out of a response that may carry prose or markdown fences.
func extractJSON(raw string, opening, closing byte) (string, error) {
	start := strings.IndexByte(raw, opening)
	end := strings.LastIndexByte(raw, closing)
	if start < 0 || end <= start {
		return "", fmt.Errorf("no %c...%c payload in response", opening, closing)
	}
	return raw[start : end+1], nil
}

// coerceTime parses a loosely formatted timestamp, defaulting to fallback.
func coerceTime(s string, fallback time.Time) time.Time {
	if t, ok := parseLooseTime(s); ok {
		return t
	}
	return fallback
}

var looseTimeFormats = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func parseLooseTime(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range looseTimeFormats {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
