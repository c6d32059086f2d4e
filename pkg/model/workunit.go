package model

import (
	"fmt"
	"time"
)

// WorkUnitStatus tracks the lifecycle of a unit of work.
type WorkUnitStatus string

const (
	// StatusInProgress marks a unit with visible activity but no finished outcome
	StatusInProgress WorkUnitStatus = "in_progress"

	// StatusComplete marks a unit whose functionality shipped in the analyzed range
	StatusComplete WorkUnitStatus = "complete"

	// StatusAbandoned marks a unit whose commits were superseded or reverted
	StatusAbandoned WorkUnitStatus = "abandoned"
)

// Valid reports whether the status is one of the known values.
func (s WorkUnitStatus) Valid() bool {
	switch s {
	case StatusInProgress, StatusComplete, StatusAbandoned:
		return true
	}
	return false
}

// WorkUnitValue rates the user-facing value a unit delivers.
type WorkUnitValue string

const (
	// ValueLow is housekeeping: refactors, docs, chores
	ValueLow WorkUnitValue = "low"

	// ValueMedium is an incremental improvement users notice
	ValueMedium WorkUnitValue = "medium"

	// ValueHigh is a headline capability
	ValueHigh WorkUnitValue = "high"
)

// Valid reports whether the value rating is one of the known values.
func (v WorkUnitValue) Valid() bool {
	switch v {
	case ValueLow, ValueMedium, ValueHigh:
		return true
	}
	return false
}

// WorkUnit is a named grouping of commits judged to deliver one coherent
// piece of functionality. Units are produced fresh on every analysis and
// identified by sequential local IDs; identifiers supplied by the AI
// response are discarded.
type WorkUnit struct {
	ID          int            `json:"id" yaml:"id"`
	Name        string         `json:"name" yaml:"name"`
	Description string         `json:"description,omitempty" yaml:"description,omitempty"`
	Status      WorkUnitStatus `json:"status" yaml:"status"`
	Value       WorkUnitValue  `json:"value" yaml:"value"`
	Commits     []string       `json:"commits" yaml:"commits"`
	CreatedAt   time.Time      `json:"createdAt" yaml:"createdAt"`
	CompletedAt *time.Time     `json:"completedAt,omitempty" yaml:"completedAt,omitempty"`
}

// Validate checks the structural invariants of a work unit.
// Member hashes referencing commits outside the analyzed range are
// tolerated here; the classifier records them as warnings.
func (w WorkUnit) Validate() error {
	if w.Name == "" {
		return fmt.Errorf("empty field: work unit name is empty")
	}
	if !w.Status.Valid() {
		return fmt.Errorf("invalid status: %q is not one of in_progress, complete, abandoned", w.Status)
	}
	if !w.Value.Valid() {
		return fmt.Errorf("invalid value: %q is not one of low, medium, high", w.Value)
	}
	return nil
}

// CompleteUnits filters units down to those with status complete,
// preserving order.
func CompleteUnits(units []WorkUnit) []WorkUnit {
	var out []WorkUnit
	for _, u := range units {
		if u.Status == StatusComplete {
			out = append(out, u)
		}
	}
	return out
}
