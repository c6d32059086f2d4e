package model

import (
	"testing"
)

func TestValidateWorkUnit(t *testing.T) {
	tests := []struct {
		name    string
		unit    WorkUnit
		wantErr bool
	}{
		{
			name: "valid",
			unit: WorkUnit{Name: "search rework", Status: StatusComplete, Value: ValueHigh},
		},
		{
			name:    "empty name",
			unit:    WorkUnit{Status: StatusComplete, Value: ValueLow},
			wantErr: true,
		},
		{
			name:    "bad status",
			unit:    WorkUnit{Name: "x", Status: "done", Value: ValueLow},
			wantErr: true,
		},
		{
			name:    "bad value",
			unit:    WorkUnit{Name: "x", Status: StatusInProgress, Value: "huge"},
			wantErr: true,
		},
	}
	for _, tts := range tests {
		tt := tts
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.unit.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestCompleteUnits(t *testing.T) {
	units := []WorkUnit{
		{ID: 1, Name: "a", Status: StatusComplete, Value: ValueLow},
		{ID: 2, Name: "b", Status: StatusInProgress, Value: ValueHigh},
		{ID: 3, Name: "c", Status: StatusComplete, Value: ValueMedium},
		{ID: 4, Name: "d", Status: StatusAbandoned, Value: ValueLow},
	}
	got := CompleteUnits(units)
	if len(got) != 2 || got[0].ID != 1 || got[1].ID != 3 {
		t.Errorf("CompleteUnits() = %v, want units 1 and 3 in order", got)
	}
	if CompleteUnits(nil) != nil {
		t.Error("CompleteUnits(nil) should be nil")
	}
}

func TestValidateScore(t *testing.T) {
	tests := []struct {
		name    string
		score   ReadinessScore
		wantErr bool
	}{
		{
			name:  "valid",
			score: ReadinessScore{Completeness: 40, Value: 30, Coherence: 20, Stability: 10, Total: 100, Ready: true},
		},
		{
			name:  "valid with bump",
			score: ReadinessScore{Completeness: 10, Value: 5, Coherence: 5, Stability: 0, Total: 20, SuggestedBump: BumpMinor},
		},
		{
			name:    "completeness over bound",
			score:   ReadinessScore{Completeness: 41, Total: 41},
			wantErr: true,
		},
		{
			name:    "negative stability",
			score:   ReadinessScore{Stability: -1},
			wantErr: true,
		},
		{
			name:    "total over bound",
			score:   ReadinessScore{Total: 101},
			wantErr: true,
		},
		{
			name:    "bad bump",
			score:   ReadinessScore{SuggestedBump: "huge"},
			wantErr: true,
		},
	}
	for _, tts := range tests {
		tt := tts
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.score.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
