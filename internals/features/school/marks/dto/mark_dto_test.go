package dto

import "testing"

func intPtr(v int) *int { return &v }

func TestValidateValueBoundaries(t *testing.T) {
	tests := []struct {
		name    string
		value   *int
		wantErr bool
	}{
		{"nil clears to Not Graded", nil, false},
		{"lower bound", intPtr(0), false},
		{"upper bound", intPtr(100), false},
		{"mid range", intPtr(77), false},
		{"below range", intPtr(-1), true},
		{"above range", intPtr(101), true},
		{"far out", intPtr(1000), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateValue(tt.value)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateValue(%v) err = %v, wantErr %v", tt.value, err, tt.wantErr)
			}
		})
	}
}
