package core

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"
)

func TestParseMode(t *testing.T) {
	tests := []struct {
		in      string
		want    Mode
		wantErr bool
	}{
		{"random", ModeRandom, false},
		{"warehouse", ModeWarehouse, false},
		{"Random", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseMode(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseMode(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("ParseMode(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestModeJSON(t *testing.T) {
	data, err := json.Marshal(struct{ Mode Mode }{ModeWarehouse})
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `{"Mode":"warehouse"}` {
		t.Errorf("got %s", data)
	}

	var back struct{ Mode Mode }
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatal(err)
	}
	if back.Mode != ModeWarehouse {
		t.Errorf("round trip gave %v", back.Mode)
	}

	if err := json.Unmarshal([]byte(`{"Mode":"maze"}`), &back); err == nil {
		t.Error("expected error for unknown mode")
	}
}

func TestFeasibilityErrorMatching(t *testing.T) {
	var err error = &FeasibilityError{Pool: "start", Need: 5, Have: 3}
	wrapped := fmt.Errorf("instance 7: %w", err)

	if !errors.Is(wrapped, ErrInfeasible) {
		t.Error("errors.Is should match ErrInfeasible")
	}
	var fe *FeasibilityError
	if !errors.As(wrapped, &fe) {
		t.Fatal("errors.As should find FeasibilityError")
	}
	if fe.Need != 5 || fe.Have != 3 || fe.Pool != "start" {
		t.Errorf("unexpected fields: %+v", fe)
	}
	if got := err.Error(); got != "not enough start cells: need 5, have 3" {
		t.Errorf("Error() = %q", got)
	}
}
