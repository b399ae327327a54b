package catalog

import (
	"errors"
	"testing"
)

func TestCheckCompatibility(t *testing.T) {
	tests := []struct {
		name      string
		version   string
		requires  string
		generator string
		wantErr   bool
		wantIncom bool
	}{
		{"satisfied", "1.0.0", ">= 0.1.0", "0.3.0", false, false},
		{"v prefix generator", "1.0.0", ">= 0.1.0", "v0.3.0", false, false},
		{"v prefix catalog", "v1.0.0", ">= 0.1.0", "0.3.0", false, false},
		{"range satisfied", "1.0.0", ">= 1.0.0, < 2.0.0", "1.4.2", false, false},
		{"too old", "1.0.0", ">= 1.0.0", "0.9.0", true, true},
		{"too new", "1.0.0", "< 2.0.0", "2.1.0", true, true},
		{"dev skips check", "1.0.0", ">= 9.0.0", "dev", false, false},
		{"empty skips check", "1.0.0", ">= 9.0.0", "", false, false},
		{"no requires", "1.0.0", "", "0.0.1", false, false},
		{"bad catalog version", "one", ">= 0.1.0", "dev", true, false},
		{"bad constraint", "1.0.0", ">= banana", "1.0.0", true, false},
		{"bad generator version", "1.0.0", ">= 0.1.0", "nightly", true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &Manifest{Name: "test", Version: tt.version, Requires: tt.requires}
			err := CheckCompatibility(m, tt.generator)
			if !tt.wantErr {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if got := errors.Is(err, ErrIncompatible); got != tt.wantIncom {
				t.Errorf("errors.Is(err, ErrIncompatible) = %v, want %v (err: %v)", got, tt.wantIncom, err)
			}
		})
	}
}
