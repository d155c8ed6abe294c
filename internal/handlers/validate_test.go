package handlers

import (
	"strings"
	"testing"
)

func TestValidateProductID(t *testing.T) {
	tests := []struct {
		name      string
		id        string
		wantError bool
	}{
		{"valid", "classic-entry-door", false},
		{"digits", "door-2026", false},
		{"empty", "", true},
		{"whitespace", "   ", true},
		{"too long", strings.Repeat("a", 201), true},
		{"uppercase", "Classic-Door", true},
		{"spaces", "classic door", true},
		{"double hyphen", "classic--door", true},
		{"leading hyphen", "-door", true},
		{"punctuation", "door!", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := validateProductID(tt.id)
			if tt.wantError && result == "" {
				t.Error("expected an error, got none")
			}
			if !tt.wantError && result != "" {
				t.Errorf("unexpected error: %s", result)
			}
		})
	}
}

func TestValidatePageName(t *testing.T) {
	tests := []struct {
		name      string
		page      string
		wantError bool
	}{
		{"valid", "faq", false},
		{"empty", "", true},
		{"too long", strings.Repeat("a", 51), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := validatePageName(tt.page)
			if tt.wantError && result == "" {
				t.Error("expected an error, got none")
			}
			if !tt.wantError && result != "" {
				t.Errorf("unexpected error: %s", result)
			}
		})
	}
}
