package models_test

import (
	"testing"

	"lemmy-ingestion/internal/models"
)

func TestShortcodeRoundTrip(t *testing.T) {
	ids := []uint32{0, 1, 42, 255, 256, 65536, 123456789, 4294967295}

	for _, id := range ids {
		code := models.Shortcode(id)
		decoded, err := models.IDFromShortcode(code)
		if err != nil {
			t.Fatalf("Failed to decode shortcode %q for ID %d: %v", code, id, err)
		}
		if decoded != id {
			t.Errorf("Round trip mismatch: ID %d encoded to %q, decoded to %d", id, code, decoded)
		}
	}
}

func TestShortcodeZeroIsEmpty(t *testing.T) {
	if code := models.Shortcode(0); code != "" {
		t.Errorf("Expected empty shortcode for ID 0, got %q", code)
	}

	id, err := models.IDFromShortcode("")
	if err != nil {
		t.Fatalf("Failed to decode empty shortcode: %v", err)
	}
	if id != 0 {
		t.Errorf("Expected ID 0 for empty shortcode, got %d", id)
	}
}

func TestShortcodeKnownValues(t *testing.T) {
	cases := map[uint32]string{
		1:  "AQ",
		42: "Kg",
	}
	for id, want := range cases {
		if got := models.Shortcode(id); got != want {
			t.Errorf("Shortcode(%d) = %q, want %q", id, got, want)
		}
	}
}

func TestShortcodeURLSafe(t *testing.T) {
	// Shortcodes appear in URLs; the alphabet must never include '+', '/'
	// or '='.
	for _, id := range []uint32{63, 62<<18 + 1, 4294967295} {
		code := models.Shortcode(id)
		for _, r := range code {
			if r == '+' || r == '/' || r == '=' {
				t.Errorf("Shortcode(%d) = %q contains non-URL-safe character %q", id, code, r)
			}
		}
	}
}

func TestIDFromShortcodeRejectsTooLong(t *testing.T) {
	if _, err := models.IDFromShortcode("AAAAAAA"); err == nil {
		t.Error("Expected error for 7-character shortcode, got nil")
	}
}

func TestIDFromShortcodeRejectsInvalidBase64(t *testing.T) {
	if _, err := models.IDFromShortcode("!!"); err == nil {
		t.Error("Expected error for invalid base64 shortcode, got nil")
	}
}
