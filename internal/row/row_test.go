package row

import "testing"

func TestDeriveName(t *testing.T) {
	tests := []struct {
		path     string
		expected string
	}{
		{"chair_01.jpg", "chair 01"},
		{"table-02.png", "table 02"},
		{"/warehouse/aisle_3/oak__shelf-unit.webp", "oak shelf unit"},
		{"plain.jpeg", "plain"},
		{" spaced name .png", "spaced name"},
		{"no_ext", "no ext"},
		{"___.jpg", ""},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := DeriveName(tt.path); got != tt.expected {
				t.Errorf("DeriveName(%q) = %q, want %q", tt.path, got, tt.expected)
			}
		})
	}
}
