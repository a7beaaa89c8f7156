package phone

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"full E164", "+5511987654321", "+5511987654321", false},
		{"national with spaces", "11 98765-4321", "+5511987654321", false},
		{"international number", "+4915123456789", "+4915123456789", false},
		{"empty", "", "", true},
		{"garbage", "not-a-number", "", true},
		{"too short", "+55 11 9", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Normalize(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("Normalize(%q) expected error, got %q", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("Normalize(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeRegion(t *testing.T) {
	got, err := NormalizeRegion("0151 23456789", "DE")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "+4915123456789" {
		t.Errorf("NormalizeRegion = %q, want %q", got, "+4915123456789")
	}
}
