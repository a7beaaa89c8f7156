package session

import "testing"

func TestCreditCost(t *testing.T) {
	tests := []struct {
		minutes int
		want    int
	}{
		{30, 1},
		{50, 2},
		{0, 0},
		{45, 0},
		{60, 0},
		{-30, 0},
	}

	for _, tt := range tests {
		if got := CreditCost(tt.minutes); got != tt.want {
			t.Errorf("CreditCost(%d) = %d, want %d", tt.minutes, got, tt.want)
		}
	}
}
