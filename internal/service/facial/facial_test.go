package facial

import (
	"testing"
	"time"

	"github.com/credvia/credvia_backend/internal/repo"
	entguide "github.com/credvia/credvia_backend/internal/repo/guide"
)

func testGuide(status entguide.Status, used, total int, createdAt, expires time.Time) *repo.Guide {
	return &repo.Guide{
		Status:         status,
		UsedCredits:    used,
		TotalCredits:   total,
		CreatedAt:      createdAt,
		ExpirationDate: expires,
	}
}

func TestEligible(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	later := now.Add(24 * time.Hour)
	earlier := now.Add(-24 * time.Hour)

	tests := []struct {
		name  string
		guide *repo.Guide
		want  bool
	}{
		{"active with credits", testGuide(entguide.StatusActive, 2, 10, earlier, later), true},
		{"exhausted", testGuide(entguide.StatusActive, 10, 10, earlier, later), false},
		{"completed", testGuide(entguide.StatusCompleted, 10, 10, earlier, later), false},
		{"expired status", testGuide(entguide.StatusExpired, 2, 10, earlier, later), false},
		{"past expiration date", testGuide(entguide.StatusActive, 2, 10, earlier, earlier), false},
		{"expires exactly now", testGuide(entguide.StatusActive, 2, 10, earlier, now), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Eligible(tt.guide, now); got != tt.want {
				t.Errorf("Eligible() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPickFIFO(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	day := func(d int) time.Time { return now.AddDate(0, 0, d) }

	t.Run("oldest eligible guide wins", func(t *testing.T) {
		a := testGuide(entguide.StatusActive, 0, 5, day(-10), day(1))
		b := testGuide(entguide.StatusActive, 0, 5, day(-5), day(10))

		if got := PickFIFO([]*repo.Guide{a, b}, now); got != a {
			t.Errorf("expected the older guide to be picked")
		}
	})

	t.Run("skips exhausted guides", func(t *testing.T) {
		a := testGuide(entguide.StatusActive, 5, 5, day(-10), day(1))
		b := testGuide(entguide.StatusActive, 0, 5, day(-5), day(10))

		if got := PickFIFO([]*repo.Guide{a, b}, now); got != b {
			t.Errorf("expected the exhausted guide to be skipped")
		}
	})

	t.Run("nil when nothing eligible", func(t *testing.T) {
		a := testGuide(entguide.StatusExpired, 0, 5, day(-10), day(-1))

		if got := PickFIFO([]*repo.Guide{a}, now); got != nil {
			t.Errorf("expected nil, got %+v", got)
		}
	})

	t.Run("nil on empty input", func(t *testing.T) {
		if got := PickFIFO(nil, now); got != nil {
			t.Errorf("expected nil, got %+v", got)
		}
	})
}
