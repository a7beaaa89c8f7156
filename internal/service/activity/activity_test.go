package activity

import (
	"testing"
	"time"
)

func TestParseTypes(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{"empty", "", nil},
		{"single", "facial", []string{"facial"}},
		{"multiple with spaces", "facial, session", []string{"facial", "session"}},
		{"unknown dropped", "facial,bogus,guide_closed", []string{"facial", "guide_closed"}},
		{"all unknown", "x,y", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseTypes(tt.raw)
			if len(got) != len(tt.want) {
				t.Fatalf("ParseTypes(%q) = %v, want %v", tt.raw, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("ParseTypes(%q)[%d] = %q, want %q", tt.raw, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestFilterWants(t *testing.T) {
	empty := Filter{}
	if !empty.wants(TypeFacial) || !empty.wants(TypeGuideClosed) {
		t.Error("empty filter should accept every type")
	}

	narrow := Filter{Types: []string{TypeSession}}
	if !narrow.wants(TypeSession) {
		t.Error("filter should accept listed type")
	}
	if narrow.wants(TypeFacial) {
		t.Error("filter should reject unlisted type")
	}
}

func TestFilterBounds_EndOfDay(t *testing.T) {
	end := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	f := Filter{EndDate: &end}

	_, got := f.bounds()
	if got == nil {
		t.Fatal("expected end bound")
	}

	lastMoment := time.Date(2025, 3, 10, 23, 59, 59, int(time.Second-time.Nanosecond), time.UTC)
	if !got.Equal(lastMoment) {
		t.Errorf("end bound = %v, want %v", got, lastMoment)
	}

	nextDay := time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC)
	if !got.Before(nextDay) {
		t.Error("end bound must stay within its day")
	}
}

func TestSortDesc(t *testing.T) {
	base := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	events := []Event{
		{Description: "oldest", OccurredAt: base},
		{Description: "newest", OccurredAt: base.Add(2 * time.Hour)},
		{Description: "middle", OccurredAt: base.Add(time.Hour)},
	}

	SortDesc(events)

	want := []string{"newest", "middle", "oldest"}
	for i, w := range want {
		if events[i].Description != w {
			t.Errorf("events[%d] = %q, want %q", i, events[i].Description, w)
		}
	}
}

func TestSortDesc_StableForEqualTimes(t *testing.T) {
	ts := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	events := []Event{
		{Description: "first", OccurredAt: ts},
		{Description: "second", OccurredAt: ts},
	}

	SortDesc(events)

	if events[0].Description != "first" || events[1].Description != "second" {
		t.Error("equal timestamps must keep insertion order")
	}
}
