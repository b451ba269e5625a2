package dateutil

import (
	"errors"
	"testing"
	"time"
)

func TestToday_ConvertsToJST(t *testing.T) {
	// 2026-08-21 23:30 UTC is already 2026-08-22 in Tokyo.
	now := func() time.Time {
		return time.Date(2026, 8, 21, 23, 30, 0, 0, time.UTC)
	}

	got := Today(now)
	if FormatDay(got) != "2026-08-22" {
		t.Errorf("Today() = %s, want 2026-08-22", FormatDay(got))
	}
	if got.Hour() != 0 || got.Minute() != 0 {
		t.Errorf("Today() not truncated to midnight: %v", got)
	}
}

func TestParseDay(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{name: "valid", in: "2026-01-02", want: "2026-01-02"},
		{name: "slashes rejected", in: "2026/01/02", wantErr: true},
		{name: "empty rejected", in: "", wantErr: true},
		{name: "time suffix rejected", in: "2026-01-02T00:00:00", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDay(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidDay) {
					t.Fatalf("ParseDay(%q) error = %v, want ErrInvalidDay", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDay(%q) error = %v", tt.in, err)
			}
			if FormatDay(got) != tt.want {
				t.Errorf("ParseDay(%q) = %s, want %s", tt.in, FormatDay(got), tt.want)
			}
		})
	}
}

func TestIsWeekend(t *testing.T) {
	tests := []struct {
		name string
		day  string
		want bool
	}{
		{name: "saturday", day: "2026-08-22", want: true},
		{name: "sunday", day: "2026-08-23", want: true},
		{name: "monday", day: "2026-08-24", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			day, err := ParseDay(tt.day)
			if err != nil {
				t.Fatal(err)
			}
			if got := IsWeekend(day); got != tt.want {
				t.Errorf("IsWeekend(%s) = %v, want %v", tt.day, got, tt.want)
			}
		})
	}
}

func TestSameDay(t *testing.T) {
	// 15:30 UTC and 16:00 UTC on the same UTC day are both next-day in JST
	// only after 15:00 UTC; these two straddle nothing and must match.
	a := time.Date(2026, 8, 22, 15, 30, 0, 0, time.UTC)
	b := time.Date(2026, 8, 22, 16, 0, 0, 0, time.UTC)
	if !SameDay(a, b) {
		t.Error("SameDay() = false for same JST day")
	}

	c := time.Date(2026, 8, 22, 14, 0, 0, 0, time.UTC) // still 2026-08-22 in JST
	if SameDay(a, c) {
		t.Error("SameDay() = true across the JST midnight boundary")
	}
}
