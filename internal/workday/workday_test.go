package workday

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/snona-tech/one-cloud-native-a-day/internal/dateutil"
)

func day(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := dateutil.ParseDay(s)
	if err != nil {
		t.Fatal(err)
	}
	return d
}

func TestGate_Check(t *testing.T) {
	extra := day(t, "2026-08-26")

	tests := []struct {
		name       string
		gate       Gate
		day        string
		wantErr    bool
		wantReason string
	}{
		{
			name: "disabled gate accepts weekends",
			gate: Gate{Enabled: false},
			day:  "2026-08-23", // Sunday
		},
		{
			name:       "saturday rejected",
			gate:       Gate{Enabled: true},
			day:        "2026-08-22",
			wantErr:    true,
			wantReason: "weekend",
		},
		{
			name:       "sunday rejected",
			gate:       Gate{Enabled: true},
			day:        "2026-08-23",
			wantErr:    true,
			wantReason: "weekend",
		},
		{
			name:       "new year's day rejected",
			gate:       Gate{Enabled: true},
			day:        "2026-01-01", // Thursday, but 元日
			wantErr:    true,
			wantReason: "public holiday",
		},
		{
			name:       "extra holiday rejected",
			gate:       Gate{Enabled: true, ExtraHolidays: []time.Time{extra}},
			day:        "2026-08-26", // Wednesday
			wantErr:    true,
			wantReason: "extra holiday",
		},
		{
			name: "ordinary weekday accepted",
			gate: Gate{Enabled: true, ExtraHolidays: []time.Time{extra}},
			day:  "2026-08-25", // Tuesday
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.gate.Check(day(t, tt.day))
			if !tt.wantErr {
				if err != nil {
					t.Fatalf("Check(%s) error = %v, want nil", tt.day, err)
				}
				return
			}
			if !errors.Is(err, ErrNotWorkday) {
				t.Fatalf("Check(%s) error = %v, want ErrNotWorkday", tt.day, err)
			}
			if !strings.Contains(err.Error(), tt.wantReason) {
				t.Errorf("Check(%s) reason = %q, want substring %q", tt.day, err, tt.wantReason)
			}
		})
	}
}

func TestParseExtraHolidays(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		wantLen int
		wantErr bool
	}{
		{name: "two days", in: "2026-12-29,2026-12-30", wantLen: 2},
		{name: "trailing comma ignored", in: "2026-12-29,", wantLen: 1},
		{name: "empty string", in: "", wantLen: 0},
		{name: "spaces tolerated", in: " 2026-12-29 , 2026-12-30 ", wantLen: 2},
		{name: "bad date rejected", in: "2026/12/29", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseExtraHolidays(tt.in)
			if tt.wantErr {
				if !errors.Is(err, dateutil.ErrInvalidDay) {
					t.Fatalf("ParseExtraHolidays(%q) error = %v, want ErrInvalidDay", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseExtraHolidays(%q) error = %v", tt.in, err)
			}
			if len(got) != tt.wantLen {
				t.Errorf("len = %d, want %d", len(got), tt.wantLen)
			}
		})
	}
}
