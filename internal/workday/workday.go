// Package workday gates the daily post on Japanese working days.
//
// The bot posts to a JP-timezone workspace: weekends, public holidays and
// a configurable extra-holiday list (company closures) all suppress the
// post unless the gate is disabled.
package workday

import (
	"errors"
	"fmt"
	"strings"
	"time"

	holiday_jp "github.com/holiday-jp/holiday_jp-go"

	"github.com/snona-tech/one-cloud-native-a-day/internal/dateutil"
)

// ErrNotWorkday indicates the gate rejected the given day.
var ErrNotWorkday = errors.New("not a workday")

// Gate decides whether a given day is postable.
type Gate struct {
	// Enabled turns the gate on; a disabled gate accepts every day.
	Enabled bool

	// ExtraHolidays lists company-specific closures.
	ExtraHolidays []time.Time
}

// Check returns ErrNotWorkday (wrapped with the reason) when t falls on a
// weekend, a Japanese public holiday, or an extra holiday.
func (g Gate) Check(t time.Time) error {
	if !g.Enabled {
		return nil
	}

	day := t.In(dateutil.JST)

	if dateutil.IsWeekend(day) {
		return fmt.Errorf("%w: %s is a weekend", ErrNotWorkday, dateutil.FormatDay(day))
	}

	if holiday_jp.IsHoliday(day) {
		return fmt.Errorf("%w: %s is a japanese public holiday", ErrNotWorkday, dateutil.FormatDay(day))
	}

	for _, extra := range g.ExtraHolidays {
		if dateutil.SameDay(day, extra) {
			return fmt.Errorf("%w: %s is an extra holiday", ErrNotWorkday, dateutil.FormatDay(day))
		}
	}

	return nil
}

// ParseExtraHolidays parses a comma-separated YYYY-MM-DD list.
// Empty entries are skipped, so trailing commas in env values are harmless.
func ParseExtraHolidays(csv string) ([]time.Time, error) {
	var days []time.Time
	for _, entry := range strings.Split(csv, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		day, err := dateutil.ParseDay(entry)
		if err != nil {
			return nil, fmt.Errorf("extra holidays: %w", err)
		}
		days = append(days, day)
	}
	return days, nil
}
