package domain

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestReservationWindowAt(t *testing.T) {
	now := time.Date(2026, 2, 19, 22, 30, 0, 0, time.UTC)
	w := ReservationWindowAt(now)

	if got := FormatForInput(w.Min); got != "2026-02-20" {
		t.Errorf("min: want 2026-02-20, got %s", got)
	}
	if got := FormatForInput(w.Max); got != "2026-03-12" {
		t.Errorf("max: want 2026-03-12, got %s", got)
	}
	if got := FormatForInput(w.Default); got != "2026-02-26" {
		t.Errorf("default: want 2026-02-26, got %s", got)
	}
}

func TestReservationWindow_Contains(t *testing.T) {
	w := ReservationWindowAt(time.Date(2026, 2, 19, 10, 0, 0, 0, time.UTC))

	cases := []struct {
		day  string
		want bool
	}{
		{"2026-02-19", false}, // today
		{"2026-02-20", true},  // tomorrow
		{"2026-03-12", true},  // +21
		{"2026-03-13", false}, // +22
	}

	for _, tc := range cases {
		d, _ := time.Parse(DateLayout, tc.day)
		if got := w.Contains(d.Add(15 * time.Hour)); got != tc.want {
			t.Errorf("Contains(%s): want %v, got %v", tc.day, tc.want, got)
		}
	}
}

func TestReservationWindow_ParseEndDate(t *testing.T) {
	w := ReservationWindowAt(time.Date(2026, 2, 19, 10, 0, 0, 0, time.UTC))

	if _, err := w.ParseEndDate("2026-02-25"); err != nil {
		t.Fatalf("expected valid date, got %v", err)
	}
	if _, err := w.ParseEndDate("2026-04-01"); !errors.Is(err, ErrInvalidReservationDate) {
		t.Errorf("out of range: expected ErrInvalidReservationDate, got %v", err)
	}
	if _, err := w.ParseEndDate("25/02/2026"); !errors.Is(err, ErrInvalidReservationDate) {
		t.Errorf("bad layout: expected ErrInvalidReservationDate, got %v", err)
	}
}

func TestFormatWithRelative(t *testing.T) {
	now := time.Date(2026, 2, 19, 10, 0, 0, 0, time.UTC)

	cases := []struct {
		target time.Time
		suffix string
	}{
		{now.Add(2 * time.Hour), "(Today)"},
		{now.AddDate(0, 0, 1), "(Tomorrow)"},
		{now.AddDate(0, 0, 3), "(In 3 days)"},
		{now.AddDate(0, 0, 7), "(In 7 days)"},
		{now.AddDate(0, 0, 8), "(In 1 week)"},
		{now.AddDate(0, 0, 15), "(In 2 weeks)"},
		{now.AddDate(0, 0, -1), "(Yesterday)"},
		{now.AddDate(0, 0, -4), "(4 days ago)"},
	}

	for _, tc := range cases {
		got := FormatWithRelative(tc.target, now)
		if !strings.HasSuffix(got, tc.suffix) {
			t.Errorf("target %v: expected suffix %q, got %q", tc.target, tc.suffix, got)
		}
	}

	if got := FormatWithRelative(time.Time{}, now); got != "" {
		t.Errorf("zero time should render empty, got %q", got)
	}
}

func TestFormatWithExpiration(t *testing.T) {
	now := time.Date(2026, 2, 19, 10, 0, 0, 0, time.UTC)

	past := FormatWithExpiration(now.AddDate(0, 0, -2), now)
	if !strings.HasSuffix(past, " - EXPIRED") {
		t.Errorf("past date should be marked expired: %q", past)
	}
	future := FormatWithExpiration(now.AddDate(0, 0, 2), now)
	if strings.Contains(future, "EXPIRED") {
		t.Errorf("future date must not be marked expired: %q", future)
	}
}

func TestIsExpired(t *testing.T) {
	now := time.Date(2026, 2, 19, 10, 0, 0, 0, time.UTC)

	cases := []struct {
		name string
		t    time.Time
		want bool
	}{
		{"zero time never expires", time.Time{}, false},
		{"one second ago", now.Add(-time.Second), true},
		{"yesterday", now.AddDate(0, 0, -1), true},
		{"exactly now", now, false},
		{"later today", now.Add(time.Hour), false},
		{"same instant in another zone", now.In(time.FixedZone("UTC+5", 5*3600)), false},
	}

	for _, tc := range cases {
		if got := IsExpired(tc.t, now); got != tc.want {
			t.Errorf("%s: IsExpired = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestFormatWithExpiration_ZeroTime(t *testing.T) {
	if got := FormatWithExpiration(time.Time{}, time.Now()); got != "" {
		t.Errorf("zero time should render empty, got %q", got)
	}
}
