package domain

import (
	"fmt"
	"time"
)

// DateLayout is the wire and input format for reservation end dates.
const DateLayout = "2006-01-02"

// Reservation bounds, in days from today.
const (
	minReservationDays     = 1
	maxReservationDays     = 21
	defaultReservationDays = 7
)

// Reservation is a user's hold on a switch.
type Reservation struct {
	ID           int        `json:"id"            yaml:"id"`
	Switch       int        `json:"switch"        yaml:"switch"`
	User         int        `json:"user"          yaml:"user"`
	CreationDate time.Time  `json:"creation_date" yaml:"creation_date"`
	EndDate      *time.Time `json:"end_date"      yaml:"end_date,omitempty"`
}

// ReservationWindow holds the selectable end dates for a new reservation.
// It is derived from a reference time and never stored.
type ReservationWindow struct {
	Min     time.Time `json:"min"`
	Max     time.Time `json:"max"`
	Default time.Time `json:"default"`
}

// ReservationWindowAt computes the window relative to now: tomorrow at the
// earliest, 21 days out at the latest, a week out by default.
func ReservationWindowAt(now time.Time) ReservationWindow {
	day := startOfDay(now)
	return ReservationWindow{
		Min:     day.AddDate(0, 0, minReservationDays),
		Max:     day.AddDate(0, 0, maxReservationDays),
		Default: day.AddDate(0, 0, defaultReservationDays),
	}
}

// Contains reports whether the calendar day of t falls inside the window,
// both ends included.
func (w ReservationWindow) Contains(t time.Time) bool {
	d := startOfDay(t.In(w.Min.Location()))
	return !d.Before(w.Min) && !d.After(w.Max)
}

// ParseEndDate parses a YYYY-MM-DD end date and checks it against the window.
func (w ReservationWindow) ParseEndDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, s, w.Min.Location())
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q is not a YYYY-MM-DD date", ErrInvalidReservationDate, s)
	}
	if !w.Contains(t) {
		return time.Time{}, fmt.Errorf("%w: %s is outside %s..%s", ErrInvalidReservationDate,
			s, FormatForInput(w.Min), FormatForInput(w.Max))
	}
	return t, nil
}

// FormatForInput renders a date as YYYY-MM-DD; the zero time renders empty.
func FormatForInput(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DateLayout)
}

// IsExpired reports whether t lies before now. The zero time never expires.
func IsExpired(t, now time.Time) bool {
	if t.IsZero() {
		return false
	}
	return t.Before(now)
}

// FormatWithRelative renders t followed by a relative hint such as
// "(Tomorrow)", "(In 3 days)" or "(2 days ago)".
func FormatWithRelative(t, now time.Time) string {
	if t.IsZero() {
		return ""
	}
	base := t.Format("Jan 2, 2006, 03:04 PM")
	days := calendarDaysBetween(now, t)

	switch {
	case days == -1:
		return base + " (Yesterday)"
	case days < 0:
		return fmt.Sprintf("%s (%d days ago)", base, -days)
	case days == 0:
		return base + " (Today)"
	case days == 1:
		return base + " (Tomorrow)"
	case days <= 7:
		return fmt.Sprintf("%s (In %d days)", base, days)
	}

	weeks := days / 7
	if weeks == 1 {
		return base + " (In 1 week)"
	}
	return fmt.Sprintf("%s (In %d weeks)", base, weeks)
}

// FormatWithExpiration is FormatWithRelative plus an " - EXPIRED" suffix for
// past dates.
func FormatWithExpiration(t, now time.Time) string {
	out := FormatWithRelative(t, now)
	if out != "" && IsExpired(t, now) {
		out += " - EXPIRED"
	}
	return out
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// calendarDaysBetween counts whole calendar days from a to b, ignoring the
// time of day and DST shifts.
func calendarDaysBetween(a, b time.Time) int {
	ay, am, ad := a.Date()
	by, bm, bd := b.In(a.Location()).Date()
	from := time.Date(ay, am, ad, 0, 0, 0, 0, time.UTC)
	to := time.Date(by, bm, bd, 0, 0, 0, 0, time.UTC)
	return int(to.Sub(from).Hours() / 24)
}
