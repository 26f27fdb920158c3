package services

import (
	"fmt"
	"math"
	"strings"
	"time"
)

const (
	minimumAge = 18
	dateLayout = "2006-01-02"
)

// ParseLocalDate parses a bare YYYY-MM-DD date as midnight in loc, so that
// dates are never shifted by a UTC offset. RFC3339 timestamps are converted to loc.
func ParseLocalDate(value string, loc *time.Location) (time.Time, error) {
	value = strings.TrimSpace(value)
	if t, err := time.ParseInLocation(dateLayout, value, loc); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t.In(loc), nil
	}
	return time.Time{}, fmt.Errorf("invalid date %q", value)
}

// ValidateAge reports whether someone born on dob is at least 18 on today.
// An empty date is accepted; an unparseable one is not.
func ValidateAge(dob string, today time.Time) bool {
	if strings.TrimSpace(dob) == "" {
		return true
	}

	birth, err := ParseLocalDate(dob, today.Location())
	if err != nil {
		return false
	}

	age := today.Year() - birth.Year()
	if today.Month() < birth.Month() || (today.Month() == birth.Month() && today.Day() < birth.Day()) {
		age--
	}
	return age >= minimumAge
}

// ValidateRelationshipDate reports whether date is not later than the end of
// the current local day. An empty date is accepted.
func ValidateRelationshipDate(date string, now time.Time) bool {
	if strings.TrimSpace(date) == "" {
		return true
	}

	t, err := ParseLocalDate(date, now.Location())
	if err != nil {
		return false
	}

	y, m, d := now.Date()
	endOfDay := time.Date(y, m, d, 23, 59, 59, int(time.Second-time.Nanosecond), now.Location())
	return !t.After(endOfDay)
}

// CalculateRelationshipDuration describes the time elapsed since start in
// years, months and days. Years are 365 days and months are 30 days.
// It returns false when no usable start date is given.
func CalculateRelationshipDuration(start string, now time.Time) (string, bool) {
	if strings.TrimSpace(start) == "" {
		return "", false
	}

	from, err := ParseLocalDate(start, now.Location())
	if err != nil {
		return "", false
	}

	days := int(math.Floor(now.Sub(from).Hours() / 24))
	if days < 0 {
		days = 0
	}

	years := days / 365
	months := (days % 365) / 30
	rest := (days % 365) % 30

	var parts []string
	if years > 0 {
		parts = append(parts, plural(years, "year"))
	}
	if months > 0 {
		parts = append(parts, plural(months, "month"))
	}
	if rest > 0 {
		parts = append(parts, plural(rest, "day"))
	}
	if len(parts) == 0 {
		return "0 days", true
	}
	return strings.Join(parts, ", "), true
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}
