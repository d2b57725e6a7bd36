package utils

import (
	"gobarber-dashboard/internal/pkg/constvars"
	"gobarber-dashboard/internal/pkg/exceptions"
	"net/url"
	"strings"
	"time"
)

// ParseDate reads a YYYY-MM-DD value as local midnight in loc.
func ParseDate(value string, loc *time.Location) (time.Time, error) {
	date, err := time.ParseInLocation(constvars.DateLayout, strings.TrimSpace(value), loc)
	if err != nil {
		return time.Time{}, exceptions.ErrInvalidDate(err)
	}
	return date, nil
}

// ParseMonth reads a YYYY-MM value as the first day of that month in loc.
func ParseMonth(value string, loc *time.Location) (time.Time, error) {
	month, err := time.ParseInLocation(constvars.MonthLayout, strings.TrimSpace(value), loc)
	if err != nil {
		return time.Time{}, exceptions.ErrInvalidMonth(err)
	}
	return month, nil
}

// SafeRedirectPath returns target when it is a local absolute path, fallback otherwise.
func SafeRedirectPath(target, fallback string) string {
	if target == "" || !strings.HasPrefix(target, "/") || strings.HasPrefix(target, "//") || strings.HasPrefix(target, "/\\") {
		return fallback
	}
	parsed, err := url.Parse(target)
	if err != nil || parsed.IsAbs() || parsed.Host != "" {
		return fallback
	}
	return target
}
