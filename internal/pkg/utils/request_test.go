package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	loc := time.FixedZone("BRT", -3*60*60)

	date, err := ParseDate(" 2024-03-05 ", loc)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.March, 5, 0, 0, 0, 0, loc), date)

	_, err = ParseDate("05/03/2024", loc)
	assert.Error(t, err)
}

func TestParseMonth(t *testing.T) {
	loc := time.FixedZone("BRT", -3*60*60)

	month, err := ParseMonth("2024-04", loc)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.April, 1, 0, 0, 0, 0, loc), month)

	_, err = ParseMonth("2024-13", loc)
	assert.Error(t, err)
}

func TestSafeRedirectPath(t *testing.T) {
	tests := map[string]string{
		"":                     "/dashboard",
		"/dashboard?x=1":       "/dashboard?x=1",
		"/api/dashboard":       "/api/dashboard",
		"https://evil.example": "/dashboard",
		"//evil.example/path":  "/dashboard",
		"/\\evil.example":      "/dashboard",
		"dashboard":            "/dashboard",
		"javascript:alert(1)":  "/dashboard",
	}

	for target, expected := range tests {
		assert.Equal(t, expected, SafeRedirectPath(target, "/dashboard"), target)
	}
}
