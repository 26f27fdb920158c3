package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var referenceDay = time.Date(2024, time.June, 15, 10, 0, 0, 0, time.UTC)

func TestValidateAge(t *testing.T) {
	tests := []struct {
		name string
		dob  string
		want bool
	}{
		{"well over eighteen", "2006-01-01", true},
		{"eighteenth birthday today", "2006-06-15", true},
		{"birthday tomorrow", "2006-06-16", false},
		{"minor", "2010-03-03", false},
		{"empty is accepted", "", true},
		{"unparseable is rejected", "15/06/2006", false},
		{"rfc3339 timestamp", "2000-01-01T00:00:00Z", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidateAge(tt.dob, referenceDay))
		})
	}
}

func TestValidateRelationshipDate(t *testing.T) {
	tests := []struct {
		name string
		date string
		want bool
	}{
		{"past date", "2020-02-14", true},
		{"today", "2024-06-15", true},
		{"tomorrow", "2024-06-16", false},
		{"empty is accepted", "", true},
		{"garbage", "yesterday", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidateRelationshipDate(tt.date, referenceDay))
		})
	}
}

func TestValidateRelationshipDateUsesLocalDay(t *testing.T) {
	// 23:30 in a zone west of UTC is already the next UTC day
	loc := time.FixedZone("BRT", -3*60*60)
	lateEvening := time.Date(2024, time.June, 15, 23, 30, 0, 0, loc)

	assert.True(t, ValidateRelationshipDate("2024-06-15", lateEvening))
	assert.False(t, ValidateRelationshipDate("2024-06-16", lateEvening))
}

func TestParseLocalDate(t *testing.T) {
	loc := time.FixedZone("BRT", -3*60*60)

	got, err := ParseLocalDate("2024-06-15", loc)
	require.NoError(t, err)
	assert.Equal(t, 15, got.Day())
	assert.Equal(t, 0, got.Hour())

	_, err = ParseLocalDate("June 15", loc)
	assert.Error(t, err)
}

func TestCalculateRelationshipDuration(t *testing.T) {
	tests := []struct {
		name  string
		start string
		want  string
	}{
		{"same day", "2024-06-15", "0 days"},
		{"one day", "2024-06-14", "1 day"},
		{"ten days", "2024-06-05", "10 days"},
		{"one month", "2024-05-16", "1 month"},
		{"one year", "2023-06-16", "1 year"},
		{"years months days", "2020-02-14", "4 years, 4 months, 3 days"},
		{"future start clamps to zero", "2024-07-01", "0 days"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := CalculateRelationshipDuration(tt.start, referenceDay)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCalculateRelationshipDurationWithoutStart(t *testing.T) {
	_, ok := CalculateRelationshipDuration("", referenceDay)
	assert.False(t, ok)

	_, ok = CalculateRelationshipDuration("not a date", referenceDay)
	assert.False(t, ok)
}
