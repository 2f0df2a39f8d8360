package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSortEntriesReadsLikeAPrintedTimetable(t *testing.T) {
	entries := []TimetableModel{
		{TimetableDayOfWeek: "friday", TimetableStartTime: "08:00"},
		{TimetableDayOfWeek: "monday", TimetableStartTime: "10:00"},
		{TimetableDayOfWeek: "monday", TimetableStartTime: "08:00"},
		{TimetableDayOfWeek: "wednesday", TimetableStartTime: "14:00"},
	}

	SortEntries(entries)

	got := make([][2]string, 0, len(entries))
	for _, e := range entries {
		got = append(got, [2]string{e.TimetableDayOfWeek, e.TimetableStartTime})
	}
	assert.Equal(t, [][2]string{
		{"monday", "08:00"},
		{"monday", "10:00"},
		{"wednesday", "14:00"},
		{"friday", "08:00"}, // alphabetical order would put friday first
	}, got)
}
