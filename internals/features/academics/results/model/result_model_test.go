package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGradeFor(t *testing.T) {
	tests := []struct {
		score float64
		max   float64
		want  string
	}{
		{95, 100, "A"},
		{90, 100, "A"},
		{85, 100, "B"},
		{70, 100, "C"},
		{60, 100, "D"},
		{50, 100, "E"},
		{49, 100, "F"},
		{0, 100, "F"},
		{18, 20, "A"}, // graded against the exam max, not a fixed 100
		{10, 20, "E"},
		{5, 0, ""}, // malformed max
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, GradeFor(tt.score, tt.max), "score=%v max=%v", tt.score, tt.max)
	}
}
