package helper

import (
	"regexp"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestGenerateSchoolCode(t *testing.T) {
	codePattern := regexp.MustCompile(`^[A-Z]{1,3}\d{4}$`)

	tests := []struct {
		name       string
		wantPrefix string
	}{
		{"Greenwood Academy", "GRE"},
		{"greenwood", "GRE"},
		{"Al-Hidayah School", "ALH"}, // non-letters skipped
		{"Xi", "XI"},
		{"123", "SCH"}, // no letters at all → fallback prefix
	}

	for _, tt := range tests {
		code := GenerateSchoolCode(tt.name)
		assert.Regexp(t, codePattern, code, "name=%q", tt.name)
		assert.Equal(t, tt.wantPrefix, code[:len(code)-4], "name=%q", tt.name)
	}
}

func TestGenerateSchoolCodeCountsRunesNotBytes(t *testing.T) {
	// Multibyte letters must still yield a three-letter prefix.
	code := GenerateSchoolCode("École Élémentaire")
	prefix := strings.TrimRight(code, "0123456789")
	assert.Equal(t, 3, utf8.RuneCountInString(prefix), "code=%q", code)
	assert.Equal(t, "ÉCO", prefix)
}

func TestGenerateSchoolCodeVaries(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		seen[GenerateSchoolCode("Greenwood")] = true
	}
	// 4 random digits: 50 draws should not collapse to a couple of values.
	assert.Greater(t, len(seen), 10)
}
