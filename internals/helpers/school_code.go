package helper

import (
	"math/rand"
	"strconv"
	"strings"
	"unicode"
)

// GenerateSchoolCode builds a short tenant code: first 3 letters of the name
// (uppercased) + 4 random digits, e.g. "GRE4821". Collision retry is the
// caller's job (unique index on school_code).
func GenerateSchoolCode(name string) string {
	var b strings.Builder
	letters := 0
	for _, r := range name {
		if unicode.IsLetter(r) {
			b.WriteRune(unicode.ToUpper(r))
			letters++
			if letters >= 3 {
				break
			}
		}
	}
	prefix := b.String()
	if prefix == "" {
		prefix = "SCH"
	}
	return prefix + strconv.Itoa(1000+rand.Intn(9000))
}
