package rewrite

import (
	"errors"
	"math"
	"strconv"

	"github.com/Masterminds/semver/v3"
)

// ParseMajorVersion interprets the NDK version signal. Only a non-empty string
// of ASCII decimal digits is a version; anything else (unset, empty, "r25",
// "25.1") yields ok=false and disables rewriting. Digit strings that overflow
// 64 bits saturate at the largest major version.
func ParseMajorVersion(signal string) (v *semver.Version, ok bool) {
	if !isDigits(signal) {
		return nil, false
	}

	major, err := strconv.ParseUint(signal, 10, 64)
	if err != nil {
		if !errors.Is(err, strconv.ErrRange) {
			return nil, false
		}
		major = math.MaxUint64
	}
	return semver.New(major, 0, 0, "", ""), true
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
