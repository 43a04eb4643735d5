package catalog

import (
	"regexp"
	"strconv"
)

var isoDurationRE = regexp.MustCompile(`PT(?:(\d+)H)?(?:(\d+)M)?(?:(\d+)S)?`)

// ParseDuration converts an ISO-8601 time duration such as PT1H30M15S into seconds.
// Empty or unrecognised input yields 0.
func ParseDuration(raw string) int {
	if raw == "" {
		return 0
	}
	m := isoDurationRE.FindStringSubmatch(raw)
	if m == nil {
		return 0
	}
	return atoi(m[1])*3600 + atoi(m[2])*60 + atoi(m[3])
}

func atoi(s string) int {
	if s == "" {
		return 0
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
