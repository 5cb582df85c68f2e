package distance

import (
	"regexp"
	"strconv"
	"strings"
)

// Text-field fallbacks for legs whose numeric fields came back absent or
// malformed. The oracle emits compound duration text ("1 hour 5 mins"), so
// every number-unit pair is accumulated, not just the leading one.
var numberUnitPattern = regexp.MustCompile(`(\d+(?:[.,]\d+)?)\s*([a-zA-Z]+)`)

// parseDistanceText converts "4.8 km" style text to meters. Unparseable
// input yields 0.
func parseDistanceText(s string) int {
	m := numberUnitPattern.FindStringSubmatch(s)
	if m == nil {
		return 0
	}
	v, err := strconv.ParseFloat(strings.ReplaceAll(m[1], ",", "."), 64)
	if err != nil {
		return 0
	}
	switch strings.ToLower(m[2]) {
	case "km":
		return int(v * 1000)
	case "mi":
		return int(v * 1609.344)
	case "m":
		return int(v)
	default:
		return 0
	}
}

// parseDurationText converts "12 mins" or "1 hour 5 mins" style text to
// seconds, summing all recognized number-unit pairs. Unparseable input
// yields 0.
func parseDurationText(s string) int {
	total := 0.0
	for _, m := range numberUnitPattern.FindAllStringSubmatch(s, -1) {
		v, err := strconv.ParseFloat(strings.ReplaceAll(m[1], ",", "."), 64)
		if err != nil {
			continue
		}
		switch strings.ToLower(m[2]) {
		case "day", "days", "d":
			total += v * 86400
		case "hour", "hours", "hr", "hrs", "h":
			total += v * 3600
		case "minute", "minutes", "min", "mins", "m":
			total += v * 60
		case "second", "seconds", "sec", "secs", "s":
			total += v
		}
	}
	return int(total)
}
