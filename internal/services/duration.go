package services

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

var (
	hhmmPattern     = regexp.MustCompile(`^(\d{1,2}):(\d{2})$`)
	unitPairPattern = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*([a-z]+)`)
)

// ParseTimeToMinutes converts an oracle duration text into whole minutes.
//
// Accepted forms: number-unit pairs ("2 hours", "1 hour 5 mins", "90 seconds",
// "3 days"), a bare "HH:MM", or a plain number which defaults to minutes.
// Seconds are converted with a ceiling so sub-minute legs never round to zero.
// The second return value is false when nothing parseable was found; callers
// substitute a default instead of aborting.
func ParseTimeToMinutes(s string) (int, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return 0, false
	}

	if m := hhmmPattern.FindStringSubmatch(s); m != nil {
		hours, _ := strconv.Atoi(m[1])
		minutes, _ := strconv.Atoi(m[2])
		return hours*60 + minutes, true
	}

	if v, err := strconv.ParseFloat(s, 64); err == nil {
		if v < 0 {
			return 0, false
		}
		return int(math.Ceil(v)), true
	}

	pairs := unitPairPattern.FindAllStringSubmatch(s, -1)
	total := 0.0
	matched := false
	for _, p := range pairs {
		v, err := strconv.ParseFloat(p[1], 64)
		if err != nil {
			continue
		}
		switch p[2] {
		case "day", "days", "d":
			total += v * 1440
		case "hour", "hours", "hr", "hrs", "h":
			total += v * 60
		case "minute", "minutes", "min", "mins", "m":
			total += v
		case "second", "seconds", "sec", "secs", "s":
			total += v / 60
		default:
			continue
		}
		matched = true
	}

	if !matched {
		return 0, false
	}

	return int(math.Ceil(total)), true
}
