// Package laptime normalizes free-form lap time input into seconds.
package laptime

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

var (
	plainSecondsRe = regexp.MustCompile(`^\d+(\.\d+)?$`)
	minSecRe       = regexp.MustCompile(`^(\d{1,2}):(\d{2})(\.\d{1,3})?$`)
	hourMinSecRe   = regexp.MustCompile(`^(\d{1,3}):(\d{2}):(\d{2})(\.\d{1,3})?$`)
)

// ParseLap converts a stored lap time value into seconds. Zero and negative
// values are invalid lap times, not zero-length laps. Returns false for
// anything that is not a positive number.
func ParseLap(value string) (float64, bool) {
	s := strings.TrimSpace(value)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return 0, false
	}
	return v, true
}

// ParseTimeInput converts a run time entry into seconds. Three grammars are
// accepted: plain seconds ("123.4"), MM:SS(.mmm) and HH:MM:SS(.mmm).
// Returns false when the input matches none of them.
func ParseTimeInput(value string) (float64, bool) {
	s := strings.TrimSpace(value)
	if s == "" {
		return 0, false
	}
	if plainSecondsRe.MatchString(s) {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		return v, true
	}
	if m := minSecRe.FindStringSubmatch(s); m != nil {
		return compose(0, m[1], m[2], m[3]), true
	}
	if m := hourMinSecRe.FindStringSubmatch(s); m != nil {
		hours, _ := strconv.ParseFloat(m[1], 64)
		return compose(hours, m[2], m[3], m[4]), true
	}
	return 0, false
}

func compose(hours float64, minutes, seconds, frac string) float64 {
	mins, _ := strconv.ParseFloat(minutes, 64)
	secs, _ := strconv.ParseFloat(seconds, 64)
	total := hours*3600 + mins*60 + secs
	if frac != "" {
		f, _ := strconv.ParseFloat(frac, 64)
		total += f
	}
	return total
}
