package db

import (
	"fmt"
	"strconv"
	"strings"
)

// Interval is a structured date/time interval mirroring the backend's
// year/month/day and time-of-day fields.
type Interval struct {
	Years   int
	Months  int
	Days    int
	Hours   int
	Minutes int
	Seconds int
}

// String renders the interval as an ISO-8601 period, e.g. P1Y2M3DT4H5M6S.
func (iv Interval) String() string {
	return fmt.Sprintf("P%dY%dM%dDT%dH%dM%dS",
		iv.Years, iv.Months, iv.Days, iv.Hours, iv.Minutes, iv.Seconds)
}

// ParseInterval parses an interval in the backend's text output format,
// e.g. "1 year 2 mons 3 days 04:05:06", or an ISO-8601 period as produced
// by Interval.String.
func ParseInterval(s string) (Interval, error) {
	var iv Interval

	s = strings.TrimSpace(s)
	if s == "" {
		return iv, &InvalidArgumentError{Reason: "empty interval"}
	}
	if s[0] == 'P' {
		return parseISOInterval(s)
	}

	fields := strings.Fields(s)
	for i := 0; i < len(fields); i++ {
		f := fields[i]

		if strings.Contains(f, ":") {
			h, m, sec, err := parseClock(f)
			if err != nil {
				return iv, err
			}
			iv.Hours, iv.Minutes, iv.Seconds = h, m, sec
			continue
		}

		if i+1 >= len(fields) {
			return iv, &InvalidArgumentError{Reason: "malformed interval: " + s}
		}
		n, err := strconv.Atoi(f)
		if err != nil {
			return iv, &InvalidArgumentError{Reason: "malformed interval: " + s}
		}
		switch strings.TrimSuffix(fields[i+1], "s") {
		case "year":
			iv.Years = n
		case "mon", "month":
			iv.Months = n
		case "day":
			iv.Days = n
		default:
			return iv, &NotSupportedError{Feature: "interval unit " + fields[i+1]}
		}
		i++
	}
	return iv, nil
}

// parseClock parses the HH:MM:SS tail, including a leading sign that
// applies to all three components. Fractional seconds are truncated.
func parseClock(f string) (h, m, sec int, err error) {
	sign := 1
	f = strings.TrimPrefix(f, "+")
	if strings.HasPrefix(f, "-") {
		sign = -1
		f = f[1:]
	}
	parts := strings.Split(f, ":")
	if len(parts) != 3 {
		return 0, 0, 0, &InvalidArgumentError{Reason: "malformed interval time: " + f}
	}
	h, err1 := strconv.Atoi(parts[0])
	m, err2 := strconv.Atoi(parts[1])
	secF, err3 := strconv.ParseFloat(parts[2], 64)
	if err1 != nil || err2 != nil || err3 != nil {
		return 0, 0, 0, &InvalidArgumentError{Reason: "malformed interval time: " + f}
	}
	return sign * h, sign * m, sign * int(secF), nil
}

func parseISOInterval(s string) (Interval, error) {
	var iv Interval
	rest := s[1:]
	inTime := false
	num := ""
	for _, r := range rest {
		switch {
		case r == 'T':
			inTime = true
		case r >= '0' && r <= '9' || r == '-':
			num += string(r)
		default:
			n, err := strconv.Atoi(num)
			if err != nil {
				return iv, &InvalidArgumentError{Reason: "malformed interval: " + s}
			}
			num = ""
			switch {
			case r == 'Y':
				iv.Years = n
			case r == 'M' && !inTime:
				iv.Months = n
			case r == 'D':
				iv.Days = n
			case r == 'H':
				iv.Hours = n
			case r == 'M' && inTime:
				iv.Minutes = n
			case r == 'S':
				iv.Seconds = n
			default:
				return iv, &InvalidArgumentError{Reason: "malformed interval: " + s}
			}
		}
	}
	return iv, nil
}
