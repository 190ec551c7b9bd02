// Package timeutil resolves the time expressions accepted by date
// categories: "now", "today", absolute timestamps, and signed offsets from a
// reference time such as "-30y", "+2 weeks" or "-1d12h".
package timeutil

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Offset is a signed distance from a reference time. Calendar parts go
// through AddDate so that "-1y" lands on the same date a year earlier.
type Offset struct {
	Years  int
	Months int
	Days   int
	Clock  time.Duration
}

// From applies the offset to t.
func (o Offset) From(t time.Time) time.Time {
	return t.AddDate(o.Years, o.Months, o.Days).Add(o.Clock)
}

func (o Offset) negate() Offset {
	return Offset{Years: -o.Years, Months: -o.Months, Days: -o.Days, Clock: -o.Clock}
}

type unitFn func(o *Offset, n int)

func clock(d time.Duration) unitFn {
	return func(o *Offset, n int) { o.Clock += time.Duration(n) * d }
}

// Single-letter units follow time.ParseDuration, so "m" is minutes and
// months need "mo".
var units = map[string]unitFn{
	"s": clock(time.Second), "sec": clock(time.Second), "second": clock(time.Second), "seconds": clock(time.Second),
	"m": clock(time.Minute), "min": clock(time.Minute), "minute": clock(time.Minute), "minutes": clock(time.Minute),
	"h": clock(time.Hour), "hour": clock(time.Hour), "hours": clock(time.Hour),
	"d": func(o *Offset, n int) { o.Days += n }, "day": func(o *Offset, n int) { o.Days += n }, "days": func(o *Offset, n int) { o.Days += n },
	"w": func(o *Offset, n int) { o.Days += 7 * n }, "week": func(o *Offset, n int) { o.Days += 7 * n }, "weeks": func(o *Offset, n int) { o.Days += 7 * n },
	"mo": func(o *Offset, n int) { o.Months += n }, "month": func(o *Offset, n int) { o.Months += n }, "months": func(o *Offset, n int) { o.Months += n },
	"y": func(o *Offset, n int) { o.Years += n }, "year": func(o *Offset, n int) { o.Years += n }, "years": func(o *Offset, n int) { o.Years += n },
}

var (
	offsetRe = regexp.MustCompile(`^([+-])\s*((?:\d+\s*[a-z]+\s*)+)$`)
	termRe   = regexp.MustCompile(`(\d+)\s*([a-z]+)`)
)

// ParseOffset parses a sign followed by one or more <n><unit> terms.
func ParseOffset(s string) (Offset, error) {
	m := offsetRe.FindStringSubmatch(strings.ToLower(strings.TrimSpace(s)))
	if m == nil {
		return Offset{}, fmt.Errorf("invalid offset %q", s)
	}

	var o Offset
	for _, term := range termRe.FindAllStringSubmatch(m[2], -1) {
		n, err := strconv.Atoi(term[1])
		if err != nil {
			return Offset{}, fmt.Errorf("invalid offset %q: %w", s, err)
		}
		apply, ok := units[term[2]]
		if !ok {
			return Offset{}, fmt.Errorf("invalid offset %q: unknown unit %q", s, term[2])
		}
		apply(&o, n)
	}

	if m[1] == "-" {
		return o.negate(), nil
	}
	return o, nil
}

var absoluteLayouts = []string{time.RFC3339, "2006-01-02 15:04:05", "2006-01-02"}

// Resolve turns expr into a point in time relative to now. Absolute values
// without a zone are read in now's location.
func Resolve(expr string, now time.Time) (time.Time, error) {
	expr = strings.TrimSpace(expr)
	switch strings.ToLower(expr) {
	case "":
		return time.Time{}, errors.New("empty time expression")
	case "now":
		return now, nil
	case "today":
		y, mo, d := now.Date()
		return time.Date(y, mo, d, 0, 0, 0, 0, now.Location()), nil
	}

	for _, layout := range absoluteLayouts {
		if t, err := time.ParseInLocation(layout, expr, now.Location()); err == nil {
			return t, nil
		}
	}

	o, err := ParseOffset(expr)
	if err != nil {
		return time.Time{}, fmt.Errorf("unrecognized time %q: want now, today, a timestamp or a signed offset such as -30d", expr)
	}
	return o.From(now), nil
}
