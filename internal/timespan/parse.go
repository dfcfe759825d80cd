/* Copyright (c) 2021 David Bulkow */

package timespan

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

/*
Grammar:

	sign:     '-' | '+'
	num:      [0-9]+
	day:      'd' | 'day' | 'days'
	hour:     'h' | 'hr' | 'hrs' | 'hour' | 'hours'
	minute:   'm' | 'min' | 'mins' | 'minute' | 'minutes'
	second:   's' | 'sec' | 'secs' | 'second' | 'seconds'
	unit:     day | hour | minute | second
	suffixed: [ sign ] ( num unit )+
	clock:    [ sign ] num ( ':' num ){0,3}
	duration: suffixed | clock

Example durations

	1day
	1day3minutes
	1d3m
	3h2m50s
	-1d
	+90s
	1:00:03:00
	3:02:50
	-0:30

The clock form reads fields right to left as seconds, minutes, hours,
days. The sign applies to the whole expression; individual magnitudes
and fields are unsigned. Unit words match case-insensitively.
*/

const (
	Second = 1
	Minute = 60 * Second
	Hour   = 60 * Minute
	Day    = 24 * Hour
)

var unitSeconds = map[string]int64{
	"d":       Day,
	"day":     Day,
	"days":    Day,
	"h":       Hour,
	"hr":      Hour,
	"hrs":     Hour,
	"hour":    Hour,
	"hours":   Hour,
	"m":       Minute,
	"min":     Minute,
	"mins":    Minute,
	"minute":  Minute,
	"minutes": Minute,
	"s":       Second,
	"sec":     Second,
	"secs":    Second,
	"second":  Second,
	"seconds": Second,
}

// clock fields right to left: seconds, minutes, hours, days
var fieldSeconds = []int64{Second, Minute, Hour, Day}

type ParseError struct {
	msg       string
	input     string
	empty     bool
	badUnit   bool
	badField  bool
	badNumber bool
	tooMany   bool
}

func (e *ParseError) Error() string {
	if e.msg == "" {
		return fmt.Sprintf("bad time %q", e.input)
	}
	return fmt.Sprintf("bad time %q: %s", e.input, e.msg)
}

func (e *ParseError) Empty() bool         { return e.empty }
func (e *ParseError) BadUnit() bool       { return e.badUnit }
func (e *ParseError) BadField() bool      { return e.badField }
func (e *ParseError) BadNumber() bool     { return e.badNumber }
func (e *ParseError) TooManyFields() bool { return e.tooMany }

func isDigit(r rune) bool  { return unicode.IsDigit(r) }
func isLetter(r rune) bool { return unicode.IsLetter(r) }

// Parse converts a duration expression in either unit-suffixed form
// ("1day3minutes", "1d3m", "3h2m50s") or colon-delimited form
// ("1:00:03:00") into a signed number of seconds. A leading '-' or '+'
// negates or keeps the sign of the whole expression.
func Parse(text string) (int64, error) {
	s := strings.TrimSpace(text)

	if s == "" {
		return 0, &ParseError{input: text, empty: true}
	}

	sign := int64(1)
	switch s[0] {
	case '-':
		sign = -1
		s = s[1:]
	case '+':
		s = s[1:]
	}

	if s == "" {
		return 0, &ParseError{msg: "sign without value", input: text, empty: true}
	}

	var (
		secs int64
		err  error
	)

	if strings.ContainsRune(s, ':') {
		secs, err = parseClock(text, s)
	} else {
		secs, err = parseSuffixed(text, s)
	}
	if err != nil {
		return 0, err
	}

	return sign * secs, nil
}

// parseSuffixed reads one or more <digits><unit> components and sums
// them. Components may repeat and appear in any order.
func parseSuffixed(orig, s string) (int64, error) {
	runes := []rune(strings.ToLower(s))

	var total int64

	i := 0
	for i < len(runes) {
		start := i
		for i < len(runes) && isDigit(runes[i]) {
			i++
		}
		if i == start {
			return 0, &ParseError{
				msg:       "expect numeric value",
				input:     orig,
				badNumber: true,
			}
		}
		num, err := strconv.ParseInt(string(runes[start:i]), 10, 64)
		if err != nil {
			return 0, &ParseError{
				msg:       "value out of range",
				input:     orig,
				badNumber: true,
			}
		}

		start = i
		for i < len(runes) && isLetter(runes[i]) {
			i++
		}
		mult, ok := unitSeconds[string(runes[start:i])]
		if !ok {
			return 0, &ParseError{
				msg:     fmt.Sprintf("unknown unit %q", string(runes[start:i])),
				input:   orig,
				badUnit: true,
			}
		}

		total += num * mult
	}

	return total, nil
}

// parseClock reads 1 to 4 digit-only fields separated by ':',
// interpreted right to left as seconds, minutes, hours, days.
func parseClock(orig, s string) (int64, error) {
	fields := strings.Split(s, ":")

	if len(fields) > len(fieldSeconds) {
		return 0, &ParseError{
			msg:     fmt.Sprintf("too many fields (%d)", len(fields)),
			input:   orig,
			tooMany: true,
		}
	}

	var total int64

	for i, f := range fields {
		if f == "" {
			return 0, &ParseError{
				msg:      "empty field",
				input:    orig,
				badField: true,
			}
		}
		for _, r := range f {
			if !isDigit(r) {
				return 0, &ParseError{
					msg:      fmt.Sprintf("bad field %q", f),
					input:    orig,
					badField: true,
				}
			}
		}
		num, err := strconv.ParseInt(f, 10, 64)
		if err != nil {
			return 0, &ParseError{
				msg:      fmt.Sprintf("bad field %q", f),
				input:    orig,
				badField: true,
			}
		}
		total += num * fieldSeconds[len(fields)-1-i]
	}

	return total, nil
}
