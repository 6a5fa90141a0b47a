package library

import (
	"math"
	"strconv"
	"strings"
)

// parseLeadingInt reads an optional sign followed by digits from the start of
// s, ignoring leading whitespace, and stops at the first other character.
// "12abc" is 12, "abc" fails.
func parseLeadingInt(s string) (int, bool) {
	s = strings.TrimLeft(s, " \t\n\r")
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0, false
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return n, true
}

// toInt coerces a decoded JSON value into an integer. Numbers are truncated,
// strings use their leading integer.
func toInt(v interface{}) (int, bool) {
	switch t := v.(type) {
	case float64:
		// float64(math.MaxInt) rounds up to 2^63, which doesn't fit in an int
		if math.IsNaN(t) || t >= float64(math.MaxInt) || t < float64(math.MinInt) {
			return 0, false
		}
		return int(t), true
	case int:
		return t, true
	case int64:
		return int(t), true
	case string:
		return parseLeadingInt(t)
	}
	return 0, false
}

// toText renders a scalar JSON value as text. Objects and arrays fail.
func toText(v interface{}) (string, bool) {
	switch t := v.(type) {
	case string:
		return t, true
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), true
	case int:
		return strconv.Itoa(t), true
	case int64:
		return strconv.FormatInt(t, 10), true
	case bool:
		return strconv.FormatBool(t), true
	case nil:
		return "", true
	}
	return "", false
}

// isFalsy reports whether v counts as absent: null, "", 0 or false.
func isFalsy(v interface{}) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return t == ""
	case float64:
		return t == 0 || math.IsNaN(t)
	case int:
		return t == 0
	case int64:
		return t == 0
	case bool:
		return !t
	}
	return false
}

// coercePages falls back to 1 for anything that isn't a positive integer.
func coercePages(v interface{}) int {
	n, ok := toInt(v)
	if !ok || n <= 0 {
		return 1
	}
	return n
}

// coerceYear falls back to 0 when v has no integer value.
func coerceYear(v interface{}) int {
	n, ok := toInt(v)
	if !ok {
		return 0
	}
	return n
}
