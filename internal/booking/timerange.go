package booking

import "fmt"

// ParseClock parses a 24-hour "HH:MM" value and returns minutes since
// midnight. The hour may be one or two digits (0-23); the minute must be
// exactly two digits (00-59). Reports false for anything else.
func ParseClock(s string) (int, bool) {
	sep := -1
	for i := 0; i < len(s); i++ {
		if s[i] == ':' {
			sep = i
			break
		}
	}
	if sep < 1 || sep > 2 || len(s)-sep-1 != 2 {
		return 0, false
	}

	hour, ok := parseDigits(s[:sep])
	if !ok || hour > 23 {
		return 0, false
	}
	minute, ok := parseDigits(s[sep+1:])
	if !ok || minute > 59 {
		return 0, false
	}

	return hour*60 + minute, true
}

// parseDigits converts a run of ASCII digits to an int.
func parseDigits(s string) (int, bool) {
	n := 0
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, false
		}
		n = n*10 + int(s[i]-'0')
	}
	return n, true
}

// FormatClock renders minutes since midnight as zero-padded "HH:MM".
// Zero-padded values compare chronologically both as strings and as minutes,
// which the repository relies on when scanning stored bookings.
func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// Overlaps reports whether the half-open intervals [startA, endA) and
// [startB, endB), in minutes since midnight, intersect. Strict inequality on
// both sides means back-to-back bookings do not conflict.
func Overlaps(startA, endA, startB, endB int) bool {
	return startA < endB && startB < endA
}
