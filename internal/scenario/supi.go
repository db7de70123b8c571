package scenario

import (
	"fmt"
	"strconv"
)

// SUPIWidth is the fixed width of a starting SUPI.
const SUPIWidth = 15

const maxSUPI = 999999999999999

// ParseSUPI parses a 15-digit zero-padded SUPI.
func ParseSUPI(s string) (uint64, error) {
	if len(s) != SUPIWidth {
		return 0, fmt.Errorf("SUPI must be %d digits, got %d", SUPIWidth, len(s))
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("SUPI must be numeric: %q", s)
		}
	}
	return strconv.ParseUint(s, 10, 64)
}

// FormatSUPI renders n zero-padded to 15 digits.
func FormatSUPI(n uint64) string {
	return fmt.Sprintf("%0*d", SUPIWidth, n)
}

// NextSUPI returns the first SUPI after the window that starts at start and
// holds count devices.
func NextSUPI(start string, count int) (string, error) {
	n, err := ParseSUPI(start)
	if err != nil {
		return "", err
	}
	if count < 0 {
		return "", fmt.Errorf("negative device count %d", count)
	}
	next := n + uint64(count)
	if next > maxSUPI {
		return "", fmt.Errorf("SUPI window starting at %s overflows %d digits", start, SUPIWidth)
	}
	return FormatSUPI(next), nil
}

// supiWindow is the inclusive SUPI interval a range occupies.
type supiWindow struct {
	first uint64
	last  uint64
}

func windowOf(r SubscriberRange) (supiWindow, bool) {
	if r.NumberOfUEs <= 0 {
		return supiWindow{}, false
	}
	n, err := ParseSUPI(r.StartingSUPI)
	if err != nil {
		return supiWindow{}, false
	}
	return supiWindow{first: n, last: n + uint64(r.NumberOfUEs) - 1}, true
}

func (w supiWindow) overlaps(o supiWindow) bool {
	return w.first <= o.last && o.first <= w.last
}
