package codes

import (
	"fmt"
	"regexp"
	"strconv"
)

// ShortCodePrefix starts every box short code.
const ShortCodePrefix = "BX-"

var shortCodePattern = regexp.MustCompile(`BX-(\d+)`)

// FormatShortCode renders n as BX-NNNNNN.
func FormatShortCode(n int) string {
	return fmt.Sprintf("%s%06d", ShortCodePrefix, n)
}

// ParseShortCode extracts the sequence number of a short code.
func ParseShortCode(code string) (int, bool) {
	m := shortCodePattern.FindStringSubmatch(code)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return n, true
}

// NextShortCode returns the code following latest, the short code of the
// most recently created box. An empty or unparsable latest starts at BX-000001.
func NextShortCode(latest string) string {
	n, _ := ParseShortCode(latest)
	return FormatShortCode(n + 1)
}
