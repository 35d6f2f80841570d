// Package codes synthesizes the human-facing identifiers printed on labels.
package codes

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

const (
	// MaxRoomCodeLen caps every suggested room code, suffix included.
	MaxRoomCodeLen = 5
	// FallbackRoomCode is suggested when the room name is empty.
	FallbackRoomCode = "RM"
	// maxSuffix is the largest suffix that fits MaxRoomCodeLen. From 10000 on
	// the base is dropped and the code is all digits.
	maxSuffix = 99999
)

var defaultAbbreviations = map[string]string{
	"kitchen":         "KIT",
	"primary bedroom": "PB",
	"bedroom":         "BR",
	"guest bedroom":   "GB",
	"bathroom":        "BA",
	"living room":     "LR",
	"dining room":     "DR",
	"office":          "OFC",
	"garage":          "GAR",
	"laundry":         "LND",
	"basement":        "BSMT",
	"attic":           "ATC",
	"closet":          "CL",
	"pantry":          "PAN",
	"hallway":         "HALL",
	"entryway":        "ENT",
	"playroom":        "PLAY",
	"storage":         "STOR",
	"patio":           "PAT",
	"balcony":         "BAL",
	"shed":            "SHED",
}

// DefaultAbbreviations returns a copy of the built-in room table.
func DefaultAbbreviations() map[string]string {
	out := make(map[string]string, len(defaultAbbreviations))
	for k, v := range defaultAbbreviations {
		out[k] = v
	}
	return out
}

// ParseAbbreviations reads "living room=LR,den=DEN" style overrides.
func ParseAbbreviations(s string) (map[string]string, error) {
	out := make(map[string]string)
	for _, pair := range strings.Split(s, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		name, code, ok := strings.Cut(pair, "=")
		name, code = normalizeRoom(name), strings.ToUpper(strings.TrimSpace(code))
		if !ok || name == "" || code == "" {
			return nil, fmt.Errorf("invalid room abbreviation %q", pair)
		}
		if utf8.RuneCountInString(code) > MaxRoomCodeLen {
			return nil, fmt.Errorf("room abbreviation %q is longer than %d characters", code, MaxRoomCodeLen)
		}
		out[name] = code
	}
	return out, nil
}

// RoomCodeSuggester turns room names into short, unique room codes.
type RoomCodeSuggester struct {
	abbreviations map[string]string
}

// NewRoomCodeSuggester creates a suggester backed by the given room table.
// Keys are matched case-insensitively. A nil table uses the built-in one.
func NewRoomCodeSuggester(abbreviations map[string]string) *RoomCodeSuggester {
	if abbreviations == nil {
		abbreviations = defaultAbbreviations
	}
	table := make(map[string]string, len(abbreviations))
	for name, code := range abbreviations {
		table[normalizeRoom(name)] = strings.ToUpper(code)
	}
	return &RoomCodeSuggester{abbreviations: table}
}

// Suggest returns a room code for room that does not collide, ignoring case,
// with any of existing. Numeric suffixes start at 2 and the base is shortened
// so the result never exceeds MaxRoomCodeLen. Only when every suffix up to
// 99999 is taken does it give up and return the colliding base.
func (s *RoomCodeSuggester) Suggest(room string, existing []string) string {
	base := s.Base(room)

	taken := make(map[string]struct{}, len(existing))
	for _, code := range existing {
		taken[strings.ToUpper(strings.TrimSpace(code))] = struct{}{}
	}
	if _, ok := taken[strings.ToUpper(base)]; !ok {
		return base
	}

	for n := 2; n <= maxSuffix; n++ {
		suffix := strconv.Itoa(n)
		candidate := truncate(base, MaxRoomCodeLen-len(suffix)) + suffix
		if _, ok := taken[strings.ToUpper(candidate)]; !ok {
			return candidate
		}
	}
	return base
}

// Base derives the code for room before collision handling.
func (s *RoomCodeSuggester) Base(room string) string {
	normalized := normalizeRoom(room)
	if code, ok := s.abbreviations[normalized]; ok {
		return code
	}

	words := strings.Fields(room)
	var base string
	switch {
	case len(words) > 1:
		var b strings.Builder
		for _, w := range words {
			r, _ := utf8.DecodeRuneInString(w)
			b.WriteRune(r)
		}
		base = truncate(strings.ToUpper(b.String()), MaxRoomCodeLen)
	case len(words) == 1:
		base = strings.ToUpper(truncate(words[0], MaxRoomCodeLen))
	default:
		base = FallbackRoomCode
	}

	if utf8.RuneCountInString(base) < 2 && len(words) > 0 {
		base = strings.ToUpper(truncate(words[0], 3))
	}
	return base
}

func normalizeRoom(room string) string {
	return strings.Join(strings.Fields(strings.ToLower(room)), " ")
}

func truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}
