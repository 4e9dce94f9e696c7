// README: Recovers structured itineraries from free-form model output.
package itinerary

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	// ErrNoItinerary means no strategy could recover a day list from the text.
	ErrNoItinerary = errors.New("itinerary: no parsable itinerary in model output")
	// ErrNoEditPayload means the edit reply contained no parsable JSON object.
	ErrNoEditPayload = errors.New("itinerary: no parsable edit payload in model output")
)

var (
	fencedBlockRe = regexp.MustCompile("```(?:json)?\\s*([\\s\\S]*?)```")
	dayHeadingRe  = regexp.MustCompile(`(?i)^[\s#*]*day\b`)
	digitRunRe    = regexp.MustCompile(`\d+`)
)

// ExtractItinerary pulls a day list out of arbitrary model text.
// Strategies in priority order: fenced code block, first balanced top-level
// JSON array, the whole text, then line-oriented heuristic reconstruction.
func ExtractItinerary(text string) ([]DayPlan, error) {
	for _, candidate := range jsonCandidates(text, '[', ']') {
		var days []DayPlan
		if err := json.Unmarshal([]byte(candidate), &days); err == nil && len(days) > 0 {
			return days, nil
		}
	}
	if days := reconstructFromLines(text); len(days) > 0 {
		return days, nil
	}
	return nil, ErrNoItinerary
}

// ExtractEdit pulls a {message, itinerary} object out of arbitrary model text.
// There is no heuristic fallback for edits; the caller substitutes the prior
// itinerary on failure.
func ExtractEdit(text string) (*EditPayload, error) {
	for _, candidate := range jsonCandidates(text, '{', '}') {
		if !strings.HasPrefix(strings.TrimSpace(candidate), "{") {
			continue
		}
		var payload EditPayload
		if err := json.Unmarshal([]byte(candidate), &payload); err == nil {
			return &payload, nil
		}
	}
	return nil, ErrNoEditPayload
}

// jsonCandidates yields the substrings worth trying as JSON, best first.
func jsonCandidates(text string, open, close byte) []string {
	var out []string
	if m := fencedBlockRe.FindStringSubmatch(text); m != nil {
		out = append(out, strings.TrimSpace(m[1]))
	}
	if s := balancedSlice(text, open, close); s != "" {
		out = append(out, s)
	}
	out = append(out, strings.TrimSpace(text))
	return out
}

// balancedSlice returns the first balanced top-level open..close region,
// tracking string literals and escapes so brackets inside values don't
// confuse the depth count.
func balancedSlice(text string, open, close byte) string {
	start := -1
	depth := 0
	inStr := false
	esc := false
	for i := 0; i < len(text); i++ {
		c := text[i]
		if start == -1 {
			if c == open {
				start = i
				depth = 1
			}
			continue
		}
		if esc {
			esc = false
			continue
		}
		switch c {
		case '\\':
			if inStr {
				esc = true
			}
		case '"':
			inStr = !inStr
		case open:
			if !inStr {
				depth++
			}
		case close:
			if !inStr {
				depth--
				if depth == 0 {
					return text[start : i+1]
				}
			}
		}
	}
	return ""
}

// reconstructFromLines rebuilds a day list from plain prose: "Day N" lines
// start a new day, every other line becomes an activity with leading bullet
// characters stripped.
func reconstructFromLines(text string) []DayPlan {
	var days []DayPlan
	var cur *DayPlan

	flush := func() {
		if cur != nil {
			days = append(days, *cur)
			cur = nil
		}
	}

	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.Trim(trimmed, "#=-* \t") == "" {
			continue
		}

		if dayHeadingRe.MatchString(trimmed) {
			flush()
			day, title := parseDayHeading(trimmed, len(days)+1)
			cur = &DayPlan{Day: day, Title: title}
			continue
		}

		if cur == nil {
			continue
		}
		activity := strings.TrimLeft(trimmed, "-*• \t")
		if activity != "" {
			cur.Activities = append(cur.Activities, activity)
		}
	}
	flush()
	return days
}

// parseDayHeading reads the day number from the first run of digits and the
// title from whatever follows it. A heading with no digits takes the next
// sequential number; a heading with no title text falls back to "Day {n}".
func parseDayHeading(line string, nextDay int) (int, string) {
	day := nextDay
	rest := line
	if loc := digitRunRe.FindStringIndex(line); loc != nil {
		if n, err := strconv.Atoi(line[loc[0]:loc[1]]); err == nil && n > 0 {
			day = n
		}
		rest = line[loc[1]:]
	} else if i := strings.Index(strings.ToLower(line), "day"); i >= 0 {
		rest = line[i+len("day"):]
	}

	title := strings.Trim(rest, " \t:—–-.*#")
	if title == "" {
		title = fmt.Sprintf("Day %d", day)
	}
	return day, title
}
