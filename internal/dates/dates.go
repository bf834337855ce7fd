package dates

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Unparseable is returned when no reliable date can be extracted.
const Unparseable = "unparseable"

var (
	todayRe     = regexp.MustCompile(`(?i)\btoday\b`)
	yesterdayRe = regexp.MustCompile(`(?i)\byesterday\b`)

	// Time-of-day and timezone noise stripped before date recognition.
	leadingAtRe = regexp.MustCompile(`(?i)^at\s+`)
	tzRe        = regexp.MustCompile(`\b(?:GMT|UTC)(?:\s*[+-]\s*\d{1,2}(?::?\d{2})?)?\b|\b[A-Z]{2,5}\b`)
	clockRe     = regexp.MustCompile(`(?i)\b(?:at\s+)?\d{1,2}:\d{2}(?::\d{2})?\s*(?:am|pm)?\b`)
	bareClockRe = regexp.MustCompile(`(?i)\b(?:at\s+)?\d{1,2}\s*(?:am|pm)\b`)
	hrsClockRe  = regexp.MustCompile(`(?i)\b\d{3,4}\s*hrs\b`)
	postedRe    = regexp.MustCompile(`(?i)^\s*posted(?:\s+on)?\s*:?\s*`)
	bulletRe    = regexp.MustCompile(`[•·∙|]+`)

	monthRe        = regexp.MustCompile(`(?i)\b(?:jan(?:uary)?|feb(?:ruary)?|mar(?:ch)?|apr(?:il)?|may|jun(?:e)?|jul(?:y)?|aug(?:ust)?|sep(?:t(?:ember)?)?|oct(?:ober)?|nov(?:ember)?|dec(?:ember)?)\b`)
	timeFragmentRe = regexp.MustCompile(`:\d{2}`)

	numericDateRe = regexp.MustCompile(`^(\d{1,2})[/-](\d{1,2})(?:[/-](\d{2,4}))?$`)

	weekdayPrefixRe = regexp.MustCompile(`(?i)^(?:monday|tuesday|wednesday|thursday|friday|saturday|sunday|mon|tue|tues|wed|thu|thur|thurs|fri|sat|sun)\b`)
)

// StartsWithWeekday reports whether text opens with a weekday name or its
// standard abbreviation. The table walker uses this to recognize date
// heading rows.
func StartsWithWeekday(text string) bool {
	return weekdayPrefixRe.MatchString(text)
}

// Layouts tried for free-text parses once heading noise is stripped. Month
// name forms are handled earlier by the preserving rule, so these cover ISO
// and numeric shapes.
var parseLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"2006-1-2",
	"2006.01.02",
	"01/02/2006",
	"1/2/2006",
	"01-02-2006",
	"1-2-2006",
}

// Layouts tried after appending the reference year to otherwise-unparseable
// text.
var yearAppendedLayouts = []string{
	"01/02 2006",
	"1/2 2006",
	"01-02 2006",
	"1-2 2006",
}

// Normalize converts free-form date text into a canonical date: an ISO
// YYYY-MM-DD string, a preserved human-readable month form when forcing ISO
// would destroy information (such as a missing year), or Unparseable.
//
// The rules run in a fixed order and the first match wins; reordering them
// changes outcomes on ambiguous inputs, so the order is part of the
// contract. The function never fails: any unexpected input degrades to
// Unparseable. Relative terms resolve against the calendar date of now,
// ignoring its time of day.
func Normalize(raw string, now time.Time) string {
	text := strings.TrimSpace(raw)
	if text == "" {
		return Unparseable
	}

	text = strings.Join(strings.Fields(text), " ")

	if todayRe.MatchString(text) {
		return isoDate(now)
	}
	if yesterdayRe.MatchString(text) {
		return isoDate(now.AddDate(0, 0, -1))
	}

	cleaned := stripTimeNoise(text)

	// Month-name text is preserved verbatim rather than forced to ISO: a
	// form like "Dec 20" has no year, and inventing one loses information.
	// A leftover :NN fragment means time stripping failed, so fall through
	// to the general parse instead of preserving garbage.
	if monthRe.MatchString(cleaned) && !timeFragmentRe.MatchString(cleaned) {
		return strings.TrimSpace(strings.TrimRight(cleaned, ","))
	}

	for _, layout := range parseLayouts {
		if t, err := time.Parse(layout, cleaned); err == nil {
			return isoDate(t)
		}
	}

	withYear := fmt.Sprintf("%s %d", cleaned, now.Year())
	for _, layout := range yearAppendedLayouts {
		if t, err := time.Parse(layout, withYear); err == nil {
			return isoDate(t)
		}
	}

	if iso, ok := parseNumericDate(cleaned, now.Year()); ok {
		return iso
	}

	return Unparseable
}

// stripTimeNoise removes time-of-day substrings, timezone abbreviations and
// offsets, leading connector words, and bullet punctuation, leaving only
// the date-bearing text.
func stripTimeNoise(text string) string {
	text = leadingAtRe.ReplaceAllString(text, "")
	text = tzRe.ReplaceAllString(text, " ")
	text = clockRe.ReplaceAllString(text, " ")
	text = bareClockRe.ReplaceAllString(text, " ")
	text = hrsClockRe.ReplaceAllString(text, " ")
	text = postedRe.ReplaceAllString(text, "")
	text = bulletRe.ReplaceAllString(text, " ")
	return strings.TrimSpace(strings.Join(strings.Fields(text), " "))
}

// parseNumericDate accepts M/D or M-D with an optional 2- or 4-digit year,
// defaulting the year to refYear.
func parseNumericDate(text string, refYear int) (string, bool) {
	m := numericDateRe.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}

	month, _ := strconv.Atoi(m[1])
	day, _ := strconv.Atoi(m[2])
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return "", false
	}

	year := refYear
	if m[3] != "" {
		switch len(m[3]) {
		case 2:
			y, _ := strconv.Atoi(m[3])
			year = 2000 + y
		case 4:
			year, _ = strconv.Atoi(m[3])
		default:
			return "", false
		}
	}

	return isoDate(time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)), true
}

func isoDate(t time.Time) string {
	y, m, d := t.Date()
	return fmt.Sprintf("%04d-%02d-%02d", y, m, d)
}
