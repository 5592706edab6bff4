// Package extract provides best-effort metadata extraction from raw log
// lines: a timestamp, a UUID-shaped correlation id, and a numeric session
// id. Each extraction is independent and never fails; absence of a match
// simply returns a false presence flag.
package extract

import (
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	// Timestamp patterns tried in order. The first captures a DD/MM/YYYY
	// date inside a bracketed prefix like "[10/04/2025 | ...]", the second
	// a full date-time with either a space or T separator.
	tsPatterns = []*regexp.Regexp{
		regexp.MustCompile(`\[(\d{2}/\d{2}/\d{4}).*?\|`),
		regexp.MustCompile(`(\d{4}-\d{2}-\d{2}[ T]\d{2}:\d{2}:\d{2})`),
	}

	dayFirstRe = regexp.MustCompile(`^\d{2}/\d{2}/\d{4}$`)

	uuidRe = regexp.MustCompile(`(?i)[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}`)

	sessionRe = regexp.MustCompile(`(?i)session id[:\s]\s*(\d+)`)
)

// isoLayout is the normalized ISO-8601 form with a T separator.
const isoLayout = "2006-01-02T15:04:05"

// Timestamp extracts a timestamp from the line and normalizes it to
// ISO-8601 with a T separator. When the matched text cannot be parsed into
// a real calendar instant, the matched text is still returned: extraction
// succeeds at the pattern level, and consumers must tolerate a
// non-parseable timestamp string.
func Timestamp(line string) (string, bool) {
	for _, re := range tsPatterns {
		m := re.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		val := m[1]

		if dayFirstRe.MatchString(val) {
			t, err := time.Parse("02/01/2006", val)
			if err != nil {
				return val, true
			}
			return t.Format(isoLayout), true
		}

		return strings.Replace(val, " ", "T", 1), true
	}
	return "", false
}

// CorrelationID extracts a UUID-shaped token (8-4-4-4-12 hex groups,
// case-insensitive). The raw matched text is returned unchanged.
func CorrelationID(line string) (string, bool) {
	m := uuidRe.FindString(line)
	if m == "" {
		return "", false
	}
	if _, err := uuid.Parse(m); err != nil {
		return "", false
	}
	return m, true
}

// SessionID extracts the decimal number following the phrase "session id",
// separated by a colon or whitespace.
func SessionID(line string) (string, bool) {
	m := sessionRe.FindStringSubmatch(line)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// instantLayouts are the layouts accepted by ParseInstant, ordered by
// likelihood.
var instantLayouts = []string{
	isoLayout,
	"2006-01-02T15:04:05.000",
	time.RFC3339,
	"2006-01-02",
}

// ParseInstant parses an extracted timestamp string into a concrete
// instant. A space separator is tolerated. Malformed input is not an
// error: callers branch on the presence flag, never on a failure value.
func ParseInstant(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	s = strings.Replace(s, " ", "T", 1)
	for _, layout := range instantLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
