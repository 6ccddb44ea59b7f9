package query

import (
	"strconv"
	"strings"
	"time"
)

// comparableLayout is the 8-digit YYYYMMDD form every date predicate is
// evaluated in. It compares correctly as a plain string.
const comparableLayout = "20060102"

// DateRange is a closed [Start, End] range in comparable YYYYMMDD form.
type DateRange struct {
	Start string
	End   string
}

// literalLayouts are tried in order when a date token is not one of the named
// buckets. The original API accepted permissively parsed dates.
var literalLayouts = []string{
	"2006-01-02",
	"02-Jan-2006",
	"02-Jan-06",
	"2006/01/02",
	"01/02/2006",
}

// ParseDateWindow resolves a free-form date token into a literal time window.
// Recognized tokens (case-insensitive): today, week, month, year, total, or a
// literal calendar date yielding a 1-day window. "total" and anything
// unparseable report ok=false, which callers must treat as "no filter".
func ParseDateWindow(token string, now time.Time) (start, end time.Time, ok bool) {
	token = strings.TrimSpace(strings.ToLower(token))
	if token == "" || token == "total" {
		return time.Time{}, time.Time{}, false
	}

	switch token {
	case "today":
		end = now
		start = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	case "week":
		end = now
		start = now.AddDate(0, 0, -7)
	case "month":
		end = now
		start = now.AddDate(0, 0, -30)
	case "year":
		end = now
		start = now.AddDate(0, 0, -365)
	default:
		parsed, literalOK := parseLiteralDate(token)
		if !literalOK {
			return time.Time{}, time.Time{}, false
		}
		start = parsed
		end = parsed.AddDate(0, 0, 1)
	}

	return start, end, true
}

// ParseDateToken is ParseDateWindow rendered in comparable YYYYMMDD form, for
// predicates over the text-encoded creation date.
func ParseDateToken(token string, now time.Time) *DateRange {
	start, end, ok := ParseDateWindow(token, now)
	if !ok {
		return nil
	}
	return &DateRange{
		Start: start.Format(comparableLayout),
		End:   end.Format(comparableLayout),
	}
}

func parseLiteralDate(s string) (time.Time, bool) {
	for _, layout := range literalLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// NormalizeISODate strips the separators from a YYYY-MM-DD string, returning
// the comparable YYYYMMDD form, or "" when the input does not conform.
// Explicit caller-supplied ranges go through here and take precedence over
// named tokens.
func NormalizeISODate(s string) string {
	s = strings.TrimSpace(s)
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t.Format(comparableLayout)
	}
	// Already comparable form
	if len(s) == 8 {
		if _, err := strconv.Atoi(s); err == nil {
			return s
		}
	}
	return ""
}

// isoDate validates a YYYY-MM-DD string and returns it unchanged, or "" when
// it does not conform. The typed processing_date column takes this form
// directly, unlike the legacy text column which needs the comparable form.
func isoDate(s string) string {
	s = strings.TrimSpace(s)
	if _, err := time.Parse("2006-01-02", s); err != nil {
		return ""
	}
	return s
}

// ExtractNumeric scrubs a free-form weight/currency text down to its numeric
// magnitude: everything except digits and a single decimal point is dropped,
// a leading bare point is repaired to "0." and a trailing bare point is
// stripped. Returns false when no numeric value remains.
func ExtractNumeric(s string) (float64, bool) {
	var b strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}
	cleaned := b.String()
	if strings.Count(cleaned, ".") > 1 || !strings.ContainsAny(cleaned, "0123456789") {
		return 0, false
	}
	if strings.HasPrefix(cleaned, ".") {
		cleaned = "0" + cleaned
	}
	cleaned = strings.TrimSuffix(cleaned, ".")
	if cleaned == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
