package report

import (
	"fmt"
	"regexp"
	"strings"
)

// forbiddenWords are statement kinds a report may never run. Matched on word
// boundaries so column names like "updated_at" pass.
var forbiddenWords = regexp.MustCompile(`(?i)\b(insert|update|delete|drop|alter|create|truncate|grant|revoke|copy|vacuum|call|do|execute)\b`)

// ValidateReadOnly checks that a stored report statement is a single
// read-only query: it must start with SELECT or WITH, contain no statement
// separator and no data-modifying keyword.
func ValidateReadOnly(sql string) error {
	trimmed := strings.TrimSpace(sql)
	if trimmed == "" {
		return fmt.Errorf("empty statement")
	}

	// A single trailing semicolon is tolerated, anything else suggests
	// statement stacking.
	trimmed = strings.TrimSuffix(trimmed, ";")
	if strings.Contains(trimmed, ";") {
		return fmt.Errorf("multiple statements are not allowed")
	}

	upper := strings.ToUpper(trimmed)
	if !strings.HasPrefix(upper, "SELECT") && !strings.HasPrefix(upper, "WITH") {
		return fmt.Errorf("only SELECT statements are allowed")
	}

	if m := forbiddenWords.FindString(trimmed); m != "" {
		return fmt.Errorf("forbidden keyword: %s", strings.ToLower(m))
	}

	return nil
}
