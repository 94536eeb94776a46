package models

import "time"

// issueDateLayouts are the accepted wire formats for issue dates. Forms send
// plain dates; some older rows carry full timestamps.
var issueDateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02 15:04:05",
}

// FormatIssueDate renders a stored issue date as a long-form date
// ("May 1, 2024"). Unparseable values pass through unchanged.
func FormatIssueDate(value string) string {
	if value == "" {
		return ""
	}
	for _, layout := range issueDateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.Format("January 2, 2006")
		}
	}
	return value
}
