package report

import "strings"

// Matches implements the summary search box's matching rules: an empty
// query matches everything; otherwise the query must appear as a
// case-insensitive substring, as a prefix of the word initials ("ose"
// matches "Office Supplies Expenses"), or as an in-order walk of the
// query's characters across word starts.
func Matches(text, query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	t := strings.ToLower(text)
	if strings.Contains(t, q) {
		return true
	}

	words := splitWords(t)
	if len(words) == 0 {
		return false
	}

	var initials strings.Builder
	for _, w := range words {
		initials.WriteByte(w[0])
	}
	if strings.HasPrefix(initials.String(), q) {
		return true
	}

	// Walk the query across word starts in order.
	qi := 0
	for _, w := range words {
		if qi >= len(q) {
			break
		}
		if w[0] == q[qi] {
			qi++
		}
	}
	return qi >= len(q)
}

// splitWords breaks text into runs of ASCII letters and digits.
func splitWords(t string) []string {
	return strings.FieldsFunc(t, func(r rune) bool {
		switch {
		case r >= 'a' && r <= 'z':
			return false
		case r >= '0' && r <= '9':
			return false
		default:
			return true
		}
	})
}
