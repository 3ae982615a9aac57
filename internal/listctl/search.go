package listctl

import (
	"strings"

	"golang.org/x/text/cases"
)

// matcher tests records against a folded free-text query.
type matcher struct {
	caser  cases.Caser
	query  string
	fields []string
}

// newMatcher folds query once; the empty query matches every record.
func newMatcher(query string, fields []string) *matcher {
	caser := cases.Fold()
	return &matcher{
		caser:  caser,
		query:  caser.String(query),
		fields: fields,
	}
}

// Match reports whether any searchable field contains the query.
func (m *matcher) Match(r Record) bool {
	if m.query == "" {
		return true
	}
	for _, field := range m.fields {
		if strings.Contains(m.caser.String(r.Text(field)), m.query) {
			return true
		}
	}
	return false
}

// Filter returns the matching records in their original order.
func Filter(records []Record, query string, fields []string) []Record {
	m := newMatcher(query, fields)
	out := make([]Record, 0, len(records))
	for _, r := range records {
		if m.Match(r) {
			out = append(out, r)
		}
	}
	return out
}
