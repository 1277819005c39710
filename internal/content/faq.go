package content

import "strings"

// FilterFAQ returns the FAQ entries matching query, preserving their original
// order. Matching is a case-insensitive substring test over question, answer,
// and tags. A blank query returns every entry.
func (b *Bundle) FilterFAQ(query string) []FAQEntry {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return b.FAQ
	}

	var matches []FAQEntry
	for _, e := range b.FAQ {
		if e.matches(q) {
			matches = append(matches, e)
		}
	}
	return matches
}

func (e FAQEntry) matches(q string) bool {
	if strings.Contains(strings.ToLower(e.Question), q) {
		return true
	}
	if strings.Contains(strings.ToLower(e.Answer), q) {
		return true
	}
	for _, tag := range e.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}
