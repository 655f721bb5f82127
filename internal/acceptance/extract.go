// Package acceptance pulls acceptance criteria out of free-form issue descriptions.
//
// The extraction is a heuristic, not a parser. Five matchers run independently over the
// text and every hit is kept in the order it was found, matcher by matcher. A description
// that matches several matchers contributes each distinct string once.
package acceptance

import (
	"regexp"
	"strings"
)

type matcher struct {
	re *regexp.Regexp
	// group selects the submatch used as the criterion; 0 is the whole match.
	group int
}

var matchers = []matcher{
	// "Acceptance Criteria:" section, up to the next blank line.
	{re: regexp.MustCompile(`(?is)acceptance criteria:?[ \t]*.*?(?:\n[ \t]*\n|\z)`)},
	// "AC:" section, up to the next blank line.
	{re: regexp.MustCompile(`(?is)\bAC:[ \t]*.*?(?:\n[ \t]*\n|\z)`)},
	// Given ... When ... Then ... on a single line.
	{re: regexp.MustCompile(`(?i)\bgiven\b[^\n]*?\bwhen\b[^\n]*?\bthen\b[^\n]*`)},
	// - [ ] item / * [x] item
	{re: regexp.MustCompile(`(?m)^[ \t]*[-*][ \t]+\[[ xX]?\][ \t]*(.+)$`), group: 1},
	// - item / * item / • item, excluding checkbox lines
	{re: regexp.MustCompile(`(?m)^[ \t]*[-*•][ \t]+([^\[\s].*)$`), group: 1},
}

var labelPrefix = regexp.MustCompile(`(?i)^(?:acceptance criteria:?|AC:)\s*`)

// Extract returns the acceptance criteria found in text, deduplicated in first-seen order.
// It returns an empty, non-nil slice when nothing matches.
func Extract(text string) []string {
	criteria := []string{}
	if strings.TrimSpace(text) == "" {
		return criteria
	}

	seen := make(map[string]bool)
	for _, m := range matchers {
		for _, sub := range m.re.FindAllStringSubmatch(text, -1) {
			cleaned := clean(sub[m.group])
			if cleaned == "" || seen[cleaned] {
				continue
			}
			seen[cleaned] = true
			criteria = append(criteria, cleaned)
		}
	}
	return criteria
}

func clean(match string) string {
	match = strings.TrimSpace(match)
	match = labelPrefix.ReplaceAllString(match, "")
	return strings.TrimSpace(match)
}
