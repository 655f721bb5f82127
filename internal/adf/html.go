package adf

import (
	"html"
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var (
	// Whitespace around block tags is source formatting, not content.
	blockSpace  = regexp.MustCompile(`(?i)\s*(</?(?:p|div|h[1-6]|ul|ol|li|tr|table|thead|tbody|blockquote|pre)\b[^>]*>|<br\s*/?>)\s*`)
	itemPara    = regexp.MustCompile(`(?i)(<li[^>]*>)<p[^>]*>|</p>(</li>)`)
	listItemTag = regexp.MustCompile(`(?i)<li[^>]*>`)
	lineEnd     = regexp.MustCompile(`(?i)<br\s*/?>|</tr>`)
	blockEnd    = regexp.MustCompile(`(?i)</(?:p|div|h[1-6]|ul|ol|table|blockquote|pre)>`)
	blankRuns   = regexp.MustCompile(`\n{3,}`)

	stripAll = bluemonday.StrictPolicy()
)

// HTMLToText turns Jira's rendered HTML (renderedFields, renderedBody) into plain text.
// Blocks are separated by a blank line and list items sit on adjacent "- " lines,
// the same layout DocumentText gives the ADF source.
func HTMLToText(s string) string {
	if strings.TrimSpace(s) == "" {
		return ""
	}
	s = blockSpace.ReplaceAllString(s, "$1")
	s = itemPara.ReplaceAllString(s, "$1$2")
	s = listItemTag.ReplaceAllString(s, "\n- ")
	s = lineEnd.ReplaceAllString(s, "\n")
	s = blockEnd.ReplaceAllString(s, "\n\n")
	s = stripAll.Sanitize(s)
	return normalize(html.UnescapeString(s))
}

func normalize(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, " \t")
	}
	s = strings.Join(lines, "\n")
	s = blankRuns.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}
