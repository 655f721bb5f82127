// Package adf converts between Atlassian Document Format and plain text.
//
// Only the subset of ADF that shows up in issue descriptions and comments is handled.
// Unknown nodes fall back to their children, so text is never silently dropped.
package adf

import (
	"encoding/json"
	"strconv"
	"strings"
)

// ToText renders a raw description or comment body as plain text. The body may be an ADF
// document, a plain JSON string (API v2 payloads) or null.
func ToText(raw json.RawMessage) string {
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" || trimmed == "null" {
		return ""
	}

	if strings.HasPrefix(trimmed, `"`) {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return ""
		}
		return strings.TrimSpace(s)
	}

	var doc map[string]any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return ""
	}
	return DocumentText(doc)
}

// DocumentText renders a decoded ADF document as plain text.
func DocumentText(doc map[string]any) string {
	return normalize(renderBlocks(children(doc), 0))
}

func renderBlocks(nodes []map[string]any, depth int) string {
	parts := make([]string, 0, len(nodes))
	for _, n := range nodes {
		if s := renderBlock(n, depth); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, "\n\n")
}

func renderBlock(node map[string]any, depth int) string {
	switch nodeType(node) {
	case "paragraph", "heading":
		return renderInline(children(node))
	case "bulletList":
		return renderList(node, depth, func(int) string { return "- " })
	case "orderedList":
		return renderList(node, depth, func(i int) string { return strconv.Itoa(i+1) + ". " })
	case "taskList":
		return renderTaskList(node, depth)
	case "codeBlock":
		return renderInline(children(node))
	case "blockquote":
		inner := renderBlocks(children(node), depth)
		lines := strings.Split(inner, "\n")
		for i, l := range lines {
			lines[i] = "> " + l
		}
		return strings.Join(lines, "\n")
	case "rule":
		return "---"
	case "text", "hardBreak", "mention", "emoji", "inlineCard", "date", "status":
		return renderInline([]map[string]any{node})
	default:
		return renderBlocks(children(node), depth)
	}
}

func renderList(node map[string]any, depth int, marker func(int) string) string {
	indent := strings.Repeat("  ", depth)
	var lines []string
	for i, item := range children(node) {
		var text []string
		var nested []string
		for _, c := range children(item) {
			switch nodeType(c) {
			case "bulletList", "orderedList", "taskList":
				nested = append(nested, renderBlock(c, depth+1))
			default:
				text = append(text, renderBlock(c, depth+1))
			}
		}
		lines = append(lines, indent+marker(i)+strings.Join(text, " "))
		lines = append(lines, nested...)
	}
	return strings.Join(lines, "\n")
}

func renderTaskList(node map[string]any, depth int) string {
	indent := strings.Repeat("  ", depth)
	var lines []string
	for _, item := range children(node) {
		if nodeType(item) == "taskList" {
			lines = append(lines, renderTaskList(item, depth+1))
			continue
		}
		box := "[ ]"
		if attrs, ok := item["attrs"].(map[string]any); ok && attrs["state"] == "DONE" {
			box = "[x]"
		}
		lines = append(lines, indent+"- "+box+" "+renderInline(children(item)))
	}
	return strings.Join(lines, "\n")
}

func renderInline(nodes []map[string]any) string {
	var sb strings.Builder
	for _, n := range nodes {
		attrs, _ := n["attrs"].(map[string]any)
		switch nodeType(n) {
		case "text":
			s, _ := n["text"].(string)
			sb.WriteString(s)
		case "hardBreak":
			sb.WriteString("\n")
		case "mention", "status":
			s, _ := attrs["text"].(string)
			sb.WriteString(s)
		case "emoji":
			if s, ok := attrs["text"].(string); ok && s != "" {
				sb.WriteString(s)
			} else if s, ok := attrs["shortName"].(string); ok {
				sb.WriteString(s)
			}
		case "inlineCard":
			s, _ := attrs["url"].(string)
			sb.WriteString(s)
		case "date":
			s, _ := attrs["timestamp"].(string)
			sb.WriteString(s)
		default:
			sb.WriteString(renderInline(children(n)))
		}
	}
	return sb.String()
}

// FromText wraps plain text in a minimal ADF document. Blank lines start a new paragraph,
// single newlines become hard breaks.
func FromText(text string) map[string]any {
	content := []any{}
	for _, para := range strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n\n") {
		para = strings.Trim(para, "\n")
		if strings.TrimSpace(para) == "" {
			continue
		}
		var inline []any
		for i, line := range strings.Split(para, "\n") {
			if i > 0 {
				inline = append(inline, map[string]any{"type": "hardBreak"})
			}
			if line != "" {
				inline = append(inline, map[string]any{"type": "text", "text": line})
			}
		}
		content = append(content, map[string]any{
			"type":    "paragraph",
			"content": inline,
		})
	}

	return map[string]any{
		"type":    "doc",
		"version": 1,
		"content": content,
	}
}

func nodeType(node map[string]any) string {
	t, _ := node["type"].(string)
	return t
}

func children(node map[string]any) []map[string]any {
	raw, ok := node["content"].([]any)
	if !ok {
		return nil
	}
	out := make([]map[string]any, 0, len(raw))
	for _, c := range raw {
		if m, ok := c.(map[string]any); ok {
			out = append(out, m)
		}
	}
	return out
}
