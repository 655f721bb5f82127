package mcp

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Args is the decoded argument bag of one tool call.
type Args map[string]any

// String returns a string argument exactly as sent. Absent, null and blank values report ok=false.
func (a Args) String(name string) (value string, ok bool, err error) {
	raw, present := a[name]
	if !present || raw == nil {
		return "", false, nil
	}
	s, isString := raw.(string)
	if !isString {
		return "", false, &InvalidArgumentError{Argument: name, Reason: fmt.Sprintf("expected a string, got %T", raw)}
	}
	if strings.TrimSpace(s) == "" {
		return "", false, nil
	}
	return s, true, nil
}

// Ident is String for identifiers such as issue keys and names, with surrounding
// whitespace removed.
func (a Args) Ident(name string) (string, bool, error) {
	s, ok, err := a.String(name)
	return strings.TrimSpace(s), ok, err
}

// Int accepts JSON numbers and numeric strings.
func (a Args) Int(name string, fallback int) (int, error) {
	raw, present := a[name]
	if !present || raw == nil {
		return fallback, nil
	}
	switch v := raw.(type) {
	case float64:
		if v != math.Trunc(v) {
			return 0, &InvalidArgumentError{Argument: name, Reason: "expected an integer"}
		}
		return int(v), nil
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case string:
		if strings.TrimSpace(v) == "" {
			return fallback, nil
		}
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0, &InvalidArgumentError{Argument: name, Reason: fmt.Sprintf("%q is not a number", v)}
		}
		return n, nil
	default:
		return 0, &InvalidArgumentError{Argument: name, Reason: fmt.Sprintf("expected a number, got %T", raw)}
	}
}

// StringList accepts an array of strings or a single comma-separated string.
// Blank entries are dropped.
func (a Args) StringList(name string) ([]string, error) {
	raw, present := a[name]
	if !present || raw == nil {
		return nil, nil
	}

	var items []string
	switch v := raw.(type) {
	case []any:
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, &InvalidArgumentError{Argument: name, Reason: fmt.Sprintf("expected strings, got %T", item)}
			}
			items = append(items, s)
		}
	case []string:
		items = v
	case string:
		items = strings.Split(v, ",")
	default:
		return nil, &InvalidArgumentError{Argument: name, Reason: fmt.Sprintf("expected a list of strings, got %T", raw)}
	}

	out := make([]string, 0, len(items))
	for _, s := range items {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out, nil
}

// present reports whether a required argument carries a usable value.
func (a Args) present(arg Argument) bool {
	raw, ok := a[arg.Name]
	if !ok || raw == nil {
		return false
	}
	if s, isString := raw.(string); isString {
		return strings.TrimSpace(s) != ""
	}
	return true
}
