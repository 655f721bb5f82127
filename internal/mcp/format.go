package mcp

import (
	"fmt"
	"strings"
	"time"

	"jira-mcp/internal/jira"
)

// FormatDate renders a Jira timestamp as a calendar date (M/D/YYYY).
// Values that do not parse are returned unchanged.
func FormatDate(s string) string {
	if s == "" {
		return ""
	}
	t, err := jira.ParseTime(s)
	if err != nil {
		if t, err = time.Parse(time.RFC3339, s); err != nil {
			return s
		}
	}
	return t.Format("1/2/2006")
}

func formatIssueDetail(d jira.IssueDetail) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("# %s: %s\n\n", d.Key, d.Summary))
	sb.WriteString(fmt.Sprintf("**Status:** %s\n", d.Status))
	sb.WriteString(fmt.Sprintf("**Assignee:** %s\n", d.Assignee))
	sb.WriteString(fmt.Sprintf("**Priority:** %s\n", d.Priority))
	if d.IssueType != "" {
		sb.WriteString(fmt.Sprintf("**Type:** %s\n", d.IssueType))
	}
	if d.Reporter != "" {
		sb.WriteString(fmt.Sprintf("**Reporter:** %s\n", d.Reporter))
	}
	if d.Parent != "" {
		sb.WriteString(fmt.Sprintf("**Parent:** %s\n", d.Parent))
	}
	sb.WriteString(fmt.Sprintf("**URL:** %s\n\n", d.URL))

	sb.WriteString("## Description\n\n")
	if d.Description == "" {
		sb.WriteString("No description\n\n")
	} else {
		sb.WriteString(d.Description + "\n\n")
	}

	sb.WriteString("## Acceptance Criteria\n\n")
	if len(d.AcceptanceCriteria) == 0 {
		sb.WriteString("None found\n\n")
	} else {
		for i, c := range d.AcceptanceCriteria {
			sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, c))
		}
		sb.WriteString("\n")
	}

	sb.WriteString(fmt.Sprintf("**Created:** %s\n", FormatDate(d.Created)))
	sb.WriteString(fmt.Sprintf("**Updated:** %s", FormatDate(d.Updated)))
	return sb.String()
}

func formatSearchResults(issues []jira.IssueSummary) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d issues:", len(issues)))
	for _, i := range issues {
		sb.WriteString(fmt.Sprintf("\n\n**%s**: %s\n", i.Key, i.Summary))
		sb.WriteString(fmt.Sprintf("Status: %s | Assignee: %s | Priority: %s\n", i.Status, i.Assignee, i.Priority))
		sb.WriteString(fmt.Sprintf("URL: %s", i.URL))
	}
	return sb.String()
}

func formatComments(key string, comments []jira.Comment) string {
	if len(comments) == 0 {
		return fmt.Sprintf("No comments found for %s.", key)
	}

	blocks := make([]string, 0, len(comments))
	for _, c := range comments {
		blocks = append(blocks, fmt.Sprintf("**%s** (%s):\n%s", c.Author, FormatDate(c.Created), c.Body))
	}
	return fmt.Sprintf("Comments for %s (%d):\n\n", key, len(comments)) + strings.Join(blocks, "\n\n---\n\n")
}

func formatTransitionLine(t jira.Transition) string {
	return fmt.Sprintf("**%s** (ID: %s) -> %s", t.Name, t.ID, t.ToStatus)
}

func formatTransitions(key string, transitions []jira.Transition) string {
	if len(transitions) == 0 {
		return fmt.Sprintf("No transitions available for %s.", key)
	}

	lines := make([]string, 0, len(transitions)+1)
	lines = append(lines, fmt.Sprintf("Available transitions for %s:", key))
	for _, t := range transitions {
		lines = append(lines, formatTransitionLine(t))
	}
	return strings.Join(lines, "\n")
}

func formatUpdateResults(key string, outcomes []string) string {
	return fmt.Sprintf("Update results for %s:\n", key) + strings.Join(outcomes, "\n")
}

// createdIssue echoes what was submitted next to the new key.
type createdIssue struct {
	Key         string
	URL         string
	ProjectKey  string
	Summary     string
	IssueType   string
	Priority    string
	Assignee    string
	Labels      []string
	Description string
}

func formatCreatedIssue(c createdIssue) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Created issue %s\n", c.Key))
	sb.WriteString(fmt.Sprintf("URL: %s\n\n", c.URL))
	sb.WriteString(fmt.Sprintf("Project: %s\n", c.ProjectKey))
	sb.WriteString(fmt.Sprintf("Summary: %s\n", c.Summary))
	sb.WriteString(fmt.Sprintf("Issue Type: %s", c.IssueType))
	if c.Priority != "" {
		sb.WriteString(fmt.Sprintf("\nPriority: %s", c.Priority))
	}
	if c.Assignee != "" {
		sb.WriteString(fmt.Sprintf("\nAssignee: %s", c.Assignee))
	}
	if len(c.Labels) > 0 {
		sb.WriteString(fmt.Sprintf("\nLabels: %s", strings.Join(c.Labels, ", ")))
	}
	if c.Description != "" {
		sb.WriteString(fmt.Sprintf("\nDescription: %s", c.Description))
	}
	return sb.String()
}
