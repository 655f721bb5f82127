package mcp

import (
	"fmt"
	"strings"
)

// ErrorMarker prefixes every error report returned to the caller.
const ErrorMarker = "Error: "

// UnknownOperationError is returned for a tool name outside the catalog.
type UnknownOperationError struct {
	Name string
}

func (e *UnknownOperationError) Error() string {
	return fmt.Sprintf("unknown tool %q", e.Name)
}

// MissingArgumentError is returned when a required argument is absent or empty.
type MissingArgumentError struct {
	Tool     string
	Argument string
}

func (e *MissingArgumentError) Error() string {
	return fmt.Sprintf("%s requires argument %q", e.Tool, e.Argument)
}

// InvalidArgumentError is returned when an argument has the wrong shape.
type InvalidArgumentError struct {
	Argument string
	Reason   string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalid argument %q: %s", e.Argument, e.Reason)
}

// TransitionNotFoundError is returned when a requested transition matches neither
// the name nor the ID of any transition available on the issue.
type TransitionNotFoundError struct {
	Key       string
	Requested string
	Available []string
}

func (e *TransitionNotFoundError) Error() string {
	msg := fmt.Sprintf("transition %q not found for %s", e.Requested, e.Key)
	if len(e.Available) == 0 {
		return msg + " (no transitions available)"
	}
	return msg + ". Available transitions: " + strings.Join(e.Available, ", ")
}

// RenderError is the single place where an error becomes report text.
func RenderError(err error) string {
	return ErrorMarker + err.Error()
}

// CreateIssueError carries the remote failure of an issue creation plus hints
// chosen by keywords in the remote message.
type CreateIssueError struct {
	Err   error
	Hints []string
}

func (e *CreateIssueError) Error() string {
	msg := "failed to create issue: " + e.Err.Error()
	if len(e.Hints) == 0 {
		return msg
	}
	return msg + "\n\nHints:\n- " + strings.Join(e.Hints, "\n- ")
}

func (e *CreateIssueError) Unwrap() error {
	return e.Err
}

var createHints = []struct {
	keywords []string
	hint     string
}{
	{[]string{"project"}, "Check that the project key exists and that you can create issues in it."},
	{[]string{"issuetype", "issue type"}, "Check that the issue type exists in this project (e.g., Task, Bug, Story)."},
	{[]string{"priority"}, "Check that the priority name is valid (e.g., Highest, High, Medium, Low, Lowest)."},
	{[]string{"assignee"}, "Check that the assignee email belongs to a user assignable in this project."},
}

// hintsFor matches case-insensitively; each hint is added at most once.
func hintsFor(message string) []string {
	lower := strings.ToLower(message)
	var hints []string
	for _, h := range createHints {
		for _, kw := range h.keywords {
			if strings.Contains(lower, kw) {
				hints = append(hints, h.hint)
				break
			}
		}
	}
	return hints
}
