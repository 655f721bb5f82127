package jira

import (
	"encoding/json"
	"time"
)

// SearchResponse is the top-level container for Jira search results.
type SearchResponse struct {
	StartAt    int        `json:"startAt"`
	MaxResults int        `json:"maxResults"`
	Total      int        `json:"total"`
	Issues     []IssueDTO `json:"issues"`
}

// IssueDTO represents a single issue as returned by /issue/{key} and /search.
type IssueDTO struct {
	ID             string             `json:"id"`
	Key            string             `json:"key"`
	Fields         FieldsDTO          `json:"fields"`
	RenderedFields *RenderedFieldsDTO `json:"renderedFields,omitempty"`
}

// FieldsDTO contains the specific fields we care about.
type FieldsDTO struct {
	Summary   string     `json:"summary"`
	Status    *NamedDTO  `json:"status"`
	Assignee  *UserDTO   `json:"assignee"`
	Reporter  *UserDTO   `json:"reporter"`
	Priority  *NamedDTO  `json:"priority"`
	IssueType *NamedDTO  `json:"issuetype"`
	Parent    *ParentDTO `json:"parent"`
	Created   string     `json:"created"`
	Updated   string     `json:"updated"`

	// Description is an ADF document on API v3, a plain string on v2, or null.
	Description json.RawMessage `json:"description"`
}

// RenderedFieldsDTO holds the HTML rendering requested with expand=renderedFields.
type RenderedFieldsDTO struct {
	Description string `json:"description"`
}

// NamedDTO covers status, priority, issue type and any other {id, name} object.
type NamedDTO struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name"`
}

// UserDTO is the subset of a Jira user we display.
type UserDTO struct {
	AccountID    string `json:"accountId,omitempty"`
	DisplayName  string `json:"displayName"`
	EmailAddress string `json:"emailAddress,omitempty"`
}

// ParentDTO is the parent (epic or story) of an issue.
type ParentDTO struct {
	Key    string `json:"key"`
	Fields struct {
		Summary string `json:"summary"`
	} `json:"fields"`
}

// CommentsResponse is the page returned by /issue/{key}/comment.
type CommentsResponse struct {
	StartAt    int          `json:"startAt"`
	MaxResults int          `json:"maxResults"`
	Total      int          `json:"total"`
	Comments   []CommentDTO `json:"comments"`
}

// CommentDTO is a single issue comment.
type CommentDTO struct {
	ID           string          `json:"id"`
	Author       *UserDTO        `json:"author"`
	Body         json.RawMessage `json:"body"`
	RenderedBody string          `json:"renderedBody,omitempty"`
	Created      string          `json:"created"`
}

// TransitionDTO is one outbound edge of the issue's current workflow status.
type TransitionDTO struct {
	ID   string   `json:"id"`
	Name string   `json:"name"`
	To   NamedDTO `json:"to"`
}

type transitionsResponse struct {
	Transitions []TransitionDTO `json:"transitions"`
}

// CreatedIssueDTO is the response of POST /issue.
type CreatedIssueDTO struct {
	ID   string `json:"id"`
	Key  string `json:"key"`
	Self string `json:"self"`
}

// errorBody is Jira's standard error payload.
type errorBody struct {
	ErrorMessages []string          `json:"errorMessages"`
	Errors        map[string]string `json:"errors"`
}

// ParseTime is a helper for the strict Jira time format.
func ParseTime(s string) (time.Time, error) {
	return time.Parse("2006-01-02T15:04:05.000-0700", s)
}
