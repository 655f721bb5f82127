package jira

import (
	"jira-mcp/internal/acceptance"
	"jira-mcp/internal/adf"
)

// IssueSummary is the flattened view of an issue used in search results.
type IssueSummary struct {
	Key      string
	Summary  string
	Status   string
	Assignee string
	Priority string
	Created  string
	Updated  string
	URL      string
}

// IssueDetail extends IssueSummary with the fields shown by a single-issue lookup.
type IssueDetail struct {
	IssueSummary
	IssueType          string
	Reporter           string
	Parent             string
	Description        string
	AcceptanceCriteria []string
}

// Comment is a single comment ready for display.
type Comment struct {
	Author  string
	Created string
	Body    string
}

// Transition is one status change currently available on an issue.
type Transition struct {
	ID       string
	Name     string
	ToStatus string
}

// MapIssueSummary transforms a Jira DTO into an IssueSummary.
func MapIssueSummary(item IssueDTO, cfg Config) IssueSummary {
	f := item.Fields
	return IssueSummary{
		Key:      item.Key,
		Summary:  f.Summary,
		Status:   nameOr(f.Status, "Unknown"),
		Assignee: displayNameOr(f.Assignee, "Unassigned"),
		Priority: nameOr(f.Priority, "None"),
		Created:  f.Created,
		Updated:  f.Updated,
		URL:      cfg.BrowseURL(item.Key),
	}
}

// MapIssueDetail transforms a Jira DTO into an IssueDetail and extracts its acceptance
// criteria. The rendered description wins over the raw one when Jira returned both.
func MapIssueDetail(item IssueDTO, cfg Config) IssueDetail {
	detail := IssueDetail{
		IssueSummary: MapIssueSummary(item, cfg),
		IssueType:    nameOr(item.Fields.IssueType, ""),
		Reporter:     displayNameOr(item.Fields.Reporter, ""),
	}

	if p := item.Fields.Parent; p != nil && p.Key != "" {
		detail.Parent = p.Key
		if p.Fields.Summary != "" {
			detail.Parent += " - " + p.Fields.Summary
		}
	}

	if item.RenderedFields != nil && item.RenderedFields.Description != "" {
		detail.Description = adf.HTMLToText(item.RenderedFields.Description)
	} else {
		detail.Description = adf.ToText(item.Fields.Description)
	}
	detail.AcceptanceCriteria = acceptance.Extract(detail.Description)

	return detail
}

// MapComments keeps the remote order; Jira returns comments oldest first.
func MapComments(resp *CommentsResponse) []Comment {
	if resp == nil {
		return nil
	}
	comments := make([]Comment, 0, len(resp.Comments))
	for _, c := range resp.Comments {
		body := adf.HTMLToText(c.RenderedBody)
		if body == "" {
			body = adf.ToText(c.Body)
		}
		comments = append(comments, Comment{
			Author:  displayNameOr(c.Author, "Unknown"),
			Created: c.Created,
			Body:    body,
		})
	}
	return comments
}

// MapTransitions converts the transitions payload.
func MapTransitions(items []TransitionDTO) []Transition {
	out := make([]Transition, 0, len(items))
	for _, t := range items {
		out = append(out, Transition{ID: t.ID, Name: t.Name, ToStatus: t.To.Name})
	}
	return out
}

func nameOr(n *NamedDTO, fallback string) string {
	if n == nil || n.Name == "" {
		return fallback
	}
	return n.Name
}

func displayNameOr(u *UserDTO, fallback string) string {
	if u == nil || u.DisplayName == "" {
		return fallback
	}
	return u.DisplayName
}
