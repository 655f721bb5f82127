package jira

import (
	"context"
	"strings"
	"time"
)

// Client is the interface for interacting with Jira.
type Client interface {
	GetIssue(ctx context.Context, key string) (*IssueDTO, error)
	SearchIssues(ctx context.Context, jql string, maxResults int) (*SearchResponse, error)
	GetComments(ctx context.Context, key string) (*CommentsResponse, error)
	GetTransitions(ctx context.Context, key string) ([]TransitionDTO, error)
	TransitionIssue(ctx context.Context, key, transitionID string) error
	UpdateIssue(ctx context.Context, key string, fields map[string]any) error
	CreateIssue(ctx context.Context, fields map[string]any) (*CreatedIssueDTO, error)
}

// Config holds the authentication and connection settings for Jira.
type Config struct {
	BaseURL  string
	Email    string
	APIToken string

	// Timeout bounds a single round trip. Zero means no timeout.
	Timeout time.Duration
}

// APIBase is the REST v3 root every request is built against.
func (c Config) APIBase() string {
	return strings.TrimRight(c.BaseURL, "/") + "/rest/api/3"
}

// BrowseURL is the human-facing link to an issue.
func (c Config) BrowseURL(key string) string {
	return strings.TrimRight(c.BaseURL, "/") + "/browse/" + key
}

// NewClient creates a new Jira client based on the provided configuration.
func NewClient(cfg Config) Client {
	return NewCloudClient(cfg)
}
