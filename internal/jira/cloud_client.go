package jira

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/google/go-querystring/query"
	"github.com/rs/zerolog/log"
)

var (
	issueFields  = []string{"summary", "status", "assignee", "priority", "created", "updated", "description", "issuetype", "reporter", "parent"}
	searchFields = []string{"summary", "status", "assignee", "priority", "created", "updated"}
)

type issueOptions struct {
	Fields []string `url:"fields,comma"`
	Expand string   `url:"expand,omitempty"`
}

type searchOptions struct {
	JQL        string   `url:"jql"`
	MaxResults int      `url:"maxResults"`
	Fields     []string `url:"fields,comma"`
}

type commentOptions struct {
	Expand string `url:"expand,omitempty"`
}

type cloudClient struct {
	cfg        Config
	httpClient *http.Client
}

// NewCloudClient returns a Client for Jira Cloud REST v3 using email + API token auth.
func NewCloudClient(cfg Config) Client {
	return &cloudClient{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

// request describes one outbound call relative to APIBase.
type request struct {
	Method string
	Path   string
	Query  any
	Body   any
}

func (c *cloudClient) newRequest(ctx context.Context, r request) (*http.Request, error) {
	method := r.Method
	if method == "" {
		method = http.MethodGet
	}

	target := c.cfg.APIBase() + r.Path
	if r.Query != nil {
		values, err := query.Values(r.Query)
		if err != nil {
			return nil, fmt.Errorf("failed to encode query for %s: %w", r.Path, err)
		}
		if encoded := values.Encode(); encoded != "" {
			target += "?" + encoded
		}
	}

	var body io.Reader
	if r.Body != nil {
		payload, err := json.Marshal(r.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode body for %s: %w", r.Path, err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, err
	}

	credential := base64.StdEncoding.EncodeToString([]byte(c.cfg.Email + ":" + c.cfg.APIToken))
	req.Header.Set("Authorization", "Basic "+credential)
	req.Header.Set("Accept", "application/json")
	if method != http.MethodGet {
		req.Header.Set("Content-Type", "application/json")
	}
	return req, nil
}

// do performs a single round trip and decodes a 2xx body into out when out is non-nil.
func (c *cloudClient) do(ctx context.Context, r request, out any) error {
	req, err := c.newRequest(ctx, r)
	if err != nil {
		return err
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to reach Jira: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read Jira response: %w", err)
	}

	log.Debug().
		Str("method", req.Method).
		Str("path", r.Path).
		Int("status", resp.StatusCode).
		Dur("took", time.Since(start)).
		Msg("Jira request")

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return newAPIError(req.Method, r.Path, resp, body)
	}

	if out == nil || len(bytes.TrimSpace(body)) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to decode Jira response: %w", err)
	}
	return nil
}

func issuePath(key string, suffix string) string {
	return "/issue/" + url.PathEscape(key) + suffix
}

func (c *cloudClient) GetIssue(ctx context.Context, key string) (*IssueDTO, error) {
	var issue IssueDTO
	err := c.do(ctx, request{
		Path:  issuePath(key, ""),
		Query: issueOptions{Fields: issueFields, Expand: "renderedFields"},
	}, &issue)
	if err != nil {
		return nil, err
	}
	return &issue, nil
}

func (c *cloudClient) SearchIssues(ctx context.Context, jql string, maxResults int) (*SearchResponse, error) {
	log.Debug().Str("jql", jql).Int("maxResults", maxResults).Msg("Jira search details")

	var result SearchResponse
	err := c.do(ctx, request{
		Path:  "/search",
		Query: searchOptions{JQL: jql, MaxResults: maxResults, Fields: searchFields},
	}, &result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *cloudClient) GetComments(ctx context.Context, key string) (*CommentsResponse, error) {
	var result CommentsResponse
	err := c.do(ctx, request{
		Path:  issuePath(key, "/comment"),
		Query: commentOptions{Expand: "renderedBody"},
	}, &result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *cloudClient) GetTransitions(ctx context.Context, key string) ([]TransitionDTO, error) {
	var result transitionsResponse
	if err := c.do(ctx, request{Path: issuePath(key, "/transitions")}, &result); err != nil {
		return nil, err
	}
	return result.Transitions, nil
}

func (c *cloudClient) TransitionIssue(ctx context.Context, key, transitionID string) error {
	return c.do(ctx, request{
		Method: http.MethodPost,
		Path:   issuePath(key, "/transitions"),
		Body: map[string]any{
			"transition": map[string]any{"id": transitionID},
		},
	}, nil)
}

func (c *cloudClient) UpdateIssue(ctx context.Context, key string, fields map[string]any) error {
	return c.do(ctx, request{
		Method: http.MethodPut,
		Path:   issuePath(key, ""),
		Body:   map[string]any{"fields": fields},
	}, nil)
}

func (c *cloudClient) CreateIssue(ctx context.Context, fields map[string]any) (*CreatedIssueDTO, error) {
	var created CreatedIssueDTO
	err := c.do(ctx, request{
		Method: http.MethodPost,
		Path:   "/issue",
		Body:   map[string]any{"fields": fields},
	}, &created)
	if err != nil {
		return nil, err
	}
	return &created, nil
}
