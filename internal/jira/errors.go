package jira

import (
	"encoding/json"
	"fmt"
	"net/http"
	"slices"
	"strings"
)

// APIError is a non-2xx answer from Jira.
type APIError struct {
	Method     string
	Path       string
	StatusCode int
	RetryAfter string

	// Messages are Jira's errorMessages followed by "field: message" entries.
	Messages []string
}

func (e *APIError) Error() string {
	var base string
	switch e.StatusCode {
	case http.StatusBadRequest:
		base = "bad request (HTTP 400)"
	case http.StatusUnauthorized:
		base = "authentication failed (HTTP 401). Please check JIRA_EMAIL and JIRA_API_TOKEN"
	case http.StatusForbidden:
		base = "access denied (HTTP 403)"
	case http.StatusNotFound:
		base = "not found or no permission (HTTP 404)"
	case http.StatusTooManyRequests:
		base = "rate limit exceeded (HTTP 429)"
		if e.RetryAfter != "" {
			base += fmt.Sprintf(", retry after %s seconds", e.RetryAfter)
		}
	default:
		base = fmt.Sprintf("Jira API returned status %d", e.StatusCode)
	}

	if len(e.Messages) == 0 {
		return base
	}
	return base + ": " + strings.Join(e.Messages, "; ")
}

func newAPIError(method, path string, resp *http.Response, body []byte) *APIError {
	apiErr := &APIError{
		Method:     method,
		Path:       path,
		StatusCode: resp.StatusCode,
		RetryAfter: resp.Header.Get("Retry-After"),
	}

	var eb errorBody
	if err := json.Unmarshal(body, &eb); err != nil {
		if text := strings.TrimSpace(string(body)); text != "" && len(text) < 512 {
			apiErr.Messages = []string{text}
		}
		return apiErr
	}

	apiErr.Messages = append(apiErr.Messages, eb.ErrorMessages...)
	fields := make([]string, 0, len(eb.Errors))
	for f := range eb.Errors {
		fields = append(fields, f)
	}
	slices.Sort(fields)
	for _, f := range fields {
		apiErr.Messages = append(apiErr.Messages, f+": "+eb.Errors[f])
	}
	return apiErr
}
