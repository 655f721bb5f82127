package mcp

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"jira-mcp/internal/adf"
	"jira-mcp/internal/jira"

	"github.com/rs/zerolog/log"
)

func (d *Dispatcher) handleGetIssue(ctx context.Context, args Args) (string, error) {
	key, _, err := args.Ident("issueKey")
	if err != nil {
		return "", err
	}

	issue, err := d.client.GetIssue(ctx, key)
	if err != nil {
		return "", fmt.Errorf("failed to fetch issue %s: %w", key, err)
	}
	return formatIssueDetail(jira.MapIssueDetail(*issue, d.cfg)), nil
}

func (d *Dispatcher) handleSearchIssues(ctx context.Context, args Args) (string, error) {
	jql, _, err := args.String("jql")
	if err != nil {
		return "", err
	}
	maxResults, err := args.Int("maxResults", defaultMaxResults)
	if err != nil {
		return "", err
	}
	if maxResults <= 0 {
		return "", &InvalidArgumentError{Argument: "maxResults", Reason: "must be a positive number"}
	}

	resp, err := d.client.SearchIssues(ctx, jql, maxResults)
	if err != nil {
		return "", fmt.Errorf("search failed: %w", err)
	}

	summaries := make([]jira.IssueSummary, 0, len(resp.Issues))
	for _, item := range resp.Issues {
		summaries = append(summaries, jira.MapIssueSummary(item, d.cfg))
	}
	return formatSearchResults(summaries), nil
}

func (d *Dispatcher) handleGetIssueComments(ctx context.Context, args Args) (string, error) {
	key, _, err := args.Ident("issueKey")
	if err != nil {
		return "", err
	}

	resp, err := d.client.GetComments(ctx, key)
	if err != nil {
		return "", fmt.Errorf("failed to fetch comments for %s: %w", key, err)
	}
	return formatComments(key, jira.MapComments(resp)), nil
}

func (d *Dispatcher) handleGetTransitions(ctx context.Context, args Args) (string, error) {
	key, _, err := args.Ident("issueKey")
	if err != nil {
		return "", err
	}

	items, err := d.client.GetTransitions(ctx, key)
	if err != nil {
		return "", fmt.Errorf("failed to fetch transitions for %s: %w", key, err)
	}
	return formatTransitions(key, jira.MapTransitions(items)), nil
}

// handleUpdateIssue runs the transition phase and the field phase independently.
// A failing phase becomes one line in the report and never stops the other.
func (d *Dispatcher) handleUpdateIssue(ctx context.Context, args Args) (string, error) {
	key, _, err := args.Ident("issueKey")
	if err != nil {
		return "", err
	}

	transition, hasTransition, err := args.Ident("transition")
	if err != nil {
		return "", err
	}
	fields, err := updateFields(args)
	if err != nil {
		return "", err
	}

	if !hasTransition && len(fields) == 0 {
		return fmt.Sprintf("No updates requested for %s.", key), nil
	}

	var outcomes []string
	if hasTransition {
		t, err := d.applyTransition(ctx, key, transition)
		if err != nil {
			log.Warn().Err(err).Str("issue", key).Msg("Transition phase failed")
			outcomes = append(outcomes, "Transition failed: "+err.Error())
		} else {
			outcomes = append(outcomes, fmt.Sprintf("Transition %q applied (status: %s).", t.Name, t.ToStatus))
		}
	}

	if len(fields) > 0 {
		names := make([]string, 0, len(fields))
		for name := range fields {
			names = append(names, name)
		}
		slices.Sort(names)

		if err := d.client.UpdateIssue(ctx, key, fields); err != nil {
			log.Warn().Err(err).Str("issue", key).Msg("Field update phase failed")
			outcomes = append(outcomes, "Field update failed: "+err.Error())
		} else {
			outcomes = append(outcomes, fmt.Sprintf("Fields updated: %s.", strings.Join(names, ", ")))
		}
	}

	return formatUpdateResults(key, outcomes), nil
}

func updateFields(args Args) (map[string]any, error) {
	fields := make(map[string]any)

	if v, ok, err := args.Ident("assignee"); err != nil {
		return nil, err
	} else if ok {
		fields["assignee"] = map[string]any{"emailAddress": v}
	}
	if v, ok, err := args.String("summary"); err != nil {
		return nil, err
	} else if ok {
		fields["summary"] = v
	}
	if v, ok, err := args.String("description"); err != nil {
		return nil, err
	} else if ok {
		fields["description"] = adf.FromText(v)
	}
	if v, ok, err := args.Ident("priority"); err != nil {
		return nil, err
	} else if ok {
		fields["priority"] = map[string]any{"name": v}
	}
	return fields, nil
}

func (d *Dispatcher) applyTransition(ctx context.Context, key, requested string) (jira.Transition, error) {
	items, err := d.client.GetTransitions(ctx, key)
	if err != nil {
		return jira.Transition{}, fmt.Errorf("failed to fetch transitions: %w", err)
	}

	t, err := resolveTransition(key, requested, jira.MapTransitions(items))
	if err != nil {
		return jira.Transition{}, err
	}

	if err := d.client.TransitionIssue(ctx, key, t.ID); err != nil {
		return t, fmt.Errorf("failed to apply transition %q: %w", t.Name, err)
	}
	return t, nil
}

// resolveTransition matches by name (case-insensitive) or by exact ID; the first hit wins.
func resolveTransition(key, requested string, available []jira.Transition) (jira.Transition, error) {
	for _, t := range available {
		if strings.EqualFold(t.Name, requested) || t.ID == requested {
			return t, nil
		}
	}

	names := make([]string, 0, len(available))
	for _, t := range available {
		names = append(names, t.Name)
	}
	return jira.Transition{}, &TransitionNotFoundError{Key: key, Requested: requested, Available: names}
}

func (d *Dispatcher) handleCreateIssue(ctx context.Context, args Args) (string, error) {
	projectKey, _, err := args.Ident("projectKey")
	if err != nil {
		return "", err
	}
	summary, _, err := args.String("summary")
	if err != nil {
		return "", err
	}
	issueType, ok, err := args.Ident("issueType")
	if err != nil {
		return "", err
	}
	if !ok {
		issueType = defaultIssueType
	}

	echo := createdIssue{ProjectKey: projectKey, Summary: summary, IssueType: issueType}
	fields := map[string]any{
		"project":   map[string]any{"key": projectKey},
		"summary":   summary,
		"issuetype": map[string]any{"name": issueType},
	}

	if v, ok, err := args.String("description"); err != nil {
		return "", err
	} else if ok {
		fields["description"] = adf.FromText(v)
		echo.Description = v
	}
	if v, ok, err := args.Ident("priority"); err != nil {
		return "", err
	} else if ok {
		fields["priority"] = map[string]any{"name": v}
		echo.Priority = v
	}
	if v, ok, err := args.Ident("assignee"); err != nil {
		return "", err
	} else if ok {
		fields["assignee"] = map[string]any{"emailAddress": v}
		echo.Assignee = v
	}

	labels, err := args.StringList("labels")
	if err != nil {
		return "", err
	}
	if len(labels) > 0 {
		wrapped := make([]map[string]any, 0, len(labels))
		for _, l := range labels {
			wrapped = append(wrapped, map[string]any{"name": l})
		}
		fields["labels"] = wrapped
		echo.Labels = labels
	}

	created, err := d.client.CreateIssue(ctx, fields)
	if err != nil {
		return "", &CreateIssueError{Err: err, Hints: hintsFor(err.Error())}
	}

	echo.Key = created.Key
	echo.URL = d.cfg.BrowseURL(created.Key)
	log.Info().Str("issue", created.Key).Str("project", projectKey).Msg("Issue created")
	return formatCreatedIssue(echo), nil
}
