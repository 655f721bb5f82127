package mcp

import (
	"context"
	"fmt"
	"time"

	"jira-mcp/internal/jira"

	"github.com/rs/zerolog/log"
)

type handlerFunc func(ctx context.Context, args Args) (string, error)

// Dispatcher routes a tool call by name to its handler.
type Dispatcher struct {
	client   jira.Client
	cfg      jira.Config
	handlers map[string]handlerFunc
}

// Result is the text outcome of one tool call.
type Result struct {
	Text    string
	IsError bool
}

// NewDispatcher wires the six tool handlers to a Jira client.
func NewDispatcher(client jira.Client, cfg jira.Config) *Dispatcher {
	d := &Dispatcher{client: client, cfg: cfg}
	d.handlers = map[string]handlerFunc{
		ToolGetIssue:         d.handleGetIssue,
		ToolSearchIssues:     d.handleSearchIssues,
		ToolGetIssueComments: d.handleGetIssueComments,
		ToolGetTransitions:   d.handleGetTransitions,
		ToolUpdateIssue:      d.handleUpdateIssue,
		ToolCreateIssue:      d.handleCreateIssue,
	}
	return d
}

// Call runs a tool and returns its report, or a typed error.
// Required arguments are checked against the catalog before the handler runs.
func (d *Dispatcher) Call(ctx context.Context, name string, args map[string]any) (string, error) {
	desc, ok := Lookup(name)
	handler, hasHandler := d.handlers[name]
	if !ok || !hasHandler {
		return "", &UnknownOperationError{Name: name}
	}

	a := Args(args)
	if a == nil {
		a = Args{}
	}
	for _, arg := range desc.Arguments {
		if arg.Required && !a.present(arg) {
			return "", &MissingArgumentError{Tool: name, Argument: arg.Name}
		}
	}

	return handler(ctx, a)
}

// Invoke is Call behind the failure boundary: every error, panics included,
// comes back as report text starting with ErrorMarker.
func (d *Dispatcher) Invoke(ctx context.Context, name string, args map[string]any) (res Result) {
	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			log.Error().Str("tool", name).Interface("panic", r).Msg("Tool handler panicked")
			res = Result{Text: RenderError(fmt.Errorf("internal error: %v", r)), IsError: true}
		}
	}()

	text, err := d.Call(ctx, name, args)
	if err != nil {
		log.Warn().Err(err).Str("tool", name).Dur("took", time.Since(start)).Msg("Tool call failed")
		return Result{Text: RenderError(err), IsError: true}
	}

	log.Debug().Str("tool", name).Dur("took", time.Since(start)).Msg("Tool call completed")
	return Result{Text: text}
}
