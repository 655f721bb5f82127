package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog/log"
)

// ServerName is advertised to MCP clients during initialization.
const ServerName = "jira-mcp"

// Server exposes the Dispatcher over the Model Context Protocol.
type Server struct {
	dispatcher *Dispatcher
	server     *sdk.Server
}

// NewServer registers every catalog tool on a new MCP server.
func NewServer(dispatcher *Dispatcher, version string) *Server {
	s := &Server{
		dispatcher: dispatcher,
		server:     sdk.NewServer(&sdk.Implementation{Name: ServerName, Version: version}, nil),
	}

	for _, d := range Catalog() {
		s.server.AddTool(&sdk.Tool{
			Name:        d.Name,
			Description: d.Description,
			InputSchema: d.InputSchema(),
		}, s.toolHandler(d.Name))
	}

	s.server.AddReceivingMiddleware(s.logRequests, s.catchUnknownTools)
	return s
}

// Run serves MCP over stdin/stdout until the client disconnects or ctx ends.
func (s *Server) Run(ctx context.Context) error {
	return s.server.Run(ctx, &sdk.StdioTransport{})
}

// HTTPHandler serves MCP over the streamable HTTP transport.
func (s *Server) HTTPHandler() http.Handler {
	return sdk.NewStreamableHTTPHandler(func(*http.Request) *sdk.Server {
		return s.server
	}, nil)
}

func (s *Server) toolHandler(name string) sdk.ToolHandler {
	return func(ctx context.Context, req *sdk.CallToolRequest) (*sdk.CallToolResult, error) {
		args, err := decodeArguments(req.Params.Arguments)
		if err != nil {
			return toolResult(Result{Text: RenderError(err), IsError: true}), nil
		}
		return toolResult(s.dispatcher.Invoke(ctx, name, args)), nil
	}
}

// catchUnknownTools answers tools/call for names outside the catalog with the same
// error report a handler failure produces, instead of a JSON-RPC error.
func (s *Server) catchUnknownTools(next sdk.MethodHandler) sdk.MethodHandler {
	return func(ctx context.Context, method string, req sdk.Request) (sdk.Result, error) {
		if method == "tools/call" {
			if call, ok := req.(*sdk.CallToolRequest); ok && call.Params != nil {
				if _, known := Lookup(call.Params.Name); !known {
					return toolResult(s.dispatcher.Invoke(ctx, call.Params.Name, nil)), nil
				}
			}
		}
		return next(ctx, method, req)
	}
}

func (s *Server) logRequests(next sdk.MethodHandler) sdk.MethodHandler {
	return func(ctx context.Context, method string, req sdk.Request) (sdk.Result, error) {
		start := time.Now()
		result, err := next(ctx, method, req)
		if err != nil {
			log.Error().Err(err).Str("method", method).Msg("MCP request failed")
			return result, err
		}

		event := log.Debug()
		if call, ok := req.(*sdk.CallToolRequest); ok && call.Params != nil {
			event = log.Info().Str("tool", call.Params.Name)
		}
		event.Str("method", method).Dur("took", time.Since(start)).Msg("MCP request handled")
		return result, nil
	}
}

func decodeArguments(raw json.RawMessage) (map[string]any, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return map[string]any{}, nil
	}
	var args map[string]any
	if err := json.Unmarshal(trimmed, &args); err != nil {
		return nil, &InvalidArgumentError{Argument: "arguments", Reason: "must be a JSON object"}
	}
	return args, nil
}

func toolResult(r Result) *sdk.CallToolResult {
	return &sdk.CallToolResult{
		Content: []sdk.Content{&sdk.TextContent{Text: r.Text}},
		IsError: r.IsError,
	}
}
