package mcp

import (
	"encoding/json"

	"github.com/google/jsonschema-go/jsonschema"
)

// Tool names.
const (
	ToolGetIssue         = "get_issue"
	ToolSearchIssues     = "search_issues"
	ToolGetIssueComments = "get_issue_comments"
	ToolGetTransitions   = "get_transitions"
	ToolUpdateIssue      = "update_issue"
	ToolCreateIssue      = "create_issue"
)

const (
	defaultMaxResults = 50
	defaultIssueType  = "Task"
)

// Argument is one named input of a tool.
type Argument struct {
	Name        string
	Type        string // "string", "integer" or "array" (of strings)
	Description string
	Required    bool
	Default     any
}

// ToolDescriptor is the static definition of a callable tool.
type ToolDescriptor struct {
	Name        string
	Description string
	Arguments   []Argument
}

var catalog = []ToolDescriptor{
	{
		Name:        ToolGetIssue,
		Description: "Get details of a Jira issue, including description and extracted acceptance criteria.",
		Arguments: []Argument{
			{Name: "issueKey", Type: "string", Required: true, Description: "The issue key (e.g., PROJ-123)"},
		},
	},
	{
		Name:        ToolSearchIssues,
		Description: "Search Jira issues with a JQL query.",
		Arguments: []Argument{
			{Name: "jql", Type: "string", Required: true, Description: "JQL query (e.g., project = PROJ AND status = \"In Progress\")"},
			{Name: "maxResults", Type: "integer", Default: defaultMaxResults, Description: "Maximum number of issues to return"},
		},
	},
	{
		Name:        ToolGetIssueComments,
		Description: "Get all comments of a Jira issue.",
		Arguments: []Argument{
			{Name: "issueKey", Type: "string", Required: true, Description: "The issue key (e.g., PROJ-123)"},
		},
	},
	{
		Name:        ToolGetTransitions,
		Description: "List the workflow transitions currently available for a Jira issue.",
		Arguments: []Argument{
			{Name: "issueKey", Type: "string", Required: true, Description: "The issue key (e.g., PROJ-123)"},
		},
	},
	{
		Name:        ToolUpdateIssue,
		Description: "Update a Jira issue: move it through a transition and/or change assignee, summary, description or priority.",
		Arguments: []Argument{
			{Name: "issueKey", Type: "string", Required: true, Description: "The issue key (e.g., PROJ-123)"},
			{Name: "transition", Type: "string", Description: "Transition name (case-insensitive) or ID"},
			{Name: "assignee", Type: "string", Description: "Assignee email address"},
			{Name: "summary", Type: "string", Description: "New summary"},
			{Name: "description", Type: "string", Description: "New description (plain text)"},
			{Name: "priority", Type: "string", Description: "Priority name (e.g., High)"},
		},
	},
	{
		Name:        ToolCreateIssue,
		Description: "Create a new Jira issue.",
		Arguments: []Argument{
			{Name: "projectKey", Type: "string", Required: true, Description: "The project key (e.g., PROJ)"},
			{Name: "summary", Type: "string", Required: true, Description: "Issue summary"},
			{Name: "description", Type: "string", Description: "Issue description (plain text)"},
			{Name: "issueType", Type: "string", Default: defaultIssueType, Description: "Issue type name"},
			{Name: "priority", Type: "string", Description: "Priority name (e.g., High)"},
			{Name: "assignee", Type: "string", Description: "Assignee email address"},
			{Name: "labels", Type: "array", Description: "Labels to attach"},
		},
	},
}

// Catalog returns the tool descriptors in their advertised order.
func Catalog() []ToolDescriptor {
	out := make([]ToolDescriptor, len(catalog))
	for i, d := range catalog {
		d.Arguments = append([]Argument(nil), d.Arguments...)
		out[i] = d
	}
	return out
}

// Lookup finds a tool by name.
func Lookup(name string) (ToolDescriptor, bool) {
	for _, d := range catalog {
		if d.Name == name {
			return d, true
		}
	}
	return ToolDescriptor{}, false
}

// Required lists the names of the mandatory arguments.
func (d ToolDescriptor) Required() []string {
	var names []string
	for _, a := range d.Arguments {
		if a.Required {
			names = append(names, a.Name)
		}
	}
	return names
}

// InputSchema renders the argument list as a JSON Schema object.
func (d ToolDescriptor) InputSchema() *jsonschema.Schema {
	schema := &jsonschema.Schema{
		Type:       "object",
		Properties: make(map[string]*jsonschema.Schema, len(d.Arguments)),
		Required:   d.Required(),
	}
	for _, a := range d.Arguments {
		prop := &jsonschema.Schema{Type: a.Type, Description: a.Description}
		if a.Type == "array" {
			prop.Items = &jsonschema.Schema{Type: "string"}
		}
		if a.Default != nil {
			if raw, err := json.Marshal(a.Default); err == nil {
				prop.Default = raw
			}
		}
		schema.Properties[a.Name] = prop
	}
	return schema
}
