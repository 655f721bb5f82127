package commands

import (
	"encoding/json"
	"fmt"

	"jira-mcp/internal/mcp"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var toolsFormat string

var toolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "Print the tool catalog advertised to MCP clients",
	Args:  cobra.NoArgs,
	PersistentPreRun: skipSetup,
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := renderCatalog(toolsFormat)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
		return err
	},
}

type toolExport struct {
	Name        string         `json:"name" yaml:"name"`
	Description string         `json:"description" yaml:"description"`
	InputSchema map[string]any `json:"inputSchema" yaml:"inputSchema"`
}

func renderCatalog(format string) (string, error) {
	tools := mcp.Catalog()
	exports := make([]toolExport, 0, len(tools))
	for _, d := range tools {
		// Round-trip through JSON so yaml sees the schema's JSON field names.
		raw, err := json.Marshal(d.InputSchema())
		if err != nil {
			return "", fmt.Errorf("failed to encode schema of %s: %w", d.Name, err)
		}
		var schema map[string]any
		if err := json.Unmarshal(raw, &schema); err != nil {
			return "", fmt.Errorf("failed to decode schema of %s: %w", d.Name, err)
		}
		exports = append(exports, toolExport{Name: d.Name, Description: d.Description, InputSchema: schema})
	}

	switch format {
	case "json":
		out, err := json.MarshalIndent(exports, "", "  ")
		return string(out), err
	case "yaml":
		out, err := yaml.Marshal(exports)
		return string(out), err
	default:
		return "", fmt.Errorf("unsupported format %q (use json or yaml)", format)
	}
}

func init() {
	toolsCmd.Flags().StringVarP(&toolsFormat, "format", "f", "json", "output format: json or yaml")
	rootCmd.AddCommand(toolsCmd)
}
