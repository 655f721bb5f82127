package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"jira-mcp/internal/mcp"

	"github.com/charmbracelet/glamour"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var callArgs string

var callCmd = &cobra.Command{
	Use:   "call <tool>",
	Short: "Run a single tool against Jira and print its report",
	Example: `  jira-mcp call get_issue --args '{"issueKey":"PROJ-123"}'
  jira-mcp call search_issues --args '{"jql":"assignee = currentUser()","maxResults":10}'`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		toolArgs, err := parseCallArgs(callArgs)
		if err != nil {
			return err
		}

		res := mcp.NewDispatcher(jiraClient, cfg.Jira).Invoke(cmd.Context(), args[0], toolArgs)

		text := res.Text
		if isatty.IsTerminal(os.Stdout.Fd()) {
			text = renderMarkdown(text)
		}
		fmt.Fprintln(cmd.OutOrStdout(), text)

		if res.IsError {
			return fmt.Errorf("tool %s reported an error", args[0])
		}
		return nil
	},
}

func parseCallArgs(raw string) (map[string]any, error) {
	args := map[string]any{}
	if raw == "" {
		return args, nil
	}
	if err := json.Unmarshal([]byte(raw), &args); err != nil {
		return nil, fmt.Errorf("--args must be a JSON object: %w", err)
	}
	return args, nil
}

// renderMarkdown falls back to the plain report when the renderer fails.
func renderMarkdown(text string) string {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		log.Debug().Err(err).Msg("Markdown renderer unavailable")
		return text
	}
	out, err := r.Render(text)
	if err != nil {
		log.Debug().Err(err).Msg("Markdown rendering failed")
		return text
	}
	return out
}

func init() {
	callCmd.Flags().StringVarP(&callArgs, "args", "a", "", "tool arguments as a JSON object")
	rootCmd.AddCommand(callCmd)
}
