package commands

import (
	"fmt"
	"strings"

	"github.com/pkg/browser"
	"github.com/spf13/cobra"
)

var browsePrintOnly bool

var browseCmd = &cobra.Command{
	Use:   "browse <issueKey>",
	Short: "Open an issue in the web browser",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg.Jira.BaseURL == "" {
			return fmt.Errorf("JIRA_BASE_URL is not set")
		}
		url := cfg.Jira.BrowseURL(strings.ToUpper(strings.TrimSpace(args[0])))
		if browsePrintOnly {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), url)
			return err
		}
		return browser.OpenURL(url)
	},
}

func init() {
	browseCmd.Flags().BoolVar(&browsePrintOnly, "print", false, "print the URL instead of opening it")
	rootCmd.AddCommand(browseCmd)
}
