package cmd

import (
	"github.com/spf13/cobra"

	"github.com/sjzsdu/vpm/cmdio"
	"github.com/sjzsdu/vpm/lang"
)

var shellCmd = &cobra.Command{
	Use:   "shell [file]...",
	Short: lang.T("Organize viewpoints interactively"),
	RunE:  runShell,
}

var shellMarkdown bool

func init() {
	rootCmd.AddCommand(shellCmd)
	shellCmd.Flags().BoolVar(&shellMarkdown, "markdown", false, lang.T("Render Markdown output"))
}

func runShell(cmd *cobra.Command, args []string) error {
	sess := newSession()
	if len(args) > 0 {
		if err := importAll(cmd, sess, args); err != nil {
			return err
		}
	}

	opts := []cmdio.SessionOption{
		cmdio.WithWelcome(lang.T("Viewpoint shell. Type help for commands, exit to quit.")),
	}
	if shellMarkdown {
		r, err := cmdio.NewMarkdownRenderer(cmd.OutOrStdout())
		if err != nil {
			return err
		}
		opts = append(opts, cmdio.WithRenderer(r))
	} else {
		opts = append(opts, cmdio.WithRenderer(cmdio.NewTextRenderer(cmd.OutOrStdout())))
	}

	return cmdio.NewInteractiveSession(cmdio.NewShellProcessor(sess), opts...).Start(cmd.Context())
}
