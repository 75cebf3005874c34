package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sjzsdu/vpm/lang"
	"github.com/sjzsdu/vpm/share"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: lang.T("Print version information"),
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", lang.T("vpm version"), share.VERSION)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
