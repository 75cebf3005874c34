package cmd

import (
	"github.com/spf13/cobra"

	"github.com/sjzsdu/vpm/lang"
	"github.com/sjzsdu/vpm/mcpserver"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp [file]...",
	Short: lang.T("MCP Server"),
	Long:  lang.T("Serve viewpoint tools over MCP on stdio"),
	RunE:  runMCP,
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}

func runMCP(cmd *cobra.Command, args []string) error {
	sess := newSession()
	if len(args) > 0 {
		// stdout 用于协议通信，导入结果只记录日志
		sess.Import(cmd.Context(), args)
	}
	return mcpserver.NewViewpointServer(sess).ServeStdio()
}
