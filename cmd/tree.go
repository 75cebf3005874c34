package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sjzsdu/vpm/helper/renders"
	"github.com/sjzsdu/vpm/lang"
	"github.com/sjzsdu/vpm/viewpoint/tree"
)

var treeCmd = &cobra.Command{
	Use:   "tree [flags] <file>...",
	Short: lang.T("Show the merged viewpoint tree"),
	Args:  cobra.MinimumNArgs(1),
	RunE:  runTree,
}

var (
	treeShowIDs     bool
	treeFoldersOnly bool
	treeMaxDepth    int
	treeRender      bool
)

func init() {
	rootCmd.AddCommand(treeCmd)
	treeCmd.Flags().BoolVar(&treeShowIDs, "ids", false, lang.T("Show guids"))
	treeCmd.Flags().BoolVar(&treeFoldersOnly, "folders", false, lang.T("Show folders only"))
	treeCmd.Flags().IntVar(&treeMaxDepth, "depth", 0, lang.T("Maximum depth, 0 for no limit"))
	treeCmd.Flags().BoolVar(&treeRender, "render", false, lang.T("Render a Markdown report in the terminal"))
}

func runTree(cmd *cobra.Command, args []string) error {
	sess := newSession()
	if err := importAll(cmd, sess, args); err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	if treeRender {
		r, err := renders.NewMarkdownRenderer(0)
		if err != nil {
			return err
		}
		return r.Fprint(out, sess.Report())
	}

	fmt.Fprint(out, sess.Tree(tree.Options{
		ShowViews: !treeFoldersOnly,
		ShowIDs:   treeShowIDs,
		MaxDepth:  treeMaxDepth,
	}))
	stats, pool := sess.Stats()
	fmt.Fprintf(out, "%s, %s: %d\n", stats.String(), lang.T("Source viewpoints"), pool)
	return nil
}
