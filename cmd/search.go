package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sjzsdu/vpm/helper"
	"github.com/sjzsdu/vpm/lang"
)

var searchCmd = &cobra.Command{
	Use:   "search [flags] <file>...",
	Short: lang.T("Check which viewpoint names exist in the given files"),
	Args:  cobra.MinimumNArgs(1),
	RunE:  runSearch,
}

var searchCopy bool

func init() {
	rootCmd.AddCommand(searchCmd)
	searchCmd.Flags().StringVar(&mergeNames, "names", "", lang.T("Viewpoint names to look up"))
	searchCmd.Flags().StringVar(&mergeNamesFile, "names-file", "", lang.T("File with viewpoint names, - for stdin"))
	searchCmd.Flags().BoolVar(&searchCopy, "copy", false, lang.T("Copy missing names to the clipboard"))
}

func runSearch(cmd *cobra.Command, args []string) error {
	sess := newSession()
	if err := importAll(cmd, sess, args); err != nil {
		return err
	}
	names, err := readNames(cmd.InOrStdin())
	if err != nil {
		return err
	}
	if names == "" {
		return errors.New(lang.T("No names given"))
	}

	out := cmd.OutOrStdout()
	res := sess.Search(names)
	if res.AllFound() {
		fmt.Fprintln(out, lang.Tf("All {{.Total}} names found", map[string]interface{}{"Total": res.Total}))
		return nil
	}
	fmt.Fprintln(out, lang.Tf("Found {{.Found}} of {{.Total}}", map[string]interface{}{"Found": res.Found, "Total": res.Total}))
	fmt.Fprintln(out, lang.T("Not found")+":")
	missing := strings.Join(res.NotFound, "\n")
	fmt.Fprintln(out, missing)

	if searchCopy {
		if err := helper.CopyToClipboard(missing); err != nil {
			return err
		}
		fmt.Fprintln(out, lang.T("Copied to clipboard"))
	}
	return nil
}
