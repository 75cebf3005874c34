package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sjzsdu/vpm/lang"
	"github.com/sjzsdu/vpm/session"
	"github.com/sjzsdu/vpm/viewpoint/merge"
)

var mergeCmd = &cobra.Command{
	Use:   "merge [flags] <file>...",
	Short: lang.T("Merge viewpoint files into one export"),
	Long: lang.T("Import viewpoint XML files, optionally move viewpoints by name into a folder, " +
		"sort and clean folder names, then export. The output extension selects the format: .xml, .md or .pdf"),
	Args: cobra.MinimumNArgs(1),
	RunE: runMerge,
}

var (
	mergeOutput    string
	mergeTarget    string
	mergeNames     string
	mergeNamesFile string
	mergeSort      string
	mergeClean     bool
	mergeFont      string
)

func init() {
	rootCmd.AddCommand(mergeCmd)
	mergeCmd.Flags().StringVarP(&mergeOutput, "out", "o", "merged_viewpoints.xml", lang.T("Output file name"))
	mergeCmd.Flags().StringVarP(&mergeTarget, "target", "t", "", lang.T("Target folder path for --names, created when missing"))
	mergeCmd.Flags().StringVar(&mergeNames, "names", "", lang.T("Viewpoint names to move into the target folder"))
	mergeCmd.Flags().StringVar(&mergeNamesFile, "names-file", "", lang.T("File with viewpoint names, - for stdin"))
	mergeCmd.Flags().StringVar(&mergeSort, "sort", "", lang.T("Sort the root folder: nat_asc, nat_desc or guid"))
	mergeCmd.Flags().BoolVar(&mergeClean, "clean-names", false, lang.T("Strip \" (N)\" counts from folder names before export"))
	mergeCmd.Flags().StringVar(&mergeFont, "font", "", lang.T("TTF font for PDF reports"))
}

func runMerge(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	sess := newSession()
	sess.SetFontPath(mergeFont)

	if err := importAll(cmd, sess, args); err != nil {
		return err
	}

	names, err := readNames(cmd.InOrStdin())
	if err != nil {
		return err
	}
	if names != "" {
		target, err := ensureFolder(sess, mergeTarget)
		if err != nil {
			return err
		}
		res, err := sess.BulkMove(target, names)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, lang.Tf("Moved {{.Moved}}, already in place {{.Already}}. Folder views: {{.Before}} → {{.After}}", map[string]interface{}{
			"Moved":   res.Moved,
			"Already": res.Already,
			"Before":  res.Before,
			"After":   res.After,
		}))
		if len(res.NotFound) > 0 {
			fmt.Fprintf(out, "%s: %s\n", lang.T("Not found"), strings.Join(res.NotFound, " "))
		}
	}

	if mergeSort != "" {
		if _, err := sess.Sort("", mergeSort); err != nil {
			return err
		}
	}
	if mergeClean {
		sess.CleanNames()
	}

	res, err := sess.Export(mergeOutput)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, lang.Tf("Exported {{.Views}} viewpoints in {{.Folders}} folders to {{.Path}}", map[string]interface{}{
		"Views":   res.Views,
		"Folders": res.Folders,
		"Path":    res.Path,
	}))
	return nil
}

// importAll 导入文件并打印每个文件的结果，全部失败时返回错误
func importAll(cmd *cobra.Command, sess *session.Session, paths []string) error {
	failed := 0
	for _, o := range sess.Import(cmd.Context(), paths) {
		if o.Status != merge.StatusOK {
			failed++
			fmt.Fprintf(cmd.ErrOrStderr(), "✗ %s: %v\n", o.Path, o.Err)
			continue
		}
		r := o.Result
		fmt.Fprintf(cmd.OutOrStdout(), "✓ %s\n", lang.Tf("{{.File}}: {{.Layout}}, tree +{{.Tree}} (skipped {{.TreeSkipped}}), source list +{{.Pool}} (skipped {{.PoolSkipped}})", map[string]interface{}{
			"File":        o.Source,
			"Layout":      r.Layout.String(),
			"Tree":        len(r.TreeViews),
			"TreeSkipped": r.TreeSkipped,
			"Pool":        len(r.PoolAdded),
			"PoolSkipped": r.PoolSkipped,
		}))
		if names := slices.Concat(r.TreeViews, r.PoolAdded); len(names) > 0 {
			fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", briefNames(names))
		}
	}
	if failed == len(paths) {
		return errors.New(lang.T("No file could be imported"))
	}
	return nil
}

// briefNames 超过 10 个名称时只保留前五个和后五个
func briefNames(names []string) string {
	if len(names) <= 10 {
		return strings.Join(names, ", ")
	}
	return strings.Join(names[:5], ", ") + ", ..., " + strings.Join(names[len(names)-5:], ", ")
}

func readNames(stdin io.Reader) (string, error) {
	names := mergeNames
	switch mergeNamesFile {
	case "":
	case "-":
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", err
		}
		names += "\n" + string(data)
	default:
		data, err := os.ReadFile(mergeNamesFile)
		if err != nil {
			return "", err
		}
		names += "\n" + string(data)
	}
	return strings.TrimSpace(names), nil
}

// ensureFolder 按 "A/B" 路径逐级查找或创建文件夹，返回路径
func ensureFolder(sess *session.Session, path string) (string, error) {
	path = strings.Trim(strings.TrimSpace(path), "/")
	if path == "" {
		return "", nil
	}
	existing := make(map[string]bool)
	for _, f := range sess.Folders() {
		existing[f] = true
	}
	parts := strings.Split(path, "/")
	cur := ""
	for _, part := range parts {
		next := part
		if cur != "" {
			next = cur + "/" + part
		}
		if !existing[next] {
			if _, err := sess.MkDir(cur, part); err != nil {
				return "", err
			}
			existing[next] = true
		}
		cur = next
	}
	return cur, nil
}
