package output

import (
	"fmt"
	"strings"

	"github.com/sjzsdu/vpm/helper"
	"github.com/sjzsdu/vpm/viewpoint"
)

// MarkdownExporter 生成视点树的 Markdown 报告
type MarkdownExporter struct {
	model *viewpoint.Model
}

func NewMarkdownExporter(m *viewpoint.Model) *MarkdownExporter {
	return &MarkdownExporter{model: m}
}

// Render 返回报告文本
func (e *MarkdownExporter) Render() (string, Result) {
	var b strings.Builder
	var res Result
	root := e.model.Root()

	fmt.Fprintf(&b, "# %s\n\n", root.Name)
	fmt.Fprintf(&b, "- folders: %d\n- views: %d\n- pool: %d\n\n", countFolders(root), root.CountViews(), e.model.Pool().Len())

	_ = viewpoint.Walk(root, func(n *viewpoint.Node, depth int) error {
		if n == root {
			return nil
		}
		indent := strings.Repeat("  ", depth-1)
		if n.IsFolder() {
			res.Folders++
			fmt.Fprintf(&b, "%s- **%s** (%d)\n", indent, escapeMarkdown(n.Name), n.CountViews())
			return nil
		}
		res.Views++
		fmt.Fprintf(&b, "%s- %s `%s`", indent, escapeMarkdown(n.Name), n.ID)
		if n.Origin != "" {
			fmt.Fprintf(&b, " _%s_", escapeMarkdown(n.Origin))
		}
		b.WriteString("\n")
		return nil
	})
	return b.String(), res
}

func (e *MarkdownExporter) Export(path string) (Result, error) {
	if err := checkEmpty(e.model); err != nil {
		return Result{}, err
	}
	text, res := e.Render()
	res.Path = path
	return res, helper.WriteFileAtomic(path, []byte(text))
}

var markdownEscaper = strings.NewReplacer("*", `\*`, "_", `\_`, "`", "\\`", "[", `\[`, "]", `\]`)

func escapeMarkdown(s string) string {
	return markdownEscaper.Replace(s)
}

func countFolders(root *viewpoint.Node) int {
	count := 0
	_ = viewpoint.Walk(root, func(n *viewpoint.Node, _ int) error {
		if n.IsFolder() && n != root {
			count++
		}
		return nil
	})
	return count
}
