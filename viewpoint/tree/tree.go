package tree

import (
	"fmt"
	"strings"

	"github.com/sjzsdu/vpm/viewpoint"
)

// Options 渲染选项
type Options struct {
	ShowViews bool // 是否显示视点
	ShowIDs   bool // 是否在名称后附 guid
	MaxDepth  int  // 0 表示不限制
}

// DefaultOptions 显示视点，不显示 guid
func DefaultOptions() Options {
	return Options{ShowViews: true}
}

// Tree 生成树状结构的字符串表示，类似于 Unix tree 命令
func Tree(node *viewpoint.Node) string {
	return TreeWithOptions(node, DefaultOptions())
}

// TreeWithOptions 生成带选项的树状结构，文件夹后附视点数
func TreeWithOptions(node *viewpoint.Node, opts Options) string {
	if node == nil {
		return ""
	}
	var result strings.Builder
	buildTree(node, &result, "", true, true, opts, 0)
	return result.String()
}

// buildTree 递归构建树状结构，保持子节点原有顺序
func buildTree(node *viewpoint.Node, result *strings.Builder, prefix string, isLast bool, isRoot bool,
	opts Options, depth int) {

	if !isRoot {
		if isLast {
			result.WriteString(prefix + "└── ")
		} else {
			result.WriteString(prefix + "├── ")
		}
	}

	if node.IsFolder() {
		result.WriteString(fmt.Sprintf("%s/ [%d]", node.Name, node.CountViews()))
	} else {
		result.WriteString(node.Name)
	}
	if opts.ShowIDs {
		result.WriteString(" <" + node.ID + ">")
	}
	result.WriteString("\n")

	if !node.IsFolder() || (opts.MaxDepth > 0 && depth >= opts.MaxDepth) {
		return
	}

	children := make([]*viewpoint.Node, 0, len(node.Children))
	for _, child := range node.Children {
		if opts.ShowViews || child.IsFolder() {
			children = append(children, child)
		}
	}

	var newPrefix string
	if isRoot {
		newPrefix = ""
	} else if isLast {
		newPrefix = prefix + "    "
	} else {
		newPrefix = prefix + "│   "
	}

	for i, child := range children {
		buildTree(child, result, newPrefix, i == len(children)-1, false, opts, depth+1)
	}
}
