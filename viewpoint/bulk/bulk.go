// Package bulk 按名称列表批量移动和查找视点。
package bulk

import (
	"strings"

	"github.com/sjzsdu/vpm/viewpoint"
	"github.com/sjzsdu/vpm/viewpoint/index"
)

// ParseTokens 把输入按空白拆分成名称列表
func ParseTokens(text string) []string {
	return strings.Fields(text)
}

// MoveResult 批量移动结果，Before/After 为目标文件夹的视点数
type MoveResult struct {
	Target   *viewpoint.Node
	Moved    int      // 新挂到目标下的视点数
	Already  int      // 原本就在目标下的视点数
	NotFound []string // 树和池都没有匹配的名称
	Before   int
	After    int
}

// Move 把名称匹配到的视点全部放到目标文件夹下。
// 树中有匹配时只处理树中的视点，已在目标下的不动，其余移入；
// 否则使用池中的匹配，树中已有相同 guid 的移动该节点，没有的复制一份。
// 再次执行相同输入不会产生新的移动。
func Move(m *viewpoint.Model, target *viewpoint.Node, tokens []string) MoveResult {
	target = m.ResolveTarget(target)
	res := MoveResult{Target: target, Before: target.CountViews()}
	ix := index.NewPair(m)

	for _, tok := range tokens {
		if tok == "" {
			continue
		}
		matches, inTree := ix.Lookup(tok)
		if len(matches) == 0 {
			res.NotFound = append(res.NotFound, tok)
			continue
		}
		for _, v := range matches {
			node := v
			if !inTree {
				node = m.Find(v.ID)
			}
			switch {
			case node == nil:
				if err := target.AddChild(v.Clone()); err == nil {
					res.Moved++
				}
			case node.Parent == target:
				res.Already++
			default:
				if err := m.Attach(target, node); err == nil {
					res.Moved++
				}
			}
		}
	}
	res.After = target.CountViews()
	return res
}

// SearchResult 批量查找结果
type SearchResult struct {
	Total    int
	Found    int
	NotFound []string
}

func (r SearchResult) AllFound() bool {
	return len(r.NotFound) == 0
}

// Search 检查每个名称在树或池中是否存在，不修改模型
func Search(m *viewpoint.Model, tokens []string) SearchResult {
	ix := index.NewPair(m)
	var res SearchResult
	for _, tok := range tokens {
		if tok == "" {
			continue
		}
		res.Total++
		if ix.Has(tok) {
			res.Found++
		} else {
			res.NotFound = append(res.NotFound, tok)
		}
	}
	return res
}
