package viewpoint

import (
	"slices"

	"github.com/sjzsdu/vpm/viewpoint/natsort"
)

// SortResult 排序结果
type SortResult struct {
	Groups int // 涉及的父文件夹数
	Count  int // 参与排序的节点数
	Mode   natsort.Mode
}

type keyed struct {
	node *Node
	key  natsort.Key
}

func sortNodes(nodes []*Node, mode natsort.Mode) {
	items := make([]keyed, len(nodes))
	for i, n := range nodes {
		items[i] = keyed{node: n}
		if mode != natsort.ByID {
			items[i].key = natsort.KeyOf(n.Name)
		}
	}
	slices.SortStableFunc(items, func(a, b keyed) int {
		// 文件夹总在视点之前
		if a.node.IsFolder() != b.node.IsFolder() {
			if a.node.IsFolder() {
				return -1
			}
			return 1
		}
		switch mode {
		case natsort.ByID:
			return natsort.CompareID(a.node.ID, b.node.ID)
		case natsort.NaturalDesc:
			return natsort.CompareKeys(b.key, a.key)
		default:
			return natsort.CompareKeys(a.key, b.key)
		}
	})
	for i := range items {
		nodes[i] = items[i].node
	}
}

// SortChildren 对文件夹的直接子节点排序，文件夹排在视点前
func (m *Model) SortChildren(folder *Node, mode natsort.Mode) SortResult {
	folder = m.ResolveTarget(folder)
	sortNodes(folder.Children, mode)
	return SortResult{Groups: 1, Count: len(folder.Children), Mode: mode}
}

// SortSelected 只对选中的视点排序，结果写回它们原来占据的位置，其余子节点不动。
// 选中项按父文件夹分组分别处理，文件夹和根被忽略
func (m *Model) SortSelected(nodes []*Node, mode natsort.Mode) SortResult {
	res := SortResult{Mode: mode}
	groups := make(map[*Node][]*Node)
	var parents []*Node
	seen := make(map[*Node]bool)
	for _, n := range nodes {
		if n == nil || n.IsFolder() || n.Parent == nil || seen[n] || !m.Contains(n) {
			continue
		}
		seen[n] = true
		if _, ok := groups[n.Parent]; !ok {
			parents = append(parents, n.Parent)
		}
		groups[n.Parent] = append(groups[n.Parent], n)
	}

	for _, parent := range parents {
		var slots []int
		var picked []*Node
		for i, c := range parent.Children {
			if seen[c] {
				slots = append(slots, i)
				picked = append(picked, c)
			}
		}
		sortNodes(picked, mode)
		for i, slot := range slots {
			parent.Children[slot] = picked[i]
		}
		res.Groups++
		res.Count += len(picked)
	}
	return res
}
