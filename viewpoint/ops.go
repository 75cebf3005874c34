package viewpoint

import (
	"regexp"
	"strings"

	"github.com/sjzsdu/vpm/share"
	"github.com/sjzsdu/vpm/viewpoint/natsort"
)

// MoveResult 移动结果，Before/After 为目标文件夹移动前后的视点数
type MoveResult struct {
	Target  *Node
	Moved   int
	Skipped int
	Before  int
	After   int
}

// MoveNodes 把节点逐个移到目标文件夹末尾。根、目标本身、目标的祖先会被跳过
func (m *Model) MoveNodes(nodes []*Node, target *Node) MoveResult {
	target = m.ResolveTarget(target)
	res := MoveResult{Target: target, Before: target.CountViews()}
	for _, n := range nodes {
		if n == nil || !m.Contains(n) {
			res.Skipped++
			continue
		}
		if err := m.Attach(target, n); err != nil {
			res.Skipped++
			continue
		}
		res.Moved++
	}
	res.After = target.CountViews()
	return res
}

// CloneResult 从来源池复制到树的结果
type CloneResult struct {
	Target  *Node
	Added   int
	Skipped int // 树中已有相同 guid
	Missing int // 池中没有该 guid
	Before  int
	After   int
}

// CloneFromPool 把池中的视点复制到目标文件夹，树中已存在的 guid 跳过
func (m *Model) CloneFromPool(ids []string, target *Node) CloneResult {
	target = m.ResolveTarget(target)
	res := CloneResult{Target: target, Before: target.CountViews()}
	for _, id := range ids {
		src, ok := m.pool.Get(id)
		if !ok {
			res.Missing++
			continue
		}
		if m.Find(id) != nil {
			res.Skipped++
			continue
		}
		if err := target.AddChild(src.Clone()); err != nil {
			res.Skipped++
			continue
		}
		res.Added++
	}
	res.After = target.CountViews()
	return res
}

// CreateFolder 在 parent 下新建文件夹，parent 为视点时建在其父文件夹中
func (m *Model) CreateFolder(parent *Node, name string) (*Node, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	parent = m.ResolveTarget(parent)
	f := NewFolder(name, "")
	if err := parent.AddChild(f); err != nil {
		return nil, err
	}
	return f, nil
}

// Rename 修改节点名称
func (m *Model) Rename(n *Node, name string) error {
	name = strings.TrimSpace(name)
	switch {
	case name == "":
		return ErrEmptyName
	case n == m.root:
		return nodeError(n, ErrRootImmutable)
	case !m.Contains(n):
		return ErrNotFound
	}
	n.Name = name
	return nil
}

// DeleteResult 删除结果
type DeleteResult struct {
	Folders int
	Views   int
	Skipped int
}

// Delete 删除节点及其子树。根和不在树上的节点被跳过
func (m *Model) Delete(nodes []*Node) DeleteResult {
	var res DeleteResult
	for _, n := range nodes {
		if n == nil || n == m.root || !m.Contains(n) {
			res.Skipped++
			continue
		}
		_ = Walk(n, func(c *Node, _ int) error {
			if c.IsFolder() {
				res.Folders++
			} else {
				res.Views++
			}
			return nil
		})
		n.detach()
	}
	return res
}

var countSuffix = regexp.MustCompile(`\s*\(\d+\)\s*$`)

// StripCount 去掉导出时追加的 " (N)" 计数后缀
func StripCount(name string) string {
	return countSuffix.ReplaceAllString(name, "")
}

// Renamed 一次改名记录
type Renamed struct {
	Node *Node
	Old  string
}

// CleanFolderNames 去掉树中所有文件夹名末尾的计数后缀
func (m *Model) CleanFolderNames() []Renamed {
	var out []Renamed
	_ = Walk(m.root, func(n *Node, _ int) error {
		if !n.IsFolder() || n == m.root {
			return nil
		}
		clean := StripCount(n.Name)
		if clean != n.Name && clean != "" {
			out = append(out, Renamed{Node: n, Old: n.Name})
			n.Name = clean
		}
		return nil
	})
	return out
}

// FolderEntry 文件夹及其路径标签，根的标签为空
type FolderEntry struct {
	Label string
	Node  *Node
}

// Folders 按先序列出所有文件夹
func (m *Model) Folders() []FolderEntry {
	var out []FolderEntry
	_ = Walk(m.root, func(n *Node, _ int) error {
		if !n.IsFolder() {
			return SkipChildren
		}
		out = append(out, FolderEntry{Label: n.Path(), Node: n})
		return nil
	})
	return out
}

// FolderByPath 按 "A/B/C" 路径查找文件夹，空路径或 "/" 为根。重名时取第一个
func (m *Model) FolderByPath(path string) (*Node, bool) {
	path = strings.Trim(strings.TrimSpace(path), "/")
	if path == "" {
		return m.root, true
	}
	for _, e := range m.Folders() {
		if e.Label == path {
			return e.Node, true
		}
	}
	return nil, false
}

// FilterPool 返回池中及树中的视点（按 guid 去重，池在前），名称、来源或 guid 包含 text 的保留
func (m *Model) FilterPool(text string) []*Node {
	needle := natsort.Fold(strings.TrimSpace(text))
	seen := make(map[string]bool)
	var out []*Node
	add := func(n *Node) {
		if seen[n.ID] {
			return
		}
		seen[n.ID] = true
		if needle == "" ||
			strings.Contains(natsort.Fold(n.Name), needle) ||
			strings.Contains(natsort.Fold(n.Origin), needle) ||
			strings.Contains(natsort.Fold(n.ID), needle) {
			out = append(out, n)
		}
	}
	for _, n := range m.pool.Views() {
		add(n)
	}
	for n := range m.root.Views() {
		add(n)
	}
	return out
}

// Info 节点详情
type Info struct {
	Kind      Kind
	Name      string
	ID        string
	Origin    string
	Path      string
	InTree    bool
	Views     int
	Preview   string
	Truncated bool
}

// Describe 按 guid 查询节点详情，树优先
func (m *Model) Describe(id string) (Info, error) {
	n, inTree := m.Lookup(id)
	if n == nil {
		return Info{}, ErrNotFound
	}
	info := Info{
		Kind:   n.Kind(),
		Name:   n.Name,
		ID:     n.ID,
		Origin: n.Origin,
		InTree: inTree,
		Views:  n.CountViews(),
	}
	if inTree && n.Parent != nil {
		info.Path = n.Parent.Path()
	}
	info.Preview, info.Truncated = preview(n.Payload, share.INFO_PREVIEW_LIMIT)
	return info, nil
}

func preview(s string, limit int) (string, bool) {
	r := []rune(s)
	if len(r) <= limit {
		return s, false
	}
	return string(r[:limit]), true
}
