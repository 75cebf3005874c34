package viewpoint

import (
	"github.com/sjzsdu/vpm/share"
)

// Model 整个编辑状态：组织树和来源池
type Model struct {
	root *Node
	pool *Pool
}

func NewModel() *Model {
	return &Model{
		root: NewFolder(share.ROOT_NAME, ""),
		pool: NewPool(),
	}
}

func (m *Model) Root() *Node {
	return m.root
}

func (m *Model) Pool() *Pool {
	return m.pool
}

// Clear 清空树和池，根节点保留
func (m *Model) Clear() {
	for _, child := range m.root.Children {
		child.Parent = nil
	}
	m.root.Children = nil
	m.pool.Reset()
}

// Find 在树中按 guid 查找
func (m *Model) Find(id string) *Node {
	if id == "" {
		return nil
	}
	return m.root.FindByID(id)
}

// Lookup 先查树再查池
func (m *Model) Lookup(id string) (*Node, bool) {
	if n := m.Find(id); n != nil {
		return n, true
	}
	if n, ok := m.pool.Get(id); ok {
		return n, false
	}
	return nil, false
}

// Contains 判断节点是否挂在本模型的树上
func (m *Model) Contains(n *Node) bool {
	return n != nil && n.Root() == m.root
}

// IDs 返回树中 guid 到节点的映射
func (m *Model) IDs() map[string]*Node {
	ids := make(map[string]*Node)
	_ = Walk(m.root, func(n *Node, _ int) error {
		ids[n.ID] = n
		return nil
	})
	return ids
}

// ResolveTarget 把任意选择归一为目标文件夹：空值或不在树上时为根，视点取其父文件夹
func (m *Model) ResolveTarget(n *Node) *Node {
	if n == nil || !m.Contains(n) {
		return m.root
	}
	if !n.IsFolder() {
		if n.Parent == nil {
			return m.root
		}
		return n.Parent
	}
	return n
}

// Attach 把节点移动到 target 末尾。根不能移动，不能移入自身或后代
func (m *Model) Attach(target, n *Node) error {
	if n == m.root {
		return nodeError(n, ErrRootImmutable)
	}
	if !target.IsFolder() {
		return nodeError(target, ErrNotFolder)
	}
	if n == target || n.IsAncestorOf(target) {
		return nodeError(n, ErrCycle)
	}
	n.detach()
	return target.AddChild(n)
}
