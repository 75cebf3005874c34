package viewpoint

import (
	"iter"
	"slices"
	"strings"

	"github.com/google/uuid"
)

// Kind 节点类型
type Kind int

const (
	KindFolder Kind = iota
	KindView
)

func (k Kind) String() string {
	if k == KindFolder {
		return "folder"
	}
	return "view"
}

// Node 树中的文件夹或视点
type Node struct {
	Name     string
	ID       string
	Payload  string  // 视点的原始 XML 片段，文件夹为空
	Origin   string  // 来源文件名
	Children []*Node // 仅文件夹有子节点
	Parent   *Node

	kind Kind
}

// NewID 生成新的 guid
func NewID() string {
	return uuid.NewString()
}

// NewFolder 创建文件夹节点，id 为空时自动生成
func NewFolder(name, id string) *Node {
	if id == "" {
		id = NewID()
	}
	return &Node{Name: name, ID: id, kind: KindFolder}
}

// NewView 创建视点节点，id 为空时自动生成
func NewView(name, id, payload, origin string) *Node {
	if id == "" {
		id = NewID()
	}
	return &Node{Name: name, ID: id, Payload: payload, Origin: origin, kind: KindView}
}

func (n *Node) Kind() Kind {
	return n.kind
}

func (n *Node) IsFolder() bool {
	return n.kind == KindFolder
}

// Clone 复制一个视点节点，不带父节点。文件夹会连同子树一起复制
func (n *Node) Clone() *Node {
	c := &Node{Name: n.Name, ID: n.ID, Payload: n.Payload, Origin: n.Origin, kind: n.kind}
	for _, child := range n.Children {
		cc := child.Clone()
		cc.Parent = c
		c.Children = append(c.Children, cc)
	}
	return c
}

// AddChild 追加子节点。child 原有的父节点需要调用方先解除
func (n *Node) AddChild(child *Node) error {
	return n.InsertChild(len(n.Children), child)
}

// InsertChild 在指定位置插入子节点，位置越界时追加到末尾
func (n *Node) InsertChild(pos int, child *Node) error {
	if !n.IsFolder() {
		return nodeError(n, ErrNotFolder)
	}
	if child == n || child.IsAncestorOf(n) {
		return nodeError(child, ErrCycle)
	}
	if pos < 0 || pos > len(n.Children) {
		pos = len(n.Children)
	}
	child.Parent = n
	n.Children = slices.Insert(n.Children, pos, child)
	return nil
}

// RemoveChild 移除直接子节点，返回是否找到
func (n *Node) RemoveChild(child *Node) bool {
	i := slices.Index(n.Children, child)
	if i < 0 {
		return false
	}
	n.Children = slices.Delete(n.Children, i, i+1)
	child.Parent = nil
	return true
}

// detach 从父节点上摘下
func (n *Node) detach() {
	if n.Parent != nil {
		n.Parent.RemoveChild(n)
	}
}

// IsAncestorOf 判断 n 是否是 other 的祖先，不含自身
func (n *Node) IsAncestorOf(other *Node) bool {
	for p := other.Parent; p != nil; p = p.Parent {
		if p == n {
			return true
		}
	}
	return false
}

// Root 返回所在树的根
func (n *Node) Root() *Node {
	r := n
	for r.Parent != nil {
		r = r.Parent
	}
	return r
}

// FindByID 在子树中按 guid 查找，包含自身
func (n *Node) FindByID(id string) *Node {
	if n.ID == id {
		return n
	}
	for _, child := range n.Children {
		if found := child.FindByID(id); found != nil {
			return found
		}
	}
	return nil
}

// Views 按深度优先顺序惰性遍历子树中的视点。视点节点本身会产出自己
func (n *Node) Views() iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		n.yieldViews(yield)
	}
}

func (n *Node) yieldViews(yield func(*Node) bool) bool {
	if !n.IsFolder() {
		return yield(n)
	}
	for _, child := range n.Children {
		if !child.yieldViews(yield) {
			return false
		}
	}
	return true
}

// CountViews 统计子树中的视点数，视点本身计为 1
func (n *Node) CountViews() int {
	if !n.IsFolder() {
		return 1
	}
	total := 0
	for _, child := range n.Children {
		total += child.CountViews()
	}
	return total
}

// Depth 根的深度为 0
func (n *Node) Depth() int {
	d := 0
	for p := n.Parent; p != nil; p = p.Parent {
		d++
	}
	return d
}

// Path 返回从根下第一层开始的文件夹路径，如 "A/B/C"，根返回空串
func (n *Node) Path() string {
	var parts []string
	for p := n; p != nil && p.Parent != nil; p = p.Parent {
		parts = append(parts, p.Name)
	}
	slices.Reverse(parts)
	return strings.Join(parts, "/")
}
