// Package index 构建视点名称索引，支持按完整名称或名称片段查找。
package index

import (
	"iter"
	"strings"

	"github.com/sjzsdu/vpm/viewpoint"
	"github.com/sjzsdu/vpm/viewpoint/natsort"
)

// Index 折叠后的名称或片段到视点列表的映射，列表保持插入顺序且不重复
type Index struct {
	keys map[string][]*viewpoint.Node
}

var separators = strings.NewReplacer("_", " ", "-", " ", ".", " ")

// Normalize 返回用于查找的键
func Normalize(s string) string {
	return natsort.Fold(strings.TrimSpace(s))
}

// Tokens 把名称拆成片段：折叠大小写，"_" "-" "." 视为空白
func Tokens(name string) []string {
	return strings.Fields(separators.Replace(natsort.Fold(name)))
}

// Build 为一组视点建立索引
func Build(views iter.Seq[*viewpoint.Node]) *Index {
	ix := &Index{keys: make(map[string][]*viewpoint.Node)}
	for v := range views {
		ix.add(v)
	}
	return ix
}

// FromSlice 为切片建立索引
func FromSlice(views []*viewpoint.Node) *Index {
	return Build(func(yield func(*viewpoint.Node) bool) {
		for _, v := range views {
			if !yield(v) {
				return
			}
		}
	})
}

func (ix *Index) add(v *viewpoint.Node) {
	if full := Normalize(v.Name); full != "" {
		ix.put(full, v)
	}
	for _, tok := range Tokens(v.Name) {
		ix.put(tok, v)
	}
}

// put 同一节点的各个键是连续写入的，重复时必然位于列表末尾
func (ix *Index) put(key string, v *viewpoint.Node) {
	list := ix.keys[key]
	if n := len(list); n > 0 && list[n-1] == v {
		return
	}
	ix.keys[key] = append(list, v)
}

// Lookup 按完整名称或片段查找，大小写不敏感
func (ix *Index) Lookup(token string) []*viewpoint.Node {
	return ix.keys[Normalize(token)]
}

func (ix *Index) Has(token string) bool {
	return len(ix.Lookup(token)) > 0
}

// Len 返回键的数量
func (ix *Index) Len() int {
	return len(ix.keys)
}

// Pair 树索引和池索引，查找时树优先
type Pair struct {
	Tree *Index
	Pool *Index
}

// NewPair 为模型当前状态建立索引
func NewPair(m *viewpoint.Model) Pair {
	return Pair{
		Tree: Build(m.Root().Views()),
		Pool: FromSlice(m.Pool().Views()),
	}
}

// Lookup 树中有匹配时只返回树中结果，否则返回池中结果
func (p Pair) Lookup(token string) (nodes []*viewpoint.Node, inTree bool) {
	if found := p.Tree.Lookup(token); len(found) > 0 {
		return found, true
	}
	return p.Pool.Lookup(token), false
}

func (p Pair) Has(token string) bool {
	return p.Tree.Has(token) || p.Pool.Has(token)
}
