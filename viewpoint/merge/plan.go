// Package merge 解析视点交换文件并合并到模型中。
//
// 每个文件先解析为一份计划，解析完全成功后才修改模型，
// 出错的文件不会留下部分结果。
package merge

import (
	"bytes"
	"io"
	"os"

	"github.com/beevik/etree"

	"github.com/sjzsdu/vpm/helper"
	"github.com/sjzsdu/vpm/share"
	"github.com/sjzsdu/vpm/viewpoint"
)

// Layout 文件内容的组织方式
type Layout uint8

const (
	Structured Layout = 1 << iota // 容器下有文件夹
	Flat                          // 容器下直接有视点
)

func (l Layout) String() string {
	switch l {
	case Structured | Flat:
		return "both"
	case Structured:
		return "structured"
	case Flat:
		return "flat"
	}
	return "empty"
}

// Options 导入选项
type Options struct {
	// StripCounts 导入时去掉文件夹名末尾的 " (N)"
	StripCounts bool
	// Workers 并行解析的文件数，0 为默认值
	Workers int
}

// Plan 一个文件解析后的待应用内容
type Plan struct {
	Source string            // 来源文件名
	Layout Layout
	Tree   []*viewpoint.Node // 挂到根下的子树
	Pool   []*viewpoint.Node // 加入池的视点
}

// ParseFile 读取并解析文件
func ParseFile(path string, opts Options) (*Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &FileError{Path: path, Kind: ErrIO, Err: err}
	}
	plan, err := Parse(bytes.NewReader(data), helper.SourceName(path), opts)
	if fe, ok := err.(*FileError); ok {
		fe.Path = path
	}
	return plan, err
}

// Parse 解析交换文档，source 记录为视点来源
func Parse(r io.Reader, source string, opts Options) (*Plan, error) {
	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(r); err != nil {
		return nil, &FileError{Path: source, Kind: ErrParse, Err: err}
	}
	if doc.Root() == nil {
		return nil, &FileError{Path: source, Kind: ErrParse}
	}
	container := findContainer(doc.Root())
	if container == nil {
		return nil, &FileError{Path: source, Kind: ErrStructure}
	}

	p := &parser{source: source, opts: opts, ids: make(map[*etree.Element]string)}
	plan := &Plan{Source: source}
	for _, el := range container.ChildElements() {
		switch el.Tag {
		case share.FOLDER_TAG:
			plan.Layout |= Structured
		case share.VIEW_TAG:
			plan.Layout |= Flat
		}
	}

	// 有文件夹时整个容器按树导入，容器下直接的视点挂在根下
	if plan.Layout&Structured != 0 {
		for _, el := range container.ChildElements() {
			if n := p.node(el, share.DEFAULT_VIEW_NAME); n != nil {
				plan.Tree = append(plan.Tree, n)
			}
		}
	}
	if plan.Layout&Flat != 0 {
		for _, el := range container.ChildElements() {
			if el.Tag == share.VIEW_TAG {
				plan.Pool = append(plan.Pool, p.view(el, share.DEFAULT_POOL_NAME))
			}
		}
	}
	return plan, nil
}

// findContainer 先序查找第一个视点容器，根本身也算
func findContainer(el *etree.Element) *etree.Element {
	if el.Tag == share.CONTAINER_TAG {
		return el
	}
	for _, child := range el.ChildElements() {
		if found := findContainer(child); found != nil {
			return found
		}
	}
	return nil
}

type parser struct {
	source string
	opts   Options
	ids    map[*etree.Element]string
}

// id 同一元素在树和池中使用同一个 guid，缺失时生成一次
func (p *parser) id(el *etree.Element) string {
	if id, ok := p.ids[el]; ok {
		return id
	}
	id := el.SelectAttrValue(share.ID_ATTR, "")
	if id == "" {
		id = viewpoint.NewID()
	}
	p.ids[el] = id
	return id
}

func (p *parser) node(el *etree.Element, viewName string) *viewpoint.Node {
	switch el.Tag {
	case share.FOLDER_TAG:
		name := el.SelectAttrValue(share.NAME_ATTR, "")
		if p.opts.StripCounts {
			name = viewpoint.StripCount(name)
		}
		if name == "" {
			name = share.DEFAULT_FOLDER_NAME
		}
		f := viewpoint.NewFolder(name, p.id(el))
		for _, child := range el.ChildElements() {
			if n := p.node(child, viewName); n != nil {
				// 新建的文件夹不会出现环
				_ = f.AddChild(n)
			}
		}
		return f
	case share.VIEW_TAG:
		return p.view(el, viewName)
	}
	return nil
}

func (p *parser) view(el *etree.Element, defaultName string) *viewpoint.Node {
	name := el.SelectAttrValue(share.NAME_ATTR, "")
	if name == "" {
		name = defaultName
	}
	return viewpoint.NewView(name, p.id(el), payload(el), p.source)
}

// payload 把元素单独序列化为 XML 片段
func payload(el *etree.Element) string {
	doc := etree.NewDocument()
	doc.SetRoot(el.Copy())
	s, err := doc.WriteToString()
	if err != nil {
		return ""
	}
	return s
}
