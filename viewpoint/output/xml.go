package output

import (
	"strings"

	"github.com/beevik/etree"

	"github.com/sjzsdu/vpm/helper"
	"github.com/sjzsdu/vpm/share"
	"github.com/sjzsdu/vpm/viewpoint"
)

// XMLExporter 导出交换 XML。视点载荷原样写回，只覆盖 name 和 guid
type XMLExporter struct {
	model *viewpoint.Model
	env   Envelope
}

func NewXMLExporter(m *viewpoint.Model, env Envelope) *XMLExporter {
	return &XMLExporter{model: m, env: env}
}

// Build 构建导出文档
func (e *XMLExporter) Build() (*etree.Document, Result) {
	var res Result
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	exchange := doc.CreateElement(share.EXCHANGE_TAG)
	exchange.CreateAttr("xmlns:xsi", share.XSI_NAMESPACE)
	exchange.CreateAttr("xsi:noNamespaceSchemaLocation", e.env.Schema)
	exchange.CreateAttr("units", e.env.Units)
	exchange.CreateAttr("filename", e.env.Filename)
	exchange.CreateAttr("filepath", e.env.Filepath)
	container := exchange.CreateElement(share.CONTAINER_TAG)

	for _, child := range e.model.Root().Children {
		e.write(container, child, &res)
	}
	return doc, res
}

func (e *XMLExporter) write(parent *etree.Element, n *viewpoint.Node, res *Result) {
	if n.IsFolder() {
		res.Folders++
		el := parent.CreateElement(share.FOLDER_TAG)
		el.CreateAttr(share.NAME_ATTR, folderLabel(n))
		el.CreateAttr(share.ID_ATTR, n.ID)
		for _, child := range n.Children {
			e.write(el, child, res)
		}
		return
	}

	res.Views++
	el := payloadElement(n.Payload)
	if el == nil {
		res.Fallbacks++
		el = etree.NewElement(share.VIEW_TAG)
	}
	el.CreateAttr(share.NAME_ATTR, n.Name)
	el.CreateAttr(share.ID_ATTR, n.ID)
	parent.AddChild(el)
}

// payloadElement 解析载荷，失败或为空时返回 nil
func payloadElement(payload string) *etree.Element {
	if strings.TrimSpace(payload) == "" {
		return nil
	}
	doc := etree.NewDocument()
	if err := doc.ReadFromString(payload); err != nil {
		return nil
	}
	root := doc.Root()
	if root == nil {
		return nil
	}
	doc.RemoveChild(root)
	return root
}

// Bytes 生成导出内容，缩进后去掉空行
func (e *XMLExporter) Bytes() ([]byte, Result, error) {
	if err := checkEmpty(e.model); err != nil {
		return nil, Result{}, err
	}
	doc, res := e.Build()
	doc.Indent(max(e.env.Indent, 0))
	s, err := doc.WriteToString()
	if err != nil {
		return nil, res, err
	}
	return []byte(stripBlankLines(s)), res, nil
}

// Export 写入文件，先写临时文件再替换
func (e *XMLExporter) Export(path string) (Result, error) {
	data, res, err := e.Bytes()
	if err != nil {
		return res, err
	}
	res.Path = path
	return res, helper.WriteFileAtomic(path, data)
}

func stripBlankLines(s string) string {
	lines := strings.Split(s, "\n")
	kept := lines[:0]
	for _, line := range lines {
		if strings.TrimSpace(line) != "" {
			kept = append(kept, strings.TrimRight(line, "\r"))
		}
	}
	return strings.Join(kept, "\n") + "\n"
}
