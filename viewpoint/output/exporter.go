// Package output 把视点树导出为交换 XML，或生成 Markdown / PDF 报告。
package output

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/sjzsdu/vpm/share"
	"github.com/sjzsdu/vpm/viewpoint"
)

// ErrEmpty 树中没有可导出的内容
var ErrEmpty = errors.New("nothing to export")

// Exporter 导出器接口
type Exporter interface {
	Export(path string) (Result, error)
}

// Result 导出统计
type Result struct {
	Path      string
	Folders   int
	Views     int
	Fallbacks int // 载荷无法解析、以最小元素写出的视点数
}

// Envelope 交换文件外层属性
type Envelope struct {
	Schema   string
	Units    string
	Filename string
	Filepath string
	Indent   int
}

// DefaultEnvelope 默认外层属性
func DefaultEnvelope() Envelope {
	return Envelope{
		Schema:   share.EXCHANGE_SCHEMA,
		Units:    share.EXCHANGE_UNITS,
		Filename: share.EXCHANGE_FILENAME,
		Filepath: share.EXCHANGE_FILEPATH,
		Indent:   2,
	}
}

// Options 导出器选项
type Options struct {
	Envelope Envelope
	// FontPath PDF 使用的 TTF 字体，为空时使用内置字体
	FontPath string
}

// GetExporter 根据输出文件扩展名返回对应的导出器
func GetExporter(m *viewpoint.Model, path string, opts Options) (Exporter, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xml":
		return NewXMLExporter(m, opts.Envelope), nil
	case ".md":
		return NewMarkdownExporter(m), nil
	case ".pdf":
		return NewPDFExporter(m, opts.FontPath), nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s", filepath.Ext(path))
	}
}

func checkEmpty(m *viewpoint.Model) error {
	if len(m.Root().Children) == 0 {
		return ErrEmpty
	}
	return nil
}

// folderLabel 文件夹名后附视点数
func folderLabel(n *viewpoint.Node) string {
	return fmt.Sprintf("%s (%d)", n.Name, n.CountViews())
}
