package cmdio

import (
	"io"
	"strings"

	"github.com/sjzsdu/vpm/helper/renders"
)

// Renderer 输出渲染器
type Renderer interface {
	WriteStream(content string) error
	Done()
}

// TextRenderer 原样写入
type TextRenderer struct {
	w io.Writer
}

func NewTextRenderer(w io.Writer) *TextRenderer {
	return &TextRenderer{w: w}
}

func (r *TextRenderer) WriteStream(content string) error {
	_, err := io.WriteString(r.w, content)
	return err
}

func (r *TextRenderer) Done() {
	_, _ = io.WriteString(r.w, "\n")
}

// MarkdownRenderer 以 "# " 开头的内容按 Markdown 渲染，其余原样写入
type MarkdownRenderer struct {
	TextRenderer
	md *renders.MarkdownRenderer
}

func NewMarkdownRenderer(w io.Writer) (*MarkdownRenderer, error) {
	md, err := renders.NewMarkdownRenderer(0)
	if err != nil {
		return nil, err
	}
	return &MarkdownRenderer{TextRenderer: TextRenderer{w: w}, md: md}, nil
}

func (r *MarkdownRenderer) WriteStream(content string) error {
	if strings.HasPrefix(content, "# ") {
		return r.md.Fprint(r.w, content)
	}
	return r.TextRenderer.WriteStream(content)
}
