package renders

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
)

// MarkdownRenderer 把 Markdown 报告渲染为终端输出
type MarkdownRenderer struct {
	renderer *glamour.TermRenderer
	mu       sync.Mutex
}

// NewMarkdownRenderer 创建一个新的 Markdown 渲染器
func NewMarkdownRenderer(wordWrap int) (*MarkdownRenderer, error) {
	if wordWrap <= 0 {
		wordWrap = 120
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(wordWrap),
	)
	if err != nil {
		return nil, fmt.Errorf("初始化 Markdown 渲染器失败: %w", err)
	}

	return &MarkdownRenderer{renderer: renderer}, nil
}

// Render 渲染 Markdown 内容，失败时原样返回
func (m *MarkdownRenderer) Render(content string) string {
	m.mu.Lock()
	defer m.mu.Unlock()

	// 确保内容以换行符结束
	if !strings.HasSuffix(content, "\n") {
		content += "\n"
	}

	rendered, err := m.renderer.Render(content)
	if err != nil {
		return content
	}

	// 将连续的多个空行替换为单个空行
	for strings.Contains(rendered, "\n\n\n") {
		rendered = strings.ReplaceAll(rendered, "\n\n\n", "\n\n")
	}
	if !strings.HasSuffix(rendered, "\n") {
		rendered += "\n"
	}
	return rendered
}

// Fprint 渲染后写入 w
func (m *MarkdownRenderer) Fprint(w io.Writer, content string) error {
	_, err := io.WriteString(w, m.Render(content))
	return err
}
