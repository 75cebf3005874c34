package cmdio

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/c-bata/go-prompt"

	"github.com/sjzsdu/vpm/lang"
)

// InteractiveSession 交互式会话结构体
type InteractiveSession struct {
	Processor       InteractiveProcessor // 处理器
	renderer        Renderer             // 渲染器
	welcome         string               // 欢迎信息
	tips            []string             // 提示信息
	prompt          string               // 命令提示符
	exitCommands    []string             // 退出命令列表
	inputStringFunc InputStringFunc      // 输入函数，用于依赖注入和测试
}

// NewInteractiveSession 创建新的交互式会话
func NewInteractiveSession(processor InteractiveProcessor, opts ...SessionOption) *InteractiveSession {
	var suggestions []prompt.Suggest
	if c, ok := processor.(Completer); ok {
		suggestions = c.Suggestions()
	}

	options := &InteractiveSession{
		Processor:       processor,
		renderer:        NewTextRenderer(os.Stdout),
		prompt:          "vpm> ",
		exitCommands:    []string{"quit", "q", "exit"},
		inputStringFunc: NewPromptInput(suggestions),
	}

	for _, opt := range opts {
		opt(options)
	}
	return options
}

// Start 启动交互式会话，输入退出命令或 ctx 取消时返回
func (s *InteractiveSession) Start(ctx context.Context) error {
	if ctx == nil {
		return fmt.Errorf("context cannot be nil")
	}
	if s.Processor == nil {
		return fmt.Errorf("processor cannot be nil")
	}

	if s.welcome != "" {
		s.renderer.WriteStream(s.welcome + "\n")
	}
	for _, tip := range s.tips {
		s.renderer.WriteStream(tip + "\n")
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		input, err := s.inputStringFunc(s.prompt)
		if errors.Is(err, errEmptyInput) {
			continue
		}
		if err != nil {
			return err
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}

		if s.IsExitCommand(input) {
			s.renderer.WriteStream(lang.T("Session terminated, thanks for using!") + "\n")
			return nil
		}

		content, err := s.Processor.ProcessInput(ctx, input)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				return err
			}
			s.renderer.WriteStream(fmt.Sprintf(lang.T("Error processing input")+": %v\n", err))
			s.renderer.Done()
			continue
		}
		s.renderer.WriteStream(content)
		s.renderer.Done()
	}
}

// IsExitCommand 检查输入是否为退出命令，不区分大小写
func (s *InteractiveSession) IsExitCommand(input string) bool {
	input = strings.TrimSpace(strings.ToLower(input))
	for _, cmd := range s.exitCommands {
		if input == strings.TrimSpace(strings.ToLower(cmd)) {
			return true
		}
	}
	return false
}

// Renderer 返回渲染器，用于测试
func (s *InteractiveSession) Renderer() Renderer {
	return s.renderer
}
