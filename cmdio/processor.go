package cmdio

import (
	"context"

	"github.com/c-bata/go-prompt"
)

// InteractiveProcessor 交互式处理器接口
type InteractiveProcessor interface {
	// ProcessInput 处理一行用户输入，返回要显示的内容
	ProcessInput(ctx context.Context, input string) (string, error)
}

// Completer 可选接口，处理器实现后输入时提供补全
type Completer interface {
	Suggestions() []prompt.Suggest
}
