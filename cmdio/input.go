package cmdio

import (
	"errors"
	"strings"

	"github.com/c-bata/go-prompt"
)

// InputStringFunc 读取一行输入
type InputStringFunc func(prefix string) (string, error)

var errEmptyInput = errors.New("empty input")

// NewPromptInput 基于 go-prompt 的输入函数，补全命令名
func NewPromptInput(suggestions []prompt.Suggest) InputStringFunc {
	completer := func(d prompt.Document) []prompt.Suggest {
		// 只补全第一个词
		if strings.Contains(d.TextBeforeCursor(), " ") {
			return nil
		}
		return prompt.FilterHasPrefix(suggestions, d.GetWordBeforeCursor(), true)
	}
	return func(prefix string) (string, error) {
		in := prompt.Input(prefix, completer,
			prompt.OptionTitle("vpm"),
			prompt.OptionPrefixTextColor(prompt.Blue),
			prompt.OptionInputTextColor(prompt.DefaultColor),
		)
		in = strings.TrimSpace(in)
		if in == "" {
			return "", errEmptyInput
		}
		return in, nil
	}
}
