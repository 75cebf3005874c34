package helper

import (
	"fmt"

	"github.com/atotto/clipboard"
)

// CopyToClipboard 把文本写入系统剪贴板
func CopyToClipboard(text string) error {
	if clipboard.Unsupported {
		return fmt.Errorf("当前系统不支持剪贴板")
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("写入剪贴板失败: %w", err)
	}
	return nil
}
