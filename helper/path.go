package helper

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/sjzsdu/vpm/share"
)

// GetPath 返回用户目录下 .vpm 中的路径，name 为空时返回目录本身
func GetPath(name string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	base := filepath.Join(home, share.PATH)
	if name == "" {
		return base
	}
	return filepath.Join(base, name)
}

// SourceName 返回用于展示的源文件名（不含目录）
func SourceName(path string) string {
	// 同时兼容 Windows 分隔符
	path = strings.ReplaceAll(path, "\\", "/")
	return filepath.Base(path)
}
