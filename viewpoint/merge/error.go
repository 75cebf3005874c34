package merge

import (
	"errors"
	"fmt"
)

var (
	// ErrParse 文件不是合法的 XML
	ErrParse = errors.New("malformed XML")
	// ErrStructure 文件中没有视点容器
	ErrStructure = errors.New("no viewpoints container")
	// ErrIO 文件读取失败
	ErrIO = errors.New("cannot read file")
)

// FileError 单个文件导入失败的原因
type FileError struct {
	Path string
	Kind error
	Err  error
}

func (e *FileError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %v", e.Path, e.Kind)
	}
	return fmt.Sprintf("%s: %v: %v", e.Path, e.Kind, e.Err)
}

// Is 让 errors.Is 能按 ErrParse 等类别匹配
func (e *FileError) Is(target error) bool {
	return e.Kind == target
}

func (e *FileError) Unwrap() error {
	return e.Err
}
