package viewpoint

import "errors"

// SkipChildren 由访问函数返回时不再进入当前文件夹
var SkipChildren = errors.New("skip children")

// VisitorFunc 访问函数，depth 从 0 开始
type VisitorFunc func(n *Node, depth int) error

// Walk 先序遍历子树
func Walk(n *Node, fn VisitorFunc) error {
	return walk(n, 0, fn)
}

func walk(n *Node, depth int, fn VisitorFunc) error {
	if err := fn(n, depth); err != nil {
		if errors.Is(err, SkipChildren) {
			return nil
		}
		return err
	}
	for _, child := range n.Children {
		if err := walk(child, depth+1, fn); err != nil {
			return err
		}
	}
	return nil
}
