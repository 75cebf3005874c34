package viewpoint

import (
	"errors"
	"fmt"
)

var (
	ErrNotFolder     = errors.New("target is not a folder")
	ErrCycle         = errors.New("cannot move a folder into itself or its descendant")
	ErrRootImmutable = errors.New("root folder cannot be changed")
	ErrNotFound      = errors.New("node not found")
	ErrEmptyName     = errors.New("name must not be empty")
)

// NodeError 记录出错的节点
type NodeError struct {
	ID   string
	Name string
	Err  error
}

func (e *NodeError) Error() string {
	return fmt.Sprintf("node %q (%s): %v", e.Name, e.ID, e.Err)
}

func (e *NodeError) Unwrap() error {
	return e.Err
}

func nodeError(n *Node, err error) error {
	return &NodeError{ID: n.ID, Name: n.Name, Err: err}
}
