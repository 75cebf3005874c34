package tree

import (
	"fmt"

	"github.com/sjzsdu/vpm/viewpoint"
)

// Statistics 树的统计信息
type Statistics struct {
	FolderCount int            // 文件夹数量，不含根
	ViewCount   int            // 视点数量
	EmptyFolder int            // 不含任何视点的文件夹
	MaxDepth    int            // 最大深度
	Origins     map[string]int // 各来源文件的视点数
}

// Stats 返回树的统计信息
func Stats(node *viewpoint.Node) Statistics {
	stats := Statistics{Origins: make(map[string]int)}
	if node == nil {
		return stats
	}
	_ = viewpoint.Walk(node, func(n *viewpoint.Node, depth int) error {
		stats.MaxDepth = max(stats.MaxDepth, depth)
		if n.IsFolder() {
			if n != node {
				stats.FolderCount++
				if n.CountViews() == 0 {
					stats.EmptyFolder++
				}
			}
			return nil
		}
		stats.ViewCount++
		stats.Origins[n.Origin]++
		return nil
	})
	return stats
}

// String 返回统计信息的字符串表示
func (s Statistics) String() string {
	return fmt.Sprintf("folders: %d (empty: %d), views: %d, sources: %d, max depth: %d",
		s.FolderCount, s.EmptyFolder, s.ViewCount, len(s.Origins), s.MaxDepth)
}
