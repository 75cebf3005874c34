package merge

import (
	"context"
	"errors"

	"github.com/sjzsdu/vpm/helper/coroutine"
	"github.com/sjzsdu/vpm/viewpoint"
)

// Result 一份计划应用到模型后的统计
type Result struct {
	Layout        Layout
	TreeViews     []string // 加入树的视点名称
	FoldersAdded  int
	FoldersMerged int      // 与树中同 guid 文件夹合并的数量
	TreeSkipped   int      // 树中已有同 guid 的视点
	PoolAdded     []string // 加入池的视点名称
	PoolSkipped   int
}

// Apply 把计划合并进模型。同 guid 的文件夹合并内容，同 guid 的视点保留树中原有的
func (p *Plan) Apply(m *viewpoint.Model) Result {
	res := Result{Layout: p.Layout}
	ids := m.IDs()
	for _, n := range p.Tree {
		mergeInto(m.Root(), n, ids, &res)
	}
	for _, v := range p.Pool {
		if m.Pool().Add(v) {
			res.PoolAdded = append(res.PoolAdded, v.Name)
		} else {
			res.PoolSkipped++
		}
	}
	return res
}

func mergeInto(parent, n *viewpoint.Node, ids map[string]*viewpoint.Node, res *Result) {
	existing, found := ids[n.ID]
	if !n.IsFolder() {
		if found {
			res.TreeSkipped++
			return
		}
		if err := parent.AddChild(n); err == nil {
			ids[n.ID] = n
			res.TreeViews = append(res.TreeViews, n.Name)
		}
		return
	}

	children := n.Children
	n.Children = nil
	target := n
	switch {
	case found && existing.IsFolder():
		target = existing
		res.FoldersMerged++
	default:
		// guid 被视点占用时换一个新的
		if found {
			n.ID = viewpoint.NewID()
		}
		if err := parent.AddChild(n); err != nil {
			return
		}
		ids[n.ID] = n
		res.FoldersAdded++
	}
	for _, c := range children {
		c.Parent = nil
		mergeInto(target, c, ids, res)
	}
}

// Status 单个文件的导入状态
type Status int

const (
	StatusOK Status = iota
	StatusParseError
	StatusStructuralError
	StatusIOError
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusParseError:
		return "parse_error"
	case StatusStructuralError:
		return "structural_error"
	default:
		return "io_error"
	}
}

// StatusOf 按错误类别得到导入状态
func StatusOf(err error) Status {
	switch {
	case err == nil:
		return StatusOK
	case errors.Is(err, ErrParse):
		return StatusParseError
	case errors.Is(err, ErrStructure):
		return StatusStructuralError
	default:
		return StatusIOError
	}
}

// Outcome 单个文件的导入结果
type Outcome struct {
	Path   string
	Source string
	Status Status
	Err    error
	Result Result
}

// ImportFiles 并行解析多个文件，再按输入顺序依次应用。
// 单个文件失败不影响其他文件，失败原因记录在对应的 Outcome 中
func ImportFiles(ctx context.Context, m *viewpoint.Model, paths []string, opts Options) []Outcome {
	workers := opts.Workers
	if workers <= 0 {
		workers = coroutine.DefaultMaxWorkers()
	}
	parsed := coroutine.Map(ctx, workers, paths, func(path string) (*Plan, error) {
		return ParseFile(path, opts)
	})

	outcomes := make([]Outcome, len(paths))
	for i, r := range parsed {
		out := Outcome{Path: paths[i]}
		if r.Err != nil {
			out.Status = StatusOf(r.Err)
			out.Err = r.Err
			outcomes[i] = out
			continue
		}
		out.Source = r.Value.Source
		out.Result = r.Value.Apply(m)
		outcomes[i] = out
	}
	return outcomes
}
