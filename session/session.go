// Package session 组合视点模型、导入导出和批量操作，供命令行、交互式 shell 和 MCP 服务共用。
// 所有方法都持有同一把锁，可以被并发调用。
package session

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/sjzsdu/vpm/config"
	"github.com/sjzsdu/vpm/viewpoint"
	"github.com/sjzsdu/vpm/viewpoint/bulk"
	"github.com/sjzsdu/vpm/viewpoint/merge"
	"github.com/sjzsdu/vpm/viewpoint/natsort"
	"github.com/sjzsdu/vpm/viewpoint/output"
	"github.com/sjzsdu/vpm/viewpoint/tree"
)

type Session struct {
	mu       sync.Mutex
	model    *viewpoint.Model
	settings *config.Settings
	log      *zap.Logger
	fontPath string
}

// New 创建会话，settings 为 nil 时使用默认值
func New(settings *config.Settings, log *zap.Logger) *Session {
	if settings == nil {
		settings = config.DefaultSettings()
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Session{
		model:    viewpoint.NewModel(),
		settings: settings,
		log:      log,
	}
}

// SetFontPath 设置 PDF 报告使用的字体
func (s *Session) SetFontPath(path string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fontPath = path
}

// Settings 返回当前设置
func (s *Session) Settings() config.Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return *s.settings
}

// Import 导入多个文件，返回每个文件的结果
func (s *Session) Import(ctx context.Context, paths []string) []merge.Outcome {
	s.mu.Lock()
	defer s.mu.Unlock()

	outcomes := merge.ImportFiles(ctx, s.model, paths, merge.Options{StripCounts: s.settings.StripCounts})
	for _, o := range outcomes {
		if o.Status != merge.StatusOK {
			s.log.Warn("import failed", zap.String("path", o.Path), zap.Error(o.Err))
			continue
		}
		s.log.Info("imported",
			zap.String("path", o.Path),
			zap.Stringer("layout", o.Result.Layout),
			zap.Int("tree_views", len(o.Result.TreeViews)),
			zap.Int("folders_added", o.Result.FoldersAdded),
			zap.Int("folders_merged", o.Result.FoldersMerged),
			zap.Int("tree_skipped", o.Result.TreeSkipped),
			zap.Int("pool_added", len(o.Result.PoolAdded)),
			zap.Int("pool_skipped", o.Result.PoolSkipped),
		)
	}
	return outcomes
}

// Export 按扩展名导出到文件
func (s *Session) Export(path string) (output.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	exp, err := output.GetExporter(s.model, path, output.Options{
		Envelope: s.envelope(),
		FontPath: s.fontPath,
	})
	if err != nil {
		return output.Result{}, err
	}
	res, err := exp.Export(path)
	if err != nil {
		s.log.Warn("export failed", zap.String("path", path), zap.Error(err))
		return res, err
	}
	s.log.Info("exported",
		zap.String("path", path),
		zap.Int("folders", res.Folders),
		zap.Int("views", res.Views),
		zap.Int("fallbacks", res.Fallbacks),
	)
	return res, nil
}

// ExportXML 返回导出的 XML 内容
func (s *Session) ExportXML() ([]byte, output.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return output.NewXMLExporter(s.model, s.envelope()).Bytes()
}

// Report 返回 Markdown 报告
func (s *Session) Report() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	text, _ := output.NewMarkdownExporter(s.model).Render()
	return text
}

func (s *Session) envelope() output.Envelope {
	e := s.settings.Export
	return output.Envelope{
		Schema:   e.Schema,
		Units:    e.Units,
		Filename: e.Filename,
		Filepath: e.Filepath,
		Indent:   e.Indent,
	}
}

// Tree 渲染组织树
func (s *Session) Tree(opts tree.Options) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return tree.TreeWithOptions(s.model.Root(), opts)
}

// Stats 统计组织树
func (s *Session) Stats() (tree.Statistics, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return tree.Stats(s.model.Root()), s.model.Pool().Len()
}

// Folders 列出所有文件夹路径
func (s *Session) Folders() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	entries := s.model.Folders()
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Label
	}
	return out
}

// folder 把路径或 guid 解析为目标文件夹，空串为根
func (s *Session) folder(ref string) (*viewpoint.Node, error) {
	if f, ok := s.model.FolderByPath(ref); ok {
		return f, nil
	}
	if n := s.model.Find(ref); n != nil {
		return s.model.ResolveTarget(n), nil
	}
	return nil, fmt.Errorf("%w: %s", viewpoint.ErrNotFound, ref)
}

func (s *Session) nodes(ids []string) []*viewpoint.Node {
	out := make([]*viewpoint.Node, 0, len(ids))
	for _, id := range ids {
		if n := s.model.Find(id); n != nil {
			out = append(out, n)
		}
	}
	return out
}

// MkDir 在 parent 下新建文件夹
func (s *Session) MkDir(parent, name string) (*viewpoint.Node, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, err := s.folder(parent)
	if err != nil {
		return nil, err
	}
	f, err := s.model.CreateFolder(p, name)
	if err != nil {
		return nil, err
	}
	s.log.Debug("folder created", zap.String("path", f.Path()), zap.String("guid", f.ID))
	return f, nil
}

// Rename 按 guid 改名
func (s *Session) Rename(id, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := s.model.Find(id)
	if n == nil {
		return fmt.Errorf("%w: %s", viewpoint.ErrNotFound, id)
	}
	old := n.Name
	if err := s.model.Rename(n, name); err != nil {
		return err
	}
	s.log.Debug("renamed", zap.String("guid", id), zap.String("from", old), zap.String("to", n.Name))
	return nil
}

// Delete 按 guid 删除节点
func (s *Session) Delete(ids []string) viewpoint.DeleteResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	found := s.nodes(ids)
	res := s.model.Delete(found)
	res.Skipped += len(ids) - len(found)
	s.log.Info("deleted", zap.Int("folders", res.Folders), zap.Int("views", res.Views), zap.Int("skipped", res.Skipped))
	return res
}

// Move 把树中的节点移到目标文件夹
func (s *Session) Move(ids []string, target string) (viewpoint.MoveResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, err := s.folder(target)
	if err != nil {
		return viewpoint.MoveResult{}, err
	}
	found := s.nodes(ids)
	res := s.model.MoveNodes(found, t)
	res.Skipped += len(ids) - len(found)
	s.log.Info("moved", zap.String("target", t.Path()), zap.Int("moved", res.Moved), zap.Int("skipped", res.Skipped))
	return res, nil
}

// Add 把池中的视点复制到目标文件夹
func (s *Session) Add(ids []string, target string) (viewpoint.CloneResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, err := s.folder(target)
	if err != nil {
		return viewpoint.CloneResult{}, err
	}
	res := s.model.CloneFromPool(ids, t)
	s.log.Info("added from pool", zap.String("target", t.Path()), zap.Int("added", res.Added),
		zap.Int("skipped", res.Skipped), zap.Int("missing", res.Missing))
	return res, nil
}

// BulkMove 按名称列表批量移动到目标文件夹
func (s *Session) BulkMove(target, text string) (bulk.MoveResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, err := s.folder(target)
	if err != nil {
		return bulk.MoveResult{}, err
	}
	res := bulk.Move(s.model, t, bulk.ParseTokens(text))
	s.log.Info("bulk move",
		zap.String("target", t.Path()),
		zap.Int("moved", res.Moved),
		zap.Int("already", res.Already),
		zap.Strings("not_found", res.NotFound),
	)
	return res, nil
}

// Search 检查名称列表是否存在
func (s *Session) Search(text string) bulk.SearchResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	return bulk.Search(s.model, bulk.ParseTokens(text))
}

func (s *Session) mode(m string) (natsort.Mode, error) {
	if m == "" {
		m = s.settings.SortMode
	}
	return natsort.ParseMode(m)
}

// Sort 对文件夹的直接子节点排序，mode 为空时使用设置中的模式
func (s *Session) Sort(target, mode string) (viewpoint.SortResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	md, err := s.mode(mode)
	if err != nil {
		return viewpoint.SortResult{}, err
	}
	t, err := s.folder(target)
	if err != nil {
		return viewpoint.SortResult{}, err
	}
	return s.model.SortChildren(t, md), nil
}

// SortSelected 只在选中视点原有位置内排序
func (s *Session) SortSelected(ids []string, mode string) (viewpoint.SortResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	md, err := s.mode(mode)
	if err != nil {
		return viewpoint.SortResult{}, err
	}
	return s.model.SortSelected(s.nodes(ids), md), nil
}

// CleanNames 去掉文件夹名的计数后缀
func (s *Session) CleanNames() []viewpoint.Renamed {
	s.mu.Lock()
	defer s.mu.Unlock()
	renamed := s.model.CleanFolderNames()
	s.log.Info("folder names cleaned", zap.Int("count", len(renamed)))
	return renamed
}

// Filter 过滤池和树中的视点
func (s *Session) Filter(text string) []*viewpoint.Node {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.model.FilterPool(text)
}

// Info 按 guid 查询节点详情
func (s *Session) Info(id string) (viewpoint.Info, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.model.Describe(id)
}

// Clear 清空树和池
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.model.Clear()
	s.log.Info("session cleared")
}
