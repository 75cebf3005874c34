package mcpserver

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/sjzsdu/vpm/helper"
	"github.com/sjzsdu/vpm/viewpoint"
	"github.com/sjzsdu/vpm/viewpoint/tree"
)

type nodeItem struct {
	Name   string `json:"name"`
	GUID   string `json:"guid"`
	Kind   string `json:"kind"`
	Origin string `json:"origin,omitempty"`
}

func items(nodes []*viewpoint.Node) []nodeItem {
	out := make([]nodeItem, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, nodeItem{Name: n.Name, GUID: n.ID, Kind: n.Kind().String(), Origin: n.Origin})
	}
	return out
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText(helper.ToJSON(v)), nil
}

func (s *ViewpointServer) importFiles(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	raw, err := req.RequireString("paths")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	paths := helper.SplitList(raw)
	if len(paths) == 0 {
		return mcp.NewToolResultError("no paths given"), nil
	}

	type fileT struct {
		Path          string   `json:"path"`
		Status        string   `json:"status"`
		Error         string   `json:"error,omitempty"`
		Layout        string   `json:"layout,omitempty"`
		TreeViews     []string `json:"treeViews,omitempty"`
		FoldersAdded  int      `json:"foldersAdded"`
		FoldersMerged int      `json:"foldersMerged"`
		TreeSkipped   int      `json:"treeSkipped"`
		PoolAdded     []string `json:"poolAdded,omitempty"`
		PoolSkipped   int      `json:"poolSkipped"`
	}
	files := make([]fileT, 0, len(paths))
	for _, o := range s.sess.Import(ctx, paths) {
		f := fileT{Path: o.Path, Status: o.Status.String()}
		if o.Err != nil {
			f.Error = o.Err.Error()
		} else {
			r := o.Result
			f.Layout = r.Layout.String()
			f.TreeViews = r.TreeViews
			f.FoldersAdded = r.FoldersAdded
			f.FoldersMerged = r.FoldersMerged
			f.TreeSkipped = r.TreeSkipped
			f.PoolAdded = r.PoolAdded
			f.PoolSkipped = r.PoolSkipped
		}
		files = append(files, f)
	}
	return jsonResult(map[string]any{"files": files})
}

func (s *ViewpointServer) export(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := req.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	res, err := s.sess.Export(path)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(map[string]any{
		"path":      res.Path,
		"folders":   res.Folders,
		"views":     res.Views,
		"fallbacks": res.Fallbacks,
	})
}

func (s *ViewpointServer) tree(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	opts := tree.Options{
		ShowViews: req.GetBool("showViews", true),
		ShowIDs:   req.GetBool("showIds", false),
		MaxDepth:  req.GetInt("maxDepth", 0),
	}
	return mcp.NewToolResultText(s.sess.Tree(opts)), nil
}

func (s *ViewpointServer) folders(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return jsonResult(map[string]any{"folders": s.sess.Folders()})
}

func (s *ViewpointServer) mkdir(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := req.RequireString("name")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	f, err := s.sess.MkDir(req.GetString("parent", ""), name)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(map[string]any{"path": f.Path(), "guid": f.ID})
}

func (s *ViewpointServer) rename(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := req.RequireString("guid")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	name, err := req.RequireString("name")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if err := s.sess.Rename(id, name); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(map[string]any{"guid": id, "name": name})
}

func (s *ViewpointServer) delete(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	raw, err := req.RequireString("guids")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	res := s.sess.Delete(helper.SplitList(raw))
	return jsonResult(map[string]any{"folders": res.Folders, "views": res.Views, "skipped": res.Skipped})
}

func (s *ViewpointServer) move(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	raw, err := req.RequireString("guids")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	res, err := s.sess.Move(helper.SplitList(raw), req.GetString("target", ""))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(map[string]any{
		"target":  res.Target.Path(),
		"moved":   res.Moved,
		"skipped": res.Skipped,
		"before":  res.Before,
		"after":   res.After,
	})
}

func (s *ViewpointServer) addFromPool(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	raw, err := req.RequireString("guids")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	res, err := s.sess.Add(helper.SplitList(raw), req.GetString("target", ""))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(map[string]any{
		"target":  res.Target.Path(),
		"added":   res.Added,
		"skipped": res.Skipped,
		"missing": res.Missing,
		"before":  res.Before,
		"after":   res.After,
	})
}

func (s *ViewpointServer) bulkMove(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	names, err := req.RequireString("names")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	res, err := s.sess.BulkMove(req.GetString("target", ""), names)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(map[string]any{
		"target":   res.Target.Path(),
		"moved":    res.Moved,
		"already":  res.Already,
		"notFound": res.NotFound,
		"before":   res.Before,
		"after":    res.After,
	})
}

func (s *ViewpointServer) search(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	names, err := req.RequireString("names")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	res := s.sess.Search(names)
	return jsonResult(map[string]any{
		"total":    res.Total,
		"found":    res.Found,
		"notFound": res.NotFound,
	})
}

func (s *ViewpointServer) sort(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	mode := req.GetString("mode", "")
	var (
		res viewpoint.SortResult
		err error
	)
	if ids := helper.SplitList(req.GetString("guids", "")); len(ids) > 0 {
		res, err = s.sess.SortSelected(ids, mode)
	} else {
		res, err = s.sess.Sort(req.GetString("target", ""), mode)
	}
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(map[string]any{"groups": res.Groups, "count": res.Count, "mode": res.Mode.String()})
}

func (s *ViewpointServer) cleanNames(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	type renameT struct {
		GUID string `json:"guid"`
		From string `json:"from"`
		To   string `json:"to"`
	}
	renamed := s.sess.CleanNames()
	out := make([]renameT, 0, len(renamed))
	for _, r := range renamed {
		out = append(out, renameT{GUID: r.Node.ID, From: r.Old, To: r.Node.Name})
	}
	return jsonResult(map[string]any{"renamed": out})
}

func (s *ViewpointServer) filter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	found := s.sess.Filter(req.GetString("text", ""))
	return jsonResult(map[string]any{"count": len(found), "items": items(found)})
}

func (s *ViewpointServer) info(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := req.RequireString("guid")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	info, err := s.sess.Info(id)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(map[string]any{
		"kind":      info.Kind.String(),
		"name":      info.Name,
		"guid":      info.ID,
		"origin":    info.Origin,
		"path":      info.Path,
		"inTree":    info.InTree,
		"views":     info.Views,
		"preview":   info.Preview,
		"truncated": info.Truncated,
	})
}

func (s *ViewpointServer) clear(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.sess.Clear()
	return jsonResult(map[string]any{"cleared": true})
}
