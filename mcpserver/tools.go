package mcpserver

import (
	"github.com/mark3labs/mcp-go/mcp"
)

func (s *ViewpointServer) registerTools() {
	s.add(mcp.NewTool(
		"vp_import",
		mcp.WithDescription("导入一个或多个视点交换 XML 文件"),
		mcp.WithString("paths", mcp.Required(), mcp.Description("文件路径，逗号或换行分隔")),
	), s.importFiles)

	s.add(mcp.NewTool(
		"vp_export",
		mcp.WithDescription("导出组织树；扩展名决定格式：.xml 交换文件、.md 报告、.pdf 报告"),
		mcp.WithString("path", mcp.Required(), mcp.Description("输出文件路径")),
	), s.export)

	s.add(mcp.NewTool(
		"vp_tree",
		mcp.WithDescription("输出组织树的文本结构"),
		mcp.WithBoolean("showViews", mcp.Description("是否显示视点，默认 true")),
		mcp.WithBoolean("showIds", mcp.Description("是否显示 guid，默认 false")),
		mcp.WithNumber("maxDepth", mcp.Description("最大深度，0 不限")),
	), s.tree)

	s.add(mcp.NewTool(
		"vp_folders",
		mcp.WithDescription("列出所有文件夹路径，根为空串"),
	), s.folders)

	s.add(mcp.NewTool(
		"vp_mkdir",
		mcp.WithDescription("新建文件夹"),
		mcp.WithString("name", mcp.Required(), mcp.Description("文件夹名称")),
		mcp.WithString("parent", mcp.Description("父文件夹路径或 guid，默认根")),
	), s.mkdir)

	s.add(mcp.NewTool(
		"vp_rename",
		mcp.WithDescription("按 guid 重命名文件夹或视点"),
		mcp.WithString("guid", mcp.Required(), mcp.Description("节点 guid")),
		mcp.WithString("name", mcp.Required(), mcp.Description("新名称")),
	), s.rename)

	s.add(mcp.NewTool(
		"vp_delete",
		mcp.WithDescription("删除节点及其子树"),
		mcp.WithString("guids", mcp.Required(), mcp.Description("guid 列表，逗号分隔")),
	), s.delete)

	s.add(mcp.NewTool(
		"vp_move",
		mcp.WithDescription("把树中的节点移动到目标文件夹"),
		mcp.WithString("guids", mcp.Required(), mcp.Description("guid 列表，逗号分隔")),
		mcp.WithString("target", mcp.Description("目标文件夹路径或 guid，默认根")),
	), s.move)

	s.add(mcp.NewTool(
		"vp_add",
		mcp.WithDescription("把来源池中的视点复制到目标文件夹"),
		mcp.WithString("guids", mcp.Required(), mcp.Description("池中视点的 guid 列表，逗号分隔")),
		mcp.WithString("target", mcp.Description("目标文件夹路径或 guid，默认根")),
	), s.addFromPool)

	s.add(mcp.NewTool(
		"vp_bulk_move",
		mcp.WithDescription("按名称列表批量移动视点，名称用空白分隔，重复执行不会产生新的移动"),
		mcp.WithString("names", mcp.Required(), mcp.Description("视点名称或名称片段")),
		mcp.WithString("target", mcp.Description("目标文件夹路径或 guid，默认根")),
	), s.bulkMove)

	s.add(mcp.NewTool(
		"vp_search",
		mcp.WithDescription("检查名称列表在树或池中是否存在"),
		mcp.WithString("names", mcp.Required(), mcp.Description("视点名称或名称片段，空白分隔")),
	), s.search)

	s.add(mcp.NewTool(
		"vp_sort",
		mcp.WithDescription("对文件夹的直接子节点排序，文件夹在前"),
		mcp.WithString("target", mcp.Description("文件夹路径或 guid，默认根")),
		mcp.WithString("mode", mcp.Description("nat_asc、nat_desc 或 guid，默认使用配置")),
		mcp.WithString("guids", mcp.Description("只对这些视点在原位置内排序，逗号分隔")),
	), s.sort)

	s.add(mcp.NewTool(
		"vp_clean_names",
		mcp.WithDescription("去掉文件夹名称末尾的 \" (N)\" 计数"),
	), s.cleanNames)

	s.add(mcp.NewTool(
		"vp_filter",
		mcp.WithDescription("按名称、来源文件或 guid 过滤来源池和树中的视点"),
		mcp.WithString("text", mcp.Description("过滤文本，为空时返回全部")),
	), s.filter)

	s.add(mcp.NewTool(
		"vp_info",
		mcp.WithDescription("查看节点详情和 XML 预览"),
		mcp.WithString("guid", mcp.Required(), mcp.Description("节点 guid")),
	), s.info)

	s.add(mcp.NewTool(
		"vp_clear",
		mcp.WithDescription("清空组织树和来源池"),
	), s.clear)
}
