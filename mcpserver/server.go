package mcpserver

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/sjzsdu/vpm/session"
	"github.com/sjzsdu/vpm/share"
)

type toolHandler = func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error)

// ViewpointServer 把视点会话暴露为 MCP 工具
type ViewpointServer struct {
	*server.MCPServer
	sess     *session.Session
	handlers map[string]toolHandler
}

// NewViewpointServer 创建 MCP 服务器并注册全部工具
func NewViewpointServer(sess *session.Session) *ViewpointServer {
	s := &ViewpointServer{
		MCPServer: server.NewMCPServer(share.MCP_SERVER_NAME, share.VERSION, server.WithToolCapabilities(true)),
		sess:      sess,
		handlers:  make(map[string]toolHandler),
	}
	s.registerTools()
	return s
}

func (s *ViewpointServer) add(tool mcp.Tool, h toolHandler) {
	s.AddTool(tool, h)
	s.handlers[tool.Name] = h
}

// Handler 返回已注册工具的处理函数
func (s *ViewpointServer) Handler(name string) (toolHandler, bool) {
	h, ok := s.handlers[name]
	return h, ok
}

// ServeStdio 通过标准输入输出提供服务
func (s *ViewpointServer) ServeStdio() error {
	return server.ServeStdio(s.MCPServer)
}
