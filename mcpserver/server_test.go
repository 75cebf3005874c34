package mcpserver

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sjzsdu/vpm/session"
)

const zonesXML = `<exchange><viewpoints>
<viewfolder name="Zone A" guid="fa"><view name="ЛКП_213" guid="a1"/></viewfolder>
<view name="Room 5" guid="p1"/>
</viewpoints></exchange>`

// newToolCallRequest 构造工具调用请求
func newToolCallRequest(name string, args map[string]any) mcp.CallToolRequest {
	return mcp.CallToolRequest{
		Request: mcp.Request{Method: string(mcp.MethodToolsCall)},
		Params:  mcp.CallToolParams{Name: name, Arguments: args},
	}
}

func textFromResult(t *testing.T, r *mcp.CallToolResult) string {
	t.Helper()
	require.NotNil(t, r)
	for _, c := range r.Content {
		if tc, ok := c.(mcp.TextContent); ok {
			return tc.Text
		}
	}
	return ""
}

func call(t *testing.T, s *ViewpointServer, name string, args map[string]any) (string, bool) {
	t.Helper()
	h, ok := s.Handler(name)
	require.True(t, ok, name)
	res, err := h(context.Background(), newToolCallRequest(name, args))
	require.NoError(t, err)
	return textFromResult(t, res), res.IsError
}

func decode(t *testing.T, text string) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal([]byte(text), &out), text)
	return out
}

func newServer(t *testing.T) (*ViewpointServer, string) {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "zones.xml")
	require.NoError(t, os.WriteFile(path, []byte(zonesXML), 0644))
	return NewViewpointServer(session.New(nil, nil)), path
}

func TestToolsRegistered(t *testing.T) {
	s, _ := newServer(t)
	for _, name := range []string{"vp_import", "vp_export", "vp_tree", "vp_folders", "vp_mkdir", "vp_rename",
		"vp_delete", "vp_move", "vp_add", "vp_bulk_move", "vp_search", "vp_sort", "vp_clean_names",
		"vp_filter", "vp_info", "vp_clear"} {
		_, ok := s.Handler(name)
		assert.True(t, ok, name)
	}
}

func TestImportBulkMoveExport(t *testing.T) {
	s, path := newServer(t)

	text, isErr := call(t, s, "vp_import", map[string]any{"paths": path + ", " + path + ".missing"})
	require.False(t, isErr)
	files := decode(t, text)["files"].([]any)
	require.Len(t, files, 2)
	assert.Equal(t, "ok", files[0].(map[string]any)["status"])
	assert.Equal(t, "both", files[0].(map[string]any)["layout"])
	assert.Equal(t, "failed", files[1].(map[string]any)["status"])

	text, isErr = call(t, s, "vp_mkdir", map[string]any{"name": "Target"})
	require.False(t, isErr)
	assert.Equal(t, "Target", decode(t, text)["path"])

	text, isErr = call(t, s, "vp_bulk_move", map[string]any{"names": "213 room missing", "target": "Target"})
	require.False(t, isErr)
	res := decode(t, text)
	assert.Equal(t, float64(2), res["moved"])
	assert.Equal(t, []any{"missing"}, res["notFound"])

	text, _ = call(t, s, "vp_search", map[string]any{"names": "room 213"})
	assert.Equal(t, float64(2), decode(t, text)["found"])

	text, _ = call(t, s, "vp_tree", map[string]any{"showIds": true})
	assert.Contains(t, text, "Target/ [2]")

	out := filepath.Join(t.TempDir(), "merged.xml")
	text, isErr = call(t, s, "vp_export", map[string]any{"path": out})
	require.False(t, isErr, text)
	assert.Equal(t, float64(2), decode(t, text)["views"])
	_, err := os.Stat(out)
	assert.NoError(t, err)
}

func TestToolErrors(t *testing.T) {
	s, _ := newServer(t)

	_, isErr := call(t, s, "vp_import", map[string]any{})
	assert.True(t, isErr)

	text, isErr := call(t, s, "vp_export", map[string]any{"path": filepath.Join(t.TempDir(), "x.xml")})
	assert.True(t, isErr)
	assert.Contains(t, text, "nothing to export")

	_, isErr = call(t, s, "vp_move", map[string]any{"guids": "x", "target": "No/Such"})
	assert.True(t, isErr)

	_, isErr = call(t, s, "vp_info", map[string]any{"guid": "none"})
	assert.True(t, isErr)

	_, isErr = call(t, s, "vp_sort", map[string]any{"mode": "bogus"})
	assert.True(t, isErr)
}

func TestFolderTools(t *testing.T) {
	s, path := newServer(t)
	call(t, s, "vp_import", map[string]any{"paths": path})

	text, _ := call(t, s, "vp_folders", nil)
	assert.Equal(t, []any{"", "Zone A"}, decode(t, text)["folders"])

	_, isErr := call(t, s, "vp_rename", map[string]any{"guid": "fa", "name": "Zone B (4)"})
	require.False(t, isErr)
	text, _ = call(t, s, "vp_clean_names", nil)
	renamed := decode(t, text)["renamed"].([]any)
	require.Len(t, renamed, 1)
	assert.Equal(t, "Zone B", renamed[0].(map[string]any)["to"])

	text, _ = call(t, s, "vp_add", map[string]any{"guids": "p1", "target": "Zone B"})
	assert.Equal(t, float64(0), decode(t, text)["added"])
	assert.Equal(t, float64(1), decode(t, text)["skipped"])

	text, _ = call(t, s, "vp_move", map[string]any{"guids": "p1", "target": "fa"})
	assert.Equal(t, float64(1), decode(t, text)["moved"])

	text, _ = call(t, s, "vp_sort", map[string]any{"target": "Zone B", "mode": "nat_desc"})
	assert.Equal(t, float64(2), decode(t, text)["count"])

	text, _ = call(t, s, "vp_info", map[string]any{"guid": "a1"})
	info := decode(t, text)
	assert.Equal(t, "Zone B", info["path"])
	assert.Equal(t, "zones.xml", info["origin"])

	text, _ = call(t, s, "vp_filter", map[string]any{"text": "room"})
	assert.Equal(t, float64(1), decode(t, text)["count"])

	text, _ = call(t, s, "vp_delete", map[string]any{"guids": "fa"})
	assert.Equal(t, float64(2), decode(t, text)["views"])

	call(t, s, "vp_clear", nil)
	text, _ = call(t, s, "vp_filter", nil)
	assert.Equal(t, float64(0), decode(t, text)["count"])
}
