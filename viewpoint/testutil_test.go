package viewpoint

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// buildModel 构建测试树：
// Root
// ├── A (a)
// │   ├── v1 (1)
// │   └── B (b)
// │       └── v2 (2)
// └── v3 (3)
func buildModel(t *testing.T) (*Model, map[string]*Node) {
	t.Helper()
	m := NewModel()
	nodes := map[string]*Node{
		"a":  NewFolder("A", "a"),
		"b":  NewFolder("B", "b"),
		"v1": NewView("v1", "1", `<view name="v1" guid="1"/>`, "one.xml"),
		"v2": NewView("v2", "2", `<view name="v2" guid="2"/>`, "one.xml"),
		"v3": NewView("v3", "3", `<view name="v3" guid="3"/>`, "two.xml"),
	}
	require.NoError(t, m.Root().AddChild(nodes["a"]))
	require.NoError(t, nodes["a"].AddChild(nodes["v1"]))
	require.NoError(t, nodes["a"].AddChild(nodes["b"]))
	require.NoError(t, nodes["b"].AddChild(nodes["v2"]))
	require.NoError(t, m.Root().AddChild(nodes["v3"]))
	return m, nodes
}

func names(nodes []*Node) []string {
	out := make([]string, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, n.Name)
	}
	return out
}
