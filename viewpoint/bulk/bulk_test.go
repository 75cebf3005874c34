package bulk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sjzsdu/vpm/viewpoint"
)

func newModel(t *testing.T) (*viewpoint.Model, *viewpoint.Node) {
	t.Helper()
	m := viewpoint.NewModel()
	target := viewpoint.NewFolder("Target", "target")
	other := viewpoint.NewFolder("Other", "other")
	require.NoError(t, m.Root().AddChild(target))
	require.NoError(t, m.Root().AddChild(other))
	require.NoError(t, other.AddChild(viewpoint.NewView("ЛКП_213", "t1", "", "a.xml")))
	require.NoError(t, target.AddChild(viewpoint.NewView("ЛКП_214", "t2", "", "a.xml")))

	m.Pool().Add(viewpoint.NewView("ЛКП_213", "t1", "", "a.xml"))
	m.Pool().Add(viewpoint.NewView("Room 5", "p1", "", "b.xml"))
	m.Pool().Add(viewpoint.NewView("Room 6", "p2", "", "b.xml"))
	return m, target
}

func TestParseTokens(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, ParseTokens(" a\tb\n\nc "))
	assert.Empty(t, ParseTokens("   "))
}

func TestMove(t *testing.T) {
	m, target := newModel(t)

	res := Move(m, target, []string{"лкп_213", "214", "room", "missing"})
	assert.Equal(t, target, res.Target)
	assert.Equal(t, 3, res.Moved)
	assert.Equal(t, 1, res.Already)
	assert.Equal(t, []string{"missing"}, res.NotFound)
	assert.Equal(t, 1, res.Before)
	assert.Equal(t, 4, res.After)

	assert.Equal(t, target, m.Find("t1").Parent)
	assert.Equal(t, target, m.Find("p1").Parent)
	assert.Equal(t, target, m.Find("p2").Parent)
	// 池不被消费
	assert.Equal(t, 3, m.Pool().Len())
}

func TestMoveIdempotent(t *testing.T) {
	m, target := newModel(t)
	tokens := []string{"ЛКП_213", "room", "214"}

	first := Move(m, target, tokens)
	assert.Equal(t, 3, first.Moved)

	second := Move(m, target, tokens)
	assert.Equal(t, 0, second.Moved)
	assert.Equal(t, 4, second.Already)
	assert.Equal(t, first.After, second.Before)
	assert.Equal(t, second.Before, second.After)
	assert.Equal(t, 4, m.Root().CountViews())
}

func TestMovePoolEntryAlreadyInTree(t *testing.T) {
	m := viewpoint.NewModel()
	target := viewpoint.NewFolder("Target", "")
	elsewhere := viewpoint.NewFolder("Elsewhere", "")
	require.NoError(t, m.Root().AddChild(target))
	require.NoError(t, m.Root().AddChild(elsewhere))
	// 树中同 guid 的节点改过名，只有池里的名字能匹配
	require.NoError(t, elsewhere.AddChild(viewpoint.NewView("renamed", "g", "", "")))
	m.Pool().Add(viewpoint.NewView("Original", "g", "", ""))

	res := Move(m, target, []string{"original"})
	assert.Equal(t, 1, res.Moved)
	assert.Equal(t, 1, m.Root().CountViews())
	assert.Equal(t, target, m.Find("g").Parent)
}

func TestMoveTargetIsView(t *testing.T) {
	m, target := newModel(t)
	res := Move(m, m.Find("t2"), []string{"room"})
	assert.Equal(t, target, res.Target)
	assert.Equal(t, 2, res.Moved)
}

func TestSearch(t *testing.T) {
	m, _ := newModel(t)
	res := Search(m, []string{"лкп", "Room 6", "nothing", ""})
	assert.Equal(t, 3, res.Total)
	assert.Equal(t, 2, res.Found)
	assert.Equal(t, []string{"nothing"}, res.NotFound)
	assert.False(t, res.AllFound())

	assert.True(t, Search(m, []string{"room"}).AllFound())
	// 查找不修改模型
	assert.Equal(t, 2, m.Root().CountViews())
}
