package index

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sjzsdu/vpm/viewpoint"
)

func TestTokens(t *testing.T) {
	assert.Equal(t, []string{"лкп", "213"}, Tokens("ЛКП_213"))
	assert.Equal(t, []string{"zone", "a", "level", "2"}, Tokens(" Zone-A.Level_2 "))
	assert.Empty(t, Tokens("  "))
}

func TestLookupFullNameAndTokens(t *testing.T) {
	v := viewpoint.NewView("ЛКП_213", "", "", "")
	ix := FromSlice([]*viewpoint.Node{v})

	for _, key := range []string{"ЛКП_213", "лкп_213", "лкп", "213"} {
		found := ix.Lookup(key)
		require.Len(t, found, 1, key)
		assert.Equal(t, v, found[0])
	}
	assert.False(t, ix.Has("лкп_21"))
}

func TestLookupOrderAndDedup(t *testing.T) {
	a := viewpoint.NewView("Room 1", "", "", "")
	b := viewpoint.NewView("room-1", "", "", "")
	c := viewpoint.NewView("1 room 1", "", "", "")
	ix := FromSlice([]*viewpoint.Node{a, b, c})

	assert.Equal(t, []*viewpoint.Node{a, b, c}, ix.Lookup("room"))
	assert.Equal(t, []*viewpoint.Node{a, b, c}, ix.Lookup("1"))
	assert.Equal(t, []*viewpoint.Node{a}, ix.Lookup("ROOM 1"))
}

func TestEmptyNameNotIndexed(t *testing.T) {
	ix := FromSlice([]*viewpoint.Node{viewpoint.NewView("", "", "", "")})
	assert.Equal(t, 0, ix.Len())
	assert.False(t, ix.Has(""))
}

func TestPairTreeFirst(t *testing.T) {
	m := viewpoint.NewModel()
	inTree := viewpoint.NewView("Level 1", "t", "", "")
	require.NoError(t, m.Root().AddChild(inTree))
	m.Pool().Add(viewpoint.NewView("Level 1", "p", "", ""))
	m.Pool().Add(viewpoint.NewView("Level 2", "q", "", ""))

	p := NewPair(m)
	found, fromTree := p.Lookup("level 1")
	assert.True(t, fromTree)
	assert.Equal(t, []*viewpoint.Node{inTree}, found)

	found, fromTree = p.Lookup("2")
	assert.False(t, fromTree)
	require.Len(t, found, 1)
	assert.Equal(t, "q", found[0].ID)

	// "level" 树中有匹配，只返回树中的
	found, fromTree = p.Lookup("level")
	assert.True(t, fromTree)
	assert.Len(t, found, 1)

	assert.False(t, p.Has("nothing"))
}
