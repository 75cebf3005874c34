package viewpoint

import (
	"errors"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddChild(t *testing.T) {
	m, nodes := buildModel(t)

	err := nodes["v1"].AddChild(NewView("x", "", "", ""))
	assert.True(t, errors.Is(err, ErrNotFolder))

	// 不能把祖先挂到后代下面
	err = nodes["b"].AddChild(nodes["a"])
	assert.True(t, errors.Is(err, ErrCycle))

	err = nodes["a"].AddChild(nodes["a"])
	assert.True(t, errors.Is(err, ErrCycle))

	assert.Equal(t, m.Root(), nodes["a"].Parent)
}

func TestNewNodeGeneratesID(t *testing.T) {
	f := NewFolder("f", "")
	v := NewView("v", "", "", "")
	assert.NotEmpty(t, f.ID)
	assert.NotEmpty(t, v.ID)
	assert.NotEqual(t, f.ID, v.ID)
	assert.True(t, f.IsFolder())
	assert.Equal(t, KindView, v.Kind())
}

func TestCountViews(t *testing.T) {
	m, nodes := buildModel(t)
	assert.Equal(t, 3, m.Root().CountViews())
	assert.Equal(t, 2, nodes["a"].CountViews())
	assert.Equal(t, 1, nodes["b"].CountViews())
	assert.Equal(t, 1, nodes["v3"].CountViews())
	assert.Equal(t, 0, NewFolder("empty", "").CountViews())
}

func TestViewsOrder(t *testing.T) {
	m, _ := buildModel(t)
	got := names(slices.Collect(m.Root().Views()))
	assert.Equal(t, []string{"v1", "v2", "v3"}, got)

	// 提前停止
	var first []string
	for v := range m.Root().Views() {
		first = append(first, v.Name)
		break
	}
	assert.Equal(t, []string{"v1"}, first)
}

func TestFindByIDAndAncestor(t *testing.T) {
	m, nodes := buildModel(t)
	assert.Equal(t, nodes["v2"], m.Find("2"))
	assert.Nil(t, m.Find("missing"))
	assert.Nil(t, m.Find(""))
	assert.True(t, nodes["a"].IsAncestorOf(nodes["v2"]))
	assert.False(t, nodes["v2"].IsAncestorOf(nodes["a"]))
	assert.False(t, nodes["a"].IsAncestorOf(nodes["a"]))
	assert.Equal(t, "A/B", nodes["b"].Path())
	assert.Equal(t, "", m.Root().Path())
	assert.Equal(t, 3, nodes["v2"].Depth())
}

func TestClone(t *testing.T) {
	_, nodes := buildModel(t)
	c := nodes["a"].Clone()
	assert.Nil(t, c.Parent)
	assert.Equal(t, 2, c.CountViews())
	assert.Equal(t, c, c.Children[0].Parent)
	assert.NotSame(t, nodes["v1"], c.Children[0])
}

func TestPool(t *testing.T) {
	p := NewPool()
	assert.True(t, p.Add(NewView("first", "g", "", "a.xml")))
	assert.False(t, p.Add(NewView("second", "g", "", "b.xml")))
	assert.True(t, p.Add(NewView("other", "h", "", "b.xml")))

	n, ok := p.Get("g")
	assert.True(t, ok)
	assert.Equal(t, "first", n.Name)
	assert.Equal(t, []string{"first", "other"}, names(p.Views()))
	assert.Equal(t, 2, p.Len())

	p.Reset()
	assert.Equal(t, 0, p.Len())
	assert.False(t, p.Has("g"))
}
