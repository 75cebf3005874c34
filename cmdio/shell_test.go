package cmdio

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sjzsdu/vpm/session"
)

const shellXML = `<exchange><viewpoints>
<viewfolder name="Zone A (1)" guid="fa"><view name="ЛКП_213" guid="a1"><camera/></view></viewfolder>
<view name="Room 5" guid="p1"/>
<view name="Room 6" guid="p2"/>
</viewpoints></exchange>`

func newShell(t *testing.T) (*ShellProcessor, string) {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "zones.xml")
	require.NoError(t, os.WriteFile(path, []byte(shellXML), 0644))
	return NewShellProcessor(session.New(nil, nil)), dir
}

func run(t *testing.T, p *ShellProcessor, line string) string {
	t.Helper()
	out, err := p.ProcessInput(context.Background(), line)
	require.NoError(t, err, line)
	return out
}

func TestSplitArgs(t *testing.T) {
	args, err := SplitArgs(`mkdir "Zone A" "New folder"  x`)
	require.NoError(t, err)
	assert.Equal(t, []string{"mkdir", "Zone A", "New folder", "x"}, args)

	args, err = SplitArgs(`rename g ""`)
	require.NoError(t, err)
	assert.Equal(t, []string{"rename", "g", ""}, args)

	_, err = SplitArgs(`mkdir "open`)
	assert.Error(t, err)
}

func TestShellWorkflow(t *testing.T) {
	p, dir := newShell(t)

	out := run(t, p, "import "+filepath.Join(dir, "zones.xml"))
	assert.Contains(t, out, "zones.xml")
	assert.Contains(t, out, "ЛКП_213")

	out = run(t, p, `mkdir / Target`)
	assert.Contains(t, out, "Target")

	out = run(t, p, "bulk Target 213 room missing")
	assert.Contains(t, out, "missing")

	out = run(t, p, "tree")
	assert.Contains(t, out, "Target/ [3]")

	out = run(t, p, "search 213 nope")
	assert.Contains(t, out, "nope")

	out = run(t, p, "sort Target nat_desc")
	assert.Contains(t, out, "nat_desc")

	out = run(t, p, "clean")
	assert.Contains(t, out, "Zone A (1) → Zone A")

	out = run(t, p, "folders")
	assert.Equal(t, "/\nZone A\nTarget", out)

	out = run(t, p, "info a1")
	assert.Contains(t, out, "<camera/>")
	assert.Contains(t, out, "/Target")

	out = run(t, p, "ls room")
	assert.Contains(t, out, "Room 6  <p2>  zones.xml")

	exported := filepath.Join(dir, "merged.xml")
	run(t, p, "export "+exported)
	data, err := os.ReadFile(exported)
	require.NoError(t, err)
	assert.Contains(t, string(data), `name="Target (3)"`)

	run(t, p, "rm fa")
	assert.NotContains(t, run(t, p, "tree -folders"), "Zone A")

	run(t, p, "clear")
	assert.Equal(t, "Root/ [0]", run(t, p, "tree"))
}

func TestShellCopy(t *testing.T) {
	p, _ := newShell(t)
	var copied string
	p.copyFunc = func(s string) error {
		copied = s
		return nil
	}

	_, err := p.ProcessInput(context.Background(), "copy")
	assert.Error(t, err)

	tree := run(t, p, "tree")
	run(t, p, "copy")
	assert.Equal(t, tree, copied)
}

func TestShellErrors(t *testing.T) {
	p, _ := newShell(t)

	_, err := p.ProcessInput(context.Background(), "frobnicate")
	assert.Error(t, err)

	_, err = p.ProcessInput(context.Background(), "mv")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mv <target> <guid>...")

	_, err = p.ProcessInput(context.Background(), "export out.xml")
	assert.Error(t, err)

	_, err = p.ProcessInput(context.Background(), "sort / bogus")
	assert.Error(t, err)
}

func TestSuggestions(t *testing.T) {
	p, _ := newShell(t)
	var names []string
	for _, s := range p.Suggestions() {
		names = append(names, s.Text)
	}
	assert.Contains(t, names, "bulk")
	assert.True(t, strings.Contains(run(t, p, "help"), "sortsel <mode> <guid>..."))
}
