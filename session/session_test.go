package session

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/sjzsdu/vpm/config"
	"github.com/sjzsdu/vpm/viewpoint"
	"github.com/sjzsdu/vpm/viewpoint/merge"
	"github.com/sjzsdu/vpm/viewpoint/output"
	"github.com/sjzsdu/vpm/viewpoint/tree"
)

const zonesXML = `<exchange><viewpoints>
<viewfolder name="Zone A (2)" guid="fa">
  <view name="ЛКП_213" guid="a1"><camera x="1"/></view>
  <view name="ЛКП_214" guid="a2"/>
</viewfolder>
</viewpoints></exchange>`

const flatXML = `<exchange><viewpoints>
<view name="Room 5" guid="p1"/>
<view name="Room 6" guid="p2"/>
</viewpoints></exchange>`

func newSession(t *testing.T) (*Session, *observer.ObservedLogs, []string) {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	s := New(nil, zap.New(core))

	dir := t.TempDir()
	var paths []string
	for name, content := range map[string]string{"zones.xml": zonesXML, "flat.xml": flatXML} {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
		paths = append(paths, path)
	}
	return s, logs, paths
}

func TestImportAndExport(t *testing.T) {
	s, logs, paths := newSession(t)
	bad := filepath.Join(t.TempDir(), "bad.xml")
	require.NoError(t, os.WriteFile(bad, []byte(`<exchange><viewpoints><view guid=>`), 0644))

	outcomes := s.Import(context.Background(), append(paths, bad))
	require.Len(t, outcomes, 3)
	assert.Equal(t, merge.StatusParseError, outcomes[2].Status)
	assert.Equal(t, 2, logs.FilterMessage("imported").Len())
	assert.Equal(t, 1, logs.FilterMessage("import failed").Len())

	stats, pool := s.Stats()
	assert.Equal(t, 2, stats.ViewCount)
	assert.Equal(t, 2, pool)

	out := filepath.Join(t.TempDir(), "merged.xml")
	res, err := s.Export(out)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Views)
	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), `name="Zone A (2) (2)"`)
}

func TestStripCountsSetting(t *testing.T) {
	settings := config.DefaultSettings()
	settings.StripCounts = true
	s := New(settings, nil)
	_, _, paths := newSession(t)
	s.Import(context.Background(), paths)
	assert.Equal(t, []string{"", "Zone A"}, s.Folders())

	data, _, err := s.ExportXML()
	require.NoError(t, err)
	assert.Contains(t, string(data), `name="Zone A (2)"`)
}

func TestExportEmpty(t *testing.T) {
	s := New(nil, nil)
	_, err := s.Export(filepath.Join(t.TempDir(), "x.xml"))
	assert.True(t, errors.Is(err, output.ErrEmpty))
}

func TestFolderOperations(t *testing.T) {
	s, _, paths := newSession(t)
	s.Import(context.Background(), paths)

	f, err := s.MkDir("Zone A (2)", "Inner")
	require.NoError(t, err)
	assert.Equal(t, "Zone A (2)/Inner", f.Path())

	_, err = s.MkDir("No such", "x")
	assert.True(t, errors.Is(err, viewpoint.ErrNotFound))

	res, err := s.Move([]string{"a1", "missing"}, f.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Moved)
	assert.Equal(t, 1, res.Skipped)

	require.NoError(t, s.Rename(f.ID, "Renamed"))
	assert.Contains(t, s.Folders(), "Zone A (2)/Renamed")
	assert.True(t, errors.Is(s.Rename("missing", "x"), viewpoint.ErrNotFound))

	renamed := s.CleanNames()
	assert.Len(t, renamed, 1)
	assert.Contains(t, s.Folders(), "Zone A/Renamed")

	del := s.Delete([]string{f.ID})
	assert.Equal(t, 1, del.Folders)
	assert.Equal(t, 1, del.Views)
}

func TestBulkAndSearch(t *testing.T) {
	s, logs, paths := newSession(t)
	s.Import(context.Background(), paths)

	_, err := s.MkDir("", "Target")
	require.NoError(t, err)

	res, err := s.BulkMove("Target", "лкп_213 room\nnone")
	require.NoError(t, err)
	assert.Equal(t, 3, res.Moved)
	assert.Equal(t, []string{"none"}, res.NotFound)
	assert.Equal(t, 1, logs.FilterMessage("bulk move").Len())

	again, err := s.BulkMove("Target", "лкп_213 room")
	require.NoError(t, err)
	assert.Equal(t, 0, again.Moved)
	assert.Equal(t, 3, again.Already)

	search := s.Search("214 room nothing")
	assert.Equal(t, 2, search.Found)
	assert.Equal(t, []string{"nothing"}, search.NotFound)

	text := s.Tree(tree.DefaultOptions())
	assert.Contains(t, text, "Target/ [3]")
}

func TestSortAndInfo(t *testing.T) {
	s, _, paths := newSession(t)
	s.Import(context.Background(), paths)
	_, err := s.Add([]string{"p2", "p1"}, "")
	require.NoError(t, err)

	res, err := s.Sort("", "nat_desc")
	require.NoError(t, err)
	assert.Equal(t, 3, res.Count)
	assert.True(t, strings.HasSuffix(s.Tree(tree.DefaultOptions()), "├── Room 6\n└── Room 5\n"))

	_, err = s.Sort("", "bogus")
	assert.Error(t, err)

	sel, err := s.SortSelected([]string{"p1", "p2"}, "")
	require.NoError(t, err)
	assert.Equal(t, 2, sel.Count)

	info, err := s.Info("a1")
	require.NoError(t, err)
	assert.Equal(t, "zones.xml", info.Origin)
	assert.Contains(t, info.Preview, `<camera x="1"/>`)

	assert.Len(t, s.Filter("room"), 2)

	s.Clear()
	stats, pool := s.Stats()
	assert.Equal(t, 0, stats.ViewCount)
	assert.Equal(t, 0, pool)
}

func TestConcurrentAccess(t *testing.T) {
	s, _, paths := newSession(t)
	s.Import(context.Background(), paths)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = s.BulkMove("", "room")
			_ = s.Search("лкп")
			_ = s.Tree(tree.DefaultOptions())
		}()
	}
	wg.Wait()
	stats, _ := s.Stats()
	assert.Equal(t, 4, stats.ViewCount)
}
