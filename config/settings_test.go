package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sjzsdu/vpm/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSettingsDefaults(t *testing.T) {
	withHome(t)
	t.Chdir(t.TempDir())

	s, err := config.LoadSettings("")
	require.NoError(t, err)
	assert.Equal(t, config.DefaultSettings(), s)
}

func TestLoadSettingsLayers(t *testing.T) {
	withHome(t)
	t.Setenv("VPM_EXPORT_UNITS", "mm")
	t.Setenv("VPM_STRIP_COUNTS", "true")

	path := filepath.Join(t.TempDir(), "custom.yaml")
	yamlContent := "lang: ru\nsort_mode: nat_desc\nexport:\n  filename: site.nwd\n  indent: 4\n"
	require.NoError(t, os.WriteFile(path, []byte(yamlContent), 0644))

	s, err := config.LoadSettings(path)
	require.NoError(t, err)
	assert.Equal(t, "ru", s.Lang)
	assert.Equal(t, "nat_desc", s.SortMode)
	assert.True(t, s.StripCounts)
	assert.Equal(t, "mm", s.Export.Units)
	assert.Equal(t, "site.nwd", s.Export.Filename)
	assert.Equal(t, 4, s.Export.Indent)
}

func TestLoadSettingsInvalid(t *testing.T) {
	withHome(t)
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
	}{
		{name: "未知语言", content: "lang: de\n"},
		{name: "缩进过大", content: "export:\n  indent: 20\n"},
		{name: "非法排序模式", content: "sort_mode: random\n"},
		{name: "非法 schema", content: "export:\n  schema: not a url\n"},
		{name: "YAML 语法错误", content: "lang: [\n"},
	}

	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, "s"+string(rune('a'+i))+".yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0644))
			_, err := config.LoadSettings(path)
			assert.Error(t, err)
		})
	}
}

func TestLoadSettingsMissingExplicitFile(t *testing.T) {
	withHome(t)
	_, err := config.LoadSettings(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoadSettingsBadConfigKey(t *testing.T) {
	withHome(t)
	t.Setenv("VPM_INDENT", "wide")
	t.Chdir(t.TempDir())

	_, err := config.LoadSettings("")
	assert.Error(t, err)
}
