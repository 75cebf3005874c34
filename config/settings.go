package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/sjzsdu/vpm/share"
	"gopkg.in/yaml.v3"
)

var validate = validator.New()

// ExportSettings 导出文件外层 exchange 元素的参数
type ExportSettings struct {
	Units    string `yaml:"units" validate:"required"`
	Filename string `yaml:"filename" validate:"required"`
	Filepath string `yaml:"filepath"`
	Schema   string `yaml:"schema" validate:"required,url"`
	Indent   int    `yaml:"indent" validate:"min=0,max=8"`
}

// Settings 运行参数：默认值 < 环境/配置文件 < YAML 设置文件
type Settings struct {
	Lang        string         `yaml:"lang" validate:"oneof=en ru zh-CN"`
	LogLevel    string         `yaml:"log_level" validate:"oneof=debug info warn error"`
	SortMode    string         `yaml:"sort_mode" validate:"oneof=nat_asc nat_desc guid"`
	StripCounts bool           `yaml:"strip_counts"`
	Export      ExportSettings `yaml:"export"`
}

// DefaultSettings 返回内置默认值
func DefaultSettings() *Settings {
	return &Settings{
		Lang:     "en",
		LogLevel: "warn",
		SortMode: "nat_asc",
		Export: ExportSettings{
			Units:    share.EXCHANGE_UNITS,
			Filename: share.EXCHANGE_FILENAME,
			Filepath: share.EXCHANGE_FILEPATH,
			Schema:   share.EXCHANGE_SCHEMA,
			Indent:   2,
		},
	}
}

// LoadSettings 合并默认值、配置键和 YAML 文件并校验。
// path 为空时尝试当前目录下的 vpm.yaml，不存在则忽略。
func LoadSettings(path string) (*Settings, error) {
	s := DefaultSettings()
	if err := s.applyConfigKeys(); err != nil {
		return nil, err
	}

	explicit := path != ""
	if !explicit {
		path = share.SETTINGS_FILE
	}
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, s); err != nil {
			return nil, fmt.Errorf("解析设置文件 %s 失败: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist) && !explicit:
	default:
		return nil, fmt.Errorf("读取设置文件 %s 失败: %w", path, err)
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Validate 校验设置
func (s *Settings) Validate() error {
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("设置无效: %w", err)
	}
	return nil
}

func (s *Settings) applyConfigKeys() error {
	if v := GetConfig(KeyLang); v != "" {
		s.Lang = v
	}
	if v := GetConfig(KeyLogLevel); v != "" {
		s.LogLevel = v
	}
	if v := GetConfig(KeySortMode); v != "" {
		s.SortMode = v
	}
	if v := GetConfig(KeyStripCounts); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s 必须是布尔值: %w", KeyStripCounts, err)
		}
		s.StripCounts = b
	}
	if v := GetConfig(KeyExportUnits); v != "" {
		s.Export.Units = v
	}
	if v := GetConfig(KeyExportFilename); v != "" {
		s.Export.Filename = v
	}
	if v := GetConfig(KeyExportFilepath); v != "" {
		s.Export.Filepath = v
	}
	if v := GetConfig(KeyExportSchema); v != "" {
		s.Export.Schema = v
	}
	if v := GetConfig(KeyIndent); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s 必须是整数: %w", KeyIndent, err)
		}
		s.Export.Indent = n
	}
	return nil
}
