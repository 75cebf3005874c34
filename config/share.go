package config

// ConfigKeyInfo 存储配置键的相关信息
type ConfigKeyInfo struct {
	Description string   // 配置项描述
	Options     []string // 可选值，如果为空则表示没有限制
	Type        string   // 配置项类型，默认为 "string"
}

// 配置键常量定义
const (
	KeyLang           = "lang"
	KeyLogLevel       = "log_level"
	KeyExportUnits    = "export_units"
	KeyExportFilename = "export_filename"
	KeyExportFilepath = "export_filepath"
	KeyExportSchema   = "export_schema"
	KeyIndent         = "indent"
	KeySortMode       = "sort_mode"
	KeyStripCounts    = "strip_counts"
)

// ConfigKeys 存储所有配置键及其信息
var ConfigKeys = map[string]ConfigKeyInfo{
	KeyLang: {
		Description: "Set language",
		Options:     []string{"en", "ru", "zh-CN"},
		Type:        "string",
	},
	KeyLogLevel: {
		Description: "Set log level",
		Options:     []string{"debug", "info", "warn", "error"},
		Type:        "string",
	},
	KeyExportUnits: {
		Description: "Set units attribute of exported files",
		Type:        "string",
	},
	KeyExportFilename: {
		Description: "Set filename attribute of exported files",
		Type:        "string",
	},
	KeyExportFilepath: {
		Description: "Set filepath attribute of exported files",
		Type:        "string",
	},
	KeyExportSchema: {
		Description: "Set schema location of exported files",
		Type:        "string",
	},
	KeyIndent: {
		Description: "Set indentation width of exported files",
		Type:        "int",
	},
	KeySortMode: {
		Description: "Set default sort mode",
		Options:     []string{"nat_asc", "nat_desc", "guid"},
		Type:        "string",
	},
	KeyStripCounts: {
		Description: "Strip view counts from folder names on import",
		Options:     []string{"true", "false"},
		Type:        "bool",
	},
}

// GetConfigDescription 获取配置键的描述
func GetConfigDescription(key string) string {
	if info, exists := ConfigKeys[key]; exists {
		return info.Description
	}
	return ""
}

// GetConfigOptions 获取配置键的可选值
func GetConfigOptions(key string) []string {
	if info, exists := ConfigKeys[key]; exists {
		return info.Options
	}
	return nil
}

// GetConfigType 获取配置键的类型
func GetConfigType(key string) string {
	if info, exists := ConfigKeys[key]; exists {
		return info.Type
	}
	return "string"
}

// IsValidConfigOption 检查给定的值是否是配置键的有效选项
func IsValidConfigOption(key, value string) bool {
	options := GetConfigOptions(key)
	if len(options) == 0 {
		return true
	}
	for _, option := range options {
		if option == value {
			return true
		}
	}
	return false
}

// GetAllConfigKeys 获取所有配置键
func GetAllConfigKeys() []string {
	keys := make([]string, 0, len(ConfigKeys))
	for key := range ConfigKeys {
		keys = append(keys, key)
	}
	return keys
}
