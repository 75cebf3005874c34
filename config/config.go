package config

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/sjzsdu/vpm/helper"
	"github.com/sjzsdu/vpm/share"
)

var configMap map[string]string

func init() {
	configMap = make(map[string]string)
	_ = LoadConfig()
}

// GetConfig 依次尝试原始键和带 VPM_ 前缀的环境变量
func GetConfig(key string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	if !strings.HasPrefix(key, share.PREFIX) {
		return os.Getenv(GetEnvKey(key))
	}
	return ""
}

func GetConfigWithDefault(key string, defaultValue string) string {
	value := GetConfig(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// LoadConfig 读取 ~/.vpm/config 中的 KEY=VALUE 行并写入环境变量
func LoadConfig() error {
	file, err := os.Open(helper.GetPath("config"))
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	defer file.Close()

	configMap = make(map[string]string)

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		parts := strings.SplitN(line, "=", 2)
		if len(parts) == 2 {
			configMap[parts[0]] = parts[1]
			os.Setenv(parts[0], parts[1])
		}
	}
	return scanner.Err()
}

// SaveConfig 将当前配置写回 ~/.vpm/config
func SaveConfig() error {
	configDir := helper.GetPath("")
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return err
	}

	keys := make([]string, 0, len(configMap))
	for key := range configMap {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, key := range keys {
		fmt.Fprintf(&b, "%s=%s\n", key, configMap[key])
	}
	return helper.WriteFileAtomic(filepath.Join(configDir, "config"), []byte(b.String()))
}

func GetEnvKey(flagKey string) string {
	return share.PREFIX + strings.ToUpper(flagKey)
}

func normalizeKey(key string) string {
	if strings.HasPrefix(key, share.PREFIX) {
		return key
	}
	return GetEnvKey(key)
}

// SetConfig 设置配置值并更新环境变量
func SetConfig(key, value string) {
	envKey := normalizeKey(key)
	configMap[envKey] = value
	os.Setenv(envKey, value)
}

// ClearConfig 清除指定配置
func ClearConfig(key string) {
	envKey := normalizeKey(key)
	delete(configMap, envKey)
	os.Unsetenv(envKey)
}

// ClearAllConfig 清除所有配置
func ClearAllConfig() {
	for key := range configMap {
		os.Unsetenv(key)
	}
	configMap = make(map[string]string)
}

// GetConfigMap 返回当前已加载的配置
func GetConfigMap() map[string]string {
	return configMap
}
