package lang

import (
	"embed"
	"strings"
	"sync"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/sjzsdu/vpm/config"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

//go:embed locales/*.yaml
var localeFS embed.FS

var (
	bundle    *i18n.Bundle
	localizer *i18n.Localizer
	current   string
	mu        sync.RWMutex
)

// 支持的语言
var Supported = []string{"en", "ru", "zh-CN"}

func init() {
	bundle = i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)
	for _, tag := range Supported {
		// 语言包缺失时回退到消息 ID 本身
		_, _ = bundle.LoadMessageFileFS(localeFS, "locales/"+tag+".yaml")
	}
	SetLanguage(config.GetConfigWithDefault(config.KeyLang, "en"))
}

// SetLanguage 切换当前语言，未知语言按 go-i18n 的匹配规则回退到英文
func SetLanguage(tag string) {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		tag = "en"
	}
	mu.Lock()
	defer mu.Unlock()
	localizer = i18n.NewLocalizer(bundle, tag, "en")
	current = tag
}

// Current 返回当前语言
func Current() string {
	mu.RLock()
	defer mu.RUnlock()
	return current
}

// T 翻译消息，没有译文时返回原文
func T(id string) string {
	return Tf(id, nil)
}

// Tf 带模板参数的翻译，模板使用 {{.Name}} 语法
func Tf(id string, data map[string]interface{}) string {
	mu.RLock()
	l := localizer
	mu.RUnlock()

	// 没有译文时 go-i18n 仍会渲染默认消息，同时返回 MessageNotFoundErr
	msg, _ := l.Localize(&i18n.LocalizeConfig{
		DefaultMessage: &i18n.Message{ID: id, Other: id},
		TemplateData:   data,
	})
	if msg == "" {
		return id
	}
	return msg
}
