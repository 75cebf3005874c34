package lang

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTranslate(t *testing.T) {
	t.Cleanup(func() { SetLanguage("en") })

	SetLanguage("ru")
	assert.Equal(t, "ru", Current())
	assert.Equal(t, "Не найдено", T("Not found"))
	assert.Equal(t, "Найдено 1 из 3", Tf("Found {{.Found}} of {{.Total}}", map[string]interface{}{"Found": 1, "Total": 3}))

	SetLanguage("zh-CN")
	assert.Equal(t, "未找到", T("Not found"))

	SetLanguage("en")
	assert.Equal(t, "Found 2 of 3", Tf("Found {{.Found}} of {{.Total}}", map[string]interface{}{"Found": 2, "Total": 3}))
}

func TestFallback(t *testing.T) {
	t.Cleanup(func() { SetLanguage("en") })

	SetLanguage("ru")
	assert.Equal(t, "no such message", T("no such message"))
	assert.Equal(t, "x=5", Tf("x={{.X}}", map[string]interface{}{"X": 5}))

	SetLanguage("")
	assert.Equal(t, "en", Current())
	assert.Equal(t, "Not found", T("Not found"))
}
