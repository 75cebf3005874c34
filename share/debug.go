package share

import "sync/atomic"

var debug atomic.Bool

// SetDebug 设置全局调试模式
func SetDebug(on bool) {
	debug.Store(on)
}

// IsDebug 是否处于调试模式
func IsDebug() bool {
	return debug.Load()
}
