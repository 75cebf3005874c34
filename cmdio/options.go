package cmdio

// SessionOption 会话选项函数类型
type SessionOption func(*InteractiveSession)

// WithRenderer 设置渲染器
func WithRenderer(renderer Renderer) SessionOption {
	return func(opts *InteractiveSession) {
		opts.renderer = renderer
	}
}

// WithWelcome 设置欢迎信息
func WithWelcome(welcome string) SessionOption {
	return func(opts *InteractiveSession) {
		opts.welcome = welcome
	}
}

// WithTip 添加单个提示信息
func WithTip(tip string) SessionOption {
	return func(opts *InteractiveSession) {
		opts.tips = append(opts.tips, tip)
	}
}

// WithPrompt 设置命令提示符
func WithPrompt(prompt string) SessionOption {
	return func(opts *InteractiveSession) {
		opts.prompt = prompt
	}
}

// WithExitCommands 设置退出命令
func WithExitCommands(commands ...string) SessionOption {
	return func(opts *InteractiveSession) {
		opts.exitCommands = commands
	}
}

// WithInputStringFunc 设置输入函数，测试时注入
func WithInputStringFunc(fn InputStringFunc) SessionOption {
	return func(opts *InteractiveSession) {
		opts.inputStringFunc = fn
	}
}
