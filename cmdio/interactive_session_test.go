package cmdio_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/sjzsdu/vpm/cmdio"
	"github.com/sjzsdu/vpm/lang"
)

// MockProcessor 模拟处理器
type MockProcessor struct {
	mock.Mock
}

func (m *MockProcessor) ProcessInput(ctx context.Context, input string) (string, error) {
	args := m.Called(ctx, input)
	return args.String(0), args.Error(1)
}

// MockRenderer 模拟渲染器
type MockRenderer struct {
	mock.Mock
}

func (m *MockRenderer) WriteStream(content string) error {
	args := m.Called(content)
	return args.Error(0)
}

func (m *MockRenderer) Done() {
	m.Called()
}

// 创建一个模拟的输入函数
func createMockInputString(inputs []string) cmdio.InputStringFunc {
	index := 0
	return func(prompt string) (string, error) {
		if index >= len(inputs) {
			return "", fmt.Errorf("no more inputs")
		}
		input := inputs[index]
		index++
		return input, nil
	}
}

func TestIsExitCommand(t *testing.T) {
	session := cmdio.NewInteractiveSession(new(MockProcessor), cmdio.WithExitCommands("exit", "quit"))

	assert.True(t, session.IsExitCommand("exit"))
	assert.True(t, session.IsExitCommand(" QUIT "))
	assert.False(t, session.IsExitCommand("tree"))
}

func TestStart(t *testing.T) {
	mockProc := new(MockProcessor)
	mockRenderer := new(MockRenderer)

	mockProc.On("ProcessInput", mock.Anything, "tree").Return("Root/ [0]", nil)
	mockRenderer.On("WriteStream", "welcome\n").Return(nil)
	mockRenderer.On("WriteStream", "Root/ [0]").Return(nil)
	mockRenderer.On("Done").Return()
	mockRenderer.On("WriteStream", lang.T("Session terminated, thanks for using!")+"\n").Return(nil)

	session := cmdio.NewInteractiveSession(
		mockProc,
		cmdio.WithRenderer(mockRenderer),
		cmdio.WithWelcome("welcome"),
		cmdio.WithExitCommands("exit"),
		cmdio.WithInputStringFunc(createMockInputString([]string{"  ", "tree", "exit"})),
	)

	assert.NoError(t, session.Start(context.Background()))
	mockProc.AssertExpectations(t)
	mockRenderer.AssertExpectations(t)
}

func TestStartError(t *testing.T) {
	mockProc := new(MockProcessor)
	mockRenderer := new(MockRenderer)

	mockProc.On("ProcessInput", mock.Anything, "bad").Return("", fmt.Errorf("boom"))
	mockRenderer.On("WriteStream", lang.T("Error processing input")+": boom\n").Return(nil)
	mockRenderer.On("Done").Return()

	session := cmdio.NewInteractiveSession(
		mockProc,
		cmdio.WithRenderer(mockRenderer),
		cmdio.WithInputStringFunc(createMockInputString([]string{"bad"})),
	)

	// 输入耗尽时返回输入错误
	assert.Error(t, session.Start(context.Background()))
	mockProc.AssertExpectations(t)
	mockRenderer.AssertExpectations(t)
}

func TestStartCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	session := cmdio.NewInteractiveSession(new(MockProcessor), cmdio.WithRenderer(new(MockRenderer)))
	assert.ErrorIs(t, session.Start(ctx), context.Canceled)
}
