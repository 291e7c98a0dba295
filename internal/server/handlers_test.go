package server

import (
	"context"
	"testing"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mj1618/gamectl/internal/platform"
	"github.com/mj1618/gamectl/internal/steps"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type fakeController struct {
	found bool
	power platform.PowerAction
	delay time.Duration
}

func (f *fakeController) Launch() bool      { return true }
func (f *fakeController) Terminate() bool   { return true }
func (f *fakeController) FocusWindow() bool { return f.found }

func (f *fakeController) WindowSize() (platform.Size, bool) {
	return platform.Size{Width: 2560, Height: 1440}, f.found
}

func (f *fakeController) WaitForWindow(context.Context, bool, time.Duration, time.Duration) bool {
	return f.found
}

func (f *fakeController) Shutdown(_ context.Context, action platform.PowerAction, delay time.Duration) bool {
	f.power, f.delay = action, delay
	return true
}

func call(t *testing.T, s *Server, action string, args map[string]interface{}) (*mcp.CallToolResult, steps.StepResult) {
	t.Helper()
	req := mcp.CallToolRequest{}
	req.Params.Name = action
	req.Params.Arguments = args

	res, err := s.actionHandler(action)(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, res.Content, 1)
	text, ok := res.Content[0].(mcp.TextContent)
	require.True(t, ok, "expected text content, got %T", res.Content[0])

	var decoded steps.StepResult
	require.NoError(t, yaml.Unmarshal([]byte(text.Text), &decoded))
	return res, decoded
}

func TestHandler_WindowSize(t *testing.T) {
	s := New(&fakeController{found: true})
	res, r := call(t, s, "size", nil)
	assert.False(t, res.IsError)
	assert.True(t, r.OK)
	assert.Equal(t, 2560, r.Width)
	assert.Equal(t, 1440, r.Height)
}

func TestHandler_NotFoundIsToolError(t *testing.T) {
	s := New(&fakeController{})
	res, r := call(t, s, "focus", nil)
	assert.True(t, res.IsError)
	assert.False(t, r.OK)
	assert.NotEmpty(t, r.Error)
}

func TestHandler_ShutdownParams(t *testing.T) {
	f := &fakeController{}
	s := New(f)
	res, r := call(t, s, "shutdown", map[string]interface{}{"power": "hibernate", "delay": float64(5)})
	assert.False(t, res.IsError)
	assert.Equal(t, "Hibernate", r.Power)
	assert.Equal(t, platform.ActionHibernate, f.power)
	assert.Equal(t, 5*time.Second, f.delay)
}

func TestHandler_ShutdownMissingPower(t *testing.T) {
	s := New(&fakeController{})
	res, r := call(t, s, "shutdown", map[string]interface{}{})
	assert.True(t, res.IsError)
	assert.Contains(t, r.Error, "unknown power action")
}

func TestServe_UnsupportedTransport(t *testing.T) {
	s := New(&fakeController{})
	err := s.Serve(Config{Transport: "carrier-pigeon"})
	assert.ErrorContains(t, err, "unsupported transport")
}

func TestResultToText(t *testing.T) {
	text := resultToText(steps.StepResult{OK: true, Action: "launch"})
	assert.Contains(t, text, "ok: true")
	assert.Contains(t, text, "action: launch")
	assert.NotContains(t, text, "error")
}
