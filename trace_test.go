package filelog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitFuncName(t *testing.T) {
	tests := []struct {
		qualified string
		wantType  string
		wantFunc  string
	}{
		{"github.com/acme/app/server.(*Server).Start", "Server", "Start"},
		{"github.com/acme/app/server.Server.Stop", "Server", "Stop"},
		{"github.com/acme/app/server.(*Server).Start.func1", "Server", "Start"},
		{"github.com/acme/app/server.(*Server).Start.func1.2", "Server", "Start"},
		{"github.com/acme/app/server.Run", "server", "Run"},
		{"github.com/acme/app/server.Run.func3", "server", "Run"},
		{"main.main", "main", "main"},
		{"gopkg.in/yaml.v3.(*decoder).unmarshal", "decoder", "unmarshal"},
		{"github.com/acme/app/cache.(*Cache[...]).Get", "Cache", "Get"},
		{"github.com/acme/app/cache.Map[...]", "cache", "Map"},
		{"orphan", "", "orphan"},
	}

	for _, tt := range tests {
		t.Run(tt.qualified, func(t *testing.T) {
			typeName, funcName := splitFuncName(tt.qualified)
			assert.Equal(t, tt.wantType, typeName)
			assert.Equal(t, tt.wantFunc, funcName)
		})
	}
}

func TestIsAnonymous(t *testing.T) {
	assert.True(t, isAnonymous("func1"))
	assert.True(t, isAnonymous("func12"))
	assert.True(t, isAnonymous("2"))
	assert.False(t, isAnonymous("func"))
	assert.False(t, isAnonymous("function"))
	assert.False(t, isAnonymous("Start"))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "Server.St", truncate("Server.Start", 9))
	assert.Equal(t, "short", truncate("short", 20))
	assert.Equal(t, "über", truncate("übersicht", 4))
	assert.Equal(t, "unbounded", truncate("unbounded", 0))
}

// callProbe logs from methods and closures so the resolved call site can be checked.
type callProbe struct {
	l *Logger
}

func (p *callProbe) Method() {
	p.l.Info("method")
}

func (p *callProbe) Closure() {
	func() {
		p.l.Warning("closure")
	}()
}

func (p *callProbe) Wrapped() {
	wrappedOutput(p.l, "wrapped")
}

// wrappedOutput stands in for a helper that logs on behalf of its caller.
func wrappedOutput(l *Logger, text string) {
	l.Output(2, Info, text)
}

func TestCallSite_Resolved(t *testing.T) {
	l := newPlainLogger(t, nil)
	l.mu.Lock()
	l.callSite = defaultCallSite
	l.mu.Unlock()

	p := &callProbe{l: l}
	p.Method()
	p.Closure()
	p.Wrapped()
	l.Exception(assert.AnError, "", false)

	lines := readLines(t, l.Path())
	require.Len(t, lines, 5)
	assert.Equal(t, "<Info         > [callProbe.Method] method", lines[0])
	assert.Equal(t, "<Warning      > [callProbe.Closure] closure", lines[1])
	assert.Equal(t, "<Info         > [callProbe.Wrapped] wrapped", lines[2])
	assert.Equal(t, "<Exception    > [filelog.TestCallSite] An exception occurred:", lines[3])
}

func TestCallSite_EmptyIsNotFatal(t *testing.T) {
	l, _ := newTestLogger(t, &Config{DisableDateStamp: true, DisableTimeStamp: true},
		WithCallSite(func(int) (string, string) { return "", "" }))

	l.Info("anonymous")
	l.Log(Info, "ctx", "given")

	assert.Equal(t, []string{
		"<Info         > [] anonymous",
		"<Info         > [ctx] given",
	}, readLines(t, l.Path()))
}
