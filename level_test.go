package filelog

import (
	"sync"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevel_GE(t *testing.T) {
	tests := []struct {
		name      string
		threshold *Level
		entry     *Level
		want      bool
	}{
		{"info admits warning", Info, Warning, true},
		{"info admits info", Info, Info, true},
		{"info drops verbose", Info, Verbose, false},
		{"error admits exception", Error, Exception, true},
		{"critical drops error", Critical, Error, false},
		{"diagnostic admits everything", Diagnostic, Critical, true},
		{"none drops critical", None, Critical, false},
		{"nil entry passes", Warning, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.threshold.GE(tt.entry))
		})
	}
}

func TestLevel_LE(t *testing.T) {
	assert.True(t, Warning.LE(Info))
	assert.False(t, Verbose.LE(Info))
	assert.True(t, Exception.LE(Error))
	assert.True(t, Info.LE(nil))
}

func TestRegistry_Lookup(t *testing.T) {
	r := NewRegistry()

	tests := []struct {
		expr string
		want *Level
	}{
		{"Warning", Warning},
		{"warning", Warning},
		{"WARN", Warning},
		{"  verbose ", Verbose},
		{"excep", Exception},
		{"Err", Error},
		{"diag", Diagnostic},
		{"none", None},
	}
	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			level, ok := r.Lookup(tt.expr)
			require.True(t, ok)
			assert.Same(t, tt.want, level)
		})
	}

	_, ok := r.Lookup("loud")
	assert.False(t, ok)
}

func TestRegistry_SelectFallsBackToDefault(t *testing.T) {
	r := NewRegistry()

	assert.Same(t, Info, r.Select("no such level"))
	assert.Same(t, Info, r.Select(""))
	assert.Same(t, Critical, r.Select("crit"))

	require.NoError(t, r.SetDefault(Warning))
	assert.Same(t, Warning, r.Select("no such level"))
}

func TestRegistry_SetDefaultRejectsUnregistered(t *testing.T) {
	r := NewRegistry()

	err := r.SetDefault(&Level{Name: "Stray", ShortName: "Stry"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidConfig)
	assert.Same(t, Info, r.Default())
}

func TestRegistry_Register(t *testing.T) {
	r := NewRegistry()

	trace, err := r.Register("Trace", "", 60, color.FgCyan)
	require.NoError(t, err)
	assert.Equal(t, "Trac", trace.ShortName)
	assert.Equal(t, 60, trace.Criticality)

	found, ok := r.Lookup("trac")
	require.True(t, ok)
	assert.Same(t, trace, found)
	assert.True(t, Diagnostic.LE(trace))
	assert.False(t, Diagnostic.GE(trace))

	// Registration is local to the registry
	_, ok = NewRegistry().Lookup("Trace")
	assert.False(t, ok)
}

func TestRegistry_RegisterDuplicate(t *testing.T) {
	tests := []struct {
		name      string
		levelName string
		shortName string
	}{
		{"same name", "Warning", "Wrn"},
		{"name differs in case", "wARNING", "Wrn"},
		{"name equals a short name", "Crit", "Cr"},
		{"short name equals a name", "Alert", "info"},
		{"short name equals a short name", "Alert", "Verb"},
		{"default short name collides", "Information", ""},
		{"none is reserved", "None", "Nn"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRegistry()
			before := len(r.Levels())

			_, err := r.Register(tt.levelName, tt.shortName, 25, color.FgMagenta)
			require.Error(t, err)
			assert.True(t, IsDuplicateLevel(err))
			assert.Len(t, r.Levels(), before)
		})
	}
}

func TestRegistry_RegisterEmptyName(t *testing.T) {
	_, err := NewRegistry().Register("  ", "", 25, color.FgMagenta)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestRegistry_Padding(t *testing.T) {
	r := NewRegistry()
	assert.Equal(t, len("Diagnostic")+3, r.Padding())
	assert.Equal(t, len("Excep")+3, r.ShortPadding())

	_, err := r.Register("Notification", "Notify", 25, color.FgMagenta)
	require.NoError(t, err)
	assert.Equal(t, len("Notification")+3, r.Padding())
	assert.Equal(t, len("Notify")+3, r.ShortPadding())
}

func TestRegistry_ConcurrentRegister(t *testing.T) {
	r := NewRegistry()
	names := []string{"Alpha", "Bravo", "Charlie", "Delta", "Echo", "Foxtrot"}

	var wg sync.WaitGroup
	for i, name := range names {
		wg.Add(1)
		go func(name string, criticality int) {
			defer wg.Done()
			_, _ = r.Register(name, "", criticality, color.FgWhite)
			r.Select(name)
			r.Padding()
		}(name, 60+i)
	}
	wg.Wait()

	for _, name := range names {
		_, ok := r.Lookup(name)
		assert.True(t, ok, name)
	}
}

func TestDefaultRegistry_IsShared(t *testing.T) {
	assert.Same(t, DefaultRegistry(), DefaultRegistry())
}
