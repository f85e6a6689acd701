package filelog

import (
	"path/filepath"
	"runtime"
	"strings"
	"unicode"
)

// CallSiteFunc resolves the call site skip frames above its caller into the caller's
// type name (package name for plain functions) and function name. Either may be empty;
// resolution failures are never fatal.
type CallSiteFunc func(skip int) (typeName, funcName string)

// defaultCallSite resolves the call site from the runtime stack.
func defaultCallSite(skip int) (string, string) {
	// +2 skips runtime.Callers and defaultCallSite itself
	pc := make([]uintptr, 4)
	n := runtime.Callers(skip+2, pc)
	if n == 0 {
		return "", ""
	}

	frame, _ := runtime.CallersFrames(pc[:n]).Next()
	if frame.Function == "" {
		return "", ""
	}
	return splitFuncName(frame.Function)
}

// splitFuncName splits a qualified function name such as
// "github.com/acme/app/server.(*Server).Start.func1" into ("Server", "Start").
// Anonymous function suffixes are dropped in favour of the enclosing function.
func splitFuncName(qualified string) (string, string) {
	base := strings.ReplaceAll(filepath.Base(qualified), "[...]", "")
	parts := strings.Split(base, ".")
	for len(parts) > 2 && isAnonymous(parts[len(parts)-1]) {
		parts = parts[:len(parts)-1]
	}
	switch len(parts) {
	case 0:
		return "", ""
	case 1:
		return "", parts[0]
	}

	fn := parts[len(parts)-1]
	owner := parts[len(parts)-2]
	owner = strings.TrimPrefix(owner, "(")
	owner = strings.TrimPrefix(owner, "*")
	owner = strings.TrimSuffix(owner, ")")
	return owner, fn
}

// isAnonymous reports whether a name element is a compiler generated closure name
// such as "func1", or "1" for nested closures.
func isAnonymous(part string) bool {
	digits := strings.TrimPrefix(part, "func")
	if digits == "" {
		return false
	}
	for _, c := range digits {
		if !unicode.IsDigit(c) {
			return false
		}
	}
	return true
}

// callerSegment builds the text inside the brackets of an entry: the caller type name
// when enabled, then the calling context (callingContext if given, otherwise the resolved
// function name), truncated to the configured width. skip counts frames above the
// caller of callerSegment.
func (l *Logger) callerSegment(skip int, callingContext string) string {
	typeName, funcName := l.callSite(skip + 1)
	if callingContext == "" {
		callingContext = funcName
	}

	segment := callingContext
	if l.includeCaller && typeName != "" {
		segment = typeName + "." + callingContext
	}
	return truncate(segment, l.maxCallerWidth)
}

// truncate cuts s to at most width runes. Shorter strings are returned unchanged.
func truncate(s string, width int) string {
	if width <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	return string(runes[:width])
}
