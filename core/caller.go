package core

import (
	"runtime"
	"strings"
)

// CallerInfo contains information about the origin of a log call
type CallerInfo struct {
	File      string
	ShortFile string
	Line      int
	Function  string
	Defined   bool
}

// GetCaller retrieves caller information. skip has the meaning of
// runtime.Caller's argument.
func GetCaller(skip int) CallerInfo {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return CallerInfo{}
	}

	var funcName string
	if fn := runtime.FuncForPC(pc); fn != nil {
		funcName = ShortFuncName(fn.Name())
	}

	return CallerInfo{
		File:      file,
		ShortFile: Basename(file),
		Line:      line,
		Function:  funcName,
		Defined:   true,
	}
}

// CallerOutside walks the stack of the calling goroutine and returns the
// first frame whose fully qualified function name starts with none of the
// given prefixes. Runtime frames are always skipped.
func CallerOutside(prefixes ...string) CallerInfo {
	var pcs [32]uintptr
	n := runtime.Callers(2, pcs[:])
	frames := runtime.CallersFrames(pcs[:n])
	for {
		frame, more := frames.Next()
		if frame.Function != "" && !strings.HasPrefix(frame.Function, "runtime.") && !hasAnyPrefix(frame.Function, prefixes) {
			return CallerInfo{
				File:      frame.File,
				ShortFile: Basename(frame.File),
				Line:      frame.Line,
				Function:  ShortFuncName(frame.Function),
				Defined:   true,
			}
		}
		if !more {
			return CallerInfo{}
		}
	}
}

func hasAnyPrefix(s string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}

// ShortFuncName strips the import path and package name from a fully
// qualified function name: "example.com/pkg.(*T).Run" becomes "(*T).Run".
func ShortFuncName(name string) string {
	if i := strings.LastIndexByte(name, '/'); i >= 0 {
		name = name[i+1:]
	}
	if i := strings.IndexByte(name, '.'); i >= 0 {
		name = name[i+1:]
	}
	return name
}

// Basename returns the part of path after the last '/' or '\'. A path
// without either separator is returned unchanged.
func Basename(path string) string {
	if i := strings.LastIndexAny(path, `/\`); i >= 0 {
		return path[i+1:]
	}
	return path
}
