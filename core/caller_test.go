package core

import (
	"strings"
	"testing"
)

func TestBasename(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/a/b/c.c", "c.c"},
		{"c.c", "c.c"},
		{`C:\src\drv\uart.c`, "uart.c"},
		{"mixed/dir\\file.go", "file.go"},
		{"dir/", ""},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := Basename(tt.path); got != tt.want {
				t.Errorf("Basename(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestShortFuncName(t *testing.T) {
	tests := map[string]string{
		"github.com/philipp01105/emlog/core.TestShortFuncName": "TestShortFuncName",
		"example.com/x/pkg.(*Logger).Logf":                     "(*Logger).Logf",
		"main.main":                                            "main",
		"plain":                                                "plain",
	}
	for in, want := range tests {
		if got := ShortFuncName(in); got != want {
			t.Errorf("ShortFuncName(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestGetCaller(t *testing.T) {
	caller := GetCaller(1)
	if !caller.Defined {
		t.Fatal("GetCaller() returned undefined CallerInfo")
	}
	if caller.ShortFile != "caller_test.go" {
		t.Errorf("ShortFile = %q, want caller_test.go", caller.ShortFile)
	}
	if caller.Line == 0 {
		t.Error("Expected non-zero line number")
	}
	if caller.Function != "TestGetCaller" {
		t.Errorf("Function = %q, want TestGetCaller", caller.Function)
	}
}

func TestCallerOutside(t *testing.T) {
	caller := helperFrame()
	if !caller.Defined {
		t.Fatal("CallerOutside() returned undefined CallerInfo")
	}
	if caller.Function != "TestCallerOutside" {
		t.Errorf("Function = %q, want TestCallerOutside", caller.Function)
	}
	if !strings.HasSuffix(caller.File, "caller_test.go") {
		t.Errorf("File = %q", caller.File)
	}
}

func helperFrame() CallerInfo {
	return CallerOutside("github.com/philipp01105/emlog/core.helperFrame")
}
