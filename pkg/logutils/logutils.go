package logutils

import (
	"path/filepath"
	"strconv"
)

// ShortCallerFormatter renders the caller as dir/file.go:line instead of the full path
func ShortCallerFormatter(_ uintptr, file string, line int) string {
	short := filepath.Join(filepath.Base(filepath.Dir(file)), filepath.Base(file))
	return short + ":" + strconv.Itoa(line)
}
