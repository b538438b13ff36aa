package common

import (
	"path"
	"reflect"
	"runtime"
	"strings"
)

// PkgAlias returns the package alias (last element of path) for a given package path.
// Returns empty string if pkgPath is empty.
func PkgAlias(pkgPath string) string {
	if pkgPath == "" {
		return ""
	}

	return path.Base(pkgPath)
}

// FuncName splits the runtime symbol of a function value into its package path
// and the name inside the package, e.g. "example.com/x/pkg.TestFoo.func1" gives
// "example.com/x/pkg" and "TestFoo.func1". Unknown symbols give empty strings.
func FuncName(fn reflect.Value) (pkgPath, name string) {
	if fn.Kind() != reflect.Func || fn.IsNil() {
		return "", ""
	}

	f := runtime.FuncForPC(fn.Pointer())
	if f == nil {
		return "", ""
	}

	full := f.Name()
	slash := strings.LastIndex(full, "/")

	dot := strings.Index(full[slash+1:], ".")
	if dot < 0 {
		return "", full
	}

	dot += slash + 1

	return full[:dot], strings.TrimSuffix(full[dot+1:], "-fm")
}
