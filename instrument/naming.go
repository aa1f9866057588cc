package instrument

import (
	"reflect"
	"runtime"
	"strings"
)

// funcNames returns the import path of the package declaring fn and fn's
// name qualified by its receiver or enclosing function, e.g. "Handle",
// "(*Server).Handle" or "Handle.func1".
func funcNames(fn any) (pkgPath, qualName string) {
	v := reflect.ValueOf(fn)
	if v.Kind() != reflect.Func || v.IsNil() {
		return "", ""
	}
	f := runtime.FuncForPC(v.Pointer())
	if f == nil {
		return "", ""
	}
	return splitFuncName(f.Name())
}

func splitFuncName(full string) (pkgPath, qualName string) {
	slash := strings.LastIndex(full, "/")
	dot := strings.Index(full[slash+1:], ".")
	if dot < 0 {
		return "", full
	}
	dot += slash + 1
	// method values are suffixed by the compiler
	return full[:dot], strings.TrimSuffix(full[dot+1:], "-fm")
}
