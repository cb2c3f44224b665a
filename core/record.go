package core

import (
	"runtime"
	"strings"
	"sync"
)

// UnknownModule is reported when the originating package cannot be resolved.
const UnknownModule = "unknown source"

// Record is a single rendered message on its way to the console. It is
// built per call, consumed by one dispatch and then discarded.
type Record struct {
	Level   Level
	Module  string
	Line    int
	Message string
}

// recordPool is a pool of Record objects to reduce allocations
var recordPool = sync.Pool{
	New: func() interface{} {
		return &Record{}
	},
}

// GetRecord retrieves a Record from the pool with its source set to
// UnknownModule.
func GetRecord() *Record {
	r := recordPool.Get().(*Record)
	r.Module = UnknownModule
	r.Line = 0
	return r
}

// PutRecord returns a Record to the pool
func PutRecord(r *Record) {
	if r == nil {
		return
	}
	r.Level = 0
	r.Module = ""
	r.Line = 0
	r.Message = ""
	recordPool.Put(r)
}

// Caller returns the import path of the package containing the calling
// function and the line of the call. skip 0 identifies the caller of Caller.
func Caller(skip int) (module string, line int) {
	pc, _, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return UnknownModule, 0
	}
	fn := runtime.FuncForPC(pc)
	if fn == nil {
		return UnknownModule, line
	}
	return ModuleOf(fn.Name()), line
}

// ModuleOf strips the function part from a fully qualified function name
// as reported by runtime.FuncForPC:
//
//	github.com/acme/fw/uart.(*Port).Write -> github.com/acme/fw/uart
//	main.main                             -> main
//
// The runtime escapes dots in the last path element as %2e; they are
// restored.
func ModuleOf(funcName string) string {
	if funcName == "" {
		return UnknownModule
	}
	slash := strings.LastIndexByte(funcName, '/')
	dot := strings.IndexByte(funcName[slash+1:], '.')
	if dot < 0 {
		return funcName
	}
	return strings.ReplaceAll(funcName[:slash+1+dot], "%2e", ".")
}
