package console

import (
	"fmt"

	"github.com/philipp01105/nconsole/core"
	"github.com/philipp01105/nconsole/formatter"
)

var prefixFormatter = formatter.NewPrefixFormatter()

// Pool release functions, deferred so a fatal dispatch still recycles.
var (
	putBuffer = formatter.PutBuffer
	putRecord = core.PutRecord
)

// crlf terminates every line produced by the println-style entry points.
const crlf = "\r\n"

// Print renders args like fmt.Sprint and dispatches the result.
func (c *Console) Print(args ...interface{}) {
	buf := formatter.GetBuffer()
	defer putBuffer(buf)
	fmt.Fprint(buf, args...)
	c.DispatchBytes(buf.Bytes())
}

// Printf renders a format string like fmt.Sprintf and dispatches the result.
func (c *Console) Printf(format string, args ...interface{}) {
	buf := formatter.GetBuffer()
	defer putBuffer(buf)
	fmt.Fprintf(buf, format, args...)
	c.DispatchBytes(buf.Bytes())
}

// Println renders args like fmt.Sprintln but terminates the line with
// "\r\n". Println() alone emits exactly "\r\n".
func (c *Console) Println(args ...interface{}) {
	buf := formatter.GetBuffer()
	defer putBuffer(buf)
	fmt.Fprintln(buf, args...)
	buf.Truncate(buf.Len() - 1)
	buf.WriteString(crlf)
	c.DispatchBytes(buf.Bytes())
}

// Printfln is Printf followed by "\r\n", written as a single line.
func (c *Console) Printfln(format string, args ...interface{}) {
	buf := formatter.GetBuffer()
	defer putBuffer(buf)
	fmt.Fprintf(buf, format, args...)
	buf.WriteString(crlf)
	c.DispatchBytes(buf.Bytes())
}

// Infof writes "I: <package> - <message>\r\n", where package is the
// import path of the calling package.
func (c *Console) Infof(format string, args ...interface{}) {
	c.prefixf(core.InfoLevel, format, args)
}

// Warnf writes "W: <package> - <message>\r\n".
func (c *Console) Warnf(format string, args ...interface{}) {
	c.prefixf(core.WarnLevel, format, args)
}

// Errorf writes "E: <package> - <message>\r\n".
func (c *Console) Errorf(format string, args ...interface{}) {
	c.prefixf(core.ErrorLevel, format, args)
}

// prefixf must be called directly from an exported entry point so that
// the caller lookup lands on user code.
func (c *Console) prefixf(level core.Level, format string, args []interface{}) {
	module, _ := core.Caller(2)

	r := core.GetRecord()
	defer putRecord(r)
	r.Level = level
	r.Module = module
	r.Message = fmt.Sprintf(format, args...)

	buf := formatter.GetBuffer()
	defer putBuffer(buf)
	prefixFormatter.FormatRecord(r, buf)
	c.DispatchBytes(buf.Bytes())
}

// Print renders args on the process-wide Console.
func Print(args ...interface{}) {
	std.Print(args...)
}

// Printf renders a format string on the process-wide Console.
func Printf(format string, args ...interface{}) {
	std.Printf(format, args...)
}

// Println renders args on the process-wide Console, terminated by "\r\n".
func Println(args ...interface{}) {
	std.Println(args...)
}

// Printfln renders a format string on the process-wide Console,
// terminated by "\r\n".
func Printfln(format string, args ...interface{}) {
	std.Printfln(format, args...)
}

// Infof writes an "I:" line on the process-wide Console.
func Infof(format string, args ...interface{}) {
	std.prefixf(core.InfoLevel, format, args)
}

// Warnf writes a "W:" line on the process-wide Console.
func Warnf(format string, args ...interface{}) {
	std.prefixf(core.WarnLevel, format, args)
}

// Errorf writes an "E:" line on the process-wide Console.
func Errorf(format string, args ...interface{}) {
	std.prefixf(core.ErrorLevel, format, args)
}
