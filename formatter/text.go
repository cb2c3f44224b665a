package formatter

import (
	"bytes"
	"strconv"

	"github.com/philipp01105/nconsole/core"
)

// FacadeFormatter renders records of the leveled logging facade:
//
//	INFO - github.com/acme/fw/boot:42 - ready
type FacadeFormatter struct{}

// NewFacadeFormatter creates a new facade formatter
func NewFacadeFormatter() *FacadeFormatter {
	return &FacadeFormatter{}
}

// FormatRecord renders "{LEVEL} - {module}:{line} - {message}\n".
func (f *FacadeFormatter) FormatRecord(r *core.Record, buf *bytes.Buffer) {
	buf.WriteString(r.Level.String())
	buf.WriteString(" - ")
	writeModule(buf, r.Module)
	buf.WriteByte(':')
	buf.Write(strconv.AppendInt(buf.AvailableBuffer(), int64(r.Line), 10))
	buf.WriteString(" - ")
	buf.WriteString(r.Message)
	buf.WriteByte('\n')
}

// PrefixFormatter renders the single-letter form used by the plain
// Infof/Warnf/Errorf entry points:
//
//	I: github.com/acme/fw/boot - ready
type PrefixFormatter struct{}

// NewPrefixFormatter creates a new prefix formatter
func NewPrefixFormatter() *PrefixFormatter {
	return &PrefixFormatter{}
}

// FormatRecord renders "{letter}: {module} - {message}\r\n".
func (f *PrefixFormatter) FormatRecord(r *core.Record, buf *bytes.Buffer) {
	buf.WriteByte(r.Level.Letter())
	buf.WriteString(": ")
	writeModule(buf, r.Module)
	buf.WriteString(" - ")
	buf.WriteString(r.Message)
	buf.WriteString("\r\n")
}

func writeModule(buf *bytes.Buffer, module string) {
	if module == "" {
		module = core.UnknownModule
	}
	buf.WriteString(module)
}
