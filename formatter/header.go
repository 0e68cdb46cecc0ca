package formatter

import (
	"strconv"

	"github.com/philipp01105/emlog/core"
)

// header field separators, pre-joined to keep writes few
const (
	sepTimeOpen  = "["
	sepTimeClose = "] : "
	sepField     = " : "
	sepMessage   = " -> "
)

// writeHeader writes "<color><app>[<ms>] : <LEVEL> : <file> : <function> : <line> -> ".
func (f *Formatter) writeHeader(w *boundedWriter, h Header) {
	desc := core.DescFor(h.Level)
	if !f.noColor {
		w.WriteString(desc.Color)
	}
	w.WriteString(h.AppName)

	// Number formatting uses a stack scratch array to avoid allocations
	var num [32]byte
	w.WriteString(sepTimeOpen)
	w.Write(strconv.AppendFloat(num[:0], float64(h.Milliseconds), 'f', 1, 32))
	w.WriteString(sepTimeClose)

	w.WriteString(desc.Name)
	w.WriteString(sepField)
	w.WriteString(core.Basename(h.File))
	w.WriteString(sepField)
	w.WriteString(h.Function)
	w.WriteString(sepField)
	w.Write(strconv.AppendInt(num[:0], int64(h.Line), 10))
	w.WriteString(sepMessage)
}
