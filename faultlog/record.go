package faultlog

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
)

// Record is a parsed breadcrumb.
type Record struct {
	File string
	Line int
}

// String formats the record as file:line
func (r Record) String() string {
	return r.File + ":" + strconv.Itoa(r.Line)
}

// Records parses the stored records, oldest first.
func (a *Accumulator) Records() []Record {
	data := a.buf.Bytes()
	return ParseRecords(data[:a.Occupied()], a.sep)
}

// ParseRecords parses a raw buffer, such as a Snapshot pulled from a
// device, into records. Parsing stops at the first zero byte. Bytes after
// the last separator are ignored.
//
// The line number is the trailing run of digits of each record, so a
// filename that itself ends in digits cannot be told apart. With '-' as
// separator a negative line number splits its record in two.
func ParseRecords(raw []byte, sep byte) []Record {
	if i := bytes.IndexByte(raw, 0); i >= 0 {
		raw = raw[:i]
	}
	var out []Record
	for {
		i := bytes.IndexByte(raw, sep)
		if i < 0 {
			return out
		}
		out = append(out, parseRecord(raw[:i], sep))
		raw = raw[i+1:]
	}
}

func parseRecord(chunk []byte, sep byte) Record {
	start := len(chunk)
	for start > 0 && chunk[start-1] >= '0' && chunk[start-1] <= '9' {
		start--
	}
	line, _ := strconv.Atoi(string(chunk[start:]))
	file := chunk[:start]
	if sep != '-' && start > 0 && start < len(chunk) && chunk[start-1] == '-' {
		line = -line
		file = chunk[:start-1]
	}
	return Record{File: string(file), Line: line}
}

// Dump writes the stored records to w, one file:line per line, oldest
// first.
func (a *Accumulator) Dump(w io.Writer) error {
	for _, r := range a.Records() {
		if _, err := fmt.Fprintf(w, "%s:%d\n", r.File, r.Line); err != nil {
			return err
		}
	}
	return nil
}
