// Package faultlog records compact breadcrumbs while a device is handling
// a fault, when a full formatting stack may be unsafe to use.
//
// Each breadcrumb is stored as text, <file><line><separator>, for example
// "uart.c118-". Records are packed back to back from offset 0 of a
// core.Buffer and followed by zero padding. The separator is the only
// boundary marker, so the buffer can be re-scanned at any time and copied
// out verbatim by a crash handler.
//
// When a new record does not fit, the oldest records are shifted out of
// the front of the buffer. Append does not allocate.
package faultlog
