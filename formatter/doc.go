// Package formatter renders runtime log lines into a fixed-size buffer.
//
// A line looks like
//
//	\x1b[33;1mMyApp[1532.4] : WARN : uart.c : uart_tx : 118 -> fifo full\n\r\x1b[0m
//
// The header carries the level color, application name, elapsed
// milliseconds, level name, source file basename, function and line. The
// message is produced by fmt from the caller's template and arguments.
//
// Nothing is ever written past the buffer capacity. The trailer (line end
// and color reset) is reserved up front; header and message are clipped to
// leave room for it. Truncation is silent and never reported.
//
// Header numbers are rendered with strconv's Append functions into a stack
// array, so only the message formatting goes through fmt.
package formatter
