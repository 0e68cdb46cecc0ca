// Package core defines the shared building blocks of emlog.
//
// Buffer is the single fixed-capacity byte region every logger owns. It
// is allocated once and never grows; the formatter rewrites it for each
// line and the fault accumulator packs breadcrumb records into it in
// place.
//
// Level is a five-step severity scale (DBG, INFO, WARN, ERR, FATAL). The
// display name and ANSI color of each level come from a descriptor table
// that ValidateLevelTable checks for ambiguities.
//
// Clock is the elapsed-time capability shown in log headers. NopClock
// stands in until an application registers its own, and reports -1.
//
// GetCaller and Basename turn runtime frames into the file, function and
// line tags shown in headers and breadcrumbs.
package core
