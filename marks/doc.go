// Package marks holds the declarative definitions of the inline formatting
// marks (bold, code, italic, strikethrough, subscript, superscript, underline)
// and the horizontal rule element, as registered with the host editor.
//
// Definitions are plain values built once at package initialisation. The
// host's keyboard and HTML import pipelines consume them; this package only
// evaluates the HTML import rules against a parsed element so the host's
// generic engine and tests agree on what each mark accepts.
package marks

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'slatemd.marks'
func tracer() tracing.Trace {
	return tracing.Select("slatemd.marks")
}
