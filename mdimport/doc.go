// Package mdimport converts Markdown text into the host editor's document
// tree and decides which clipboard payloads should go through that
// conversion.
//
// Node types are never hard-coded: every conversion resolves them from the
// live editor configuration, so renamed or disabled plugins are honoured.
// Conversion is best effort and never fails; degradations are reported as
// warnings on the Result.
package mdimport

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'slatemd.import'
func tracer() tracing.Trace {
	return tracing.Select("slatemd.import")
}
