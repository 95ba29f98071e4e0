package mdimport

import "github.com/rgonek/slatemd/document"

// FilterBreaklines reports whether n is a structurally empty leaf, such as the
// leaves left behind by hard line breaks.
func FilterBreaklines(n document.Node) bool {
	return n.Text == ""
}
