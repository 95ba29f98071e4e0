// Package plugin describes the host editor's plugin configuration as seen by
// this module: the plugin keys it knows about and a read-only view that maps
// each key to the node type currently configured for it.
package plugin

// Element plugin keys.
const (
	ElementParagraph  = "p"
	ElementBlockquote = "blockquote"
	ElementLink       = "a"
	ElementCodeBlock  = "code_block"
	ElementHR         = "hr"
	ElementUL         = "ul"
	ElementOL         = "ol"
	ElementLI         = "li"
	ElementH1         = "h1"
	ElementH2         = "h2"
	ElementH3         = "h3"
	ElementH4         = "h4"
	ElementH5         = "h5"
	ElementH6         = "h6"
	ElementImage      = "img"
	ElementTable      = "table"
	ElementTR         = "tr"
	ElementTD         = "td"
	ElementTH         = "th"
)

// Mark plugin keys.
const (
	MarkBold          = "bold"
	MarkCode          = "code"
	MarkItalic        = "italic"
	MarkStrikethrough = "strikethrough"
	MarkSubscript     = "subscript"
	MarkSuperscript   = "superscript"
	MarkUnderline     = "underline"
)

// HeadingKeys lists the heading element keys indexed by level-1.
var HeadingKeys = [6]string{ElementH1, ElementH2, ElementH3, ElementH4, ElementH5, ElementH6}

// Keys returns every plugin key known to this module.
func Keys() []string {
	return []string{
		ElementParagraph, ElementBlockquote, ElementLink, ElementCodeBlock, ElementHR,
		ElementUL, ElementOL, ElementLI,
		ElementH1, ElementH2, ElementH3, ElementH4, ElementH5, ElementH6,
		ElementImage, ElementTable, ElementTR, ElementTD, ElementTH,
		MarkBold, MarkCode, MarkItalic, MarkStrikethrough,
		MarkSubscript, MarkSuperscript, MarkUnderline,
	}
}
