package mdimport

import "github.com/rgonek/slatemd/plugin"

// Kind is an abstract node kind the importer can emit.
type Kind string

const (
	KindParagraph         Kind = "paragraph"
	KindBlockquote        Kind = "blockquote"
	KindLink              Kind = "link"
	KindCodeMark          Kind = "code-mark"
	KindItalicMark        Kind = "italic-mark"
	KindBoldMark          Kind = "bold-mark"
	KindStrikethroughMark Kind = "strikethrough-mark"
	KindCodeBlock         Kind = "code-block"
	KindThematicBreak     Kind = "thematic-break"
	KindUnorderedList     Kind = "unordered-list"
	KindOrderedList       Kind = "ordered-list"
	KindListItem          Kind = "list-item"
	KindHeading1          Kind = "heading-1"
	KindHeading2          Kind = "heading-2"
	KindHeading3          Kind = "heading-3"
	KindHeading4          Kind = "heading-4"
	KindHeading5          Kind = "heading-5"
	KindHeading6          Kind = "heading-6"
	KindImage             Kind = "image"
	KindTable             Kind = "table"
	KindTableRow          Kind = "table-row"
	KindTableCell         Kind = "table-cell"
	KindTableHeaderCell   Kind = "table-header-cell"
)

// Underline, subscript and superscript have no Markdown syntax and therefore
// no kind: importing never produces them.
var kindPluginKeys = map[Kind]string{
	KindParagraph:         plugin.ElementParagraph,
	KindBlockquote:        plugin.ElementBlockquote,
	KindLink:              plugin.ElementLink,
	KindCodeMark:          plugin.MarkCode,
	KindItalicMark:        plugin.MarkItalic,
	KindBoldMark:          plugin.MarkBold,
	KindStrikethroughMark: plugin.MarkStrikethrough,
	KindCodeBlock:         plugin.ElementCodeBlock,
	KindThematicBreak:     plugin.ElementHR,
	KindUnorderedList:     plugin.ElementUL,
	KindOrderedList:       plugin.ElementOL,
	KindListItem:          plugin.ElementLI,
	KindHeading1:          plugin.ElementH1,
	KindHeading2:          plugin.ElementH2,
	KindHeading3:          plugin.ElementH3,
	KindHeading4:          plugin.ElementH4,
	KindHeading5:          plugin.ElementH5,
	KindHeading6:          plugin.ElementH6,
	KindImage:             plugin.ElementImage,
	KindTable:             plugin.ElementTable,
	KindTableRow:          plugin.ElementTR,
	KindTableCell:         plugin.ElementTD,
	KindTableHeaderCell:   plugin.ElementTH,
}

var orderedKinds = []Kind{
	KindParagraph, KindBlockquote, KindLink,
	KindCodeMark, KindItalicMark, KindBoldMark, KindStrikethroughMark,
	KindCodeBlock, KindThematicBreak,
	KindUnorderedList, KindOrderedList, KindListItem,
	KindHeading1, KindHeading2, KindHeading3, KindHeading4, KindHeading5, KindHeading6,
	KindImage, KindTable, KindTableRow, KindTableCell, KindTableHeaderCell,
}

var headingKinds = [6]Kind{KindHeading1, KindHeading2, KindHeading3, KindHeading4, KindHeading5, KindHeading6}

// Kinds returns every kind the importer can emit, in a stable order.
func Kinds() []Kind {
	kinds := make([]Kind, len(orderedKinds))
	copy(kinds, orderedKinds)
	return kinds
}

// HeadingKind returns the kind of a heading level, clamped into 1..6.
func HeadingKind(level int) Kind {
	if level < 1 {
		level = 1
	}
	if level > 6 {
		level = 6
	}
	return headingKinds[level-1]
}

// PluginKey returns the host plugin key a kind is registered under.
func (k Kind) PluginKey() string {
	return kindPluginKeys[k]
}

// NodeTypes is the node-type mapping of one editor configuration snapshot.
type NodeTypes struct {
	types map[Kind]string
}

// ResolveNodeTypes looks up the current node type of every kind. Kinds whose
// plugin is missing or disabled are left out. A nil editor registers nothing.
func ResolveNodeTypes(ed plugin.Editor) NodeTypes {
	types := make(map[Kind]string, len(kindPluginKeys))
	if ed == nil {
		return NodeTypes{types: types}
	}
	for kind, key := range kindPluginKeys {
		if nodeType, ok := ed.PluginType(key); ok && nodeType != "" {
			types[kind] = nodeType
		}
	}
	return NodeTypes{types: types}
}

// Lookup returns the node type of kind and whether it is registered.
func (t NodeTypes) Lookup(kind Kind) (string, bool) {
	nodeType, ok := t.types[kind]
	return nodeType, ok
}

// Heading returns the node type of a heading level, clamped into 1..6.
func (t NodeTypes) Heading(level int) (string, bool) {
	return t.Lookup(HeadingKind(level))
}
