package mdimport

import (
	"github.com/rgonek/slatemd/document"
	"github.com/yuin/goldmark/ast"
)

func (s *state) convertListNode(node *ast.List) document.Node {
	kind := KindUnorderedList
	if node.IsOrdered() {
		kind = KindOrderedList
	}

	var items []document.Node
	for child := node.FirstChild(); child != nil; child = child.NextSibling() {
		if item, ok := child.(*ast.ListItem); ok {
			items = append(items, s.convertListItemNode(item))
		}
	}

	return newElement(s.resolveElement(kind), items)
}

func (s *state) convertListItemNode(node *ast.ListItem) document.Node {
	return newElement(s.resolveElement(KindListItem), s.convertBlockChildren(node))
}
