package mdimport

import (
	"github.com/rgonek/slatemd/document"
	"github.com/yuin/goldmark/ast"
	extast "github.com/yuin/goldmark/extension/ast"
)

func (s *state) convertTableNode(node *extast.Table) document.Node {
	var rows []document.Node
	for child := node.FirstChild(); child != nil; child = child.NextSibling() {
		switch typed := child.(type) {
		case *extast.TableHeader:
			rows = append(rows, s.convertTableRow(typed, KindTableHeaderCell))
		case *extast.TableRow:
			rows = append(rows, s.convertTableRow(typed, KindTableCell))
		}
	}
	return newElement(s.resolveElement(KindTable), rows)
}

// convertTableRow wraps each cell's inline content in a paragraph, the shape
// table plugins expect for cell content.
func (s *state) convertTableRow(row ast.Node, cellKind Kind) document.Node {
	var cells []document.Node
	for child := row.FirstChild(); child != nil; child = child.NextSibling() {
		cell, ok := child.(*extast.TableCell)
		if !ok {
			continue
		}
		paragraph := s.convertParagraphNode(cell)
		cells = append(cells, newElement(s.resolveElement(cellKind), []document.Node{paragraph}))
	}
	return newElement(s.resolveElement(KindTableRow), cells)
}
