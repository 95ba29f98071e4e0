package mdimport

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/rgonek/slatemd/document"
	"github.com/yuin/goldmark/ast"
	extast "github.com/yuin/goldmark/extension/ast"
)

func (s *state) convertBlockChildren(parent ast.Node) document.Fragment {
	var content document.Fragment
	for child := parent.FirstChild(); child != nil; child = child.NextSibling() {
		if converted, ok := s.convertBlockNode(child); ok {
			content = append(content, converted)
		}
	}
	return content
}

func (s *state) convertBlockNode(node ast.Node) (document.Node, bool) {
	switch typed := node.(type) {
	case *ast.Paragraph:
		return s.convertParagraphNode(typed), true
	case *ast.TextBlock:
		return s.convertParagraphNode(typed), true
	case *ast.Heading:
		return s.convertHeadingNode(typed), true
	case *ast.Blockquote:
		return s.convertBlockquoteNode(typed), true
	case *ast.ThematicBreak:
		return newElement(s.resolveElement(KindThematicBreak), nil), true
	case *ast.FencedCodeBlock:
		return s.convertFencedCodeBlockNode(typed), true
	case *ast.CodeBlock:
		return s.convertCodeBlockNode(typed), true
	case *ast.List:
		return s.convertListNode(typed), true
	case *ast.ListItem:
		return s.convertListItemNode(typed), true
	case *ast.HTMLBlock:
		return s.convertHTMLBlockNode(typed), true
	case *extast.Table:
		return s.convertTableNode(typed), true
	default:
		nodeKind := typed.Kind().String()
		textValue := strings.TrimSpace(s.plainText(node))
		if textValue == "" {
			return document.Node{}, false
		}
		s.addWarning(
			document.WarningUnknownNode,
			nodeKind,
			fmt.Sprintf("unsupported markdown block node: %s", nodeKind),
		)
		return newElement(s.resolveElement(KindParagraph), []document.Node{
			document.NewText(textValue),
		}), true
	}
}

// plainText collects the literal text below node.
func (s *state) plainText(node ast.Node) string {
	var buf bytes.Buffer
	_ = ast.Walk(node, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch typed := n.(type) {
		case *ast.Text:
			buf.Write(typed.Segment.Value(s.source))
			if typed.SoftLineBreak() || typed.HardLineBreak() {
				buf.WriteByte('\n')
			}
		case *ast.String:
			buf.Write(typed.Value)
		default:
			if n.Type() == ast.TypeBlock && !n.HasChildren() {
				buf.Write(linesValue(n, s.source))
			}
		}
		return ast.WalkContinue, nil
	})
	return buf.String()
}

func linesValue(node ast.Node, source []byte) []byte {
	var buf bytes.Buffer
	lines := node.Lines()
	for i := 0; i < lines.Len(); i++ {
		segment := lines.At(i)
		buf.Write(segment.Value(source))
	}
	return buf.Bytes()
}
