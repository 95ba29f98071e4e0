package mdimport

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/rgonek/slatemd/document"
	"github.com/yuin/goldmark/ast"
	extast "github.com/yuin/goldmark/extension/ast"
)

func (s *state) convertInlineChildren(parent ast.Node, stack *markStack) []document.Node {
	var content []document.Node

	for child := parent.FirstChild(); child != nil; child = child.NextSibling() {
		for _, node := range s.convertInlineNode(child, stack) {
			content = appendInlineNode(content, node)
		}
	}

	return content
}

func (s *state) convertInlineNode(node ast.Node, stack *markStack) []document.Node {
	switch typed := node.(type) {
	case *ast.Text:
		textValue := string(typed.Segment.Value(s.source))
		if typed.SoftLineBreak() {
			textValue += "\n"
		}

		var content []document.Node
		if textValue != "" {
			content = append(content, stack.newText(textValue))
		}
		if typed.HardLineBreak() {
			content = append(content, document.EmptyText())
		}
		return content

	case *ast.String:
		return []document.Node{stack.newText(string(typed.Value))}

	case *ast.Emphasis:
		kind := KindItalicMark
		if typed.Level >= 2 {
			kind = KindBoldMark
		}
		return s.convertMarkedChildren(typed, kind, stack)

	case *extast.Strikethrough:
		return s.convertMarkedChildren(typed, KindStrikethroughMark, stack)

	case *ast.CodeSpan:
		return s.convertMarkedChildren(typed, KindCodeMark, stack)

	case *ast.Link:
		return []document.Node{s.newLink(string(typed.Destination), s.convertInlineChildren(typed, stack))}

	case *ast.AutoLink:
		label := stack.newText(string(typed.Label(s.source)))
		destination := string(typed.URL(s.source))
		if typed.AutoLinkType == ast.AutoLinkEmail && !strings.HasPrefix(strings.ToLower(destination), "mailto:") {
			destination = "mailto:" + destination
		}
		return []document.Node{s.newLink(destination, []document.Node{label})}

	case *ast.Image:
		return []document.Node{s.convertImageNode(typed)}

	case *ast.RawHTML:
		return s.convertRawHTML(typed, stack)

	case *extast.TaskCheckBox:
		s.addWarning(
			document.WarningDroppedFeature,
			typed.Kind().String(),
			"task list checkboxes are not supported; item text kept",
		)
		return nil

	default:
		if node.HasChildren() {
			return s.convertInlineChildren(node, stack)
		}
		return s.warnUnknownInline(node, stack)
	}
}

func (s *state) convertMarkedChildren(node ast.Node, kind Kind, stack *markStack) []document.Node {
	markType, ok := s.resolveMark(kind)
	if ok {
		stack.push(markType)
	}
	content := s.convertInlineChildren(node, stack)
	if ok {
		stack.popByType(markType)
	}
	return content
}

func (s *state) newLink(destination string, content []document.Node) document.Node {
	link := newElement(s.resolveElement(KindLink), content)
	link.URL = destination
	return link
}

func (s *state) convertImageNode(node *ast.Image) document.Node {
	image := newElement(s.resolveElement(KindImage), nil)
	image.URL = string(node.Destination)
	if alt := s.plainText(node); alt != "" {
		image.Attrs = map[string]interface{}{
			attrCaption: alt,
		}
	}
	return image
}

func (s *state) convertRawHTML(node *ast.RawHTML, stack *markStack) []document.Node {
	var buf bytes.Buffer
	for i := 0; i < node.Segments.Len(); i++ {
		segment := node.Segments.At(i)
		buf.Write(segment.Value(s.source))
	}

	raw := buf.String()
	if htmlBreakRe.MatchString(raw) && strings.TrimSpace(htmlBreakRe.ReplaceAllString(raw, "")) == "" {
		return []document.Node{document.EmptyText()}
	}
	return []document.Node{stack.newText(raw)}
}

func (s *state) warnUnknownInline(node ast.Node, stack *markStack) []document.Node {
	textValue := strings.TrimSpace(s.plainText(node))
	if textValue == "" {
		return nil
	}

	nodeKind := node.Kind().String()
	s.addWarning(
		document.WarningUnknownNode,
		nodeKind,
		fmt.Sprintf("unsupported markdown inline node: %s", nodeKind),
	)

	return []document.Node{stack.newText(textValue)}
}
