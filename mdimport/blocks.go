package mdimport

import (
	"regexp"
	"strings"

	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/rgonek/slatemd/document"
	"github.com/yuin/goldmark/ast"
	extast "github.com/yuin/goldmark/extension/ast"
)

const (
	attrLanguage = "language"
	attrCaption  = "caption"
	attrBreak    = "break"
)

var htmlBreakRe = regexp.MustCompile(`(?i)<br\s*/?>`)

func (s *state) convertParagraphNode(node ast.Node) document.Node {
	content := s.convertInlineChildren(node, newMarkStack())
	if _, ok := node.FirstChild().(*extast.TaskCheckBox); ok && len(content) > 0 && content[0].IsText() {
		content[0].Text = strings.TrimLeft(content[0].Text, " \t")
	}
	return newElement(s.resolveElement(KindParagraph), content)
}

func (s *state) convertHeadingNode(node *ast.Heading) document.Node {
	content := s.convertInlineChildren(node, newMarkStack())
	return newElement(s.resolveElement(HeadingKind(node.Level)), content)
}

func (s *state) convertBlockquoteNode(node *ast.Blockquote) document.Node {
	content := s.convertBlockChildren(node)
	return newElement(s.resolveElement(KindBlockquote), content)
}

func (s *state) convertFencedCodeBlockNode(node *ast.FencedCodeBlock) document.Node {
	language := strings.TrimSpace(string(node.Language(s.source)))
	return s.newCodeBlock(s.mapLanguage(language), codeValue(node, s.source))
}

func (s *state) convertCodeBlockNode(node *ast.CodeBlock) document.Node {
	return s.newCodeBlock("", codeValue(node, s.source))
}

func (s *state) newCodeBlock(language, value string) document.Node {
	codeBlock := newElement(s.resolveElement(KindCodeBlock), []document.Node{
		document.NewText(value),
	})
	if language != "" {
		codeBlock.Attrs = map[string]interface{}{
			attrLanguage: language,
		}
	}
	return codeBlock
}

func (s *state) mapLanguage(language string) string {
	if language == "" {
		return ""
	}
	if mapped, ok := s.options.LanguageMap[language]; ok {
		return mapped
	}
	if s.options.CanonicalLanguages {
		if lexer := lexers.Get(language); lexer != nil {
			return strings.ToLower(lexer.Config().Name)
		}
	}
	return language
}

func codeValue(node ast.Node, source []byte) string {
	return strings.TrimSuffix(string(linesValue(node, source)), "\n")
}

// convertHTMLBlockNode keeps raw HTML as paragraph text. Blocks made of line
// breaks are flagged so hosts can treat them as spacing.
func (s *state) convertHTMLBlockNode(node *ast.HTMLBlock) document.Node {
	raw := string(linesValue(node, s.source))
	if node.HasClosure() {
		raw += string(node.ClosureLine.Value(s.source))
	}
	raw = strings.TrimRight(raw, "\n")

	paragraph := newElement(s.resolveElement(KindParagraph), nil)
	if htmlBreakRe.MatchString(raw) {
		paragraph.Attrs = map[string]interface{}{
			attrBreak: true,
		}
		raw = htmlBreakRe.ReplaceAllString(raw, "")
	}
	paragraph.Children = []document.Node{document.NewText(raw)}

	return paragraph
}
