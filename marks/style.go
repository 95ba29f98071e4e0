package marks

import (
	"strings"

	"github.com/andybalholm/cascadia"
	"github.com/aymerick/douceur/parser"
	"golang.org/x/net/html"
)

// inlineStyle returns the declarations of el's style attribute keyed by
// lower-case property name. Later declarations win.
func inlineStyle(el *html.Node) map[string]string {
	styles := map[string]string{}
	raw := attr(el, "style")
	if strings.TrimSpace(raw) == "" {
		return styles
	}

	// the parser drops the value of an unterminated last declaration
	declarations, err := parser.ParseDeclarations(strings.TrimRight(raw, "; \t\n") + ";")
	if err != nil {
		tracer().Debugf("ignoring malformed style %q: %v", raw, err)
		return styles
	}
	for _, decl := range declarations {
		value := strings.TrimSpace(decl.Value)
		value = strings.Trim(value, `"'`)
		styles[strings.ToLower(strings.TrimSpace(decl.Property))] = value
	}
	return styles
}

func attr(el *html.Node, name string) string {
	if el == nil {
		return ""
	}
	for _, a := range el.Attr {
		if strings.EqualFold(a.Key, name) {
			return a.Val
		}
	}
	return ""
}

func hasStyle(el *html.Node, property, value string) bool {
	got, ok := inlineStyle(el)[property]
	return ok && strings.EqualFold(got, value)
}

// someElement reports whether root or any element below it satisfies pred.
func someElement(root *html.Node, pred func(*html.Node) bool) bool {
	if root == nil {
		return false
	}
	if root.Type == html.ElementNode && pred(root) {
		return true
	}
	for child := root.FirstChild; child != nil; child = child.NextSibling {
		if someElement(child, pred) {
			return true
		}
	}
	return false
}

// closest returns el or its nearest ancestor matched by sel.
func closest(el *html.Node, sel cascadia.Selector) *html.Node {
	for n := el; n != nil; n = n.Parent {
		if n.Type == html.ElementNode && sel.Match(n) {
			return n
		}
	}
	return nil
}

func withoutStyle(property, value string) func(*html.Node) bool {
	return func(el *html.Node) bool {
		return !someElement(el, func(n *html.Node) bool {
			return hasStyle(n, property, value)
		})
	}
}
