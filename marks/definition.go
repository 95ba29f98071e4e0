package marks

import (
	"strings"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
)

// Rule matches an HTML element by node name, inline style, or both. A rule
// with both parts set requires both to match.
type Rule struct {
	// ValidNodeName lists accepted element names, e.g. STRONG.
	ValidNodeName []string
	// ValidStyle maps a CSS property to its accepted values. Every listed
	// property must match one of its values.
	ValidStyle map[string][]string

	selector cascadia.Selector
}

// DeserializeHTML groups the HTML import rules of a definition.
type DeserializeHTML struct {
	Rules []Rule
	// Query is an optional veto evaluated after a rule matched.
	Query func(el *html.Node) bool
}

// Definition describes one plugin registered with the host editor.
type Definition struct {
	Key       string
	IsLeaf    bool
	IsElement bool
	IsVoid    bool
	// Hotkey is the host shortcut binding, e.g. "mod+b".
	Hotkey string
	// Clear names the mark removed when this one is toggled on.
	Clear           string
	DeserializeHTML DeserializeHTML
}

// NodeNameRule returns a rule accepting elements with one of the given names.
func NodeNameRule(names ...string) Rule {
	return Rule{
		ValidNodeName: names,
		selector:      compileNodeNames(names),
	}
}

// StyleRule returns a rule accepting elements whose inline style sets the
// property to one of the values.
func StyleRule(property string, values ...string) Rule {
	return Rule{
		ValidStyle: map[string][]string{
			strings.ToLower(property): values,
		},
	}
}

// Match reports whether el satisfies the rule.
func (r Rule) Match(el *html.Node) bool {
	if el == nil || el.Type != html.ElementNode {
		return false
	}
	if len(r.ValidNodeName) == 0 && len(r.ValidStyle) == 0 {
		return false
	}

	if len(r.ValidNodeName) > 0 {
		sel := r.selector
		if sel == nil {
			sel = compileNodeNames(r.ValidNodeName)
		}
		if sel == nil || !sel.Match(el) {
			return false
		}
	}

	if len(r.ValidStyle) > 0 {
		styles := inlineStyle(el)
		for property, accepted := range r.ValidStyle {
			value, ok := styles[strings.ToLower(property)]
			if !ok || !containsFold(accepted, value) {
				return false
			}
		}
	}

	return true
}

// AcceptsHTML reports whether the host should import el as this definition:
// one rule must match and the query, if any, must not veto.
func (d Definition) AcceptsHTML(el *html.Node) bool {
	matched := false
	for _, rule := range d.DeserializeHTML.Rules {
		if rule.Match(el) {
			matched = true
			break
		}
	}
	if !matched {
		return false
	}
	if d.DeserializeHTML.Query != nil && !d.DeserializeHTML.Query(el) {
		tracer().Debugf("%s: <%s> vetoed by query", d.Key, el.Data)
		return false
	}
	return true
}

func compileNodeNames(names []string) cascadia.Selector {
	if len(names) == 0 {
		return nil
	}
	lowered := make([]string, 0, len(names))
	for _, name := range names {
		if name = strings.TrimSpace(name); name != "" {
			lowered = append(lowered, strings.ToLower(name))
		}
	}
	sel, err := cascadia.Compile(strings.Join(lowered, ", "))
	if err != nil {
		tracer().Errorf("invalid node name list %v: %v", names, err)
		return nil
	}
	return sel
}

func containsFold(values []string, value string) bool {
	for _, v := range values {
		if strings.EqualFold(v, value) {
			return true
		}
	}
	return false
}
