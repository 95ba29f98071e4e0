package marks

import (
	"github.com/andybalholm/cascadia"
	"github.com/rgonek/slatemd/plugin"
	"golang.org/x/net/html"
)

var (
	preSelector       = cascadia.MustCompile("pre")
	paragraphSelector = cascadia.MustCompile("p")
)

// Bold enables support for bold formatting.
var Bold = Definition{
	Key:    plugin.MarkBold,
	IsLeaf: true,
	Hotkey: "mod+b",
	DeserializeHTML: DeserializeHTML{
		Rules: []Rule{
			NodeNameRule("STRONG", "B"),
			StyleRule("font-weight", "600", "700", "bold"),
		},
		Query: withoutStyle("font-weight", "normal"),
	},
}

// Code enables support for inline code formatting.
var Code = Definition{
	Key:    plugin.MarkCode,
	IsLeaf: true,
	Hotkey: "mod+e",
	DeserializeHTML: DeserializeHTML{
		Rules: codeRules(),
		Query: func(el *html.Node) bool {
			return closest(el, preSelector) == nil
		},
	},
}

// CodeWithConsolasQuirk is Code plus a veto for paragraphs styled with the
// Consolas font, which some word processors use for code blocks in their
// clipboard HTML.
var CodeWithConsolasQuirk = Definition{
	Key:    plugin.MarkCode,
	IsLeaf: true,
	Hotkey: "mod+e",
	DeserializeHTML: DeserializeHTML{
		Rules: codeRules(),
		Query: func(el *html.Node) bool {
			if p := closest(el, paragraphSelector); p != nil && hasStyle(p, "font-family", "Consolas") {
				return false
			}
			return closest(el, preSelector) == nil
		},
	},
}

// Italic enables support for italic formatting.
var Italic = Definition{
	Key:    plugin.MarkItalic,
	IsLeaf: true,
	Hotkey: "mod+i",
	DeserializeHTML: DeserializeHTML{
		Rules: []Rule{
			NodeNameRule("EM", "I"),
			StyleRule("font-style", "italic"),
		},
		Query: withoutStyle("font-style", "normal"),
	},
}

// Strikethrough enables support for strikethrough formatting.
var Strikethrough = Definition{
	Key:    plugin.MarkStrikethrough,
	IsLeaf: true,
	Hotkey: "mod+shift+x",
	DeserializeHTML: DeserializeHTML{
		Rules: []Rule{
			NodeNameRule("S", "DEL", "STRIKE"),
			StyleRule("text-decoration", "line-through"),
		},
		Query: withoutStyle("text-decoration", "none"),
	},
}

// Subscript enables support for subscript formatting.
var Subscript = Definition{
	Key:    plugin.MarkSubscript,
	IsLeaf: true,
	Hotkey: "mod+,",
	Clear:  plugin.MarkSuperscript,
	DeserializeHTML: DeserializeHTML{
		Rules: []Rule{
			NodeNameRule("SUB"),
			StyleRule("vertical-align", "sub"),
		},
	},
}

// Superscript enables support for superscript formatting.
var Superscript = Definition{
	Key:    plugin.MarkSuperscript,
	IsLeaf: true,
	Hotkey: "mod+.",
	Clear:  plugin.MarkSubscript,
	DeserializeHTML: DeserializeHTML{
		Rules: []Rule{
			NodeNameRule("SUP"),
			StyleRule("vertical-align", "super"),
		},
	},
}

// Underline enables support for underline formatting.
var Underline = Definition{
	Key:    plugin.MarkUnderline,
	IsLeaf: true,
	Hotkey: "mod+u",
	DeserializeHTML: DeserializeHTML{
		Rules: []Rule{
			NodeNameRule("U"),
			StyleRule("text-decoration", "underline"),
		},
		Query: withoutStyle("text-decoration", "none"),
	},
}

// HR is the horizontal rule element.
var HR = Definition{
	Key:       plugin.ElementHR,
	IsElement: true,
	IsVoid:    true,
	DeserializeHTML: DeserializeHTML{
		Rules: []Rule{NodeNameRule("HR")},
	},
}

func codeRules() []Rule {
	return []Rule{
		NodeNameRule("CODE"),
		StyleRule("word-wrap", "break-word"),
		StyleRule("font-family", "Consolas"),
	}
}

// BasicMarks returns the seven basic marks in registration order.
func BasicMarks() []Definition {
	return []Definition{Bold, Code, Italic, Strikethrough, Subscript, Superscript, Underline}
}

// Lookup returns the definition registered under key.
func Lookup(key string) (Definition, bool) {
	for _, def := range append(BasicMarks(), HR) {
		if def.Key == key {
			return def, true
		}
	}
	return Definition{}, false
}

// MatchHTML returns the keys of the basic marks that accept el, in
// registration order.
func MatchHTML(el *html.Node) []string {
	var keys []string
	for _, def := range BasicMarks() {
		if def.AcceptsHTML(el) {
			keys = append(keys, def.Key)
		}
	}
	return keys
}
