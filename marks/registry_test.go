package marks

import (
	"strings"
	"testing"

	"github.com/andybalholm/cascadia"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/rgonek/slatemd/plugin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

func element(t *testing.T, source, selector string) *html.Node {
	t.Helper()
	doc, err := html.Parse(strings.NewReader(source))
	require.NoError(t, err)
	el := cascadia.MustCompile(selector).MatchFirst(doc)
	require.NotNil(t, el, "no %s in %s", selector, source)
	return el
}

func TestBasicMarksRegistration(t *testing.T) {
	defs := BasicMarks()
	keys := make([]string, 0, len(defs))
	hotkeys := map[string]string{}
	for _, def := range defs {
		assert.True(t, def.IsLeaf, def.Key)
		keys = append(keys, def.Key)
		hotkeys[def.Key] = def.Hotkey
	}

	assert.Equal(t, []string{
		plugin.MarkBold, plugin.MarkCode, plugin.MarkItalic, plugin.MarkStrikethrough,
		plugin.MarkSubscript, plugin.MarkSuperscript, plugin.MarkUnderline,
	}, keys)
	assert.Equal(t, map[string]string{
		"bold":          "mod+b",
		"code":          "mod+e",
		"italic":        "mod+i",
		"strikethrough": "mod+shift+x",
		"subscript":     "mod+,",
		"superscript":   "mod+.",
		"underline":     "mod+u",
	}, hotkeys)

	assert.Equal(t, plugin.MarkSuperscript, Subscript.Clear)
	assert.Equal(t, plugin.MarkSubscript, Superscript.Clear)
	assert.Empty(t, Bold.Clear)
}

func TestLookup(t *testing.T) {
	hr, ok := Lookup(plugin.ElementHR)
	require.True(t, ok)
	assert.True(t, hr.IsElement)
	assert.True(t, hr.IsVoid)

	_, ok = Lookup("mention")
	assert.False(t, ok)
}

func TestBoldHTMLRules(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slatemd.marks")
	defer teardown()

	assert.True(t, Bold.AcceptsHTML(element(t, `<strong>x</strong>`, "strong")))
	assert.True(t, Bold.AcceptsHTML(element(t, `<b>x</b>`, "b")))
	assert.True(t, Bold.AcceptsHTML(element(t, `<span style="font-weight: 700">x</span>`, "span")))
	assert.False(t, Bold.AcceptsHTML(element(t, `<span style="font-weight: 400">x</span>`, "span")))

	// clipboard wrappers from some word processors
	assert.False(t, Bold.AcceptsHTML(element(t, `<b style="font-weight:normal;" id="guid"><span>x</span></b>`, "b")))
	assert.False(t, Bold.AcceptsHTML(element(t, `<b><span style="font-weight:normal">x</span></b>`, "b")))
}

func TestInlineStyleWithoutTrailingSemicolon(t *testing.T) {
	span := element(t, `<span style="font-weight: bold; font-style: italic">x</span>`, "span")
	assert.Equal(t, map[string]string{"font-weight": "bold", "font-style": "italic"}, inlineStyle(span))

	span = element(t, `<span style="font-weight: 700;;">x</span>`, "span")
	assert.Equal(t, map[string]string{"font-weight": "700"}, inlineStyle(span))

	assert.True(t, Bold.AcceptsHTML(element(t, `<span style="font-weight: 700">x</span>`, "span")))
	assert.True(t, Italic.AcceptsHTML(element(t, `<span style="color: red; font-style: italic">x</span>`, "span")))
}

func TestCodeHTMLRules(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slatemd.marks")
	defer teardown()

	assert.True(t, Code.AcceptsHTML(element(t, `<p><code>x</code></p>`, "code")))
	assert.False(t, Code.AcceptsHTML(element(t, `<pre><code>x</code></pre>`, "code")))
	assert.True(t, Code.AcceptsHTML(element(t, `<span style="font-family: 'Consolas'">x</span>`, "span")))
	assert.True(t, Code.AcceptsHTML(element(t, `<span style="word-wrap: break-word">x</span>`, "span")))

	consolasParagraph := element(t, `<p style="font-family: Consolas"><code>x</code></p>`, "code")
	assert.True(t, Code.AcceptsHTML(consolasParagraph))
	assert.False(t, CodeWithConsolasQuirk.AcceptsHTML(consolasParagraph))
	assert.True(t, CodeWithConsolasQuirk.AcceptsHTML(element(t, `<p><code>x</code></p>`, "code")))
}

func TestItalicStrikeUnderlineHTMLRules(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slatemd.marks")
	defer teardown()

	assert.True(t, Italic.AcceptsHTML(element(t, `<em>x</em>`, "em")))
	assert.True(t, Italic.AcceptsHTML(element(t, `<span style="font-style: italic">x</span>`, "span")))
	assert.False(t, Italic.AcceptsHTML(element(t, `<i><span style="font-style: normal">x</span></i>`, "i")))

	assert.True(t, Strikethrough.AcceptsHTML(element(t, `<del>x</del>`, "del")))
	assert.True(t, Strikethrough.AcceptsHTML(element(t, `<strike>x</strike>`, "strike")))
	assert.True(t, Strikethrough.AcceptsHTML(element(t, `<span style="text-decoration: line-through">x</span>`, "span")))

	assert.True(t, Underline.AcceptsHTML(element(t, `<u>x</u>`, "u")))
	assert.False(t, Underline.AcceptsHTML(element(t, `<u style="text-decoration: none">x</u>`, "u")))
}

func TestSubSupHTMLRules(t *testing.T) {
	assert.True(t, Subscript.AcceptsHTML(element(t, `<sub>2</sub>`, "sub")))
	assert.True(t, Subscript.AcceptsHTML(element(t, `<span style="vertical-align: sub">2</span>`, "span")))
	assert.False(t, Subscript.AcceptsHTML(element(t, `<sup>2</sup>`, "sup")))
	assert.True(t, Superscript.AcceptsHTML(element(t, `<sup>2</sup>`, "sup")))
	assert.True(t, Superscript.AcceptsHTML(element(t, `<span style="vertical-align: super">2</span>`, "span")))
}

func TestHRHTMLRule(t *testing.T) {
	assert.True(t, HR.AcceptsHTML(element(t, `<p>a</p><hr><p>b</p>`, "hr")))
	assert.False(t, HR.AcceptsHTML(element(t, `<p>a</p>`, "p")))
}

func TestMatchHTML(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slatemd.marks")
	defer teardown()

	el := element(t, `<span style="font-weight: bold; font-style: italic; text-decoration: line-through">x</span>`, "span")
	assert.Equal(t, []string{plugin.MarkBold, plugin.MarkItalic, plugin.MarkStrikethrough}, MatchHTML(el))
	assert.Empty(t, MatchHTML(element(t, `<div>x</div>`, "div")))
}

func TestRuleRequiresBothParts(t *testing.T) {
	rule := NodeNameRule("SPAN")
	rule.ValidStyle = map[string][]string{"font-weight": {"bold"}}

	assert.True(t, rule.Match(element(t, `<span style="font-weight: bold">x</span>`, "span")))
	assert.False(t, rule.Match(element(t, `<span>x</span>`, "span")))
	assert.False(t, rule.Match(element(t, `<b style="font-weight: bold">x</b>`, "b")))
	assert.False(t, Rule{}.Match(element(t, `<span>x</span>`, "span")))
}

func TestRuleWithoutCompiledSelector(t *testing.T) {
	rule := Rule{ValidNodeName: []string{"MARK"}}
	assert.True(t, rule.Match(element(t, `<mark>x</mark>`, "mark")))
}
