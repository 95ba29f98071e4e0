package mdimport

import (
	"sync"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/rgonek/slatemd/document"
	"github.com/rgonek/slatemd/plugin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeserializeNestedOrderedListInBulletItem(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slatemd.import")
	defer teardown()

	input := "- one\n  1. first\n  2. second\n- two\n"
	result := newTestImporter(t, Options{}).Deserialize(plugin.DefaultConfig(), input)
	assert.Empty(t, result.Warnings)

	assert.Equal(t, document.Fragment{
		el("ul",
			el("li",
				el("p", txt("one")),
				el("ol",
					el("li", el("p", txt("first"))),
					el("li", el("p", txt("second"))),
				),
			),
			el("li", el("p", txt("two"))),
		),
	}, result.Fragment)
}

func TestDeserializeLooseListAndEmptyItem(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slatemd.import")
	defer teardown()

	result := newTestImporter(t, Options{}).Deserialize(plugin.DefaultConfig(), "3. a\n\n4. b\n")
	assert.Equal(t, document.Fragment{
		el("ol",
			el("li", el("p", txt("a"))),
			el("li", el("p", txt("b"))),
		),
	}, result.Fragment)

	empty := newTestImporter(t, Options{}).Deserialize(plugin.DefaultConfig(), "-\n")
	assert.Equal(t, document.Fragment{
		el("ul", el("li", document.EmptyText())),
	}, empty.Fragment)
}

func TestDeserializeUnregisteredHeadingFallsBack(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slatemd.import")
	defer teardown()

	cfg := plugin.DefaultConfig().Without(plugin.ElementH2)
	result := newTestImporter(t, Options{}).Deserialize(cfg, "## Heading")

	assert.Equal(t, document.Fragment{el("p", txt("Heading"))}, result.Fragment)
	require.Len(t, result.Warnings, 1)
	assert.Equal(t, document.WarningUnsupportedCapability, result.Warnings[0].Type)
	assert.Equal(t, string(KindHeading2), result.Warnings[0].NodeType)
}

func TestDeserializeDisabledPluginUsesConfiguredFallback(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slatemd.import")
	defer teardown()

	cfg := plugin.DefaultConfig().With(plugin.ElementBlockquote, plugin.PluginOptions{Disabled: true})
	result := newTestImporter(t, Options{FallbackType: "div"}).Deserialize(cfg, "> a\n\n> b")

	assert.Equal(t, document.Fragment{
		el("div", el("p", txt("a"))),
		el("div", el("p", txt("b"))),
	}, result.Fragment)
	require.Len(t, result.Warnings, 1, "one warning per missing capability")
}

func TestDeserializeUnregisteredMarkKeepsText(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slatemd.import")
	defer teardown()

	cfg := plugin.DefaultConfig().Without(plugin.MarkBold)
	result := newTestImporter(t, Options{}).Deserialize(cfg, "**a *b***")

	assert.Equal(t, document.Fragment{
		el("p", txt("a "), txt("b", "italic")),
	}, result.Fragment)
	require.Len(t, result.Warnings, 1)
	assert.Equal(t, string(KindBoldMark), result.Warnings[0].NodeType)
}

func TestDeserializeWithoutEditor(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slatemd.import")
	defer teardown()

	result := newTestImporter(t, Options{}).Deserialize(nil, "# Title\n\n*x*")
	assert.Equal(t, document.Fragment{
		el("p", txt("Title")),
		el("p", txt("x")),
	}, result.Fragment)
	assert.Len(t, result.Warnings, 3)
}

func TestDeserializeConcurrentSnapshots(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slatemd.import")
	defer teardown()

	imp := newTestImporter(t, Options{})
	renamed := plugin.DefaultConfig().With(plugin.ElementParagraph, plugin.PluginOptions{Type: "paragraph"})

	var wg sync.WaitGroup
	types := make([]string, 16)
	for i := range types {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			var cfg plugin.Editor = plugin.DefaultConfig()
			if i%2 == 1 {
				cfg = renamed
			}
			types[i] = imp.Deserialize(cfg, "text").Fragment[0].Type
		}(i)
	}
	wg.Wait()

	for i, nodeType := range types {
		if i%2 == 1 {
			assert.Equal(t, "paragraph", nodeType)
		} else {
			assert.Equal(t, "p", nodeType)
		}
	}
}

func TestDeserializeGFMTable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slatemd.import")
	defer teardown()

	result := newTestImporter(t, Options{GFM: true}).Deserialize(plugin.DefaultConfig(), "| A | B |\n| --- | --- |\n| 1 | 2 |")
	assert.Empty(t, result.Warnings)

	assert.Equal(t, document.Fragment{
		el("table",
			el("tr",
				el("th", el("p", txt("A"))),
				el("th", el("p", txt("B"))),
			),
			el("tr",
				el("td", el("p", txt("1"))),
				el("td", el("p", txt("2"))),
			),
		),
	}, result.Fragment)
}

func TestDeserializeGFMTaskListAndLinkify(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slatemd.import")
	defer teardown()

	imp := newTestImporter(t, Options{GFM: true})

	tasks := imp.Deserialize(plugin.DefaultConfig(), "- [x] done")
	assert.Equal(t, document.Fragment{
		el("ul", el("li", el("p", txt("done")))),
	}, tasks.Fragment)
	require.Len(t, tasks.Warnings, 1)
	assert.Equal(t, document.WarningDroppedFeature, tasks.Warnings[0].Type)

	linked := imp.Deserialize(plugin.DefaultConfig(), "see https://example.com now")
	link := el("a", txt("https://example.com"))
	link.URL = "https://example.com"
	assert.Equal(t, document.Fragment{
		el("p", txt("see "), link, txt(" now")),
	}, linked.Fragment)
}

func TestDeserializeNeverDropsText(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slatemd.import")
	defer teardown()

	// nothing registered: every element falls back, no text is lost
	input := "# T\n\n> q\n\n- a\n- b\n\n`c` [l](u)"
	result := newTestImporter(t, Options{}).Deserialize(plugin.EditorFunc(func(string) (string, bool) {
		return "", false
	}), input)

	var all string
	for _, node := range result.Fragment {
		all += node.PlainText()
	}
	assert.Equal(t, "Tqabc l", all)
	assert.NotEmpty(t, result.Warnings)
}
