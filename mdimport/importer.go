package mdimport

import (
	"fmt"

	"github.com/rgonek/slatemd/document"
	"github.com/rgonek/slatemd/plugin"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
	"golang.org/x/text/unicode/norm"
)

// Importer converts Markdown to document fragments. It is immutable after
// New and safe for concurrent use.
type Importer struct {
	options Options
	parser  goldmark.Markdown
}

// Result holds the output of an import.
type Result struct {
	Fragment document.Fragment  `json:"fragment"`
	Warnings []document.Warning `json:"warnings,omitempty"`
}

type state struct {
	options  Options
	source   []byte
	types    NodeTypes
	warnings []document.Warning
	warned   map[string]bool
}

var defaultImporter = mustNew(Options{})

// New creates a new Importer with the given options.
func New(options Options) (*Importer, error) {
	opts := options.applyDefaults().clone()
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	ext := goldmark.Extender(extension.Strikethrough)
	if opts.GFM {
		ext = extension.GFM
	}

	return &Importer{
		options: opts,
		parser: goldmark.New(
			goldmark.WithExtensions(ext),
		),
	}, nil
}

func mustNew(options Options) *Importer {
	imp, err := New(options)
	if err != nil {
		panic(fmt.Sprintf("mdimport: invalid default options: %v", err))
	}
	return imp
}

// DeserializeMd converts markdown with default options, resolving node types
// from ed.
func DeserializeMd(ed plugin.Editor, markdown string) document.Fragment {
	return defaultImporter.Deserialize(ed, markdown).Fragment
}

// Deserialize converts markdown into a document fragment. Node types are
// resolved from ed on every call. It never fails: unsupported constructs
// degrade and are reported as warnings.
func (imp *Importer) Deserialize(ed plugin.Editor, markdown string) Result {
	if imp.options.NormalizeNFC {
		markdown = norm.NFC.String(markdown)
	}

	s := &state{
		options: imp.options,
		source:  []byte(markdown),
		types:   ResolveNodeTypes(ed),
		warned:  map[string]bool{},
	}
	tracer().Debugf("deserializing %d bytes of markdown", len(s.source))

	root := imp.parser.Parser().Parse(text.NewReader(s.source))

	fragment := s.convertBlockChildren(root)
	if fragment == nil {
		fragment = document.Fragment{}
	}

	return Result{
		Fragment: fragment,
		Warnings: s.warnings,
	}
}

func (s *state) addWarning(warnType document.WarningType, nodeType, message string) {
	s.warnings = append(s.warnings, document.Warning{
		Type:     warnType,
		NodeType: nodeType,
		Message:  message,
	})
}

// resolveElement returns the node type of kind, or the fallback type when the
// plugin is not registered.
func (s *state) resolveElement(kind Kind) string {
	if nodeType, ok := s.types.Lookup(kind); ok {
		return nodeType
	}
	s.warnUnsupported(kind)
	return s.options.FallbackType
}

// resolveMark returns the mark type of kind. Unregistered marks are skipped.
func (s *state) resolveMark(kind Kind) (string, bool) {
	if markType, ok := s.types.Lookup(kind); ok {
		return markType, true
	}
	s.warnUnsupported(kind)
	return "", false
}

func (s *state) warnUnsupported(kind Kind) {
	if s.warned[string(kind)] {
		return
	}
	s.warned[string(kind)] = true
	tracer().Infof("plugin %q for %s is not registered", kind.PluginKey(), kind)
	s.addWarning(
		document.WarningUnsupportedCapability,
		string(kind),
		fmt.Sprintf("plugin %q is not registered; %s degraded", kind.PluginKey(), kind),
	)
}

func newElement(nodeType string, children []document.Node) document.Node {
	if len(children) == 0 {
		children = []document.Node{document.EmptyText()}
	}
	return document.Node{
		Type:     nodeType,
		Children: children,
	}
}
