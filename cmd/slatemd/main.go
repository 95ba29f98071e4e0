package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/rgonek/slatemd/document"
	"github.com/rgonek/slatemd/marks"
	"github.com/rgonek/slatemd/mdimport"
	"github.com/rgonek/slatemd/plugin"
)

const (
	traceImport = "slatemd.import"
	traceMarks  = "slatemd.marks"
)

func setupTracing(level string) error {
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter":      "go",
		"trace." + traceImport: level,
		"trace." + traceMarks:  level,
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		return fmt.Errorf("failed to configure tracing: %w", err)
	}
	tracing.SetTraceSelector(trace2go.Selector())
	return nil
}

func traceLevel(verbose bool) string {
	if verbose {
		return "Debug"
	}
	return "Error"
}

// loadEditorConfig reads the plugin configuration from path, falling back to
// the default plugin set when path is empty.
func loadEditorConfig(path string) (plugin.Config, error) {
	if strings.TrimSpace(path) == "" {
		return plugin.DefaultConfig(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return plugin.Config{}, err
	}
	defer f.Close()
	return plugin.LoadConfig(f)
}

func parseLanguageMap(mapping string) (map[string]string, error) {
	if strings.TrimSpace(mapping) == "" {
		return nil, nil
	}
	languages := make(map[string]string)
	for _, pair := range strings.Split(mapping, ",") {
		from, to, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, fmt.Errorf("invalid language mapping %q (want from=to)", pair)
		}
		languages[strings.TrimSpace(from)] = strings.TrimSpace(to)
	}
	return languages, nil
}

func readInput(args []string, stdin io.Reader) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(stdin)
		return string(data), err
	}
	data, err := os.ReadFile(args[0])
	return string(data), err
}

func writeMarks(w io.Writer, defs []marks.Definition) error {
	for _, def := range defs {
		line := def.Key + "\t" + def.Hotkey
		if def.Clear != "" {
			line += "\tclears " + def.Clear
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

type output struct {
	Fragment document.Fragment  `json:"fragment"`
	Warnings []document.Warning `json:"warnings,omitempty"`
}

func convert(imp *mdimport.Importer, ed plugin.Editor, markdown string, filterBreaks bool) output {
	result := imp.Deserialize(ed, markdown)
	fragment := result.Fragment
	if filterBreaks {
		fragment = fragment.Filter(mdimport.FilterBreaklines)
	}
	return output{Fragment: fragment, Warnings: result.Warnings}
}

func main() {
	configPath := flag.String("config", "", "Editor plugin configuration (YAML)")
	gfm := flag.Bool("gfm", false, "Enable GitHub Flavored Markdown (tables, task lists, linkify)")
	nfc := flag.Bool("nfc", false, "Normalize input to Unicode NFC")
	canonical := flag.Bool("canonical-languages", false, "Canonicalize code block languages")
	languages := flag.String("languages", "", "Code block language mapping, e.g. cpp=c++,sh=bash")
	fallback := flag.String("fallback", plugin.ElementParagraph, "Node type for unregistered elements")
	filterBreaks := flag.Bool("filter-breaks", false, "Remove empty text leaves from the output")
	paste := flag.Bool("paste", false, "Apply the paste predicate and report when the input would be skipped")
	withHTML := flag.Bool("paste-html", false, "Simulate an HTML part in the pasted payload")
	listMarks := flag.Bool("marks", false, "List the registered marks with their hotkeys and exit")
	verbose := flag.Bool("v", false, "Trace conversion details to stderr")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: slatemd [options] [input-file|-]\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if err := setupTracing(traceLevel(*verbose)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *listMarks {
		if err := writeMarks(os.Stdout, marks.BasicMarks()); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	ed, err := loadEditorConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid editor config: %v\n", err)
		os.Exit(1)
	}

	languageMap, err := parseLanguageMap(*languages)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid languages: %v\n", err)
		os.Exit(1)
	}

	imp, err := mdimport.New(mdimport.Options{
		FallbackType:       *fallback,
		GFM:                *gfm,
		LanguageMap:        languageMap,
		CanonicalLanguages: *canonical,
		NormalizeNFC:       *nfc,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid options: %v\n", err)
		os.Exit(1)
	}

	markdown, err := readInput(flag.Args(), os.Stdin)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading input: %v\n", err)
		os.Exit(1)
	}

	if *paste {
		dt := mdimport.StaticDataTransfer{Data: map[string]string{mdimport.FormatPlainText: markdown}}
		if *withHTML {
			dt.Data[mdimport.FormatHTML] = markdown
		}
		if !mdimport.ShouldDeserialize(markdown, dt) {
			fmt.Fprintln(os.Stderr, "Paste skipped: payload is left to other handlers")
			os.Exit(2)
		}
	}

	pretty, err := json.MarshalIndent(convert(imp, ed, markdown, *filterBreaks), "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error formatting JSON: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(string(pretty))
}
