package mdimport

import (
	"fmt"
	"strings"

	"github.com/rgonek/slatemd/plugin"
)

// Options configures Markdown import behavior.
type Options struct {
	// FallbackType is used for elements whose plugin is not registered.
	FallbackType string `json:"fallbackType,omitempty"`
	// GFM enables tables, task lists and autolinking of bare URLs.
	GFM bool `json:"gfm,omitempty"`
	// LanguageMap rewrites fenced code block languages.
	LanguageMap map[string]string `json:"languageMap,omitempty"`
	// CanonicalLanguages replaces language aliases ("js", "golang") with
	// the canonical lexer name ("javascript", "go").
	CanonicalLanguages bool `json:"canonicalLanguages,omitempty"`
	// NormalizeNFC normalizes the input to Unicode NFC before parsing.
	NormalizeNFC bool `json:"normalizeNFC,omitempty"`
}

func (o Options) applyDefaults() Options {
	if o.FallbackType == "" {
		o.FallbackType = plugin.ElementParagraph
	}
	return o
}

func (o Options) clone() Options {
	cloned := o
	cloned.LanguageMap = cloneStringMap(o.LanguageMap)
	return cloned
}

// Validate checks that option values are valid.
func (o Options) Validate() error {
	if strings.TrimSpace(o.FallbackType) == "" {
		return fmt.Errorf("invalid fallbackType %q", o.FallbackType)
	}

	for from, to := range o.LanguageMap {
		if strings.TrimSpace(from) == "" || strings.TrimSpace(to) == "" {
			return fmt.Errorf("languageMap keys and values must be non-empty")
		}
	}

	return nil
}

func cloneStringMap(src map[string]string) map[string]string {
	if src == nil {
		return nil
	}

	dst := make(map[string]string, len(src))
	for key, value := range src {
		dst[key] = value
	}

	return dst
}
