package mdimport

import (
	"github.com/rgonek/slatemd/document"
	"github.com/rgonek/slatemd/plugin"
)

// KeyDeserializeMd is the key the Markdown paste plugin registers under.
const KeyDeserializeMd = "deserializeMd"

// InsertData is the host's data-insertion hook for one clipboard format.
type InsertData struct {
	Format      string
	Query       func(data string, dt DataTransfer) bool
	GetFragment func(data string) document.Fragment
}

// Plugin is the Markdown paste plugin as registered with the host.
type Plugin struct {
	Key        string
	InsertData InsertData
}

// NewDeserializeMdPlugin builds the paste plugin for ed. A nil importer uses
// default options.
func NewDeserializeMdPlugin(ed plugin.Editor, imp *Importer) Plugin {
	if imp == nil {
		imp = defaultImporter
	}
	return Plugin{
		Key: KeyDeserializeMd,
		InsertData: InsertData{
			Format: FormatPlainText,
			Query:  ShouldDeserialize,
			GetFragment: func(data string) document.Fragment {
				return imp.Deserialize(ed, data).Fragment
			},
		},
	}
}

// HandlePaste runs the plugin against a clipboard payload. It returns false
// when the payload is left to other handlers.
func (p Plugin) HandlePaste(dt DataTransfer) (document.Fragment, bool) {
	if dt == nil {
		return nil, false
	}
	data, ok := dt.GetData(p.InsertData.Format)
	if !ok || !p.InsertData.Query(data, dt) {
		return nil, false
	}
	return p.InsertData.GetFragment(data), true
}
