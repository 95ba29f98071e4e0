package document

// WarningType categorizes conversion warnings.
type WarningType string

const (
	WarningUnknownNode           WarningType = "unknown_node"
	WarningUnsupportedCapability WarningType = "unsupported_capability"
	WarningDroppedFeature        WarningType = "dropped_feature"
)

// Warning represents a non-fatal issue encountered during conversion.
type Warning struct {
	Type     WarningType `json:"type"`
	NodeType string      `json:"nodeType,omitempty"`
	Message  string      `json:"message"`
}
