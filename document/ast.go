package document

import (
	"encoding/json"
	"fmt"
	"sort"
)

const (
	keyType     = "type"
	keyText     = "text"
	keyURL      = "url"
	keyChildren = "children"
)

// Node represents any node in the editor document tree. A node without a Type
// is a text leaf; every other node is an element.
type Node struct {
	Type     string
	Text     string
	Marks    []string
	URL      string
	Attrs    map[string]interface{}
	Children []Node
}

// Fragment is an ordered sequence of root-level document nodes.
type Fragment []Node

// NewText returns a text leaf carrying the given marks.
func NewText(text string, marks ...string) Node {
	node := Node{Text: text}
	if len(marks) > 0 {
		node.Marks = normalizeMarks(marks)
	}
	return node
}

// EmptyText returns the empty leaf the host model requires inside childless elements.
func EmptyText() Node {
	return Node{}
}

// IsText reports whether the node is a text leaf.
func (n Node) IsText() bool {
	return n.Type == ""
}

// HasMark reports whether the leaf carries the given mark.
func (n Node) HasMark(mark string) bool {
	for _, m := range n.Marks {
		if m == mark {
			return true
		}
	}
	return false
}

// PlainText returns the concatenated text of all leaves below n.
func (n Node) PlainText() string {
	if n.IsText() {
		return n.Text
	}
	var text string
	for _, child := range n.Children {
		text += child.PlainText()
	}
	return text
}

// Filter returns a copy of the fragment without the leaves for which drop
// returns true. Elements left without children get an empty leaf back.
func (f Fragment) Filter(drop func(Node) bool) Fragment {
	out := make(Fragment, 0, len(f))
	for _, node := range f {
		if node.IsText() {
			if drop(node) {
				continue
			}
			out = append(out, node)
			continue
		}
		node.Children = []Node(Fragment(node.Children).Filter(drop))
		if len(node.Children) == 0 {
			node.Children = []Node{EmptyText()}
		}
		out = append(out, node)
	}
	return out
}

// MarshalJSON encodes the node in the host editor's JSON shape: elements carry
// "type" and "children", leaves carry "text" plus one boolean per mark.
func (n Node) MarshalJSON() ([]byte, error) {
	out := make(map[string]interface{}, len(n.Attrs)+len(n.Marks)+3)
	for key, value := range n.Attrs {
		out[key] = value
	}

	if n.IsText() {
		for _, mark := range n.Marks {
			out[mark] = true
		}
		out[keyText] = n.Text
		return json.Marshal(out)
	}

	out[keyType] = n.Type
	if n.URL != "" {
		out[keyURL] = n.URL
	}
	children := n.Children
	if len(children) == 0 {
		children = []Node{EmptyText()}
	}
	out[keyChildren] = children

	return json.Marshal(out)
}

// UnmarshalJSON decodes a node produced by MarshalJSON or by the host editor.
func (n *Node) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("failed to parse document node: %w", err)
	}

	decoded := Node{}
	if typeRaw, ok := raw[keyType]; ok {
		if err := json.Unmarshal(typeRaw, &decoded.Type); err != nil {
			return fmt.Errorf("invalid node type: %w", err)
		}
		delete(raw, keyType)
	}

	if decoded.Type != "" {
		if childrenRaw, ok := raw[keyChildren]; ok {
			if err := json.Unmarshal(childrenRaw, &decoded.Children); err != nil {
				return fmt.Errorf("invalid children of %q: %w", decoded.Type, err)
			}
			delete(raw, keyChildren)
		}
		if urlRaw, ok := raw[keyURL]; ok {
			if err := json.Unmarshal(urlRaw, &decoded.URL); err != nil {
				return fmt.Errorf("invalid url of %q: %w", decoded.Type, err)
			}
			delete(raw, keyURL)
		}
	} else {
		if textRaw, ok := raw[keyText]; ok {
			if err := json.Unmarshal(textRaw, &decoded.Text); err != nil {
				return fmt.Errorf("invalid leaf text: %w", err)
			}
			delete(raw, keyText)
		}
	}

	for key, valueRaw := range raw {
		var value interface{}
		if err := json.Unmarshal(valueRaw, &value); err != nil {
			return fmt.Errorf("invalid attribute %q: %w", key, err)
		}
		if flag, ok := value.(bool); ok && flag && decoded.Type == "" {
			decoded.Marks = append(decoded.Marks, key)
			continue
		}
		if decoded.Attrs == nil {
			decoded.Attrs = make(map[string]interface{})
		}
		decoded.Attrs[key] = value
	}
	decoded.Marks = normalizeMarks(decoded.Marks)

	*n = decoded
	return nil
}

func normalizeMarks(marks []string) []string {
	if len(marks) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(marks))
	out := make([]string, 0, len(marks))
	for _, mark := range marks {
		if mark == "" {
			continue
		}
		if _, dup := seen[mark]; dup {
			continue
		}
		seen[mark] = struct{}{}
		out = append(out, mark)
	}
	if len(out) == 0 {
		return nil
	}
	sort.Strings(out)
	return out
}
