package mdimport

import "github.com/rgonek/slatemd/document"

// markStack tracks the mark types active at the current inline position.
type markStack struct {
	items []string
}

func newMarkStack() *markStack {
	return &markStack{}
}

func (s *markStack) push(markType string) {
	s.items = append(s.items, markType)
}

func (s *markStack) popByType(markType string) bool {
	for i := len(s.items) - 1; i >= 0; i-- {
		if s.items[i] != markType {
			continue
		}
		s.items = append(s.items[:i], s.items[i+1:]...)
		return true
	}

	return false
}

func (s *markStack) current() []string {
	if len(s.items) == 0 {
		return nil
	}

	marks := make([]string, len(s.items))
	copy(marks, s.items)
	return marks
}

func (s *markStack) newText(textValue string) document.Node {
	return document.NewText(textValue, s.current()...)
}

func marksEqual(left, right []string) bool {
	if len(left) != len(right) {
		return false
	}

	for idx := range left {
		if left[idx] != right[idx] {
			return false
		}
	}

	return true
}

// appendInlineNode merges next into the previous leaf when both carry text
// and the same marks. Empty leaves are break artifacts and never merge.
func appendInlineNode(content []document.Node, next document.Node) []document.Node {
	if len(content) == 0 {
		return append(content, next)
	}

	last := &content[len(content)-1]
	if last.IsText() && next.IsText() &&
		last.Text != "" && next.Text != "" &&
		marksEqual(last.Marks, next.Marks) &&
		len(last.Attrs) == 0 && len(next.Attrs) == 0 {
		last.Text += next.Text
		return content
	}

	return append(content, next)
}
