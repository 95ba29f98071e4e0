package marks

import (
	"fmt"
	"strings"
)

// Hotkey is a parsed shortcut binding. Mod stands for the platform command
// key (Cmd on macOS, Ctrl elsewhere).
type Hotkey struct {
	Mod   bool
	Ctrl  bool
	Shift bool
	Alt   bool
	Key   string
}

// ParseHotkey parses bindings such as "mod+shift+x" or "mod+,".
func ParseHotkey(binding string) (Hotkey, error) {
	binding = strings.ToLower(strings.TrimSpace(binding))
	if binding == "" {
		return Hotkey{}, fmt.Errorf("empty hotkey")
	}

	var hk Hotkey
	parts := strings.Split(binding, "+")
	if strings.HasSuffix(binding, "++") {
		parts = append(parts[:len(parts)-2], "+")
	}
	for idx, part := range parts {
		if idx == len(parts)-1 {
			if part == "" {
				return Hotkey{}, fmt.Errorf("hotkey %q has no key", binding)
			}
			hk.Key = part
			break
		}
		switch part {
		case "mod":
			hk.Mod = true
		case "ctrl", "control":
			hk.Ctrl = true
		case "shift":
			hk.Shift = true
		case "alt", "opt", "option":
			hk.Alt = true
		default:
			return Hotkey{}, fmt.Errorf("hotkey %q: unknown modifier %q", binding, part)
		}
	}
	return hk, nil
}

// ToggleMark returns the marks of a leaf after the definition's mark was
// toggled. Turning a mark on removes its Clear partner.
func ToggleMark(active []string, def Definition) []string {
	if contains(active, def.Key) {
		return without(active, def.Key)
	}
	return append(without(active, def.Clear), def.Key)
}

func without(values []string, drop string) []string {
	out := make([]string, 0, len(values)+1)
	for _, v := range values {
		if drop == "" || v != drop {
			out = append(out, v)
		}
	}
	return out
}

func contains(values []string, value string) bool {
	for _, v := range values {
		if v == value {
			return true
		}
	}
	return false
}
