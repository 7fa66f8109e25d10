package core

import "strings"

func DefaultKeyBindings() []KeyBinding {
	return []KeyBinding{
		{Keys: []string{"q"}, Action: "quit", Description: "quit", Scopes: []string{"tab:*", "pane:*"}},
		{Keys: []string{"v"}, Action: "jump", Description: "jump", Scopes: []string{"tab:*", "pane:*"}},
		{Keys: []string{"ctrl+k"}, Action: "open-command-palette", Description: "commands", Help: "C-k", Scopes: []string{"tab:*", "pane:*"}},
		{Keys: []string{"o"}, Action: "open-picker", Description: "sort by", Scopes: []string{"pane:table:*"}},
		{Keys: []string{"1"}, Action: "switch-tab-1", Description: "inputs", Scopes: []string{"tab:*", "pane:*"}, Hidden: true},
		{Keys: []string{"2"}, Action: "switch-tab-2", Description: "table", Scopes: []string{"tab:*", "pane:*"}, Hidden: true},
		{Keys: []string{"left", "up"}, Action: "pane-prev", Description: "prev pane", Help: "←/↑", Scopes: []string{"pane:*"}, Hidden: true},
		{Keys: []string{"right", "down"}, Action: "pane-next", Description: "next pane", Help: "→/↓", Scopes: []string{"pane:*"}, Hidden: true},
		{Keys: []string{"enter"}, Action: "pane-focus", Description: "focus", Scopes: []string{"pane:*"}},
		{Keys: []string{"esc"}, Action: "pane-blur", Description: "unfocus", Scopes: []string{"pane:*"}},
		{Keys: []string{"esc"}, Action: "close", Description: "close", Scopes: []string{"screen:*"}},
		{Keys: []string{"enter"}, Action: "select", Description: "select", Scopes: []string{"screen:*"}},
		{Keys: []string{"up", "down"}, Action: "move", Description: "move", Help: "↑/↓", Scopes: []string{"screen:*"}},
	}
}

func DefaultKeybindingsByAction(bindings []KeyBinding) map[string][]string {
	out := make(map[string][]string, len(bindings))
	for _, b := range bindings {
		if strings.TrimSpace(b.Action) == "" || len(b.Keys) == 0 {
			continue
		}
		if _, exists := out[b.Action]; exists {
			continue
		}
		out[b.Action] = append([]string(nil), b.Keys...)
	}
	return out
}

// ApplyActionKeybindings overrides keys per action, for user configured
// bindings. Help labels are dropped for overridden actions.
func ApplyActionKeybindings(bindings []KeyBinding, actionKeys map[string][]string) []KeyBinding {
	out := make([]KeyBinding, 0, len(bindings))
	for _, b := range bindings {
		next := b
		next.Keys = append([]string(nil), b.Keys...)
		next.Scopes = append([]string(nil), b.Scopes...)
		if keys, ok := actionKeys[b.Action]; ok && len(keys) > 0 {
			next.Keys = append([]string(nil), keys...)
			next.Help = ""
		}
		out = append(out, next)
	}
	return out
}

func DefaultJumpKey(bindings []KeyBinding) string {
	for _, b := range bindings {
		if b.Action == "jump" && len(b.Keys) > 0 {
			return b.Keys[0]
		}
	}
	return "v"
}
