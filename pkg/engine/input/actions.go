package input

import "strings"

// Action represents a high-level intent, independent of the device that produced it.
type Action int

const (
	ActionNone Action = iota
	ActionRegenerate
	ActionSave
	ActionScreenshot
	ActionToggleColor
	ActionQuit
)

// String returns the binding name of an action
func (a Action) String() string {
	switch a {
	case ActionRegenerate:
		return "regenerate"
	case ActionSave:
		return "save"
	case ActionScreenshot:
		return "screenshot"
	case ActionToggleColor:
		return "toggle_color"
	case ActionQuit:
		return "quit"
	default:
		return "none"
	}
}

// defaultBindings maps key codes (as returned by ReadKey, lower-cased) to actions
var defaultBindings = map[string]Action{
	"r":           ActionRegenerate,
	" ":           ActionRegenerate,
	KeyEnter:      ActionRegenerate,
	KeyArrowRight: ActionRegenerate,
	"s":           ActionSave,
	"h":           ActionScreenshot,
	"c":           ActionToggleColor,
	"q":           ActionQuit,
	KeyEscape:     ActionQuit,
	KeyInterrupt:  ActionQuit,
}

// ActionForKey returns the action bound to a key code, or ActionNone
func ActionForKey(code string) Action {
	if a, ok := defaultBindings[strings.ToLower(code)]; ok {
		return a
	}
	return ActionNone
}
