package oven

import (
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrInvalidScript is wrapped by input script parse failures.
var ErrInvalidScript = errors.New("oven: invalid input script")

// scriptStep is a single action in an input script.
type scriptStep struct {
	Action string   `yaml:"action"`
	Keys   []string `yaml:"keys,omitempty"`
	DX     float64  `yaml:"dx,omitempty"`
	DY     float64  `yaml:"dy,omitempty"`
	Frames int      `yaml:"frames,omitempty"`
}

// inputScript is the top-level YAML structure for an input script.
type inputScript struct {
	Steps []scriptStep `yaml:"steps"`
}

var keyNames = map[string]Key{
	"w": KeyW, "a": KeyA, "s": KeyS, "d": KeyD, "q": KeyQ, "e": KeyE,
	"i": KeyI, "j": KeyJ, "k": KeyK, "l": KeyL, "u": KeyU, "o": KeyO,
	"shift": KeyShift, "ctrl": KeyCtrl, "space": KeySpace, "escape": KeyEscape,
	"up": KeyArrowUp, "down": KeyArrowDown, "left": KeyArrowLeft, "right": KeyArrowRight,
}

// ParseKey converts a key name such as "w" or "shift".
func ParseKey(name string) (Key, bool) {
	k, ok := keyNames[strings.ToLower(name)]
	return k, ok
}

// LoadInputScript parses a YAML input script into a ScriptedInput. Steps:
//
//	- {action: hold, keys: [w, shift], frames: 30}
//	- {action: drag, dx: 120, dy: 0, frames: 10}
//	- {action: wait, frames: 5}
func LoadInputScript(data []byte) (*ScriptedInput, error) {
	var script inputScript
	if err := yaml.Unmarshal(data, &script); err != nil {
		return nil, fmt.Errorf("parse input script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse input script: no steps: %w", ErrInvalidScript)
	}

	in := &ScriptedInput{}
	for i, st := range script.Steps {
		frames := max(st.Frames, 1)
		switch st.Action {
		case "hold":
			var keys KeySet
			for _, name := range st.Keys {
				k, ok := ParseKey(name)
				if !ok {
					return nil, fmt.Errorf("step %d: unknown key %q: %w", i, name, ErrInvalidScript)
				}
				keys = keys.With(k)
			}
			in.Hold(keys, frames)
		case "drag":
			in.Drag(Vec2{st.DX, st.DY}, frames)
		case "wait":
			in.Hold(0, frames)
		default:
			return nil, fmt.Errorf("step %d: unknown action %q: %w", i, st.Action, ErrInvalidScript)
		}
	}
	return in, nil
}
