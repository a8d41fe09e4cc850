package app

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
)

// scriptStep is a single action in a script.
type scriptStep struct {
	Action string  `json:"action"`
	Label  string  `json:"label,omitempty"`
	Key    string  `json:"key,omitempty"`
	Button string  `json:"button,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

// scriptFile is the top-level JSON structure of a script.
type scriptFile struct {
	Steps []scriptStep `json:"steps"`
}

// Script feeds synthetic events and screenshots into an App across steps,
// for automated visual checks and recorded demos. Actions:
//
//	{"action": "key", "key": "ArrowLeft"}        press now, release next step
//	{"action": "click", "x": 10, "y": 20}        move, press, release next step
//	{"action": "drag", "x":0,"y":0,"toX":9,"toY":9,"frames":5}
//	{"action": "wheel", "y": -1}
//	{"action": "wait", "frames": 30}
//	{"action": "screenshot", "label": "after-spin"}
//	{"action": "quit"}
//
// Attach with App.SetScript.
type Script struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	pending   [][]Event // follow-up events, one batch per step
	done      bool
	quit      bool
}

// ParseScript parses a JSON script. Unknown actions, keys and buttons are
// rejected up front.
func ParseScript(data []byte) (*Script, error) {
	var f scriptFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("app: failed to parse script: %w", err)
	}
	if len(f.Steps) == 0 {
		return nil, fmt.Errorf("app: failed to parse script: no steps")
	}
	for i, st := range f.Steps {
		if err := st.validate(); err != nil {
			return nil, fmt.Errorf("app: failed to parse script: step %d: %w", i, err)
		}
	}
	return &Script{steps: f.Steps}, nil
}

// LoadScript reads and parses a script file.
func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("app: failed to read script: %w", err)
	}
	return ParseScript(data)
}

func (st scriptStep) validate() error {
	switch st.Action {
	case "key":
		if _, ok := keyByName(st.Key); !ok {
			return fmt.Errorf("unknown key %q", st.Key)
		}
	case "click", "drag":
		if _, ok := buttonByName(st.Button); !ok {
			return fmt.Errorf("unknown button %q", st.Button)
		}
	case "wheel", "wait", "screenshot", "quit":
	default:
		return fmt.Errorf("unknown action %q", st.Action)
	}
	return nil
}

// Done reports whether every step has run.
func (s *Script) Done() bool {
	return s.done
}

// keyByName resolves a key by its ebiten name, ignoring case.
func keyByName(name string) (ebiten.Key, bool) {
	if name == "" {
		return 0, false
	}
	for k := ebiten.Key(0); k <= ebiten.KeyMax; k++ {
		if strings.EqualFold(k.String(), name) {
			return k, true
		}
	}
	return 0, false
}

func buttonByName(name string) (ebiten.MouseButton, bool) {
	switch strings.ToLower(name) {
	case "", "left":
		return ebiten.MouseButtonLeft, true
	case "right":
		return ebiten.MouseButtonRight, true
	case "middle":
		return ebiten.MouseButtonMiddle, true
	}
	return 0, false
}

// step returns the events to inject this step. Screenshots are requested
// through shoot. Steps do not advance while follow-up events are pending.
func (s *Script) step(shoot func(label string)) []Event {
	if len(s.pending) > 0 {
		evs := s.pending[0]
		s.pending = s.pending[1:]
		s.finish()
		return evs
	}
	if s.done {
		return nil
	}
	if s.waitCount > 0 {
		s.waitCount--
		s.finish()
		return nil
	}

	st := s.steps[s.cursor]
	s.cursor++

	var evs []Event
	switch st.Action {
	case "key":
		k, _ := keyByName(st.Key)
		evs = []Event{KeyPressed{Key: k}}
		s.pending = append(s.pending, []Event{KeyReleased{Key: k}})
	case "click":
		b, _ := buttonByName(st.Button)
		evs = []Event{MouseMoved{X: st.X, Y: st.Y}, MouseButtonPressed{Button: b, X: st.X, Y: st.Y}}
		s.pending = append(s.pending, []Event{MouseButtonReleased{Button: b, X: st.X, Y: st.Y}})
	case "drag":
		b, _ := buttonByName(st.Button)
		frames := max(st.Frames, 2)
		evs = []Event{MouseMoved{X: st.X, Y: st.Y}, MouseButtonPressed{Button: b, X: st.X, Y: st.Y}}
		moves := frames - 2
		for i := 1; i <= moves; i++ {
			t := float64(i) / float64(moves+1)
			s.pending = append(s.pending, []Event{MouseMoved{X: st.X + (st.ToX-st.X)*t, Y: st.Y + (st.ToY-st.Y)*t}})
		}
		s.pending = append(s.pending, []Event{
			MouseMoved{X: st.ToX, Y: st.ToY},
			MouseButtonReleased{Button: b, X: st.ToX, Y: st.ToY},
		})
	case "wheel":
		evs = []Event{MouseWheel{DX: st.X, DY: st.Y}}
	case "wait":
		if st.Frames > 0 {
			s.waitCount = st.Frames - 1 // this step counts as one
		}
	case "screenshot":
		if shoot != nil {
			shoot(st.Label)
		}
	case "quit":
		s.quit = true
	}
	s.finish()
	return evs
}

func (s *Script) finish() {
	if s.cursor >= len(s.steps) && s.waitCount == 0 && len(s.pending) == 0 {
		s.done = true
	}
}
