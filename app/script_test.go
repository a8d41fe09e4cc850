package app

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

// eventProgram records every event it receives as a message.
func eventProgram() Program[[]Event, Event] {
	return Program[[]Event, Event]{
		Update: func(log []Event, ev Event) ([]Event, Command[Event]) {
			return append(log, ev), None[Event]()
		},
		Translate: func(ev Event) (Event, bool) { return ev, true },
	}
}

func TestParseScript(t *testing.T) {
	s, err := ParseScript([]byte(`{
		"steps": [
			{"action": "screenshot", "label": "initial"},
			{"action": "click", "x": 100, "y": 200},
			{"action": "key", "key": "escape"},
			{"action": "wait", "frames": 3}
		]
	}`))
	if err != nil {
		t.Fatalf("ParseScript: %v", err)
	}
	if len(s.steps) != 4 {
		t.Fatalf("steps = %d, want 4", len(s.steps))
	}
	if s.steps[1].X != 100 || s.steps[1].Y != 200 {
		t.Errorf("click step = %+v", s.steps[1])
	}
}

func TestParseScriptErrors(t *testing.T) {
	tests := map[string]string{
		"not json":       `not json`,
		"no steps":       `{"steps": []}`,
		"unknown action": `{"steps": [{"action": "dance"}]}`,
		"unknown key":    `{"steps": [{"action": "key", "key": "NoSuchKey"}]}`,
		"unknown button": `{"steps": [{"action": "click", "button": "fourth"}]}`,
	}
	for name, data := range tests {
		if _, err := ParseScript([]byte(data)); err == nil {
			t.Errorf("%s: ParseScript succeeded", name)
		}
	}
}

func TestLoadScript(t *testing.T) {
	path := filepath.Join(t.TempDir(), "script.json")
	if err := os.WriteFile(path, []byte(`{"steps": [{"action": "quit"}]}`), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadScript(path); err != nil {
		t.Errorf("LoadScript: %v", err)
	}
	_, err := LoadScript(filepath.Join(t.TempDir(), "missing.json"))
	if err == nil || !strings.Contains(err.Error(), "failed to read") {
		t.Errorf("err = %v, want read failure", err)
	}
}

func TestKeyByName(t *testing.T) {
	for _, k := range []ebiten.Key{ebiten.KeyA, ebiten.KeyArrowLeft, ebiten.KeyEscape, ebiten.KeySpace} {
		got, ok := keyByName(strings.ToLower(k.String()))
		if !ok || got != k {
			t.Errorf("keyByName(%q) = %v, %v, want %v", strings.ToLower(k.String()), got, ok, k)
		}
	}
	if _, ok := keyByName(""); ok {
		t.Error("empty key name resolved")
	}
}

func TestScriptClick(t *testing.T) {
	s, err := ParseScript([]byte(`{"steps": [{"action": "click", "x": 5, "y": 6, "button": "right"}]}`))
	if err != nil {
		t.Fatal(err)
	}
	first := s.step(nil)
	want := []Event{
		MouseMoved{X: 5, Y: 6},
		MouseButtonPressed{Button: ebiten.MouseButtonRight, X: 5, Y: 6},
	}
	if !reflect.DeepEqual(first, want) {
		t.Errorf("first step = %#v, want %#v", first, want)
	}
	if s.Done() {
		t.Error("Done before release")
	}
	second := s.step(nil)
	want = []Event{MouseButtonReleased{Button: ebiten.MouseButtonRight, X: 5, Y: 6}}
	if !reflect.DeepEqual(second, want) {
		t.Errorf("second step = %#v, want %#v", second, want)
	}
	if !s.Done() {
		t.Error("not Done after release")
	}
}

func TestScriptDrag(t *testing.T) {
	s, err := ParseScript([]byte(`{"steps": [{"action": "drag", "x": 0, "y": 0, "toX": 9, "toY": 9, "frames": 4}]}`))
	if err != nil {
		t.Fatal(err)
	}
	var moves []MouseMoved
	steps := 0
	for !s.Done() {
		for _, ev := range s.step(nil) {
			if m, ok := ev.(MouseMoved); ok {
				moves = append(moves, m)
			}
		}
		steps++
		if steps > 10 {
			t.Fatal("drag never finished")
		}
	}
	if steps != 4 {
		t.Errorf("drag took %d steps, want 4", steps)
	}
	want := []MouseMoved{{0, 0}, {3, 3}, {6, 6}, {9, 9}}
	if !reflect.DeepEqual(moves, want) {
		t.Errorf("moves = %v, want %v", moves, want)
	}
}

func TestScriptScreenshotAndWait(t *testing.T) {
	s, err := ParseScript([]byte(`{"steps": [
		{"action": "wait", "frames": 2},
		{"action": "screenshot", "label": "shot"}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	var shots []string
	shoot := func(label string) { shots = append(shots, label) }
	s.step(shoot)
	s.step(shoot)
	if len(shots) != 0 {
		t.Fatalf("screenshot taken during wait: %v", shots)
	}
	s.step(shoot)
	if !reflect.DeepEqual(shots, []string{"shot"}) {
		t.Errorf("shots = %v, want [shot]", shots)
	}
	if !s.Done() {
		t.Error("not Done after last step")
	}
	if evs := s.step(shoot); evs != nil || len(shots) != 1 {
		t.Errorf("finished script produced %v, shots %v", evs, shots)
	}
}

func TestAppRunsScript(t *testing.T) {
	s, err := ParseScript([]byte(`{"steps": [
		{"action": "key", "key": "ArrowLeft"},
		{"action": "wait", "frames": 2},
		{"action": "quit"}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	a := New(eventProgram(), RunConfig{TPS: 10, Script: s})
	for i := 0; i < 10 && !a.Quitting(); i++ {
		a.Step()
	}
	if !a.Quitting() {
		t.Fatal("script did not quit")
	}
	// key press, release, two wait steps, quit step.
	if a.Steps() != 5 {
		t.Errorf("Steps = %d, want 5", a.Steps())
	}
	tick := Tick{Delta: 0.1}
	want := []Event{
		Init{}, KeyPressed{Key: ebiten.KeyArrowLeft}, tick,
		KeyReleased{Key: ebiten.KeyArrowLeft}, tick,
		tick,
		tick,
		tick,
	}
	if got := a.Model(); !reflect.DeepEqual(got, want) {
		t.Errorf("events = %#v, want %#v", got, want)
	}
	if !s.Done() {
		t.Error("script not Done")
	}
}
