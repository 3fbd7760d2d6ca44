package aureole

import (
	"encoding/json"
	"fmt"
	"os"
)

// testStep is a single action in a test script.
type testStep struct {
	Action string  `json:"action"`
	Label  string  `json:"label,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	FromX  float64 `json:"fromX,omitempty"`
	FromY  float64 `json:"fromY,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	Frames int     `json:"frames,omitempty"`
	Wheel  float64 `json:"wheel,omitempty"`
	Ctrl   bool    `json:"ctrl,omitempty"`
	Folder string  `json:"folder,omitempty"`
	Value  float64 `json:"value,omitempty"`
	Color  string  `json:"color,omitempty"`
}

// testScript is the top-level JSON structure for a test script.
type testScript struct {
	Steps []testStep `json:"steps"`
}

// TestRunner sequences injected input, panel edits and screenshots across
// frames for automated visual testing. Attach it with App.SetTestRunner.
type TestRunner struct {
	steps     []testStep
	cursor    int
	waitCount int
	done      bool
}

// LoadTestScript parses a JSON test script. Supported actions:
//
//	move       pointer to (x, y)
//	click      press and release at (x, y)
//	drag       left drag (fromX, fromY) to (toX, toY) over frames
//	scroll     absolute page scroll y, or wheel notches with wheel/ctrl
//	wait       idle for frames
//	screenshot capture the next frame as label
//	slider     set folder/label slider to value
//	color      set folder/label color control to color ("#rrggbb")
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var script testScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse test script: no steps")
	}
	for i, st := range script.Steps {
		if err := st.validate(); err != nil {
			return nil, fmt.Errorf("parse test script: step %d: %w", i, err)
		}
	}
	return &TestRunner{steps: script.Steps}, nil
}

func (st testStep) validate() error {
	switch st.Action {
	case "move", "click", "drag", "scroll", "wait", "screenshot":
		return nil
	case "slider":
		if st.Folder == "" || st.Label == "" {
			return fmt.Errorf("slider needs folder and label")
		}
		return nil
	case "color":
		if st.Folder == "" || st.Label == "" {
			return fmt.Errorf("color needs folder and label")
		}
		_, err := ParseHexColor(st.Color)
		return err
	}
	return fmt.Errorf("unknown action %q", st.Action)
}

// SetTestRunner attaches a runner. Its step runs at the start of every
// input pass, before injected or real input is applied.
func (a *App) SetTestRunner(runner *TestRunner) {
	a.runner = runner
}

// TestRunner returns the attached runner, or nil.
func (a *App) TestRunner() *TestRunner {
	return a.runner
}

// Done reports whether every step has been executed.
func (r *TestRunner) Done() bool {
	return r.done
}

// step advances the runner by one frame.
func (r *TestRunner) step(a *App) {
	if r.done {
		return
	}
	// Let pending injections drain before advancing.
	if len(a.injectQueue) > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "move":
		a.InjectMove(st.X, st.Y)
	case "click":
		a.InjectClick(st.X, st.Y)
	case "drag":
		a.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, st.Frames)
	case "scroll":
		if st.Wheel != 0 {
			a.InjectWheel(st.Wheel, st.Ctrl)
		} else {
			a.Input.SetScroll(st.Y)
		}
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	case "screenshot":
		a.Screenshot(st.Label)
	case "slider":
		s := a.Panel.Slider(st.Folder, st.Label)
		if s == nil {
			_, _ = fmt.Fprintf(os.Stderr, "[aureole] script: no slider %s/%s\n", st.Folder, st.Label)
			break
		}
		s.SetValue(st.Value)
	case "color":
		c := a.Panel.Color(st.Folder, st.Label)
		if c == nil {
			_, _ = fmt.Fprintf(os.Stderr, "[aureole] script: no color control %s/%s\n", st.Folder, st.Label)
			break
		}
		col, _ := ParseHexColor(st.Color) // checked at load
		c.SetColor(col)
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(a.injectQueue) == 0 {
		r.done = true
	}
}
