package holga

import (
	"encoding/json"
	"errors"
	"fmt"
)

// scriptStep is a single action in a camera script.
type scriptStep struct {
	Action string    `json:"action"`
	X      float64   `json:"x,omitempty"`
	Y      float64   `json:"y,omitempty"`
	Zoom   int       `json:"zoom,omitempty"`
	Rect   []float64 `json:"rect,omitempty"`
	FromX  float64   `json:"fromX,omitempty"`
	FromY  float64   `json:"fromY,omitempty"`
	ToX    float64   `json:"toX,omitempty"`
	ToY    float64   `json:"toY,omitempty"`
	Frames int       `json:"frames,omitempty"`
}

// script is the top-level JSON structure for a camera script.
type script struct {
	Steps []scriptStep `json:"steps"`
}

// drag is a pointer drag being replayed across frames.
type drag struct {
	from, to Point
	frames   int
	frame    int
}

// ScriptRunner replays a JSON camera script one step per tick, for demos and
// reproducible checks of camera behaviour:
//
//	{"steps": [
//	  {"action": "pan", "x": 1, "y": 0},
//	  {"action": "panTo", "x": 100, "y": 100},
//	  {"action": "zoom", "zoom": 2},
//	  {"action": "applyZoom", "zoom": -1},
//	  {"action": "resize", "rect": [0, 0, 32, 24]},
//	  {"action": "drag", "fromX": 0, "fromY": 0, "toX": 50, "toY": 0, "frames": 5},
//	  {"action": "wait", "frames": 30}
//	]}
//
// Drag steps need a Controller; see SetController.
type ScriptRunner struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	drag      *drag
	ctrl      *Controller
	done      bool
}

// LoadScript parses a JSON camera script. Unknown actions and malformed
// resize rects are rejected here rather than while running.
func LoadScript(jsonData []byte) (*ScriptRunner, error) {
	var sc script
	if err := json.Unmarshal(jsonData, &sc); err != nil {
		return nil, fmt.Errorf("parse camera script: %w", err)
	}
	if len(sc.Steps) == 0 {
		return nil, errors.New("parse camera script: no steps")
	}
	for i, st := range sc.Steps {
		switch st.Action {
		case "pan", "panTo", "zoom", "applyZoom", "drag", "wait":
		case "resize":
			if len(st.Rect) != 4 {
				return nil, fmt.Errorf("parse camera script: step %d: resize wants 4 rect values, got %d", i, len(st.Rect))
			}
		default:
			return nil, fmt.Errorf("parse camera script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &ScriptRunner{steps: sc.Steps}, nil
}

// SetController gives drag steps a controller to replay pointer events
// through. Without one, drag steps are skipped.
func (r *ScriptRunner) SetController(c *Controller) {
	r.ctrl = c
}

// Done reports whether every step has run.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// Step advances the script by one tick against cam.
func (r *ScriptRunner) Step(cam *Camera) error {
	if r.done {
		return nil
	}
	if r.drag != nil {
		r.stepDrag()
		return nil
	}
	if r.waitCount > 0 {
		r.waitCount--
		if r.waitCount == 0 && r.cursor >= len(r.steps) {
			r.done = true
		}
		return nil
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return nil
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "pan":
		cam.Pan(st.X, st.Y)
	case "panTo":
		cam.PanTo(st.X, st.Y)
	case "zoom":
		cam.SetZoom(st.Zoom)
	case "applyZoom":
		cam.ApplyZoom(st.Zoom)
	case "resize":
		if err := cam.Resize(R(st.Rect[0], st.Rect[1], st.Rect[2], st.Rect[3])); err != nil {
			return fmt.Errorf("camera script step %d: %w", r.cursor-1, err)
		}
	case "drag":
		if r.ctrl != nil {
			r.drag = &drag{
				from:   Pt(st.FromX, st.FromY),
				to:     Pt(st.ToX, st.ToY),
				frames: max(2, st.Frames),
			}
			r.stepDrag()
		}
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this tick counts as one
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && r.drag == nil {
		r.done = true
	}
	return nil
}

// stepDrag replays one frame of the pending drag: press on the first frame,
// release on the last, and moves interpolated in between.
func (r *ScriptRunner) stepDrag() {
	d := r.drag
	t := float64(d.frame) / float64(d.frames-1)
	x := d.from.X + (d.to.X-d.from.X)*t
	y := d.from.Y + (d.to.Y-d.from.Y)*t

	switch d.frame {
	case 0:
		r.ctrl.PointerDown(x, y)
	case d.frames - 1:
		r.ctrl.PointerMove(x, y)
		r.ctrl.PointerUp()
	default:
		r.ctrl.PointerMove(x, y)
	}

	d.frame++
	if d.frame >= d.frames {
		r.drag = nil
		if r.cursor >= len(r.steps) && r.waitCount == 0 {
			r.done = true
		}
	}
}

// Run steps the script against cam until it is done.
func (r *ScriptRunner) Run(cam *Camera) error {
	for !r.done {
		if err := r.Step(cam); err != nil {
			return err
		}
	}
	return nil
}
