package recording

import (
	"slices"

	"github.com/gogpu/gg"

	"github.com/gogpu/ggseries"
)

// Recorder captures canvas calls as commands. It implements ggseries.Canvas
// but generates commands instead of rasterizing pixels. Use FinishRecording
// to obtain an immutable Recording that can be inspected or replayed.
//
// The Recorder is not safe for concurrent use.
type Recorder struct {
	width, height int
	commands      []Command
	resources     *ResourcePool
	depth         int
}

// Ensure Recorder implements the canvas contract.
var _ ggseries.Canvas = (*Recorder)(nil)

// NewRecorder creates a new Recorder for the given bitmap dimensions.
func NewRecorder(width, height int) *Recorder {
	return &Recorder{
		width:     width,
		height:    height,
		commands:  make([]Command, 0, 64),
		resources: NewResourcePool(),
	}
}

// Width returns the width of the recording canvas.
func (r *Recorder) Width() int {
	return r.width
}

// Height returns the height of the recording canvas.
func (r *Recorder) Height() int {
	return r.height
}

// Save records a state push.
func (r *Recorder) Save() {
	r.depth++
	r.commands = append(r.commands, SaveCommand{})
}

// Restore records a state pop.
// If there is no matching Save, this is a no-op.
func (r *Recorder) Restore() {
	if r.depth == 0 {
		return
	}
	r.depth--
	r.commands = append(r.commands, RestoreCommand{})
}

// FillPath records a path fill. Nil paths and brushes are ignored.
func (r *Recorder) FillPath(path *gg.Path, brush ggseries.Brush) {
	if path == nil || brush == nil {
		return
	}
	r.commands = append(r.commands, FillPathCommand{
		Path:  r.resources.AddPath(path),
		Brush: r.resources.AddBrush(brush),
	})
}

// StrokePath records a path stroke. Nil paths and brushes are ignored.
func (r *Recorder) StrokePath(path *gg.Path, brush ggseries.Brush, stroke ggseries.Stroke) {
	if path == nil || brush == nil {
		return
	}
	stroke.Dash = slices.Clone(stroke.Dash)
	r.commands = append(r.commands, StrokePathCommand{
		Path:   r.resources.AddPath(path),
		Brush:  r.resources.AddBrush(brush),
		Stroke: stroke,
	})
}

// FillRect records a rectangle fill. A nil brush is ignored.
func (r *Recorder) FillRect(rect ggseries.Rect, brush ggseries.Brush) {
	if brush == nil {
		return
	}
	r.commands = append(r.commands, FillRectCommand{
		Rect:  rect,
		Brush: r.resources.AddBrush(brush),
	})
}

// FinishRecording returns an immutable Recording containing all recorded
// commands. After calling FinishRecording, the Recorder should not be used
// again.
func (r *Recorder) FinishRecording() *Recording {
	return &Recording{
		width:     r.width,
		height:    r.height,
		commands:  r.commands,
		resources: r.resources,
	}
}

// Recording is an immutable container for recorded draw commands.
type Recording struct {
	width, height int
	commands      []Command
	resources     *ResourcePool
}

// Width returns the width of the recording canvas.
func (r *Recording) Width() int {
	return r.width
}

// Height returns the height of the recording canvas.
func (r *Recording) Height() int {
	return r.height
}

// Commands returns the recorded commands.
func (r *Recording) Commands() []Command {
	return r.commands
}

// Resources returns the resource pool.
func (r *Recording) Resources() *ResourcePool {
	return r.resources
}

// Count returns the number of commands of type t.
func (r *Recording) Count(t CommandType) int {
	n := 0
	for _, cmd := range r.commands {
		if cmd.Type() == t {
			n++
		}
	}
	return n
}

// Op is a drawing command with its resources resolved, for inspection.
type Op struct {
	Type   CommandType
	Path   *gg.Path // nil for FillRect
	Brush  ggseries.Brush
	Stroke ggseries.Stroke // StrokePath only
	Rect   ggseries.Rect   // FillRect only
}

// Color returns the brush color of a solid brush, or "" for other brushes.
func (o Op) Color() string {
	if b, ok := o.Brush.(ggseries.SolidBrush); ok {
		return b.Color
	}
	return ""
}

// Ops returns the drawing commands in order with resources resolved. State
// commands are skipped.
func (r *Recording) Ops() []Op {
	ops := make([]Op, 0, len(r.commands))
	for _, cmd := range r.commands {
		switch c := cmd.(type) {
		case FillPathCommand:
			ops = append(ops, Op{
				Type:  CmdFillPath,
				Path:  r.resources.GetPath(c.Path),
				Brush: r.resources.GetBrush(c.Brush),
			})
		case StrokePathCommand:
			ops = append(ops, Op{
				Type:   CmdStrokePath,
				Path:   r.resources.GetPath(c.Path),
				Brush:  r.resources.GetBrush(c.Brush),
				Stroke: c.Stroke,
			})
		case FillRectCommand:
			ops = append(ops, Op{
				Type:  CmdFillRect,
				Brush: r.resources.GetBrush(c.Brush),
				Rect:  c.Rect,
			})
		}
	}
	return ops
}

// Replay issues the recorded commands on canvas.
func (r *Recording) Replay(canvas ggseries.Canvas) {
	for _, cmd := range r.commands {
		switch c := cmd.(type) {
		case SaveCommand:
			canvas.Save()
		case RestoreCommand:
			canvas.Restore()
		case FillPathCommand:
			canvas.FillPath(r.resources.GetPath(c.Path), r.resources.GetBrush(c.Brush))
		case StrokePathCommand:
			canvas.StrokePath(r.resources.GetPath(c.Path), r.resources.GetBrush(c.Brush), c.Stroke)
		case FillRectCommand:
			canvas.FillRect(c.Rect, r.resources.GetBrush(c.Brush))
		}
	}
}

// Playback replays the recording to the given backend between Begin and End.
func (r *Recording) Playback(backend Backend) error {
	if err := backend.Begin(r.width, r.height); err != nil {
		return err
	}
	r.Replay(backend)
	return backend.End()
}
