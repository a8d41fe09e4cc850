package canopy

import (
	"context"
	"log/slog"
	"slices"
)

// CommandType identifies the kind of recorded draw command.
type CommandType uint8

const (
	CommandShape  CommandType = iota // DrawShape
	CommandText                      // DrawText
	CommandSprite                    // DrawSprite
	CommandLines                     // DrawLines
)

// String returns the lowercase name of the command type.
func (t CommandType) String() string {
	switch t {
	case CommandShape:
		return "shape"
	case CommandText:
		return "text"
	case CommandSprite:
		return "sprite"
	case CommandLines:
		return "lines"
	default:
		return "unknown"
	}
}

// DrawCommand is a single draw call captured by a Recorder. Only the fields
// relevant to Type are set.
type DrawCommand struct {
	Type     CommandType
	Shape    Shape
	Text     TextRun
	Region   TextureRegion
	Segments []Segment
	Paint    Paint
}

// Recorder is a Target that stores every draw call in order instead of
// rasterizing it. It is useful for tests, debug dumps and for replaying a
// frame into several targets.
type Recorder struct {
	Commands []DrawCommand
}

// NewRecorder returns an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// DrawShape implements Target. Points are copied.
func (r *Recorder) DrawShape(shape Shape, p Paint) {
	shape.Points = slices.Clone(shape.Points)
	r.Commands = append(r.Commands, DrawCommand{Type: CommandShape, Shape: shape, Paint: p})
}

// DrawText implements Target.
func (r *Recorder) DrawText(run TextRun, p Paint) {
	r.Commands = append(r.Commands, DrawCommand{Type: CommandText, Text: run, Paint: p})
}

// DrawSprite implements Target.
func (r *Recorder) DrawSprite(region TextureRegion, p Paint) {
	r.Commands = append(r.Commands, DrawCommand{Type: CommandSprite, Region: region, Paint: p})
}

// DrawLines implements Target. Segments are copied.
func (r *Recorder) DrawLines(segments []Segment, p Paint) {
	r.Commands = append(r.Commands, DrawCommand{Type: CommandLines, Segments: slices.Clone(segments), Paint: p})
}

// Reset drops all recorded commands, keeping the backing array.
func (r *Recorder) Reset() {
	r.Commands = r.Commands[:0]
}

// Len returns the number of recorded commands.
func (r *Recorder) Len() int {
	return len(r.Commands)
}

// Replay re-issues every recorded command to dst, in order.
func (r *Recorder) Replay(dst Target) {
	for i := range r.Commands {
		cmd := &r.Commands[i]
		switch cmd.Type {
		case CommandShape:
			dst.DrawShape(cmd.Shape, cmd.Paint)
		case CommandText:
			dst.DrawText(cmd.Text, cmd.Paint)
		case CommandSprite:
			dst.DrawSprite(cmd.Region, cmd.Paint)
		case CommandLines:
			dst.DrawLines(cmd.Segments, cmd.Paint)
		}
	}
}

// RecorderStats summarizes a recorded frame.
type RecorderStats struct {
	Commands int
	// Batches counts runs of consecutive commands sharing a batch key: the
	// number of submissions a batching backend would need.
	Batches int
	Shapes  int
	Texts   int
	Sprites int
	Lines   int
}

// Stats computes statistics over the recorded commands.
func (r *Recorder) Stats() RecorderStats {
	s := RecorderStats{Commands: len(r.Commands), Batches: countBatches(r.Commands)}
	for i := range r.Commands {
		switch r.Commands[i].Type {
		case CommandShape:
			s.Shapes++
		case CommandText:
			s.Texts++
		case CommandSprite:
			s.Sprites++
		case CommandLines:
			s.Lines++
		}
	}
	return s
}

// LogStats writes the frame statistics at debug level.
func (r *Recorder) LogStats() {
	l := Logger()
	if !l.Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	s := r.Stats()
	l.Debug("frame recorded",
		"commands", s.Commands,
		"batches", s.Batches,
		"shapes", s.Shapes,
		"texts", s.Texts,
		"sprites", s.Sprites,
		"lines", s.Lines)
}

// batchKey groups commands that a backend can submit together.
type batchKey struct {
	typ     CommandType
	blend   BlendMode
	texture *Texture
}

func commandBatchKey(cmd *DrawCommand) batchKey {
	k := batchKey{typ: cmd.Type, blend: cmd.Paint.Blend}
	if cmd.Type == CommandSprite {
		k.texture = cmd.Region.Texture
	}
	return k
}

// countBatches counts contiguous groups of commands sharing the same batchKey.
func countBatches(commands []DrawCommand) int {
	if len(commands) == 0 {
		return 0
	}
	count := 1
	prev := commandBatchKey(&commands[0])
	for i := 1; i < len(commands); i++ {
		cur := commandBatchKey(&commands[i])
		if cur != prev {
			count++
			prev = cur
		}
	}
	return count
}
