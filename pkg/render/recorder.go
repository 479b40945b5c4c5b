package render

import "image/color"

// OpKind tells recorded operations apart.
type OpKind int

const (
	OpClear OpKind = iota
	OpArc
)

// Op is one call made against a Recorder.
type Op struct {
	Kind  OpKind
	Color color.Color // set for OpClear
	Arc   Arc         // set for OpArc
}

// Recorder is an in-memory Surface. It keeps every call in order, which
// makes it usable both in tests and as the headless render target.
type Recorder struct {
	Width, Height float64
	Ops           []Op
	Keep          bool // when false only the ops since the last Clear are retained
}

func NewRecorder(width, height float64) *Recorder {
	return &Recorder{Width: width, Height: height, Keep: true}
}

func (r *Recorder) Clear(c color.Color) {
	if !r.Keep {
		r.Ops = r.Ops[:0]
	}
	r.Ops = append(r.Ops, Op{Kind: OpClear, Color: c})
}

func (r *Recorder) DrawArc(a Arc) {
	r.Ops = append(r.Ops, Op{Kind: OpArc, Arc: a})
}

func (r *Recorder) Size() (float64, float64) {
	return r.Width, r.Height
}

// Arcs returns the recorded arcs in draw order.
func (r *Recorder) Arcs() []Arc {
	var arcs []Arc
	for _, op := range r.Ops {
		if op.Kind == OpArc {
			arcs = append(arcs, op.Arc)
		}
	}
	return arcs
}
