package testing

import (
	"image/color"

	"github.com/go-drift/wincore/pkg/geometry"
)

// OpKind identifies a recorded canvas operation.
type OpKind int

const (
	OpFillRect OpKind = iota
	OpStrokeRect
	OpDrawText
	OpPushClip
	OpPopClip
)

func (k OpKind) String() string {
	switch k {
	case OpFillRect:
		return "fill"
	case OpStrokeRect:
		return "stroke"
	case OpDrawText:
		return "text"
	case OpPushClip:
		return "clip"
	case OpPopClip:
		return "unclip"
	default:
		return "unknown"
	}
}

// Op is one recorded drawing call.
type Op struct {
	Kind  OpKind
	Rect  geometry.Rect
	Text  string
	Color color.RGBA
}

// RecordingCanvas records drawing calls instead of rasterizing them.
type RecordingCanvas struct {
	Ops   []Op
	clips []geometry.Rect
}

func (c *RecordingCanvas) FillRect(rect geometry.Rect, col color.Color) {
	c.Ops = append(c.Ops, Op{Kind: OpFillRect, Rect: rect, Color: toRGBA(col)})
}

func (c *RecordingCanvas) StrokeRect(rect geometry.Rect, col color.Color) {
	c.Ops = append(c.Ops, Op{Kind: OpStrokeRect, Rect: rect, Color: toRGBA(col)})
}

func (c *RecordingCanvas) DrawText(text string, origin geometry.Point, col color.Color) {
	c.Ops = append(c.Ops, Op{Kind: OpDrawText, Rect: geometry.Rect{Origin: origin}, Text: text, Color: toRGBA(col)})
}

func (c *RecordingCanvas) PushClip(rect geometry.Rect) {
	c.clips = append(c.clips, rect)
	c.Ops = append(c.Ops, Op{Kind: OpPushClip, Rect: rect})
}

func (c *RecordingCanvas) PopClip() {
	if len(c.clips) > 0 {
		c.clips = c.clips[:len(c.clips)-1]
	}
	c.Ops = append(c.Ops, Op{Kind: OpPopClip})
}

// ClipDepth returns the number of clips currently pushed.
func (c *RecordingCanvas) ClipDepth() int {
	return len(c.clips)
}

// OpsOfKind returns the recorded operations of kind.
func (c *RecordingCanvas) OpsOfKind(kind OpKind) []Op {
	var ops []Op
	for _, op := range c.Ops {
		if op.Kind == kind {
			ops = append(ops, op)
		}
	}
	return ops
}

// Texts returns the text drawn, in order.
func (c *RecordingCanvas) Texts() []string {
	var texts []string
	for _, op := range c.OpsOfKind(OpDrawText) {
		texts = append(texts, op.Text)
	}
	return texts
}

func toRGBA(c color.Color) color.RGBA {
	if rgba, ok := c.(color.RGBA); ok {
		return rgba
	}
	return color.RGBAModel.Convert(c).(color.RGBA)
}
