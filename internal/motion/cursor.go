package motion

// Point is a position in CSS pixels.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// TextCursor is a label that trails the pointer.
type TextCursor struct {
	Text    string
	Offset  Point
	x, y    *Spring
	visible bool
	reduced bool
}

// NewTextCursor returns a hidden cursor at the origin. offset is added to
// the smoothed pointer position when rendering.
func NewTextCursor(text string, offset Point, reduced bool) *TextCursor {
	return &TextCursor{
		Text:    text,
		Offset:  offset,
		x:       NewSpring(CursorSpring, 0),
		y:       NewSpring(CursorSpring, 0),
		reduced: reduced,
	}
}

// Show makes the cursor visible and, when it was hidden, places it on the
// pointer so it does not sweep in from its last position.
func (c *TextCursor) Show(at Point) {
	if !c.visible {
		c.x.Jump(at.X)
		c.y.Jump(at.Y)
	}
	c.visible = true
}

// SetReducedMotion makes the cursor snap to the pointer instead of trailing it.
func (c *TextCursor) SetReducedMotion(reduced bool) { c.reduced = reduced }

// Hide hides the cursor.
func (c *TextCursor) Hide() { c.visible = false }

// Visible reports whether the cursor is shown.
func (c *TextCursor) Visible() bool { return c.visible }

// Move retargets the cursor at the pointer.
func (c *TextCursor) Move(to Point) {
	if c.reduced {
		c.x.Jump(to.X)
		c.y.Jump(to.Y)
		return
	}
	c.x.Set(to.X)
	c.y.Set(to.Y)
}

// Step advances the cursor by dt and returns where to draw it.
func (c *TextCursor) Step(dt float64) Point {
	return Point{
		X: c.x.Step(dt) + c.Offset.X,
		Y: c.y.Step(dt) + c.Offset.Y,
	}
}

// Position returns where to draw the cursor without advancing it.
func (c *TextCursor) Position() Point {
	return Point{X: c.x.Value() + c.Offset.X, Y: c.y.Value() + c.Offset.Y}
}
