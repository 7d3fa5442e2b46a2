package timeline

// Side is which half of the carousel the pointer is over.
type Side int

const (
	SideRight Side = iota
	SideLeft
)

func (s Side) String() string {
	if s == SideLeft {
		return "left"
	}
	return "right"
}

// Region is the horizontal extent of the carousel in client coordinates.
type Region struct {
	Left  float64
	Width float64
}

// SideOf reports which half of the region x falls in. The midpoint counts
// as the right half.
func (r Region) SideOf(x float64) Side {
	if x >= r.Left+r.Width/2 {
		return SideRight
	}
	return SideLeft
}

// Keys the carousel responds to, as reported by KeyboardEvent.key.
const (
	KeyArrowRight = "ArrowRight"
	KeyArrowLeft  = "ArrowLeft"
	KeyEnter      = "Enter"
	KeySpace      = " "
	KeySpaceName  = "Space"
	KeyEscape     = "Escape"
)

// Navigator is the carousel state. The index is unbounded and wrapped when
// read, so stepping back from the first slide lands on the last.
type Navigator struct {
	slides []Slide
	index  int
	side   Side
	hover  bool
}

// NewNavigator starts at the first slide. An empty list is replaced by a
// single empty Intro.
func NewNavigator(slides []Slide) *Navigator {
	return Restore(slides, 0)
}

// Restore rebuilds a navigator at a previously reported index.
func Restore(slides []Slide, index int) *Navigator {
	if len(slides) == 0 {
		slides = []Slide{Intro{}}
	}
	return &Navigator{slides: slides, index: index}
}

// Len is the number of slides.
func (n *Navigator) Len() int { return len(n.slides) }

// Index is the wrapped position of the current slide.
func (n *Navigator) Index() int {
	l := len(n.slides)
	return ((n.index % l) + l) % l
}

// RawIndex is the unwrapped counter.
func (n *Navigator) RawIndex() int { return n.index }

// Current returns the slide being shown.
func (n *Navigator) Current() Slide { return n.slides[n.Index()] }

// OnIntro reports whether the current slide is an Intro.
func (n *Navigator) OnIntro() bool { return n.Current().Kind() == KindIntro }

// Advance moves to the next slide.
func (n *Navigator) Advance() { n.index++ }

// Retreat moves to the previous slide unless the current one is an Intro.
// It reports whether the index changed.
func (n *Navigator) Retreat() bool {
	if n.OnIntro() {
		return false
	}
	n.index--
	return true
}

// HandleKey applies a key press and reports whether the key was consumed,
// in which case the host should suppress its default action.
func (n *Navigator) HandleKey(key string) bool {
	switch key {
	case KeyArrowRight, KeyEnter, KeySpace, KeySpaceName:
		n.Advance()
		return true
	case KeyArrowLeft:
		return n.Retreat()
	}
	return false
}

// Click applies a primary click at x. Intros always advance; otherwise the
// half of the region that was clicked picks the direction.
func (n *Navigator) Click(x float64, r Region) {
	if n.OnIntro() || r.SideOf(x) == SideRight {
		n.Advance()
		return
	}
	n.Retreat()
}

// Next is the always-available forward button.
func (n *Navigator) Next() { n.Advance() }

// Previous is the back button. It is inert on an Intro.
func (n *Navigator) Previous() bool { return n.Retreat() }

// PreviousEnabled reports whether the back button should be active.
func (n *Navigator) PreviousEnabled() bool { return !n.OnIntro() }

// Neighbours returns the wrapped indices the back and forward buttons lead
// to. On an Intro previous is the current index.
func (n *Navigator) Neighbours() (previous, next int) {
	l := len(n.slides)
	i := n.Index()
	previous = i
	if !n.OnIntro() {
		previous = (i - 1 + l) % l
	}
	return previous, (i + 1) % l
}

// PointerEnter marks the pointer as over the carousel.
func (n *Navigator) PointerEnter() { n.hover = true }

// PointerLeave marks the pointer as outside the carousel.
func (n *Navigator) PointerLeave() { n.hover = false }

// Hovering reports whether the pointer is over the carousel.
func (n *Navigator) Hovering() bool { return n.hover }

// PointerMove tracks which half the pointer is over. Intros ignore it.
func (n *Navigator) PointerMove(x float64, r Region) {
	if n.OnIntro() {
		return
	}
	n.side = r.SideOf(x)
}

// PointerSide returns the last tracked half.
func (n *Navigator) PointerSide() Side { return n.side }

// Cue is the rotation in degrees of the arrow that follows the pointer:
// -90 points forward, 90 points back.
func (n *Navigator) Cue() int {
	if n.OnIntro() || n.side == SideRight {
		return -90
	}
	return 90
}
