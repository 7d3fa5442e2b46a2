package host

import (
	"fmt"
	"log"

	"github.com/kanefernandez/portfolio/internal/motion"
	"github.com/kanefernandez/portfolio/internal/timeline"
)

// Targets an Environment may expose.
const (
	TargetWindow        = "window"
	TargetCarousel      = "carousel"
	TargetNext          = "next"
	TargetPrev          = "prev"
	TargetReducedMotion = "reduced-motion"
	TargetHero          = "hero"
)

// WideViewport is the width from which dual image slides show both images.
const WideViewport = 768

// maxFrameDelta caps dt after a stalled tab so springs do not lurch.
const maxFrameDelta = 1.0 / 15

// Metrics are the layout measurements sampled each frame.
type Metrics struct {
	ScrollY        float64
	ViewportWidth  float64
	ViewportHeight float64
	// RegionTop and RegionHeight locate the slogan section in the page.
	RegionTop    float64
	RegionHeight float64
	// IntroTop and IntroHeight locate the pinned intro. A zero height means
	// the page has none.
	IntroTop       float64
	IntroHeight    float64
	DocumentHeight float64
	Carousel       timeline.Region
}

// Environment is the page the driver runs in.
type Environment interface {
	// Target returns a named event target, or nil when the page lacks it.
	Target(name string) EventTarget
	// RequestFrame schedules fn for the next animation frame. now is in
	// milliseconds.
	RequestFrame(fn func(now float64)) (cancel func())
	Metrics() Metrics
	PrefersReducedMotion() bool
}

// Renderer applies core outputs to the page.
type Renderer interface {
	Layers(states []motion.LayerState)
	Slide(index int, view timeline.View, nav SlideChrome)
	Cursor(at motion.Point, visible bool)
	// Intro draws the intro panels. When pinned is false the page should
	// fall back to its stacked layout and st can be ignored.
	Intro(st motion.IntroState, pinned bool)
}

// SlideChrome is the carousel decoration that depends on navigator state.
type SlideChrome struct {
	Cue             int
	Hovering        bool
	PreviousEnabled bool
	// Previous and Next are the slide indices the buttons lead to.
	Previous int
	Next     int
	Pointer  motion.Point
}

// Driver feeds page events and frames to a Sequencer, a PinnedIntro and a
// Navigator.
type Driver struct {
	env    Environment
	out    Renderer
	seq    *motion.Sequencer
	intro  *motion.PinnedIntro
	nav    *timeline.Navigator
	cursor *motion.TextCursor
	scope  Scope

	pointer     motion.Point
	lastFrame   float64
	cancelFrame func()
	wide        bool
	reduced     bool
}

// HeroCursorOffset places the hero video label below and right of the
// pointer.
var HeroCursorOffset = motion.Point{X: 12, Y: 16}

// NewDriver builds a driver for a page with the given slogan layers and
// carousel slides, starting at slide index. Either list may be empty.
func NewDriver(env Environment, out Renderer, layers []string, slides []timeline.Slide, index int) *Driver {
	m := env.Metrics()
	reduced := env.PrefersReducedMotion()
	return &Driver{
		env: env,
		out: out,
		seq: motion.NewSequencer(layers, motion.SequencerOptions{
			ViewportHeight: int(m.ViewportHeight),
			ReducedMotion:  reduced,
		}),
		intro:     motion.NewPinnedIntro(int(m.ViewportHeight), reduced),
		nav:       timeline.Restore(slides, index),
		cursor:    motion.NewTextCursor("", HeroCursorOffset, reduced),
		wide:      m.ViewportWidth >= WideViewport,
		reduced:   reduced,
		lastFrame: -1,
	}
}

// Sequencer exposes the driven sequencer.
func (d *Driver) Sequencer() *motion.Sequencer { return d.seq }

// Intro exposes the driven intro.
func (d *Driver) Intro() *motion.PinnedIntro { return d.intro }

// Navigator exposes the driven navigator.
func (d *Driver) Navigator() *timeline.Navigator { return d.nav }

// Start subscribes to the page and schedules the first frame.
func (d *Driver) Start() error {
	type sub struct {
		target, event string
		fn            Listener
	}
	subs := []sub{
		{TargetWindow, "resize", d.onResize},
		{TargetWindow, "orientationchange", d.onResize},
		{TargetWindow, "keydown", d.onKey},
		{TargetCarousel, "click", d.onClick},
		{TargetCarousel, "pointermove", d.onPointerMove},
		{TargetCarousel, "pointerenter", d.onPointerEnter},
		{TargetCarousel, "pointerleave", d.onPointerLeave},
		{TargetNext, "click", d.onNext},
		{TargetPrev, "click", d.onPrev},
		{TargetReducedMotion, "change", d.onReducedMotion},
		{TargetHero, "pointerenter", d.onHeroEnter},
		{TargetHero, "pointermove", d.onHeroMove},
		{TargetHero, "pointerleave", d.onHeroLeave},
	}
	for _, s := range subs {
		t := d.env.Target(s.target)
		if t == nil {
			continue
		}
		if err := d.scope.Listen(t, s.event, s.fn); err != nil {
			return fmt.Errorf("listen %s %s: %w", s.target, s.event, err)
		}
	}
	if err := d.scope.Defer(d.stopFrames); err != nil {
		return err
	}

	d.renderSlide()
	d.schedule()
	return nil
}

// Close detaches every listener and halts the sequencer. No callback runs
// afterwards.
func (d *Driver) Close() {
	d.scope.Close()
	d.seq.Stop()
}

// Frame runs one animation frame at now milliseconds.
func (d *Driver) Frame(now float64) {
	d.cancelFrame = nil
	if d.scope.Closed() {
		return
	}
	dt := 0.0
	if d.lastFrame >= 0 {
		dt = min(max((now-d.lastFrame)/1000, 0), maxFrameDelta)
	}
	d.lastFrame = now

	m := d.env.Metrics()
	p := motion.ScrollProgress(m.ScrollY, m.RegionTop, m.RegionHeight, m.ViewportHeight)
	d.out.Layers(d.seq.Update(p, dt))
	if m.IntroHeight > 0 {
		ip := motion.ScrollProgress(m.ScrollY, m.IntroTop, m.IntroHeight, m.ViewportHeight)
		d.out.Intro(d.intro.Update(ip, pageProgress(m), dt), !d.reduced)
	}
	if d.cursor.Visible() {
		d.out.Cursor(d.cursor.Step(dt), true)
	}
	d.schedule()
}

// pageProgress is how far the document has been scrolled, in [0, 1].
func pageProgress(m Metrics) float64 {
	return motion.Clamp01(m.ScrollY / max(m.DocumentHeight-m.ViewportHeight, 1))
}

func (d *Driver) schedule() {
	d.cancelFrame = d.env.RequestFrame(d.Frame)
}

func (d *Driver) stopFrames() {
	if d.cancelFrame != nil {
		d.cancelFrame()
		d.cancelFrame = nil
	}
}

func (d *Driver) renderSlide() {
	previous, next := d.nav.Neighbours()
	d.out.Slide(d.nav.Index(), timeline.Render(d.nav.Current(), d.wide), SlideChrome{
		Cue:             d.nav.Cue(),
		Hovering:        d.nav.Hovering(),
		PreviousEnabled: d.nav.PreviousEnabled(),
		Previous:        previous,
		Next:            next,
		Pointer:         d.pointer,
	})
}

func (d *Driver) onResize(Event) {
	m := d.env.Metrics()
	d.seq.SetViewport(int(m.ViewportHeight))
	d.intro.SetViewport(int(m.ViewportHeight))
	wide := m.ViewportWidth >= WideViewport
	if wide != d.wide {
		d.wide = wide
		d.renderSlide()
	}
}

func (d *Driver) onKey(e Event) {
	// Enter and Space on a focused control belong to that control.
	if d.env.Target(TargetCarousel) == nil || e.Interactive {
		return
	}
	before := d.nav.RawIndex()
	if d.nav.HandleKey(e.Key) {
		e.preventDefault()
	}
	if d.nav.RawIndex() != before {
		d.renderSlide()
	}
}

func (d *Driver) onClick(e Event) {
	d.nav.Click(e.X, d.env.Metrics().Carousel)
	d.renderSlide()
}

func (d *Driver) onPointerMove(e Event) {
	d.pointer = motion.Point{X: e.X, Y: e.Y}
	d.nav.PointerMove(e.X, d.env.Metrics().Carousel)
	d.renderSlide()
}

func (d *Driver) onPointerEnter(Event) {
	d.nav.PointerEnter()
	d.renderSlide()
}

func (d *Driver) onPointerLeave(Event) {
	d.nav.PointerLeave()
	d.renderSlide()
}

func (d *Driver) onNext(e Event) {
	e.preventDefault()
	e.stopPropagation()
	d.nav.Next()
	d.renderSlide()
}

func (d *Driver) onPrev(e Event) {
	e.preventDefault()
	e.stopPropagation()
	if d.nav.Previous() {
		d.renderSlide()
	}
}

func (d *Driver) onHeroEnter(e Event) {
	d.cursor.Show(motion.Point{X: e.X, Y: e.Y})
	d.out.Cursor(d.cursor.Position(), true)
}

func (d *Driver) onHeroMove(e Event) {
	d.cursor.Move(motion.Point{X: e.X, Y: e.Y})
}

func (d *Driver) onHeroLeave(Event) {
	d.cursor.Hide()
	d.out.Cursor(d.cursor.Position(), false)
}

func (d *Driver) onReducedMotion(e Event) {
	d.reduced = e.Matches
	d.seq.SetReducedMotion(e.Matches)
	d.intro.SetReducedMotion(e.Matches)
	d.cursor.SetReducedMotion(e.Matches)
	log.Printf("reduced motion preference changed: %t", e.Matches)
}
