package motion

import "math"

// Panel names the stacked blocks of the pinned home page intro.
type Panel int

const (
	PanelHero Panel = iota
	PanelAbout
	PanelServices
	panelCount
)

func (p Panel) String() string {
	switch p {
	case PanelHero:
		return "hero"
	case PanelAbout:
		return "about"
	case PanelServices:
		return "services"
	}
	return "unknown"
}

// interactiveOpacity is the opacity above which a panel takes pointer input.
const interactiveOpacity = 0.35

// Down arrow geometry, in CSS pixels.
const (
	ArrowStartTop    = 144
	ArrowBottomInset = 96
	ArrowHeight      = 36
)

type panelCurves struct {
	opacity Keyframes
	y       Keyframes
}

var introCurves = [panelCount]panelCurves{
	PanelHero: {
		opacity: MustKeyframes([]float64{0, 0.16, 0.24}, []float64{1, 1, 0}),
		y:       MustKeyframes([]float64{0, 0.24}, []float64{0, -40}),
	},
	PanelAbout: {
		opacity: MustKeyframes([]float64{0.18, 0.28, 0.46, 0.62}, []float64{0, 1, 1, 0}),
		y:       MustKeyframes([]float64{0.18, 0.62}, []float64{16, -36}),
	},
	PanelServices: {
		opacity: MustKeyframes([]float64{0.5, 0.64, 0.86, 1}, []float64{0, 1, 1, 1}),
		y:       MustKeyframes([]float64{0.5, 2}, []float64{14, -20}),
	},
}

// PanelState is what the page applies to one intro panel.
type PanelState struct {
	Opacity     float64 `json:"opacity"`
	Y           float64 `json:"y"`
	ZIndex      int     `json:"zIndex"`
	Interactive bool    `json:"interactive"`
}

// IntroState is one frame of the pinned intro.
type IntroState struct {
	Panels [panelCount]PanelState `json:"panels"`
	ArrowY float64                `json:"arrowY"`
}

// Panel returns the state of one panel.
func (s IntroState) Panel(p Panel) PanelState { return s.Panels[p] }

// ArrowTravel is how far the decorative arrows move over a full scroll of
// the page for a viewport of height vh.
func ArrowTravel(vh int) float64 {
	if vh <= 0 {
		return 0
	}
	targetTop := vh - ArrowBottomInset - ArrowHeight
	return math.Max(float64(targetTop-ArrowStartTop), 0)
}

// PinnedIntro sequences the hero, about and services panels over the
// intro section's scroll progress, and the arrows over the page's.
type PinnedIntro struct {
	opacity [panelCount]*Spring
	y       [panelCount]*Spring
	arrow   *Spring
	travel  float64
	reduced bool
	state   IntroState
}

// NewPinnedIntro returns an intro resting at the top of the page.
func NewPinnedIntro(vh int, reduced bool) *PinnedIntro {
	pi := &PinnedIntro{travel: ArrowTravel(vh), reduced: reduced}
	for p := range panelCount {
		c := introCurves[p]
		pi.opacity[p] = NewSpring(IntroSpring, c.opacity.At(0))
		pi.y[p] = NewSpring(IntroSpring, c.y.At(0))
	}
	pi.arrow = NewSpring(IntroSpring, 0)
	pi.state = pi.Targets(0, 0)
	return pi
}

// SetViewport recomputes the arrow travel.
func (pi *PinnedIntro) SetViewport(vh int) { pi.travel = ArrowTravel(vh) }

// SetReducedMotion toggles unsmoothed output.
func (pi *PinnedIntro) SetReducedMotion(reduced bool) { pi.reduced = reduced }

// Targets evaluates the curves at intro progress p and page progress page
// without smoothing.
func (pi *PinnedIntro) Targets(p, page float64) IntroState {
	p = Clamp01(p)
	var st IntroState
	for panel := range panelCount {
		c := introCurves[panel]
		st.Panels[panel] = panelState(panel, c.opacity.At(p), c.y.At(p))
	}
	st.ArrowY = pi.travel * Clamp01(page)
	return st
}

// Update advances the springs by dt toward the targets for p and page.
func (pi *PinnedIntro) Update(p, page, dt float64) IntroState {
	target := pi.Targets(p, page)
	if pi.reduced {
		for panel := range panelCount {
			pi.opacity[panel].Jump(target.Panels[panel].Opacity)
			pi.y[panel].Jump(target.Panels[panel].Y)
		}
		pi.arrow.Jump(target.ArrowY)
		pi.state = target
		return pi.state
	}

	for panel := range panelCount {
		pi.opacity[panel].Set(target.Panels[panel].Opacity)
		pi.y[panel].Set(target.Panels[panel].Y)
		pi.state.Panels[panel] = panelState(panel,
			Clamp01(pi.opacity[panel].Step(dt)),
			pi.y[panel].Step(dt))
	}
	pi.arrow.Set(target.ArrowY)
	pi.state.ArrowY = pi.arrow.Step(dt)
	return pi.state
}

// State returns the last computed frame.
func (pi *PinnedIntro) State() IntroState { return pi.state }

// StackedIntro is the intro laid out without pinning: every panel fully
// shown in place and interactive. Pages start from it so the content is
// readable before anything animates it.
func StackedIntro() IntroState {
	var st IntroState
	for p := range panelCount {
		st.Panels[p] = PanelState{Opacity: 1, ZIndex: 100, Interactive: true}
	}
	return st
}

func panelState(p Panel, opacity, y float64) PanelState {
	return PanelState{
		Opacity:     opacity,
		Y:           y,
		ZIndex:      int(math.Round(opacity * 100)),
		Interactive: p != PanelHero && opacity > interactiveOpacity,
	}
}
