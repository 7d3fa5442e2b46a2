// Package motion maps scroll and pointer signals to smoothed visual
// properties: staggered layer reveals, the pinned intro and text cursors.
package motion

import "math"

const (
	// MinStartY is the smallest off-screen distance a layer enters from.
	MinStartY = 480
	// FinalY is the resting vertical offset of a revealed layer.
	FinalY = -40

	revealStart = 0.1
	revealEnd   = 0.36
	startScale  = 0.94
)

var revealStops = []float64{0, revealStart, revealEnd, 1}

var (
	opacityCurve = MustKeyframes(revealStops, []float64{0, 0, 1, 1})
	scaleCurve   = MustKeyframes(revealStops, []float64{startScale, startScale, 1, 1})
)

// Layer is one image of a sequenced reveal and the slice of global
// progress it owns.
type Layer struct {
	Index         int     `json:"index"`
	Source        string  `json:"source"`
	SegmentStart  float64 `json:"segmentStart"`
	SegmentLength float64 `json:"segmentLength"`
}

// LocalProgress remaps global progress p onto the layer's segment.
func (l Layer) LocalProgress(p float64) float64 {
	return Clamp01((Clamp01(p) - l.SegmentStart) / l.SegmentLength)
}

// LayerState is the visual output for one layer in one frame.
type LayerState struct {
	LocalProgress  float64 `json:"localProgress"`
	Opacity        float64 `json:"opacity"`
	VerticalOffset float64 `json:"verticalOffset"`
	Scale          float64 `json:"scale"`
}

// Resting is the fully revealed state every layer settles on.
func Resting() LayerState {
	return LayerState{LocalProgress: 1, Opacity: 1, VerticalOffset: FinalY, Scale: 1}
}

// BuildLayers partitions [0,1] into one equal segment per source. An
// empty source list still yields one segment length of 1.
func BuildLayers(sources []string) []Layer {
	count := max(len(sources), 1)
	segLen := 1 / float64(count)
	layers := make([]Layer, len(sources))
	for i, src := range sources {
		layers[i] = Layer{
			Index:         i,
			Source:        src,
			SegmentStart:  float64(i) * segLen,
			SegmentLength: segLen,
		}
	}
	return layers
}

// StartY is how far below its resting place a layer starts for the given
// viewport height.
func StartY(viewportHeight int) float64 {
	return float64(max(viewportHeight, MinStartY))
}

// ScrollProgress converts a scroll offset into progress through a tracked
// region: 0 when the region's top meets the viewport top, 1 when its
// bottom meets the viewport bottom.
func ScrollProgress(scrollOffset, regionTop, regionHeight, viewportHeight float64) float64 {
	span := math.Max(regionHeight-viewportHeight, 1)
	return Clamp01((scrollOffset - regionTop) / span)
}

// SequencerOptions configures a Sequencer.
type SequencerOptions struct {
	Spring         SpringConfig
	ViewportHeight int
	ReducedMotion  bool
}

type layerSprings struct {
	opacity, offset, scale *Spring
}

// Sequencer turns one progress signal into staggered layer reveals.
// It is owned by a single caller and is not safe for concurrent use.
type Sequencer struct {
	layers      []Layer
	springs     []layerSprings
	states      []LayerState
	startY      float64
	offsetCurve Keyframes
	reduced     bool
	stopped     bool
	progress    float64
}

// NewSequencer builds a sequencer with one layer per source, resting at
// progress 0.
func NewSequencer(sources []string, opts SequencerOptions) *Sequencer {
	if opts.Spring == (SpringConfig{}) {
		opts.Spring = SloganSpring
	}
	s := &Sequencer{
		layers:  BuildLayers(sources),
		startY:  StartY(opts.ViewportHeight),
		reduced: opts.ReducedMotion,
	}
	s.offsetCurve = entranceCurve(s.startY)
	s.springs = make([]layerSprings, len(s.layers))
	s.states = make([]LayerState, len(s.layers))
	for i := range s.layers {
		t := s.target(s.layers[i], 0)
		s.springs[i] = layerSprings{
			opacity: NewSpring(opts.Spring, t.Opacity),
			offset:  NewSpring(opts.Spring, t.VerticalOffset),
			scale:   NewSpring(opts.Spring, t.Scale),
		}
		s.states[i] = t
	}
	if s.reduced {
		s.pin()
	}
	return s
}

// Layers returns the layer table.
func (s *Sequencer) Layers() []Layer {
	return append([]Layer(nil), s.layers...)
}

// StartY returns the current entrance distance.
func (s *Sequencer) StartY() float64 { return s.startY }

// SetViewport recomputes the entrance distance. Springs keep their state,
// so layers already moving carry on from where they are.
func (s *Sequencer) SetViewport(viewportHeight int) {
	s.startY = StartY(viewportHeight)
	s.offsetCurve = entranceCurve(s.startY)
}

// ReducedMotion reports whether outputs are pinned.
func (s *Sequencer) ReducedMotion() bool { return s.reduced }

// SetReducedMotion toggles pinning. Leaving reduced motion restarts the
// springs from the resting values.
func (s *Sequencer) SetReducedMotion(reduced bool) {
	s.reduced = reduced
	if reduced {
		s.pin()
	}
}

// Targets evaluates the keyframe curves at global progress p without any
// smoothing.
func (s *Sequencer) Targets(p float64) []LayerState {
	out := make([]LayerState, len(s.layers))
	for i, l := range s.layers {
		if s.reduced {
			out[i] = Resting()
			out[i].LocalProgress = l.LocalProgress(p)
			continue
		}
		out[i] = s.target(l, p)
	}
	return out
}

// Update feeds progress p and advances every spring by dt seconds. After
// Stop it returns the last states unchanged.
func (s *Sequencer) Update(p, dt float64) []LayerState {
	if s.stopped {
		return s.States()
	}
	s.progress = Clamp01(p)
	if s.reduced {
		s.pin()
		return s.States()
	}
	for i, l := range s.layers {
		t := s.target(l, s.progress)
		sp := s.springs[i]
		sp.opacity.Set(t.Opacity)
		sp.offset.Set(t.VerticalOffset)
		sp.scale.Set(t.Scale)
		s.states[i] = LayerState{
			LocalProgress:  t.LocalProgress,
			Opacity:        Clamp01(sp.opacity.Step(dt)),
			VerticalOffset: sp.offset.Step(dt),
			Scale:          sp.scale.Step(dt),
		}
	}
	return s.States()
}

// States returns the most recent outputs.
func (s *Sequencer) States() []LayerState {
	return append([]LayerState(nil), s.states...)
}

// Settled reports whether every spring has reached its target.
func (s *Sequencer) Settled() bool {
	for _, sp := range s.springs {
		if !sp.opacity.AtRest() || !sp.offset.AtRest() || !sp.scale.AtRest() {
			return false
		}
	}
	return true
}

// Stop freezes the sequencer. Further updates are ignored.
func (s *Sequencer) Stop() { s.stopped = true }

// Stopped reports whether Stop has been called.
func (s *Sequencer) Stopped() bool { return s.stopped }

func (s *Sequencer) target(l Layer, p float64) LayerState {
	lt := l.LocalProgress(p)
	return LayerState{
		LocalProgress:  lt,
		Opacity:        opacityCurve.At(lt),
		VerticalOffset: s.offsetCurve.At(lt),
		Scale:          scaleCurve.At(lt),
	}
}

func entranceCurve(startY float64) Keyframes {
	return MustKeyframes(revealStops, []float64{startY, startY, FinalY, FinalY})
}

func (s *Sequencer) pin() {
	rest := Resting()
	for i := range s.layers {
		sp := s.springs[i]
		sp.opacity.Jump(rest.Opacity)
		sp.offset.Jump(rest.VerticalOffset)
		sp.scale.Jump(rest.Scale)
		lt := s.layers[i].LocalProgress(s.progress)
		s.states[i] = rest
		s.states[i].LocalProgress = lt
	}
}
