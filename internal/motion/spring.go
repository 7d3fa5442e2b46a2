package motion

import "math"

// SpringConfig holds the physical parameters of a damped spring.
type SpringConfig struct {
	Stiffness float64
	Damping   float64
	Mass      float64
}

var (
	// SloganSpring drives the sticky slogan image layers.
	SloganSpring = SpringConfig{Stiffness: 220, Damping: 22, Mass: 0.9}
	// IntroSpring drives the pinned home page intro and the down arrows.
	IntroSpring = SpringConfig{Stiffness: 220, Damping: 18, Mass: 0.9}
	// CursorSpring drives pointer-following labels.
	CursorSpring = SpringConfig{Stiffness: 300, Damping: 28, Mass: 0.2}
)

const (
	// maxSubstep bounds a single integration step so stiff springs stay stable
	// when a frame is late.
	maxSubstep = 1.0 / 240

	restDelta    = 0.01
	restVelocity = 0.01
)

// withDefaults replaces non-positive parameters with usable ones.
func (c SpringConfig) withDefaults() SpringConfig {
	if c.Stiffness <= 0 {
		c.Stiffness = 100
	}
	if c.Damping <= 0 {
		c.Damping = 10
	}
	if c.Mass <= 0 {
		c.Mass = 1
	}
	return c
}

// Spring smooths a scalar toward a target. The zero value is not usable;
// build one with NewSpring.
type Spring struct {
	cfg      SpringConfig
	value    float64
	velocity float64
	target   float64
}

// NewSpring returns a spring resting at initial.
func NewSpring(cfg SpringConfig, initial float64) *Spring {
	return &Spring{cfg: cfg.withDefaults(), value: initial, target: initial}
}

// Value returns the current smoothed value.
func (s *Spring) Value() float64 { return s.value }

// Velocity returns the current velocity in units per second.
func (s *Spring) Velocity() float64 { return s.velocity }

// Target returns the value the spring is moving toward.
func (s *Spring) Target() float64 { return s.target }

// Set changes the target without touching value or velocity, so in-flight
// motion continues from where it is.
func (s *Spring) Set(target float64) { s.target = target }

// Jump places the spring at v with no velocity.
func (s *Spring) Jump(v float64) {
	s.value = v
	s.target = v
	s.velocity = 0
}

// AtRest reports whether the spring has settled on its target.
func (s *Spring) AtRest() bool {
	return s.value == s.target && s.velocity == 0
}

// Step advances the spring by dt seconds and returns the new value.
func (s *Spring) Step(dt float64) float64 {
	if dt <= 0 || s.AtRest() {
		return s.value
	}

	steps := int(math.Ceil(dt / maxSubstep))
	h := dt / float64(steps)
	for i := 0; i < steps; i++ {
		displacement := s.value - s.target
		accel := (-s.cfg.Stiffness*displacement - s.cfg.Damping*s.velocity) / s.cfg.Mass
		s.velocity += accel * h
		s.value += s.velocity * h
	}

	if math.Abs(s.value-s.target) < restDelta && math.Abs(s.velocity) < restVelocity {
		s.value = s.target
		s.velocity = 0
	}
	return s.value
}
